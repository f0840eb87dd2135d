package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendCb(t *testing.T) {
	tests := []struct {
		name    string
		wantURI string
	}{
		{"move_up", "/decoder_control.cgi?command=0&onestep=1"},
		{"set_preset", "/decoder_control.cgi?command=32&preset=1"},
		{"goto_preset", "/decoder_control.cgi?command=33&preset=1"},
		{"iron", "/decoder_control.cgi?command=95&"},
		{"reset", "/reboot.cgi?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uris []string
			var user, pass string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				uris = append(uris, r.URL.RequestURI())
				user, pass, _ = r.BasicAuth()
			}))
			defer server.Close()

			buf := &bytes.Buffer{}
			output = buf
			host = strings.TrimPrefix(server.URL, "http://")
			username = "admin"
			password = "secret"

			if err := sendCb(tt.name)(tt.name); err != nil {
				t.Fatalf("Wanted no error, got %v", err)
			}

			if len(uris) != 1 || uris[0] != tt.wantURI {
				t.Errorf("requests = %v, want [%s]", uris, tt.wantURI)
			}
			if user != "admin" || pass != "secret" {
				t.Errorf("credentials = %s:%s, want admin:secret", user, pass)
			}
			if !strings.HasSuffix(buf.String(), "sent successfully\n") {
				t.Errorf("output = %q", buf.String())
			}
		})
	}
}

func TestSendCbUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	host = strings.TrimPrefix(server.URL, "http://")
	server.Close()
	output = &bytes.Buffer{}

	if err := sendCb("stop")("stop"); err == nil {
		t.Errorf("Wanted a connection error")
	}
}
