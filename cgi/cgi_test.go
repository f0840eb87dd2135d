package cgi

import (
	"testing"
)

func TestRequest_String(t *testing.T) {
	tests := []struct {
		name string
		r    Request
		want string
	}{
		{"bare control", Control(Stop), "decoder_control.cgi?command=1"},
		{"onestep", Control(Up, OneStep(1)), "decoder_control.cgi?command=0&onestep=1"},
		{"preset", Control(SetPreset(3), Preset(3)), "decoder_control.cgi?command=36&preset=3"},
		{"trailing amp", Request{Path: DecoderControl, Query: []Param{{"command", "95"}}, TrailingAmp: true}, "decoder_control.cgi?command=95&"},
		{"reboot", RebootRequest(), "reboot.cgi?"},
		{"order kept", Request{Path: DecoderControl, Query: []Param{{"b", "2"}, {"a", "1"}}}, "decoder_control.cgi?b=2&a=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("Request.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresetCommands(t *testing.T) {
	tests := []struct {
		preset   int
		wantSet  Command
		wantGoto Command
	}{
		{0, 30, 31},
		{1, 32, 33},
		{3, 36, 37},
		{16, 62, 63},
	}

	for _, tt := range tests {
		t.Run(Preset(tt.preset).Value, func(t *testing.T) {
			if got := SetPreset(tt.preset); got != tt.wantSet {
				t.Errorf("SetPreset(%d) = %v, want %v", tt.preset, got, tt.wantSet)
			}
			if got := GotoPreset(tt.preset); got != tt.wantGoto {
				t.Errorf("GotoPreset(%d) = %v, want %v", tt.preset, got, tt.wantGoto)
			}
		})
	}
}
