package foscam

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/abates/foscam/cgi"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	Host     string
	Username string
	Password string
}

// Result is the outcome of a single CGI request that reached the camera.
type Result struct {
	Success    bool
	StatusCode int
	Body       string
}

type Camera interface {
	Send(cgi.Request) (Result, error)
}

type Option func(*camera)

// TimeoutOption bounds each request. The default of zero waits forever.
func TimeoutOption(timeout time.Duration) Option {
	return func(cam *camera) {
		cam.timeout = timeout
	}
}

// OutputOption sets where per-request status lines are written.
func OutputOption(w io.Writer) Option {
	return func(cam *camera) {
		cam.out = w
	}
}

func SchemeOption(scheme string) Option {
	return func(cam *camera) {
		cam.scheme = scheme
	}
}

type camera struct {
	config  Config
	scheme  string
	timeout time.Duration
	out     io.Writer
	client  *resty.Client
}

func New(config Config, options ...Option) Camera {
	cam := &camera{
		config: config,
		scheme: "http",
		out:    os.Stdout,
	}

	for _, option := range options {
		option(cam)
	}

	// Foscam firmware ships self-signed certificates, verification is
	// always off.
	cam.client = resty.New().
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}).
		SetTimeout(cam.timeout)
	return cam
}

func (cam *camera) url(req cgi.Request) string {
	u := &url.URL{
		Scheme: cam.scheme,
		User:   url.UserPassword(cam.config.Username, cam.config.Password),
		Host:   cam.config.Host,
	}
	return u.String() + "/" + req.String()
}

// Send issues one GET for req and prints whether the camera accepted it. A
// non-2xx status is not an error; only transport failures are returned.
func (cam *camera) Send(req cgi.Request) (result Result, err error) {
	resp, err := cam.client.R().Get(cam.url(req))
	if err != nil {
		return result, fmt.Errorf("sending command '%s': %w", req, err)
	}

	result = Result{
		Success:    resp.IsSuccess(),
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}

	if result.Success {
		fmt.Fprintf(cam.out, "Command '%s' sent successfully\n", req)
	} else {
		fmt.Fprintf(cam.out, "Error sending command '%s': %d - %s\n", req, result.StatusCode, result.Body)
	}
	return result, nil
}
