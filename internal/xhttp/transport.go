package xhttp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/dino/internal/version"
)

type dinoTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*dinoTransport)(nil)

func (t *dinoTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	if req.Header.Get(XRequestID) == "" {
		SetRequestHeaderRequestID(req, uuid.NewString())
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard dino headers.
func NewTransport() http.RoundTripper {
	return &dinoTransport{base: http.DefaultTransport}
}

// WrapTransport layers the dino headers on top of base.
func WrapTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &dinoTransport{base: base}
}
