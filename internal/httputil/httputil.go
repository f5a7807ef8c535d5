// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client construction shared across stages.
package httputil

import (
	"net/http"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// userAgentTransport sets the User-Agent header on every outgoing request
// that does not already carry one.
type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.agent)
	}
	return t.base.RoundTrip(req)
}

// NewClient returns an *http.Client applying cfg's timeout and User-Agent.
// A zero timeout means no client-side limit; the request then blocks for
// as long as the server holds the connection.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			agent: cfg.UserAgent,
			base:  http.DefaultTransport,
		},
	}
}
