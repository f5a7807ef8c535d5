// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mistral

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the Mistral API. It carries the HTTP
// status and the service's message so callers can report the rejection
// verbatim. An expired signed URL surfaces here like any other rejection.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("mistral API: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("mistral API: HTTP %d: %s", e.StatusCode, e.Message)
}

// maxErrorBody caps how much of an error response body is read.
const maxErrorBody = 4096

// decodeAPIError builds an *APIError from a non-2xx response. The Mistral
// API reports errors as {"message": "..."}; anything else falls back to a
// body snippet.
func decodeAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}
