// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration structs shared across pipeline stages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdf2md/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OCRConfig holds settings for the OCR conversion stage.
type OCRConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the OCR model identifier (default "mistral-ocr-latest").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the Mistral API base URL (default "https://api.mistral.ai").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// SignedURLExpiry is the validity window, in seconds, requested for
	// signed URLs in the upload path (default 60).
	SignedURLExpiry int `json:"signed_url_expiry" yaml:"signed_url_expiry"`
}
