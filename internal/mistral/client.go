// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mistral implements a minimal client for the Mistral OCR and
// files APIs: document OCR, file upload, and signed URL retrieval.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pdiddy/pdf2md/internal/httputil"
	"github.com/pdiddy/pdf2md/pkg/types"
)

const (
	// DefaultBaseURL is the production Mistral API endpoint.
	DefaultBaseURL = "https://api.mistral.ai"

	// DefaultModel is the OCR model used when none is configured.
	DefaultModel = "mistral-ocr-latest"

	// uploadPurpose marks uploaded files for OCR processing.
	uploadPurpose = "ocr"
)

// Client talks to the Mistral API. Construct with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// New returns a Client authenticated with apiKey. Zero-value fields of cfg
// fall back to package defaults.
func New(apiKey string, cfg types.OCRConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		httpClient: httputil.NewClient(cfg.HTTPConfig),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// Model returns the OCR model identifier the client submits with.
func (c *Client) Model() string { return c.model }

// ProcessURL runs OCR on the document at documentURL. The URL may be a
// public document URL or a signed URL for a previously uploaded file.
func (c *Client) ProcessURL(ctx context.Context, documentURL string, includeImages bool) (*OCRResponse, error) {
	reqBody := OCRRequest{
		Model: c.model,
		Document: DocumentURL{
			Type:        "document_url",
			DocumentURL: documentURL,
		},
		IncludeImageBase64: includeImages,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding OCR request: %w", err)
	}

	var out OCRResponse
	if err := c.do(ctx, http.MethodPost, "/v1/ocr", "application/json", bytes.NewReader(payload), &out); err != nil {
		return nil, fmt.Errorf("OCR request: %w", err)
	}
	return &out, nil
}

// UploadFile uploads data to the Mistral object store with purpose "ocr"
// and returns the service's file record. The uploaded file remains on the
// service side; this client performs no cleanup.
func (c *Client) UploadFile(ctx context.Context, filename string, data []byte) (*UploadedFile, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("purpose", uploadPurpose); err != nil {
		return nil, fmt.Errorf("encoding upload form: %w", err)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("encoding upload form: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("encoding upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("encoding upload form: %w", err)
	}

	var out UploadedFile
	if err := c.do(ctx, http.MethodPost, "/v1/files", mw.FormDataContentType(), &buf, &out); err != nil {
		return nil, fmt.Errorf("file upload: %w", err)
	}
	return &out, nil
}

// GetSignedURL requests a time-limited URL for an uploaded file. The URL
// is valid for expirySeconds from issuance.
func (c *Client) GetSignedURL(ctx context.Context, fileID string, expirySeconds int) (*SignedURL, error) {
	path := fmt.Sprintf("/v1/files/%s/url?expiry=%d", fileID, expirySeconds)

	var out SignedURL
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, fmt.Errorf("signed URL request: %w", err)
	}
	return &out, nil
}

// do issues one authenticated request and decodes the JSON response into
// out. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
