// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submit obtains an OCR result from the Mistral API for a
// classified input, choosing between direct URL submission and the
// upload/sign/process sequence for local files.
package submit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/pdiddy/pdf2md/internal/input"
	"github.com/pdiddy/pdf2md/internal/mistral"
)

// defaultSignedURLExpiry is the signed URL validity window in seconds.
// Short enough to limit exposure, long enough to cover the OCR call that
// immediately follows.
const defaultSignedURLExpiry = 60

// Submitter runs submissions against a Mistral client. The zero value is
// not usable; Client must be set.
type Submitter struct {
	Client *mistral.Client

	// SignedURLExpiry overrides the signed URL validity window in seconds.
	// Zero or negative means the default (60).
	SignedURLExpiry int

	Log zerolog.Logger
}

// Submit obtains an OCR result for spec. URL inputs go to the service in a
// single call; file inputs are uploaded, signed, and then processed. Any
// remote failure aborts the submission; there is no retry.
func (s *Submitter) Submit(ctx context.Context, spec input.Spec, inlineImages bool) (*mistral.OCRResponse, error) {
	if spec.Kind == input.KindURL {
		return s.submitURL(ctx, spec.Value, inlineImages)
	}
	return s.submitFile(ctx, spec.Value, inlineImages)
}

// submitURL issues one OCR request directly against the document URL.
func (s *Submitter) submitURL(ctx context.Context, url string, inlineImages bool) (*mistral.OCRResponse, error) {
	s.Log.Info().Str("url", url).Msg("processing URL")
	return s.Client.ProcessURL(ctx, url, inlineImages)
}

// submitFile runs the three-step sequence for a local file: upload the
// bytes, obtain a signed URL, and submit that URL for OCR. Existence is
// checked at submission time, not argument time, so a file removed in
// between fails here rather than mid-upload. The whole sequence must
// finish within the signed URL's validity window; past it the OCR call is
// rejected by the service like any other bad URL.
//
// The upload leaves a file on the service side that is never deleted.
func (s *Submitter) submitFile(ctx context.Context, path string, inlineImages bool) (*mistral.OCRResponse, error) {
	s.Log.Info().Str("file", path).Msg("processing file")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %w", err)
		}
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		s.Log.Warn().Str("detected", mt.String()).Msg("input does not look like a PDF; the service may reject it")
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	start := time.Now()
	uploaded, err := s.Client.UploadFile(ctx, name, data)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Str("file_id", uploaded.ID).Dur("duration", time.Since(start)).Msg("file uploaded")

	expiry := s.SignedURLExpiry
	if expiry <= 0 {
		expiry = defaultSignedURLExpiry
	}

	start = time.Now()
	signed, err := s.Client.GetSignedURL(ctx, uploaded.ID, expiry)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Dur("duration", time.Since(start)).Msg("signed URL obtained")

	start = time.Now()
	resp, err := s.Client.ProcessURL(ctx, signed.URL, inlineImages)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Dur("duration", time.Since(start)).Msg("OCR processing completed")

	return resp, nil
}
