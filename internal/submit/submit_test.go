// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pdf2md/internal/input"
	"github.com/pdiddy/pdf2md/internal/mistral"
	"github.com/pdiddy/pdf2md/pkg/types"
)

const ocrResponseBody = `{
  "pages": [{"index": 0, "markdown": "# Converted", "images": []}],
  "model": "mistral-ocr-latest"
}`

// fakeService simulates the Mistral upload/sign/process endpoints and
// records the order of calls.
type fakeService struct {
	t *testing.T

	calls      []string
	signedURL  string
	lastOCRDoc string
	lastExpiry string
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/files", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		f.calls = append(f.calls, "upload")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			f.t.Errorf("parsing upload form: %v", err)
		}
		if purpose := r.FormValue("purpose"); purpose != "ocr" {
			f.t.Errorf("upload purpose = %q, want %q", purpose, "ocr")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "file-1", "filename": "doc", "purpose": "ocr"}`)
	})

	mux.HandleFunc("/v1/files/file-1/url", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		f.calls = append(f.calls, "sign")
		f.lastExpiry = r.URL.Query().Get("expiry")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"url": f.signedURL})
	})

	mux.HandleFunc("/v1/ocr", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		f.calls = append(f.calls, "ocr")
		var req mistral.OCRRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			f.t.Errorf("decoding OCR request: %v", err)
		}
		f.lastOCRDoc = req.Document.DocumentURL
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, ocrResponseBody)
	})

	return mux
}

func newSubmitter(t *testing.T, svc *fakeService) *Submitter {
	t.Helper()
	srv := httptest.NewServer(svc.handler())
	t.Cleanup(srv.Close)
	client := mistral.New("test-key", types.OCRConfig{BaseURL: srv.URL})
	return &Submitter{Client: client, Log: zerolog.Nop()}
}

func writePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\nfake content"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSubmitURLDirect(t *testing.T) {
	svc := &fakeService{t: t}
	sub := newSubmitter(t, svc)

	resp, err := sub.Submit(context.Background(), input.Spec{Kind: input.KindURL, Value: "https://example.com/doc.pdf"}, true)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(resp.Pages) != 1 || resp.Pages[0].Markdown != "# Converted" {
		t.Errorf("unexpected OCR response: %+v", resp)
	}
	if len(svc.calls) != 1 || svc.calls[0] != "ocr" {
		t.Errorf("calls = %v, want a single direct OCR call", svc.calls)
	}
	if svc.lastOCRDoc != "https://example.com/doc.pdf" {
		t.Errorf("document URL = %q, want the input URL", svc.lastOCRDoc)
	}
}

func TestSubmitFileUploadsSignsProcesses(t *testing.T) {
	svc := &fakeService{t: t, signedURL: "https://files.example.com/file-1?sig=abc"}
	sub := newSubmitter(t, svc)
	pdfPath := writePDF(t)

	resp, err := sub.Submit(context.Background(), input.Spec{Kind: input.KindFile, Value: pdfPath}, true)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(resp.Pages) != 1 {
		t.Errorf("pages = %d, want 1", len(resp.Pages))
	}

	want := []string{"upload", "sign", "ocr"}
	if len(svc.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", svc.calls, want)
	}
	for i := range want {
		if svc.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", svc.calls, want)
		}
	}

	if svc.lastExpiry != "60" {
		t.Errorf("signed URL expiry = %q, want the 60 s default", svc.lastExpiry)
	}
	if svc.lastOCRDoc != svc.signedURL {
		t.Errorf("OCR document URL = %q, want the signed URL %q", svc.lastOCRDoc, svc.signedURL)
	}
}

func TestSubmitFileCustomExpiry(t *testing.T) {
	svc := &fakeService{t: t, signedURL: "https://files.example.com/file-1?sig=abc"}
	sub := newSubmitter(t, svc)
	sub.SignedURLExpiry = 120

	if _, err := sub.Submit(context.Background(), input.Spec{Kind: input.KindFile, Value: writePDF(t)}, false); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if svc.lastExpiry != "120" {
		t.Errorf("signed URL expiry = %q, want %q", svc.lastExpiry, "120")
	}
}

func TestSubmitFileMissing(t *testing.T) {
	svc := &fakeService{t: t}
	sub := newSubmitter(t, svc)

	missing := filepath.Join(t.TempDir(), "gone.pdf")
	_, err := sub.Submit(context.Background(), input.Spec{Kind: input.KindFile, Value: missing}, true)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
	if len(svc.calls) != 0 {
		t.Errorf("no remote calls expected for a missing file, got %v", svc.calls)
	}
}

func TestSubmitFileUploadFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message": "invalid api key"}`)
	}))
	t.Cleanup(srv.Close)

	client := mistral.New("bad-key", types.OCRConfig{BaseURL: srv.URL})
	sub := &Submitter{Client: client, Log: zerolog.Nop()}

	_, err := sub.Submit(context.Background(), input.Spec{Kind: input.KindFile, Value: writePDF(t)}, true)
	if err == nil {
		t.Fatal("expected an error when the upload is rejected")
	}

	var apiErr *mistral.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error should unwrap to *mistral.APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
}
