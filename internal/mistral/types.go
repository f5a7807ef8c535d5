// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mistral

// OCRRequest is the request body for POST /v1/ocr.
type OCRRequest struct {
	Model              string      `json:"model"`
	Document           DocumentURL `json:"document"`
	IncludeImageBase64 bool        `json:"include_image_base64"`
}

// DocumentURL wraps the document URL chunk of an OCR request.
type DocumentURL struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url"`
}

// OCRResponse is the result of an OCR run: an ordered list of pages.
type OCRResponse struct {
	Pages     []Page     `json:"pages"`
	Model     string     `json:"model"`
	UsageInfo *UsageInfo `json:"usage_info,omitempty"`
}

// Page is a single page of OCR output. Markdown may contain image
// placeholder references of the form ![id](id), resolved against Images.
type Page struct {
	Index    int     `json:"index"`
	Markdown string  `json:"markdown"`
	Images   []Image `json:"images"`
}

// Image is an extracted page image. ImageBase64 is present only when the
// request asked for it, and may still be empty if the service could not
// extract the image.
type Image struct {
	ID           string `json:"id"`
	TopLeftX     int    `json:"top_left_x"`
	TopLeftY     int    `json:"top_left_y"`
	BottomRightX int    `json:"bottom_right_x"`
	BottomRightY int    `json:"bottom_right_y"`
	ImageBase64  string `json:"image_base64"`
}

// UsageInfo reports what the service processed.
type UsageInfo struct {
	PagesProcessed int   `json:"pages_processed"`
	DocSizeBytes   int64 `json:"doc_size_bytes"`
}

// UploadedFile is the record returned by POST /v1/files.
type UploadedFile struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Purpose   string `json:"purpose"`
}

// SignedURL is a time-limited link to an uploaded file.
type SignedURL struct {
	URL string `json:"url"`
}
