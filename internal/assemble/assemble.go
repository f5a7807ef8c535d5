// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble joins per-page OCR output into a single Markdown
// document, optionally inlining extracted images as base64 data URLs.
package assemble

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pdf2md/internal/mistral"
)

// pageSeparator is placed between consecutive pages: a blank line, a
// horizontal rule, and a blank line.
const pageSeparator = "\n\n---\n\n"

// Assemble returns the Markdown for all pages of resp, in page order. With
// inlineImages, every ![id](id) placeholder whose image carries base64
// data is rewritten to ![id](data); images without data are left as
// external references. Well-formed input never fails.
func Assemble(resp *mistral.OCRResponse, inlineImages bool) string {
	parts := make([]string, 0, len(resp.Pages))

	for _, page := range resp.Pages {
		md := page.Markdown

		if inlineImages {
			data := make(map[string]string, len(page.Images))
			for _, img := range page.Images {
				if img.ImageBase64 != "" {
					data[img.ID] = img.ImageBase64
				}
			}
			if len(data) > 0 {
				md = replaceImages(md, data)
			}
		}

		parts = append(parts, md)
	}

	return strings.Join(parts, pageSeparator)
}

// replaceImages substitutes every occurrence of the literal placeholder
// ![id](id) with ![id](data). The service emits placeholders verbatim in
// that form, so textual substitution is exact; no Markdown parsing needed.
// IDs are unique within a page, so replacement order does not matter.
func replaceImages(markdown string, images map[string]string) string {
	for id, data := range images {
		placeholder := fmt.Sprintf("![%s](%s)", id, id)
		markdown = strings.ReplaceAll(markdown, placeholder, fmt.Sprintf("![%s](%s)", id, data))
	}
	return markdown
}
