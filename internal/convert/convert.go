// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates the conversion pipeline: classify the
// input, submit it for OCR, assemble the Markdown, and write the output
// file.
package convert

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2md/internal/assemble"
	"github.com/pdiddy/pdf2md/internal/input"
	"github.com/pdiddy/pdf2md/internal/mistral"
	"github.com/pdiddy/pdf2md/internal/submit"
)

// Options controls one conversion run.
type Options struct {
	// Output is the explicit output path. Empty means derive it from the
	// input name.
	Output string

	// InlineImages embeds extracted images as base64 data URLs.
	InlineImages bool

	// Frontmatter prepends a YAML frontmatter block recording the source,
	// model, page count, and conversion time.
	Frontmatter bool

	// SignedURLExpiry is passed through to the file submission path.
	SignedURLExpiry int
}

// Run converts rawInput — a local PDF path or a URL — to Markdown and
// writes it to the resolved output path, which it returns. An existing
// file at that path is overwritten. On error nothing is written.
func Run(ctx context.Context, client *mistral.Client, rawInput string, opts Options, log zerolog.Logger) (string, error) {
	spec := input.Classify(rawInput)
	log.Info().Str("input", rawInput).Str("kind", spec.Kind.String()).Msg("starting PDF to markdown conversion")

	sub := &submit.Submitter{
		Client:          client,
		SignedURLExpiry: opts.SignedURLExpiry,
		Log:             log,
	}
	resp, err := sub.Submit(ctx, spec, opts.InlineImages)
	if err != nil {
		return "", err
	}

	if resp.UsageInfo != nil {
		log.Debug().
			Int("pages_processed", resp.UsageInfo.PagesProcessed).
			Int64("doc_size_bytes", resp.UsageInfo.DocSizeBytes).
			Msg("usage info")
	}

	log.Info().Int("pages", len(resp.Pages)).Msg("generating markdown")
	content := assemble.Assemble(resp, opts.InlineImages)

	if opts.Frontmatter {
		content, err = addFrontmatter(rawInput, resp, content)
		if err != nil {
			return "", err
		}
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = DefaultOutputPath(spec)
	}

	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Info().Str("output", outPath).Msg("markdown file created")

	return outPath, nil
}

// DefaultOutputPath derives the output file name from the input: the base
// name of a URL's path (or "output" when the path has none) or the local
// file's base name, extension stripped, plus ".md".
func DefaultOutputPath(spec input.Spec) string {
	if spec.Kind == input.KindURL {
		name := "output"
		if u, err := url.Parse(spec.Value); err == nil {
			base := path.Base(u.Path)
			if base != "" && base != "." && base != "/" {
				name = strings.TrimSuffix(base, path.Ext(base))
			}
		}
		return name + ".md"
	}

	base := filepath.Base(spec.Value)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
}

// frontmatter is the YAML block prepended when Options.Frontmatter is set.
type frontmatter struct {
	Source      string `yaml:"source"`
	Model       string `yaml:"model"`
	Pages       int    `yaml:"pages"`
	ConvertedAt string `yaml:"converted_at"`
}

func addFrontmatter(source string, resp *mistral.OCRResponse, body string) (string, error) {
	fm := frontmatter{
		Source:      source,
		Model:       resp.Model,
		Pages:       len(resp.Pages),
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
