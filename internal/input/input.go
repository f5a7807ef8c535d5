// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input classifies the conversion argument as a remote URL or a
// local file path.
package input

import "net/url"

// Kind identifies how an input value should be submitted for OCR.
type Kind int

const (
	KindFile Kind = iota
	KindURL
)

func (k Kind) String() string {
	if k == KindURL {
		return "url"
	}
	return "file"
}

// Spec is a classified input: a value and exactly one kind.
type Spec struct {
	Kind  Kind
	Value string
}

// Classify determines whether raw designates a remote resource or a local
// file. A string is a URL iff it parses with both a scheme and a host;
// everything else, including strings that fail to parse at all, is a file
// path. Classification is pure and never fails.
//
// Known limitation: a Windows drive-letter path that happens to parse with
// a scheme and host classifies as a URL.
func Classify(raw string) Spec {
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		return Spec{Kind: KindURL, Value: raw}
	}
	return Spec{Kind: KindFile, Value: raw}
}
