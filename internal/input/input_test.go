// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Kind
	}{
		{name: "https URL", raw: "https://example.com/doc.pdf", want: KindURL},
		{name: "http URL", raw: "http://example.com/doc.pdf", want: KindURL},
		{name: "URL with port and query", raw: "https://host:8443/a/b.pdf?x=1", want: KindURL},
		{name: "absolute path", raw: "/tmp/doc.pdf", want: KindFile},
		{name: "relative path", raw: "doc.pdf", want: KindFile},
		{name: "relative path with directories", raw: "papers/raw/doc.pdf", want: KindFile},
		{name: "scheme without host", raw: "file:doc.pdf", want: KindFile},
		{name: "bare hostname without scheme", raw: "example.com/doc.pdf", want: KindFile},
		{name: "path with spaces", raw: "my docs/report.pdf", want: KindFile},
		{name: "malformed URL falls back to file", raw: "http://[::1:bad/doc.pdf", want: KindFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			if got.Kind != tt.want {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.raw, got.Kind, tt.want)
			}
			if got.Value != tt.raw {
				t.Errorf("Classify(%q).Value = %q, want the input unchanged", tt.raw, got.Value)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	raw := "https://example.com/doc.pdf"
	first := Classify(raw)
	for i := 0; i < 3; i++ {
		if got := Classify(raw); got != first {
			t.Fatalf("Classify(%q) = %+v on repeat, want %+v", raw, got, first)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindURL.String() != "url" {
		t.Errorf("KindURL.String() = %q, want %q", KindURL.String(), "url")
	}
	if KindFile.String() != "file" {
		t.Errorf("KindFile.String() = %q, want %q", KindFile.String(), "file")
	}
}
