// Package source opens input files and exposes their per-page content:
// a markdown-style rendering, styled text spans, and the raw line stream.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Span is a styled run of text on a page.
type Span struct {
	Text string
	Size float64 // font size in points (0 for formats without layout)
	Bold bool
	Top  float64 // distance from the top of the page
}

// Document yields per-page content for one input file.
type Document interface {
	PageCount() int
	// PageMarkdown renders page i as markdown. Formats without layout
	// information return their native markdown rendering.
	PageMarkdown(i int) (string, error)
	// PageSpans returns the styled spans of page i, in reading order.
	// Empty for formats without font information.
	PageSpans(i int) []Span
	// PageText returns the raw line-oriented text of page i.
	PageText(i int) string
	// MetaTitle returns the document's metadata title, if any.
	MetaTitle() string
	Close() error
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
}

// Open returns a Document for the file at path, dispatched by extension.
func Open(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return OpenPDF(path)
	case ".md", ".markdown":
		return OpenMarkdown(path)
	case ".txt":
		return OpenText(path)
	case ".docx":
		return OpenDOCX(path)
	case ".html", ".htm":
		return OpenHTML(path)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
