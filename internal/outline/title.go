package outline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sectionrank/sectionrank/internal/normalize"
	"github.com/sectionrank/sectionrank/internal/source"
)

// Title span length bounds: shorter is likely an artifact, longer is
// likely body text.
const (
	minTitleRunes = 4
	maxTitleRunes = 80
)

// Resolve picks the best title for a document. Each rule is tried in
// order; the first non-empty answer wins. Falls back to the outline
// (first H1, else first heading) and finally the empty string for a
// document with no content at all.
func Resolve(doc source.Document, headings []Heading) string {
	rules := []func(source.Document) string{
		metadataTitle,
		prominentSpanTitle,
		firstLineTitle,
	}
	for _, rule := range rules {
		if t := rule(doc); t != "" {
			return t
		}
	}
	return outlineTitle(headings)
}

// metadataTitle accepts the document metadata title when it carries
// enough signal.
func metadataTitle(doc source.Document) string {
	t := normalize.Inline(doc.MetaTitle())
	if utf8.RuneCountInString(t) > 5 {
		return t
	}
	return ""
}

// prominentSpanTitle scans the first page's spans largest-first (ties
// broken top-down) for the first plausibly title-sized text.
func prominentSpanTitle(doc source.Document) string {
	if doc.PageCount() == 0 {
		return ""
	}
	spans := append([]source.Span(nil), doc.PageSpans(0)...)
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Size != spans[j].Size {
			return spans[i].Size > spans[j].Size
		}
		return spans[i].Top < spans[j].Top
	})
	for _, sp := range spans {
		t := normalize.Inline(sp.Text)
		n := utf8.RuneCountInString(t)
		if n > minTitleRunes && n < maxTitleRunes {
			return t
		}
	}
	return ""
}

// firstLineTitle falls back to the first non-trivial raw line of the
// first page.
func firstLineTitle(doc source.Document) string {
	if doc.PageCount() == 0 {
		return ""
	}
	for _, line := range strings.Split(doc.PageText(0), "\n") {
		t := normalize.Inline(line)
		if utf8.RuneCountInString(t) > 5 {
			return t
		}
	}
	return ""
}

func outlineTitle(headings []Heading) string {
	for _, h := range headings {
		if h.Level == H1 {
			return h.Text
		}
	}
	if len(headings) > 0 {
		return headings[0].Text
	}
	return ""
}
