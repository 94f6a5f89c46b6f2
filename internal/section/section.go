// Package section splits a document's page-ordered line stream into
// contiguous sections bounded by top-level headings.
package section

import (
	"strings"

	"github.com/sectionrank/sectionrank/internal/normalize"
	"github.com/sectionrank/sectionrank/internal/outline"
)

// Section is a contiguous run of document text bounded by two headings.
// Content is raw, newline-joined. Page is the 0-based page of the
// heading that opened the section.
type Section struct {
	Document string
	Title    string
	Content  string
	Page     int
}

// Line is one line of a document's page-ordered text stream.
type Line struct {
	Text string
	Page int
}

type boundaryKey struct {
	text string
	page int
}

// Split walks the line stream in document order, opening a new section
// whenever a line's normalized text matches a heading recorded on that
// page. Lines between headings accumulate verbatim into the open
// section. The lookup is keyed by (text, page), so identical heading
// text on different pages stays distinct. Headings whose text never
// appears in the stream produce no section; that is a known precision
// gap, not an error.
func Split(lines []Line, headings []outline.Heading) []Section {
	bounds := make(map[boundaryKey]struct{}, len(headings))
	for _, h := range headings {
		bounds[boundaryKey{h.Text, h.Page}] = struct{}{}
	}

	var sections []Section
	var current *Section
	for _, ln := range lines {
		if title, ok := matchBoundary(bounds, ln); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: title, Page: ln.Page}
			continue
		}
		if current != nil {
			current.Content += ln.Text + "\n"
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}

// matchBoundary checks a line against the heading set. Bold-promoted
// label headings had their trailing colon stripped, so a line matching
// up to a trailing colon still counts.
func matchBoundary(bounds map[boundaryKey]struct{}, ln Line) (string, bool) {
	t := normalize.Inline(ln.Text)
	if t == "" {
		return "", false
	}
	if _, ok := bounds[boundaryKey{t, ln.Page}]; ok {
		return t, true
	}
	if trimmed := strings.TrimSuffix(t, ":"); trimmed != t {
		trimmed = strings.TrimSpace(trimmed)
		if _, ok := bounds[boundaryKey{trimmed, ln.Page}]; ok {
			return trimmed, true
		}
	}
	return "", false
}
