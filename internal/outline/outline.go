// Package outline infers a structural outline (headings, levels, page
// anchors) for a document from multiple independent heuristics.
package outline

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sectionrank/sectionrank/internal/normalize"
	"github.com/sectionrank/sectionrank/internal/source"
)

// Level is a heading confidence tier, H1 (strongest) through H6.
type Level int

const (
	H1 Level = iota + 1
	H2
	H3
	H4
	H5
	H6
)

func (l Level) String() string { return fmt.Sprintf("H%d", int(l)) }

// Heading is one outline entry. Text is normalized; Page is 0-based.
type Heading struct {
	Text  string
	Page  int
	Level Level
}

// Calibrated extraction constants.
const (
	// headingFontSize is the span size above which text is treated as a
	// heading candidate regardless of markup.
	headingFontSize = 12.0
	// maxHeadingWords caps how long a font-size candidate may be.
	maxHeadingWords = 15
	// minHeadingRunes drops markdown candidates too short to be headings.
	minHeadingRunes = 4
)

// Extract derives the deduplicated heading outline of one document by
// merging the markdown-derived and font-size-derived candidate streams
// page by page. A page whose rendering fails contributes no markdown
// candidates; its font-size candidates are extracted regardless.
func Extract(doc source.Document, log *slog.Logger) []Heading {
	var all []Heading
	for i := 0; i < doc.PageCount(); i++ {
		md, err := doc.PageMarkdown(i)
		if err != nil {
			log.Warn("page rendering failed", "page", i, "error", err)
		} else {
			all = append(all, fromMarkdown(md, i)...)
		}
		all = append(all, fromSpans(doc.PageSpans(i), i)...)
	}
	return Dedup(all)
}

// fromMarkdown walks the goldmark AST of a page rendering. Heading nodes
// map to their depth; paragraphs that are entirely one bold run are
// promoted (trailing colon means a level-3 label, otherwise level 2).
func fromMarkdown(markdown string, page int) []Heading {
	src := []byte(markdown)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	var headings []Heading
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			level := node.Level
			if level > 6 {
				level = 6
			}
			if h, ok := markdownHeading(string(node.Text(src)), Level(level), page); ok {
				headings = append(headings, h)
			}
		case *ast.Paragraph:
			if raw, ok := wholeBoldText(node, src); ok {
				level := H2
				if strings.HasSuffix(raw, ":") {
					level = H3
					raw = strings.TrimSpace(strings.TrimSuffix(raw, ":"))
				}
				if h, ok := markdownHeading(raw, level, page); ok {
					headings = append(headings, h)
				}
			}
		}
	}
	return headings
}

// markdownHeading normalizes a candidate and applies the discard rules:
// too short, or a dash run left over from a table or horizontal rule.
func markdownHeading(raw string, level Level, page int) (Heading, bool) {
	t := normalize.Inline(raw)
	if utf8.RuneCountInString(t) < minHeadingRunes || strings.Contains(t, "---") {
		return Heading{}, false
	}
	return Heading{Text: t, Page: page, Level: level}, true
}

// wholeBoldText returns the text of a paragraph whose only content is a
// single bold emphasis run.
func wholeBoldText(p *ast.Paragraph, src []byte) (string, bool) {
	if p.ChildCount() != 1 {
		return "", false
	}
	em, ok := p.FirstChild().(*ast.Emphasis)
	if !ok || em.Level != 2 {
		return "", false
	}
	return strings.TrimSpace(string(em.Text(src))), true
}

// fromSpans recovers headings that are visually large but not semantically
// marked: any span above the size threshold and short enough to plausibly
// be a heading becomes a flat H2 candidate.
func fromSpans(spans []source.Span, page int) []Heading {
	var headings []Heading
	for _, sp := range spans {
		t := normalize.Inline(sp.Text)
		if t == "" || sp.Size <= headingFontSize {
			continue
		}
		if len(strings.Fields(t)) >= maxHeadingWords {
			continue
		}
		headings = append(headings, Heading{Text: t, Page: page, Level: H2})
	}
	return headings
}

// Dedup keeps the first occurrence of each (text, page) pair, preserving
// discovery order. Idempotent.
func Dedup(headings []Heading) []Heading {
	type key struct {
		text string
		page int
	}
	seen := make(map[key]struct{}, len(headings))
	out := make([]Heading, 0, len(headings))
	for _, h := range headings {
		k := key{h.Text, h.Page}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, h)
	}
	return out
}

// TopLevel returns only the H1/H2 tiers, the ones reliable enough to
// bound sections without over-fragmenting the document.
func TopLevel(headings []Heading) []Heading {
	var out []Heading
	for _, h := range headings {
		if h.Level <= H2 {
			out = append(out, h)
		}
	}
	return out
}
