package section

import (
	"testing"

	"github.com/sectionrank/sectionrank/internal/outline"
)

func lines(page int, texts ...string) []Line {
	out := make([]Line, 0, len(texts))
	for _, t := range texts {
		out = append(out, Line{Text: t, Page: page})
	}
	return out
}

func TestSplit_BasicSections(t *testing.T) {
	stream := lines(0,
		"Introduction",
		"first body line",
		"second body line",
		"Methods",
		"methods body",
	)
	headings := []outline.Heading{
		{Text: "Introduction", Page: 0, Level: outline.H1},
		{Text: "Methods", Page: 0, Level: outline.H2},
	}

	got := Split(stream, headings)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	if got[0].Title != "Introduction" || got[0].Content != "first body line\nsecond body line\n" {
		t.Errorf("unexpected first section: %+v", got[0])
	}
	if got[1].Title != "Methods" || got[1].Content != "methods body\n" {
		t.Errorf("unexpected second section: %+v", got[1])
	}
}

func TestSplit_TrailingSectionClosed(t *testing.T) {
	stream := lines(0, "Only Heading", "trailing content")
	headings := []outline.Heading{{Text: "Only Heading", Page: 0, Level: outline.H1}}

	got := Split(stream, headings)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Content != "trailing content\n" {
		t.Errorf("trailing content lost: %q", got[0].Content)
	}
}

func TestSplit_ContentBeforeFirstHeadingIgnored(t *testing.T) {
	stream := lines(0, "preamble text", "Heading One", "body")
	headings := []outline.Heading{{Text: "Heading One", Page: 0, Level: outline.H1}}

	got := Split(stream, headings)
	if len(got) != 1 || got[0].Content != "body\n" {
		t.Errorf("unexpected sections: %+v", got)
	}
}

func TestSplit_SameTextOnDifferentPages(t *testing.T) {
	stream := append(lines(0, "Ingredients", "flour and water"), lines(2, "Ingredients", "sugar and salt")...)
	headings := []outline.Heading{
		{Text: "Ingredients", Page: 0, Level: outline.H2},
		{Text: "Ingredients", Page: 2, Level: outline.H2},
	}

	got := Split(stream, headings)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	if got[0].Page != 0 || got[1].Page != 2 {
		t.Errorf("pages not kept distinct: %+v", got)
	}
	if got[1].Content != "sugar and salt\n" {
		t.Errorf("second occurrence content wrong: %q", got[1].Content)
	}
}

func TestSplit_HeadingOnWrongPageDoesNotMatch(t *testing.T) {
	// The heading text appears on page 1 but was recorded on page 0.
	stream := lines(1, "Misplaced Heading", "body")
	headings := []outline.Heading{{Text: "Misplaced Heading", Page: 0, Level: outline.H1}}

	if got := Split(stream, headings); len(got) != 0 {
		t.Errorf("expected no sections, got %+v", got)
	}
}

func TestSplit_ColonLabelMatches(t *testing.T) {
	// Bold promotion strips the trailing colon from the heading; the raw
	// line still carries it.
	stream := lines(0, "Summary:", "one line.", "two lines.", "three lines.")
	headings := []outline.Heading{{Text: "Summary", Page: 0, Level: outline.H2}}

	got := Split(stream, headings)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Title != "Summary" {
		t.Errorf("title = %q, want %q", got[0].Title, "Summary")
	}
	if got[0].Content != "one line.\ntwo lines.\nthree lines.\n" {
		t.Errorf("content = %q", got[0].Content)
	}
}

func TestSplit_UnmatchedHeadingSilentlyDropped(t *testing.T) {
	stream := lines(0, "Present Heading", "body")
	headings := []outline.Heading{
		{Text: "Present Heading", Page: 0, Level: outline.H1},
		{Text: "Hyphen- ated Heading", Page: 0, Level: outline.H1},
	}

	got := Split(stream, headings)
	if len(got) != 1 || got[0].Title != "Present Heading" {
		t.Errorf("unexpected sections: %+v", got)
	}
}
