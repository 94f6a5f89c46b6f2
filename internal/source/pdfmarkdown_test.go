package source

import (
	"strings"
	"testing"
)

func plainLine(text string, size float64) textLine {
	return textLine{
		text:  text,
		size:  size,
		spans: []Span{{Text: text, Size: size}},
	}
}

func boldLine(text string, size float64) textLine {
	ln := plainLine(text, size)
	ln.bold = true
	ln.spans[0].Bold = true
	return ln
}

func TestRenderMarkdown_HeadingTiers(t *testing.T) {
	lines := []textLine{
		plainLine("Document Title", 20),
		plainLine("Chapter Heading", 16),
		plainLine("Sub Heading", 13),
		plainLine("regular body text that fills the page with words", 10),
		plainLine("more body text keeping size ten dominant overall", 10),
	}

	md := renderMarkdown(lines)

	if !strings.Contains(md, "# Document Title\n") {
		t.Errorf("missing h1: %q", md)
	}
	if !strings.Contains(md, "## Chapter Heading\n") {
		t.Errorf("missing h2: %q", md)
	}
	if !strings.Contains(md, "### Sub Heading\n") {
		t.Errorf("missing h3: %q", md)
	}
	if strings.Contains(md, "# regular body") {
		t.Errorf("body text rendered as heading: %q", md)
	}
}

func TestRenderMarkdown_BoldLines(t *testing.T) {
	lines := []textLine{
		boldLine("Ingredients:", 10),
		plainLine("flour and a considerable amount of other baking things", 10),
		plainLine("water in reasonable quantities for the entire recipe", 10),
	}

	md := renderMarkdown(lines)

	if !strings.Contains(md, "**Ingredients:**\n") {
		t.Errorf("bold line not emphasized: %q", md)
	}
}

func TestRenderMarkdown_EachLineIsItsOwnBlock(t *testing.T) {
	lines := []textLine{
		boldLine("Bold Label", 10),
		plainLine("immediately following body line with dominant sizing", 10),
	}

	md := renderMarkdown(lines)

	if !strings.Contains(md, "**Bold Label**\n\n") {
		t.Errorf("blocks not separated by blank lines: %q", md)
	}
}

func TestBodyFontSize_WeightedByCharacters(t *testing.T) {
	lines := []textLine{
		plainLine("short big", 20),
		plainLine("a very long run of body text that dominates the character count", 10),
	}
	if got := bodyFontSize(lines); got != 10 {
		t.Errorf("bodyFontSize = %v, want 10", got)
	}
}

func TestBodyFontSize_Empty(t *testing.T) {
	if got := bodyFontSize(nil); got != 0 {
		t.Errorf("bodyFontSize(nil) = %v, want 0", got)
	}
}
