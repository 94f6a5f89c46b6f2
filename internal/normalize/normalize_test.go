package normalize

import (
	"strings"
	"testing"
)

func TestCleanText_StripsBulletsAndCollapsesWhitespace(t *testing.T) {
	in := "• First item\n–  Second   item\nThird\n"
	got := CleanText(in)
	want := "First item Second item Third"
	if got != want {
		t.Errorf("CleanText(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"• Bullet\n– dash\n\n  spaced   out  ",
		"already clean",
		"",
		"line one\nline two\nline three.",
	}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestInline_UnifiesDashesAndQuotes(t *testing.T) {
	got := Inline("**Bold – “quoted”**   text")
	want := `Bold - "quoted" text`
	if got != want {
		t.Errorf("Inline = %q, want %q", got, want)
	}
}

func TestCombineLines_JoinsFragmentsWithCommas(t *testing.T) {
	in := "chopped onions\ndiced tomatoes\nserve warm.\n"
	got := CombineLines(in)
	want := "chopped onions, diced tomatoes serve warm."
	if got != want {
		t.Errorf("CombineLines = %q, want %q", got, want)
	}
}

func TestCombineLines_TerminatedLinesStandAlone(t *testing.T) {
	in := "First sentence.\nSecond sentence!\n"
	got := CombineLines(in)
	want := "First sentence. Second sentence!"
	if got != want {
		t.Errorf("CombineLines = %q, want %q", got, want)
	}
}

func TestCombineLines_NeverDropsTrailingFragment(t *testing.T) {
	in := "Done here.\na trailing fragment with no punctuation\n"
	got := CombineLines(in)
	if !strings.Contains(got, "a trailing fragment with no punctuation") {
		t.Errorf("trailing fragment lost: %q", got)
	}
}

func TestCombineLines_StripsLeadingBullets(t *testing.T) {
	in := "• one thing\n- another thing\no third thing.\n"
	got := CombineLines(in)
	want := "one thing, another thing third thing."
	if got != want {
		t.Errorf("CombineLines = %q, want %q", got, want)
	}
}

func TestCombineLines_Empty(t *testing.T) {
	if got := CombineLines(""); got != "" {
		t.Errorf("CombineLines(\"\") = %q, want empty", got)
	}
	if got := CombineLines("\n\n  \n"); got != "" {
		t.Errorf("CombineLines(blank) = %q, want empty", got)
	}
}
