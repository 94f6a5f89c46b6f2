// Package normalize canonicalizes text extracted from documents: stray
// markup, bullet glyphs, broken line wraps.
package normalize

import (
	"regexp"
	"strings"
)

var (
	bulletRuns    = regexp.MustCompile(`[•–-]+`)
	lineBreaks    = regexp.MustCompile(`\s*\n\s*`)
	whitespace    = regexp.MustCompile(`\s+`)
	leadingBullet = regexp.MustCompile(`(?m)^\s*[•–o-]+\s*`)
	inlineMarks   = regexp.MustCompile("[*_`]")
	terminalPunct = regexp.MustCompile(`[.?!:,]$`)
)

var inlineChars = strings.NewReplacer("–", "-", "“", `"`, "”", `"`)

// CleanText strips bullet glyphs and dash runs, collapses newlines and
// whitespace runs to single spaces, and trims. Idempotent.
func CleanText(s string) string {
	s = bulletRuns.ReplaceAllString(s, "")
	s = lineBreaks.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Inline canonicalizes a single heading or span: markdown emphasis markers
// removed, en-dashes and curly quotes unified, whitespace collapsed.
func Inline(s string) string {
	s = inlineMarks.ReplaceAllString(s, "")
	s = inlineChars.Replace(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CombineLines reflows bullet-wrapped lines into sentence-like units.
// Lines ending in terminal punctuation close out the accumulated fragment;
// other lines are joined to it with commas. A trailing unterminated
// fragment is always flushed, never dropped.
func CombineLines(s string) string {
	s = leadingBullet.ReplaceAllString(s, "")

	var units []string
	var frag string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if terminalPunct.MatchString(line) {
			if frag != "" {
				units = append(units, strings.TrimSpace(frag+" "+line))
				frag = ""
			} else {
				units = append(units, line)
			}
		} else if frag != "" {
			frag += ", " + line
		} else {
			frag = line
		}
	}
	if frag != "" {
		units = append(units, strings.TrimSpace(frag))
	}

	return strings.Join(units, " ")
}
