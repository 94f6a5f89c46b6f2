package source

import (
	"math"
	"strings"
)

// Heading tiers relative to the page's body font size. A line noticeably
// larger than the body text is rendered as a markdown heading.
const (
	h1Ratio = 1.9
	h2Ratio = 1.5
	h3Ratio = 1.2
)

// renderMarkdown turns reconstructed page lines into a markdown-style
// rendering: visually large lines become headings, fully bold lines become
// bold paragraphs, everything else passes through. Each source line is
// emitted as its own block so downstream parsing sees it in isolation.
func renderMarkdown(lines []textLine) string {
	body := bodyFontSize(lines)

	var buf strings.Builder
	for _, ln := range lines {
		text := strings.TrimSpace(ln.text)
		if text == "" {
			continue
		}

		switch {
		case body > 0 && ln.size >= body*h1Ratio:
			buf.WriteString("# ")
			buf.WriteString(text)
		case body > 0 && ln.size >= body*h2Ratio:
			buf.WriteString("## ")
			buf.WriteString(text)
		case body > 0 && ln.size >= body*h3Ratio:
			buf.WriteString("### ")
			buf.WriteString(text)
		case ln.bold:
			buf.WriteString("**")
			buf.WriteString(text)
			buf.WriteString("**")
		default:
			buf.WriteString(text)
		}
		buf.WriteString("\n\n")
	}

	return buf.String()
}

// bodyFontSize estimates the dominant text size of a page: the rounded
// size carrying the most characters.
func bodyFontSize(lines []textLine) float64 {
	weight := make(map[float64]int)
	for _, ln := range lines {
		for _, sp := range ln.spans {
			weight[math.Round(sp.Size)] += len(sp.Text)
		}
	}

	var best float64
	var bestWeight int
	for size, w := range weight {
		if w > bestWeight || (w == bestWeight && size < best) {
			best = size
			bestWeight = w
		}
	}
	return best
}
