package source

import (
	"fmt"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// pdfDocument reads a PDF via ledongthuc/pdf, reconstructing per-page
// lines with style information from the positioned text runs.
type pdfDocument struct {
	f     *os.File
	title string
	pages []pdfPage
}

type pdfPage struct {
	lines []textLine
	text  string
	err   error // page content extraction failure
}

// textLine is a horizontal run of spans sharing a baseline.
type textLine struct {
	spans []Span
	text  string
	top   float64
	size  float64 // dominant (largest) span size
	bold  bool    // every span on the line is bold
}

// rowTolerance is the Y distance within which runs are treated as one line.
const rowTolerance = 2.0

// OpenPDF opens a PDF file and extracts all page content up front.
func OpenPDF(path string) (Document, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	doc := &pdfDocument{f: f, title: trailerTitle(r)}

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		doc.pages = append(doc.pages, extractPage(r.Page(i)))
	}

	return doc, nil
}

func (d *pdfDocument) PageCount() int { return len(d.pages) }

func (d *pdfDocument) PageMarkdown(i int) (string, error) {
	p := d.pages[i]
	if p.err != nil {
		return "", p.err
	}
	return renderMarkdown(p.lines), nil
}

func (d *pdfDocument) PageSpans(i int) []Span {
	var spans []Span
	for _, ln := range d.pages[i].lines {
		spans = append(spans, ln.spans...)
	}
	return spans
}

func (d *pdfDocument) PageText(i int) string { return d.pages[i].text }

func (d *pdfDocument) MetaTitle() string { return d.title }

func (d *pdfDocument) Close() error { return d.f.Close() }

// extractPage reconstructs the line structure of one page. The pdf library
// panics on malformed content streams, so the whole extraction is fenced;
// a failed page carries its error and contributes no lines.
func extractPage(page pdflib.Page) (out pdfPage) {
	defer func() {
		if r := recover(); r != nil {
			out = pdfPage{err: fmt.Errorf("page content: %v", r)}
		}
	}()

	if page.V.IsNull() {
		return pdfPage{err: fmt.Errorf("page object is null")}
	}

	texts := page.Content().Text
	if len(texts) == 0 {
		return pdfPage{}
	}

	// Page top for converting the bottom-up Y axis into a top-down offset.
	pageTop := page.V.Key("MediaBox").Index(3).Float64()
	for _, t := range texts {
		if t.Y > pageTop {
			pageTop = t.Y
		}
	}

	lines := groupLines(texts, pageTop)

	var buf strings.Builder
	for i, ln := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(ln.text)
	}

	return pdfPage{lines: lines, text: buf.String()}
}

// groupLines clusters text runs by baseline, orders them top-down and
// left-to-right, and merges same-styled neighbors into spans.
func groupLines(texts []pdflib.Text, pageTop float64) []textLine {
	sorted := make([]pdflib.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > rowTolerance || diff < -rowTolerance {
			return sorted[i].Y > sorted[j].Y // higher Y is closer to the top
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []textLine
	var row []pdflib.Text
	flush := func() {
		if ln, ok := buildLine(row, pageTop); ok {
			lines = append(lines, ln)
		}
		row = row[:0]
	}

	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if len(row) > 0 && (row[0].Y-t.Y > rowTolerance || t.Y-row[0].Y > rowTolerance) {
			flush()
		}
		row = append(row, t)
	}
	flush()

	return lines
}

// buildLine merges one row of runs into styled spans and a text string.
func buildLine(row []pdflib.Text, pageTop float64) (textLine, bool) {
	if len(row) == 0 {
		return textLine{}, false
	}

	ln := textLine{top: pageTop - row[0].Y, bold: true}

	var text strings.Builder
	var cur *Span
	var prevEnd float64
	for _, t := range row {
		bold := isBoldFont(t.Font)
		gap := t.X - prevEnd
		spaced := prevEnd > 0 && gap > 0.25*t.FontSize

		if cur != nil && cur.Size == t.FontSize && cur.Bold == bold {
			if spaced {
				cur.Text += " "
			}
			cur.Text += t.S
		} else {
			ln.spans = append(ln.spans, Span{Text: t.S, Size: t.FontSize, Bold: bold, Top: ln.top})
			cur = &ln.spans[len(ln.spans)-1]
		}
		if spaced {
			text.WriteByte(' ')
		}
		text.WriteString(t.S)

		prevEnd = t.X + t.W
		if t.FontSize > ln.size {
			ln.size = t.FontSize
		}
		if !bold {
			ln.bold = false
		}
	}

	ln.text = text.String()
	if strings.TrimSpace(ln.text) == "" {
		return textLine{}, false
	}
	return ln, true
}

func isBoldFont(font string) bool {
	return strings.Contains(strings.ToLower(font), "bold")
}

// trailerTitle reads the Title entry of the trailer Info dictionary.
func trailerTitle(r *pdflib.Reader) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()
	v := r.Trailer().Key("Info").Key("Title")
	if v.Kind() == pdflib.String {
		return v.RawString()
	}
	return ""
}
