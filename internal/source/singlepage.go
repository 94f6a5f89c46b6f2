package source

// singlePage is a Document with one logical page and no layout spans.
// Formats without pagination (markdown, text, docx, html) use it.
type singlePage struct {
	markdown string
	text     string
	title    string
}

func (d *singlePage) PageCount() int { return 1 }

func (d *singlePage) PageMarkdown(i int) (string, error) { return d.markdown, nil }

func (d *singlePage) PageSpans(i int) []Span { return nil }

func (d *singlePage) PageText(i int) string { return d.text }

func (d *singlePage) MetaTitle() string { return d.title }

func (d *singlePage) Close() error { return nil }
