package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// OpenDOCX opens a .docx file as a single-page document. Paragraphs with
// heading styles render as markdown headings; everything else is body text.
func OpenDOCX(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var md, text strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		t := docxParagraphText(para)
		if t == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			md.WriteString(strings.Repeat("#", level))
			md.WriteByte(' ')
		}
		md.WriteString(t)
		md.WriteString("\n\n")
		text.WriteString(t)
		text.WriteByte('\n')
	}

	return &singlePage{
		markdown: md.String(),
		text:     text.String(),
	}, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
