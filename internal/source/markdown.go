package source

import (
	"fmt"
	"os"
	"strings"
)

// OpenMarkdown opens a markdown file as a single-page document whose
// rendering is the file content itself.
func OpenMarkdown(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	return &singlePage{
		markdown: string(data),
		text:     markdownPlainText(string(data)),
	}, nil
}

// markdownPlainText strips leading heading markers per line so the text
// stream lines up with extracted heading texts.
func markdownPlainText(md string) string {
	lines := strings.Split(md, "\n")
	for i, ln := range lines {
		trimmed := strings.TrimLeft(ln, " \t")
		if strings.HasPrefix(trimmed, "#") {
			lines[i] = strings.TrimLeft(trimmed, "# ")
		}
	}
	return strings.Join(lines, "\n")
}
