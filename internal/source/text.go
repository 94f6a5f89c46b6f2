package source

import (
	"fmt"
	"os"
)

// OpenText opens a plain text file as a single-page document. Plain text
// carries no markup, so it usually yields no headings.
func OpenText(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return &singlePage{
		markdown: string(data),
		text:     string(data),
	}, nil
}
