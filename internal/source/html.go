package source

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// OpenHTML opens an HTML file as a single-page document. Heading tags
// render as markdown headings; paragraphs wrapped entirely in b/strong
// render as bold so they are eligible for bold promotion.
func OpenHTML(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var md, text strings.Builder
	emit := func(markdown, plain string) {
		md.WriteString(markdown)
		md.WriteString("\n\n")
		text.WriteString(plain)
		text.WriteByte('\n')
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := htmlHeadingLevel(n.Data); level > 0 {
				if t := htmlTextContent(n); t != "" {
					emit(strings.Repeat("#", level)+" "+t, t)
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				t := htmlTextContent(n)
				if t == "" {
					return
				}
				if htmlAllBold(n) {
					emit("**"+t+"**", t)
				} else {
					emit(t, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := htmlFindElement(doc, "body"); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	var title string
	if t := htmlFindElement(doc, "title"); t != nil {
		title = htmlTextContent(t)
	}

	return &singlePage{
		markdown: md.String(),
		text:     text.String(),
		title:    title,
	}, nil
}

func htmlHeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// htmlAllBold reports whether every text node under n sits inside a
// b/strong element.
func htmlAllBold(n *html.Node) bool {
	var check func(*html.Node, bool) bool
	check = func(n *html.Node, bold bool) bool {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" && !bold {
			return false
		}
		if n.Type == html.ElementNode && (n.Data == "b" || n.Data == "strong") {
			bold = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !check(c, bold) {
				return false
			}
		}
		return true
	}
	return check(n, false)
}

func htmlTextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func htmlFindElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := htmlFindElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
