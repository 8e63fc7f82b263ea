// Package ingest turns local documents into the text blocks the extractor
// consumes. OCR output and plain-text exports separate logical regions
// with blank lines; HTML documents are flattened element by element.
package ingest

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Blocks splits plain document text into blocks on blank lines. Newlines
// inside a block are preserved: the name fallback works line by line.
func Blocks(text string) []string {
	var blocks []string
	for _, part := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		blocks = append(blocks, strings.Trim(part, "\n"))
	}
	return blocks
}

// blockElements are HTML elements that terminate a text block
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"li": true, "tr": true, "td": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"br": true, "table": true, "ul": true, "ol": true,
}

// BlocksFromHTML parses an HTML document and returns its visible text as
// blocks, one per block-level element. Script, style, noscript and iframe
// subtrees are skipped.
func BlocksFromHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var blocks []string
	var current strings.Builder

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			blocks = append(blocks, text)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
			if blockElements[n.Data] {
				flush()
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if current.Len() > 0 {
					current.WriteString(" ")
				}
				current.WriteString(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			flush()
		}
	}

	walk(doc)
	flush()
	return blocks, nil
}
