package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Paragraphs reduces raw page markup to readable body text: the text of each
// <p> element with all inline tags stripped, paragraphs shorter than minLen
// discarded as boilerplate, survivors joined with blank lines. Unparseable
// markup yields an empty string rather than an error — a content-less source
// is simply skipped downstream.
func Paragraphs(rawHTML string, minLen int) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var paragraphs []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p":
				text := strings.TrimSpace(nodeText(n))
				if len(text) >= minLen {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(paragraphs, "\n\n")
}

// nodeText collects the text content of a node and its descendants.
func nodeText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return buf.String()
}
