// Package parser extracts structure from fetched HTML. Not in the fixture
// registry; it carries the permissive citations of the parsing stack it
// imitates (BeautifulSoup, MIT License; requests, Apache License 2.0).
//
// SPDX-License-Identifier: MIT
package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// Link is one anchor extracted from a document.
type Link struct {
	URL  string
	Text string
}

// ExtractLinks returns every anchor with an href, in document order.
func ExtractLinks(document string) ([]Link, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, Link{URL: attr.Val, Text: nodeText(n)})
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return links, nil
}

// ExtractText returns the document's visible text, script and style
// subtrees excluded.
func ExtractText(document string) (string, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(parts, " "), nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
