/*
Package html creates strands from the textual content of HTML.

Every text node of the HTML input becomes one chunk of the resulting strand,
so the chunk organization reflects the document's text nodes.
*/
package html

import (
	"io"

	"github.com/npillmayer/strands"
	"golang.org/x/net/html"
)

// InnerText creates a strand for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Script and style elements are
// skipped.
func InnerText(n *html.Node) (*strands.Link, error) {
	if n == nil {
		return nil, strands.ErrIllegalArguments
	}
	b := strands.NewBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Link(), nil
}

// TextFromHTML creates a strand from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*strands.Link, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := strands.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return nil, err
		}
	}
	return b.Link(), nil
}

func collectText(n *html.Node, b *strands.Builder) error {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return nil
		}
	case html.TextNode:
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}
