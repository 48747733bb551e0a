package imports

import (
	"bytes"

	"golang.org/x/net/html"

	"github.com/depscope/depscope/internal/models"
)

// parseMarkup parses file contents into a queryable node tree.
func parseMarkup(path string, content []byte) (*html.Node, error) {
	root, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &models.ParseError{Path: path, Err: err}
	}
	return root, nil
}

// walkElements visits every element node in document order.
func walkElements(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkElements(child, visit)
	}
}

// attrValue reads a named attribute of an element, or "" if absent.
func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
