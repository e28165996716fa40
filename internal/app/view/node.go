package view

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el builds an element node. attrs are key/value pairs; nil children are
// skipped.
func el(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func hidden(name, value string) *html.Node {
	return el("input", attrs("type", "hidden", "name", name, "value", value))
}

// Render serializes a node tree as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// Find returns the first element in the tree carrying attribute key, or nil.
func Find(n *html.Node, key string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == key {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, key); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element carrying attribute key, in document order.
func FindAll(n *html.Node, key string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == key {
					out = append(out, n)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Text concatenates the text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var s string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s += Text(c)
	}
	return s
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ByID returns the element whose id attribute equals id, or nil.
func ByID(n *html.Node, id string) *html.Node {
	for _, e := range FindAll(n, "id") {
		if v, _ := Attr(e, "id"); v == id {
			return e
		}
	}
	return nil
}
