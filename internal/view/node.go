// Package view is the value produced by rendering a component: a tree of
// element and text nodes that hosts turn into HTML or inspect directly.
package view

import (
	"strings"
)

// Attrs are the HTML attributes of an element.
type Attrs map[string]string

// Node is an element (Tag set) or a text leaf (Tag empty).
type Node struct {
	Tag      string  `json:"tag,omitempty"`
	Key      string  `json:"key,omitempty"`
	Attrs    Attrs   `json:"attrs,omitempty"`
	Children []*Node `json:"children,omitempty"`
	Text     string  `json:"text,omitempty"`
}

// El creates an element. Nil children are dropped.
func El(tag string, attrs Attrs, children ...*Node) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Text creates a text leaf.
func Text(s string) *Node {
	return &Node{Text: s}
}

// WithKey sets the reconciliation key used to tell repeated siblings apart.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool { return n != nil && n.Tag == "" }

// Div creates a <div>.
func Div(attrs Attrs, children ...*Node) *Node { return El("div", attrs, children...) }

// Span creates a <span> holding text.
func Span(attrs Attrs, text string) *Node { return El("span", attrs, Text(text)) }

// P creates a <p> holding text.
func P(attrs Attrs, text string) *Node { return El("p", attrs, Text(text)) }

// Ul creates a <ul>.
func Ul(attrs Attrs, children ...*Node) *Node { return El("ul", attrs, children...) }

// Li creates an <li>.
func Li(attrs Attrs, children ...*Node) *Node { return El("li", attrs, children...) }

// Img creates an <img>.
func Img(attrs Attrs) *Node { return El("img", attrs) }

// Button creates a <button>.
func Button(attrs Attrs, children ...*Node) *Node { return El("button", attrs, children...) }

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the current node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every descendant (including n) with the given tag, in document order.
func FindAll(n *Node, tag string) []*Node {
	var out []*Node
	Walk(n, func(x *Node) bool {
		if x.Tag == tag {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Find returns the first node whose attribute name equals value.
func Find(n *Node, name, value string) *Node {
	var found *Node
	Walk(n, func(x *Node) bool {
		if found != nil {
			return false
		}
		if x.Attr(name) == value {
			found = x
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates every text leaf below n.
func (n *Node) TextContent() string {
	var b strings.Builder
	Walk(n, func(x *Node) bool {
		if x.IsText() {
			b.WriteString(x.Text)
		}
		return true
	})
	return b.String()
}
