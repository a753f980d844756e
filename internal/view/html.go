package view

import (
	_ "embed"
	"fmt"
	"io"
	"sort"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// KeyAttr carries a node's key into the rendered markup.
const KeyAttr = "data-key"

//go:embed static/storefront.css
var stylesheet string

// Stylesheet returns the page stylesheet, which defines the marquee's
// scroll keyframes.
func Stylesheet() string { return stylesheet }

// Component converts a Node into a gomponents node.
func Component(n *Node) g.Node {
	if n == nil {
		return g.Group(nil)
	}
	if n.IsText() {
		return g.Text(n.Text)
	}

	nodes := make([]g.Node, 0, len(n.Attrs)+len(n.Children)+1)
	if n.Key != "" {
		nodes = append(nodes, g.Attr(KeyAttr, n.Key))
	}
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		nodes = append(nodes, g.Attr(name, n.Attrs[name]))
	}
	for _, c := range n.Children {
		nodes = append(nodes, Component(c))
	}
	return g.El(n.Tag, nodes...)
}

// Render writes n as an HTML fragment.
func Render(w io.Writer, n *Node) error {
	return Component(n).Render(w)
}

// Document wraps a rendered body in a complete HTML page.
type Document struct {
	Title   string
	Lang    string
	Scripts []string
	PageID  string
	Body    *Node
}

// Render writes the full page.
func (d Document) Render(w io.Writer) error {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}
	page := h.Doctype(
		h.HTML(
			h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(d.Title)),
				g.Map(d.Scripts, func(src string) g.Node { return h.Script(h.Src(src)) }),
				h.StyleEl(g.Raw(stylesheet)),
			),
			h.Body(
				g.If(d.PageID != "", g.Attr("data-page-id", d.PageID)),
				Component(d.Body),
			),
		),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
