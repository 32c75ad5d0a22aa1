package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/marktree/tree"
	perrors "github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoElement is returned if an HTML parse tree does not contain any
// element node.
var ErrNoElement = errors.New("HTML tree contains no element")

// Option is a type to configure the conversion of HTML parse trees.
type Option func(*converter)

// SkipWhitespace is an option to drop text nodes consisting of
// whitespace only. The HTML parser reports every line break between
// tags as a text node; often clients are not interested in them.
func SkipWhitespace() Option {
	return func(c *converter) {
		c.skipWhitespace = true
	}
}

// KeepNamespaces is an option to prefix foreign attribute keys with their
// namespace, e.g. "xlink:href". Without this option the namespace is dropped.
func KeepNamespaces() Option {
	return func(c *converter) {
		c.keepNamespaces = true
	}
}

type converter struct {
	skipWhitespace bool
	keepNamespaces bool
}

// Parse reads HTML from r, using the HTML5 parser of package html, and
// converts the result to a markup tree. The root of the result is the
// <html> element.
func Parse(r io.Reader, opts ...Option) (*tree.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, perrors.Wrap(err, "parsing HTML")
	}
	return FromHTML(doc, opts...)
}

// FromHTML converts an HTML parse tree into a markup tree. If h is a
// document node, its first element child becomes the root.
func FromHTML(h *html.Node, opts ...Option) (*tree.Node, error) {
	c := &converter{}
	for _, option := range opts {
		option(c)
	}
	if h == nil {
		return nil, ErrNoElement
	}
	if h.Type == html.DocumentNode {
		h = firstElement(h)
		if h == nil {
			return nil, ErrNoElement
		}
	}
	if h.Type != html.ElementNode {
		return nil, perrors.Wrapf(ErrNoElement, "node of type %d", h.Type)
	}
	root := c.element(h)
	tracer().Debugf("converted HTML tree to %v", root)
	return root, nil
}

func firstElement(h *html.Node) *html.Node {
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

func (c *converter) element(h *html.Node) *tree.Node {
	attrs := make([]tree.Attribute, 0, len(h.Attr))
	for _, a := range h.Attr {
		key := a.Key
		if c.keepNamespaces && a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		attrs = append(attrs, tree.Attribute{Key: key, Value: a.Val})
	}
	var children []tree.Child
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			children = append(children, c.element(ch))
		case html.TextNode:
			if c.skipWhitespace && strings.TrimSpace(ch.Data) == "" {
				continue
			}
			children = append(children, tree.Leaf(ch.Data))
		default:
			tracer().Debugf("dropping HTML node of type %d", ch.Type)
		}
	}
	return tree.NewNode(h.Data, tree.NewAttrMap(attrs...), children...)
}

// ToHTML converts a markup tree into an HTML parse tree of package html.
// Known tags are mapped to their atoms.
func ToHTML(r tree.Ref) (*html.Node, error) {
	n, err := tree.Resolve(r)
	if err != nil {
		return nil, err
	}
	return toHTML(n), nil
}

func toHTML(n *tree.Node) *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range tree.Attributes(n).All() {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	for _, ch := range tree.Children(n) {
		switch c := ch.(type) {
		case tree.Leaf:
			h.AppendChild(&html.Node{Type: html.TextNode, Data: string(c)})
		case *tree.Node:
			h.AppendChild(toHTML(c))
		}
	}
	return h
}

// Render writes a markup tree as HTML text to w, using the renderer of
// package html.
func Render(w io.Writer, r tree.Ref) error {
	h, err := ToHTML(r)
	if err != nil {
		return err
	}
	return html.Render(w, h)
}
