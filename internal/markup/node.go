// Package markup is the element tree that receives generated class tokens and
// serializes them to HTML.
package markup

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is anything that can be turned into an HTML tree. Build must return a
// fresh, parentless tree on every call.
type Node interface {
	Build() *html.Node
}

// Element is a tag with attributes and children.
type Element struct {
	Tag      string
	Attrs    []html.Attribute
	Children []Node
}

// El creates an element with the given children.
func El(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

func Div(children ...Node) *Element     { return El("div", children...) }
func Span(children ...Node) *Element    { return El("span", children...) }
func P(children ...Node) *Element       { return El("p", children...) }
func Button(children ...Node) *Element  { return El("button", children...) }
func Section(children ...Node) *Element { return El("section", children...) }

// WithAttr returns a copy of e carrying one more attribute.
func (e *Element) WithAttr(key, value string) *Element {
	clone := *e
	clone.Attrs = append(append([]html.Attribute(nil), e.Attrs...), html.Attribute{Key: key, Val: value})
	return &clone
}

// Build implements Node.
func (e *Element) Build() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
		Attr:     append([]html.Attribute(nil), e.Attrs...),
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		n.AppendChild(child.Build())
	}
	return n
}

// Text is a text node; it is escaped on render.
type Text string

// Build implements Node.
func (t Text) Build() *html.Node {
	return &html.Node{Type: html.TextNode, Data: string(t)}
}

// Render writes n as HTML.
func Render(w io.Writer, n Node) error {
	return html.Render(w, n.Build())
}

// String renders n to a string. Rendering a well-formed tree into memory does
// not fail, so errors are folded into an empty result.
func String(n Node) string {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// Classes returns the class tokens n renders with, in attribute order.
func Classes(n Node) []string {
	built := n.Build()
	for _, attr := range built.Attr {
		if attr.Key == "class" {
			return strings.Fields(attr.Val)
		}
	}
	return nil
}
