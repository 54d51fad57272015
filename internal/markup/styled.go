package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Styled wraps a node with extra class tokens. The wrapped node is never
// modified; the tokens are merged when the tree is built.
type Styled struct {
	inner  Node
	tokens []string
}

// WithClasses returns a new node that renders inner with tokens appended to
// its class attribute.
func WithClasses(inner Node, tokens ...string) *Styled {
	return &Styled{inner: inner, tokens: append([]string(nil), tokens...)}
}

// Inner returns the wrapped node.
func (s *Styled) Inner() Node { return s.inner }

// Tokens returns a copy of the tokens this wrapper adds.
func (s *Styled) Tokens() []string { return append([]string(nil), s.tokens...) }

// Build implements Node. A non-element inner node is wrapped in a span so the
// tokens have an attribute to land in.
func (s *Styled) Build() *html.Node {
	n := s.inner.Build()
	if n.Type != html.ElementNode {
		span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
		span.AppendChild(n)
		n = span
	}
	if len(s.tokens) == 0 {
		return n
	}

	for i, attr := range n.Attr {
		if attr.Key == "class" {
			n.Attr[i].Val = MergeClasses(attr.Val, s.tokens)
			return n
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: MergeClasses("", s.tokens)})
	return n
}

// MergeClasses appends tokens to an existing class attribute value, separated
// by single spaces. Order is kept and duplicates are not removed.
func MergeClasses(existing string, tokens []string) string {
	parts := strings.Fields(existing)
	for _, token := range tokens {
		if token != "" {
			parts = append(parts, token)
		}
	}
	return strings.Join(parts, " ")
}
