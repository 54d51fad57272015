package style

import "github.com/alexisbeaulieu97/slate/internal/markup"

// Apply runs d's rule, prefixes every token with the combined modifier prefix
// and returns a new node wrapping node with those tokens. node itself is left
// untouched.
func Apply(node markup.Node, d Descriptor, mods ...Modifier) *markup.Styled {
	return markup.WithClasses(node, Prefixed(Tokens(d), mods...)...)
}

// Styler is the chained-call surface over Apply. Styler values are immutable;
// every With returns a new one.
type Styler struct {
	node markup.Node
}

// Chain starts a chain of style applications on node.
func Chain(node markup.Node) Styler {
	return Styler{node: node}
}

// With applies d under mods on top of everything applied so far.
func (s Styler) With(d Descriptor, mods ...Modifier) Styler {
	return Styler{node: Apply(s.node, d, mods...)}
}

// Node returns the styled node.
func (s Styler) Node() markup.Node {
	return s.node
}
