// Package style compiles typed style descriptors into utility class tokens.
//
// # Overview
//
// Each stylistic aspect (border, font, frame, flex, grid, spacing, ...) has a
// Descriptor type: a flat bundle of optional fields. A pure rule maps each
// descriptor to an ordered list of tokens such as "border-b-2" or
// "text-blue-500/75". Rules are looked up through a fixed Aspect table and are
// safe to call from any goroutine.
//
// # Modifiers
//
// Tokens can be scoped to a breakpoint or an interaction state. The prefix of
// a modifier list is the modifier names concatenated in order plus one colon:
//
//	Prefix(Hover)          // "hover:"
//	Prefix(Hover, Medium)  // "hovermd:"
//
// No combinator is inserted, so more than one modifier does not form a
// compound selector and the order of modifiers changes the output.
//
// # Two ways to apply styles
//
// Chained calls attach tokens to a node immediately:
//
//	node := style.Chain(markup.Div()).
//		With(style.Padding{}).
//		With(style.Background{Color: style.Blue(style.Shade600)}, style.Hover).
//		Node()
//
// Declarative blocks collect tokens in a Builder and attach them on exit:
//
//	node := style.Block(markup.Div(), func(b *style.Builder) {
//		b.Add(style.Padding{})
//		b.Within(style.Hover, func(b *style.Builder) {
//			b.Add(style.Background{Color: style.Blue(style.Shade600)})
//		})
//	})
//
// Both go through Tokens and Prefixed and emit the same tokens for the same
// descriptor and modifier.
//
// # Raw values
//
// CustomLength and CustomColor are passed through verbatim between brackets.
// They are never validated.
package style
