package style

import "github.com/alexisbeaulieu97/slate/internal/markup"

// Builder accumulates tokens for one declarative block. At most one modifier
// scope is active; entering a scope replaces the current one instead of
// nesting inside it.
//
// A Builder is single-use and single-writer. Once flushed it ignores further
// additions. Concurrent page construction needs one Builder per page.
type Builder struct {
	tokens  []string
	scope   *Modifier
	flushed bool
}

// NewBuilder returns an empty builder with no active scope.
func NewBuilder() *Builder {
	return &Builder{}
}

// EnterScope makes m the active modifier, replacing any active one.
func (b *Builder) EnterScope(m Modifier) {
	b.scope = &m
}

// ExitScope clears the active modifier.
func (b *Builder) ExitScope() {
	b.scope = nil
}

// Scope reports the active modifier, if any.
func (b *Builder) Scope() (Modifier, bool) {
	if b.scope == nil {
		return 0, false
	}
	return *b.scope, true
}

// AddToken records base under the active scope's prefix.
func (b *Builder) AddToken(base string) {
	if b.flushed {
		return
	}
	b.tokens = append(b.tokens, b.prefix()+base)
}

// Add runs d's rule and records its tokens under the active scope. It goes
// through the same Tokens and Prefixed path as Apply.
func (b *Builder) Add(descriptors ...Descriptor) {
	if b.flushed {
		return
	}
	for _, d := range descriptors {
		if b.scope == nil {
			b.tokens = append(b.tokens, Prefixed(Tokens(d))...)
			continue
		}
		b.tokens = append(b.tokens, Prefixed(Tokens(d), *b.scope)...)
	}
}

// Within runs fn with m as the active scope and clears the scope afterwards.
// Scopes do not nest: an inner Within replaces the outer scope, and its exit
// leaves the rest of the outer block unscoped.
func (b *Builder) Within(m Modifier, fn func(*Builder)) {
	b.EnterScope(m)
	fn(b)
	b.ExitScope()
}

// Flush hands over the accumulated tokens. The builder is spent afterwards and
// later flushes return nil.
func (b *Builder) Flush() []string {
	if b.flushed {
		return nil
	}
	b.flushed = true
	tokens := b.tokens
	b.tokens = nil
	b.scope = nil
	return tokens
}

func (b *Builder) prefix() string {
	if b.scope == nil {
		return ""
	}
	return Prefix(*b.scope)
}

// Block runs fn against a fresh builder and wraps node with the flushed
// tokens.
func Block(node markup.Node, fn func(*Builder)) *markup.Styled {
	b := NewBuilder()
	fn(b)
	return markup.WithClasses(node, b.Flush()...)
}
