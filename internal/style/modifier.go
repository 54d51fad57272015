package style

import "strings"

// Modifier scopes tokens to a viewport breakpoint or an interaction state.
type Modifier int

const (
	// Breakpoints
	ExtraSmall Modifier = iota
	Small
	Medium
	Large
	ExtraLarge
	ExtraExtraLarge

	// States
	Hover
	Focus
	FocusVisible
	FocusWithin
	Active
	Visited
	Disabled
	Checked
	First
	Last
	Odd
	Even
	GroupHover
	PeerChecked
	Dark
	Placeholder
	Before
	After
	AriaChecked
	AriaExpanded
	AriaSelected
	AriaDisabled
)

var modifierNames = []string{
	"xs", "sm", "md", "lg", "xl", "2xl",
	"hover", "focus", "focus-visible", "focus-within", "active", "visited",
	"disabled", "checked", "first", "last", "odd", "even",
	"group-hover", "peer-checked", "dark", "placeholder", "before", "after",
	"aria-checked", "aria-expanded", "aria-selected", "aria-disabled",
}

func (m Modifier) String() string { return nameOf(modifierNames, m) }

// IsBreakpoint reports whether m is a viewport width rather than a state.
func (m Modifier) IsBreakpoint() bool { return m >= ExtraSmall && m <= ExtraExtraLarge }

// Prefix is the textual selector prefix for m alone ("md:").
func (m Modifier) Prefix() string { return Prefix(m) }

// ParseModifier resolves a modifier by name.
func ParseModifier(s string) (Modifier, bool) { return parseName[Modifier](modifierNames, s) }

// Modifiers lists every known modifier, breakpoints first.
func Modifiers() []Modifier {
	mods := make([]Modifier, len(modifierNames))
	for i := range mods {
		mods[i] = Modifier(i)
	}
	return mods
}

// Prefix concatenates the modifier names in the order given and terminates the
// result with a single colon. No combinator is inserted between names, so
// Prefix(Hover, Medium) is "hovermd:" and differs from Prefix(Medium, Hover).
// With no modifiers the prefix is empty.
func Prefix(mods ...Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range mods {
		b.WriteString(m.String())
	}
	b.WriteByte(':')
	return b.String()
}

// Prefixed returns a new slice with prefix applied once to the front of every
// token.
func Prefixed(tokens []string, mods ...Modifier) []string {
	prefix := Prefix(mods...)
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = prefix + token
	}
	return out
}
