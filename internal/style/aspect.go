package style

// Aspect tags the stylistic concern a Descriptor describes.
type Aspect int

const (
	AspectBorder Aspect = iota
	AspectRadius
	AspectFont
	AspectFrame
	AspectFlex
	AspectGrid
	AspectGap
	AspectPosition
	AspectTransform
	AspectTransition
	AspectCursor
	AspectVisibility
	AspectDisplay
	AspectMargin
	AspectPadding
	AspectMarginInsets
	AspectPaddingInsets
	AspectBackground
	AspectTextColor
	AspectShadow
	AspectOpacity
	AspectOverflow
	AspectZIndex
)

var aspectNames = []string{
	"border", "radius", "font", "frame", "flex", "grid", "gap", "position",
	"transform", "transition", "cursor", "visibility", "display",
	"margin", "padding", "margin-insets", "padding-insets",
	"background", "text-color", "shadow", "opacity", "overflow", "z-index",
}

func (a Aspect) String() string { return nameOf(aspectNames, a) }

// ParseAspect resolves an aspect by name.
func ParseAspect(s string) (Aspect, bool) { return parseName[Aspect](aspectNames, s) }

// AspectNames lists every aspect name in declaration order.
func AspectNames() []string {
	return append([]string(nil), aspectNames...)
}

// Descriptor is a bundle of optional style parameters for one aspect.
// Descriptors are plain data; constructing one never fails.
type Descriptor interface {
	Aspect() Aspect
}

type ruleFunc func(Descriptor) []string

// rule adapts a typed rule to the dispatch table. Descriptors are passed by
// value; anything else produces no tokens.
func rule[D Descriptor](fn func(D) []string) ruleFunc {
	return func(d Descriptor) []string {
		typed, ok := d.(D)
		if !ok {
			return nil
		}
		return fn(typed)
	}
}

// rules is the read-only aspect dispatch table. Both the direct-application
// adapter and the Builder go through it.
var rules = [...]ruleFunc{
	AspectBorder:        rule(borderTokens),
	AspectRadius:        rule(radiusTokens),
	AspectFont:          rule(fontTokens),
	AspectFrame:         rule(frameTokens),
	AspectFlex:          rule(flexTokens),
	AspectGrid:          rule(gridTokens),
	AspectGap:           rule(gapTokens),
	AspectPosition:      rule(positionTokens),
	AspectTransform:     rule(transformTokens),
	AspectTransition:    rule(transitionTokens),
	AspectCursor:        rule(cursorTokens),
	AspectVisibility:    rule(visibilityTokens),
	AspectDisplay:       rule(displayTokens),
	AspectMargin:        rule(marginTokens),
	AspectPadding:       rule(paddingTokens),
	AspectMarginInsets:  rule(marginInsetsTokens),
	AspectPaddingInsets: rule(paddingInsetsTokens),
	AspectBackground:    rule(backgroundTokens),
	AspectTextColor:     rule(textColorTokens),
	AspectShadow:        rule(shadowTokens),
	AspectOpacity:       rule(opacityTokens),
	AspectOverflow:      rule(overflowTokens),
	AspectZIndex:        rule(zIndexTokens),
}

// Tokens runs the rule for d's aspect and returns its unprefixed tokens in
// rule order. A nil descriptor yields no tokens.
func Tokens(d Descriptor) []string {
	if d == nil {
		return nil
	}
	index := int(d.Aspect())
	if index < 0 || index >= len(rules) || rules[index] == nil {
		return nil
	}
	return rules[index](d)
}
