package style

import "strconv"

// Transform scales, rotates, translates and skews a box. Scales are
// percentages and angles are degrees. A negative value produces a
// leading-minus utility ("-rotate-45") rather than "rotate--45".
type Transform struct {
	Scale      *int
	ScaleX     *int
	ScaleY     *int
	Rotate     *float64
	TranslateX *Length
	TranslateY *Length
	SkewX      *float64
	SkewY      *float64
}

func (Transform) Aspect() Aspect { return AspectTransform }

func transformTokens(t Transform) []string {
	var parts []string
	if t.Scale != nil {
		parts = append(parts, signed("scale", strconv.Itoa(*t.Scale)))
	}
	if t.ScaleX != nil {
		parts = append(parts, signed("scale-x", strconv.Itoa(*t.ScaleX)))
	}
	if t.ScaleY != nil {
		parts = append(parts, signed("scale-y", strconv.Itoa(*t.ScaleY)))
	}
	if t.Rotate != nil {
		parts = append(parts, signed("rotate", formatNumber(*t.Rotate)))
	}
	if t.TranslateX != nil {
		parts = append(parts, signed("translate-x", t.TranslateX.String()))
	}
	if t.TranslateY != nil {
		parts = append(parts, signed("translate-y", t.TranslateY.String()))
	}
	if t.SkewX != nil {
		parts = append(parts, signed("skew-x", formatNumber(*t.SkewX)))
	}
	if t.SkewY != nil {
		parts = append(parts, signed("skew-y", formatNumber(*t.SkewY)))
	}
	if len(parts) == 0 {
		return nil
	}
	return append([]string{"transform"}, parts...)
}

type TransitionProperty int

const (
	TransitionAll TransitionProperty = iota
	TransitionColors
	TransitionOpacity
	TransitionShadow
	TransitionTransform
	TransitionNone
)

var transitionPropertyNames = []string{"all", "colors", "opacity", "shadow", "transform", "none"}

func (p TransitionProperty) String() string { return nameOf(transitionPropertyNames, p) }

func ParseTransitionProperty(s string) (TransitionProperty, bool) {
	return parseName[TransitionProperty](transitionPropertyNames, s)
}

type Easing int

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

var easingNames = []string{"linear", "in", "out", "in-out"}

func (e Easing) String() string { return nameOf(easingNames, e) }

func ParseEasing(s string) (Easing, bool) { return parseName[Easing](easingNames, s) }

// Transition animates property changes. Duration and Delay are milliseconds.
// The transition token itself is always emitted; Property only narrows it.
type Transition struct {
	Property *TransitionProperty
	Duration *int
	Easing   *Easing
	Delay    *int
}

func (Transition) Aspect() Aspect { return AspectTransition }

func transitionTokens(t Transition) []string {
	tokens := []string{"transition"}
	if t.Property != nil {
		tokens[0] = "transition-" + t.Property.String()
	}
	if t.Duration != nil {
		tokens = append(tokens, "duration-"+strconv.Itoa(*t.Duration))
	}
	if t.Easing != nil {
		tokens = append(tokens, "ease-"+t.Easing.String())
	}
	if t.Delay != nil {
		tokens = append(tokens, "delay-"+strconv.Itoa(*t.Delay))
	}
	return tokens
}

type CursorType int

const (
	CursorAuto CursorType = iota
	CursorDefault
	CursorPointer
	CursorWait
	CursorText
	CursorMove
	CursorHelp
	CursorNotAllowed
	CursorNone
	CursorProgress
	CursorCrosshair
	CursorGrab
	CursorGrabbing
)

var cursorTypeNames = []string{
	"auto", "default", "pointer", "wait", "text", "move", "help",
	"not-allowed", "none", "progress", "crosshair", "grab", "grabbing",
}

func (c CursorType) String() string { return nameOf(cursorTypeNames, c) }

func ParseCursorType(s string) (CursorType, bool) { return parseName[CursorType](cursorTypeNames, s) }

// Cursor sets the pointer shown over the element.
type Cursor struct {
	Type CursorType
}

func (Cursor) Aspect() Aspect { return AspectCursor }

func cursorTokens(c Cursor) []string {
	return []string{"cursor-" + c.Type.String()}
}

// Visibility hides the element when Hidden is set and contributes nothing
// otherwise.
type Visibility struct {
	Hidden bool
}

func (Visibility) Aspect() Aspect { return AspectVisibility }

func visibilityTokens(v Visibility) []string {
	if !v.Hidden {
		return nil
	}
	return []string{"hidden"}
}

type ShadowSize int

const (
	ShadowSmall ShadowSize = iota
	ShadowBase
	ShadowMedium
	ShadowLarge
	ShadowExtraLarge
	Shadow2XL
	ShadowInner
	ShadowNone
)

var shadowSizeNames = []string{"sm", "base", "md", "lg", "xl", "2xl", "inner", "none"}

func (s ShadowSize) String() string { return nameOf(shadowSizeNames, s) }

func ParseShadowSize(s string) (ShadowSize, bool) { return parseName[ShadowSize](shadowSizeNames, s) }

// Shadow casts a box shadow, optionally tinted.
type Shadow struct {
	Size  ShadowSize
	Color Color
}

func (Shadow) Aspect() Aspect { return AspectShadow }

func shadowTokens(s Shadow) []string {
	size := s.Size.String()
	if s.Size == ShadowBase {
		size = ""
	}
	tokens := []string{infix("shadow", size)}
	if !s.Color.IsZero() {
		tokens = append(tokens, "shadow-"+s.Color.String())
	}
	return tokens
}

// Opacity fades the whole element, in percent.
type Opacity struct {
	Percent int
}

func (Opacity) Aspect() Aspect { return AspectOpacity }

func opacityTokens(o Opacity) []string {
	return []string{"opacity-" + strconv.Itoa(o.Percent)}
}
