package style

import (
	"math"
	"strconv"
	"strings"
)

// Shade is a step on the color scale, from 50 (lightest) to 950 (darkest).
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
	Shade950
)

var shadeNames = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

func (s Shade) String() string { return nameOf(shadeNames, s) }

// ParseShade resolves a shade from its numeric form ("500").
func ParseShade(s string) (Shade, bool) { return parseName[Shade](shadeNames, s) }

// Shades lists every shade in ascending order.
func Shades() []Shade {
	shades := make([]Shade, len(shadeNames))
	for i := range shades {
		shades[i] = Shade(i)
	}
	return shades
}

// Hue is a named chromatic color family. Every hue needs a Shade to form a
// Color; see NewColor.
type Hue int

const (
	HueSlate Hue = iota
	HueGray
	HueZinc
	HueNeutral
	HueStone
	HueRed
	HueOrange
	HueAmber
	HueYellow
	HueLime
	HueGreen
	HueEmerald
	HueTeal
	HueCyan
	HueSky
	HueBlue
	HueIndigo
	HueViolet
	HuePurple
	HueFuchsia
	HuePink
	HueRose
)

var hueNames = []string{
	"slate", "gray", "zinc", "neutral", "stone",
	"red", "orange", "amber", "yellow", "lime", "green", "emerald", "teal",
	"cyan", "sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

func (h Hue) String() string { return nameOf(hueNames, h) }

// ParseHue resolves a hue by name.
func ParseHue(s string) (Hue, bool) { return parseName[Hue](hueNames, s) }

// Hues lists every named hue.
func Hues() []Hue {
	hues := make([]Hue, len(hueNames))
	for i := range hues {
		hues[i] = Hue(i)
	}
	return hues
}

type colorKind int

const (
	colorNone colorKind = iota
	colorShaded
	colorWhite
	colorBlack
	colorTransparent
	colorCurrent
	colorCustom
)

// Color is a hue and shade pair, an achromatic keyword, or a custom literal,
// with an optional opacity. Construct it with NewColor, the hue helpers, White,
// Black, Transparent, Current or CustomColor. The zero value renders as "".
type Color struct {
	kind       colorKind
	hue        Hue
	shade      Shade
	raw        string
	opacity    float64
	hasOpacity bool
}

// NewColor pairs a named hue with a shade.
func NewColor(hue Hue, shade Shade) Color {
	return Color{kind: colorShaded, hue: hue, shade: shade}
}

// CustomColor passes raw through as an arbitrary value ("[#1da1f2]"). raw is
// not checked.
func CustomColor(raw string) Color { return Color{kind: colorCustom, raw: raw} }

var (
	White       = Color{kind: colorWhite}
	Black       = Color{kind: colorBlack}
	Transparent = Color{kind: colorTransparent}
	Current     = Color{kind: colorCurrent}
)

func Slate(shade Shade) Color   { return NewColor(HueSlate, shade) }
func Gray(shade Shade) Color    { return NewColor(HueGray, shade) }
func Zinc(shade Shade) Color    { return NewColor(HueZinc, shade) }
func Neutral(shade Shade) Color { return NewColor(HueNeutral, shade) }
func Stone(shade Shade) Color   { return NewColor(HueStone, shade) }
func Red(shade Shade) Color     { return NewColor(HueRed, shade) }
func Orange(shade Shade) Color  { return NewColor(HueOrange, shade) }
func Amber(shade Shade) Color   { return NewColor(HueAmber, shade) }
func Yellow(shade Shade) Color  { return NewColor(HueYellow, shade) }
func Lime(shade Shade) Color    { return NewColor(HueLime, shade) }
func Green(shade Shade) Color   { return NewColor(HueGreen, shade) }
func Emerald(shade Shade) Color { return NewColor(HueEmerald, shade) }
func Teal(shade Shade) Color    { return NewColor(HueTeal, shade) }
func Cyan(shade Shade) Color    { return NewColor(HueCyan, shade) }
func Sky(shade Shade) Color     { return NewColor(HueSky, shade) }
func Blue(shade Shade) Color    { return NewColor(HueBlue, shade) }
func Indigo(shade Shade) Color  { return NewColor(HueIndigo, shade) }
func Violet(shade Shade) Color  { return NewColor(HueViolet, shade) }
func Purple(shade Shade) Color  { return NewColor(HuePurple, shade) }
func Fuchsia(shade Shade) Color { return NewColor(HueFuchsia, shade) }
func Pink(shade Shade) Color    { return NewColor(HuePink, shade) }
func Rose(shade Shade) Color    { return NewColor(HueRose, shade) }

// WithOpacity returns a copy of c with the given opacity fraction. Values
// outside [0,1] are kept but never rendered.
func (c Color) WithOpacity(opacity float64) Color {
	c.opacity = opacity
	c.hasOpacity = true
	return c
}

// Shaded reports the hue and shade of a named-hue color.
func (c Color) Shaded() (Hue, Shade, bool) {
	if c.kind != colorShaded {
		return 0, 0, false
	}
	return c.hue, c.shade, true
}

// IsZero reports whether c was never set.
func (c Color) IsZero() bool { return c.kind == colorNone }

// Opacity returns the opacity that would be rendered, if any.
func (c Color) Opacity() (float64, bool) {
	if !c.hasOpacity || math.IsNaN(c.opacity) || c.opacity < 0 || c.opacity > 1 {
		return 0, false
	}
	return c.opacity, true
}

func (c Color) String() string {
	var base string
	switch c.kind {
	case colorShaded:
		base = c.hue.String() + "-" + c.shade.String()
	case colorWhite:
		base = "white"
	case colorBlack:
		base = "black"
	case colorTransparent:
		base = "transparent"
	case colorCurrent:
		base = "current"
	case colorCustom:
		base = "[" + c.raw + "]"
	default:
		return ""
	}

	if opacity, ok := c.Opacity(); ok {
		base += "/" + strconv.Itoa(int(math.Round(opacity*100)))
	}
	return base
}

// ParseColor reads the textual forms produced by String, e.g. "blue-500/75",
// "white" or "[#1da1f2]".
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	body, alpha, hasAlpha := strings.Cut(s, "/")
	if strings.HasPrefix(s, "[") {
		// custom literals may themselves contain a slash
		end := strings.LastIndex(s, "]")
		if end < 0 {
			return Color{}, false
		}
		body = s[:end+1]
		alpha, hasAlpha = strings.CutPrefix(s[end+1:], "/")
		if !hasAlpha && end+1 != len(s) {
			return Color{}, false
		}
	}

	var c Color
	switch body {
	case "white":
		c = White
	case "black":
		c = Black
	case "transparent":
		c = Transparent
	case "current":
		c = Current
	default:
		if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
			c = CustomColor(body[1 : len(body)-1])
			break
		}
		name, level, ok := strings.Cut(body, "-")
		if !ok {
			return Color{}, false
		}
		hue, ok := ParseHue(name)
		if !ok {
			return Color{}, false
		}
		shade, ok := ParseShade(level)
		if !ok {
			return Color{}, false
		}
		c = NewColor(hue, shade)
	}

	if hasAlpha {
		percent, err := strconv.Atoi(alpha)
		if err != nil {
			return Color{}, false
		}
		c = c.WithOpacity(float64(percent) / 100)
	}
	return c, true
}
