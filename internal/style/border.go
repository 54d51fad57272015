package style

import "strconv"

// Ptr returns a pointer to v, for filling optional descriptor fields.
func Ptr[T any](v T) *T { return &v }

// BorderStyle is the line style of a border. BorderDivide draws the border
// between children instead of around the element.
type BorderStyle int

const (
	BorderSolid BorderStyle = iota
	BorderDashed
	BorderDotted
	BorderDouble
	BorderHidden
	BorderNone
	BorderDivide
)

var borderStyleNames = []string{"solid", "dashed", "dotted", "double", "hidden", "none", "divide"}

func (s BorderStyle) String() string { return nameOf(borderStyleNames, s) }

// ParseBorderStyle resolves a border style by name.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	return parseName[BorderStyle](borderStyleNames, s)
}

// Border describes border width, the edges it applies to, its line style and
// color. Edges defaults to EdgeAll.
type Border struct {
	Width *int
	Edges []Edge
	Style *BorderStyle
	Color Color
}

func (Border) Aspect() Aspect { return AspectBorder }

// widthSuffix omits the default one-unit width.
func widthSuffix(width *int) string {
	if width == nil || *width == 1 {
		return ""
	}
	return strconv.Itoa(*width)
}

func borderTokens(b Border) []string {
	edges := b.Edges
	if len(edges) == 0 {
		edges = []Edge{EdgeAll}
	}
	width := widthSuffix(b.Width)

	var tokens []string
	if b.Style != nil && *b.Style == BorderDivide {
		for _, axis := range divideAxes(edges) {
			tokens = append(tokens, infix("divide-"+axis, width))
		}
		if !b.Color.IsZero() {
			tokens = append(tokens, "divide-"+b.Color.String())
		}
		return tokens
	}

	for _, edge := range edges {
		tokens = append(tokens, infix(infix("border", edge.Infix()), width))
	}
	if b.Style != nil {
		tokens = append(tokens, "border-"+b.Style.String())
	}
	if !b.Color.IsZero() {
		tokens = append(tokens, "border-"+b.Color.String())
	}
	return tokens
}

// divideAxes maps edges onto the divide axes, in first-seen order.
// Side-by-side edges separate children along x, stacked edges along y.
func divideAxes(edges []Edge) []string {
	var x, y bool
	var axes []string
	add := func(axis string, seen *bool) {
		if !*seen {
			*seen = true
			axes = append(axes, axis)
		}
	}
	for _, edge := range edges {
		switch edge {
		case EdgeHorizontal, EdgeLeading, EdgeTrailing:
			add("x", &x)
		case EdgeVertical, EdgeTop, EdgeBottom:
			add("y", &y)
		default:
			add("x", &x)
			add("y", &y)
		}
	}
	return axes
}

// Radius rounds the corners named by Sides. Size defaults to RadiusMedium and
// Sides to SideAll.
type Radius struct {
	Size  *RadiusSize
	Sides []Side
}

func (Radius) Aspect() Aspect { return AspectRadius }

func radiusTokens(r Radius) []string {
	size := RadiusMedium
	if r.Size != nil {
		size = *r.Size
	}
	sides := r.Sides
	if len(sides) == 0 {
		sides = []Side{SideAll}
	}

	tokens := make([]string, 0, len(sides))
	for _, side := range sides {
		tokens = append(tokens, infix(infix("rounded", side.Infix()), size.suffix()))
	}
	return tokens
}
