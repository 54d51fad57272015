package style

// nameOf returns the canonical form of an enum value, or "" when the value is
// outside its table.
func nameOf[T ~int](names []string, v T) string {
	index := int(v)
	if index < 0 || index >= len(names) {
		return ""
	}
	return names[index]
}

// parseName is the inverse of nameOf.
func parseName[T ~int](names []string, s string) (T, bool) {
	for i, name := range names {
		if name == s {
			return T(i), true
		}
	}
	return 0, false
}

// infix joins a utility stem and an optional part with a dash.
func infix(stem, part string) string {
	if part == "" {
		return stem
	}
	return stem + "-" + part
}

// Edge selects which sides of a box a margin, padding or border applies to.
type Edge int

const (
	EdgeAll Edge = iota
	EdgeTop
	EdgeLeading
	EdgeTrailing
	EdgeBottom
	EdgeHorizontal
	EdgeVertical
)

var edgeNames = []string{"all", "top", "leading", "trailing", "bottom", "horizontal", "vertical"}

var edgeInfixes = []string{"", "t", "l", "r", "b", "x", "y"}

func (e Edge) String() string { return nameOf(edgeNames, e) }

// Infix is the short side marker used inside utility names ("t" in "mt-4").
// EdgeAll contributes no infix.
func (e Edge) Infix() string { return nameOf(edgeInfixes, e) }

// ParseEdge resolves an edge by name.
func ParseEdge(s string) (Edge, bool) { return parseName[Edge](edgeNames, s) }

// Side selects a corner or side for border radius.
type Side int

const (
	SideAll Side = iota
	SideTop
	SideBottom
	SideLeading
	SideTrailing
	SideTopLeading
	SideTopTrailing
	SideBottomLeading
	SideBottomTrailing
)

var sideNames = []string{
	"all", "top", "bottom", "leading", "trailing",
	"top-leading", "top-trailing", "bottom-leading", "bottom-trailing",
}

var sideInfixes = []string{"", "t", "b", "l", "r", "tl", "tr", "bl", "br"}

func (s Side) String() string { return nameOf(sideNames, s) }

// Infix is the short corner marker ("tl" in "rounded-tl-lg").
func (s Side) Infix() string { return nameOf(sideInfixes, s) }

// ParseSide resolves a radius side by name.
func ParseSide(s string) (Side, bool) { return parseName[Side](sideNames, s) }

// RadiusSize is the corner radius scale.
type RadiusSize int

const (
	RadiusNone RadiusSize = iota
	RadiusSmall
	RadiusBase
	RadiusMedium
	RadiusLarge
	RadiusExtraLarge
	Radius2XL
	Radius3XL
	RadiusFull
)

var radiusSizeNames = []string{"none", "sm", "base", "md", "lg", "xl", "2xl", "3xl", "full"}

func (r RadiusSize) String() string { return nameOf(radiusSizeNames, r) }

// suffix is the size part of a rounded-* utility; the base size has none.
func (r RadiusSize) suffix() string {
	if r == RadiusBase {
		return ""
	}
	return r.String()
}

// ParseRadiusSize resolves a radius size by name.
func ParseRadiusSize(s string) (RadiusSize, bool) {
	return parseName[RadiusSize](radiusSizeNames, s)
}
