package style

import (
	"strconv"
	"strings"
)

type lengthKind int

const (
	lengthUnits lengthKind = iota
	lengthPx
	lengthAuto
	lengthFull
	lengthScreen
	lengthMin
	lengthMax
	lengthFit
	lengthFraction
	lengthCustom
)

var lengthKeywords = []string{"", "px", "auto", "full", "screen", "min", "max", "fit"}

// Length is a value on the spacing/sizing scale. The zero value is Units(0).
type Length struct {
	kind  lengthKind
	units float64
	num   int
	den   int
	raw   string
}

// Units is a multiple of the spacing unit; negative values are allowed.
func Units(n float64) Length { return Length{kind: lengthUnits, units: n} }

// Fraction is a percentage-like ratio such as 1/2.
func Fraction(num, den int) Length { return Length{kind: lengthFraction, num: num, den: den} }

// CustomLength passes raw through as an arbitrary value ("[37px]"). raw is not
// checked.
func CustomLength(raw string) Length { return Length{kind: lengthCustom, raw: raw} }

var (
	Px     = Length{kind: lengthPx}
	Auto   = Length{kind: lengthAuto}
	Full   = Length{kind: lengthFull}
	Screen = Length{kind: lengthScreen}
	Min    = Length{kind: lengthMin}
	Max    = Length{kind: lengthMax}
	Fit    = Length{kind: lengthFit}
)

// IsZero reports whether l is exactly zero spacing units.
func (l Length) IsZero() bool { return l.kind == lengthUnits && l.units == 0 }

func (l Length) String() string {
	switch l.kind {
	case lengthUnits:
		return formatNumber(l.units)
	case lengthFraction:
		return strconv.Itoa(l.num) + "/" + strconv.Itoa(l.den)
	case lengthCustom:
		return "[" + l.raw + "]"
	default:
		return nameOf(lengthKeywords, l.kind)
	}
}

// ParseLength reads the textual forms produced by String.
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, false
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return CustomLength(s[1 : len(s)-1]), true
	}
	if kind, ok := parseName[lengthKind](lengthKeywords, s); ok && kind != lengthUnits {
		return Length{kind: kind}, true
	}
	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.Atoi(num)
		d, err2 := strconv.Atoi(den)
		if err1 != nil || err2 != nil || d == 0 {
			return Length{}, false
		}
		return Fraction(n, d), true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, false
	}
	return Units(n), true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// signed builds "<stem>-<value>", moving a leading minus on the value to the
// front of the utility: signed("mt", "-4") is "-mt-4".
func signed(stem, value string) string {
	if rest, ok := strings.CutPrefix(value, "-"); ok {
		return "-" + stem + "-" + rest
	}
	return stem + "-" + value
}
