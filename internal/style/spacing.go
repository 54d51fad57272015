package style

// defaultSpacing is the length used when a margin or padding gives none.
var defaultSpacing = Units(4)

// Margin sets outer spacing on one edge selector. Edge defaults to EdgeAll and
// Length to four spacing units.
type Margin struct {
	Edge   *Edge
	Length *Length
}

func (Margin) Aspect() Aspect { return AspectMargin }

// Padding sets inner spacing on one edge selector, with the same defaults as
// Margin.
type Padding struct {
	Edge   *Edge
	Length *Length
}

func (Padding) Aspect() Aspect { return AspectPadding }

func marginTokens(m Margin) []string { return edgeSpacingTokens("m", m.Edge, m.Length) }

func paddingTokens(p Padding) []string { return edgeSpacingTokens("p", p.Edge, p.Length) }

func edgeSpacingTokens(stem string, edge *Edge, length *Length) []string {
	e := EdgeAll
	if edge != nil {
		e = *edge
	}
	l := defaultSpacing
	if length != nil {
		l = *length
	}
	return []string{signed(stem+e.Infix(), l.String())}
}

// EdgeInsets holds per-side spacing in spacing units. A zero side is omitted
// rather than emitted as a zero token.
type EdgeInsets struct {
	Top      float64
	Leading  float64
	Bottom   float64
	Trailing float64
}

// Uniform reports whether all four sides share one value.
func (e EdgeInsets) Uniform() bool {
	return e.Top == e.Leading && e.Top == e.Bottom && e.Top == e.Trailing
}

// MarginInsets sets outer spacing per side.
type MarginInsets EdgeInsets

func (MarginInsets) Aspect() Aspect { return AspectMarginInsets }

// PaddingInsets sets inner spacing per side.
type PaddingInsets EdgeInsets

func (PaddingInsets) Aspect() Aspect { return AspectPaddingInsets }

func marginInsetsTokens(m MarginInsets) []string { return insetsTokens("m", EdgeInsets(m)) }

func paddingInsetsTokens(p PaddingInsets) []string { return insetsTokens("p", EdgeInsets(p)) }

func insetsTokens(stem string, e EdgeInsets) []string {
	if e.Uniform() {
		if e.Top == 0 {
			return nil
		}
		return []string{signed(stem, formatNumber(e.Top))}
	}

	sides := []struct {
		edge  Edge
		value float64
	}{
		{EdgeTop, e.Top},
		{EdgeLeading, e.Leading},
		{EdgeBottom, e.Bottom},
		{EdgeTrailing, e.Trailing},
	}

	var tokens []string
	for _, side := range sides {
		if side.value == 0 {
			continue
		}
		tokens = append(tokens, signed(stem+side.edge.Infix(), formatNumber(side.value)))
	}
	return tokens
}
