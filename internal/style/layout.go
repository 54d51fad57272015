package style

import "strconv"

// Frame sizes a box. Each set field contributes one token.
type Frame struct {
	Width     *Length
	Height    *Length
	MinWidth  *Length
	MaxWidth  *Length
	MinHeight *Length
	MaxHeight *Length
}

func (Frame) Aspect() Aspect { return AspectFrame }

func frameTokens(f Frame) []string {
	fields := []struct {
		stem  string
		value *Length
	}{
		{"w", f.Width},
		{"h", f.Height},
		{"min-w", f.MinWidth},
		{"max-w", f.MaxWidth},
		{"min-h", f.MinHeight},
		{"max-h", f.MaxHeight},
	}

	var tokens []string
	for _, field := range fields {
		if field.value != nil {
			tokens = append(tokens, field.stem+"-"+field.value.String())
		}
	}
	return tokens
}

type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

var flexDirectionNames = []string{"row", "row-reverse", "col", "col-reverse"}

func (d FlexDirection) String() string { return nameOf(flexDirectionNames, d) }

func ParseFlexDirection(s string) (FlexDirection, bool) {
	return parseName[FlexDirection](flexDirectionNames, s)
}

// Justify distributes items along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifyBetween
	JustifyAround
	JustifyEvenly
	JustifyStretch
	JustifyNormal
)

var justifyNames = []string{"start", "end", "center", "between", "around", "evenly", "stretch", "normal"}

func (j Justify) String() string { return nameOf(justifyNames, j) }

func ParseJustify(s string) (Justify, bool) { return parseName[Justify](justifyNames, s) }

// Align places items along the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignBaseline
	AlignStretch
)

var alignNames = []string{"start", "end", "center", "baseline", "stretch"}

func (a Align) String() string { return nameOf(alignNames, a) }

func ParseAlign(s string) (Align, bool) { return parseName[Align](alignNames, s) }

type FlexWrap int

const (
	FlexWrapWrap FlexWrap = iota
	FlexWrapReverse
	FlexWrapNone
)

var flexWrapNames = []string{"wrap", "wrap-reverse", "nowrap"}

func (w FlexWrap) String() string { return nameOf(flexWrapNames, w) }

func ParseFlexWrap(s string) (FlexWrap, bool) { return parseName[FlexWrap](flexWrapNames, s) }

// FlexGrow is how an item grows and shrinks inside a flex container.
type FlexGrow int

const (
	FlexGrowOne FlexGrow = iota
	FlexGrowAuto
	FlexGrowInitial
	FlexGrowNone
)

var flexGrowNames = []string{"1", "auto", "initial", "none"}

func (g FlexGrow) String() string { return nameOf(flexGrowNames, g) }

func ParseFlexGrow(s string) (FlexGrow, bool) { return parseName[FlexGrow](flexGrowNames, s) }

// Flex configures a flex container and flex items. The bare "flex" token is
// only emitted when a container field (Direction, Justify, Align) is set.
type Flex struct {
	Direction *FlexDirection
	Justify   *Justify
	Align     *Align
	Wrap      *FlexWrap
	Grow      *FlexGrow
}

func (Flex) Aspect() Aspect { return AspectFlex }

func flexTokens(f Flex) []string {
	var tokens []string
	if f.Direction != nil || f.Justify != nil || f.Align != nil {
		tokens = append(tokens, "flex")
	}
	if f.Direction != nil {
		tokens = append(tokens, "flex-"+f.Direction.String())
	}
	if f.Justify != nil {
		tokens = append(tokens, "justify-"+f.Justify.String())
	}
	if f.Align != nil {
		tokens = append(tokens, "items-"+f.Align.String())
	}
	if f.Wrap != nil {
		tokens = append(tokens, "flex-"+f.Wrap.String())
	}
	if f.Grow != nil {
		tokens = append(tokens, "flex-"+f.Grow.String())
	}
	return tokens
}

type GridFlow int

const (
	GridFlowRow GridFlow = iota
	GridFlowColumn
	GridFlowDense
	GridFlowRowDense
	GridFlowColumnDense
)

var gridFlowNames = []string{"row", "col", "dense", "row-dense", "col-dense"}

func (f GridFlow) String() string { return nameOf(gridFlowNames, f) }

func ParseGridFlow(s string) (GridFlow, bool) { return parseName[GridFlow](gridFlowNames, s) }

// Span is how many tracks a grid item covers. SpanFull covers all of them.
type Span int

const SpanFull Span = 0

func (s Span) String() string {
	if s == SpanFull {
		return "full"
	}
	return strconv.Itoa(int(s))
}

// ParseSpan reads "full" or a positive count.
func ParseSpan(s string) (Span, bool) {
	if s == "full" {
		return SpanFull, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return Span(n), true
}

// Grid configures a grid container and grid items. The bare "grid" token is
// only emitted when a container field (Columns, Rows, Flow) is set.
type Grid struct {
	Columns    *int
	Rows       *int
	Flow       *GridFlow
	ColumnSpan *Span
	RowSpan    *Span
}

func (Grid) Aspect() Aspect { return AspectGrid }

func gridTokens(g Grid) []string {
	var tokens []string
	if g.Columns != nil || g.Rows != nil || g.Flow != nil {
		tokens = append(tokens, "grid")
	}
	if g.Columns != nil {
		tokens = append(tokens, "grid-cols-"+strconv.Itoa(*g.Columns))
	}
	if g.Rows != nil {
		tokens = append(tokens, "grid-rows-"+strconv.Itoa(*g.Rows))
	}
	if g.Flow != nil {
		tokens = append(tokens, "grid-flow-"+g.Flow.String())
	}
	if g.ColumnSpan != nil {
		tokens = append(tokens, "col-span-"+g.ColumnSpan.String())
	}
	if g.RowSpan != nil {
		tokens = append(tokens, "row-span-"+g.RowSpan.String())
	}
	return tokens
}

// Gap spaces the children of a flex or grid container.
type Gap struct {
	Length     *Length
	Horizontal *Length
	Vertical   *Length
}

func (Gap) Aspect() Aspect { return AspectGap }

func gapTokens(g Gap) []string {
	var tokens []string
	if g.Length != nil {
		tokens = append(tokens, "gap-"+g.Length.String())
	}
	if g.Horizontal != nil {
		tokens = append(tokens, "gap-x-"+g.Horizontal.String())
	}
	if g.Vertical != nil {
		tokens = append(tokens, "gap-y-"+g.Vertical.String())
	}
	return tokens
}

type PositionType int

const (
	PositionStatic PositionType = iota
	PositionFixed
	PositionAbsolute
	PositionRelative
	PositionSticky
)

var positionTypeNames = []string{"static", "fixed", "absolute", "relative", "sticky"}

func (p PositionType) String() string { return nameOf(positionTypeNames, p) }

func ParsePositionType(s string) (PositionType, bool) {
	return parseName[PositionType](positionTypeNames, s)
}

// Position sets the positioning scheme and offsets. Negative offsets become
// leading-minus utilities ("-top-4").
type Position struct {
	Type   *PositionType
	Inset  *Length
	Top    *Length
	Right  *Length
	Bottom *Length
	Left   *Length
}

func (Position) Aspect() Aspect { return AspectPosition }

func positionTokens(p Position) []string {
	var tokens []string
	if p.Type != nil {
		tokens = append(tokens, p.Type.String())
	}
	offsets := []struct {
		stem  string
		value *Length
	}{
		{"inset", p.Inset},
		{"top", p.Top},
		{"right", p.Right},
		{"bottom", p.Bottom},
		{"left", p.Left},
	}
	for _, offset := range offsets {
		if offset.value != nil {
			tokens = append(tokens, signed(offset.stem, offset.value.String()))
		}
	}
	return tokens
}

type DisplayMode int

const (
	DisplayBlock DisplayMode = iota
	DisplayInlineBlock
	DisplayInline
	DisplayFlex
	DisplayInlineFlex
	DisplayGrid
	DisplayInlineGrid
	DisplayContents
	DisplayTable
	DisplayFlowRoot
	DisplayNone
)

var displayModeNames = []string{
	"block", "inline-block", "inline", "flex", "inline-flex", "grid",
	"inline-grid", "contents", "table", "flow-root", "hidden",
}

func (d DisplayMode) String() string { return nameOf(displayModeNames, d) }

func ParseDisplayMode(s string) (DisplayMode, bool) {
	return parseName[DisplayMode](displayModeNames, s)
}

// Display sets the box's display mode.
type Display struct {
	Mode DisplayMode
}

func (Display) Aspect() Aspect { return AspectDisplay }

func displayTokens(d Display) []string {
	if name := d.Mode.String(); name != "" {
		return []string{name}
	}
	return nil
}

type OverflowMode int

const (
	OverflowAuto OverflowMode = iota
	OverflowHidden
	OverflowClip
	OverflowVisible
	OverflowScroll
)

var overflowModeNames = []string{"auto", "hidden", "clip", "visible", "scroll"}

func (o OverflowMode) String() string { return nameOf(overflowModeNames, o) }

func ParseOverflowMode(s string) (OverflowMode, bool) {
	return parseName[OverflowMode](overflowModeNames, s)
}

// Overflow controls clipping. Axis may be EdgeAll, EdgeHorizontal or
// EdgeVertical; other edges are treated as EdgeAll.
type Overflow struct {
	Mode OverflowMode
	Axis Edge
}

func (Overflow) Aspect() Aspect { return AspectOverflow }

func overflowTokens(o Overflow) []string {
	axis := ""
	if o.Axis == EdgeHorizontal || o.Axis == EdgeVertical {
		axis = o.Axis.Infix()
	}
	return []string{infix("overflow", axis) + "-" + o.Mode.String()}
}

// ZIndex sets the stacking order.
type ZIndex struct {
	Value int
}

func (ZIndex) Aspect() Aspect { return AspectZIndex }

func zIndexTokens(z ZIndex) []string {
	return []string{signed("z", strconv.Itoa(z.Value))}
}
