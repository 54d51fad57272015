package style

// FontSize is the type scale.
type FontSize int

const (
	FontSizeExtraSmall FontSize = iota
	FontSizeSmall
	FontSizeBase
	FontSizeLarge
	FontSizeExtraLarge
	FontSize2XL
	FontSize3XL
	FontSize4XL
	FontSize5XL
	FontSize6XL
	FontSize7XL
	FontSize8XL
	FontSize9XL
)

var fontSizeNames = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl"}

func (s FontSize) String() string { return nameOf(fontSizeNames, s) }

func ParseFontSize(s string) (FontSize, bool) { return parseName[FontSize](fontSizeNames, s) }

type FontWeight int

const (
	FontWeightThin FontWeight = iota
	FontWeightExtraLight
	FontWeightLight
	FontWeightNormal
	FontWeightMedium
	FontWeightSemibold
	FontWeightBold
	FontWeightExtraBold
	FontWeightBlack
)

var fontWeightNames = []string{"thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"}

func (w FontWeight) String() string { return nameOf(fontWeightNames, w) }

func ParseFontWeight(s string) (FontWeight, bool) { return parseName[FontWeight](fontWeightNames, s) }

type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
	TextAlignStart
	TextAlignEnd
)

var textAlignmentNames = []string{"left", "center", "right", "justify", "start", "end"}

func (a TextAlignment) String() string { return nameOf(textAlignmentNames, a) }

func ParseTextAlignment(s string) (TextAlignment, bool) {
	return parseName[TextAlignment](textAlignmentNames, s)
}

// Tracking is letter spacing.
type Tracking int

const (
	TrackingTighter Tracking = iota
	TrackingTight
	TrackingNormal
	TrackingWide
	TrackingWider
	TrackingWidest
)

var trackingNames = []string{"tighter", "tight", "normal", "wide", "wider", "widest"}

func (t Tracking) String() string { return nameOf(trackingNames, t) }

func ParseTracking(s string) (Tracking, bool) { return parseName[Tracking](trackingNames, s) }

// Leading is line height.
type Leading int

const (
	LeadingNone Leading = iota
	LeadingTight
	LeadingSnug
	LeadingNormal
	LeadingRelaxed
	LeadingLoose
)

var leadingNames = []string{"none", "tight", "snug", "normal", "relaxed", "loose"}

func (l Leading) String() string { return nameOf(leadingNames, l) }

func ParseLeading(s string) (Leading, bool) { return parseName[Leading](leadingNames, s) }

type Decoration int

const (
	DecorationUnderline Decoration = iota
	DecorationOverline
	DecorationLineThrough
	DecorationNone
)

var decorationNames = []string{"underline", "overline", "line-through", "no-underline"}

func (d Decoration) String() string { return nameOf(decorationNames, d) }

func ParseDecoration(s string) (Decoration, bool) { return parseName[Decoration](decorationNames, s) }

type Wrapping int

const (
	WrappingWrap Wrapping = iota
	WrappingNoWrap
	WrappingBalance
	WrappingPretty
)

var wrappingNames = []string{"wrap", "nowrap", "balance", "pretty"}

func (w Wrapping) String() string { return nameOf(wrappingNames, w) }

func ParseWrapping(s string) (Wrapping, bool) { return parseName[Wrapping](wrappingNames, s) }

type FontFamily int

const (
	FontFamilySans FontFamily = iota
	FontFamilySerif
	FontFamilyMono
)

var fontFamilyNames = []string{"sans", "serif", "mono"}

func (f FontFamily) String() string { return nameOf(fontFamilyNames, f) }

func ParseFontFamily(s string) (FontFamily, bool) { return parseName[FontFamily](fontFamilyNames, s) }

type FontStyle int

const (
	FontStyleItalic FontStyle = iota
	FontStyleNormal
)

var fontStyleNames = []string{"italic", "not-italic"}

func (s FontStyle) String() string { return nameOf(fontStyleNames, s) }

func ParseFontStyle(s string) (FontStyle, bool) { return parseName[FontStyle](fontStyleNames, s) }

// Font describes typography. Each set field contributes exactly one token.
type Font struct {
	Size       *FontSize
	Weight     *FontWeight
	Alignment  *TextAlignment
	Tracking   *Tracking
	Leading    *Leading
	Decoration *Decoration
	Wrapping   *Wrapping
	Color      Color
	Family     *FontFamily
	Style      *FontStyle
}

func (Font) Aspect() Aspect { return AspectFont }

func fontTokens(f Font) []string {
	var tokens []string
	if f.Size != nil {
		tokens = append(tokens, "text-"+f.Size.String())
	}
	if f.Weight != nil {
		tokens = append(tokens, "font-"+f.Weight.String())
	}
	if f.Alignment != nil {
		tokens = append(tokens, "text-"+f.Alignment.String())
	}
	if f.Tracking != nil {
		tokens = append(tokens, "tracking-"+f.Tracking.String())
	}
	if f.Leading != nil {
		tokens = append(tokens, "leading-"+f.Leading.String())
	}
	if f.Decoration != nil {
		tokens = append(tokens, f.Decoration.String())
	}
	if f.Wrapping != nil {
		tokens = append(tokens, "text-"+f.Wrapping.String())
	}
	if !f.Color.IsZero() {
		tokens = append(tokens, "text-"+f.Color.String())
	}
	if f.Family != nil {
		tokens = append(tokens, "font-"+f.Family.String())
	}
	if f.Style != nil {
		tokens = append(tokens, f.Style.String())
	}
	return tokens
}

// TextColor sets the foreground color alone.
type TextColor struct {
	Color Color
}

func (TextColor) Aspect() Aspect { return AspectTextColor }

func textColorTokens(t TextColor) []string {
	if t.Color.IsZero() {
		return nil
	}
	return []string{"text-" + t.Color.String()}
}

// Background sets the background color.
type Background struct {
	Color Color
}

func (Background) Aspect() Aspect { return AspectBackground }

func backgroundTokens(b Background) []string {
	if b.Color.IsZero() {
		return nil
	}
	return []string{"bg-" + b.Color.String()}
}
