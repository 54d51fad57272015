package sheet

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slate/internal/style"
)

// fieldDecoder converts textual YAML fields into style vocabulary values and
// remembers the first failure.
type fieldDecoder struct {
	err error
}

func (d *fieldDecoder) fail(name, raw string) {
	if d.err == nil {
		d.err = fmt.Errorf("invalid %s %q", name, raw)
	}
}

func optional[T any](d *fieldDecoder, name, raw string, parse func(string) (T, bool)) *T {
	if raw == "" {
		return nil
	}
	v, ok := parse(raw)
	if !ok {
		d.fail(name, raw)
		return nil
	}
	return &v
}

func required[T any](d *fieldDecoder, name, raw string, parse func(string) (T, bool)) T {
	var zero T
	if raw == "" {
		if d.err == nil {
			d.err = fmt.Errorf("%s is required", name)
		}
		return zero
	}
	v, ok := parse(raw)
	if !ok {
		d.fail(name, raw)
		return zero
	}
	return v
}

func list[T any](d *fieldDecoder, name string, raws []string, parse func(string) (T, bool)) []T {
	if len(raws) == 0 {
		return nil
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, ok := parse(raw)
		if !ok {
			d.fail(name, raw)
			continue
		}
		out = append(out, v)
	}
	return out
}

func (d *fieldDecoder) color(name, raw string) style.Color {
	if raw == "" {
		return style.Color{}
	}
	c, ok := style.ParseColor(raw)
	if !ok {
		d.fail(name, raw)
	}
	return c
}

type descriptorDecoder func(*yaml.Node) (style.Descriptor, error)

// decode reads node into the aspect-specific YAML shape T and converts it.
func decode[T any](convert func(T, *fieldDecoder) style.Descriptor) descriptorDecoder {
	return func(node *yaml.Node) (style.Descriptor, error) {
		var raw T
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		d := &fieldDecoder{}
		desc := convert(raw, d)
		if d.err != nil {
			return nil, d.err
		}
		return desc, nil
	}
}

var descriptorDecoders = map[style.Aspect]descriptorDecoder{
	style.AspectBorder: decode(func(r struct {
		Width *int     `yaml:"width"`
		Edges []string `yaml:"edges"`
		Style string   `yaml:"style"`
		Color string   `yaml:"color"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Border{
			Width: r.Width,
			Edges: list(d, "edge", r.Edges, style.ParseEdge),
			Style: optional(d, "border style", r.Style, style.ParseBorderStyle),
			Color: d.color("color", r.Color),
		}
	}),
	style.AspectRadius: decode(func(r struct {
		Size  string   `yaml:"size"`
		Sides []string `yaml:"sides"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Radius{
			Size:  optional(d, "radius size", r.Size, style.ParseRadiusSize),
			Sides: list(d, "side", r.Sides, style.ParseSide),
		}
	}),
	style.AspectFont: decode(func(r struct {
		Size       string `yaml:"size"`
		Weight     string `yaml:"weight"`
		Alignment  string `yaml:"alignment"`
		Tracking   string `yaml:"tracking"`
		Leading    string `yaml:"leading"`
		Decoration string `yaml:"decoration"`
		Wrapping   string `yaml:"wrapping"`
		Color      string `yaml:"color"`
		Family     string `yaml:"family"`
		Style      string `yaml:"style"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Font{
			Size:       optional(d, "font size", r.Size, style.ParseFontSize),
			Weight:     optional(d, "font weight", r.Weight, style.ParseFontWeight),
			Alignment:  optional(d, "alignment", r.Alignment, style.ParseTextAlignment),
			Tracking:   optional(d, "tracking", r.Tracking, style.ParseTracking),
			Leading:    optional(d, "leading", r.Leading, style.ParseLeading),
			Decoration: optional(d, "decoration", r.Decoration, style.ParseDecoration),
			Wrapping:   optional(d, "wrapping", r.Wrapping, style.ParseWrapping),
			Color:      d.color("color", r.Color),
			Family:     optional(d, "font family", r.Family, style.ParseFontFamily),
			Style:      optional(d, "font style", r.Style, style.ParseFontStyle),
		}
	}),
	style.AspectFrame: decode(func(r struct {
		Width     string `yaml:"width"`
		Height    string `yaml:"height"`
		MinWidth  string `yaml:"min_width"`
		MaxWidth  string `yaml:"max_width"`
		MinHeight string `yaml:"min_height"`
		MaxHeight string `yaml:"max_height"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Frame{
			Width:     optional(d, "width", r.Width, style.ParseLength),
			Height:    optional(d, "height", r.Height, style.ParseLength),
			MinWidth:  optional(d, "min_width", r.MinWidth, style.ParseLength),
			MaxWidth:  optional(d, "max_width", r.MaxWidth, style.ParseLength),
			MinHeight: optional(d, "min_height", r.MinHeight, style.ParseLength),
			MaxHeight: optional(d, "max_height", r.MaxHeight, style.ParseLength),
		}
	}),
	style.AspectFlex: decode(func(r struct {
		Direction string `yaml:"direction"`
		Justify   string `yaml:"justify"`
		Align     string `yaml:"align"`
		Wrap      string `yaml:"wrap"`
		Grow      string `yaml:"grow"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Flex{
			Direction: optional(d, "direction", r.Direction, style.ParseFlexDirection),
			Justify:   optional(d, "justify", r.Justify, style.ParseJustify),
			Align:     optional(d, "align", r.Align, style.ParseAlign),
			Wrap:      optional(d, "wrap", r.Wrap, style.ParseFlexWrap),
			Grow:      optional(d, "grow", r.Grow, style.ParseFlexGrow),
		}
	}),
	style.AspectGrid: decode(func(r struct {
		Columns    *int   `yaml:"columns"`
		Rows       *int   `yaml:"rows"`
		Flow       string `yaml:"flow"`
		ColumnSpan string `yaml:"column_span"`
		RowSpan    string `yaml:"row_span"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Grid{
			Columns:    r.Columns,
			Rows:       r.Rows,
			Flow:       optional(d, "flow", r.Flow, style.ParseGridFlow),
			ColumnSpan: optional(d, "column_span", r.ColumnSpan, style.ParseSpan),
			RowSpan:    optional(d, "row_span", r.RowSpan, style.ParseSpan),
		}
	}),
	style.AspectGap: decode(func(r struct {
		Length     string `yaml:"length"`
		Horizontal string `yaml:"horizontal"`
		Vertical   string `yaml:"vertical"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Gap{
			Length:     optional(d, "length", r.Length, style.ParseLength),
			Horizontal: optional(d, "horizontal", r.Horizontal, style.ParseLength),
			Vertical:   optional(d, "vertical", r.Vertical, style.ParseLength),
		}
	}),
	style.AspectPosition: decode(func(r struct {
		Type   string `yaml:"type"`
		Inset  string `yaml:"inset"`
		Top    string `yaml:"top"`
		Right  string `yaml:"right"`
		Bottom string `yaml:"bottom"`
		Left   string `yaml:"left"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Position{
			Type:   optional(d, "position type", r.Type, style.ParsePositionType),
			Inset:  optional(d, "inset", r.Inset, style.ParseLength),
			Top:    optional(d, "top", r.Top, style.ParseLength),
			Right:  optional(d, "right", r.Right, style.ParseLength),
			Bottom: optional(d, "bottom", r.Bottom, style.ParseLength),
			Left:   optional(d, "left", r.Left, style.ParseLength),
		}
	}),
	style.AspectTransform: decode(func(r struct {
		Scale      *int     `yaml:"scale"`
		ScaleX     *int     `yaml:"scale_x"`
		ScaleY     *int     `yaml:"scale_y"`
		Rotate     *float64 `yaml:"rotate"`
		TranslateX string   `yaml:"translate_x"`
		TranslateY string   `yaml:"translate_y"`
		SkewX      *float64 `yaml:"skew_x"`
		SkewY      *float64 `yaml:"skew_y"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Transform{
			Scale:      r.Scale,
			ScaleX:     r.ScaleX,
			ScaleY:     r.ScaleY,
			Rotate:     r.Rotate,
			TranslateX: optional(d, "translate_x", r.TranslateX, style.ParseLength),
			TranslateY: optional(d, "translate_y", r.TranslateY, style.ParseLength),
			SkewX:      r.SkewX,
			SkewY:      r.SkewY,
		}
	}),
	style.AspectTransition: decode(func(r struct {
		Property string `yaml:"property"`
		Duration *int   `yaml:"duration"`
		Easing   string `yaml:"easing"`
		Delay    *int   `yaml:"delay"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Transition{
			Property: optional(d, "transition property", r.Property, style.ParseTransitionProperty),
			Duration: r.Duration,
			Easing:   optional(d, "easing", r.Easing, style.ParseEasing),
			Delay:    r.Delay,
		}
	}),
	style.AspectCursor: decode(func(r struct {
		Type string `yaml:"type"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Cursor{Type: required(d, "cursor type", r.Type, style.ParseCursorType)}
	}),
	style.AspectVisibility: decode(func(r struct {
		Hidden bool `yaml:"hidden"`
	}, _ *fieldDecoder) style.Descriptor {
		return style.Visibility{Hidden: r.Hidden}
	}),
	style.AspectDisplay: decode(func(r struct {
		Mode string `yaml:"mode"`
	}, d *fieldDecoder) style.Descriptor {
		return style.Display{Mode: required(d, "display mode", r.Mode, style.ParseDisplayMode)}
	}),
	style.AspectMargin: decode(func(r edgeSpacingYAML, d *fieldDecoder) style.Descriptor {
		return style.Margin{
			Edge:   optional(d, "edge", r.Edge, style.ParseEdge),
			Length: optional(d, "length", r.Length, style.ParseLength),
		}
	}),
	style.AspectPadding: decode(func(r edgeSpacingYAML, d *fieldDecoder) style.Descriptor {
		return style.Padding{
			Edge:   optional(d, "edge", r.Edge, style.ParseEdge),
			Length: optional(d, "length", r.Length, style.ParseLength),
		}
	}),
	style.AspectMarginInsets: decode(func(r insetsYAML, _ *fieldDecoder) style.Descriptor {
		return style.MarginInsets(r.insets())
	}),
	style.AspectPaddingInsets: decode(func(r insetsYAML, _ *fieldDecoder) style.Descriptor {
		return style.PaddingInsets(r.insets())
	}),
	style.AspectBackground: decode(func(r colorYAML, d *fieldDecoder) style.Descriptor {
		return style.Background{Color: d.color("color", r.Color)}
	}),
	style.AspectTextColor: decode(func(r colorYAML, d *fieldDecoder) style.Descriptor {
		return style.TextColor{Color: d.color("color", r.Color)}
	}),
	style.AspectShadow: decode(func(r struct {
		Size  string `yaml:"size"`
		Color string `yaml:"color"`
	}, d *fieldDecoder) style.Descriptor {
		size := style.ShadowBase
		if r.Size != "" {
			size = required(d, "shadow size", r.Size, style.ParseShadowSize)
		}
		return style.Shadow{Size: size, Color: d.color("color", r.Color)}
	}),
	style.AspectOpacity: decode(func(r struct {
		Percent int `yaml:"percent"`
	}, _ *fieldDecoder) style.Descriptor {
		return style.Opacity{Percent: r.Percent}
	}),
	style.AspectOverflow: decode(func(r struct {
		Mode string `yaml:"mode"`
		Axis string `yaml:"axis"`
	}, d *fieldDecoder) style.Descriptor {
		axis := style.EdgeAll
		if r.Axis != "" {
			axis = required(d, "axis", r.Axis, style.ParseEdge)
		}
		return style.Overflow{Mode: required(d, "overflow mode", r.Mode, style.ParseOverflowMode), Axis: axis}
	}),
	style.AspectZIndex: decode(func(r struct {
		Value int `yaml:"value"`
	}, _ *fieldDecoder) style.Descriptor {
		return style.ZIndex{Value: r.Value}
	}),
}

type edgeSpacingYAML struct {
	Edge   string `yaml:"edge"`
	Length string `yaml:"length"`
}

type insetsYAML struct {
	Top      float64 `yaml:"top"`
	Leading  float64 `yaml:"leading"`
	Bottom   float64 `yaml:"bottom"`
	Trailing float64 `yaml:"trailing"`
}

func (r insetsYAML) insets() style.EdgeInsets {
	return style.EdgeInsets{Top: r.Top, Leading: r.Leading, Bottom: r.Bottom, Trailing: r.Trailing}
}

type colorYAML struct {
	Color string `yaml:"color"`
}
