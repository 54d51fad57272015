package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"shaded", Blue(Shade500), "blue-500"},
		{"opacity", Blue(Shade500).WithOpacity(0.75), "blue-500/75"},
		{"opacity rounds", Rose(Shade950).WithOpacity(0.333), "rose-950/33"},
		{"opacity above range dropped", Blue(Shade500).WithOpacity(1.2), "blue-500"},
		{"opacity below range dropped", Blue(Shade500).WithOpacity(-0.1), "blue-500"},
		{"opacity bounds kept", Emerald(Shade50).WithOpacity(1), "emerald-50/100"},
		{"zero opacity kept", Emerald(Shade50).WithOpacity(0), "emerald-50/0"},
		{"white", White, "white"},
		{"black with opacity", Black.WithOpacity(0.5), "black/50"},
		{"transparent", Transparent, "transparent"},
		{"current", Current, "current"},
		{"custom passes through", CustomColor("#1da1f2"), "[#1da1f2]"},
		{"zero", Color{}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.String())
		})
	}
}

func TestColorRenderingIsPure(t *testing.T) {
	t.Parallel()

	c := Indigo(Shade600).WithOpacity(0.4)
	assert.Equal(t, c.String(), c.String())
	assert.Equal(t, "indigo-600/40", c.String())
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"blue-500", "blue-500/75", "white", "black/50", "transparent", "current", "[#1da1f2]", "[rgb(0_0_0/0.5)]/20"} {
		c, ok := ParseColor(text)
		require.True(t, ok, text)
		assert.Equal(t, text, c.String())
	}

	for _, text := range []string{"", "blue", "blue-501", "mauve-500", "blue-500/x", "[#fff"} {
		_, ok := ParseColor(text)
		assert.False(t, ok, text)
	}
}

func TestHueAndShadeTables(t *testing.T) {
	t.Parallel()

	assert.Len(t, Hues(), 22)
	assert.Len(t, Shades(), 11)
	assert.Equal(t, "950", Shade950.String())
	assert.Equal(t, "", Shade(42).String(), "out-of-range shade renders empty")

	hue, shade, ok := Sky(Shade300).Shaded()
	require.True(t, ok)
	assert.Equal(t, HueSky, hue)
	assert.Equal(t, Shade300, shade)

	_, _, ok = White.Shaded()
	assert.False(t, ok)
}

func TestParseLength(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"0", "4", "0.5", "-2", "px", "auto", "full", "screen", "min", "max", "fit", "1/2", "[37px]"} {
		l, ok := ParseLength(text)
		require.True(t, ok, text)
		assert.Equal(t, text, l.String())
	}

	for _, text := range []string{"", "wide", "1/0", "a/b"} {
		_, ok := ParseLength(text)
		assert.False(t, ok, text)
	}
}
