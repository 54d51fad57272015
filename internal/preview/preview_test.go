package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	"github.com/alexisbeaulieu97/slate/internal/style"
)

func plainPreviewer(width int) *Previewer {
	return New(Options{Width: width, Renderer: lipgloss.NewRenderer(&bytes.Buffer{})})
}

func TestCardShowsGroupsAndSwatches(t *testing.T) {
	t.Parallel()

	card := plainPreviewer(0).Card(compiler.Result{
		Preset:  "primary_button",
		Element: "button",
		Tokens:  []string{"px-4", "bg-blue-600", "hover:bg-blue-700", "hover:shadow-lg", "md:text-lg"},
	})

	assert.Contains(t, card, "primary_button <button>")
	assert.Contains(t, card, "base")
	assert.Contains(t, card, "px-4 bg-blue-600")
	assert.Contains(t, card, "bg-blue-700 shadow-lg")
	assert.Contains(t, card, "#2563eb bg-blue-600")
	assert.Contains(t, card, "#1d4ed8 hover:bg-blue-700")
	assert.True(t, strings.HasPrefix(card, "╭"))
}

func TestCardWithoutTokens(t *testing.T) {
	t.Parallel()

	card := plainPreviewer(0).Card(compiler.Result{Preset: "empty"})
	assert.Contains(t, card, "empty <div>")
	assert.Contains(t, card, "no tokens")
}

func TestRenderWritesEveryCard(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := plainPreviewer(40).Render(&out, []compiler.Result{
		{Preset: "one", Tokens: []string{"p-2"}},
		{Preset: "two", Tokens: []string{"m-2"}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "one <div>")
	assert.Contains(t, out.String(), "two <div>")
	assert.Equal(t, 4, strings.Count(out.String(), "╮")+strings.Count(out.String(), "╯"))
}

func TestGroupTokens(t *testing.T) {
	t.Parallel()

	groups := GroupTokens([]string{"p-4", "hover:bg-red-500", "m-2", "hovermd:underline", "hover:italic"})
	assert.Equal(t, []Group{
		{Prefix: "base", Tokens: []string{"p-4", "m-2"}},
		{Prefix: "hover", Tokens: []string{"bg-red-500", "italic"}},
		{Prefix: "hovermd", Tokens: []string{"underline"}},
	}, groups)
	assert.Empty(t, GroupTokens(nil))
}

func TestPaletteIsComplete(t *testing.T) {
	t.Parallel()

	for _, hue := range style.Hues() {
		for _, shade := range style.Shades() {
			hex, ok := Hex(style.NewColor(hue, shade))
			require.True(t, ok, "%s-%s", hue, shade)
			assert.Len(t, string(hex), 7)
			assert.True(t, strings.HasPrefix(string(hex), "#"))
		}
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   style.Color
		want lipgloss.Color
		ok   bool
	}{
		{style.Blue(style.Shade500), "#3b82f6", true},
		{style.Rose(style.Shade950).WithOpacity(0.5), "#4c0519", true},
		{style.White, "#ffffff", true},
		{style.Black.WithOpacity(0.25), "#000000", true},
		{style.CustomColor("#1da1f2"), "#1da1f2", true},
		{style.CustomColor("var(--brand)"), "", false},
		{style.Transparent, "", false},
		{style.Color{}, "", false},
	}
	for _, tc := range cases {
		got, ok := Hex(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in.String())
		assert.Equal(t, tc.want, got, tc.in.String())
	}
}

func TestTokenColor(t *testing.T) {
	t.Parallel()

	c, ok := TokenColor("focus:border-emerald-300/40")
	require.True(t, ok)
	assert.Equal(t, "emerald-300/40", c.String())

	c, ok = TokenColor("shadow-black/25")
	require.True(t, ok)
	assert.Equal(t, "black/25", c.String())

	for _, token := range []string{"text-center", "border-b-2", "shadow-md", "divide-x", "p-4", "text-2xl"} {
		_, ok := TokenColor(token)
		assert.False(t, ok, token)
	}
}

func TestWrapKeepsTokensWhole(t *testing.T) {
	t.Parallel()

	tokens := []string{"grid-cols-3", "md:grid-cols-6", "-translate-y-1/2", "gap-4", "x"}
	lines := wrap(tokens, 16)
	assert.Equal(t, []string{"grid-cols-3", "md:grid-cols-6", "-translate-y-1/2", "gap-4 x"}, lines)
	assert.Equal(t, tokens, strings.Fields(strings.Join(lines, " ")))
	assert.Nil(t, wrap(nil, 10))
}
