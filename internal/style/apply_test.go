package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slate/internal/markup"
)

func TestApplyWrapsWithoutMutating(t *testing.T) {
	t.Parallel()

	div := markup.Div(markup.Text("hi")).WithAttr("class", "card")
	styled := Apply(div, Border{Width: Ptr(2), Edges: []Edge{EdgeBottom}, Color: Blue(Shade500)}, Hover)

	assert.Equal(t, []string{"hover:border-b-2", "hover:border-blue-500"}, styled.Tokens())
	assert.Equal(t, []string{"card", "hover:border-b-2", "hover:border-blue-500"}, markup.Classes(styled))
	assert.Equal(t, []string{"card"}, markup.Classes(div))
	assert.Same(t, markup.Node(div), styled.Inner())
}

func TestApplyIsPure(t *testing.T) {
	t.Parallel()

	d := Font{Size: Ptr(FontSizeLarge), Color: Red(Shade600).WithOpacity(0.9)}
	first := Apply(markup.P(), d, Large, Hover)
	second := Apply(markup.P(), d, Large, Hover)

	assert.Equal(t, first.Tokens(), second.Tokens())
	assert.Equal(t, markup.String(first), markup.String(second))
}

func TestApplyModifierOrderMatters(t *testing.T) {
	t.Parallel()

	d := Padding{}
	hoverFirst := Apply(markup.Div(), d, Hover, Medium).Tokens()
	mdFirst := Apply(markup.Div(), d, Medium, Hover).Tokens()

	require.Equal(t, []string{"hovermd:p-4"}, hoverFirst)
	require.Equal(t, []string{"mdhover:p-4"}, mdFirst)
	assert.NotEqual(t, hoverFirst, mdFirst)
}

func TestChainAccumulatesInCallOrder(t *testing.T) {
	t.Parallel()

	base := Chain(markup.Div())
	node := base.
		With(Flex{Direction: Ptr(FlexRow), Justify: Ptr(JustifyBetween)}).
		With(Padding{}, Medium).
		Node()

	assert.Equal(t, []string{"flex", "flex-row", "justify-between", "md:p-4"}, markup.Classes(node))
	assert.Empty(t, markup.Classes(base.Node()), "earlier chain values are unchanged")
}

func TestChainAndBlockAgree(t *testing.T) {
	t.Parallel()

	descriptors := []Descriptor{
		Border{Width: Ptr(2), Edges: []Edge{EdgeBottom}, Color: Blue(Shade500)},
		Radius{},
		Transform{Rotate: Ptr(-12.0)},
		PaddingInsets{Top: 1, Bottom: 1},
		Background{Color: Slate(Shade900).WithOpacity(0.8)},
	}

	for _, m := range []Modifier{Hover, Medium, AriaExpanded} {
		m := m
		chain := Chain(markup.Div())
		for _, d := range descriptors {
			chain = chain.With(d, m)
		}

		block := Block(markup.Div(), func(b *Builder) {
			b.Within(m, func(b *Builder) {
				b.Add(descriptors...)
			})
		})

		assert.Equal(t, markup.Classes(chain.Node()), markup.Classes(block), "modifier %s", m)
	}
}
