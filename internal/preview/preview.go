// Package preview draws compiled presets as terminal cards: tokens grouped
// by modifier prefix, with a swatch for every color they reference.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	"github.com/alexisbeaulieu97/slate/internal/style"
)

// DefaultWidth is the card content width used when Options.Width is unset.
const DefaultWidth = 64

const baseGroup = "base"

// Options configures a Previewer.
type Options struct {
	Width int
	// Renderer decides the color profile. Nil uses lipgloss's default
	// renderer on stdout.
	Renderer *lipgloss.Renderer
}

type styles struct {
	card   lipgloss.Style
	title  lipgloss.Style
	tag    lipgloss.Style
	label  lipgloss.Style
	token  lipgloss.Style
	muted  lipgloss.Style
	swatch lipgloss.Style
}

// Previewer renders compiler results.
type Previewer struct {
	width  int
	r      *lipgloss.Renderer
	styles styles
}

// New returns a Previewer configured by opts.
func New(opts Options) *Previewer {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	return &Previewer{
		width: width,
		r:     r,
		styles: styles{
			card: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette[style.HueSlate][style.Shade500]).
				Padding(0, 1),
			title:  r.NewStyle().Bold(true).Foreground(palette[style.HueBlue][style.Shade400]),
			tag:    r.NewStyle().Foreground(palette[style.HueSlate][style.Shade400]),
			label:  r.NewStyle().Foreground(palette[style.HueAmber][style.Shade400]),
			token:  r.NewStyle(),
			muted:  r.NewStyle().Italic(true).Foreground(palette[style.HueSlate][style.Shade500]),
			swatch: r.NewStyle(),
		},
	}
}

// Group is a run of tokens sharing one modifier prefix.
type Group struct {
	Prefix string
	Tokens []string
}

// GroupTokens splits tokens by modifier prefix in order of first appearance.
// Unprefixed tokens are grouped under "base" and the token bases are kept
// without their prefix.
func GroupTokens(tokens []string) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, token := range tokens {
		prefix := baseGroup
		bare := token
		if i := strings.LastIndex(token, ":"); i >= 0 {
			prefix, bare = token[:i], token[i+1:]
		}
		pos, ok := index[prefix]
		if !ok {
			pos = len(groups)
			index[prefix] = pos
			groups = append(groups, Group{Prefix: prefix})
		}
		groups[pos].Tokens = append(groups[pos].Tokens, bare)
	}
	return groups
}

// Card renders one preset.
func (p *Previewer) Card(res compiler.Result) string {
	element := res.Element
	if element == "" {
		element = compiler.DefaultElement
	}

	lines := []string{
		p.styles.title.Render(res.Preset) + " " + p.styles.tag.Render("<"+element+">"),
	}

	groups := GroupTokens(res.Tokens)
	if len(groups) == 0 {
		lines = append(lines, p.styles.muted.Render("no tokens"))
	}

	labelWidth := 0
	for _, group := range groups {
		labelWidth = max(labelWidth, lipgloss.Width(group.Prefix)+2)
	}
	label := p.styles.label.Width(labelWidth)

	for _, group := range groups {
		for i, line := range wrap(group.Tokens, p.width-labelWidth) {
			text := ""
			if i == 0 {
				text = group.Prefix
			}
			lines = append(lines, label.Render(text)+p.styles.token.Render(line))
		}
	}

	if swatches := p.swatches(res.Tokens); len(swatches) > 0 {
		lines = append(lines, "")
		lines = append(lines, swatches...)
	}

	return p.styles.card.Render(strings.Join(lines, "\n"))
}

func (p *Previewer) swatches(tokens []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, token := range tokens {
		c, ok := TokenColor(token)
		if !ok {
			continue
		}
		hex, ok := Hex(c)
		if !ok || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, fmt.Sprintf("%s %s %s",
			p.styles.swatch.Foreground(hex).Render("██"),
			p.styles.tag.Render(string(hex)),
			token,
		))
	}
	return out
}

// Render writes a card per result, separated by blank lines.
func (p *Previewer) Render(w io.Writer, results []compiler.Result) error {
	cards := make([]string, 0, len(results))
	for _, res := range results {
		cards = append(cards, p.Card(res))
	}
	_, err := io.WriteString(w, strings.Join(cards, "\n\n")+"\n")
	return err
}

// wrap packs tokens into lines no wider than width, never splitting a token.
func wrap(tokens []string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var current string
	for _, token := range tokens {
		switch {
		case current == "":
			current = token
		case lipgloss.Width(current)+1+lipgloss.Width(token) <= width:
			current += " " + token
		default:
			lines = append(lines, current)
			current = token
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
