package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slate/internal/style"
	slateerrors "github.com/alexisbeaulieu97/slate/pkg/errors"
)

func TestParseFileFixture(t *testing.T) {
	t.Parallel()

	doc, err := ParseFile(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Marketing site", doc.Name)
	require.Equal(t, 4, doc.Settings.Parallel)
	require.Len(t, doc.Presets, 3)

	button, ok := doc.Lookup("primary_button")
	require.True(t, ok)
	require.Equal(t, "button", button.Element)
	require.Equal(t, []string{"surface"}, button.Extends)
	require.Len(t, button.Rules, 6)

	border, ok := button.Rules[4].Descriptor.(style.Border)
	require.True(t, ok)
	require.Equal(t, []string{"border-b-2", "border-blue-500/75"}, style.Tokens(border))

	hover := button.Rules[3]
	require.True(t, hover.Block)
	require.Equal(t, []style.Modifier{style.Hover}, hover.Mods())

	grid, ok := doc.Lookup("hero_grid")
	require.True(t, ok)
	require.Equal(t, []string{"transform", "-rotate-3", "-translate-y-1/2"}, style.Tokens(grid.Rules[3].Descriptor))
	require.Equal(t, []string{"pt-4", "pb-2"}, style.Tokens(grid.Rules[4].Descriptor))

	_, ok = doc.Lookup("missing")
	require.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name: "defaults are left to the rules",
			contents: `version: "1.0"
name: "Defaults"
presets:
  - id: spaced
    styles:
      - aspect: margin
      - aspect: radius
`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				rules := doc.Presets[0].Rules
				require.Equal(t, []string{"m-4"}, style.Tokens(rules[0].Descriptor))
				require.Equal(t, []string{"rounded-md"}, style.Tokens(rules[1].Descriptor))
			},
		},
		{
			name: "invalid vocabulary value reports line",
			contents: `version: "1.0"
name: "Broken"
presets:
  - id: bad
    styles:
      - aspect: font
        weight: heavy
`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *slateerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 6, parseErr.Line)
				require.Contains(t, err.Error(), `invalid font weight "heavy"`)
			},
		},
		{
			name: "malformed yaml",
			contents: `version: [1, 0]
name: "Broken"
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *slateerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name: "unknown aspect fails validation",
			contents: `version: "1.0"
name: "Unknown"
presets:
  - id: odd
    styles:
      - aspect: sparkle
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *slateerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "aspect")
			},
		},
		{
			name: "unknown modifier fails validation",
			contents: `version: "1.0"
name: "Unknown"
presets:
  - id: odd
    styles:
      - aspect: margin
        modifiers: [hover, wobble]
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *slateerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "modifier")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse("inline.yaml", []byte(tc.contents))
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *slateerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}
