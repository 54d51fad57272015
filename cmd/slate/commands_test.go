package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	slateerrors "github.com/alexisbeaulieu97/slate/pkg/errors"
)

var fixturePath = filepath.Join("..", "..", "internal", "sheet", "testdata", "site.yaml")

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompileTextOutput(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(), "compile", "--config", fixturePath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "surface         p-6 rounded-lg bg-white shadow-md", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "primary_button  p-6 rounded-lg bg-white shadow-md px-4"))
	require.Contains(t, lines[1], "hover:bg-blue-700")
	require.True(t, strings.HasPrefix(lines[2], "hero_grid       grid grid-cols-1 md:grid md:grid-cols-3"))
}

func TestCompileStructuredOutputsAgree(t *testing.T) {
	t.Parallel()

	jsonOut, _, err := executeCommand(newRootCmd(), "compile", "-c", fixturePath, "--format", "json")
	require.NoError(t, err)
	yamlOut, _, err := executeCommand(newRootCmd(), "compile", "-c", fixturePath, "-f", "yaml", "--parallel", "1")
	require.NoError(t, err)

	var fromJSON, fromYAML []compiler.Result
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &fromJSON))
	require.NoError(t, yaml.Unmarshal([]byte(yamlOut), &fromYAML))
	require.Len(t, fromJSON, 3)
	require.Equal(t, fromJSON, fromYAML)
	require.Equal(t, "button", fromJSON[1].Element)
}

func TestCompileSinglePreset(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(), "compile", "-c", fixturePath, "--preset", "surface")
	require.NoError(t, err)
	require.Equal(t, "surface  p-6 rounded-lg bg-white shadow-md\n", out)

	_, _, err = executeCommand(newRootCmd(), "compile", "-c", fixturePath, "--preset", "nope")
	var compileErr *slateerrors.CompileError
	require.ErrorAs(t, err, &compileErr)
}

func TestCompilePlan(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(), "compile", "-c", fixturePath, "--plan")
	require.NoError(t, err)
	require.Equal(t, "Level 0 (2 presets): hero_grid, surface\nLevel 1 (1 presets): primary_button\n", out)
}

func TestCompileVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	out, errOut, err := executeCommand(newRootCmd(), "compile", "-c", fixturePath, "-v")
	require.NoError(t, err)
	require.NotContains(t, out, "compiled preset")
	require.Contains(t, errOut, "compiled preset")
	require.Contains(t, errOut, `"sheet":"Marketing site"`)
}

func TestCompileValidatesOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts compileOptions
		want string
	}{
		{"missing path", compileOptions{Format: formatText}, "required"},
		{"whitespace path", compileOptions{SheetPath: "   ", Format: formatText}, "required"},
		{"absent file", compileOptions{SheetPath: "/path/does/not/exist", Format: formatText}, "does not exist"},
		{"directory", compileOptions{SheetPath: os.TempDir(), Format: formatText}, "is a directory"},
		{"bad format", compileOptions{SheetPath: fixturePath, Format: "xml"}, "unknown format"},
		{"negative parallel", compileOptions{SheetPath: fixturePath, Format: formatJSON, Parallel: -1}, "negative"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validateCompileOptions(tc.opts)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}

	require.NoError(t, validateCompileOptions(compileOptions{SheetPath: fixturePath, Format: formatYAML}))
}

func TestCompileReportsSheetErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\nname: x\npresets:\n  - id: a\n    styles:\n      - aspect: margin\n        edge: diagonal\n"), 0o644))

	_, _, err := executeCommand(newRootCmd(), "compile", "-c", path)
	var parseErr *slateerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, err.Error(), `invalid edge "diagonal"`)
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(), "render", "-c", fixturePath, "--preset", "primary_button", "--text", "Save & exit")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `<button class="p-6 rounded-lg bg-white shadow-md px-4 `))
	require.True(t, strings.HasSuffix(out, `">Save &amp; exit</button>`+"\n"))

	out, _, err = executeCommand(newRootCmd(), "render", "-c", fixturePath, "-p", "surface")
	require.NoError(t, err)
	require.Equal(t, `<div class="p-6 rounded-lg bg-white shadow-md"></div>`+"\n", out)

	_, _, err = executeCommand(newRootCmd(), "render", "-c", fixturePath)
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(), "preview", "-c", fixturePath, "--width", "48")
	require.NoError(t, err)
	require.Contains(t, out, "primary_button <button>")
	require.Contains(t, out, "hero_grid <section>")
	require.Contains(t, out, "#1d4ed8 hover:bg-blue-700")
	require.NotContains(t, out, "\x1b[")
}

func TestIsTerminalIgnoresBuffers(t *testing.T) {
	t.Parallel()

	require.False(t, isTerminal(&bytes.Buffer{}))
	_, ok := terminalWidth(&bytes.Buffer{})
	require.False(t, ok)
}

func TestDiffCommand(t *testing.T) {
	t.Parallel()

	fixture, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	changed := strings.Replace(string(fixture), "color: blue-700", "color: indigo-700", 1)
	changedPath := filepath.Join(t.TempDir(), "changed.yaml")
	require.NoError(t, os.WriteFile(changedPath, []byte(changed), 0o644))

	out, _, err := executeCommand(newRootCmd(), "diff", "-c", fixturePath, "--against", changedPath, "-p", "primary_button")
	require.NoError(t, err)
	require.Contains(t, out, "-hover:bg-blue-700\n")
	require.Contains(t, out, "+hover:bg-indigo-700\n")
	require.Contains(t, out, " [primary_button]\n")
	require.NotContains(t, out, "[hero_grid]")

	out, _, err = executeCommand(newRootCmd(), "diff", "-c", fixturePath, "-a", fixturePath)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestTokenListing(t *testing.T) {
	t.Parallel()

	listing := tokenListing([]compiler.Result{
		{Preset: "a", Tokens: []string{"p-2", "m-1"}},
		{Preset: "b", Tokens: []string{}},
	})
	require.Equal(t, "[a]\np-2\nm-1\n[b]\n", string(listing))
}
