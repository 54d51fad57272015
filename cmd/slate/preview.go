package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	"github.com/alexisbeaulieu97/slate/internal/preview"
	"github.com/alexisbeaulieu97/slate/internal/sheet"
)

type previewOptions struct {
	SheetPath string
	Preset    string
	Width     int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show compiled presets as terminal cards with color swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSheetPath(opts.SheetPath); err != nil {
				return err
			}
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SheetPath, "config", "c", "", "Path to stylesheet file")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Preview a single preset")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Card width; defaults to the terminal width")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts previewOptions) error {
	doc, err := sheet.ParseFile(opts.SheetPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}

	results, err := compileSelection(cmd.Context(), compiler.New(compiler.Options{Logger: log}), doc, opts.Preset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := opts.Width
	if width <= 0 {
		if cols, ok := terminalWidth(out); ok {
			// border and padding take four columns
			width = min(cols-4, preview.DefaultWidth)
		}
	}

	p := preview.New(preview.Options{Width: width, Renderer: lipgloss.NewRenderer(out)})
	return p.Render(out, results)
}
