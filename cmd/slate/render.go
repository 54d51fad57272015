package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	"github.com/alexisbeaulieu97/slate/internal/markup"
	"github.com/alexisbeaulieu97/slate/internal/sheet"
)

type renderOptions struct {
	SheetPath string
	Preset    string
	Text      string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a preset's element as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSheetPath(opts.SheetPath); err != nil {
				return err
			}
			if opts.Preset == "" {
				return fmt.Errorf("preset is required")
			}
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SheetPath, "config", "c", "", "Path to stylesheet file")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Preset to render")
	cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "Text content of the element")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagRequired("preset") //nolint:errcheck

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
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

	var children []markup.Node
	if opts.Text != "" {
		children = append(children, markup.Text(opts.Text))
	}

	out := cmd.OutOrStdout()
	if err := markup.Render(out, results[0].Node(children...)); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}
