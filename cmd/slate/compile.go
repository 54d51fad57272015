package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	"github.com/alexisbeaulieu97/slate/internal/sheet"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type compileOptions struct {
	SheetPath string
	Preset    string
	Format    string
	Parallel  int
	ShowPlan  bool
}

func newCompileCmd(root *rootFlags) *cobra.Command {
	opts := compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile stylesheet presets into class tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCompileOptions(opts); err != nil {
				return err
			}
			return runCompile(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SheetPath, "config", "c", "", "Path to stylesheet file")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Compile a single preset and its parents")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json or yaml")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "Worker count, overriding settings.parallel")
	cmd.Flags().BoolVar(&opts.ShowPlan, "plan", false, "Print the compilation levels instead of tokens")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func validateCompileOptions(opts compileOptions) error {
	if err := validateSheetPath(opts.SheetPath); err != nil {
		return err
	}
	switch opts.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q: want text, json or yaml", opts.Format)
	}
	if opts.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative")
	}
	return nil
}

func runCompile(cmd *cobra.Command, root *rootFlags, opts compileOptions) error {
	doc, err := sheet.ParseFile(opts.SheetPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}
	c := compiler.New(compiler.Options{Parallel: opts.Parallel, Logger: log.With("sheet", doc.Name)})

	if opts.ShowPlan {
		plan, err := c.Plan(doc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), plan.String())
		return err
	}

	results, err := compileSelection(cmd.Context(), c, doc, opts.Preset)
	if err != nil {
		return err
	}
	return writeResults(cmd.OutOrStdout(), opts.Format, results)
}

// compileSelection compiles one preset when id is set, the whole sheet
// otherwise.
func compileSelection(ctx context.Context, c *compiler.Compiler, doc *sheet.Document, id string) ([]compiler.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id == "" {
		return c.Compile(ctx, doc)
	}
	res, err := c.CompilePreset(ctx, doc, id)
	if err != nil {
		return nil, err
	}
	return []compiler.Result{res}, nil
}

func writeResults(w io.Writer, format string, results []compiler.Result) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return encoder.Close()
	default:
		width := 0
		for _, res := range results {
			width = max(width, len(res.Preset))
		}
		var b strings.Builder
		for _, res := range results {
			fmt.Fprintf(&b, "%-*s  %s\n", width, res.Preset, res.Class())
		}
		_, err := io.WriteString(w, b.String())
		return err
	}
}
