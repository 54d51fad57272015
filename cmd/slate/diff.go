package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slate/internal/compiler"
	"github.com/alexisbeaulieu97/slate/internal/sheet"
	"github.com/alexisbeaulieu97/slate/pkg/diff"
)

type diffOptions struct {
	SheetPath   string
	AgainstPath string
	Preset      string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how compiled tokens change between two stylesheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSheetPath(opts.SheetPath); err != nil {
				return err
			}
			if err := validateSheetPath(opts.AgainstPath); err != nil {
				return fmt.Errorf("against: %w", err)
			}
			return runDiff(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SheetPath, "config", "c", "", "Stylesheet to compare from")
	cmd.Flags().StringVarP(&opts.AgainstPath, "against", "a", "", "Stylesheet to compare to")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Compare a single preset")
	cmd.MarkFlagRequired("config")  //nolint:errcheck
	cmd.MarkFlagRequired("against") //nolint:errcheck

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, opts diffOptions) error {
	log, err := newLogger(cmd, root)
	if err != nil {
		return err
	}
	c := compiler.New(compiler.Options{Logger: log})

	before, err := compileListing(cmd, c, opts.SheetPath, opts.Preset)
	if err != nil {
		return err
	}
	after, err := compileListing(cmd, c, opts.AgainstPath, opts.Preset)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), diff.Unified(before, after, opts.SheetPath, opts.AgainstPath))
	return err
}

// compileListing compiles a sheet into one token per line under a
// "[preset]" header, so that line diffs read token by token.
func compileListing(cmd *cobra.Command, c *compiler.Compiler, path, preset string) ([]byte, error) {
	doc, err := sheet.ParseFile(path)
	if err != nil {
		return nil, err
	}
	results, err := compileSelection(cmd.Context(), c, doc, preset)
	if err != nil {
		return nil, err
	}
	return tokenListing(results), nil
}

func tokenListing(results []compiler.Result) []byte {
	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "[%s]\n", res.Preset)
		for _, token := range res.Tokens {
			b.WriteString(token)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}
