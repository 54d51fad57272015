package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slate/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "slate",
		Short:         "Slate compiles typed style presets into utility class tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger logs to the command's stderr, in console form when that is a
// terminal.
func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	out := cmd.ErrOrStderr()
	return logger.New(logger.Options{Level: level, Console: isTerminal(out), Writer: out})
}
