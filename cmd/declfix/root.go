package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"declaration-corrector/internal/output"
)

// cli holds the state shared by every command.
type cli struct {
	out    *output.Printer
	logger *slog.Logger
}

var app = &cli{
	out:    output.New(os.Stdout),
	logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
}

// RootCmd creates and returns the root command for the declfix CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "declfix",
		Short: "Correct generated Kotlin/JS external declarations",
		Long: `declfix rewrites the declaration tree produced by the declaration
generator into idiomatic Kotlin/JS external declarations.

Corrections come from a YAML configuration layered over a baseline
(the published default, the published empty document, a URL or a path).
Run settings are read from flags, DECLFIX_* environment variables, a .env
file and an optional declfix.yml in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.out.SetVerbose(verbose)

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			app.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
