package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"declaration-corrector/internal/config"
)

// CheckCmd creates the check command.
func CheckCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a correction configuration",
		Long: `Validates the configuration layered over its baseline. With an input
directory, also reports class rules that name no declaration.

Exits non-zero when the configuration has errors.

Examples:
  declfix check -c corrections.yml
  declfix check -c corrections.yml --baseline default --dump
  declfix check -c corrections.yml -i build/declarations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(".", bindFlags(cmd))
			if err != nil {
				return reportError(err)
			}

			p, err := newPipeline(settings, app.logger, app.out)
			if err != nil {
				return reportError(err)
			}

			cfg, diags, err := p.check(cmd.Context())
			if err != nil {
				return reportError(err)
			}

			if dump {
				data, err := config.Marshal(cfg)
				if err != nil {
					return reportError(err)
				}

				_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
			}

			app.out.Diagnostics(diags)

			if diags.HasErrors() {
				return errors.New("configuration has errors")
			}

			app.out.Success("Configuration is valid")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP(config.KeyConfig, "c", "", "Correction configuration file")
	flags.String(config.KeyBaseline, "", `Baseline configuration: "default", "empty", a URL or a path`)
	flags.StringP(config.KeyInput, "i", "", "Directory of declaration documents")
	flags.Int(config.KeyWorkers, 4, "Declaration documents read in parallel")
	flags.BoolVar(&dump, "dump", false, "Print the resolved configuration")

	return cmd
}
