package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"declaration-corrector/internal/config"
	"declaration-corrector/internal/engine"
)

// RunCmd creates the run command.
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Correct declarations and write the Kotlin files",
		Long: `Loads every declaration document in the input directory, applies the
correction passes and writes the finalized Kotlin files.

Examples:
  declfix run -i build/declarations -o src/jsMain/kotlin/ue
  declfix run -i build/declarations -c corrections.yml --baseline default
  declfix run -i build/declarations --required-classes Actor,World`,
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

			report, files, err := p.run(cmd.Context())
			if err != nil {
				return reportError(err)
			}

			printReport(report)

			app.out.Success(fmt.Sprintf("Wrote %d files to %s", len(files), settings.Output))

			for _, f := range files {
				app.out.Verbose(f.Filename)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP(config.KeyInput, "i", "", "Directory of declaration documents")
	flags.StringP(config.KeyOutput, "o", "out", "Output directory")
	flags.StringP(config.KeyConfig, "c", "", "Correction configuration file")
	flags.String(config.KeyBaseline, "", `Baseline configuration: "default", "empty", a URL or a path`)
	flags.StringSlice(config.KeyRequiredClasses, nil, "Classes whose dependency closure is kept")
	flags.Bool(config.KeyIncludeAllClasses, false, "Keep every class instead of pruning")
	flags.Bool(config.KeyIncludeAllEnums, true, "Keep every enum class")
	flags.String(config.KeyDefaultPackage, "ue", "Package assigned to unqualified type references")
	flags.Int(config.KeyWorkers, 4, "Declaration documents read in parallel")

	return cmd
}

func bindFlags(cmd *cobra.Command) func(*viper.Viper) error {
	return func(v *viper.Viper) error {
		return v.BindPFlags(cmd.Flags())
	}
}

func reportError(err error) error {
	app.out.Error(err.Error())
	return err
}

func printReport(report *engine.Report) {
	app.out.Diagnostics(&report.Diagnostics)

	for _, line := range []struct {
		label string
		names []string
	}{
		{"enums", report.Enums},
		{"unresolved placeholders", report.Unresolved},
		{"duplicates removed", report.Ignored},
		{"deleted", report.Deleted},
		{"pruned", report.Pruned},
		{"renamed", report.Renamed},
	} {
		if len(line.names) == 0 {
			continue
		}

		app.out.Info(fmt.Sprintf("%s: %d", line.label, len(line.names)))
		app.out.Verbose(strings.Join(line.names, ", "))
	}
}
