package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// VersionCmd prints the build version.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the declfix version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.out.Info("declfix " + version)
		},
	}
}
