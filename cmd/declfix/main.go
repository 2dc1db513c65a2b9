// Package main provides the CLI entrypoint for declfix.
//
// declfix corrects generated Kotlin/JS external declarations:
//   - Loads declaration documents produced by the declaration generator
//   - Applies configured corrections layered over a baseline configuration
//   - Resolves placeholder classes and prunes unreachable declarations
//   - Emits and finalizes the corrected Kotlin files
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	rootCmd := RootCmd()
	rootCmd.AddCommand(RunCmd())
	rootCmd.AddCommand(CheckCmd())
	rootCmd.AddCommand(VersionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
