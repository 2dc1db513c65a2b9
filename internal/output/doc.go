// Package output provides styled terminal output for the declfix CLI.
//
// Usage:
//
//	out := output.New(os.Stdout)
//	out.Success("Wrote 6 files")
//	out.Info("Next steps:")
//	out.Step("review out/UE.kt")
//	out.Error("loading configuration: file not found")
//
// Styling:
//
//   - Success: ✔ green bold
//   - Error: ✘ red bold
//   - Warn: ! yellow
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray (when enabled)
package output
