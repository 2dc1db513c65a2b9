package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"declaration-corrector/internal/common"
	"declaration-corrector/internal/diagnostic"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled messages to a writer.
type Printer struct {
	w       io.Writer
	verbose bool
}

// New returns a printer writing to w. A nil writer means stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}

	return &Printer{w: w}
}

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Verbosity reports whether verbose output is enabled.
func (p *Printer) Verbosity() bool { return p.verbose }

func (p *Printer) println(style lipgloss.Style, msg string) {
	_, _ = fmt.Fprintln(p.w, style.Render(msg))
}

// Success prints a success message. Use this for completed operations.
func (p *Printer) Success(msg string) {
	p.println(successStyle, "✔ "+msg)
}

// Error prints an error message. Use this for failures that need user
// attention.
func (p *Printer) Error(msg string) {
	p.println(errorStyle, "✘ "+msg)
}

// Warn prints a warning.
func (p *Printer) Warn(msg string) {
	p.println(warnStyle, "! "+msg)
}

// Info prints an informational message.
func (p *Printer) Info(msg string) {
	p.println(infoStyle, msg)
}

// Step prints an indented sub-item.
func (p *Printer) Step(msg string) {
	p.println(stepStyle, "   "+msg)
}

// Verbose prints msg only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		p.println(stepStyle, "· "+msg)
	}
}

// Diagnostics prints errors and warnings in full. Infos are summarized by
// code, or listed in full in verbose mode.
func (p *Printer) Diagnostics(d *diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		p.Error(e.String())
	}

	for _, w := range d.Warnings {
		p.Warn(w.String())
	}

	if len(d.Infos) == 0 {
		return
	}

	if p.verbose {
		for _, i := range d.Infos {
			p.Verbose(i.String())
		}

		return
	}

	counts := make(map[string]int)
	for _, i := range d.Infos {
		counts[i.Code]++
	}

	for _, code := range common.SortedKeys(counts) {
		p.Step(fmt.Sprintf("%s: %d", code, counts[code]))
	}
}
