package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"declaration-corrector/internal/diagnostic"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		print  func(p *Printer)
		marker string
	}{
		{name: "success", print: func(p *Printer) { p.Success("done") }, marker: "✔"},
		{name: "error", print: func(p *Printer) { p.Error("done") }, marker: "✘"},
		{name: "warn", print: func(p *Printer) { p.Warn("done") }, marker: "!"},
		{name: "step", print: func(p *Printer) { p.Step("done") }, marker: "   "},
		{name: "info", print: func(p *Printer) { p.Info("done") }, marker: "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			tt.print(New(&buf))

			assert.Contains(t, buf.String(), tt.marker)
			assert.Contains(t, buf.String(), "done")
		})
	}
}

func TestPrinter_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := New(&buf)
	p.Verbose("hidden")
	assert.Empty(t, buf.String())

	p.SetVerbose(true)
	assert.True(t, p.Verbosity())

	p.Verbose("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrinter_Diagnostics(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics

	d.AddError(diagnostic.CodeEmptyName, "empty rename", "Vector", "")
	d.AddWarning(diagnostic.CodeUnresolvedPlaceholder, "no stable name", "T$4", "")
	d.AddInfo(diagnostic.CodeClassPruned, "unreachable", "A", "")
	d.AddInfo(diagnostic.CodeClassPruned, "unreachable", "B", "")

	var buf bytes.Buffer

	New(&buf).Diagnostics(&d)

	out := buf.String()
	assert.Contains(t, out, "empty rename")
	assert.Contains(t, out, "no stable name")
	assert.Contains(t, out, "class_pruned: 2")
	assert.NotContains(t, out, "[A]")

	buf.Reset()

	p := New(&buf)
	p.SetVerbose(true)
	p.Diagnostics(&d)

	assert.Contains(t, buf.String(), "[A]")
	assert.Contains(t, buf.String(), "[B]")
}
