package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	d.AddError(CodeEmptyName, "class rule without a name", "standardCorrections", "classes[2]")
	d.AddWarning(CodeRuleMismatch, "rule matched nothing", "Actor", "")
	d.AddInfo(CodeClassDeleted, "deleted", "Foo", "")
	d.AddInfo(CodeClassDeleted, "deleted", "Bar", "")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Equal(t, 4, d.Len())
	assert.Len(t, d.ByCode(CodeClassDeleted), 2)
	assert.Equal(t, map[string]int{
		CodeEmptyName:    1,
		CodeRuleMismatch: 1,
		CodeClassDeleted: 2,
	}, d.CountByCode())
	assert.Equal(t, []string{CodeClassDeleted, CodeEmptyName, CodeRuleMismatch}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[standardCorrections] classes[2]: [empty_name]")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning(CodeRuleMismatch, "x", "", "")
	b.AddError(CodeConflictingRename, "y", "", "")
	b.Add(Diagnostic{Severity: DiagnosticInfo, Code: CodeClassPruned})

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.NoError(t, (&Diagnostics{}).Error())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUnknownTarget,
		Message:     "no class named Acter",
		Declaration: "enumCorrections",
		Suggestions: []string{"Actor"},
	}

	assert.Equal(t, "[enumCorrections]: [unknown_target] no class named Acter (did you mean Actor?)", d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
