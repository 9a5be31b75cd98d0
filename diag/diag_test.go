package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Superchig/keymap/token"
)

func TestDiagnostic_Error(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityLevelError,
		StartPos: token.Position{
			Filename: "keymap.conf",
			Line:     5,
			Column:   10,
		},
		Message: "unexpected token",
		Value:   "invalid",
	}

	assert.Equal(t, "keymap.conf:5:10: unexpected token", d.Error())
}

func TestDiagnostics_AddAndMerge(t *testing.T) {
	d1 := Diagnostic{
		Severity: SeverityLevelError,
		StartPos: token.Position{Filename: "a.conf", Line: 1, Column: 1},
		Message:  "error 1",
	}
	d2 := Diagnostic{
		Severity: SeverityLevelWarn,
		StartPos: token.Position{Filename: "a.conf", Line: 2, Column: 2},
		Message:  "warning 1",
	}
	d3 := Diagnostic{
		Severity: SeverityLevelError,
		StartPos: token.Position{Filename: "b.conf", Line: 3, Column: 3},
		Message:  "error 2",
	}

	var ds Diagnostics
	ds.Add(d1)
	ds.Add(d2)
	assert.Equal(t, Diagnostics{d1, d2}, ds)

	ds.Merge(Diagnostics{d3})
	assert.Equal(t, Diagnostics{d1, d2, d3}, ds)
}

func TestDiagnostics_Error(t *testing.T) {
	tests := []struct {
		name        string
		diagnostics Diagnostics
		expected    string
	}{
		{
			name:        "empty diagnostics",
			diagnostics: Diagnostics{},
			expected:    "no errors",
		},
		{
			name: "single diagnostic",
			diagnostics: Diagnostics{
				{
					Severity: SeverityLevelError,
					StartPos: token.Position{Filename: "keymap.conf", Line: 1, Column: 1},
					Message:  "single error",
				},
			},
			expected: "keymap.conf:1:1: single error",
		},
		{
			name: "multiple diagnostics",
			diagnostics: Diagnostics{
				{
					Severity: SeverityLevelError,
					StartPos: token.Position{Filename: "keymap.conf", Line: 1, Column: 1},
					Message:  "first error",
				},
				{
					Severity: SeverityLevelWarn,
					StartPos: token.Position{Filename: "keymap.conf", Line: 2, Column: 1},
					Message:  "warning",
				},
				{
					Severity: SeverityLevelError,
					StartPos: token.Position{Filename: "keymap.conf", Line: 3, Column: 1},
					Message:  "second error",
				},
			},
			expected: "keymap.conf:1:1: first error (and 2 more diagnostics)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diagnostics.Error())
		})
	}
}

func TestDiagnostics_ErrorOrNil(t *testing.T) {
	var ds Diagnostics
	assert.Nil(t, ds.ErrorOrNil())

	ds.Add(Diagnostic{
		Severity: SeverityLevelError,
		StartPos: token.Position{Filename: "keymap.conf", Line: 1, Column: 1},
		Message:  "test error",
	})
	err := ds.ErrorOrNil()
	assert.NotNil(t, err)
	assert.Equal(t, ds, err)
}

func TestDiagnostics_HasErrors(t *testing.T) {
	tests := []struct {
		name        string
		diagnostics Diagnostics
		expected    bool
	}{
		{
			name:        "empty diagnostics",
			diagnostics: Diagnostics{},
			expected:    false,
		},
		{
			name: "only warnings",
			diagnostics: Diagnostics{
				{
					Severity: SeverityLevelWarn,
					StartPos: token.Position{Filename: "keymap.conf", Line: 1, Column: 1},
					Message:  "warning 1",
				},
			},
			expected: false,
		},
		{
			name: "mixed warnings and errors",
			diagnostics: Diagnostics{
				{
					Severity: SeverityLevelWarn,
					StartPos: token.Position{Filename: "keymap.conf", Line: 1, Column: 1},
					Message:  "warning",
				},
				{
					Severity: SeverityLevelError,
					StartPos: token.Position{Filename: "keymap.conf", Line: 2, Column: 1},
					Message:  "error",
				},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diagnostics.HasErrors())
		})
	}
}
