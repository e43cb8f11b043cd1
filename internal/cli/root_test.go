package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/guard"
	"github.com/nzgen/nz/internal/registry"
	"github.com/nzgen/nz/internal/scanner"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "kinds")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestKindsText(t *testing.T) {
	out, _, err := execute(t, "kinds")
	require.NoError(t, err)

	assert.Contains(t, out, "KIND")
	for _, info := range registry.All() {
		assert.Contains(t, out, info.Tag)
	}
	assert.Contains(t, out, "var") // the 128-bit kinds emit vars
}

func TestKindsJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "kinds")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	kinds, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, kinds, 12)
}

// =============================================================================
// Exit Code Tests
// =============================================================================

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("untyped")))
}

// =============================================================================
// Diagnostic Classification Tests
// =============================================================================

func TestDiagnosticCodes(t *testing.T) {
	pos := token.Position{Filename: "a.go", Line: 4, Column: 1}
	d := scanner.Directive{Kind: registry.KindU8, Name: "X", Expr: "0", Pos: pos}

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"zero value", &guard.ZeroValueError{Kind: registry.KindU8, Name: "X", Expr: "0", Pos: pos.String()}, ErrCodeZeroValue},
		{"non constant", &binder.NonConstantError{Directive: d}, ErrCodeNonConstant},
		{"not representable", &binder.NotRepresentableError{Directive: d}, ErrCodeNotRepresentable},
		{"duplicate", &binder.DuplicateNameError{Directive: d}, ErrCodeDuplicateName},
		{"invalid expression", &binder.InvalidExpressionError{Directive: d}, ErrCodeBadDirective},
		{"bad directive", &scanner.BadDirectiveError{Pos: pos}, ErrCodeBadDirective},
		{"unclassified", errors.New("boom"), ErrCodeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := diagnosticFor(tt.err)
			assert.Equal(t, tt.code, diag.Code)
		})
	}
}

func TestDiagnosticCarriesPosition(t *testing.T) {
	pos := token.Position{Filename: "a.go", Line: 4, Column: 1}
	d := scanner.Directive{Kind: registry.KindU8, Name: "X", Expr: "y", Pos: pos}

	diag := diagnosticFor(&binder.NonConstantError{Directive: d, Detail: "y is a variable"})
	assert.Equal(t, "a.go:4:1", diag.Position)
}

// =============================================================================
// Output Formatter Tests
// =============================================================================

func TestFormatterFailText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.Fail([]Diagnostic{
		{Code: ErrCodeZeroValue, Message: "zero", Position: "a.go:4:1"},
	}, nil))

	assert.Contains(t, buf.String(), "a.go:4:1")
	assert.Contains(t, buf.String(), "E101: zero")
}

func TestFormatterFailJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Fail([]Diagnostic{{Code: ErrCodeNonConstant, Message: "nope"}}, nil))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.Len(t, resp.Diagnostics, 1)
	assert.Equal(t, ErrCodeNonConstant, resp.Diagnostics[0].Code)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut, Verbose: true}

	f.VerboseLog("bound %d directive(s)", 3)

	assert.Empty(t, out.String())
	assert.Equal(t, "bound 3 directive(s)\n", errOut.String())
}
