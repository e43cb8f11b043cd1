package cli

import (
	"errors"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/guard"
	"github.com/nzgen/nz/internal/manifest"
	"github.com/nzgen/nz/internal/scanner"
)

// Error codes surfaced in diagnostics. E0xx are command-level problems,
// E1xx are validation failures in directives.
const (
	ErrCodeGeneric     = "E000"
	ErrCodeNotFound    = "E001"
	ErrCodeNoInput     = "E002"
	ErrCodeLoadFailed  = "E003"
	ErrCodeWriteFailed = "E004"

	ErrCodeZeroValue        = "E101"
	ErrCodeNonConstant      = "E102"
	ErrCodeNotRepresentable = "E103"
	ErrCodeDuplicateName    = "E104"
	ErrCodeBadDirective     = "E105"
)

// diagnosticFor classifies a pipeline error into a Diagnostic.
func diagnosticFor(err error) Diagnostic {
	var (
		zeroErr  *guard.ZeroValueError
		nonConst *binder.NonConstantError
		notRepr  *binder.NotRepresentableError
		dup      *binder.DuplicateNameError
		invalid  *binder.InvalidExpressionError
		badDir   *scanner.BadDirectiveError
		loadErr  *manifest.LoadError
	)

	switch {
	case errors.As(err, &zeroErr):
		return Diagnostic{Code: ErrCodeZeroValue, Message: err.Error(), Position: zeroErr.Pos}
	case errors.As(err, &nonConst):
		return Diagnostic{Code: ErrCodeNonConstant, Message: err.Error(), Position: nonConst.Directive.Pos.String()}
	case errors.As(err, &notRepr):
		return Diagnostic{Code: ErrCodeNotRepresentable, Message: err.Error(), Position: notRepr.Directive.Pos.String()}
	case errors.As(err, &dup):
		return Diagnostic{Code: ErrCodeDuplicateName, Message: err.Error(), Position: dup.Directive.Pos.String()}
	case errors.As(err, &invalid):
		return Diagnostic{Code: ErrCodeBadDirective, Message: err.Error(), Position: invalid.Directive.Pos.String()}
	case errors.As(err, &badDir):
		return Diagnostic{Code: ErrCodeBadDirective, Message: err.Error(), Position: badDir.Pos.String()}
	case errors.As(err, &loadErr):
		return Diagnostic{Code: ErrCodeLoadFailed, Message: err.Error()}
	}
	return Diagnostic{Code: ErrCodeGeneric, Message: err.Error()}
}

// diagnosticsFor maps a slice of pipeline errors.
func diagnosticsFor(errs []error) []Diagnostic {
	diags := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		diags = append(diags, diagnosticFor(err))
	}
	return diags
}
