package binder

import (
	"fmt"
	"go/token"

	"github.com/nzgen/nz/internal/scanner"
)

// InvalidExpressionError reports a directive expression that is not valid
// Go expression syntax.
type InvalidExpressionError struct {
	Directive scanner.Directive
	Detail    string
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("%s: %s: invalid expression %q: %s",
		e.Directive.Pos, e.Directive.Name, e.Directive.Expr, e.Detail)
}

// NonConstantError reports an expression that cannot be resolved at build
// time: it references runtime state, calls a non-constant function, or
// fails to type-check against the package scope.
type NonConstantError struct {
	Directive scanner.Directive
	Detail    string
}

func (e *NonConstantError) Error() string {
	return fmt.Sprintf("%s: %s: expression %q is not a build-time constant: %s",
		e.Directive.Pos, e.Directive.Name, e.Directive.Expr, e.Detail)
}

// NotRepresentableError reports a constant whose value does not fit the
// directive's kind, or is not an integer at all.
type NotRepresentableError struct {
	Directive scanner.Directive
	Value     string // decimal rendering, empty for non-integer constants
	Detail    string
}

func (e *NotRepresentableError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s: value %s is not representable in %s: %s",
			e.Directive.Pos, e.Directive.Name, e.Value, e.Directive.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s: expression %q is not representable in %s: %s",
		e.Directive.Pos, e.Directive.Name, e.Directive.Expr, e.Directive.Kind, e.Detail)
}

// DuplicateNameError reports two directives binding the same name within
// one package.
type DuplicateNameError struct {
	Directive scanner.Directive
	Previous  token.Position
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %s is already bound by the directive at %s",
		e.Directive.Pos, e.Directive.Name, e.Previous)
}
