// Package scanner discovers nz directives in Go source.
//
// A directive is a comment of the form
//
//	//nz:<tag> <Name> = <expr>
//
// where <tag> names one of the twelve numeric kinds (see registry), <Name>
// is the Go identifier the generated wrapper declaration will use, and
// <expr> is a constant expression evaluated against the package scope.
package scanner

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/nzgen/nz/internal/registry"
)

const directivePrefix = "//nz:"

// Directive is one parsed invocation point: a constant expression tagged
// with the numeric kind it targets.
type Directive struct {
	Kind registry.Kind
	Name string
	Expr string

	// Doc is an optional description carried into the generated
	// declaration's comment. Source directives leave it empty; the CUE
	// manifest can set it.
	Doc string

	Pos token.Position

	// ScopePos is the directive comment's position within its file set.
	// The binder type-checks the expression at this position so the file's
	// imports are in scope. NoPos for manifest directives, which bind
	// against an empty scope.
	ScopePos token.Pos
}

// BadDirectiveError reports a directive comment that could not be parsed.
type BadDirectiveError struct {
	Pos    token.Position
	Line   string
	Reason string
}

func (e *BadDirectiveError) Error() string {
	return fmt.Sprintf("%s: bad nz directive %q: %s", e.Pos, e.Line, e.Reason)
}

// FromFile extracts directives from a parsed file. Parse errors for
// individual directives are collected, not fatal: the caller decides
// whether to fail the run.
func FromFile(fset *token.FileSet, file *ast.File) ([]Directive, []error) {
	var (
		directives []Directive
		errs       []error
	)

	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !strings.HasPrefix(comment.Text, directivePrefix) {
				continue
			}
			d, err := parseDirective(comment.Text, fset.Position(comment.Pos()))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			d.ScopePos = comment.Pos()
			directives = append(directives, d)
		}
	}

	return directives, errs
}

// parseDirective parses a single "//nz:<tag> <Name> = <expr>" comment.
func parseDirective(text string, pos token.Position) (Directive, error) {
	line := strings.TrimPrefix(text, directivePrefix)

	tag, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Directive{}, &BadDirectiveError{Pos: pos, Line: text, Reason: "expected //nz:<kind> <Name> = <expr>"}
	}

	kind, ok := registry.FromTag(tag)
	if !ok {
		return Directive{}, &BadDirectiveError{Pos: pos, Line: text, Reason: fmt.Sprintf("unknown kind %q", tag)}
	}

	name, expr, ok := strings.Cut(rest, "=")
	if !ok {
		return Directive{}, &BadDirectiveError{Pos: pos, Line: text, Reason: "missing '=' between name and expression"}
	}

	name = strings.TrimSpace(name)
	if !token.IsIdentifier(name) {
		return Directive{}, &BadDirectiveError{Pos: pos, Line: text, Reason: fmt.Sprintf("%q is not a valid Go identifier", name)}
	}

	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Directive{}, &BadDirectiveError{Pos: pos, Line: text, Reason: "empty expression"}
	}

	return Directive{Kind: kind, Name: name, Expr: expr, Pos: pos}, nil
}
