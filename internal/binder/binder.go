// Package binder evaluates directive expressions at build time.
//
// For each directive the binder type-checks the expression at the
// directive's position in the target package, so package-level and
// imported constants are in scope. It requires the result to be a
// constant, converts
// it to the directive's kind (checking representability), and allocates a
// structurally unique bound-constant name. Zero detection is deliberately
// not here: that is the guard's single job.
package binder

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"math/big"

	"github.com/google/uuid"

	"github.com/nzgen/nz/internal/registry"
	"github.com/nzgen/nz/internal/scanner"
)

// Binding is a fully evaluated directive: the build-time-only named
// storage location for the expression's value.
type Binding struct {
	Directive scanner.Directive

	// Value is the exact evaluated value.
	Value *big.Int

	// BoundName is the generated name of the hidden bound constant,
	// unique within the target package.
	BoundName string

	// ID is the deterministic UUID identifying this binding across runs.
	ID uuid.UUID
}

// Binder binds directives against one package scope. Not safe for
// concurrent use; bind one package per Binder.
type Binder struct {
	fset    *token.FileSet
	pkg     *types.Package
	pkgPath string

	names *namer
	seen  map[string]token.Position
}

// New creates a Binder for the given package. pkg may be a synthetic
// empty package when expressions come from a manifest rather than source;
// universe-scope constants still resolve there.
func New(fset *token.FileSet, pkg *types.Package) *Binder {
	return &Binder{
		fset:    fset,
		pkg:     pkg,
		pkgPath: pkg.Path(),
		names:   newNamer(pkg.Path()),
		seen:    make(map[string]token.Position),
	}
}

// EmptyScope returns a synthetic package with no declarations, for
// binding manifest expressions: they may reference literals, arithmetic
// and universe constants only.
func EmptyScope(path string) *types.Package {
	pkg := types.NewPackage(path, "manifest")
	pkg.MarkComplete()
	return pkg
}

// Bind evaluates one directive. Each directive is evaluated exactly once;
// sibling bindings in the same package never observe or disturb each
// other's values.
func (b *Binder) Bind(d scanner.Directive) (*Binding, error) {
	if prev, ok := b.seen[d.Name]; ok {
		return nil, &DuplicateNameError{Directive: d, Previous: prev}
	}

	expr, err := parser.ParseExpr(d.Expr)
	if err != nil {
		return nil, &InvalidExpressionError{Directive: d, Detail: err.Error()}
	}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
	}
	// Checking at the directive's own position puts the enclosing file
	// scope in effect, so import-qualified constants resolve. Manifest
	// directives carry NoPos and see only the package and universe scopes.
	if err := types.CheckExpr(b.fset, b.pkg, d.ScopePos, expr, info); err != nil {
		return nil, &NonConstantError{Directive: d, Detail: err.Error()}
	}

	tv := info.Types[expr]
	if tv.Value == nil {
		return nil, &NonConstantError{Directive: d, Detail: "value is only known at run time"}
	}

	ival := constant.ToInt(tv.Value)
	if ival.Kind() != constant.Int {
		return nil, &NotRepresentableError{Directive: d, Detail: "not an integer constant"}
	}

	value := bigFromConstant(ival)
	if !d.Kind.Representable(value) {
		return nil, &NotRepresentableError{
			Directive: d,
			Value:     value.String(),
			Detail:    rangeDetail(d.Kind),
		}
	}

	b.seen[d.Name] = d.Pos
	tag := registry.Lookup(d.Kind).Tag

	return &Binding{
		Directive: d,
		Value:     value,
		BoundName: b.names.next(tag, d.Name),
		ID:        BindingID(b.pkgPath, tag, d.Name),
	}, nil
}

// BindAll binds every directive, collecting all errors rather than
// stopping at the first. Successful bindings are returned even when some
// directives fail, so diagnostics can report everything wrong in one run.
func (b *Binder) BindAll(ds []scanner.Directive) ([]*Binding, []error) {
	var (
		bindings []*Binding
		errs     []error
	)
	for _, d := range ds {
		binding, err := b.Bind(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bindings = append(bindings, binding)
	}
	return bindings, errs
}

func bigFromConstant(v constant.Value) *big.Int {
	switch val := constant.Val(v).(type) {
	case int64:
		return big.NewInt(val)
	case *big.Int:
		return new(big.Int).Set(val)
	default:
		// constant.ToInt returned Kind Int; Val is int64 or *big.Int.
		panic("binder: unexpected constant representation")
	}
}

func rangeDetail(k registry.Kind) string {
	return "the " + k.String() + " range is " + k.Min().String() + " to " + k.Max().String()
}
