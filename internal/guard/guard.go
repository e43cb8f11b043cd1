// Package guard rejects bindings whose evaluated value equals the kind's
// zero literal.
//
// This is the build-time half of the non-zero guarantee. The other half is
// that the success path leaves no trace: when the guard passes, nothing is
// emitted for it beyond the constant-division assertion in the generated
// file, which the compiler folds away entirely.
package guard

import (
	"fmt"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/registry"
)

// ZeroValueError reports a bound expression that evaluated to zero.
type ZeroValueError struct {
	Kind registry.Kind
	Name string
	Expr string
	Pos  string // file:line:col of the directive
}

func (e *ZeroValueError) Error() string {
	return fmt.Sprintf("%s: %s: expression %q evaluates to the zero value of %s",
		e.Pos, e.Name, e.Expr, e.Kind)
}

// Check asserts that the binding's value is non-zero.
func Check(b *binder.Binding) error {
	if b.Value.Sign() != 0 {
		return nil
	}
	d := b.Directive
	return &ZeroValueError{
		Kind: d.Kind,
		Name: d.Name,
		Expr: d.Expr,
		Pos:  d.Pos.String(),
	}
}

// CheckAll checks every binding and returns the passing ones together
// with all zero-value diagnostics.
func CheckAll(bindings []*binder.Binding) ([]*binder.Binding, []error) {
	var (
		passed []*binder.Binding
		errs   []error
	)
	for _, b := range bindings {
		if err := Check(b); err != nil {
			errs = append(errs, err)
			continue
		}
		passed = append(passed, b)
	}
	return passed, errs
}
