// Package gentest runs YAML-defined fixture suites through the full
// generation pipeline.
//
// A suite is a list of cases, each holding an in-memory Go source file
// with directives plus an expectation: either a set of diagnostics the
// pipeline must produce, or a golden file the rendered output must match.
// Suites live in testdata/suites; goldens in testdata/golden, named
// <suite>_<case>.golden.
package gentest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/codegen"
	"github.com/nzgen/nz/internal/guard"
	"github.com/nzgen/nz/internal/scanner"
	"github.com/nzgen/nz/internal/testutil"
)

// Suite is one YAML fixture file.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a single pipeline run: one source file, one expectation.
type Case struct {
	Name string `yaml:"name"`

	// Source is a complete Go file containing nz directives.
	Source string `yaml:"source"`

	// Golden, when true, requires the pipeline to succeed and the rendered
	// file to match the case's golden fixture.
	Golden bool `yaml:"golden"`

	// Errors lists diagnostics the pipeline must produce. Each expected
	// error must be matched by at least one collected error.
	Errors []ExpectedError `yaml:"errors"`
}

// ExpectedError describes one required diagnostic.
type ExpectedError struct {
	// Class selects the diagnostic type: zero, non-constant,
	// not-representable, duplicate, invalid-expression or bad-directive.
	Class string `yaml:"class"`

	// Contains is a substring the error message must include.
	Contains string `yaml:"contains"`
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite %s: %w", path, err)
	}

	s := &Suite{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("suite %s: missing name", path)
	}
	for _, c := range s.Cases {
		if c.Name == "" || c.Source == "" {
			return nil, fmt.Errorf("suite %s: every case needs a name and source", path)
		}
		if c.Golden == (len(c.Errors) > 0) {
			return nil, fmt.Errorf("suite %s: case %s must expect either a golden or errors", path, c.Name)
		}
	}
	return s, nil
}

// Run executes every case in the suite as a subtest.
func Run(t *testing.T, s *Suite) {
	t.Helper()

	for _, c := range s.Cases {
		t.Run(s.Name+"/"+c.Name, func(t *testing.T) {
			runCase(t, s, c)
		})
	}
}

func runCase(t *testing.T, s *Suite, c Case) {
	t.Helper()

	fset, pkg, file := testutil.TypeCheck(t, c.Source)

	directives, errs := scanner.FromFile(fset, file)

	bindings, bindErrs := binder.New(fset, pkg).BindAll(directives)
	errs = append(errs, bindErrs...)

	passed, zeroErrs := guard.CheckAll(bindings)
	errs = append(errs, zeroErrs...)

	if len(c.Errors) > 0 {
		require.NotEmpty(t, errs, "expected diagnostics, pipeline passed")
		for _, want := range c.Errors {
			assertMatched(t, want, errs)
		}
		assert.Len(t, errs, len(c.Errors), "unexpected extra diagnostics: %v", errs)
		return
	}

	require.Empty(t, errs, "pipeline failed: %v", errs)

	out, err := (&codegen.File{PkgName: pkg.Name(), Bindings: passed}).Render()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name+"_"+c.Name, out)
}

func assertMatched(t *testing.T, want ExpectedError, errs []error) {
	t.Helper()

	for _, err := range errs {
		if want.Class != "" && classify(err) != want.Class {
			continue
		}
		if want.Contains != "" && !strings.Contains(err.Error(), want.Contains) {
			continue
		}
		return
	}
	t.Errorf("no diagnostic matched class=%q contains=%q in %v", want.Class, want.Contains, errs)
}

func classify(err error) string {
	var (
		zeroErr  *guard.ZeroValueError
		nonConst *binder.NonConstantError
		notRepr  *binder.NotRepresentableError
		dup      *binder.DuplicateNameError
		invalid  *binder.InvalidExpressionError
		badDir   *scanner.BadDirectiveError
	)

	switch {
	case errors.As(err, &zeroErr):
		return "zero"
	case errors.As(err, &nonConst):
		return "non-constant"
	case errors.As(err, &notRepr):
		return "not-representable"
	case errors.As(err, &dup):
		return "duplicate"
	case errors.As(err, &invalid):
		return "invalid-expression"
	case errors.As(err, &badDir):
		return "bad-directive"
	}
	return "other"
}
