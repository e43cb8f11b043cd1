package scanner

import (
	"fmt"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Target is a loaded Go package together with the directives found in its
// sources. It carries everything the binder needs to type-check directive
// expressions against the package scope.
type Target struct {
	PkgPath string
	PkgName string
	Dir     string

	Fset  *token.FileSet
	Types *types.Package

	Directives []Directive
}

// loadMode requests syntax for directive scanning and full type information
// for expression binding.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedDeps

// Load loads the package rooted at dir and scans its files for directives.
// Directive parse errors are collected rather than fatal; the caller
// decides whether any error fails the run.
//
// Packages that fail to type-check are rejected up front: the binder's
// guarantees are meaningless against a broken package scope.
func Load(dir string) (*Target, []error) {
	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, []error{fmt.Errorf("loading package in %s: %w", dir, err)}
	}
	if len(pkgs) == 0 {
		return nil, []error{fmt.Errorf("no Go package found in %s", dir)}
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, []error{fmt.Errorf("package %s does not compile: %v", pkg.PkgPath, pkg.Errors[0])}
	}

	target := &Target{
		PkgPath: pkg.PkgPath,
		PkgName: pkg.Name,
		Dir:     dir,
		Fset:    pkg.Fset,
		Types:   pkg.Types,
	}

	var errs []error
	for _, file := range pkg.Syntax {
		ds, ferrs := FromFile(pkg.Fset, file)
		target.Directives = append(target.Directives, ds...)
		errs = append(errs, ferrs...)
	}

	return target, errs
}
