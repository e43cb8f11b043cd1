// Package testutil provides helpers for building typed packages from
// in-memory source, so binder/guard/codegen tests run hermetically without
// touching the module cache.
package testutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// TypeCheck parses and type-checks a single in-memory file and returns
// the file set, the typed package and the syntax tree. The file name in
// positions is always "src.go".
func TypeCheck(t *testing.T, src string) (*token.FileSet, *types.Package, *ast.File) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parsing test source: %v", err)
	}

	cfg := &types.Config{Importer: importer.Default()}
	pkg, err := cfg.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	if err != nil {
		t.Fatalf("type-checking test source: %v", err)
	}

	return fset, pkg, file
}
