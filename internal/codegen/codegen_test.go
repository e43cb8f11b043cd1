package codegen

import (
	"go/token"
	"math/big"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/guard"
	"github.com/nzgen/nz/internal/registry"
	"github.com/nzgen/nz/internal/scanner"
	"github.com/nzgen/nz/internal/testutil"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// Full pipeline over an in-memory source file: scan, bind, guard, render.
func TestRenderSourceDirectives(t *testing.T) {
	fset, pkg, file := testutil.TypeCheck(t, `package limits

//nz:u8 MaxRed = 0xF0 | 0xF
//nz:i32 Offset = -19
//nz:u64 Mask = 1 << 16
//nz:u128 KeySpace = 1 << 100
//nz:i128 MinHalf = -(1 << 100)
`)

	directives, errs := scanner.FromFile(fset, file)
	require.Empty(t, errs)
	require.Len(t, directives, 5)

	bindings, bindErrs := binder.New(fset, pkg).BindAll(directives)
	require.Empty(t, bindErrs)

	passed, guardErrs := guard.CheckAll(bindings)
	require.Empty(t, guardErrs)

	f := &File{PkgName: "limits", Bindings: passed}
	src, err := f.Render()
	require.NoError(t, err)

	golden(t).Assert(t, "source_directives", src)
}

// Manifest bindings carry a doc string and no source position; the header
// line records where the declarations came from.
func TestRenderManifestBindings(t *testing.T) {
	b := binder.New(token.NewFileSet(), binder.EmptyScope("manifest/limits"))

	retries, err := b.Bind(scanner.Directive{
		Kind: registry.KindU16,
		Name: "MaxRetries",
		Expr: "(1 << 4) - 9",
		Doc:  "retry budget",
	})
	require.NoError(t, err)

	keySpace, err := b.Bind(scanner.Directive{
		Kind: registry.KindU128,
		Name: "KeySpace",
		Expr: "1 << 100",
	})
	require.NoError(t, err)

	f := &File{
		PkgName:  "limits",
		Header:   "source: limits.cue",
		Bindings: []*binder.Binding{retries, keySpace},
	}
	src, err := f.Render()
	require.NoError(t, err)

	golden(t).Assert(t, "manifest_bindings", src)
}

func TestRenderEmptyFails(t *testing.T) {
	f := &File{PkgName: "limits"}
	_, err := f.Render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bindings")
}

func TestWords128(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantHi uint64
		wantLo uint64
	}{
		{"one", "1", 0, 1},
		{"max u64", "18446744073709551615", 0, ^uint64(0)},
		{"two to the 64", "18446744073709551616", 1, 0},
		{"minus one", "-1", ^uint64(0), ^uint64(0)},
		{"min i128", "-170141183460469231731687303715884105728", 1 << 63, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := new(big.Int).SetString(tt.value, 10)
			require.True(t, ok)
			hi, lo := words128(v)
			assert.Equal(t, tt.wantHi, hi)
			assert.Equal(t, tt.wantLo, lo)
		})
	}
}
