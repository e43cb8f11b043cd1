// Package codegen renders validated bindings into a generated Go file.
//
// The emitted artifact is the whole point of the pipeline: for native
// kinds it contains only plain typed constants plus a constant-division
// assertion the compiler folds away, so the non-zero guarantee costs
// nothing at run time. The 128-bit kinds have no Go primitive and are
// emitted as vars built from raw words through a total conversion.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"math/big"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/registry"
)

// wrapperImport is the import path of the wrapper library.
const wrapperImport = "github.com/nzgen/nz"

var fileTemplate = template.Must(template.New("nzfile").Parse(`// Code generated by nzgen. DO NOT EDIT.
{{- if .Header}}
// {{.Header}}
{{- end}}

package {{.PkgName}}

import "{{.WrapperImport}}"
{{range .Decls}}
// {{.Comment}}
{{- if .Const}}
const {{.BoundName}} {{.GoType}} = {{.Value}}
const {{.Name}} nz.{{.Wrapper}} = nz.{{.Wrapper}}({{.BoundName}})
const _ = 1 / {{.DivType}}({{.BoundName}}) // non-zero proof, folds away
{{- else}}
var {{.Name}} = nz.{{.Wrapper}}FromRaw({{.Hi}}, {{.Lo}})
{{- end}}
{{end}}`))

// File describes one generated file.
type File struct {
	// PkgName is the package clause of the generated file.
	PkgName string

	// Header is an optional extra comment line under the generated-code
	// marker.
	Header string

	Bindings []*binder.Binding
}

type fileData struct {
	PkgName       string
	Header        string
	WrapperImport string
	Decls         []decl
}

type decl struct {
	Comment   string
	Const     bool
	Name      string
	BoundName string
	GoType    string
	Wrapper   string
	DivType   string
	Value     string
	Hi, Lo    string
}

// Render produces the generated file for a set of validated bindings.
// Output is deterministic: declarations are sorted by name and every
// value was folded to its exact literal during binding.
func (f *File) Render() ([]byte, error) {
	if len(f.Bindings) == 0 {
		return nil, fmt.Errorf("codegen: no bindings to render")
	}

	sorted := make([]*binder.Binding, len(f.Bindings))
	copy(sorted, f.Bindings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Directive.Name < sorted[j].Directive.Name
	})

	data := fileData{
		PkgName:       f.PkgName,
		Header:        f.Header,
		WrapperImport: wrapperImport,
	}
	for _, b := range sorted {
		data.Decls = append(data.Decls, newDecl(b))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("codegen: rendering: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting generated source: %w", err)
	}
	return src, nil
}

func newDecl(b *binder.Binding) decl {
	d := b.Directive
	info := registry.Lookup(d.Kind)

	out := decl{
		Comment:   declComment(b),
		Const:     info.ConstEmit,
		Name:      d.Name,
		BoundName: b.BoundName,
		GoType:    info.GoType,
		Wrapper:   info.Wrapper,
	}

	if info.ConstEmit {
		out.Value = b.Value.String()
		if info.Signed {
			out.DivType = "int64"
		} else {
			out.DivType = "uint64"
		}
		return out
	}

	hi, lo := words128(b.Value)
	out.Hi = fmt.Sprintf("%#x", hi)
	out.Lo = fmt.Sprintf("%#x", lo)
	return out
}

// declComment records what was evaluated and where it came from, since
// the emitted literal no longer shows the caller's expression.
func declComment(b *binder.Binding) string {
	d := b.Directive
	if d.Doc != "" {
		return fmt.Sprintf("%s: %s", d.Name, d.Doc)
	}
	return fmt.Sprintf("%s = %s (%s)", d.Name, d.Expr, origin(b))
}

func origin(b *binder.Binding) string {
	pos := b.Directive.Pos
	if pos.Filename == "" {
		return "manifest"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

// words128 splits a value into the two raw words of its 128-bit two's
// complement representation. The binder has already proven the value fits.
func words128(v *big.Int) (hi, lo uint64) {
	m := new(big.Int).Set(v)
	if m.Sign() < 0 {
		m.Add(m, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	lo = new(big.Int).And(m, mask64).Uint64()
	hi = new(big.Int).Rsh(m, 64).Uint64()
	return hi, lo
}
