// Package manifest loads nz constant declarations from a CUE file.
//
// The manifest is an alternative entry point for projects that prefer a
// central declaration file over source directives:
//
//	pkg: "limits"
//	constants: [
//		{kind: "u16", name: "MaxRetries", expr: "(1 << 4) - 9"},
//		{kind: "u128", name: "KeySpace", expr: "1 << 100", doc: "size of the key space"},
//	]
//
// Expressions from a manifest are bound against an empty package scope:
// they may use literals, arithmetic and universe constants only, since
// there is no surrounding Go package to resolve names in.
package manifest

import (
	"fmt"
	"go/token"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuetoken "cuelang.org/go/cue/token"

	"github.com/nzgen/nz/internal/registry"
	"github.com/nzgen/nz/internal/scanner"
)

// schema constrains a manifest before any field is read. The kind
// disjunction is assembled from the registry so a new kind is picked up
// automatically.
func schema() string {
	tags := ""
	for i, info := range registry.All() {
		if i > 0 {
			tags += " | "
		}
		tags += fmt.Sprintf("%q", info.Tag)
	}
	return fmt.Sprintf(`{
	pkg: string & !=""
	constants: [...{
		kind: %s
		name: string & !=""
		expr: string & !=""
		doc?: string
	}]
}`, tags)
}

// Manifest is a parsed and schema-validated declaration file.
type Manifest struct {
	// Package is the Go package name the generated file will declare.
	Package string

	Directives []scanner.Directive
}

// LoadError reports a manifest that failed to parse or validate.
type LoadError struct {
	Path    string
	Message string
	Pos     cuetoken.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("reading manifest: %v", err)}
	}

	ctx := cuecontext.New()

	val := ctx.CompileBytes(data, cue.Filename(path))
	if err := val.Err(); err != nil {
		return nil, cueError(path, err)
	}

	constraint := ctx.CompileString(schema())
	val = val.Unify(constraint)
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(path, err)
	}

	return parse(path, val)
}

func parse(path string, val cue.Value) (*Manifest, error) {
	m := &Manifest{}

	pkgName, err := val.LookupPath(cue.ParsePath("pkg")).String()
	if err != nil {
		return nil, cueError(path, err)
	}
	m.Package = pkgName

	iter, err := val.LookupPath(cue.ParsePath("constants")).List()
	if err != nil {
		return nil, cueError(path, err)
	}

	for iter.Next() {
		d, err := parseConstant(path, iter.Value())
		if err != nil {
			return nil, err
		}
		m.Directives = append(m.Directives, d)
	}

	return m, nil
}

func parseConstant(path string, val cue.Value) (scanner.Directive, error) {
	var d scanner.Directive

	tag, err := val.LookupPath(cue.ParsePath("kind")).String()
	if err != nil {
		return d, cueError(path, err)
	}
	kind, ok := registry.FromTag(tag)
	if !ok {
		// The schema disjunction makes this unreachable; keep the error
		// anyway so a schema/registry drift fails loudly.
		return d, &LoadError{Path: path, Message: fmt.Sprintf("unknown kind %q", tag), Pos: val.Pos()}
	}
	d.Kind = kind

	if d.Name, err = val.LookupPath(cue.ParsePath("name")).String(); err != nil {
		return d, cueError(path, err)
	}
	if !token.IsIdentifier(d.Name) {
		return d, &LoadError{Path: path, Message: fmt.Sprintf("%q is not a valid Go identifier", d.Name), Pos: val.Pos()}
	}

	if d.Expr, err = val.LookupPath(cue.ParsePath("expr")).String(); err != nil {
		return d, cueError(path, err)
	}

	docVal := val.LookupPath(cue.ParsePath("doc"))
	if docVal.Exists() {
		if d.Doc, err = docVal.String(); err != nil {
			return d, cueError(path, err)
		}
	}

	d.Pos = position(path, val.Pos())
	return d, nil
}

// position converts a CUE position to a go/token one so downstream
// diagnostics have a single position type.
func position(path string, pos cuetoken.Pos) token.Position {
	if !pos.IsValid() {
		return token.Position{Filename: path}
	}
	return token.Position{Filename: pos.Filename(), Line: pos.Line(), Column: pos.Column()}
}

// cueError extracts position information from CUE's multi-error values.
func cueError(path string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Path: path, Message: err.Error()}
	}

	first := errs[0]
	le := &LoadError{Path: path, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
