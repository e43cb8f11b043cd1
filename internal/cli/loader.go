package cli

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/nzgen/nz/internal/binder"
	"github.com/nzgen/nz/internal/codegen"
	"github.com/nzgen/nz/internal/config"
	"github.com/nzgen/nz/internal/guard"
	"github.com/nzgen/nz/internal/manifest"
	"github.com/nzgen/nz/internal/scanner"
)

// PipelineResult is the outcome of running bind -> guard for one target.
// Bindings holds every directive that passed; Errs holds every diagnostic.
type PipelineResult struct {
	// PkgName is the package the generated file will declare.
	PkgName string

	// OutputPath is where generate would write the file.
	OutputPath string

	// DirectiveCount is the number of directives discovered, including
	// failed ones.
	DirectiveCount int

	Bindings []*binder.Binding
	Errs     []error
}

// RunPipeline loads the target directory and runs every discovered
// directive through the bind -> guard pipeline, collecting all
// diagnostics. When the directory's config names a manifest, its
// directives are processed too, into a separate result.
func RunPipeline(dir string, cfg *config.Config) ([]*PipelineResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("target directory not found: %s", dir))
	}
	if !info.IsDir() {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("not a directory: %s", dir))
	}

	var results []*PipelineResult

	sourceResult, err := runSource(dir, cfg)
	if err != nil {
		// A manifest-only directory has no Go package to load; that is
		// fine as long as the manifest yields directives.
		if cfg.Manifest == "" {
			return nil, err
		}
	}
	if sourceResult != nil {
		results = append(results, sourceResult)
	}

	if cfg.Manifest != "" {
		manifestResult, err := runManifest(filepath.Join(dir, cfg.Manifest), dir, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, manifestResult)
	}

	if len(results) == 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("no nz directives found in %s", dir))
	}

	return results, nil
}

// runSource processes //nz: directives in the package at dir. Returns
// (nil, nil) when the package has no directives and no directive errors.
func runSource(dir string, cfg *config.Config) (*PipelineResult, error) {
	target, loadErrs := scanner.Load(dir)
	if target == nil {
		return nil, NewExitError(ExitCommandError, loadErrs[0].Error())
	}

	if len(target.Directives) == 0 && len(loadErrs) == 0 {
		return nil, nil
	}

	result := &PipelineResult{
		PkgName:        target.PkgName,
		OutputPath:     filepath.Join(dir, cfg.Output),
		DirectiveCount: len(target.Directives),
		Errs:           loadErrs,
	}

	b := binder.New(target.Fset, target.Types)
	bindings, bindErrs := b.BindAll(target.Directives)
	result.Errs = append(result.Errs, bindErrs...)

	passed, zeroErrs := guard.CheckAll(bindings)
	result.Errs = append(result.Errs, zeroErrs...)
	result.Bindings = passed

	return result, nil
}

// runManifest processes a CUE manifest. Manifest expressions bind against
// an empty scope; the generated file goes next to the manifest, named by
// the same output setting as source generation.
func runManifest(path, dir string, cfg *config.Config) (*PipelineResult, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, NewExitError(ExitCommandError, err.Error())
	}

	result := &PipelineResult{
		PkgName:        m.Package,
		OutputPath:     filepath.Join(dir, m.Package, cfg.Output),
		DirectiveCount: len(m.Directives),
	}

	b := binder.New(token.NewFileSet(), binder.EmptyScope("manifest/"+m.Package))
	bindings, bindErrs := b.BindAll(m.Directives)
	result.Errs = append(result.Errs, bindErrs...)

	passed, zeroErrs := guard.CheckAll(bindings)
	result.Errs = append(result.Errs, zeroErrs...)
	result.Bindings = passed

	return result, nil
}

// renderResult renders the generated file for one pipeline result.
func renderResult(result *PipelineResult, cfg *config.Config) ([]byte, error) {
	file := &codegen.File{
		PkgName:  result.PkgName,
		Header:   cfg.Header,
		Bindings: result.Bindings,
	}
	return file.Render()
}
