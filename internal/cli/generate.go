package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nzgen/nz/internal/config"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
}

// GenerateReport is the JSON payload of a successful generate run.
type GenerateReport struct {
	Files     []GeneratedFile `json:"files"`
	Constants int             `json:"constants"`
}

// GeneratedFile describes one written file.
type GeneratedFile struct {
	Path      string `json:"path"`
	Package   string `json:"package"`
	Constants int    `json:"constants"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <package-dir>",
		Short: "Evaluate directives and write the generated file",
		Long: `Evaluate every //nz: directive in the package (and the CUE manifest, if
the config names one), reject zero and non-constant expressions, and
write the validated wrapper declarations to the generated file.

The build either yields the declarations or this command fails; there is
no partial output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	return cmd
}

func runGenerate(opts *GenerateOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := loadConfig(opts.RootOptions, dir)
	if err != nil {
		return err
	}

	results, err := RunPipeline(dir, cfg)
	if err != nil {
		return err
	}

	var diags []Diagnostic
	for _, result := range results {
		formatter.VerboseLog("bound %d of %d directive(s) for package %s",
			len(result.Bindings), result.DirectiveCount, result.PkgName)
		diags = append(diags, diagnosticsFor(result.Errs)...)
	}
	if len(diags) > 0 {
		_ = formatter.Fail(diags, nil)
		return NewExitError(ExitFailure, fmt.Sprintf("generation failed with %d error(s)", len(diags)))
	}

	report := &GenerateReport{}
	for _, result := range results {
		data, err := renderResult(result, cfg)
		if err != nil {
			return NewExitError(ExitCommandError, err.Error())
		}
		if err := writeGenerated(result.OutputPath, data); err != nil {
			return NewExitError(ExitCommandError, err.Error())
		}

		report.Files = append(report.Files, GeneratedFile{
			Path:      result.OutputPath,
			Package:   result.PkgName,
			Constants: len(result.Bindings),
		})
		report.Constants += len(result.Bindings)
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %d constant(s)\n\n", report.Constants)
	for _, file := range report.Files {
		fmt.Fprintf(formatter.Writer, "  %s: %d constant(s) in package %s\n",
			file.Path, file.Constants, file.Package)
	}
	return nil
}

func writeGenerated(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// loadConfig resolves the effective config for a target directory. A path
// given via --config must exist; the per-directory default may be absent.
func loadConfig(opts *RootOptions, dir string) (*config.Config, error) {
	path := opts.Config
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, config.DefaultPath)
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, NewExitError(ExitCommandError, err.Error())
	}
	return cfg, nil
}
