package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nzgen/nz/internal/registry"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
}

// CheckedConstant is one validated binding in check output.
type CheckedConstant struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Value     string `json:"value"`
	BoundName string `json:"bound_name"`
	ID        string `json:"id"`
	Position  string `json:"position,omitempty"`
}

// CheckReport is the JSON payload of a check run.
type CheckReport struct {
	Constants []CheckedConstant `json:"constants"`
}

// NewCheckCommand creates the check command: the full pipeline without
// writing anything, for CI and pre-commit hooks.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "check <package-dir>",
		Short:         "Validate directives without writing the generated file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *CheckOptions, dir string, cmd *cobra.Command) error {
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

	report := &CheckReport{}
	var diags []Diagnostic
	for _, result := range results {
		diags = append(diags, diagnosticsFor(result.Errs)...)
		for _, b := range result.Bindings {
			d := b.Directive
			report.Constants = append(report.Constants, CheckedConstant{
				Name:      d.Name,
				Kind:      registry.Lookup(d.Kind).Tag,
				Value:     b.Value.String(),
				BoundName: b.BoundName,
				ID:        b.ID.String(),
				Position:  d.Pos.String(),
			})
		}
	}

	if len(diags) > 0 {
		_ = formatter.Fail(diags, report)
		return NewExitError(ExitFailure, fmt.Sprintf("check failed with %d error(s)", len(diags)))
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "✓ %d constant(s) valid\n\n", len(report.Constants))
	for _, c := range report.Constants {
		fmt.Fprintf(formatter.Writer, "  %s %s = %s\n", c.Kind, c.Name, c.Value)
	}
	return nil
}
