package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nzgen/nz/internal/registry"
)

// NewKindsCommand creates the kinds command, which prints the registry
// table: one row per supported numeric kind.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the supported numeric kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(rootOpts, cmd)
		},
	}

	return cmd
}

func runKinds(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	if formatter.Format == "json" {
		return formatter.Success(registry.All())
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tBITS\tSIGNED\tWRAPPER\tEMIT")
	for _, info := range registry.All() {
		emit := "const"
		if !info.ConstEmit {
			emit = "var"
		}
		fmt.Fprintf(w, "%s\t%d\t%t\tnz.%s\t%s\n",
			info.Tag, info.BitWidth, info.Signed, info.Wrapper, emit)
	}
	return w.Flush()
}
