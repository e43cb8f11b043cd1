// Command nzgen generates build-time validated non-zero constants.
//
// Typical use, from a go:generate directive:
//
//	//go:generate go run github.com/nzgen/nz/cmd/nzgen generate .
package main

import (
	"fmt"
	"os"

	"github.com/nzgen/nz/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
