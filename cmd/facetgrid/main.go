// Command facetgrid resolves the subplot grid described by a layout file
// and prints or renders it.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "facetgrid",
		Short:        "Lay out faceted and paired subplot grids",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().IntP("verbosity", "v", 0, "log verbosity")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.AddCommand(newLayoutCmd(), newSplitCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// logger returns a logger writing to stderr at the verbosity requested on
// the command line.
func logger(cmd *cobra.Command) logr.Logger {
	v, err := cmd.Flags().GetInt("verbosity")
	if err != nil {
		v = 0
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), prefix+":", args)
			return
		}
		fmt.Fprintln(cmd.ErrOrStderr(), args)
	}, funcr.Options{Verbosity: v})
}
