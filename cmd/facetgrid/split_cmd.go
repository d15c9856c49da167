package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/data"
)

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [flags] <layout.toml>",
		Short: "Show how the data is split across the subplots",
		Long:  "Resolve the subplot grid described by a layout file and print the number of data rows drawn as each group into each subplot.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSplit,
	}
	cmd.Flags().StringSlice("by", nil, "plot variables to group by (e.g. hue)")
	return cmd
}

// nullFactory hands out surfaces without drawing anything.
type nullFactory struct{}

func (nullFactory) Allocate(rows, cols int, _ facetgrid.Sharing) ([][]facetgrid.Surface, error) {
	s := make([][]facetgrid.Surface, rows)
	for r := range s {
		s[r] = make([]facetgrid.Surface, cols)
	}
	return s, nil
}

func (nullFactory) Release(facetgrid.Surface) error { return nil }

func runSplit(cmd *cobra.Command, args []string) error {
	by, err := cmd.Flags().GetStringSlice("by")
	if err != nil {
		return err
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}

	l, err := LoadLayout(args[0])
	if err != nil {
		return err
	}
	g, pd, err := l.Grid(logger(cmd))
	if err != nil {
		return err
	}
	if err := g.Init(nullFactory{}); err != nil {
		return err
	}

	levels := make(map[string][]string, len(by))
	for _, v := range by {
		if col, ok := pd.Column(v); ok {
			levels[v] = data.CategoricalOrder(col, nil)
		}
	}

	printSplits(cmd.OutOrStdout(), g, g.Splits(pd, by, levels), noColor)
	return nil
}

func printSplits(w io.Writer, g *facetgrid.Grid, splits []facetgrid.Split, noColor bool) {
	header := color.New(color.Bold)
	if noColor {
		header.DisableColor()
	}
	header.Fprintln(w, g.String())
	for _, s := range splits {
		fmt.Fprintf(w, "%3d  %-30s %d rows\n", s.Cell.Index, formatKeys(s.Keys), len(s.Rows))
	}
}

func formatKeys(keys map[string]string) string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = k + "=" + keys[k]
	}
	return strings.Join(parts, " ")
}
