package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/panel"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgimg"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [flags] <layout.toml>",
		Short: "Resolve a subplot grid and print its cells",
		Long:  "Resolve the subplot grid described by a layout file, print one line per cell and optionally render the grid skeleton to PNG.",
		Args:  cobra.ExactArgs(1),
		RunE:  runLayout,
	}
	cmd.Flags().String("png", "", "render the grid to this PNG file")
	return cmd
}

func runLayout(cmd *cobra.Command, args []string) error {
	pngPath, err := cmd.Flags().GetString("png")
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
	g, _, err := l.Grid(logger(cmd))
	if err != nil {
		return err
	}

	width, height := vg.Points(l.Figure.Width), vg.Points(l.Figure.Height)
	var img *vgimg.Canvas
	factory := &panel.Factory{Title: l.Title}
	if pngPath != "" {
		img = vgimg.New(width, height)
		factory.Canvas = draw.New(img)
		factory.Style = panel.DefaultStyle(vg.Points(l.Figure.FontSize))
	} else {
		factory.Canvas = draw.Canvas{
			Canvas:    &recorder.Canvas{},
			Rectangle: vg.Rectangle{Max: vg.Point{X: width, Y: height}},
		}
	}
	if err := g.Init(factory); err != nil {
		return err
	}

	printGrid(cmd.OutOrStdout(), g, noColor)

	if img == nil {
		return nil
	}
	if err := factory.Render(g); err != nil {
		return err
	}
	return writePNG(pngPath, img)
}

func printGrid(w io.Writer, g *facetgrid.Grid, noColor bool) {
	header := color.New(color.Bold)
	edge := color.New(color.FgCyan)
	if noColor {
		header.DisableColor()
		edge.DisableColor()
	}

	header.Fprintln(w, g.String())
	for _, c := range g.Cells() {
		fmt.Fprintf(w, "%3d  (%d,%d)  ", c.Index, c.Pos.Row, c.Pos.Col)
		edge.Fprint(w, edgeString(c))
		fmt.Fprintf(w, "  col=%-8s row=%-8s x=%s (%s)  y=%s (%s)\n",
			c.Col, c.Row,
			c.X, g.Variable(c, facetgrid.X),
			c.Y, g.Variable(c, facetgrid.Y))
	}
}

func edgeString(c *facetgrid.Cell) string {
	b := []byte("....")
	for i, e := range []bool{c.Left, c.Right, c.Top, c.Bottom} {
		if e {
			b[i] = "LRTB"[i]
		}
	}
	return string(b)
}

func writePNG(path string, img *vgimg.Canvas) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
