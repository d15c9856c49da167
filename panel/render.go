package panel

import (
	"fmt"
	"image/color"

	"github.com/vdobler/facetgrid"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Render draws the skeleton of the initialized grid g whose surfaces were
// allocated by f: the title, the panel backgrounds, the facet strips and
// the variable keys along the bottom and left edges.
func (f *Factory) Render(g *facetgrid.Grid) error {
	style := f.Style
	c := f.Canvas

	if style.Background != nil {
		c.SetColor(style.Background)
		c.Fill(c.Rectangle.Path())
	}
	if f.Title != "" {
		c.FillText(style.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
	}

	for _, cell := range g.Cells() {
		p, ok := cell.Surface.(*Panel)
		if !ok {
			return fmt.Errorf("panel: cell %d has surface %T", cell.Index, cell.Surface)
		}
		pc := p.Canvas

		pc.SetColor(style.Panel.Background)
		pc.Fill(pc.Rectangle.Path())

		// Wrapped panels are not aligned with their level, so each gets a strip.
		if col, ok := cell.Col.Value(); ok && (cell.Top || g.Wrapped()) {
			cb := pc
			cb.Min.Y = pc.Max.Y
			cb.Max.Y = cb.Min.Y + style.HStrip.Height
			strip(cb, style.HStrip.Background, style.HStrip.TextStyle, col)
		}
		if row, ok := cell.Row.Value(); ok && (cell.Right || g.Wrapped()) {
			cb := pc
			cb.Min.X = pc.Max.X
			cb.Max.X = cb.Min.X + style.VStrip.Width
			strip(cb, style.VStrip.Background, style.VStrip.TextStyle, row)
		}

		if cell.Bottom {
			pt := vg.Point{X: pc.Center().X, Y: pc.Min.Y}
			c.FillText(style.XAxis.Label, pt, g.Variable(cell, facetgrid.X))
		}
		if cell.Left {
			pt := vg.Point{X: pc.Min.X - style.YAxis.Width, Y: pc.Center().Y}
			c.FillText(style.YAxis.Label, pt, g.Variable(cell, facetgrid.Y))
		}
	}
	return nil
}

func strip(c draw.Canvas, bg color.Color, sty draw.TextStyle, text string) {
	if bg != nil {
		c.SetColor(bg)
		c.Fill(c.Rectangle.Path())
	}
	c.FillText(sty, c.Center(), text)
}
