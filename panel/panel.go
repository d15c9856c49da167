// Package panel provides drawing surfaces for the cells of a facetgrid.Grid
// based on gonum.org/v1/plot.
//
// A Factory tiles a canvas into equally sized panels, leaving room for the
// title, the facet strips and the axis labels described by its Style.
// Panels sharing an axis carry the same group id for that axis.
package panel

import (
	"errors"
	"fmt"

	"github.com/vdobler/facetgrid"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the drawing surface of one subplot.
type Panel struct {
	Canvas   draw.Canvas
	Row, Col int

	// XGroup and YGroup identify the panels sharing the x and the y axis:
	// panels with equal group share the axis.
	XGroup, YGroup int

	// Removed is set once the panel has been released.
	Removed bool
}

func (p *Panel) String() string {
	return fmt.Sprintf("panel(%d,%d) x%d y%d %v", p.Row, p.Col, p.XGroup, p.YGroup, p.Canvas.Rectangle)
}

// ----------------------------------------------------------------------------
// Factory

// ErrTooSmall is returned if the canvas cannot hold the requested panels.
var ErrTooSmall = errors.New("panel: canvas too small")

// A Factory allocates panels on a canvas. It implements
// facetgrid.SurfaceFactory.
type Factory struct {
	Canvas draw.Canvas
	Style  Style

	// Title is drawn above the panels if not empty.
	Title string

	// Panels are the panels of the last allocation, indexed [row][col].
	Panels [][]*Panel
}

var _ facetgrid.SurfaceFactory = (*Factory)(nil)

// Allocate tiles f's canvas into rows x cols panels.
func (f *Factory) Allocate(rows, cols int, sharing facetgrid.Sharing) ([][]facetgrid.Surface, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("panel: cannot allocate %dx%d panels", rows, cols)
	}

	area := f.plotArea()
	padx, pady := f.Style.Panel.PadX, f.Style.Panel.PadY
	numCols, numRows := vg.Length(cols), vg.Length(rows)
	width := (area.Max.X - area.Min.X - padx*(numCols-1)) / numCols
	height := (area.Max.Y - area.Min.Y - pady*(numRows-1)) / numRows
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d panels of %.1fx%.1f", ErrTooSmall, rows, cols, width, height)
	}

	f.Panels = make([][]*Panel, rows)
	surfaces := make([][]facetgrid.Surface, rows)
	// Point (x0,y0) is the top-left corner of each panel.
	y0 := area.Max.Y
	for r := 0; r < rows; r++ {
		f.Panels[r] = make([]*Panel, cols)
		surfaces[r] = make([]facetgrid.Surface, cols)
		x0 := area.Min.X
		for c := 0; c < cols; c++ {
			p := &Panel{
				Row:    r,
				Col:    c,
				XGroup: group(sharing.X, r, c, cols),
				YGroup: group(sharing.Y, r, c, cols),
			}
			p.Canvas.Canvas = f.Canvas.Canvas
			p.Canvas.Min = vg.Point{X: x0, Y: y0 - height}
			p.Canvas.Max = vg.Point{X: x0 + width, Y: y0}
			f.Panels[r][c] = p
			surfaces[r][c] = p
			x0 += width + padx
		}
		y0 -= height + pady
	}
	return surfaces, nil
}

// Release marks the panel s as removed.
func (f *Factory) Release(s facetgrid.Surface) error {
	p, ok := s.(*Panel)
	if !ok {
		return fmt.Errorf("panel: cannot release %T", s)
	}
	p.Removed = true
	return nil
}

// plotArea is the part of the canvas covered by panels.
func (f *Factory) plotArea() vg.Rectangle {
	r := f.Canvas.Rectangle
	if f.Title != "" {
		r.Max.Y -= f.Style.TitleHeight
	}
	r.Min.X += f.Style.YAxis.Width
	r.Min.Y += f.Style.XAxis.Height
	r.Max.X -= f.Style.VStrip.Width
	r.Max.Y -= f.Style.HStrip.Height
	return r
}

// group returns the share group of the panel in row r and column c.
func group(s facetgrid.Share, r, c, cols int) int {
	switch s {
	case facetgrid.ShareRow:
		return r
	case facetgrid.ShareCol:
		return c
	case facetgrid.ShareNone:
		return r*cols + c
	}
	return 0
}
