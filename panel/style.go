package panel

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls the layout and appearance of the panels of a grid.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
		PadX       vg.Length
		PadY       vg.Length
	}

	// HStrip is drawn above panels and shows the column level.
	HStrip struct {
		Background color.Color
		Height     vg.Length
		draw.TextStyle
	}

	// VStrip is drawn right of panels and shows the row level.
	VStrip struct {
		Background color.Color
		Width      vg.Length
		draw.TextStyle
	}

	// XAxis and YAxis label the variable plotted in the bottom and left
	// panels.
	XAxis struct {
		Label  draw.TextStyle
		Height vg.Length
	}
	YAxis struct {
		Label draw.TextStyle
		Width vg.Length
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for axis labels and strip labels, the
// title is a bit bigger.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.TitleHeight = scale(baseFontSize, 3)
	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Panel.Background = color.Gray16{0xeeee}
	s.Panel.PadX = scale(baseFontSize, 0.5)
	s.Panel.PadY = s.Panel.PadX

	s.HStrip.Background = color.Gray16{0xcccc}
	s.HStrip.Color = color.Black
	s.HStrip.Font = baseFont
	s.HStrip.Height = scale(baseFontSize, 2)
	s.HStrip.XAlign = draw.XCenter
	s.HStrip.YAlign = -0.3 // draw.YCenter

	s.VStrip.Background = color.Gray16{0xcccc}
	s.VStrip.Color = color.Black
	s.VStrip.Font = baseFont
	s.VStrip.Width = scale(baseFontSize, 2.5)
	s.VStrip.XAlign = draw.XCenter
	s.VStrip.YAlign = -0.3 // draw.YCenter
	s.VStrip.Rotation = -math.Pi / 2

	s.XAxis.Label.Color = color.Black
	s.XAxis.Label.Font = baseFont
	s.XAxis.Label.XAlign = draw.XCenter
	s.XAxis.Label.YAlign = draw.YTop
	s.XAxis.Height = scale(baseFontSize, 2)

	s.YAxis.Label.Color = color.Black
	s.YAxis.Label.Font = baseFont
	s.YAxis.Label.Rotation = math.Pi / 2
	s.YAxis.Label.XAlign = draw.XCenter
	s.YAxis.Label.YAlign = draw.YTop
	s.YAxis.Width = scale(baseFontSize, 2)

	return s
}
