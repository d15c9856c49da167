package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-logr/logr"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/data"
)

// Layout is the content of a layout file.
type Layout struct {
	Title string `toml:"title"`

	// Data is the CSV file holding the data, relative to the layout file.
	Data string `toml:"data"`

	// Variables assigns CSV columns to plot variables, e.g. col = "day".
	Variables map[string]string `toml:"variables"`

	Facet struct {
		ColOrder []string `toml:"col_order"`
		RowOrder []string `toml:"row_order"`
		Wrap     int      `toml:"wrap"`
	} `toml:"facet"`

	Pair struct {
		X         []string `toml:"x"`
		Y         []string `toml:"y"`
		Wrap      int      `toml:"wrap"`
		Cartesian *bool    `toml:"cartesian"`
	} `toml:"pair"`

	Subplot struct {
		ShareX facetgrid.Share `toml:"sharex"`
		ShareY facetgrid.Share `toml:"sharey"`
	} `toml:"subplot"`

	Figure struct {
		Width    float64 `toml:"width"`
		Height   float64 `toml:"height"`
		FontSize float64 `toml:"font_size"`
	} `toml:"figure"`

	dir string
}

// LoadLayout reads the layout file path. Unknown keys are an error.
func LoadLayout(path string) (*Layout, error) {
	var l Layout
	meta, err := toml.DecodeFile(path, &l)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	l.dir = filepath.Dir(path)
	l.setDefaults()
	return &l, nil
}

func (l *Layout) setDefaults() {
	if l.Figure.Width == 0 {
		l.Figure.Width = 600
	}
	if l.Figure.Height == 0 {
		l.Figure.Height = 400
	}
	if l.Figure.FontSize == 0 {
		l.Figure.FontSize = 12
	}
}

// Specs converts l into the options of a facetgrid.Grid.
func (l *Layout) Specs() (facetgrid.SubplotSpec, facetgrid.FacetSpec, facetgrid.PairSpec) {
	subplot := facetgrid.SubplotSpec{ShareX: l.Subplot.ShareX, ShareY: l.Subplot.ShareY}
	facet := facetgrid.FacetSpec{
		ColOrder: l.Facet.ColOrder,
		RowOrder: l.Facet.RowOrder,
		Wrap:     l.Facet.Wrap,
	}
	pair := facetgrid.PairSpec{
		X:            l.Pair.X,
		Y:            l.Pair.Y,
		Wrap:         l.Pair.Wrap,
		NonCartesian: l.Pair.Cartesian != nil && !*l.Pair.Cartesian,
	}
	return subplot, facet, pair
}

// PlotData loads the data file of l and assigns its variables.
func (l *Layout) PlotData() (*data.PlotData, error) {
	source := data.NewFrame()
	if l.Data != "" {
		path := l.Data
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if source, err = data.ReadCSV(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return data.NewPlotData(source, l.Variables)
}

// Grid loads the data of l and resolves its grid.
func (l *Layout) Grid(log logr.Logger) (*facetgrid.Grid, *data.PlotData, error) {
	pd, err := l.PlotData()
	if err != nil {
		return nil, nil, err
	}
	subplot, facet, pair := l.Specs()
	g, err := facetgrid.New(subplot, facet, pair, pd, facetgrid.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return g, pd, nil
}
