package data

import (
	"fmt"
	"sort"
)

// PlotData is the data of a plot: a frame whose columns are named after the
// plot variables ("x", "y", "col", "row", "hue", ...) they are assigned to.
// PlotData implements facetgrid.Data and facetgrid.Table.
type PlotData struct {
	*Frame

	// Names maps each plot variable to the source column assigned to it.
	Names map[string]string
}

// NewPlotData assigns the source columns to plot variables. The keys of
// variables are plot variables, the values column names in source.
func NewPlotData(source *Frame, variables map[string]string) (*PlotData, error) {
	vars := make([]string, 0, len(variables))
	for v := range variables {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	pd := &PlotData{Frame: NewFrame(), Names: make(map[string]string, len(variables))}
	for _, v := range vars {
		name := variables[v]
		col, ok := source.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q assigned to %s", ErrNoColumn, name, v)
		}
		if err := pd.AddColumn(v, col); err != nil {
			return nil, err
		}
		pd.Names[v] = name
	}
	return pd, nil
}

// HasDimension reports whether the variable name ("col" or "row") is
// assigned.
func (p *PlotData) HasDimension(name string) bool { return p.Has(name) }

// CategoricalLevels returns the ordered levels of variable name.
func (p *PlotData) CategoricalLevels(name string, order []string) []string {
	col, _ := p.Column(name)
	return CategoricalOrder(col, order)
}
