package facetgrid

import (
	"fmt"
	"slices"

	"github.com/go-logr/logr"
)

// Data describes the data a grid is built for.
type Data interface {
	// HasDimension reports whether the data contains a column for the
	// grid dimension name, i.e. "col" or "row".
	HasDimension(name string) bool

	// CategoricalLevels returns the ordered levels of the column name.
	// A non-nil order overrides the natural order of the levels.
	CategoricalLevels(name string, order []string) []string
}

// ----------------------------------------------------------------------------
// Grid

// A Grid is the resolved layout of a grid of subplots.
//
// All exported fields are computed by New and must not be changed
// afterwards. The cells of the grid are materialized by Init.
type Grid struct {
	// Rows and Cols are the dimensions of the (possibly folded) grid.
	Rows, Cols int

	// N is the number of subplots. It is less than Rows*Cols iff wrapping
	// leaves empty trailing cells.
	N int

	// Sharing is the resolved axis sharing policy.
	Sharing Sharing

	// Wrap is the effective wrap width, zero if not wrapped.
	Wrap int

	// WrapDim is the dimension along which subplots are wrapped. It is
	// meaningless if Wrap is zero.
	WrapDim Dim

	subplot SubplotSpec
	facet   FacetSpec
	pair    PairSpec

	levels [2][]Level

	initialized bool
	cells       []Cell

	log logr.Logger
}

// An Option configures New.
type Option func(*Grid)

// WithLogger makes New and Init log to l.
func WithLogger(l logr.Logger) Option {
	return func(g *Grid) { g.log = l }
}

// New validates the given options against each other and against data and
// resolves the shape and sharing of the subplot grid. The error is a
// *ConflictError if the options contradict each other.
func New(subplot SubplotSpec, facet FacetSpec, pair PairSpec, data Data, opts ...Option) (*Grid, error) {
	g := &Grid{
		subplot: subplot,
		facet: FacetSpec{
			ColOrder: slices.Clone(facet.ColOrder),
			RowOrder: slices.Clone(facet.RowOrder),
			Wrap:     facet.Wrap,
		},
		pair: PairSpec{
			X:            slices.Clone(pair.X),
			Y:            slices.Clone(pair.Y),
			Wrap:         pair.Wrap,
			NonCartesian: pair.NonCartesian,
		},
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.checkDimensionUniqueness(data); err != nil {
		g.log.V(1).Info("rejecting subplot grid", "reason", err.Error())
		return nil, err
	}
	if err := g.determineGridDimensions(data); err != nil {
		g.log.V(1).Info("rejecting subplot grid", "reason", err.Error())
		return nil, err
	}
	g.handleWrapping()
	g.determineAxisSharing()

	g.log.V(1).Info("resolved subplot grid",
		"rows", g.Rows, "cols", g.Cols, "subplots", g.N,
		"wrap", g.Wrap, "wrapDim", g.WrapDim.String(),
		"sharex", g.Sharing.X.String(), "sharey", g.Sharing.Y.String())
	return g, nil
}

// checkDimensionUniqueness rejects options which pair and facet on (or
// wrap to) the same grid dimension.
func (g *Grid) checkDimensionUniqueness(data Data) error {
	has := func(d Dim) bool { return data.HasDimension(d.String()) }

	for _, axis := range []Axis{X, Y} {
		multiDim := axis.Dim()
		wrapDim := multiDim.Other()

		switch {
		case g.facet.Wrap != 0 && has(Col) && has(Row):
			return conflict("Cannot wrap facets when specifying both `col` and `row`.")
		case g.pair.Wrap != 0 && g.pair.Cartesian() && len(g.pair.X) > 1 && len(g.pair.Y) > 1:
			return conflict("Cannot wrap subplots when pairing on both `x` and `y`.")
		case !g.pair.Paired(axis):
			continue
		case has(multiDim):
			return conflict(fmt.Sprintf("Cannot facet the %s while pairing on `%s`.",
				multiDim.plural(), axis))
		case has(wrapDim) && g.facet.Wrap != 0:
			return conflict(fmt.Sprintf("Cannot wrap the %s while pairing on `%s`.",
				wrapDim.plural(), axis))
		case has(wrapDim) && g.pair.Wrap != 0:
			return conflict(fmt.Sprintf("Cannot wrap the %s while faceting the %s.",
				multiDim.plural(), wrapDim.plural()))
		}
	}

	for _, wrap := range []int{g.facet.Wrap, g.pair.Wrap} {
		if wrap < 0 {
			return conflict(fmt.Sprintf("Wrap width must be positive, got %d.", wrap))
		}
	}

	if g.matched() && g.pair.Paired(X) && g.pair.Paired(Y) && len(g.pair.X) != len(g.pair.Y) {
		return conflict("Lengths of the `x` and `y` lists must be the same when pairing is not cartesian.")
	}

	return nil
}

func (g *Grid) determineGridDimensions(data Data) error {
	for _, dim := range []Dim{Col, Row} {
		axis := Axis(dim)
		switch {
		case data.HasDimension(dim.String()):
			levels := data.CategoricalLevels(dim.String(), g.facet.order(dim))
			if len(levels) == 0 {
				return fmt.Errorf("%w: no levels to facet the %s on", ErrNoLevels, dim.plural())
			}
			g.levels[dim] = concreteLevels(levels)
		case g.pair.Paired(axis):
			g.levels[dim] = placeholders(len(g.pair.Vars(axis)))
		default:
			g.levels[dim] = placeholders(1)
		}
	}
	g.Cols, g.Rows = len(g.levels[Col]), len(g.levels[Row])

	// Matched pairs flow as a single row of subplots.
	if g.matched() {
		g.Rows = 1
	}

	g.N = g.Cols * g.Rows
	return nil
}

func (g *Grid) handleWrapping() {
	wrap := g.facet.Wrap
	if wrap == 0 {
		wrap = g.pair.Wrap
	}
	g.Wrap = wrap
	if wrap == 0 {
		return
	}

	wrapDim := Col
	if g.Rows > 1 {
		wrapDim = Row
	}
	n := g.size(wrapDim)
	flow := (n + wrap - 1) / wrap

	g.setSize(wrapDim, min(wrap, n))
	g.setSize(wrapDim.Other(), flow)
	g.N = n
	g.WrapDim = wrapDim
}

func (g *Grid) determineAxisSharing() {
	for _, axis := range []Axis{X, Y} {
		val := g.subplot.share(axis)
		if val == ShareDefault {
			switch {
			case !g.pair.Paired(axis):
				// Facets and single subplots.
				val = ShareAll
			case (g.Wrap == 0 || g.Wrap == 1) && g.pair.Cartesian():
				val = shareAlong(axis.Dim())
			default:
				val = ShareNone
			}
		}
		if axis == X {
			g.Sharing.X = val
		} else {
			g.Sharing.Y = val
		}
	}
}

func shareAlong(d Dim) Share {
	if d == Row {
		return ShareRow
	}
	return ShareCol
}

func (g *Grid) size(d Dim) int {
	if d == Row {
		return g.Rows
	}
	return g.Cols
}

func (g *Grid) setSize(d Dim, n int) {
	if d == Row {
		g.Rows = n
	} else {
		g.Cols = n
	}
}

// matched reports whether paired variables are matched positionally.
func (g *Grid) matched() bool { return !g.pair.Cartesian() && g.pair.anyPaired() }

// Wrapped reports whether the grid is folded.
func (g *Grid) Wrapped() bool { return g.Wrap != 0 }

// Levels returns the levels along dimension d before wrapping.
func (g *Grid) Levels(d Dim) []Level { return slices.Clone(g.levels[d]) }

// Pair returns the pairing options the grid was built from.
func (g *Grid) Pair() PairSpec { return g.pair }

// Facet returns the faceting options the grid was built from.
func (g *Grid) Facet() FacetSpec { return g.facet }

func (g *Grid) levelAt(d Dim, i int) Level {
	if i < 0 || i >= len(g.levels[d]) {
		return NoLevel
	}
	return g.levels[d][i]
}

func (g *Grid) String() string {
	s := fmt.Sprintf("%dx%d grid, %d subplots, sharex=%s sharey=%s",
		g.Rows, g.Cols, g.N, g.Sharing.X, g.Sharing.Y)
	if g.Wrapped() {
		s += fmt.Sprintf(", wrapped %s at %d", g.WrapDim, g.Wrap)
	}
	return s
}
