package facetgrid

import "fmt"

// ----------------------------------------------------------------------------
// Dimensions and axes

// A Dim is one of the two dimensions of the subplot grid.
type Dim int

const (
	Col Dim = iota
	Row
)

func (d Dim) String() string {
	switch d {
	case Col:
		return "col"
	case Row:
		return "row"
	}
	return fmt.Sprintf("Dim(%d)", int(d))
}

// plural is the word used in diagnostics.
func (d Dim) plural() string {
	if d == Row {
		return "rows"
	}
	return "columns"
}

// Other returns the orthogonal dimension.
func (d Dim) Other() Dim { return 1 - d }

// An Axis is one of the two coordinate axes of a subplot.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Dim returns the grid dimension along which variables paired on a are
// laid out: X pairs across columns, Y pairs across rows.
func (a Axis) Dim() Dim { return Dim(a) }

// ----------------------------------------------------------------------------
// Sharing

// Share determines which subplots use a common axis scale.
type Share int

const (
	ShareDefault Share = iota // unset, resolved by New
	ShareAll                  // all subplots share
	ShareNone                 // no subplots share
	ShareRow                  // subplots in the same row share
	ShareCol                  // subplots in the same column share
)

var shareNames = [...]string{"", "true", "false", "row", "col"}

func (s Share) String() string {
	if s < 0 || int(s) >= len(shareNames) {
		return fmt.Sprintf("Share(%d)", int(s))
	}
	if s == ShareDefault {
		return "default"
	}
	return shareNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Share) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(shareNames) {
		return nil, fmt.Errorf("facetgrid: invalid share value %d", int(s))
	}
	return []byte(shareNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "true",
// "false", "row", "col" and the empty string for ShareDefault.
func (s *Share) UnmarshalText(text []byte) error {
	for i, name := range shareNames {
		if string(text) == name {
			*s = Share(i)
			return nil
		}
	}
	return fmt.Errorf("facetgrid: unknown share value %q", text)
}

// Sharing is the resolved axis sharing policy of a grid.
type Sharing struct {
	X, Y Share
}

// Get returns the policy for axis a.
func (s Sharing) Get(a Axis) Share {
	if a == Y {
		return s.Y
	}
	return s.X
}

// ----------------------------------------------------------------------------
// Options

// SubplotSpec holds explicit overrides for the subplot grid.
type SubplotSpec struct {
	ShareX, ShareY Share
}

func (s SubplotSpec) share(a Axis) Share {
	if a == Y {
		return s.ShareY
	}
	return s.ShareX
}

// FacetSpec controls faceting. Which dimensions are faceted is decided by
// the data: a dimension is faceted iff the data has a column for it.
type FacetSpec struct {
	// ColOrder and RowOrder override the order of the facet levels.
	ColOrder, RowOrder []string

	// Wrap folds a single facet dimension into rows of this width.
	// Zero means no wrapping.
	Wrap int
}

func (f FacetSpec) order(d Dim) []string {
	if d == Row {
		return f.RowOrder
	}
	return f.ColOrder
}

// PairSpec controls pairing. An axis is paired iff its list is not empty.
type PairSpec struct {
	// X and Y list the variables plotted on the respective axis.
	X, Y []string

	// Wrap folds a single sequence of paired subplots. Zero means no
	// wrapping.
	Wrap int

	// NonCartesian pairs X[i] with Y[i] instead of combining every x
	// variable with every y variable.
	NonCartesian bool
}

// Cartesian reports whether every x variable is combined with every y
// variable.
func (p PairSpec) Cartesian() bool { return !p.NonCartesian }

// Vars returns the variables paired on axis a.
func (p PairSpec) Vars(a Axis) []string {
	if a == Y {
		return p.Y
	}
	return p.X
}

// Paired reports whether axis a is paired.
func (p PairSpec) Paired(a Axis) bool { return len(p.Vars(a)) > 0 }

func (p PairSpec) anyPaired() bool { return p.Paired(X) || p.Paired(Y) }
