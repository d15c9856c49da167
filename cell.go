package facetgrid

import (
	"errors"
	"fmt"
	"iter"
)

// Surface is an opaque drawing surface handle produced by a SurfaceFactory.
type Surface any

// A SurfaceFactory produces the drawing surfaces of a grid.
type SurfaceFactory interface {
	// Allocate returns a rows x cols array of surfaces, indexed
	// [row][col], set up with the given sharing policy.
	Allocate(rows, cols int, sharing Sharing) ([][]Surface, error)

	// Release discards a surface returned by Allocate which is not used.
	Release(s Surface) error
}

// Pos is a physical position in the allocated surface array.
type Pos struct {
	Row, Col int
}

// A Placement maps a subplot to its place in the grid.
type Placement struct {
	// Index is the position of the subplot in drawing order.
	Index int

	// I and J index the row and column levels (and the y and x pair
	// variables) of the subplot.
	I, J int

	// Pos is the surface used for the subplot.
	Pos Pos
}

// Placements returns the placement of every subplot of g. Placements does
// not depend on Init and allocates no surfaces.
func (g *Grid) Placements() []Placement {
	ps := make([]Placement, g.N)
	for k := range ps {
		ps[k] = g.placement(k)
	}
	return ps
}

func (g *Grid) placement(k int) Placement {
	var pos Pos
	var i, j int
	switch {
	case !g.Wrapped():
		pos = Pos{Row: k / g.Cols, Col: k % g.Cols}
		i, j = pos.Row, pos.Col
	case g.WrapDim == Col:
		// Row-major: fill the first row, then the next.
		pos = Pos{Row: k / g.Cols, Col: k % g.Cols}
		i, j = 0, k
	default:
		// Column-major: fill the first column, then the next.
		pos = Pos{Row: k % g.Rows, Col: k / g.Rows}
		i, j = k, 0
	}
	if g.matched() {
		i, j = k, k
	}
	return Placement{Index: k, I: i, J: j, Pos: pos}
}

// ----------------------------------------------------------------------------
// Cell

// A Cell is a subplot in the grid.
type Cell struct {
	Surface Surface

	Index int
	Pos   Pos

	// Left, Right, Top and Bottom report whether the cell lies on the
	// respective edge of the grid.
	Left, Right, Top, Bottom bool

	// Row and Col are the facet levels of the cell.
	Row, Col Level

	// X and Y are the variable keys plotted on the respective axis:
	// "x0", "x1", ... for paired axes, "x" or "y" otherwise.
	X, Y string

	i, j int
}

// Level returns the facet level of c along d.
func (c *Cell) Level(d Dim) Level {
	if d == Row {
		return c.Row
	}
	return c.Col
}

// Key returns the variable key of c for axis a.
func (c *Cell) Key(a Axis) string {
	if a == Y {
		return c.Y
	}
	return c.X
}

func (c *Cell) String() string {
	edges := []byte("----")
	for i, e := range []bool{c.Left, c.Right, c.Top, c.Bottom} {
		if e {
			edges[i] = "lrtb"[i]
		}
	}
	return fmt.Sprintf("#%d (%d,%d) %s col=%s row=%s x=%s y=%s",
		c.Index, c.Pos.Row, c.Pos.Col, edges, c.Col, c.Row, c.X, c.Y)
}

// Init allocates the surfaces of g from f and builds its cells. Surfaces
// not needed by a subplot (trailing cells of a wrapped grid) are released
// right away. Errors from f.Allocate are returned unchanged. If Init fails
// after allocating, every surface not yet released is handed back to f.
func (g *Grid) Init(f SurfaceFactory) error {
	if g.initialized {
		return errors.New("facetgrid: grid already initialized")
	}

	placements := g.Placements()
	surfaces, err := f.Allocate(g.Rows, g.Cols, g.Sharing)
	if err != nil {
		return err
	}
	if err := g.checkShape(surfaces); err != nil {
		return errors.Join(err, releaseAll(f, surfaces, nil))
	}

	used := make(map[Pos]bool, len(placements))
	for _, p := range placements {
		used[p.Pos] = true
	}
	done := make(map[Pos]bool)
	for r, row := range surfaces {
		for c, s := range row {
			pos := Pos{Row: r, Col: c}
			if used[pos] {
				continue
			}
			g.log.V(1).Info("releasing unused surface", "row", r, "col", c)
			done[pos] = true
			if err := f.Release(s); err != nil {
				return errors.Join(err, releaseAll(f, surfaces, done))
			}
		}
	}

	g.cells = make([]Cell, len(placements))
	for k, p := range placements {
		g.cells[k] = g.cell(p, surfaces[p.Pos.Row][p.Pos.Col])
	}
	g.initialized = true
	return nil
}

func (g *Grid) checkShape(surfaces [][]Surface) error {
	if len(surfaces) != g.Rows {
		return fmt.Errorf("facetgrid: factory returned %d rows of surfaces, want %d", len(surfaces), g.Rows)
	}
	for r, row := range surfaces {
		if len(row) != g.Cols {
			return fmt.Errorf("facetgrid: factory returned %d surfaces in row %d, want %d", len(row), r, g.Cols)
		}
	}
	return nil
}

// releaseAll releases the surfaces whose position is not in done.
func releaseAll(f SurfaceFactory, surfaces [][]Surface, done map[Pos]bool) error {
	var errs []error
	for r, row := range surfaces {
		for c, s := range row {
			if done[Pos{Row: r, Col: c}] {
				continue
			}
			if err := f.Release(s); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (g *Grid) cell(p Placement, s Surface) Cell {
	c := Cell{
		Surface: s,
		Index:   p.Index,
		Pos:     p.Pos,
		Row:     g.levelAt(Row, p.I),
		Col:     g.levelAt(Col, p.J),
		X:       g.key(X, p.J),
		Y:       g.key(Y, p.I),
		i:       p.I,
		j:       p.J,
	}
	c.Left, c.Right, c.Top, c.Bottom = g.edges(p.I, p.J)
	return c
}

func (g *Grid) edges(i, j int) (left, right, top, bottom bool) {
	nrows, ncols, n := g.Rows, g.Cols, g.N
	switch {
	case !g.Wrapped():
		left = j%ncols == 0
		right = (j+1)%ncols == 0
		top = i == 0
		bottom = i == nrows-1
	case g.WrapDim == Col:
		left = j%ncols == 0
		right = (j+1)%ncols == 0 || j+1 == n
		top = j < ncols
		bottom = j >= n-ncols
	default:
		left = i < nrows
		right = i >= n-nrows
		top = i%nrows == 0
		bottom = (i+1)%nrows == 0 || i+1 == n
	}
	if g.matched() {
		top = j < ncols
		bottom = j >= n-ncols
	}
	return left, right, top, bottom
}

func (g *Grid) key(a Axis, idx int) string {
	if g.pair.Paired(a) {
		return fmt.Sprintf("%s%d", a, idx)
	}
	return a.String()
}

// Variable returns the data variable plotted by c on axis a: the paired
// variable behind the cell's key, or the axis name if a is not paired.
func (g *Grid) Variable(c *Cell, a Axis) string {
	idx := c.j
	if a == Y {
		idx = c.i
	}
	if vars := g.pair.Vars(a); idx < len(vars) {
		return vars[idx]
	}
	return a.String()
}

// Len returns the number of cells built by Init.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the i'th cell in drawing order.
func (g *Grid) Cell(i int) *Cell { return &g.cells[i] }

// Cells returns all cells in drawing order. It is nil before Init.
func (g *Grid) Cells() []*Cell {
	if g.cells == nil {
		return nil
	}
	cells := make([]*Cell, len(g.cells))
	for i := range g.cells {
		cells[i] = &g.cells[i]
	}
	return cells
}

// All iterates the cells in drawing order.
func (g *Grid) All() iter.Seq2[int, *Cell] {
	return func(yield func(int, *Cell) bool) {
		for i := range g.cells {
			if !yield(i, &g.cells[i]) {
				return
			}
		}
	}
}
