package facetgrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFactory hands out the positions of the surfaces as surfaces and
// records what it was asked to do.
type fakeFactory struct {
	rows, cols int
	sharing    Sharing
	allocs     int
	released   []Pos
	err        error
	releaseErr error
}

func (f *fakeFactory) Allocate(rows, cols int, sharing Sharing) ([][]Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.allocs++
	f.rows, f.cols, f.sharing = rows, cols, sharing
	s := make([][]Surface, rows)
	for r := range s {
		s[r] = make([]Surface, cols)
		for c := range s[r] {
			s[r][c] = Pos{Row: r, Col: c}
		}
	}
	return s, nil
}

// Release fails with releaseErr on its first call only.
func (f *fakeFactory) Release(s Surface) error {
	f.released = append(f.released, s.(Pos))
	if len(f.released) == 1 {
		return f.releaseErr
	}
	return nil
}

// edges is a compact representation of the edge flags of a cell.
type edges struct{ left, right, top, bottom bool }

func cellEdges(c *Cell) edges { return edges{c.Left, c.Right, c.Top, c.Bottom} }

func initGrid(t *testing.T, facet FacetSpec, pair PairSpec, data Data) (*Grid, *fakeFactory) {
	t.Helper()
	g, err := New(SubplotSpec{}, facet, pair, data)
	require.NoError(t, err)
	f := &fakeFactory{}
	require.NoError(t, g.Init(f))
	require.Equal(t, g.N, g.Len())
	for _, c := range g.Cells() {
		assert.Equal(t, c.Pos, c.Surface, "cell %d uses the surface at its position", c.Index)
	}
	return g, f
}

func TestUnwrappedCells(t *testing.T) {
	g, f := initGrid(t, FacetSpec{}, PairSpec{},
		levels{"col": abc, "row": []string{"u", "v"}})

	assert.Equal(t, 1, f.allocs)
	assert.Equal(t, 2, f.rows)
	assert.Equal(t, 3, f.cols)
	assert.Equal(t, Sharing{ShareAll, ShareAll}, f.sharing)
	assert.Empty(t, f.released)

	want := []struct {
		pos      Pos
		row, col string
		edges    edges
	}{
		{Pos{0, 0}, "u", "a", edges{left: true, top: true}},
		{Pos{0, 1}, "u", "b", edges{top: true}},
		{Pos{0, 2}, "u", "c", edges{right: true, top: true}},
		{Pos{1, 0}, "v", "a", edges{left: true, bottom: true}},
		{Pos{1, 1}, "v", "b", edges{bottom: true}},
		{Pos{1, 2}, "v", "c", edges{right: true, bottom: true}},
	}
	require.Equal(t, len(want), g.Len())
	for i, w := range want {
		c := g.Cell(i)
		assert.Equal(t, i, c.Index)
		assert.Equal(t, w.pos, c.Pos, "cell %d", i)
		assert.Equal(t, LevelOf(w.row), c.Row, "cell %d", i)
		assert.Equal(t, LevelOf(w.col), c.Col, "cell %d", i)
		assert.Equal(t, w.edges, cellEdges(c), "cell %d", i)
		assert.Equal(t, "x", c.X)
		assert.Equal(t, "y", c.Y)
	}
}

func TestColWrappedCells(t *testing.T) {
	g, f := initGrid(t, FacetSpec{Wrap: 3}, PairSpec{}, levels{"col": five})

	assert.Equal(t, []Pos{{1, 2}}, f.released)
	want := []struct {
		pos   Pos
		edges edges
	}{
		{Pos{0, 0}, edges{left: true, top: true}},
		{Pos{0, 1}, edges{top: true}},
		{Pos{0, 2}, edges{right: true, top: true, bottom: true}},
		{Pos{1, 0}, edges{left: true, bottom: true}},
		{Pos{1, 1}, edges{right: true, bottom: true}},
	}
	require.Equal(t, len(want), g.Len())
	for i, w := range want {
		c := g.Cell(i)
		assert.Equal(t, w.pos, c.Pos, "cell %d", i)
		assert.Equal(t, w.edges, cellEdges(c), "cell %d", i)
		assert.Equal(t, LevelOf(five[i]), c.Col)
		assert.Equal(t, NoLevel, c.Row)
	}
}

func TestRowWrappedCells(t *testing.T) {
	g, f := initGrid(t, FacetSpec{Wrap: 3}, PairSpec{}, levels{"row": five})

	assert.Equal(t, 3, f.rows)
	assert.Equal(t, 2, f.cols)
	assert.Equal(t, []Pos{{2, 1}}, f.released)
	want := []struct {
		pos   Pos
		edges edges
	}{
		{Pos{0, 0}, edges{left: true, top: true}},
		{Pos{1, 0}, edges{left: true}},
		{Pos{2, 0}, edges{left: true, right: true, bottom: true}},
		{Pos{0, 1}, edges{right: true, top: true}},
		{Pos{1, 1}, edges{right: true, bottom: true}},
	}
	require.Equal(t, len(want), g.Len())
	for i, w := range want {
		c := g.Cell(i)
		assert.Equal(t, w.pos, c.Pos, "cell %d", i)
		assert.Equal(t, w.edges, cellEdges(c), "cell %d", i)
		assert.Equal(t, LevelOf(five[i]), c.Row)
		assert.Equal(t, NoLevel, c.Col)
	}
}

func TestPairedCells(t *testing.T) {
	pair := PairSpec{X: []string{"a", "b", "c"}, Y: []string{"d", "e"}}
	g, f := initGrid(t, FacetSpec{}, pair, noData)

	assert.Equal(t, Sharing{ShareCol, ShareRow}, f.sharing)
	require.Equal(t, 6, g.Len())

	c := g.Cell(5)
	assert.Equal(t, Pos{1, 2}, c.Pos)
	assert.Equal(t, "x2", c.X)
	assert.Equal(t, "y1", c.Y)
	assert.Equal(t, "c", g.Variable(c, X))
	assert.Equal(t, "e", g.Variable(c, Y))
	assert.Equal(t, NoLevel, c.Row)
	assert.Equal(t, NoLevel, c.Col)
	assert.Equal(t, edges{right: true, bottom: true}, cellEdges(c))

	c = g.Cell(0)
	assert.Equal(t, "x0", c.Key(X))
	assert.Equal(t, "y0", c.Key(Y))
}

func TestPairedAndFacetedCells(t *testing.T) {
	g, _ := initGrid(t, FacetSpec{}, PairSpec{Y: []string{"d", "e"}}, levels{"col": abc})

	c := g.Cell(4)
	assert.Equal(t, Pos{1, 1}, c.Pos)
	assert.Equal(t, LevelOf("b"), c.Col)
	assert.Equal(t, NoLevel, c.Row)
	assert.Equal(t, "x", c.X)
	assert.Equal(t, "y1", c.Y)
	assert.Equal(t, "x", g.Variable(c, X))
	assert.Equal(t, "e", g.Variable(c, Y))
}

func TestXPairedWrappedCells(t *testing.T) {
	g, f := initGrid(t, FacetSpec{}, PairSpec{X: five, Wrap: 2}, noData)

	assert.Equal(t, Sharing{ShareNone, ShareAll}, f.sharing)
	assert.Equal(t, []Pos{{2, 1}}, f.released)
	for i, c := range g.Cells() {
		assert.Equal(t, Pos{i / 2, i % 2}, c.Pos)
		assert.Equal(t, five[i], g.Variable(c, X))
		assert.Equal(t, "y", c.Y)
	}
}

func TestNonCartesianCells(t *testing.T) {
	pair := PairSpec{X: abc, Y: []string{"u", "v", "w"}, NonCartesian: true}
	g, f := initGrid(t, FacetSpec{}, pair, noData)

	assert.Equal(t, 1, f.rows)
	assert.Equal(t, 3, f.cols)
	assert.Equal(t, Sharing{ShareNone, ShareNone}, f.sharing)
	assert.Empty(t, f.released)

	want := []edges{
		{left: true, top: true, bottom: true},
		{top: true, bottom: true},
		{right: true, top: true, bottom: true},
	}
	require.Equal(t, 3, g.Len())
	for i, w := range want {
		c := g.Cell(i)
		assert.Equal(t, Pos{0, i}, c.Pos)
		assert.Equal(t, w, cellEdges(c), "cell %d", i)
		assert.Equal(t, "x"+string(rune('0'+i)), c.X)
		assert.Equal(t, "y"+string(rune('0'+i)), c.Y)
		assert.Equal(t, pair.X[i], g.Variable(c, X))
		assert.Equal(t, pair.Y[i], g.Variable(c, Y))
		assert.Equal(t, NoLevel, c.Row)
		assert.Equal(t, NoLevel, c.Col)
	}
}

func TestNonCartesianFacetedCells(t *testing.T) {
	pair := PairSpec{Y: abc, NonCartesian: true}
	g, _ := initGrid(t, FacetSpec{}, pair, levels{"col": []string{"p", "q"}})

	require.Equal(t, 2, g.Len())
	for i, c := range g.Cells() {
		assert.Equal(t, Pos{0, i}, c.Pos)
		assert.Equal(t, LevelOf([]string{"p", "q"}[i]), c.Col, "cell %d", i)
		assert.Equal(t, pair.Y[i], g.Variable(c, Y))
		assert.Equal(t, "x", c.X)
	}
}

func TestNonCartesianWrappedCells(t *testing.T) {
	pair := PairSpec{X: abc, Y: []string{"u", "v", "w"}, NonCartesian: true, Wrap: 2}
	g, f := initGrid(t, FacetSpec{}, pair, noData)

	assert.Equal(t, []Pos{{1, 1}}, f.released)
	want := []struct {
		pos   Pos
		edges edges
	}{
		{Pos{0, 0}, edges{left: true, top: true}},
		{Pos{0, 1}, edges{right: true, top: true, bottom: true}},
		{Pos{1, 0}, edges{left: true, right: true, bottom: true}},
	}
	for i, w := range want {
		c := g.Cell(i)
		assert.Equal(t, w.pos, c.Pos, "cell %d", i)
		assert.Equal(t, w.edges, cellEdges(c), "cell %d", i)
		assert.Equal(t, pair.Y[i], g.Variable(c, Y))
	}
}

func TestPlacementsWithoutInit(t *testing.T) {
	g, err := New(SubplotSpec{}, FacetSpec{Wrap: 2}, PairSpec{}, levels{"row": abc})
	require.NoError(t, err)

	assert.Equal(t, []Placement{
		{Index: 0, I: 0, J: 0, Pos: Pos{0, 0}},
		{Index: 1, I: 1, J: 0, Pos: Pos{1, 0}},
		{Index: 2, I: 2, J: 0, Pos: Pos{0, 1}},
	}, g.Placements())
	assert.Equal(t, 0, g.Len())
	assert.Nil(t, g.Cells())
}

func TestInitErrors(t *testing.T) {
	g, err := New(SubplotSpec{}, FacetSpec{}, PairSpec{}, levels{"col": abc})
	require.NoError(t, err)

	errExhausted := errors.New("out of surfaces")
	err = g.Init(&fakeFactory{err: errExhausted})
	assert.Equal(t, errExhausted, err, "factory errors are returned unchanged")
	assert.Equal(t, 0, g.Len())

	f := &fakeFactory{}
	require.NoError(t, g.Init(f))
	assert.Error(t, g.Init(f), "second Init")
	assert.Equal(t, 1, f.allocs)
}

type shortFactory struct{ fakeFactory }

func (f *shortFactory) Allocate(rows, cols int, sharing Sharing) ([][]Surface, error) {
	s, err := f.fakeFactory.Allocate(rows, cols, sharing)
	return s[:len(s)-1], err
}

func TestInitBadFactory(t *testing.T) {
	g, err := New(SubplotSpec{}, FacetSpec{}, PairSpec{}, levels{"row": abc})
	require.NoError(t, err)
	f := &shortFactory{}
	assert.Error(t, g.Init(f))
	assert.Equal(t, []Pos{{0, 0}, {1, 0}}, f.released, "returned surfaces are released")
	assert.Equal(t, 0, g.Len())
}

func TestInitReleaseError(t *testing.T) {
	g, err := New(SubplotSpec{}, FacetSpec{Wrap: 3}, PairSpec{}, levels{"col": five})
	require.NoError(t, err)

	errBusy := errors.New("surface busy")
	f := &fakeFactory{releaseErr: errBusy}
	err = g.Init(f)
	assert.ErrorIs(t, err, errBusy)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, []Pos{{1, 2}, {0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}}, f.released,
		"the failed surface first, then every other surface once")

	// The grid is still usable.
	require.NoError(t, g.Init(&fakeFactory{}))
	assert.Equal(t, 5, g.Len())
}

func TestAll(t *testing.T) {
	g, _ := initGrid(t, FacetSpec{}, PairSpec{}, levels{"col": five})

	var seen []int
	for i, c := range g.All() {
		assert.Equal(t, i, c.Index)
		seen = append(seen, i)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestCellString(t *testing.T) {
	g, _ := initGrid(t, FacetSpec{}, PairSpec{}, levels{"col": []string{"a"}})
	assert.Equal(t, "#0 (0,0) lrtb col=a row=<none> x=x y=y", g.Cell(0).String())
}
