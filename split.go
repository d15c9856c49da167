package facetgrid

// Table is tabular data to be split across the cells of a grid. The facet
// values are held in the columns named "col" and "row".
type Table interface {
	Len() int
	Column(name string) ([]string, bool)
}

// Subset returns the indices of the rows of t which belong to c: the rows
// whose facet values equal the levels of c. Facet columns missing from t
// do not restrict the rows. A placeholder level matches no row.
func (c *Cell) Subset(t Table) []int {
	rows := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, i)
	}
	for _, d := range []Dim{Col, Row} {
		values, ok := t.Column(d.String())
		if !ok {
			continue
		}
		want, concrete := c.Level(d).Value()
		if !concrete {
			return rows[:0]
		}
		rows = filterRows(rows, values, want)
	}
	return rows
}

func filterRows(rows []int, values []string, want string) []int {
	kept := rows[:0:0]
	for _, r := range rows {
		if values[r] == want {
			kept = append(kept, r)
		}
	}
	return kept
}

// A Split is the part of a table drawn as one group into one cell.
type Split struct {
	Cell *Cell

	// Keys holds the value of every grouping variable and the concrete
	// facet levels ("col", "row") of the split.
	Keys map[string]string

	// Rows are the indices of the table rows in the split.
	Rows []int
}

// Splits partitions t into the groups drawn into the cells of g. The
// groupBy variables present in t (except "col" and "row") split every cell
// further: one split for each combination of their levels, in level order,
// which has any rows. Without grouping variables or levels every cell
// yields exactly one split, even an empty one.
// Splits must be called after Init.
func (g *Grid) Splits(t Table, groupBy []string, levels map[string][]string) []Split {
	var vars []string
	var keys [][]string
	anyKeys := false
	for _, v := range groupBy {
		if v == Col.String() || v == Row.String() {
			continue
		}
		if _, ok := t.Column(v); !ok {
			continue
		}
		vars = append(vars, v)
		keys = append(keys, levels[v])
		if len(levels[v]) > 0 {
			anyKeys = true
		}
	}

	var splits []Split
	for _, c := range g.Cells() {
		rows := c.Subset(t)
		if len(vars) == 0 || !anyKeys {
			splits = append(splits, Split{Cell: c, Keys: facetKeys(c), Rows: rows})
			continue
		}
		for _, combo := range product(keys) {
			subset := rows
			for k, v := range vars {
				values, _ := t.Column(v)
				subset = filterRows(subset, values, combo[k])
			}
			if len(subset) == 0 {
				continue
			}
			sk := facetKeys(c)
			for k, v := range vars {
				sk[v] = combo[k]
			}
			splits = append(splits, Split{Cell: c, Keys: sk, Rows: subset})
		}
	}
	return splits
}

func facetKeys(c *Cell) map[string]string {
	keys := make(map[string]string, 2)
	for _, d := range []Dim{Col, Row} {
		if v, ok := c.Level(d).Value(); ok {
			keys[d.String()] = v
		}
	}
	return keys
}

// product returns the cartesian product of lists, the last list varying
// fastest. It is empty if any list is empty.
func product(lists [][]string) [][]string {
	combos := [][]string{{}}
	for _, list := range lists {
		next := make([][]string, 0, len(combos)*len(list))
		for _, combo := range combos {
			for _, v := range list {
				c := make([]string, len(combo), len(combo)+1)
				copy(c, combo)
				next = append(next, append(c, v))
			}
		}
		combos = next
	}
	return combos
}

// ----------------------------------------------------------------------------
// Pairings

// A Pairing is one combination of paired variables together with the
// cells plotting it.
type Pairing struct {
	// X and Y are the pair keys ("x0", "y1", ...). They are empty if the
	// respective axis is not paired.
	X, Y string

	// XVar and YVar are the data variables behind X and Y.
	XVar, YVar string

	Cells []*Cell
}

// Pairings returns the combinations of paired variables, x major, each with
// the cells it is drawn into. Without pairing there is a single Pairing
// holding all cells. Combinations without cells are omitted.
// Pairings must be called after Init.
func (g *Grid) Pairings() []Pairing {
	cells := g.Cells()
	if !g.pair.anyPaired() {
		return []Pairing{{Cells: cells}}
	}

	xkeys, ykeys := g.pairKeys(X), g.pairKeys(Y)
	var pairings []Pairing
	for xi, x := range xkeys {
		for yi, y := range ykeys {
			p := Pairing{X: x, Y: y}
			if x != "" {
				p.XVar = g.pair.X[xi]
			}
			if y != "" {
				p.YVar = g.pair.Y[yi]
			}
			for _, c := range cells {
				if (x == "" || c.X == x) && (y == "" || c.Y == y) {
					p.Cells = append(p.Cells, c)
				}
			}
			if len(p.Cells) == 0 {
				continue
			}
			pairings = append(pairings, p)
		}
	}
	return pairings
}

func (g *Grid) pairKeys(a Axis) []string {
	vars := g.pair.Vars(a)
	if len(vars) == 0 {
		return []string{""}
	}
	keys := make([]string, len(vars))
	for i := range vars {
		keys[i] = g.key(a, i)
	}
	return keys
}
