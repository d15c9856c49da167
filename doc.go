// Package facetgrid lays out grids of subplots for faceted and paired
// statistical graphics and splits the data across them.
//
// # Faceting, Pairing and Wrapping
//
// A grid has two dimensions, columns (Col) and rows (Row). Each dimension is
// either
//   - faceted: the data is split by the levels of a categorical variable,
//     one column (or row) per level,
//   - paired: the same plot is repeated for several variables, one column
//     per x variable (or one row per y variable), or
//   - trivial: a single column (or row).
//
// A dimension cannot be faceted and paired at the same time.
//
// Pairing is cartesian by default: every x variable is combined with every
// y variable. Non-cartesian pairing plots X[i] against Y[i] in a single row
// of subplots.
//
// A single sequence of subplots (one facet dimension, or pairing on one
// axis, or non-cartesian pairing) can be wrapped, i.e. folded into a grid
// of the given width.
//
// # Sharing
//
// Subplots share their axis scales unless told otherwise: faceted grids
// share both axes across all subplots, paired axes are shared along the
// dimension they are paired on as long as the grid is neither wrapped nor
// non-cartesian.
//
// # Usage
//
// New validates the options and resolves the grid shape. Init obtains the
// drawing surfaces from a SurfaceFactory and builds the cells, which carry
// their facet levels, variable keys and edge flags. Splits and Pairings
// partition tabular data across the cells.
package facetgrid
