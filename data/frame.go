// Package data contains the tabular data handled by facetgrid together with
// the categorical ordering of its values.
package data

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrLength is returned if a column's length differs from the frame's.
	ErrLength = errors.New("data: column length mismatch")

	// ErrNoColumn is returned if a referenced column does not exist.
	ErrNoColumn = errors.New("data: no such column")
)

// A Frame is a table of named string columns of equal length.
// Missing values are represented by the empty string.
type Frame struct {
	names []string
	cols  map[string][]string
	n     int
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string][]string)}
}

// AddColumn adds (or replaces) the column name. The first column added
// determines the length of the frame.
func (f *Frame) AddColumn(name string, values []string) error {
	_, exists := f.cols[name]
	onlyColumn := exists && len(f.cols) == 1
	if len(f.cols) > 0 && len(values) != f.n && !onlyColumn {
		return fmt.Errorf("%w: column %q has %d values, frame has %d rows",
			ErrLength, name, len(values), f.n)
	}
	if !exists {
		f.names = append(f.names, name)
	}
	f.cols[name] = slices.Clone(values)
	f.n = len(values)
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Names returns the column names in the order they were added.
func (f *Frame) Names() []string { return slices.Clone(f.names) }

// Column returns the values of column name.
func (f *Frame) Column(name string) ([]string, bool) {
	c, ok := f.cols[name]
	return c, ok
}

// Has reports whether f has a column name.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Select returns a new frame holding the given rows of f.
func (f *Frame) Select(rows []int) *Frame {
	sel := NewFrame()
	sel.n = len(rows)
	for _, name := range f.names {
		src := f.cols[name]
		dst := make([]string, len(rows))
		for i, r := range rows {
			dst[i] = src[r]
		}
		sel.names = append(sel.names, name)
		sel.cols[name] = dst
	}
	return sel
}
