package facetgrid

import "errors"

// ErrConflict is matched (via errors.Is) by every error reporting a
// self-contradictory combination of facet, pair and subplot options.
var ErrConflict = errors.New("facetgrid: specification conflict")

// ErrNoLevels is returned by New if the data has no levels for a faceted
// dimension.
var ErrNoLevels = errors.New("facetgrid: empty facet")

// A ConflictError describes which options contradict each other.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// Is makes errors.Is(err, ErrConflict) true.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func conflict(msg string) error { return &ConflictError{Msg: msg} }
