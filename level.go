package facetgrid

// A Level is the value a subplot represents along one grid dimension.
// It is either a concrete facet level or the placeholder NoLevel used for
// dimensions which are paired or not faceted at all. NoLevel never compares
// equal to a concrete level, not even to LevelOf("").
type Level struct {
	value string
	set   bool
}

// NoLevel is the placeholder level.
var NoLevel = Level{}

// LevelOf returns the concrete level v.
func LevelOf(v string) Level { return Level{value: v, set: true} }

// Value returns the level's value and whether it is concrete.
func (l Level) Value() (string, bool) { return l.value, l.set }

// IsConcrete reports whether l is a concrete facet level.
func (l Level) IsConcrete() bool { return l.set }

func (l Level) String() string {
	if !l.set {
		return "<none>"
	}
	return l.value
}

func concreteLevels(values []string) []Level {
	levels := make([]Level, len(values))
	for i, v := range values {
		levels[i] = LevelOf(v)
	}
	return levels
}

func placeholders(n int) []Level { return make([]Level, n) }
