package spawn

import "math/rand"

// Entry is one row of a type-selection table.
type Entry[K any] struct {
	Kind   K
	Weight float64 // Percentage
}

// Table selects a kind by cumulative-probability draw over percentages.
type Table[K any] struct {
	entries []Entry[K]
}

// NewTable creates a table. Entry order is the draw order.
func NewTable[K any](entries ...Entry[K]) Table[K] {
	return Table[K]{entries: entries}
}

// Pick returns the first kind whose running weight sum exceeds r, with r in
// [0, 100). When the weights fall short of r the first entry is returned,
// which absorbs floating point drift in tables meant to sum to 100.
func (t Table[K]) Pick(r float64) K {
	var zero K
	if len(t.entries) == 0 {
		return zero
	}
	cumulative := 0.0
	for _, e := range t.entries {
		cumulative += e.Weight
		if r < cumulative {
			return e.Kind
		}
	}
	return t.entries[0].Kind
}

// Roll draws r uniformly from [0, 100) and picks.
func (t Table[K]) Roll(rng *rand.Rand) K {
	return t.Pick(rng.Float64() * 100)
}

// Entries returns a copy of the rows.
func (t Table[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(t.entries))
	copy(out, t.entries)
	return out
}

// Total returns the sum of all weights.
func (t Table[K]) Total() float64 {
	total := 0.0
	for _, e := range t.entries {
		total += e.Weight
	}
	return total
}
