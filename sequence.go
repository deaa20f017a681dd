package pace

import (
	"fmt"
	"iter"
	"sort"
)

// Entry is one element of a Sequence: either a fixed constant or a
// sub-schedule with its own local clock. Build entries with Const and Sub.
type Entry struct {
	sub Schedule
	val float64
}

// Const builds an entry holding a plain value; the segment's local offset
// is ignored.
func Const(v float64) Entry { return Entry{val: v} }

// Sub builds an entry holding a sub-schedule. The schedule is held by
// reference and never mutated; it may be shared across composites.
func Sub(s Schedule) Entry { return Entry{sub: s} }

// value evaluates the entry at a segment-local index (1-based).
func (e Entry) value(localT int) float64 {
	if e.sub != nil {
		return e.sub.At(localT)
	}
	return e.val
}

// Sequence concatenates entries in time, each active for a configured
// number of steps. The last segment, once entered, continues indefinitely
// past its nominal length: the sequence saturates rather than terminates,
// with the final entry's local offset growing without bound.
type Sequence struct {
	entries []Entry
	bounds  []int // cumulative step boundaries, strictly increasing
}

// NewSequence builds a Sequence from parallel lists of entries and step
// counts. It fails fast, before any evaluation, with ErrLengthMismatch,
// ErrEmptySequence, or ErrNonPositiveStep.
func NewSequence(entries []Entry, steps []int) (*Sequence, error) {
	if len(entries) != len(steps) {
		return nil, fmt.Errorf("%w: %d entries, %d steps", ErrLengthMismatch, len(entries), len(steps))
	}
	if len(entries) == 0 {
		return nil, ErrEmptySequence
	}

	bounds := make([]int, len(steps))
	total := 0
	for i, n := range steps {
		if n < 1 {
			return nil, fmt.Errorf("%w: steps[%d] = %d", ErrNonPositiveStep, i, n)
		}
		total += n
		bounds[i] = total
	}

	// Copy so later caller mutation of the input slice cannot reach us.
	es := make([]Entry, len(entries))
	copy(es, entries)

	return &Sequence{entries: es, bounds: bounds}, nil
}

// At locates the segment containing t by binary search over the cumulative
// boundaries (O(log segments)) and evaluates its entry at the local offset.
// Indices past the last boundary clamp to the last segment.
func (s *Sequence) At(t int) float64 {
	i := sort.SearchInts(s.bounds, t)
	if i == len(s.bounds) {
		i-- // saturate on the last segment
	}
	start := 0
	if i > 0 {
		start = s.bounds[i-1]
	}
	return s.entries[i].value(t - start)
}

// Values yields At(1), At(2), ... tracking the current segment and its
// start index incrementally, so stepping costs amortized O(1) instead of a
// boundary search per index.
func (s *Sequence) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		seg, start := 0, 0
		last := len(s.bounds) - 1
		for t := 1; ; t++ {
			for seg < last && t > s.bounds[seg] {
				start = s.bounds[seg]
				seg++
			}
			if !yield(s.entries[seg].value(t - start)) {
				return
			}
		}
	}
}

// Size reports an unknown length: a Sequence never terminates on its own,
// it saturates.
func (s *Sequence) Size() Size { return UnknownSize() }
