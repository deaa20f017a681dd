package pace

import "iter"

// Schedule is a pure function from a positive iteration index to a value.
//
// At is defined for t >= 1 and depends only on t and the instance's
// construction-time fields; schedules never mutate themselves after
// construction, so concurrent At calls on a shared instance are safe
// without locking. Behavior for t < 1 is unspecified: the core does not
// guard the domain, and whatever the underlying arithmetic or user
// function does simply propagates.
type Schedule interface {
	// At returns the schedule's value at index t (t >= 1).
	At(t int) float64

	// Values returns a fresh lazy sequence yielding At(1), At(2), ...
	// Each call restarts from t=1. The sequence ends only for schedules
	// whose Size is Exact; otherwise the consumer decides when to stop.
	Values() iter.Seq[float64]

	// Size reports how long the value sequence runs.
	Size() Size
}

// indexedValues builds a Values sequence from an At function, honoring an
// Exact size hint. Schedules with no cheaper incremental form use this.
func indexedValues(at func(int) float64, size Size) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for t := 1; ; t++ {
			if size.Kind == Exact && t > size.Len {
				return
			}
			if !yield(at(t)) {
				return
			}
		}
	}
}
