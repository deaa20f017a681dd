package pace

import "iter"

// Decay supplies the hooks for a decay-family schedule: a fixed base value
// scaled by a shape function of the iteration index. Implementations must
// be pure; both hooks may be called concurrently.
type Decay interface {
	// BaseValue returns the fixed base value, constant per instance.
	BaseValue() float64

	// DecayAt returns the decay factor at index t, typically decreasing
	// toward 0 as t grows.
	DecayAt(t int) float64
}

// DecaySchedule adapts Decay hooks into a Schedule.
//
// Every decay-family schedule satisfies the one derived formula
//
//	At(t) = BaseValue() * DecayAt(t)
//
// so new decay formulas are added purely by implementing the Decay hooks;
// the composition machinery never changes.
type DecaySchedule struct {
	d Decay
}

// NewDecay wraps the given hooks as a Schedule.
func NewDecay(d Decay) DecaySchedule {
	return DecaySchedule{d: d}
}

// At returns BaseValue() * DecayAt(t).
func (s DecaySchedule) At(t int) float64 {
	return s.d.BaseValue() * s.d.DecayAt(t)
}

// Values yields At(1), At(2), ...
func (s DecaySchedule) Values() iter.Seq[float64] {
	return indexedValues(s.At, s.Size())
}

// Size reports an unknown length; decay formulas run for as long as the
// consumer keeps asking.
func (s DecaySchedule) Size() Size { return UnknownSize() }
