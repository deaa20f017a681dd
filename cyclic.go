package pace

import (
	"iter"
	"math"
)

// Cyclic supplies the hooks for a cyclic-family schedule: a shape function
// interpolating between two fixed boundary values. CycleAt is expected to
// range over [0, 1] (triangular, sinusoidal, ...); that bound is a contract
// on formula authors, not verified here.
type Cyclic interface {
	// StartValue returns the fixed boundary value at the start of a cycle.
	StartValue() float64

	// EndValue returns the fixed boundary value at the end of a cycle.
	EndValue() float64

	// CycleAt returns the shape factor at index t.
	CycleAt(t int) float64
}

// CyclicSchedule adapts Cyclic hooks into a Schedule via the derived formula
//
//	At(t) = abs(start-end) * CycleAt(t) + min(start, end)
//
// If CycleAt stays within [0, 1], At stays within
// [min(start, end), max(start, end)] for all t.
type CyclicSchedule struct {
	c Cyclic
}

// NewCyclic wraps the given hooks as a Schedule.
func NewCyclic(c Cyclic) CyclicSchedule {
	return CyclicSchedule{c: c}
}

// At returns abs(start-end) * CycleAt(t) + min(start, end).
func (s CyclicSchedule) At(t int) float64 {
	start, end := s.c.StartValue(), s.c.EndValue()
	return math.Abs(start-end)*s.c.CycleAt(t) + min(start, end)
}

// Values yields At(1), At(2), ...
func (s CyclicSchedule) Values() iter.Seq[float64] {
	return indexedValues(s.At, s.Size())
}

// Size reports an unknown length.
func (s CyclicSchedule) Size() Size { return UnknownSize() }
