package pace

import (
	"fmt"
	"iter"
)

// Loop repeats a wrapped schedule periodically by remapping the index into
// [1, period], so At(1) and At(period+1) agree. Raw functions must be
// wrapped in a Lambda first; Loop accepts only the Schedule contract.
type Loop struct {
	cycle  Schedule
	period int
}

// NewLoop wraps the schedule with the given period.
// Returns ErrNonPositivePeriod if period < 1.
func NewLoop(cycle Schedule, period int) (*Loop, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositivePeriod, period)
	}
	return &Loop{cycle: cycle, period: period}, nil
}

// At returns the wrapped schedule's value at ((t-1) mod period) + 1.
func (l *Loop) At(t int) float64 {
	return l.cycle.At((t-1)%l.period + 1)
}

// Values yields At(1), At(2), ... without end.
func (l *Loop) Values() iter.Seq[float64] {
	return indexedValues(l.At, l.Size())
}

// Size reports an infinite length, regardless of the wrapped schedule.
func (l *Loop) Size() Size { return InfiniteSize() }
