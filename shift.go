package pace

import (
	"fmt"
	"iter"
	"math"
)

// Shifted offsets a schedule's clock: At(t) = s.At(t + offset). Useful for
// resuming a schedule mid-flight, e.g. after restoring a checkpointed step
// count. The offset is not validated; the usual t >= 1 domain contract
// applies to the shifted index.
type Shifted struct {
	s      Schedule
	offset int
}

// Shift wraps the schedule with the given index offset.
func Shift(s Schedule, offset int) Shifted {
	return Shifted{s: s, offset: offset}
}

// At returns the wrapped schedule's value at t + offset.
func (sh Shifted) At(t int) float64 {
	return sh.s.At(t + sh.offset)
}

// Values yields At(1), At(2), ...
func (sh Shifted) Values() iter.Seq[float64] {
	return indexedValues(sh.At, sh.Size())
}

// Size shortens an Exact child by the offset; other hints pass through.
func (sh Shifted) Size() Size {
	size := sh.s.Size()
	if size.Kind == Exact {
		return ExactSize(max(0, size.Len-sh.offset))
	}
	return size
}

// Interpolator rescales a schedule's clock by a positive rate:
// At(t) = s.At(ceil(t / rate)). A rate above 1 stretches the schedule
// (each underlying index repeats), below 1 compresses it. A common use is
// translating an epoch-based schedule to per-batch stepping with
// rate = batches per epoch.
type Interpolator struct {
	s    Schedule
	rate float64
}

// NewInterpolator wraps the schedule with the given rate.
// Returns ErrNonPositiveRate if rate <= 0.
func NewInterpolator(s Schedule, rate float64) (*Interpolator, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveRate, rate)
	}
	return &Interpolator{s: s, rate: rate}, nil
}

// At returns the wrapped schedule's value at ceil(t / rate).
func (in *Interpolator) At(t int) float64 {
	return in.s.At(int(math.Ceil(float64(t) / in.rate)))
}

// Values yields At(1), At(2), ...
func (in *Interpolator) Values() iter.Seq[float64] {
	return indexedValues(in.At, in.Size())
}

// Size scales an Exact child by the rate; other hints pass through.
func (in *Interpolator) Size() Size {
	size := in.s.Size()
	if size.Kind == Exact {
		return ExactSize(int(math.Floor(float64(size.Len) * in.rate)))
	}
	return size
}
