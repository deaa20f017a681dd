package pace

import "iter"

// Lambda adapts an arbitrary function of the iteration index into a
// Schedule. The function is called unchanged; any panic it raises
// propagates to the caller.
type Lambda func(t int) float64

// At returns f(t).
func (f Lambda) At(t int) float64 { return f(t) }

// Values yields f(1), f(2), ...
func (f Lambda) Values() iter.Seq[float64] {
	return indexedValues(f.At, f.Size())
}

// Size reports an unknown length; the wrapped function is opaque.
func (f Lambda) Size() Size { return UnknownSize() }

// Constant is a schedule holding the same value at every index.
type Constant float64

// At returns the constant, ignoring t.
func (c Constant) At(int) float64 { return float64(c) }

// Values yields the constant forever.
func (c Constant) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for yield(float64(c)) {
		}
	}
}

// Size reports an unknown length.
func (c Constant) Size() Size { return UnknownSize() }
