package pace

// Formula is a raw shape function over the iteration index: the kind of
// function plugged into Decay, Cyclic, and Lambda schedules.
type Formula func(t int) float64

// Reverse returns the formula played backwards about a fixed period:
// t -> f(period - t).
func Reverse(f Formula, period int) Formula {
	return func(t int) float64 {
		return f(period - t)
	}
}

// Symmetric returns a formula that rises through f and then mirror-falls
// within one period: f(t) for t < period/2, f(period-t) otherwise.
// Combined with Loop it produces rise-and-fall waves from a one-sided
// shape.
func Symmetric(f Formula, period int) Formula {
	half := float64(period) / 2
	return func(t int) float64 {
		if float64(t) < half {
			return f(t)
		}
		return f(period - t)
	}
}
