// Package pace implements composable, lazily evaluated parameter schedules.
//
// A Schedule maps a positive iteration index t to a float64 value and is
// used to drive time-varying parameters (learning rates, temperatures,
// exploration rates) during iterative processes such as training loops.
// Schedules compose: Sequence chains sub-schedules in time, Loop repeats a
// schedule periodically, and Iterator advances any schedule one step at a
// time.
//
// Basic usage:
//
//	warmup := pace.Lambda(func(t int) float64 { return 0.01 * float64(t) })
//	s, err := pace.NewSequence(
//	    []pace.Entry{pace.Sub(warmup), pace.Const(0.1)},
//	    []int{10, 90},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	it := pace.NewIterator(s)
//	defer it.Stop()
//	for step := 0; step < 100; step++ {
//	    lr, _ := it.Next()
//	    train(lr)
//	}
//
// Concrete decay and cyclic formula families (exponential decay, cosine
// annealing, triangular waves, ...) are supplied by extension code
// implementing the Decay or Cyclic hook interfaces; the core derives At
// from the hooks and provides the composition machinery.
package pace
