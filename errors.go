package pace

import "errors"

// Sentinel errors for the pace package.
// Use errors.Is to check: errors.Is(err, pace.ErrLengthMismatch)
var (
	ErrLengthMismatch    = errors.New("pace: entries and steps differ in length")
	ErrEmptySequence     = errors.New("pace: sequence needs at least one entry")
	ErrNonPositiveStep   = errors.New("pace: step sizes must be positive")
	ErrNonPositivePeriod = errors.New("pace: loop period must be positive")
	ErrNonPositiveRate   = errors.New("pace: interpolation rate must be positive")
)
