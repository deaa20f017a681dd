package pace

import (
	"errors"
	"testing"
)

func TestShiftOffsetsClock(t *testing.T) {
	s := Shift(Lambda(identity), 10)
	for step := 1; step <= 5; step++ {
		assertFloat(t, "At", s.At(step), float64(step+10))
	}
}

func TestShiftZeroIsIdentity(t *testing.T) {
	base := NewDecay(expDecay{base: 1.0, gamma: 0.5})
	s := Shift(base, 0)
	for step := 1; step <= 10; step++ {
		assertFloat(t, "At", s.At(step), base.At(step))
	}
}

func TestShiftSize(t *testing.T) {
	if got := Shift(finiteRamp{n: 10}, 4).Size(); got != ExactSize(6) {
		t.Errorf("Size() = %+v, want Exact(6)", got)
	}
	if got := Shift(finiteRamp{n: 3}, 7).Size(); got != ExactSize(0) {
		t.Errorf("Size() = %+v, want Exact(0)", got)
	}
	if got := Shift(Lambda(identity), 4).Size(); got.Kind != Unknown {
		t.Errorf("Size().Kind = %v, want Unknown", got.Kind)
	}
}

func TestNewInterpolatorNonPositiveRate(t *testing.T) {
	for _, bad := range []float64{0, -1.5} {
		_, err := NewInterpolator(Lambda(identity), bad)
		if !errors.Is(err, ErrNonPositiveRate) {
			t.Errorf("rate %g: err = %v, want ErrNonPositiveRate", bad, err)
		}
	}
}

func TestInterpolatorStretch(t *testing.T) {
	// rate=2: each underlying index is held for two steps.
	in, err := NewInterpolator(Lambda(identity), 2)
	if err != nil {
		t.Fatalf("NewInterpolator: %v", err)
	}
	want := []float64{1, 1, 2, 2, 3, 3}
	for i, w := range want {
		assertFloat(t, "At", in.At(i+1), w)
	}
}

func TestInterpolatorCompress(t *testing.T) {
	// rate=0.5: every step advances the underlying clock by two.
	in, err := NewInterpolator(Lambda(identity), 0.5)
	if err != nil {
		t.Fatalf("NewInterpolator: %v", err)
	}
	want := []float64{2, 4, 6, 8}
	for i, w := range want {
		assertFloat(t, "At", in.At(i+1), w)
	}
}

func TestInterpolatorSize(t *testing.T) {
	in, err := NewInterpolator(finiteRamp{n: 5}, 2)
	if err != nil {
		t.Fatalf("NewInterpolator: %v", err)
	}
	if got := in.Size(); got != ExactSize(10) {
		t.Errorf("Size() = %+v, want Exact(10)", got)
	}

	in2, err := NewInterpolator(Lambda(identity), 2)
	if err != nil {
		t.Fatalf("NewInterpolator: %v", err)
	}
	if got := in2.Size(); got.Kind != Unknown {
		t.Errorf("Size().Kind = %v, want Unknown", got.Kind)
	}
}
