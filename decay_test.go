package pace

import (
	"math"
	"testing"
)

func TestDecayDerivedFormula(t *testing.T) {
	d := expDecay{base: 0.1, gamma: 0.5}
	s := NewDecay(d)

	// At(t) == BaseValue() * DecayAt(t) for every t.
	for step := 1; step <= 50; step++ {
		want := d.BaseValue() * d.DecayAt(step)
		assertFloat(t, "At", s.At(step), want)
	}
}

func TestDecayKnownValues(t *testing.T) {
	s := NewDecay(expDecay{base: 1.0, gamma: 0.5})

	tests := []struct {
		t    int
		want float64
	}{
		{1, 1.0},
		{2, 0.5},
		{3, 0.25},
		{4, 0.125},
		{11, math.Pow(0.5, 10)},
	}
	for _, tt := range tests {
		assertFloat(t, "At", s.At(tt.t), tt.want)
	}
}

func TestDecaySize(t *testing.T) {
	s := NewDecay(expDecay{base: 1.0, gamma: 0.5})
	if s.Size().Kind != Unknown {
		t.Errorf("Size().Kind = %v, want Unknown", s.Size().Kind)
	}
}
