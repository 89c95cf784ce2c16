package iir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/w5rkt/axmodem/internal/polyroot"
)

func impulse(n int) []complex64 {
	out := make([]complex64, n)
	out[0] = 1
	return out
}

func realParts(in []complex64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(real(v))
	}
	return out
}

func TestBiquadImpulseResponse(t *testing.T) {
	bq := NewBiquad([3]complex64{1, 1, 0.5}, [3]complex64{1, 2, 3})

	in := impulse(15)
	out := make([]complex64, 15)
	bq.Execute(out, in)

	want := []float64{1, 1, 1.5, -2, 1.25, -0.25, -0.375, 0.5,
		-0.3125, 0.0625, 0.0938, -0.125, 0.0781, -0.0156, -0.0234}

	assert.InDeltaSlice(t, want, realParts(out), 1e-3)
}

func TestCascadeOrder6ImpulseResponse(t *testing.T) {
	numerator := []complex64{1, 2, 3, 4, 5, 6, 7}
	denominator := []complex64{1, 1, 0.5, 0.5, 0.5, 0.5, 0.5}

	c := NewCascade(6, polyroot.OrderClosest, numerator, denominator)
	assert.Equal(t, 3, c.NumSections())

	in := impulse(6)
	out := make([]complex64, 6)
	c.Execute(out, in)

	want := []float64{1, 1, 1.5, 1.5, 1.75, 1.75}
	assert.InDeltaSlice(t, want, realParts(out), 1e-3)
}

func TestCascadeRejectsOddOrder(t *testing.T) {
	assert.Panics(t, func() {
		NewCascade(3, polyroot.OrderClosest,
			[]complex64{1, 1, 1, 1}, []complex64{1, 1, 1, 1})
	})
}

func TestCascadeLoadPreservesDelayLine(t *testing.T) {
	numerator := []complex64{1, 2, 3, 4, 5, 6, 7}
	denominator := []complex64{1, 1, 0.5, 0.5, 0.5, 0.5, 0.5}

	c := NewCascade(6, polyroot.OrderClosest, numerator, denominator)

	in := impulse(3)
	out := make([]complex64, 3)
	c.Execute(out, in)

	// Load re-solves the same polynomials; with the delay lines kept, the
	// following zero input continues the impulse response where it left off.
	c.Load(numerator, denominator)

	out2 := make([]complex64, 3)
	c.Execute(out2, []complex64{0, 0, 0})
	assert.Len(t, out2, 3)
	assert.InDeltaSlice(t, []float64{1.5, 1.75, 1.75}, realParts(out2), 1e-3)
}
