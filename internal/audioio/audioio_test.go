package audioio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMixDownDCInputProducesUnitCircleSamples(t *testing.T) {
	in := make([]float32, 8)
	for i := range in {
		in[i] = 1
	}
	out := make([]complex64, len(in))

	phase := mixDown(out, in, 0, math.Pi/4)

	for _, sample := range out {
		mag := math.Hypot(float64(real(sample)), float64(imag(sample)))
		assert.InDelta(t, 1.0, mag, 1e-5)
	}
	assert.GreaterOrEqual(t, phase, 0.0)
	assert.Less(t, phase, 2*math.Pi)
}

func TestMixDownZeroInputProducesZeroOutput(t *testing.T) {
	in := make([]float32, 4)
	out := make([]complex64, 4)

	mixDown(out, in, 0, 1)

	for _, sample := range out {
		assert.Equal(t, complex64(0), sample)
	}
}
