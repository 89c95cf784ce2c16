package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRingCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	r := NewRing[int](5)
	assert.Equal(t, uint32(8), r.Cap())

	r2 := NewRing[int](8)
	assert.Equal(t, uint32(8), r2.Cap())
}

func TestRingUnderfilledReadsLeadingZeros(t *testing.T) {
	r := NewRing[int](4)
	r.Push(1)
	r.Push(2)

	out := make([]int, 4)
	r.Read(out, 4)
	assert.Equal(t, []int{0, 0, 1, 2}, out)
}

func TestRingFullWindowOrdering(t *testing.T) {
	r := NewRing[int](4)
	for i := 1; i <= 6; i++ {
		r.Push(i)
	}

	out := make([]int, 4)
	r.Read(out, 4)
	assert.Equal(t, []int{3, 4, 5, 6}, out)
}

func TestRingPopEmptyPanics(t *testing.T) {
	r := NewRing[int](4)
	assert.Panics(t, func() { r.Pop() })
}

func TestRingPopReturnsMostRecentPush(t *testing.T) {
	r := NewRing[int](4)
	r.Push(10)
	r.Push(20)
	assert.Equal(t, 20, r.Pop())
	assert.Equal(t, 10, r.Pop())
	assert.Panics(t, func() { r.Pop() })
}

func TestRingRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 64).Draw(t, "n")
		items := rapid.SliceOfN(rapid.Int(), n, n).Draw(t, "items")

		r := NewRing[int](uint32(n))
		for _, it := range items {
			r.Push(it)
		}

		out := make([]int, n)
		r.Read(out, uint32(n))

		// reading the requested window size returns the pushed sequence,
		// oldest first.
		require.Equal(t, items, out)
	})
}

func TestBlockGrowsAndPreservesOrder(t *testing.T) {
	b := NewBlock[int](2)
	for i := 0; i < 10; i++ {
		b.Push(i)
	}

	assert.Equal(t, 10, b.Nitems())
	assert.GreaterOrEqual(t, b.Size(), 10)

	got := b.Ptr()
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, got[i])
	}
}

func TestBlockClearResetsCountOnly(t *testing.T) {
	b := NewBlock[int](4)
	b.Push(1)
	b.Push(2)
	sizeBefore := b.Size()

	b.Clear()
	assert.Equal(t, 0, b.Nitems())
	assert.Equal(t, sizeBefore, b.Size())
}

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[string]()
	q.Insert("a")
	q.Insert("b")
	q.Insert("c")

	require.Equal(t, 3, q.Nitems())

	out := make([]string, 3)
	q.Read(out, 3)
	assert.Equal(t, []string{"a", "b", "c"}, out)

	q.Dequeue()
	assert.Equal(t, 2, q.Nitems())

	q.Clear()
	assert.Equal(t, 0, q.Nitems())
}

func TestDotprodRealNoopConjugation(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }
	mul := func(a, b float64) float64 { return a * b }

	dp := NewDotprod[float64]([]float64{1, 2, 3, 4}, add, mul, IdentityConj[float64])
	got := dp.Execute([]float64{1, 1, 0, 0}, 4)
	assert.InDelta(t, 3.0, got, 1e-9)
}

func TestDotprodComplexConjugation(t *testing.T) {
	add := func(a, b complex64) complex64 { return a + b }
	mul := func(a, b complex64) complex64 { return a * b }

	dp := NewDotprod[complex64]([]complex64{complex(0, 1)}, add, mul, Complex64Conj)
	got := dp.Execute([]complex64{1}, 1)
	// 1 * conj(i) = 1 * -i = -i
	assert.InDelta(t, 0.0, real(got), 1e-6)
	assert.InDelta(t, -1.0, imag(got), 1e-6)
}
