package polyroot

import (
	"fmt"
	"sort"
)

// CascadeOrder selects how SortPoles orders roots relative to the unit
// circle. It replaces the original C code's bare 0/1 integer parameter
// with an explicit two-variant sum type, per the design note that the
// cascade ordering parameter should reject any value outside the two it
// understands.
type CascadeOrder int

const (
	// OrderClosest sorts roots closest to the unit circle first.
	OrderClosest CascadeOrder = 0
	// OrderFarthest sorts roots farthest from the unit circle first.
	OrderFarthest CascadeOrder = 1
)

func (o CascadeOrder) String() string {
	switch o {
	case OrderClosest:
		return "closest"
	case OrderFarthest:
		return "farthest"
	default:
		return fmt.Sprintf("CascadeOrder(%d)", int(o))
	}
}

func unitCircleDistance(z complex64) float32 {
	d := abs32(z) - 1
	if d < 0 {
		return -d
	}
	return d
}

// SortPoles sorts b[1..n] (roots produced by Solve) by their distance to
// the unit circle, ascending for OrderClosest and descending for
// OrderFarthest. It panics on any other CascadeOrder value — an unknown
// ordering is a programmer error, not a recoverable condition.
func SortPoles(b []complex64, order CascadeOrder, n int) {
	if order != OrderClosest && order != OrderFarthest {
		panic(fmt.Sprintf("polyroot: unknown cascade order %d", int(order)))
	}

	roots := b[1 : n+1]
	sort.SliceStable(roots, func(i, j int) bool {
		di, dj := unitCircleDistance(roots[i]), unitCircleDistance(roots[j])
		if order == OrderClosest {
			return di < dj
		}
		return di > dj
	})
}

// PairZerosToPoles greedily reorders a[1..n] (zeros) in place so that, for
// each pole b[i] in turn (i = 1..n-1), the nearest remaining zero (by
// Euclidean distance) ends up at position i. After the sweep, position i
// of a holds a zero paired with pole b[i] — position n is whatever zero is
// left over, automatically paired with pole b[n].
func PairZerosToPoles(a, b []complex64, n int) {
	for i := 1; i < n; i++ {
		best := i
		bestDist := complexDist(a[i], b[i])
		for j := i + 1; j <= n; j++ {
			d := complexDist(a[j], b[i])
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		a[i], a[best] = a[best], a[i]
	}
}

func complexDist(a, b complex64) float32 {
	return abs32(a - b)
}
