package iir

import (
	"fmt"

	"github.com/w5rkt/axmodem/internal/polyroot"
)

// Cascade is a higher-order IIR filter realized as a chain of second-order
// sections. The caller supplies direct-form numerator and denominator
// polynomials (degree = order, not prefactored); Cascade finds their roots
// with Madsen's method, orders the poles relative to the unit circle, pairs
// each pole with its nearest remaining zero, and builds one Biquad per
// pole/zero pair.
type Cascade struct {
	order int
	nsos  int
	how   polyroot.CascadeOrder

	numerator   []complex64
	denominator []complex64

	sections []*Biquad
}

// NewCascade creates a cascade of order/2 biquads. order must be even and
// at least 2; numerator and denominator must each have order+1 entries,
// highest degree first. how selects whether SortPoles orders poles closest
// or farthest from the unit circle first.
func NewCascade(order int, how polyroot.CascadeOrder, numerator, denominator []complex64) *Cascade {
	if order%2 != 0 || order < 2 {
		panic(fmt.Sprintf("iir: cascade order must be even and >= 2, got %d", order))
	}
	if len(numerator) < order+1 || len(denominator) < order+1 {
		panic("iir: numerator/denominator must have order+1 coefficients")
	}

	c := &Cascade{
		order:       order,
		nsos:        order / 2,
		how:         how,
		numerator:   append([]complex64{}, numerator[:order+1]...),
		denominator: append([]complex64{}, denominator[:order+1]...),
		sections:    make([]*Biquad, order/2),
	}

	as, bs := c.solveSections()
	for i := range c.sections {
		c.sections[i] = NewBiquad(as[i], bs[i])
	}

	return c
}

// Load replaces the cascade's numerator/denominator polynomials, re-solves
// for poles/zeros, and reloads each section's coefficients in place — the
// delay lines are left untouched, matching Biquad.Load's contract.
func (c *Cascade) Load(numerator, denominator []complex64) {
	copy(c.numerator, numerator[:c.order+1])
	copy(c.denominator, denominator[:c.order+1])

	as, bs := c.solveSections()
	for i, sec := range c.sections {
		sec.Load(as[i], bs[i])
	}
}

// solveSections finds the roots of the numerator (zeros) and denominator
// (poles), orders the poles, pairs zeros to poles, and returns the
// per-section direct-form-I coefficient triples: as[i] (denominator, built
// from the pole pair) and bs[i] (numerator, built from the zero pair).
func (c *Cascade) solveSections() (as, bs [][3]complex64) {
	zeros := append([]complex64{}, c.numerator...)
	poles := append([]complex64{}, c.denominator...)

	polyroot.Solve(zeros, c.order)
	polyroot.Solve(poles, c.order)

	polyroot.SortPoles(poles, c.how, c.order)
	polyroot.PairZerosToPoles(zeros, poles, c.order)

	as = make([][3]complex64, c.nsos)
	bs = make([][3]complex64, c.nsos)

	for i := 0; i < c.nsos; i++ {
		p1, p2 := poles[2*i+1], poles[2*i+2]
		z1, z2 := zeros[2*i+1], zeros[2*i+2]

		as[i] = [3]complex64{1, -(p1 + p2), p1 * p2}
		bs[i] = [3]complex64{1, -(z1 + z2), z1 * z2}
	}

	return as, bs
}

// Execute runs the cascade: section 0 consumes samples, and each
// subsequent section consumes the previous section's output.
func (c *Cascade) Execute(output, samples []complex64) {
	c.sections[0].Execute(output, samples)
	for i := 1; i < c.nsos; i++ {
		c.sections[i].Execute(output, output)
	}
}

// NumSections returns the number of biquad sections in the cascade.
func (c *Cascade) NumSections() int {
	return c.nsos
}
