// Package polyroot implements Kaj Madsen's Newton-style polynomial root
// finder and the pole/zero sorting and pairing it feeds into the IIR
// cascade filter design. It is a direct port of the pk_polynomial_solve_*
// family from the original C DSP library this corpus descends from, kept
// in float32/complex64 because the stopping-rule constant (§ eps below)
// was tuned against single-precision arithmetic and bit-for-bit parity
// with existing test fixtures depends on that precision.
package polyroot

import (
	"fmt"
	"math"
	"math/cmplx"
)

// abs32 returns the modulus of a complex64 value as a float32.
func abs32(z complex64) float32 {
	r, i := float64(real(z)), float64(imag(z))
	return float32(math.Sqrt(r*r + i*i))
}

// polyB evaluates the polynomial a[0..n] (highest degree first) at z using
// Horner's method, returning both the value and its squared modulus.
func polyB(z complex64, a []complex64, n int) (complex64, float32) {
	fz := a[0]
	for i := 1; i <= n; i++ {
		fz = fz*z + a[i]
	}
	re, im := float64(real(fz)), float64(imag(fz))
	return fz, float32(re*re + im*im)
}

// csqrt64 takes the complex square root of a complex64 via complex128,
// since Go's math/cmplx only operates on complex128.
func csqrt64(z complex64) complex64 {
	return complex64(cmplx.Sqrt(complex128(z)))
}

// Solve finds all n roots of the degree-n polynomial a[0..n] (a[0] != 0,
// highest degree first) in place: on return a[0] is unchanged (the
// original leading coefficient) and a[1..n] holds the n roots, in an
// implementation-defined order. a must have length n+1 (or more — only
// indices 0..n are touched). Solve panics if n is 0 or a[0] is the zero
// polynomial, since both are programmer errors rather than recoverable
// numerical conditions.
func Solve(a []complex64, n int) {
	if n == 0 {
		panic("polyroot: cannot solve a degree-0 polynomial")
	}
	if a[0] == 0 {
		panic("polyroot: leading coefficient is zero")
	}

	for n > 0 && a[n] == 0 {
		n--
	}

	for n > 2 {
		a1 := make([]complex64, n)
		for i := 0; i < n; i++ {
			a1[i] = a[i] * complex(float32(n-i), 0)
		}

		r := abs32(a[n])
		min := float32(math.Exp(float64((math.Log(float64(r)) - math.Log(float64(abs32(a[0])))) / float64(n))))
		for i := 1; i < n; i++ {
			if a[i] != 0 {
				u := float32(math.Exp(float64((math.Log(float64(r)) - math.Log(float64(abs32(a[i])))) / float64(n-i))))
				if u < min {
					min = u
				}
			}
		}

		var zo complex64
		fo := abs2(a[n])
		ff := fo
		foz := a[n-1]

		var z complex64
		if a[n-1] == 0 {
			z = 1
		} else {
			z = -a[n] / a[n-1]
		}
		dz := z / complex(abs32(z), 0) * complex(min/2, 0)
		z = dz

		fz, f := polyB(z, a, n)

		ro := 2.5 * min
		eps := 4 * float32(n) * float32(n) * 4.93e-32 * fo

		var stage1 bool
		var r32 float32

		for (z+dz) != z && f > eps {
			f1z, u := polyB(z, a1, n-1)
			if u == 0 {
				dz = dz * 5 * complex(0.6, 0.8)
			} else {
				dz = fz / f1z

				v := (foz - f1z) / (zo - z)
				f2 := abs2(v)
				stage1 = (f2/u) > (u/f/4) || (f != ff)

				r32 = abs32(dz)
				if r32 > ro {
					dz = dz * complex(ro/r32, 0) * complex(0.6, 0.8)
					ro = 5 * r32
				}
			}
			zo, fo, foz = z, f, f1z

			for {
				z = zo - dz
				w := z
				fz, f = polyB(z, a, n)
				ff = f

				if stage1 {
					j := 1
					div2 := f > fo
					for j <= n {
						if div2 {
							dz *= 0.5
							w = zo - dz
						} else {
							w = w - dz
						}

						fw, fa := polyB(w, a, n)
						if fa < f {
							f, fz, z = fa, fw, w
							j++
							if div2 && j == 3 {
								dz = dz * complex(0.6, 0.8)
								z = zo - dz
								fz, f = polyB(z, a, n)
								j = n + 1
							}
						} else {
							j = n + 1
						}
					}
				}

				if r32 < 5.96046e-8*abs32(z) && f >= fo {
					z = zo
					dz *= complex(0.3, 0.4)
					if (z + dz) != z {
						continue
					}
				}
				break
			}
		}

		var v complex64
		for i := 0; i < n; i++ {
			v = v*z + a[i]
			a[i] = v
		}
		a[n] = z
		n--
	}

	switch n {
	case 1:
		a[1] = -a[1] / a[0]
	case 2:
		if a[1] == 0 {
			a[1] = -csqrt64(-a[2] / a[0])
			a[2] = -a[1]
		} else {
			v := csqrt64(1 - 4*a[0]*a[2]/(a[1]*a[1]))
			if real(v) < 0 {
				a[1] = (-1 - v) * a[1] / (2 * a[0])
			} else {
				a[1] = (-1 + v) * a[1] / (2 * a[0])
			}
			a[2] = a[2] / (a[0] * a[1])
		}
	default:
		panic(fmt.Sprintf("polyroot: unexpected residual degree %d", n))
	}
}

func abs2(z complex64) float32 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
