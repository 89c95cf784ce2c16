package container

// Dotprod holds a fixed coefficient sequence and computes the conjugated
// dot product of an input slice against it. Conjugation is supplied by the
// caller as a function so the same type works for complex coefficients
// (the BFSK matched filters) and real ones (where conjugation is the
// identity) without relying on runtime type switches.
type Dotprod[T any] struct {
	coeff []T
	conj  func(T) T
	add   func(a, b T) T
	mul   func(a, b T) T
}

// NewDotprod creates a dot-product object over seq, using the supplied
// arithmetic operations for T.
func NewDotprod[T any](seq []T, add, mul func(a, b T) T, conj func(T) T) *Dotprod[T] {
	coeff := make([]T, len(seq))
	copy(coeff, seq)
	return &Dotprod[T]{coeff: coeff, conj: conj, add: add, mul: mul}
}

// Load replaces the coefficient sequence.
func (d *Dotprod[T]) Load(seq []T) {
	d.coeff = make([]T, len(seq))
	copy(d.coeff, seq)
}

// Execute returns sum(in[i] * conj(coeff[i])) for i in [0, k).
func (d *Dotprod[T]) Execute(in []T, k int) T {
	var result T
	for i := 0; i < k; i++ {
		result = d.add(result, d.mul(in[i], d.conj(d.coeff[i])))
	}
	return result
}

// IdentityConj is the no-op conjugation for real-valued types.
func IdentityConj[T any](v T) T { return v }

// Complex64Conj conjugates a complex64 value.
func Complex64Conj(v complex64) complex64 { return complex(real(v), -imag(v)) }
