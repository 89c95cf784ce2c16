// Package iir implements the second-order IIR section (biquad) and its
// cascade composition into higher-order filters, grounded in the
// direct-form-I variant and cascade design algorithm of the original C DSP
// library (lib/filters.c, lib/filters.t.c) this corpus descends from.
package iir

// Biquad is a second-order IIR section in the modified direct-form-I
// variant described by the original source: a single two-slot delay line
// indexed modulo 2, rather than the conventional w[n-1]/w[n-2] pair. The
// indexing is preserved exactly (see ExecuteSample) because
// the reference test fixtures were generated against it.
type Biquad struct {
	a      [3]complex64 // feedback coefficients
	b      [3]complex64 // feedforward coefficients
	buffer [2]complex64
	index  uint32
}

// NewBiquad creates a biquad with feedback coefficients a and feedforward
// coefficients b, and a zeroed delay line.
func NewBiquad(a, b [3]complex64) *Biquad {
	return &Biquad{a: a, b: b}
}

// Load replaces the filter coefficients without touching the delay line.
func (bq *Biquad) Load(a, b [3]complex64) {
	bq.a = a
	bq.b = b
}

func (bq *Biquad) push(item complex64) {
	bq.buffer[bq.index&1] = item
	bq.index++
}

// ExecuteSample runs the filter for a single input sample. d1 is read from
// buffer[(index+1)&1] (the older slot) and d2 from buffer[index&1] (the
// slot about to be overwritten); both reads happen before index advances.
// For a freshly constructed filter (index 0) d1 reads slot 1 and d2 reads
// slot 0, both still zero, which is what makes the emergent impulse
// response match the reference fixtures.
func (bq *Biquad) ExecuteSample(x complex64) complex64 {
	d1 := bq.buffer[(bq.index+1)&1]
	d2 := bq.buffer[bq.index&1]

	feedback := bq.a[0]*x - bq.a[1]*d1 - bq.a[2]*d2
	feedforward := bq.b[0]*feedback + bq.b[1]*d1 + bq.b[2]*d2

	bq.push(feedback)
	return feedforward
}

// Execute runs the filter over samples, writing to output. output and
// samples may alias (execution is strictly sequential and forward-only).
func (bq *Biquad) Execute(output, samples []complex64) {
	for i, x := range samples {
		output[i] = bq.ExecuteSample(x)
	}
}
