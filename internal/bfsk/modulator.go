// Package bfsk implements a continuous-phase binary FSK modulator and a
// matched-filter non-coherent demodulator with NRZI differential coding,
// the way the original C DSP library's pk_bfskmod/pk_bfskdemod objects do
// for amateur packet radio modems like AFSK 1200.
package bfsk

import "math"

const twoPi = 2 * math.Pi

// Modulator turns an NRZI-encoded bit stream into continuous-phase
// complex baseband samples. A 0 bit causes a tone transition (mark <->
// space); a 1 bit keeps the current tone — the NRZI convention AX.25 uses
// on the air.
type Modulator struct {
	sampSym int
	past    bool // current NRZI polarity; true selects the mark tone

	phase    float32
	phaseInc float32

	markInc  float32
	spaceInc float32
}

// NewModulator creates a modulator. sampSym is samples per symbol, baud is
// the symbol rate, and markFreq/spaceFreq are the mark (binary 1) and
// space (binary 0) tone frequencies in Hz. The effective sample rate is
// sampSym*baud.
func NewModulator(sampSym, baud int, markFreq, spaceFreq float32) *Modulator {
	sampRate := float32(sampSym * baud)
	return &Modulator{
		sampSym:  sampSym,
		markInc:  twoPi32 * markFreq / sampRate,
		spaceInc: twoPi32 * spaceFreq / sampRate,
	}
}

var twoPi32 = float32(twoPi)

// ExecuteSymbol NRZI-encodes bit and writes one symbol's worth of complex
// baseband samples (len(sym) must be >= samp_sym) to sym, continuing the
// modulator's running phase.
func (m *Modulator) ExecuteSymbol(sym []complex64, bit byte) {
	if bit == 0 {
		m.past = !m.past
	}
	if m.past {
		m.phaseInc = m.markInc
	} else {
		m.phaseInc = m.spaceInc
	}

	for i := 0; i < m.sampSym; i++ {
		m.phase += m.phaseInc
		for m.phase > twoPi32 {
			m.phase -= twoPi32
		}
		sym[i] = complex64(complexExp(m.phase))
	}
}

// Process NRZI-encodes and modulates a batch of bits, writing
// len(input)*samp_sym contiguous samples to output.
func (m *Modulator) Process(output []complex64, input []byte) {
	for i, bit := range input {
		m.ExecuteSymbol(output[i*m.sampSym:(i+1)*m.sampSym], bit)
	}
}

// complexExp returns e^(i*phase) as a complex128 unit vector.
func complexExp(phase float32) complex128 {
	s, c := math.Sincos(float64(phase))
	return complex(c, s)
}
