package bfsk

import (
	"math"

	"github.com/w5rkt/axmodem/internal/container"
)

// Demodulator performs non-coherent matched-filter symbol detection with
// NRZI decode and bit-timing recovery, matching pk_bfskdemod in the
// original C source.
type Demodulator struct {
	sampSym int

	markFilt  []complex64
	spaceFilt []complex64

	window *container.Ring[complex64]
	data   *container.Block[byte]

	timer int
	past  bool
	diff  bool
}

// NewDemodulator creates a demodulator for the same (sampSym, baud,
// markFreq, spaceFreq) configuration the transmitting Modulator uses.
func NewDemodulator(sampSym, baud int, markFreq, spaceFreq float32) *Demodulator {
	d := &Demodulator{
		sampSym:   sampSym,
		markFilt:  make([]complex64, sampSym),
		spaceFilt: make([]complex64, sampSym),
		window:    container.NewRing[complex64](uint32(sampSym)),
		data:      container.NewBlock[byte](1024),
	}

	sampRate := float32(sampSym * baud)
	markInc := twoPi32 * markFreq / sampRate
	spaceInc := twoPi32 * spaceFreq / sampRate

	var mphase, sphase float32
	for i := 0; i < sampSym; i++ {
		mphase += markInc
		sphase += spaceInc
		for mphase > twoPi32 {
			mphase -= twoPi32
		}
		for sphase > twoPi32 {
			sphase -= twoPi32
		}
		d.markFilt[i] = complex64(complexExp(-mphase))
		d.spaceFilt[i] = complex64(complexExp(-sphase))
	}

	return d
}

// executeSymbol correlates the current window against both matched
// filters and returns the symbol polarity: true if mark energy dominates.
func (d *Demodulator) executeSymbol(samples []complex64) bool {
	var mark, space complex64
	for i := 0; i < d.sampSym; i++ {
		mark += samples[i] * d.markFilt[i]
		space += samples[i] * d.spaceFilt[i]
	}
	return complexAbs(mark) > complexAbs(space)
}

func complexAbs(z complex64) float32 {
	re, im := float64(real(z)), float64(imag(z))
	return float32(math.Sqrt(re*re + im*im))
}

// Process consumes a batch of complex baseband samples, pushing them
// through the demodulator's timing-recovery state machine. Decoded bits
// accumulate in the output block, which is cleared at the start of every
// call — callers must Read() before the next Process().
func (d *Demodulator) Process(input []complex64) {
	d.data.Clear()

	window := make([]complex64, d.sampSym)
	for _, sample := range input {
		d.timer++

		d.window.Push(sample)
		d.window.Read(window, uint32(d.sampSym))

		symbol := d.executeSymbol(window)

		if symbol != d.past {
			d.diff = true
			d.past = symbol
			d.timer = d.sampSym/2 + d.sampSym + 1
		}

		if d.timer >= 2*d.sampSym {
			var bit byte
			if !d.diff {
				bit = 1
			}
			d.data.Push(bit)
			d.timer = d.sampSym
			d.diff = false
		}
	}
}

// Read returns the decoded bits accumulated since the last Process call.
func (d *Demodulator) Read() []byte {
	return d.data.Ptr()
}
