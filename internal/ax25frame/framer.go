// Package ax25frame implements AX.25 HDLC-style link-layer framing: flag
// sync, bit-stuffing, and FCS insertion/verification on top of the raw bit
// streams the BFSK modem moves, grounded in pk_ax25_framer/pk_ax25_deframer
// from the original C DSP library (lib/framers.c).
package ax25frame

import (
	"github.com/w5rkt/axmodem/internal/bitpack"
	"github.com/w5rkt/axmodem/internal/container"
	"github.com/w5rkt/axmodem/internal/crc"
)

const (
	// Flag is the HDLC flag sequence that opens and closes every frame.
	Flag = 0x7e

	// MinFrameBytes is compared against the number of raw (still
	// bit-stuffed) bits between flags: a frame must carry more than this
	// many bits to be considered for deframing.
	MinFrameBytes = 17

	// MaxFrameBytes is the largest payload+FCS a frame may carry; frames
	// exceeding this between flags are dropped without a callback.
	MaxFrameBytes = 412
)

// Framer turns a complete frame payload (information field, already
// including any addressing/control octets the caller wants on the wire)
// into a bit-stuffed HDLC bit stream bracketed by flags and padding.
type Framer struct {
	padding int
	count   int
	frame   *container.Block[byte]
}

// NewFramer creates a framer that emits padding zero-bits before the
// opening flag and after the closing flag — useful for letting a
// receiver's modem settle before/after the frame's energy.
func NewFramer(padding int) *Framer {
	return &Framer{
		padding: padding,
		frame:   container.NewBlock[byte](8 * MaxFrameBytes),
	}
}

func (f *Framer) insertPad() {
	for i := 0; i < f.padding; i++ {
		f.frame.Push(0)
	}
}

func (f *Framer) insertFlag() {
	for i := 0; i < 8; i++ {
		f.frame.Push(byte(Flag>>uint(i)) & 1)
	}
}

func (f *Framer) pushBit(bit byte) {
	f.frame.Push(bit)
	if bit&1 != 0 {
		f.count++
	} else {
		f.count = 0
	}

	// bit stuff after five consecutive 1-bits so the flag pattern never
	// appears inside the frame body.
	if f.count == 5 {
		f.frame.Push(0)
		f.count = 0
	}
}

// Process builds a framed, bit-stuffed bit stream for payload (which
// should already include any AX.25 address/control/PID octets) and its
// computed FCS. Call Read to retrieve the result.
func (f *Framer) Process(payload []byte) {
	f.frame.Clear()
	f.count = 0

	fcs := crc.FCS(payload)

	f.insertPad()
	f.insertFlag()

	for _, b := range payload {
		bits := bitpack.UnpackRL(b)
		for _, bit := range bits {
			f.pushBit(bit)
		}
	}
	for _, b := range fcs {
		bits := bitpack.UnpackRL(b)
		for _, bit := range bits {
			f.pushBit(bit)
		}
	}

	f.insertFlag()
	f.insertPad()
}

// Read returns the bit stream built by the last Process call, one 0/1
// byte per bit.
func (f *Framer) Read() []byte {
	return f.frame.Ptr()
}
