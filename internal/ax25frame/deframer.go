package ax25frame

import (
	"github.com/w5rkt/axmodem/internal/bitpack"
	"github.com/w5rkt/axmodem/internal/container"
	"github.com/w5rkt/axmodem/internal/crc"
)

type deframerState int

const (
	stateDetect deframerState = iota
	stateDecode
)

// FrameCallback receives one deframed, unstuffed frame (payload followed by
// its two FCS bytes) and whether its CRC checked out.
type FrameCallback func(valid bool, frame []byte)

// Deframer recovers HDLC frames from a raw 0/1 bit stream: it watches for
// flag sync, accumulates the bits between flags, removes stuffed zero bits,
// and packs the result back into bytes for CRC verification.
type Deframer struct {
	state deframerState
	count int

	callback FrameCallback

	data   *container.Block[byte]
	packed *container.Block[byte]
	window *container.Ring[byte]
	buffer *container.Ring[byte]
}

// NewDeframer creates a deframer that invokes callback once per detected
// frame (valid or not — the caller decides what to do with invalid ones).
func NewDeframer(callback FrameCallback) *Deframer {
	return &Deframer{
		callback: callback,
		data:     container.NewBlock[byte](8 * MaxFrameBytes),
		packed:   container.NewBlock[byte](MaxFrameBytes),
		window:   container.NewRing[byte](8),
		buffer:   container.NewRing[byte](8),
	}
}

// unstuffBits removes the bit-stuffed zero bits inserted after every run of
// five consecutive 1-bits in d.data and packs the remaining bits back into
// bytes, LSB first, into d.packed. The final 7 bits of d.data are always
// the leading bits of the closing flag and are excluded from the walk.
func (d *Deframer) unstuffBits() {
	d.packed.Clear()
	d.buffer.Clear()

	data := d.data.Ptr()
	// The trailing 7 bits of data are always the leading bits of the
	// closing flag, captured incidentally before the window matched it.
	size := len(data) - 7

	count := 0
	ones := 0

	for i := 0; i < size; i++ {
		if ones < 5 {
			d.buffer.Push(data[i])
			count++
		}

		if data[i]&1 != 0 {
			ones++
		} else {
			ones = 0
		}

		if count == 8 {
			var input [8]byte
			d.buffer.Read(input[:], 8)
			d.packed.Push(bitpack.PackRL(input))
			count = 0
		}
	}
}

// Process feeds a batch of raw 0/1 bits through the detect/decode state
// machine, invoking the callback for every frame found between two flags
// that meets the minimum size.
func (d *Deframer) Process(bits []byte) {
	var window [8]byte

	for _, bit := range bits {
		d.window.Push(bit)
		d.window.Read(window[:], 8)
		b := bitpack.PackRL(window)

		switch d.state {
		case stateDetect:
			if b == Flag {
				d.state = stateDecode
				d.count = 0
				d.window.Clear()
			}

		case stateDecode:
			switch {
			case d.count > 8*MaxFrameBytes:
				d.state = stateDetect
				d.data.Clear()
				d.packed.Clear()

			case b == Flag:
				d.state = stateDetect

				if d.count > MinFrameBytes {
					d.unstuffBits()

					frame := d.packed.Ptr()
					valid := crc.Valid(frame)
					d.callback(valid, frame)
				}

				d.data.Clear()
				d.packed.Clear()

			default:
				d.data.Push(bit)
				d.count++
			}
		}
	}
}
