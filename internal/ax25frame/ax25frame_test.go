package ax25frame

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramerDeframerCRCValidFrame(t *testing.T) {
	payload := []byte{0xff, 0xff, 0x1f, 0xf0, 0xff, 0xbf, 0xef, 0x00,
		0xff, 0xff, 0xff, 0xff, 0x00, 0x01, 0x23, 0x88}

	framer := NewFramer(0)
	framer.Process(payload)
	bits := framer.Read()

	var calls int
	var gotValid bool
	var gotFrame []byte

	deframer := NewDeframer(func(valid bool, frame []byte) {
		calls++
		gotValid = valid
		gotFrame = append([]byte{}, frame...)
	})
	deframer.Process(bits)

	require.Equal(t, 1, calls)
	assert.True(t, gotValid)
	assert.Equal(t, payload, gotFrame[:len(payload)])
}

func TestFramerStuffingStressFrame(t *testing.T) {
	payload := make([]byte, 16)
	for i := range payload {
		payload[i] = 0xff
	}

	framer := NewFramer(0)
	framer.Process(payload)
	bits := framer.Read()

	// Check no run of 6 consecutive 1-bits appears outside the two
	// 8-bit flag sequences at the very start and end.
	flagLen := 8
	body := bits[flagLen : len(bits)-flagLen]

	run := 0
	for _, bit := range body {
		if bit&1 != 0 {
			run++
			assert.LessOrEqual(t, run, 5)
		} else {
			run = 0
		}
	}

	var calls int
	var gotValid bool
	deframer := NewDeframer(func(valid bool, frame []byte) {
		calls++
		gotValid = valid
	})
	deframer.Process(bits)

	require.Equal(t, 1, calls)
	assert.True(t, gotValid)
}

func TestFramerDeframerRoundTripRandomPayloads(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	framer := NewFramer(0)
	for trial := 0; trial < 20; trial++ {
		size := 2 + r.Intn(30)
		payload := make([]byte, size)
		r.Read(payload)

		framer.Process(payload)
		bits := framer.Read()

		var calls int
		var gotValid bool
		var gotFrame []byte
		deframer := NewDeframer(func(valid bool, frame []byte) {
			calls++
			gotValid = valid
			gotFrame = append([]byte{}, frame...)
		})
		deframer.Process(bits)

		require.Equal(t, 1, calls)
		assert.True(t, gotValid)
		assert.Equal(t, payload, gotFrame[:len(payload)])
	}
}

func TestDeframerOversizedFrameDropsSilentlyThenRecovers(t *testing.T) {
	var calls int
	var lastValid bool

	deframer := NewDeframer(func(valid bool, frame []byte) {
		calls++
		lastValid = valid
	})

	opening := make([]byte, 8)
	copy(opening, flagBits())
	deframer.Process(opening)

	overflow := make([]byte, 8*MaxFrameBytes+16)
	for i := range overflow {
		overflow[i] = 1
	}
	deframer.Process(overflow)

	assert.Equal(t, 0, calls)

	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11}
	framer := NewFramer(0)
	framer.Process(payload)
	deframer.Process(framer.Read())

	require.Equal(t, 1, calls)
	assert.True(t, lastValid)
}

func flagBits() []byte {
	bits := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bits[i] = byte(Flag>>uint(i)) & 1
	}
	return bits
}
