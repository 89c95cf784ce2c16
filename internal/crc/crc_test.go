package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAX25FramePasses(t *testing.T) {
	payload := []byte{0xff, 0xff, 0x1f, 0xf0, 0xff, 0xbf, 0xef, 0x00,
		0xff, 0xff, 0xff, 0xff, 0x00, 0x01, 0x23, 0x88}

	fcs := FCS(payload)
	frame := append(append([]byte{}, payload...), fcs[0], fcs[1])

	assert.True(t, Valid(frame))
}

func TestAX25FrameRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "payload")
		fcs := FCS(payload)
		frame := append(append([]byte{}, payload...), fcs[0], fcs[1])
		assert.True(t, Valid(frame))
	})
}

func TestAX25CorruptedFrameFailsMagic(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	fcs := FCS(payload)
	frame := append(append([]byte{}, payload...), fcs[0], fcs[1]^0xff)

	assert.False(t, Valid(frame))
}
