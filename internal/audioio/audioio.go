// Package audioio streams complex64 baseband samples to and from a real
// sound card for the BFSK modem, wrapping github.com/gordonklaus/portaudio
// the way the teacher's audio_open/PortAudio-style callback loop wraps its
// OS sound API — reimplemented here without cgo, since PortAudio is the
// library this corpus's audio code actually pulls in.
package audioio

import (
	"fmt"
	"math"

	"github.com/gordonklaus/portaudio"
)

// Stream is a duplex mono audio stream with the quadrature mixer needed
// to move between real sound-card samples and the complex64 baseband the
// BFSK modem operates on.
type Stream struct {
	pa *portaudio.Stream

	sampleRate float64
	mixerPhase float64
	mixerInc   float64

	in  []float32
	out []float32
}

// Open starts a duplex stream at sampleRate with the given buffer size
// (in frames). centerFreq is the quadrature mixer's local-oscillator
// frequency used to translate the real input signal to complex baseband
// on Read.
func Open(sampleRate float64, framesPerBuffer int, centerFreq float64) (*Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audioio: initialize: %w", err)
	}

	s := &Stream{
		sampleRate: sampleRate,
		mixerInc:   2 * math.Pi * centerFreq / sampleRate,
		in:         make([]float32, framesPerBuffer),
		out:        make([]float32, framesPerBuffer),
	}

	pa, err := portaudio.OpenDefaultStream(1, 1, sampleRate, framesPerBuffer, s.in, s.out)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audioio: open default stream: %w", err)
	}
	s.pa = pa

	if err := s.pa.Start(); err != nil {
		s.pa.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audioio: start stream: %w", err)
	}

	return s, nil
}

// Read blocks for one buffer's worth of audio and mixes it down to
// complex64 baseband samples, writing len(s.in) samples into output.
func (s *Stream) Read(output []complex64) error {
	if err := s.pa.Read(); err != nil {
		return fmt.Errorf("audioio: read: %w", err)
	}

	s.mixerPhase = mixDown(output, s.in, s.mixerPhase, s.mixerInc)

	return nil
}

// mixDown multiplies each real sample in in by a complex local oscillator
// starting at phase and advancing by inc per sample, writing the result
// into out, and returns the oscillator's phase after the last sample.
func mixDown(out []complex64, in []float32, phase, inc float64) float64 {
	for i, sample := range in {
		re := float64(sample) * math.Cos(phase)
		im := -float64(sample) * math.Sin(phase)
		out[i] = complex(float32(re), float32(im))

		phase += inc
		for phase >= 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
	return phase
}

// Write projects complex64 samples to real audio by taking the real part
// and writes them to the output stream.
func (s *Stream) Write(samples []complex64) error {
	for i, sample := range samples {
		s.out[i] = real(sample)
	}
	if err := s.pa.Write(); err != nil {
		return fmt.Errorf("audioio: write: %w", err)
	}
	return nil
}

// BufferSize returns the number of frames read/written per call.
func (s *Stream) BufferSize() int {
	return len(s.in)
}

// Close stops and releases the stream and terminates PortAudio.
func (s *Stream) Close() error {
	if err := s.pa.Close(); err != nil {
		return err
	}
	return portaudio.Terminate()
}
