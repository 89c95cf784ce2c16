package main

import (
	"github.com/w5rkt/axmodem/internal/audioio"
	"github.com/w5rkt/axmodem/internal/ax25frame"
	"github.com/w5rkt/axmodem/internal/bfsk"
	"github.com/w5rkt/axmodem/internal/config"
	"github.com/w5rkt/axmodem/internal/logging"
	"github.com/w5rkt/axmodem/internal/ptt"
)

// centerFreq picks the quadrature mixer's local-oscillator frequency
// as the midpoint between the mark and space tones, the way a
// discriminator's passband is centered between them.
func centerFreq(cfg config.Config) float64 {
	return (float64(cfg.Modem.MarkFreq) + float64(cfg.Modem.SpaceFreq)) / 2
}

// sendOnceAudio frames and modulates text exactly as sendOnce does, but
// keys PTT and plays the resulting samples out the default sound card
// instead of piping raw sample text to stdout.
func sendOnceAudio(cfg config.Config, drv ptt.Driver, text string) error {
	framer := ax25frame.NewFramer(cfg.Modem.Padding)
	framer.Process([]byte(text))
	frameBits := framer.Read()

	mod := bfsk.NewModulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)
	samples := make([]complex64, len(frameBits)*cfg.Modem.SampSym)
	mod.Process(samples, frameBits)

	stream, err := audioio.Open(float64(cfg.SampleRate), len(samples), centerFreq(cfg))
	if err != nil {
		return err
	}
	defer stream.Close()

	return ptt.Keyed(drv, func() error {
		return stream.Write(samples)
	})
}

// listenLoopAudio demodulates live audio from the default sound card
// instead of reading sample-pair lines from stdin, printing decoded
// frames until the stream errors out, and logs sound/tty hot-plug
// events for the duration of the run.
func listenLoopAudio(cfg config.Config, log *logging.Logger) error {
	stream, err := audioio.Open(float64(cfg.SampleRate), cfg.Modem.SampSym, centerFreq(cfg))
	if err != nil {
		return err
	}
	defer stream.Close()

	stopWatch := startDeviceWatch(log)
	defer stopWatch()

	demod := bfsk.NewDemodulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)
	deframer := ax25frame.NewDeframer(func(valid bool, frame []byte) {
		if valid {
			log.Info("frame received", "bytes", len(frame), "payload", string(frame[:len(frame)-2]))
		} else {
			log.Warn("frame failed crc", "bytes", len(frame))
		}
	})

	batch := make([]complex64, stream.BufferSize())
	for {
		if err := stream.Read(batch); err != nil {
			return err
		}
		demod.Process(batch)
		bits := demod.Read()
		if len(bits) > 0 {
			deframer.Process(bits)
		}
	}
}
