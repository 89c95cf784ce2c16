//go:build linux || darwin

package main

import (
	"bufio"
	"fmt"

	"github.com/pkg/term"

	"github.com/w5rkt/axmodem/internal/ax25frame"
	"github.com/w5rkt/axmodem/internal/bfsk"
	"github.com/w5rkt/axmodem/internal/config"
	"github.com/w5rkt/axmodem/internal/logging"
)

// consoleListen puts the controlling terminal into raw mode and streams
// decoded frames to it as they arrive, so Ctrl-C and line editing behave
// sanely without pulling in a full TUI framework — the minimal,
// tool-sized approach the teacher takes to terminal handling elsewhere
// in the repo, rather than a full connected-mode session.
func consoleListen(cfg config.Config, log *logging.Logger) error {
	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return fmt.Errorf("axmodem: opening console: %w", err)
	}
	defer tty.Restore()
	defer tty.Close()

	demod := bfsk.NewDemodulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)
	deframer := ax25frame.NewDeframer(func(valid bool, frame []byte) {
		if !valid {
			fmt.Fprintf(tty, "\r\n[bad crc, %d bytes]\r\n", len(frame))
			return
		}
		fmt.Fprintf(tty, "\r\n%s\r\n", frame[:len(frame)-2])
	})

	scanner := bufio.NewScanner(tty)
	var re, im float64
	batch := make([]complex64, 0, cfg.Modem.SampSym)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "q" {
			return nil
		}
		if _, err := fmt.Sscanf(line, "%g %g", &re, &im); err != nil {
			continue
		}
		batch = append(batch, complex(float32(re), float32(im)))
		if len(batch) == cfg.Modem.SampSym {
			demod.Process(batch)
			if bits := demod.Read(); len(bits) > 0 {
				deframer.Process(bits)
			}
			batch = batch[:0]
		}
	}

	return scanner.Err()
}
