/*-------------------------------------------------------------
 *
 * Purpose:	Loop one axmodem sender's BFSK output directly into a
 *		receiver's input over a pseudo-terminal pair, the way the
 *		teacher's tnctest connects two TNCs over a loopback
 *		transport to validate the link layer without real radios.
 *
 * Usage:	axloop --send "hello world"
 *
 *--------------------------------------------------------------*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/creack/pty"
	"github.com/spf13/pflag"

	"github.com/w5rkt/axmodem/internal/ax25frame"
	"github.com/w5rkt/axmodem/internal/bfsk"
	"github.com/w5rkt/axmodem/internal/config"
)

func main() {
	text := pflag.StringP("send", "s", "hello, axmodem", "Payload to send across the loopback channel.")
	pflag.Parse()

	if err := run(*text); err != nil {
		fmt.Fprintf(os.Stderr, "axloop: %v\n", err)
		os.Exit(1)
	}
}

func run(text string) error {
	master, slave, err := pty.Open()
	if err != nil {
		return fmt.Errorf("opening pty pair: %w", err)
	}
	defer master.Close()
	defer slave.Close()

	cfg := config.Default()

	framer := ax25frame.NewFramer(cfg.Modem.Padding)
	framer.Process([]byte(text))
	bits := framer.Read()

	mod := bfsk.NewModulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)
	samples := make([]complex64, len(bits)*cfg.Modem.SampSym)
	mod.Process(samples, bits)

	received := make(chan []byte, 1)
	deframer := ax25frame.NewDeframer(func(valid bool, frame []byte) {
		if valid {
			received <- append([]byte{}, frame[:len(frame)-2]...)
		}
	})

	demod := bfsk.NewDemodulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)

	go func() {
		writer := bufio.NewWriter(slave)
		for _, s := range samples {
			fmt.Fprintf(writer, "%g %g\n", real(s), imag(s))
		}
		writer.Flush()
		slave.Close()
	}()

	scanner := bufio.NewScanner(master)
	var re, im float64
	batch := make([]complex64, 0, cfg.Modem.SampSym)

	for scanner.Scan() {
		if _, err := fmt.Sscanf(scanner.Text(), "%g %g", &re, &im); err != nil {
			continue
		}
		batch = append(batch, complex(float32(re), float32(im)))
		if len(batch) == cfg.Modem.SampSym {
			demod.Process(batch)
			if decoded := demod.Read(); len(decoded) > 0 {
				deframer.Process(decoded)
			}
			batch = batch[:0]
		}

		select {
		case payload := <-received:
			fmt.Printf("received: %q\n", payload)
			return nil
		default:
		}
	}

	return fmt.Errorf("loopback closed before a frame was received")
}
