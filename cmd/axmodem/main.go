/*-------------------------------------------------------------
 *
 * Purpose:	Send and receive AX.25 frames over a BFSK/AFSK link using
 *		stdin/stdout sample pipes or (with --audio) a real sound
 *		card, and an optional PTT keying line.
 *
 * Usage:	axmodem [options]
 *
 *--------------------------------------------------------------*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/w5rkt/axmodem/internal/ax25frame"
	"github.com/w5rkt/axmodem/internal/bfsk"
	"github.com/w5rkt/axmodem/internal/config"
	"github.com/w5rkt/axmodem/internal/logging"
	"github.com/w5rkt/axmodem/internal/ptt"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Path to a YAML config file. Defaults to AFSK-1200 if omitted.")
	sendText := pflag.StringP("send", "s", "", "Send this text as a single AX.25 frame and exit.")
	listen := pflag.BoolP("listen", "l", false, "Continuously demodulate sample pairs from stdin (or the sound card with --audio) and print decoded frames.")
	console := pflag.BoolP("console", "i", false, "Interactive raw-terminal console; reads sample pairs from the controlling tty and prints decoded frames until 'q'.")
	audio := pflag.BoolP("audio", "a", false, "Use the default sound card via PortAudio instead of stdin/stdout sample pipes, and watch for hot-plugged radio-adjacent devices while listening.")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug-level logging.")
	pflag.Parse()

	level := logLevelInfo
	if *verbose {
		level = logLevelDebug
	}
	log := logging.New(os.Stderr, level)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("loading config", "err", err)
		}
		cfg = loaded
	}

	pttDriver, err := openPTT(cfg.PTT)
	if err != nil {
		log.Fatal("opening ptt", "err", err)
	}
	defer pttDriver.Close()

	switch {
	case *sendText != "" && *audio:
		if err := sendOnceAudio(cfg, pttDriver, *sendText); err != nil {
			log.Fatal("send failed", "err", err)
		}
	case *sendText != "":
		if err := sendOnce(cfg, pttDriver, *sendText); err != nil {
			log.Fatal("send failed", "err", err)
		}
	case *listen && *audio:
		if err := listenLoopAudio(cfg, log); err != nil {
			log.Fatal("listen failed", "err", err)
		}
	case *listen:
		if err := listenLoop(cfg, log); err != nil {
			log.Fatal("listen failed", "err", err)
		}
	case *console:
		if err := consoleListen(cfg, log); err != nil {
			log.Fatal("console failed", "err", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "axmodem: specify --send or --listen")
		pflag.Usage()
		os.Exit(2)
	}
}

func openPTT(cfg config.PTTConfig) (ptt.Driver, error) {
	switch cfg.Method {
	case "", "none":
		return ptt.Null{}, nil
	case "gpio":
		return newGPIODriver(cfg)
	case "serial":
		return newSerialDriver(cfg)
	default:
		return nil, fmt.Errorf("axmodem: unknown ptt method %q", cfg.Method)
	}
}

// sendOnce frames text as a single AX.25 information field, modulates it
// to BFSK baseband, keys PTT for the duration, and writes the resulting
// samples to stdout as text, one "real imag" pair per line, for piping
// into an external audio sink.
func sendOnce(cfg config.Config, drv ptt.Driver, text string) error {
	framer := ax25frame.NewFramer(cfg.Modem.Padding)
	framer.Process([]byte(text))
	frameBits := framer.Read()

	mod := bfsk.NewModulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)
	samples := make([]complex64, len(frameBits)*cfg.Modem.SampSym)

	return ptt.Keyed(drv, func() error {
		mod.Process(samples, frameBits)
		return writeSamples(os.Stdout, samples)
	})
}

func writeSamples(w *os.File, samples []complex64) error {
	writer := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := fmt.Fprintf(writer, "%g %g\n", real(s), imag(s)); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// listenLoop reads baseband samples from stdin (real/imag pairs per
// line, matching writeSamples' format) and prints decoded frames.
func listenLoop(cfg config.Config, log *logging.Logger) error {
	demod := bfsk.NewDemodulator(cfg.Modem.SampSym, cfg.Modem.Baud, cfg.Modem.MarkFreq, cfg.Modem.SpaceFreq)

	deframer := ax25frame.NewDeframer(func(valid bool, frame []byte) {
		if valid {
			log.Info("frame received", "bytes", len(frame), "payload", string(frame[:len(frame)-2]))
		} else {
			log.Warn("frame failed crc", "bytes", len(frame))
		}
	})

	scanner := bufio.NewScanner(os.Stdin)
	var re, im float64
	batch := make([]complex64, 0, cfg.Modem.SampSym)

	for scanner.Scan() {
		if _, err := fmt.Sscanf(scanner.Text(), "%g %g", &re, &im); err != nil {
			continue
		}
		batch = append(batch, complex(float32(re), float32(im)))

		if len(batch) == cfg.Modem.SampSym {
			demod.Process(batch)
			bits := demod.Read()
			if len(bits) > 0 {
				deframer.Process(bits)
			}
			batch = batch[:0]
		}
	}

	return scanner.Err()
}
