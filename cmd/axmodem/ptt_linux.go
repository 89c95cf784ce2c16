//go:build linux

package main

import (
	"fmt"

	"github.com/w5rkt/axmodem/internal/config"
	"github.com/w5rkt/axmodem/internal/ptt"
)

func newGPIODriver(cfg config.PTTConfig) (ptt.Driver, error) {
	return ptt.NewGPIO(cfg.GPIOChip, cfg.GPIOLine, cfg.GPIOInvert)
}

func newSerialDriver(cfg config.PTTConfig) (ptt.Driver, error) {
	var line ptt.SerialLine
	switch cfg.SerialLine {
	case "rts":
		line = ptt.LineRTS
	case "dtr":
		line = ptt.LineDTR
	default:
		return nil, fmt.Errorf("axmodem: unknown serial ptt line %q", cfg.SerialLine)
	}
	return ptt.NewSerial(cfg.SerialDevice, line, cfg.SerialInvert)
}
