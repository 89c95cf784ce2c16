//go:build !linux

package main

import (
	"fmt"

	"github.com/w5rkt/axmodem/internal/config"
	"github.com/w5rkt/axmodem/internal/ptt"
)

func newGPIODriver(config.PTTConfig) (ptt.Driver, error) {
	return nil, fmt.Errorf("axmodem: gpio ptt is linux-only")
}

func newSerialDriver(config.PTTConfig) (ptt.Driver, error) {
	return nil, fmt.Errorf("axmodem: serial ptt is linux-only")
}
