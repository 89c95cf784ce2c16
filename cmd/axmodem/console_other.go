//go:build !linux && !darwin

package main

import (
	"fmt"

	"github.com/w5rkt/axmodem/internal/config"
	"github.com/w5rkt/axmodem/internal/logging"
)

func consoleListen(config.Config, *logging.Logger) error {
	return fmt.Errorf("axmodem: console mode is unavailable on this platform")
}
