//go:build !linux

package main

import "github.com/w5rkt/axmodem/internal/logging"

// startDeviceWatch is a no-op off Linux; udev hot-plug watching has no
// portable equivalent here.
func startDeviceWatch(*logging.Logger) func() {
	return func() {}
}
