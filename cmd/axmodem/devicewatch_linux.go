//go:build linux

package main

import (
	"context"

	"github.com/w5rkt/axmodem/internal/devicewatch"
	"github.com/w5rkt/axmodem/internal/logging"
)

// startDeviceWatch logs sound/tty hot-plug events for the life of the
// session, the way an operator watching dmesg would notice a USB sound
// card or CAT cable reconnect mid-session. The returned func stops the
// watch.
func startDeviceWatch(log *logging.Logger) func() {
	ctx, cancel := context.WithCancel(context.Background())

	events, err := devicewatch.Watch(ctx)
	if err != nil {
		log.Warn("device watch unavailable", "err", err)
		cancel()
		return func() {}
	}

	go func() {
		for ev := range events {
			log.Info("device event", "action", ev.Action, "subsystem", ev.Subsystem, "devnode", ev.DevNode)
		}
	}()

	return cancel
}
