//go:build linux

// Package devicewatch watches udev for USB sound cards and USB-serial
// adapters being plugged in while an axmodem session is running, the
// input-side analogue of the teacher's dns_sd service advertisement: where
// that advertises the KISS-over-TCP service outward, this watches for
// radio-adjacent hardware appearing so the operator can be told to
// reconnect.
package devicewatch

import (
	"context"

	"github.com/jochenvg/go-udev"
)

// Event reports one hot-plug add/remove for a candidate radio-adjacent
// device.
type Event struct {
	Action   string // "add" or "remove"
	Subsystem string
	DevNode  string
}

// Watch monitors udev for sound and tty subsystem events until ctx is
// canceled, sending each one on the returned channel. The channel is
// closed when the context is done or the underlying monitor fails.
func Watch(ctx context.Context) (<-chan Event, error) {
	u := udev.Udev{}
	mon := u.NewMonitorFromNetlink("udev")

	mon.FilterAddMatchSubsystem("sound")
	mon.FilterAddMatchSubsystem("tty")

	deviceCh, err := mon.DeviceChan(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case dev, ok := <-deviceCh:
				if !ok {
					return
				}
				event := Event{
					Action:    dev.Action(),
					Subsystem: dev.Subsystem(),
					DevNode:   dev.Devnode(),
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
