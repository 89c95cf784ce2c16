//go:build linux

package ptt

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// GPIO keys PTT by driving a single Linux GPIO character-device line,
// the modern replacement for the teacher's sysfs-based
// get_access_to_gpio/export_gpio flow.
type GPIO struct {
	line   *gpiocdev.Line
	invert bool
}

// NewGPIO requests offset on chip (e.g. "gpiochip0") as an output line
// and returns a GPIO PTT driver. invert flips the sense of On/Off.
func NewGPIO(chip string, offset int, invert bool) (*GPIO, error) {
	initial := 0
	if invert {
		initial = 1
	}

	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(initial),
		gpiocdev.WithConsumer("axmodem-ptt"))
	if err != nil {
		return nil, fmt.Errorf("ptt: request gpio line %s:%d: %w", chip, offset, err)
	}

	return &GPIO{line: line, invert: invert}, nil
}

func (g *GPIO) set(on bool) error {
	if g.invert {
		on = !on
	}
	value := 0
	if on {
		value = 1
	}
	return g.line.SetValue(value)
}

func (g *GPIO) On() error  { return g.set(true) }
func (g *GPIO) Off() error { return g.set(false) }

func (g *GPIO) Close() error {
	return g.line.Close()
}
