//go:build linux

package ptt

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SerialLine selects which modem control line keys the transmitter.
type SerialLine int

const (
	LineRTS SerialLine = iota
	LineDTR
)

// Serial keys PTT through a serial port's RTS or DTR line via the
// TIOCMGET/TIOCMSET ioctls, the same pair the teacher's _TIOCM helper
// uses, rather than the deprecated sysfs GPIO path.
type Serial struct {
	f      *os.File
	line   SerialLine
	invert bool
}

// NewSerial opens device and returns a Serial PTT driver keying the given
// line. invert flips the sense of On/Off, for radios wired active-low.
func NewSerial(device string, line SerialLine, invert bool) (*Serial, error) {
	f, err := os.OpenFile(device, os.O_RDWR|os.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("ptt: open %s: %w", device, err)
	}
	return &Serial{f: f, line: line, invert: invert}, nil
}

func (s *Serial) tiocm(on bool) error {
	if s.invert {
		on = !on
	}

	fd := int(s.f.Fd())
	var mask int
	switch s.line {
	case LineRTS:
		mask = unix.TIOCM_RTS
	case LineDTR:
		mask = unix.TIOCM_DTR
	default:
		return fmt.Errorf("ptt: unknown serial line %d", s.line)
	}

	bits, err := unix.IoctlGetInt(fd, unix.TIOCMGET)
	if err != nil {
		return fmt.Errorf("ptt: TIOCMGET: %w", err)
	}
	if on {
		bits |= mask
	} else {
		bits &^= mask
	}
	if err := unix.IoctlSetInt(fd, unix.TIOCMSET, bits); err != nil {
		return fmt.Errorf("ptt: TIOCMSET: %w", err)
	}
	return nil
}

func (s *Serial) On() error  { return s.tiocm(true) }
func (s *Serial) Off() error { return s.tiocm(false) }

func (s *Serial) Close() error {
	return s.f.Close()
}
