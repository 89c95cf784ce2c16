// Package ptt drives push-to-talk keying lines around a transmission: a
// Linux GPIO character-device line, a serial port's RTS/DTR signal, or a
// no-op for tests and file-based tools. The serial driver is grounded
// directly in RTS_ON/RTS_OFF/DTR_ON/DTR_OFF from the teacher's ptt.go.
package ptt

// Driver keys and unkeys a transmitter. On is called before the first
// padding bit of a frame goes out; Off is called after the last.
type Driver interface {
	On() error
	Off() error
	Close() error
}

// Null is a Driver that always succeeds and does nothing, used by tests
// and tools that only write samples to a file.
type Null struct{}

func (Null) On() error    { return nil }
func (Null) Off() error   { return nil }
func (Null) Close() error { return nil }
