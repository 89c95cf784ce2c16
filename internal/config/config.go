// Package config loads and validates the YAML configuration that ties the
// BFSK modem, IIR filter cascade, and AX.25 framing together, the way the
// teacher's config.go validates direwolf.conf directives before handing
// parameters to the modem/framer constructors.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/w5rkt/axmodem/internal/polyroot"
)

// Defaults mirror AFSK-1200, the same values the teacher's DEFAULT_BAUD /
// DEFAULT_* constants in direwolf_h.go carry for the classic 1200 baud
// modem.
const (
	DefaultSampSym   = 32
	DefaultBaud      = 1200
	DefaultMarkFreq  = 1200
	DefaultSpaceFreq = 2200
	DefaultPadding   = 12
	DefaultIIROrder  = 6
)

// Modem holds the BFSK modem parameters for one radio channel.
type Modem struct {
	SampSym   int     `yaml:"samp_sym"`
	Baud      int     `yaml:"baud"`
	MarkFreq  float32 `yaml:"mark_freq"`
	SpaceFreq float32 `yaml:"space_freq"`
	Padding   int     `yaml:"padding"`
}

// Filter holds settings for an optional IIR cascade on the demodulator's
// baseband input. Validate and CascadeOrder check them; no command in this
// module builds or applies the cascade, and Numerator/Denominator are not
// read from YAML.
type Filter struct {
	Enabled     bool        `yaml:"enabled"`
	Order       int         `yaml:"order"`
	Cascade     string      `yaml:"cascade"` // "closest" or "farthest"
	Numerator   []complex64 `yaml:"-"`
	Denominator []complex64 `yaml:"-"`
}

// PTTConfig selects and parameterizes a keying driver.
type PTTConfig struct {
	Method string `yaml:"method"` // "gpio", "serial", "none"

	GPIOChip   string `yaml:"gpio_chip"`
	GPIOLine   int    `yaml:"gpio_line"`
	GPIOInvert bool   `yaml:"gpio_invert"`

	SerialDevice string `yaml:"serial_device"`
	SerialLine   string `yaml:"serial_line"` // "rts" or "dtr"
	SerialInvert bool   `yaml:"serial_invert"`
}

// Config is the full on-disk configuration for one axmodem instance.
type Config struct {
	Modem  Modem     `yaml:"modem"`
	Filter Filter    `yaml:"filter"`
	PTT    PTTConfig `yaml:"ptt"`

	AudioDevice string `yaml:"audio_device"`
	SampleRate  int    `yaml:"sample_rate"`
}

// Default returns an AFSK-1200, no-filter, no-PTT configuration.
func Default() Config {
	return Config{
		Modem: Modem{
			SampSym:   DefaultSampSym,
			Baud:      DefaultBaud,
			MarkFreq:  DefaultMarkFreq,
			SpaceFreq: DefaultSpaceFreq,
			Padding:   DefaultPadding,
		},
		PTT:        PTTConfig{Method: "none"},
		SampleRate: DefaultSampSym * DefaultBaud,
	}
}

// Load reads and validates a YAML config file, keeping the AFSK-1200
// defaults for any fields the file leaves out.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations the modem/filter/PTT layers cannot
// construct, mirroring the "programmer bug, abort" tone the teacher's
// config parser and the cascade/Madsen constructors share: a bad filter
// order or unknown PTT method is a misconfiguration, not a recoverable
// runtime condition.
func (c Config) Validate() error {
	if c.Modem.SampSym <= 0 {
		return fmt.Errorf("config: samp_sym must be positive, got %d", c.Modem.SampSym)
	}
	if c.Modem.Baud <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.Modem.Baud)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("config: sample_rate must be positive, got %d", c.SampleRate)
	}

	if c.Filter.Enabled {
		if c.Filter.Order%2 != 0 || c.Filter.Order < 2 {
			return fmt.Errorf("config: filter order must be even and >= 2, got %d", c.Filter.Order)
		}
		if _, err := c.Filter.CascadeOrder(); err != nil {
			return err
		}
	}

	switch c.PTT.Method {
	case "", "none", "gpio", "serial":
	default:
		return fmt.Errorf("config: unknown ptt method %q", c.PTT.Method)
	}

	if c.PTT.Method == "serial" {
		switch c.PTT.SerialLine {
		case "rts", "dtr":
		default:
			return fmt.Errorf("config: unknown serial ptt line %q", c.PTT.SerialLine)
		}
	}

	return nil
}

// CascadeOrder translates the filter's textual cascade sort direction
// into the polyroot enum, rejecting anything else outright.
func (f Filter) CascadeOrder() (polyroot.CascadeOrder, error) {
	switch f.Cascade {
	case "", "closest":
		return polyroot.OrderClosest, nil
	case "farthest":
		return polyroot.OrderFarthest, nil
	default:
		return 0, fmt.Errorf("config: unknown cascade order %q", f.Cascade)
	}
}
