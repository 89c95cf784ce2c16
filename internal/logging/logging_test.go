package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWritesAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)

	l.Debug("should not appear")
	l.Info("hello", "frame", 42)

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "hello")
}

func TestDiscardDropsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Info("anything")
		Discard.Error("anything")
	})
}
