package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w5rkt/axmodem/internal/polyroot"
)

func TestDefaultIsAFSK1200(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.Modem.SampSym)
	assert.Equal(t, 1200, cfg.Modem.Baud)
	assert.Equal(t, float32(1200), cfg.Modem.MarkFreq)
	assert.Equal(t, float32(2200), cfg.Modem.SpaceFreq)
}

func TestLoadMergesDefaultsOverYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "axmodem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
modem:
  baud: 9600
  mark_freq: 4800
  space_freq: 9200
ptt:
  method: none
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9600, cfg.Modem.Baud)
	assert.Equal(t, 32, cfg.Modem.SampSym) // untouched default survives
}

func TestValidateRejectsOddFilterOrder(t *testing.T) {
	cfg := Default()
	cfg.Filter.Enabled = true
	cfg.Filter.Order = 5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownPTTMethod(t *testing.T) {
	cfg := Default()
	cfg.PTT.Method = "carrier-pigeon"
	assert.Error(t, cfg.Validate())
}

func TestCascadeOrderTranslation(t *testing.T) {
	f := Filter{Cascade: "farthest"}
	order, err := f.CascadeOrder()
	require.NoError(t, err)
	assert.Equal(t, polyroot.OrderFarthest, order)

	f.Cascade = "bogus"
	_, err = f.CascadeOrder()
	assert.Error(t, err)
}
