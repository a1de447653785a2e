package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	d := Default()
	assert.Equal(t, 4, d.Hash)
	assert.Equal(t, 1, d.Threads)
	assert.Equal(t, 1, d.MultiPV)
	assert.False(t, d.Ponder)
	assert.Equal(t, 50, d.MoveOverhead)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caps.toml")
	require.NoError(t, os.WriteFile(path, []byte("hash = 256\nthreads = 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Hash)
	assert.Equal(t, 4, cfg.Threads)
	// Untouched keys keep their default.
	assert.Equal(t, 1, cfg.MultiPV)
	assert.Equal(t, 50, cfg.MoveOverhead)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestOverheadConvertsMillisecondsToDuration(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(50), cfg.Overhead().Milliseconds())
}
