package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadFromInvalidYAMLReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: [not, numbers"), 0644))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveToLoadFromRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "engine.yaml")
	want := EnginePrefs{
		Gravity:     [2]float32{1.5, -20},
		Speed:       0.5,
		ShowFPS:     true,
		ShowStats:   true,
		GridVisible: false,
	}
	require.NoError(t, SaveTo(path, want))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaults(t *testing.T) {
	p := Default()
	assert.Equal(t, [2]float32{0, -9.8}, p.Gravity)
	assert.Equal(t, float32(1), p.Speed)
	assert.True(t, p.GridVisible)
	assert.False(t, p.ShowFPS)
}
