package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	c, err := NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Size)
	assert.Equal(t, 60, c.SquareSize)
	assert.Equal(t, 60, c.TPS)
	assert.Equal(t, "classic", c.Theme)
	assert.Equal(t, path, c.Path())
}

func TestReadAndCorrect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkerboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": 4, "square_size": 80, "theme": "neon", "debug": true}`), 0644))

	c, err := NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Size)
	assert.Equal(t, 80, c.SquareSize)
	assert.Equal(t, 60, c.TPS)
	assert.Equal(t, "classic", c.Theme)
	assert.True(t, c.Debug)
}

func TestDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": `), 0644))
	_, err := NewGUIConfig(path)
	assert.ErrorContains(t, err, "error decode config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	c, err := NewGUIConfig(path)
	require.NoError(t, err)
	c.Size = 12
	c.Theme = "wood"
	require.NoError(t, c.Save())

	again, err := NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, again.Size)
	assert.Equal(t, "wood", again.Theme)
}

func TestOverride(t *testing.T) {
	c := defaultConfig()
	c.Override(0, 0)
	assert.Equal(t, 10, c.Size)

	c.Override(8, 40)
	assert.Equal(t, 8, c.Size)
	assert.Equal(t, 40, c.SquareSize)

	c.Override(3, 1000)
	assert.Equal(t, 10, c.Size)
	assert.Equal(t, 60, c.SquareSize)
}
