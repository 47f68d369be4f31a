package main

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heightfield/internal/config"
)

func testSettings(output string) config.Settings {
	return config.Settings{
		Order:     4,
		Seed:      3,
		Corner:    128,
		Variance:  64,
		Roughness: 1,
		Depth:     8,
		Source:    "uniform",
		Output:    output,
	}
}

func TestRunWritesEveryOutput(t *testing.T) {
	dir := t.TempDir()
	s := testSettings(filepath.Join(dir, "terrain.png"))
	ex := extras{
		shade:   filepath.Join(dir, "relief.png"),
		caption: true,
		zScale:  48,
		hist:    filepath.Join(dir, "hist.png"),
		bins:    8,
		surface: filepath.Join(dir, "surface.html"),
		stride:  2,
	}
	outs := &outputs{}

	require.NoError(t, run(s, ex, outs))

	for _, path := range []string{s.Output, ex.shade, ex.hist, ex.surface} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
	assert.Empty(t, outs.open, "all files should be closed")
}

func TestRunPGM16Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.pgm")
	s := testSettings(path)
	s.Depth = 16

	require.NoError(t, run(s, extras{}, &outputs{}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	header, err := bufio.NewReader(f).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "P2 17 17 65535\n", header)
}

func TestCloseAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x")
	f, err := os.Create(path)
	require.NoError(t, err)

	outs := &outputs{}
	outs.track(path, f)
	outs.closeAll()

	assert.Empty(t, outs.open)
	_, err = f.Write([]byte("x"))
	assert.Error(t, err, "file should be closed")
}
