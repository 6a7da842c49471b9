package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeakFullText(t *testing.T) {
	rootOpts := &RootOptions{Format: "text", Digits: defaultDigits}
	out, _, err := execute(NewPeakCommand(rootOpts), signalPath("a.txt"), signalPath("b.txt"))
	require.NoError(t, err)

	assertGolden(t, "peak_full_text", out)
}

func TestPeakAbs(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(aPath, []byte("0 0 -1 -2 0\n"), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte("1 2\n"), 0o644))

	rootOpts := &RootOptions{Format: "json", Digits: defaultDigits}

	out, _, err := execute(NewPeakCommand(rootOpts), "--abs", aPath, bPath)
	require.NoError(t, err)

	var result PeakResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Magnitude)
	assert.Equal(t, 2, result.Lag)
	assert.Equal(t, -5.0, result.Value)

	out, _, err = execute(NewPeakCommand(rootOpts), aPath, bPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Magnitude)
	assert.Equal(t, 0.0, result.Value)
}

func TestPeakSameMode(t *testing.T) {
	rootOpts := &RootOptions{Format: "json", Digits: defaultDigits}
	out, _, err := execute(NewPeakCommand(rootOpts), "--mode", "same", signalPath("a.txt"), signalPath("b.txt"))
	require.NoError(t, err)

	var result PeakResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "same", result.Mode)
	assert.Equal(t, 1, result.Lag)
	assert.Equal(t, 2, result.Index)
}
