package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roll.png")
	var stdout bytes.Buffer

	err := run([]string{"-count", "3", "-seed", "42", "-width", "600", "-height", "400", "-supersample", "1", "-out", out}, &stdout)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 540, img.Bounds().Dx())
	assert.Equal(t, 180, img.Bounds().Dy())

	assert.True(t, strings.HasPrefix(stdout.String(), "Rolled: "))
	assert.Contains(t, stdout.String(), "Total: ")
}

func TestRunGermanSingleDie(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roll.webp")
	var stdout bytes.Buffer

	err := run([]string{"-count", "1", "-format", "webp", "-locale", "de-DE", "-supersample", "1", "-out", out}, &stdout)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Gewürfelt: ")
	assert.NotContains(t, stdout.String(), "Gesamtergebnis")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "too few sides", args: []string{"-sides", "1"}},
		{name: "too many dice", args: []string{"-count", "13"}},
		{name: "bad format", args: []string{"-format", "gif"}},
		{name: "bad color", args: []string{"-bg", "notacolor"}},
		{name: "bad container", args: []string{"-width", "0"}},
		{name: "container too wide", args: []string{"-width", "100000"}},
		{name: "container too tall", args: []string{"-height", "2000000000"}},
		{name: "no supersampling", args: []string{"-supersample", "0"}},
		{name: "supersample too high", args: []string{"-supersample", "1000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			assert.Error(t, run(tt.args, &stdout))
		})
	}
}
