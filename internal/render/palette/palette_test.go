package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{in: "white", want: color.NRGBA{255, 255, 255, 255}},
		{in: " Black ", want: color.NRGBA{0, 0, 0, 255}},
		{in: "#ff8000", want: color.NRGBA{255, 128, 0, 255}},
		{in: "#F80", want: color.NRGBA{255, 136, 0, 255}},
		{in: "#102030", want: color.NRGBA{16, 32, 48, 255}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "mauve", "ff8000", "#ff80", "#gggggg", "#1234567"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
		assert.False(t, Valid(in), in)
	}
}
