package board

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	"github.com/KirkDiggler/dicetray/internal/render/layout"
)

const (
	// DefaultGutter is the share of a die cell left empty on each side
	DefaultGutter = 0.05

	// MaxCanvasSize bounds the width and height of a container a roll is fitted into
	MaxCanvasSize = 4096

	// MaxSupersample is the largest supersampling factor
	MaxSupersample = 4
)

// Options controls how a roll set is drawn
type Options struct {
	Geometry   layout.Geometry
	Background color.Color
	Mark       color.Color

	// Supersample draws at this scale and downsamples, 1 or less disables it
	Supersample int

	// Gutter is the inset per die as a share of the die size
	Gutter float64
}

// Compose draws every face of rs into a grid sized by opts.Geometry.
// Cells past the last die are left transparent.
func Compose(r *face.Renderer, rs *models.RollSet, opts Options) *image.NRGBA {
	g := opts.Geometry
	width := int(math.Ceil(g.Width()))
	height := int(math.Ceil(g.Height()))
	if width < 1 || height < 1 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	scale := opts.Supersample
	if scale < 1 {
		scale = 1
	}
	gutter := opts.Gutter
	if gutter < 0 || gutter >= 0.5 {
		gutter = DefaultGutter
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width*scale, height*scale))
	die := g.DieSize * float64(scale)
	inset := die * gutter

	cells := g.Rows * g.Columns
	for i, f := range rs.Faces {
		if i >= cells {
			break
		}
		row, col := g.Cell(i)
		x0 := float64(col) * die
		y0 := float64(row) * die

		rect := image.Rect(
			int(math.Round(x0+inset)), int(math.Round(y0+inset)),
			int(math.Round(x0+die-inset)), int(math.Round(y0+die-inset)),
		)
		r.Draw(canvas, rect, face.Describe(f.Value, f.Sides), opts.Background, opts.Mark)
	}

	if scale > 1 {
		return Downsample(canvas, width, height)
	}
	return canvas
}

// Single draws one face filling a size x size image
func Single(r *face.Renderer, value, sides, size int, background, mark color.Color, supersample int) *image.NRGBA {
	rs := models.NewRollSet("", "", sides, []int{value}, time.Time{})
	g := layout.Geometry{
		Rows:       1,
		Columns:    1,
		CellWidth:  float64(size),
		CellHeight: float64(size),
		DieSize:    float64(size),
	}
	return Compose(r, rs, Options{
		Geometry:    g,
		Background:  background,
		Mark:        mark,
		Supersample: supersample,
		Gutter:      DefaultGutter,
	})
}
