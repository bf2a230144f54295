package face

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelScale is the label font size relative to the shorter face side
const labelScale = 0.4

// Renderer rasterizes faces. It is safe for concurrent use.
type Renderer struct {
	font *opentype.Font

	// mu guards faces and every draw through them
	mu    sync.Mutex
	faces map[int]font.Face
}

// NewRenderer loads the bold label font
func NewRenderer() (*Renderer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	return &Renderer{
		font:  f,
		faces: make(map[int]font.Face),
	}, nil
}

// Draw paints the face into rect on dst: a background-filled square with
// pips or a centered label in the mark color.
func (r *Renderer) Draw(dst draw.Image, rect image.Rectangle, f Face, background, mark color.Color) {
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}

	draw.Draw(dst, rect, image.NewUniform(background), image.Point{}, draw.Src)

	switch f.Kind {
	case KindPips:
		for _, p := range f.Pips {
			fillPip(dst, rect, p, mark)
		}
	case KindLabel:
		r.drawLabel(dst, rect, f.Label, mark)
	}
}

// fillPip fills a PipRadius circle centered on p, mapped into rect with y flipped
func fillPip(dst draw.Image, rect image.Rectangle, p Point, c color.Color) {
	sx := float64(rect.Dx()) / Extent
	sy := float64(rect.Dy()) / Extent

	cx := float64(rect.Min.X) + p.X*sx
	cy := float64(rect.Max.Y) - p.Y*sy
	rx := PipRadius * sx
	ry := PipRadius * sy
	if rx <= 0 || ry <= 0 {
		return
	}

	bounds := image.Rect(
		int(math.Floor(cx-rx)), int(math.Floor(cy-ry)),
		int(math.Ceil(cx+rx))+1, int(math.Ceil(cy+ry))+1,
	).Intersect(rect)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				dst.Set(x, y, c)
			}
		}
	}
}

func (r *Renderer) drawLabel(dst draw.Image, rect image.Rectangle, label string, c color.Color) {
	if label == "" {
		return
	}

	side := rect.Dx()
	if rect.Dy() < side {
		side = rect.Dy()
	}
	size := int(math.Round(float64(side) * labelScale))
	if size < 1 {
		return
	}

	// opentype faces keep scratch buffers, so drawing is serialized
	r.mu.Lock()
	defer r.mu.Unlock()

	face, err := r.faceFor(size)
	if err != nil {
		return
	}

	tw := font.MeasureString(face, label).Ceil()
	metrics := face.Metrics()
	th := (metrics.Ascent + metrics.Descent).Ceil()
	x := rect.Min.X + (rect.Dx()-tw)/2
	y := rect.Min.Y + (rect.Dy()-th)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

// faceFor returns a cached font face for a pixel size. r.mu must be held.
func (r *Renderer) faceFor(size int) (font.Face, error) {
	if face, ok := r.faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	r.faces[size] = face
	return face, nil
}
