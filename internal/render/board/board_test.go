package board

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	"github.com/KirkDiggler/dicetray/internal/render/layout"
)

type BoardTestSuite struct {
	suite.Suite
	renderer *face.Renderer
	testNow  time.Time
	bg       color.NRGBA
	mark     color.NRGBA
}

func (s *BoardTestSuite) SetupTest() {
	r, err := face.NewRenderer()
	s.Require().NoError(err)
	s.renderer = r

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.bg = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	s.mark = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
}

func TestBoardTestSuite(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}

func (s *BoardTestSuite) TestCompose_SizeFollowsGeometry() {
	rs := models.NewRollSet("roll", "set", 6, []int{1, 2, 3, 4, 5, 6, 1}, s.testNow)
	g := layout.Grid(7, 6, 700, 400, 0.9, 0.5)
	s.Require().Equal(100.0, g.DieSize)

	img := Compose(s.renderer, rs, Options{Geometry: g, Background: s.bg, Mark: s.mark, Supersample: 1, Gutter: DefaultGutter})

	s.Equal(image.Rect(0, 0, 600, 200), img.Bounds())
}

func (s *BoardTestSuite) TestCompose_PlacesFacesRowMajor() {
	rs := models.NewRollSet("roll", "set", 6, []int{1, 2, 3, 4, 5, 6, 1}, s.testNow)
	g := layout.Grid(7, 6, 700, 400, 0.9, 0.5)

	img := Compose(s.renderer, rs, Options{Geometry: g, Background: s.bg, Mark: s.mark, Supersample: 1, Gutter: DefaultGutter})

	// first die shows a single centered pip
	s.Equal(s.mark, img.NRGBAAt(50, 50))
	// gutter stays transparent
	s.Equal(color.NRGBA{}, img.NRGBAAt(1, 1))
	// seventh die wraps to the second row, first column
	s.Equal(s.mark, img.NRGBAAt(50, 150))
	// eighth cell is unused
	s.Equal(color.NRGBA{}, img.NRGBAAt(150, 150))
	// second die background
	s.Equal(s.bg, img.NRGBAAt(150, 50))
}

func (s *BoardTestSuite) TestCompose_Supersample() {
	rs := models.NewRollSet("roll", "set", 6, []int{1}, s.testNow)
	g := layout.Grid(1, 6, 200, 200, 0.5, 0.5)

	img := Compose(s.renderer, rs, Options{Geometry: g, Background: s.bg, Mark: s.mark, Supersample: 3, Gutter: DefaultGutter})

	s.Equal(image.Rect(0, 0, 100, 100), img.Bounds())
	center := img.NRGBAAt(50, 50)
	s.InDelta(0, int(center.R), 2)
	s.InDelta(255, int(center.A), 2)
	corner := img.NRGBAAt(20, 80)
	s.InDelta(255, int(corner.R), 2)
}

func (s *BoardTestSuite) TestCompose_EmptyGeometry() {
	rs := models.NewRollSet("roll", "set", 6, []int{3}, s.testNow)

	img := Compose(s.renderer, rs, Options{})

	s.Equal(image.Rect(0, 0, 1, 1), img.Bounds())
}

func (s *BoardTestSuite) TestSingle_LabelFace() {
	img := Single(s.renderer, 42, 50, 64, s.bg, s.mark, 1)

	s.Equal(image.Rect(0, 0, 64, 64), img.Bounds())
	s.Equal(s.bg, img.NRGBAAt(5, 5))
}

func (s *BoardTestSuite) TestEncode_PNG() {
	img := Single(s.renderer, 5, 6, 48, s.bg, s.mark, 1)

	var buf bytes.Buffer
	s.Require().NoError(Encode(&buf, img, FormatPNG))

	decoded, err := png.Decode(&buf)
	s.Require().NoError(err)
	s.Equal(img.Bounds(), decoded.Bounds())
}

func (s *BoardTestSuite) TestEncode_WebP() {
	img := Single(s.renderer, 5, 6, 48, s.bg, s.mark, 1)

	var buf bytes.Buffer
	s.Require().NoError(Encode(&buf, img, FormatWebP))

	data := buf.Bytes()
	s.Require().Greater(len(data), 12)
	s.Equal("RIFF", string(data[0:4]))
	s.Equal("WEBP", string(data[8:12]))
}

func (s *BoardTestSuite) TestEncode_UnknownFormat() {
	img := Single(s.renderer, 5, 6, 8, s.bg, s.mark, 1)

	s.Error(Encode(&bytes.Buffer{}, img, Format("gif")))
}

func (s *BoardTestSuite) TestParseFormat() {
	f, err := ParseFormat("WEBP")
	s.Require().NoError(err)
	s.Equal(FormatWebP, f)
	s.Equal("image/webp", f.ContentType())
	s.Equal("webp", f.Extension())

	f, err = ParseFormat(".png")
	s.Require().NoError(err)
	s.Equal(FormatPNG, f)
	s.Equal("image/png", f.ContentType())

	_, err = ParseFormat("bmp")
	s.Error(err)
}
