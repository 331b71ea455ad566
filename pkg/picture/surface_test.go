package picture

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

// halves returns a w×h image whose left half is left and right half is right.
func halves(w, h int, left, right color.Color) *image.NRGBA {
	img := imaging.New(w, h, left)
	draw.Draw(img, image.Rect(w/2, 0, w, h), image.NewUniform(right), image.Point{}, draw.Src)
	return img
}

func assertPixel(t *testing.T, s *Surface, x, y int, want color.RGBA) {
	t.Helper()
	got := s.Image().RGBAAt(x, y)
	assert.InDelta(t, want.R, got.R, 1, "red at (%d,%d)", x, y)
	assert.InDelta(t, want.G, got.G, 1, "green at (%d,%d)", x, y)
	assert.InDelta(t, want.B, got.B, 1, "blue at (%d,%d)", x, y)
	assert.Equal(t, uint8(0xff), got.A, "alpha at (%d,%d)", x, y)
}

func TestNewSurface(t *testing.T) {
	s := NewSurface(500, 500)

	assert.Equal(t, image.Pt(500, 500), s.Size())
	assertPixel(t, s, 0, 0, color.RGBA{0, 0, 0, 255})
	assertPixel(t, s, 499, 499, color.RGBA{0, 0, 0, 255})
}

func TestFitKeepsDimensions(t *testing.T) {
	sources := []struct {
		name string
		w, h int
	}{
		{"Smaller", 20, 30},
		{"Larger", 1200, 800},
		{"Wide", 900, 10},
		{"Tall", 3, 700},
		{"Exact", 500, 500},
		{"Single pixel", 1, 1},
	}

	for _, tt := range sources {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(500, 500)
			buf := s.Image()

			require.NoError(t, s.Fit(imaging.New(tt.w, tt.h, red)))

			assert.Same(t, buf, s.Image(), "buffer must be drawn in place")
			assert.Equal(t, image.Pt(500, 500), s.Size())
			assertPixel(t, s, 0, 0, color.RGBA{255, 0, 0, 255})
			assertPixel(t, s, 250, 250, color.RGBA{255, 0, 0, 255})
			assertPixel(t, s, 499, 499, color.RGBA{255, 0, 0, 255})
		})
	}
}

func TestFitStretchesAxesIndependently(t *testing.T) {
	s := NewSurface(500, 500)

	// A 4x1 source is stretched 125x horizontally and 500x vertically.
	require.NoError(t, s.Fit(halves(4, 1, red, blue)))

	assertPixel(t, s, 10, 0, color.RGBA{255, 0, 0, 255})
	assertPixel(t, s, 10, 499, color.RGBA{255, 0, 0, 255})
	assertPixel(t, s, 490, 0, color.RGBA{0, 0, 255, 255})
	assertPixel(t, s, 490, 499, color.RGBA{0, 0, 255, 255})
}

func TestFitMatchesBicubicTransform(t *testing.T) {
	src := halves(37, 91, red, blue)
	s := NewSurface(500, 500)
	require.NoError(t, s.Fit(src))

	want := image.NewRGBA(image.Rect(0, 0, 500, 500))
	draw.CatmullRom.Transform(want, scaleMatrix(500.0/37, 500.0/91, image.Point{}), src, src.Bounds(), draw.Src, nil)

	assert.Equal(t, want.Pix, s.Image().Pix)
}

func TestFitLastWriteWins(t *testing.T) {
	s := NewSurface(500, 500)

	require.NoError(t, s.Fit(imaging.New(10, 10, red)))
	require.NoError(t, s.Fit(imaging.New(64, 48, blue)))

	assertPixel(t, s, 0, 0, color.RGBA{0, 0, 255, 255})
	assertPixel(t, s, 321, 123, color.RGBA{0, 0, 255, 255})
}

func TestFitSubImageOrigin(t *testing.T) {
	s := NewSurface(500, 500)
	src := halves(100, 50, red, blue).SubImage(image.Rect(50, 0, 100, 50))

	require.NoError(t, s.Fit(src))

	assertPixel(t, s, 0, 0, color.RGBA{0, 0, 255, 255})
	assertPixel(t, s, 499, 499, color.RGBA{0, 0, 255, 255})
}

func TestFitFlattensAlpha(t *testing.T) {
	s := NewSurface(500, 500)

	require.NoError(t, s.Fit(imaging.New(8, 8, color.NRGBA{255, 0, 0, 128})))

	assertPixel(t, s, 100, 100, color.RGBA{128, 0, 0, 255})
}

func TestFitEmptyImage(t *testing.T) {
	s := NewSurface(500, 500)
	before := append([]uint8(nil), s.Image().Pix...)

	err := s.Fit(image.NewRGBA(image.Rect(0, 0, 0, 10)))

	assert.ErrorIs(t, err, ErrEmptyImage)
	assert.Equal(t, before, s.Image().Pix)
}
