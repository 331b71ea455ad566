// Package picture holds the fixed-size display surface and the loader that
// stretches picture files onto it.
package picture

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ErrEmptyImage is returned when a source image has no pixels to resample.
var ErrEmptyImage = errors.New("image has no pixels")

// Surface is a fixed-size RGB pixel buffer. Its dimensions and backing
// buffer never change after NewSurface.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates an opaque black surface of the given size.
func NewSurface(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Surface{img: img}
}

// Image returns the live pixel buffer.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions.
func (s *Surface) Size() image.Point {
	return s.img.Bounds().Size()
}

// Fit stretches src over the whole surface using bicubic interpolation.
// The x and y scale factors are computed independently, so the aspect
// ratio of src is not preserved.
func (s *Surface) Fit(src image.Image) error {
	sb := src.Bounds()
	if sb.Empty() {
		return ErrEmptyImage
	}

	size := s.Size()
	sx := float64(size.X) / float64(sb.Dx())
	sy := float64(size.Y) / float64(sb.Dy())

	draw.CatmullRom.Transform(s.img, scaleMatrix(sx, sy, sb.Min), src, sb, draw.Src, nil)
	s.flatten()
	return nil
}

// scaleMatrix maps source coordinates onto the surface, moving the source
// origin to (0,0).
func scaleMatrix(sx, sy float64, origin image.Point) f64.Aff3 {
	return f64.Aff3{
		sx, 0, -sx * float64(origin.X),
		0, sy, -sy * float64(origin.Y),
	}
}

// flatten drops the alpha channel. Pix is premultiplied, so translucent
// source pixels end up composited over black.
func (s *Surface) flatten() {
	pix := s.img.Pix
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
}
