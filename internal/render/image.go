package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSurface rasterises frames into an RGBA image. Each cell becomes a
// Scale × Scale pixel block filled with its background, with the glyph drawn
// centred in its foreground colour.
type ImageSurface struct {
	face font.Face
	img  *image.RGBA
}

// NewImageSurface creates an image surface using the 7x13 basic font.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{face: basicfont.Face7x13}
}

// Image returns the last rendered image, or nil before the first Present.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Present rasterises f, reusing the image when the dimensions are unchanged.
func (s *ImageSurface) Present(f *Frame) {
	scale := max(f.Scale, 1)
	bounds := image.Rect(0, 0, f.Width*scale, f.Height*scale)
	if s.img == nil || s.img.Bounds() != bounds {
		s.img = image.NewRGBA(bounds)
	}

	metrics := s.face.Metrics()
	glyphH := (metrics.Ascent + metrics.Descent).Ceil()
	ascent := metrics.Ascent.Ceil()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			cell := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
			draw.Draw(s.img, cell, image.NewUniform(c.Bg.RGBA()), image.Point{}, draw.Src)
			if c.Char == "" || c.Char == " " {
				continue
			}
			advance := font.MeasureString(s.face, c.Char).Ceil()
			d := font.Drawer{
				Dst:  s.img,
				Src:  image.NewUniform(c.Fg.RGBA()),
				Face: s.face,
				Dot:  fixed.P(cell.Min.X+(scale-advance)/2, cell.Min.Y+(scale-glyphH)/2+ascent),
			}
			d.DrawString(c.Char)
		}
	}
}
