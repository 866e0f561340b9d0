package ir

import (
	"image"

	"golang.org/x/image/draw"
)

// RGBAImage is the intermediate representation passed between the
// interleaver and the encoder. Pixels are stored as R,G,B,A bytes with
// straight (non-premultiplied) alpha, 4 bytes per pixel, row-major order.
type RGBAImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 4
}

// FromImage flattens img into a tightly packed RGBAImage with its origin at
// (0, 0).
func FromImage(img image.Image) *RGBAImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if n, ok := img.(*image.NRGBA); ok && n.Stride == w*4 && b.Min == (image.Point{}) {
		pixels := make([]byte, w*h*4)
		copy(pixels, n.Pix)
		return &RGBAImage{Width: w, Height: h, Pixels: pixels}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &RGBAImage{Width: w, Height: h, Pixels: dst.Pix}
}

// NRGBA wraps the pixel data as an image without copying.
func (m *RGBAImage) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pixels,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
