package ir

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestFromImageNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 128})

	m := FromImage(src)
	if m.Width != 2 || m.Height != 1 {
		t.Fatalf("unexpected dimensions: %dx%d", m.Width, m.Height)
	}
	want := []byte{1, 2, 3, 255, 4, 5, 6, 128}
	if !bytes.Equal(m.Pixels, want) {
		t.Errorf("pixels = %v, want %v", m.Pixels, want)
	}

	m.Pixels[0] = 99
	if src.Pix[0] != 1 {
		t.Error("FromImage aliased the source pixels")
	}
}

func TestFromImageOffsetGray(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(5, 5, color.Gray{Y: 10})
	src.SetGray(6, 5, color.Gray{Y: 200})

	m := FromImage(src)
	want := []byte{10, 10, 10, 255, 200, 200, 200, 255}
	if !bytes.Equal(m.Pixels, want) {
		t.Errorf("pixels = %v, want %v", m.Pixels, want)
	}
}

func TestNRGBARoundTrip(t *testing.T) {
	m := &RGBAImage{Width: 1, Height: 2, Pixels: []byte{9, 8, 7, 255, 1, 2, 3, 255}}
	img := m.NRGBA()
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("pixel (0,1) = %v", got)
	}
	if !bytes.Equal(FromImage(img).Pixels, m.Pixels) {
		t.Error("round trip changed pixels")
	}
}
