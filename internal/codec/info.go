package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ImageInfo contains header metadata of an image file.
type ImageInfo struct {
	Width      int
	Height     int
	Format     Format
	ColorModel string
}

// colorModelName returns a short name for the colour models the registered
// decoders report.
func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel:
		return "Alpha"
	}
	if p, ok := m.(color.Palette); ok {
		return fmt.Sprintf("Paletted(%d)", len(p))
	}
	return fmt.Sprintf("%T", m)
}

// GetInfo reads image metadata without decoding pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     Format(name),
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}
