package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/davesmith10/imgweave/internal/ir"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// ErrPixelCount is returned when a pixel buffer does not hold exactly
// width*height RGBA8 pixels.
var ErrPixelCount = errors.New("pixel buffer length does not match dimensions")

// EncoderOptions controls encoding.
type EncoderOptions struct {
	Quality         int  // JPEG quality (1-100), 0 means DefaultQuality
	BestCompression bool // PNG: trade speed for size
}

// clampQuality maps a requested quality into the 1-100 range the JPEG
// encoder accepts.
func clampQuality(q int) int {
	if q == 0 {
		return DefaultQuality
	}
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// Encode encodes RGBA8 pixel data in the given format.
// pixels must be width*height*4 bytes (straight alpha, row-major).
func Encode(pixels []byte, width, height int, format Format, opts EncoderOptions) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid dimensions %dx%d", width, height)
	}
	if expected := width * height * 4; len(pixels) != expected {
		return nil, errors.Wrapf(ErrPixelCount, "expected %d bytes for %dx%d RGBA, got %d", expected, width, height, len(pixels))
	}
	img := (&ir.RGBAImage{Width: width, Height: height, Pixels: pixels}).NRGBA()

	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		enc := png.Encoder{}
		if opts.BestCompression {
			enc.CompressionLevel = png.BestCompression
		}
		err = enc.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: clampQuality(opts.Quality)})
	case GIF:
		var m image.Image = img
		if p := exactPaletted(img); p != nil {
			m = p
		}
		err = gif.Encode(&buf, m, nil)
	case BMP:
		err = bmp.Encode(&buf, img)
	case TIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	case QOI:
		err = qoi.Encode(&buf, img)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "cannot encode %s", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s encode", format)
	}
	return buf.Bytes(), nil
}

// exactPaletted returns img as a paletted image when it has at most 256
// distinct colours, so GIF output keeps those colours exactly. It returns nil
// when the image needs quantizing.
func exactPaletted(img *image.NRGBA) *image.Paletted {
	index := make(map[color.NRGBA]uint8)
	var palette color.Palette
	out := image.NewPaletted(img.Rect, nil)
	for i, j := 0, 0; i+4 <= len(img.Pix); i, j = i+4, j+1 {
		c := color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
		idx, ok := index[c]
		if !ok {
			if len(palette) == 256 {
				return nil
			}
			idx = uint8(len(palette))
			index[c] = idx
			palette = append(palette, c)
		}
		out.Pix[j] = idx
	}
	out.Palette = palette
	return out
}
