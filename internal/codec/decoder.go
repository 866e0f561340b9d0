package codec

import (
	"bytes"
	"image"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an image from memory and reports its container format.
func Decode(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, "", errors.New("empty image data")
	}
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrap(err, "decode")
	}
	return img, Format(name), nil
}
