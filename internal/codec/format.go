package codec

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies an image container format. Values match the names the
// decoders register with the image package.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WebP Format = "webp"
	QOI  Format = "qoi"
)

// ErrUnsupportedFormat is returned for unknown format names and for formats
// that can be decoded but not encoded.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var extensions = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".webp": WebP,
	".qoi":  QOI,
}

// ParseFormat converts a user-supplied name ("png", "JPG", "tif", …).
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if f, ok := extensions["."+name]; ok {
		return f, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Wrapf(ErrUnsupportedFormat, "no extension on %s", path)
	}
	return ParseFormat(ext)
}

// CanEncode reports whether Encode supports f.
func (f Format) CanEncode() bool {
	switch f {
	case PNG, JPEG, GIF, BMP, TIFF, QOI:
		return true
	default:
		return false
	}
}

func (f Format) String() string {
	return strings.ToUpper(string(f))
}
