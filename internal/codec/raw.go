package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// RawCompression names how a raw RGBA8 dump is framed on disk.
type RawCompression string

const (
	RawNone RawCompression = "none"
	RawZstd RawCompression = "zstd"
)

// WriteRaw writes raw pixel bytes to w, zstd-framed when c is RawZstd.
func WriteRaw(w io.Writer, pixels []byte, c RawCompression) error {
	switch c {
	case RawNone, "":
		_, err := w.Write(pixels)
		return errors.Wrap(err, "writing raw pixels")
	case RawZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return errors.Wrap(err, "zstd writer")
		}
		if _, err := enc.Write(pixels); err != nil {
			enc.Close()
			return errors.Wrap(err, "zstd write")
		}
		return errors.Wrap(enc.Close(), "zstd close")
	default:
		return errors.Errorf("unknown raw compression %q", c)
	}
}

// ReadRaw reads back a dump written by WriteRaw.
func ReadRaw(data []byte, c RawCompression) ([]byte, error) {
	switch c {
	case RawNone, "":
		return data, nil
	case RawZstd:
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "zstd reader")
		}
		defer dec.Close()
		out, err := io.ReadAll(dec)
		if err != nil {
			return nil, errors.Wrap(err, "zstd decode")
		}
		return out, nil
	default:
		return nil, errors.Errorf("unknown raw compression %q", c)
	}
}
