package weave

import "errors"

var (
	// ErrBufferTooSmall is returned when merged pixel data exceeds the
	// capacity an output PixelBuffer was declared with.
	ErrBufferTooSmall = errors.New("pixel buffer too small")

	// ErrIndexOutOfRange means a pixel group reached past the end of a
	// source buffer. Upstream data is malformed; the run cannot continue.
	ErrIndexOutOfRange = errors.New("pixel index out of range")
)
