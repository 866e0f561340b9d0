package codec

import "image"

// Codec bundles Decode and Encode behind a value that can be handed to the
// pipeline.
type Codec struct {
	Options EncoderOptions
}

// Decode implements pipeline.Decoder.
func (c Codec) Decode(data []byte) (image.Image, Format, error) {
	return Decode(data)
}

// Encode implements pipeline.Encoder.
func (c Codec) Encode(pixels []byte, width, height int, format Format) ([]byte, error) {
	return Encode(pixels, width, height, format, c.Options)
}
