package weave

import "fmt"

// DefaultCapacity is the fixed output capacity used when a buffer is not
// sized from its target dimensions.
const DefaultCapacity = 9_000_000

// PixelBuffer is the output container for merged pixel data. Its capacity is
// fixed at construction and never grows.
type PixelBuffer struct {
	Width  uint32
	Height uint32
	Name   string // destination file or identifier

	capacity int
	data     []byte
}

// NewPixelBuffer returns an empty buffer that accepts at most capacity bytes.
func NewPixelBuffer(width, height uint32, name string, capacity int) *PixelBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &PixelBuffer{
		Width:    width,
		Height:   height,
		Name:     name,
		capacity: capacity,
	}
}

// NewSizedPixelBuffer returns a buffer whose capacity is exactly one RGBA8
// frame of d.
func NewSizedPixelBuffer(d Dimensions, name string) *PixelBuffer {
	return NewPixelBuffer(d.Width, d.Height, name, d.ByteLen())
}

// Cap returns the declared capacity in bytes.
func (p *PixelBuffer) Cap() int { return p.capacity }

// Len returns the number of bytes currently stored.
func (p *PixelBuffer) Len() int { return len(p.data) }

// Data returns the stored bytes. The slice is owned by the buffer.
func (p *PixelBuffer) Data() []byte { return p.data }

// Dimensions returns the buffer's width and height.
func (p *PixelBuffer) Dimensions() Dimensions {
	return Dimensions{Width: p.Width, Height: p.Height}
}

// Commit replaces the buffer content with data. Data longer than the
// capacity is rejected with ErrBufferTooSmall and the previous content is
// kept.
func (p *PixelBuffer) Commit(data []byte) error {
	if len(data) > p.capacity {
		return fmt.Errorf("%w: %s needs %d bytes, capacity is %d", ErrBufferTooSmall, p.Name, len(data), p.capacity)
	}
	p.data = data
	return nil
}
