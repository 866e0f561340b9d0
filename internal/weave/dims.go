package weave

import "fmt"

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Pixels returns width × height. Computed in 64 bits so two uint32 sides
// cannot overflow.
func (d Dimensions) Pixels() uint64 {
	return uint64(d.Width) * uint64(d.Height)
}

// ByteLen returns the size of an RGBA8 buffer with these dimensions.
func (d Dimensions) ByteLen() int {
	return int(d.Pixels() * BytesPerPixel)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Reconcile picks the common target size for two images: whichever has
// fewer pixels. Ties go to a.
func Reconcile(a, b Dimensions) Dimensions {
	if b.Pixels() < a.Pixels() {
		return b
	}
	return a
}
