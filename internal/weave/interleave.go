package weave

import "fmt"

// Interleave merges two RGBA8 buffers into a new buffer of len(a) bytes.
//
// The buffers are walked in 4-byte groups. A group at byte offset i is taken
// from a when i%8 == 0 and from b otherwise: even pixels come from a, odd
// pixels from b. Both inputs are expected to have the same length, a multiple
// of BytesPerPixel. A group that would read past either source or the output
// fails with ErrIndexOutOfRange. Trailing bytes of b beyond len(a) are ignored.
func Interleave(a, b []byte) ([]byte, error) {
	out := make([]byte, len(a))
	for i := 0; i < len(a); i += BytesPerPixel {
		src, name := a, "first"
		if i%(2*BytesPerPixel) != 0 {
			src, name = b, "second"
		}
		end := i + BytesPerPixel
		if end > len(src) || end > len(out) {
			return nil, fmt.Errorf("%w: group [%d:%d] in %s source of %d bytes (output %d bytes)",
				ErrIndexOutOfRange, i, end, name, len(src), len(out))
		}
		copy(out[i:end], src[i:end])
	}
	return out, nil
}
