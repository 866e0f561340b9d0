package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/davesmith10/imgweave/internal/ir"
	"github.com/davesmith10/imgweave/internal/metrics"
	"github.com/davesmith10/imgweave/internal/resample"
	"github.com/davesmith10/imgweave/internal/weave"
)

// ErrFormatMismatch is returned when the two inputs use different container
// formats. It is detected before any resizing or merging.
var ErrFormatMismatch = errors.New("input images have different formats")

// Decoder turns encoded bytes into an image and reports its format.
type Decoder interface {
	Decode(data []byte) (image.Image, codec.Format, error)
}

// Encoder turns RGBA8 pixels into an encoded image.
type Encoder interface {
	Encode(pixels []byte, width, height int, format codec.Format) ([]byte, error)
}

// Codec is a Decoder and an Encoder.
type Codec interface {
	Decoder
	Encoder
}

// Resizer scales an image to exact dimensions.
type Resizer interface {
	Resize(img image.Image, width, height int) (image.Image, error)
}

// Options controls a combine run.
type Options struct {
	Codec        Codec        // nil: codec.Codec{}
	Resizer      Resizer      // nil: triangle filter
	Capacity     int          // output buffer capacity in bytes; 0 sizes it from the target
	OutputFormat codec.Format // empty: same as inputs
	OutputName   string       // destination recorded on the output buffer
}

func (o Options) withDefaults() Options {
	if o.Codec == nil {
		o.Codec = codec.Codec{}
	}
	if o.Resizer == nil {
		o.Resizer = resample.New(resample.Triangle)
	}
	return o
}

// Result holds the output of a pipeline run.
type Result struct {
	Data         []byte // encoded output image
	Format       codec.Format
	InputFormat  codec.Format
	First        weave.Dimensions
	Second       weave.Dimensions
	Target       weave.Dimensions
	MergedPixels int // bytes committed to the output buffer
	Timings      metrics.Timings
}

// Run executes the full pipeline: decode → format check → reconcile →
// normalize → interleave → commit → encode. Nothing is returned on failure;
// callers write Result.Data only after Run succeeds.
func Run(first, second []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	mc := metrics.NewCollector()

	out, m, err := prepare(first, second, opts, mc)
	if err != nil {
		return nil, err
	}

	// Encode
	outFormat := opts.OutputFormat
	if outFormat == "" {
		outFormat = m.format
	}
	dims := out.Dimensions()
	encoded, err := opts.Codec.Encode(out.Data(), int(dims.Width), int(dims.Height), outFormat)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	mc.EncodeDone()

	return &Result{
		Data:         encoded,
		Format:       outFormat,
		InputFormat:  m.format,
		First:        m.first,
		Second:       m.second,
		Target:       m.target,
		MergedPixels: out.Len(),
		Timings:      mc.Timings(),
	}, nil
}

// Prepare runs everything up to and including the commit and returns the
// committed output buffer with the inputs' format. Only opts.Codec's Decode,
// opts.Resizer, opts.Capacity and opts.OutputName are used.
func Prepare(first, second []byte, opts Options) (*weave.PixelBuffer, codec.Format, error) {
	out, m, err := prepare(first, second, opts.withDefaults(), metrics.NewCollector())
	if err != nil {
		return nil, "", err
	}
	return out, m.format, nil
}

func prepare(first, second []byte, opts Options, mc *metrics.Collector) (*weave.PixelBuffer, *merged, error) {
	m, err := merge(first, second, opts.Codec, opts.Resizer, mc)
	if err != nil {
		return nil, nil, err
	}

	var out *weave.PixelBuffer
	if opts.Capacity > 0 {
		out = weave.NewPixelBuffer(m.target.Width, m.target.Height, opts.OutputName, opts.Capacity)
	} else {
		out = weave.NewSizedPixelBuffer(m.target, opts.OutputName)
	}
	if err := out.Commit(m.image.Pixels); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}
	mc.CommitDone()
	return out, m, nil
}

type merged struct {
	image  *ir.RGBAImage
	format codec.Format
	first  weave.Dimensions
	second weave.Dimensions
	target weave.Dimensions
}

func merge(first, second []byte, dec Decoder, r Resizer, mc *metrics.Collector) (*merged, error) {
	// 1. Decode both inputs and require matching formats
	imgA, imgB, format, err := decodePair(dec, first, second)
	if err != nil {
		return nil, err
	}
	mc.DecodeDone()

	// 2. Reconcile sizes and normalize
	m := &merged{format: format, first: DimensionsOf(imgA), second: DimensionsOf(imgB)}
	m.target = weave.Reconcile(m.first, m.second)
	imgA, imgB, err = Normalize(imgA, imgB, m.target, r)
	if err != nil {
		return nil, err
	}
	mc.ResizeDone()

	// 3. Flatten and interleave
	m.image, err = Merge(imgA, imgB)
	if err != nil {
		return nil, err
	}
	mc.InterleaveDone()
	return m, nil
}

func decodePair(dec Decoder, first, second []byte) (image.Image, image.Image, codec.Format, error) {
	imgA, formatA, err := dec.Decode(first)
	if err != nil {
		return nil, nil, "", fmt.Errorf("decode first image: %w", err)
	}
	imgB, formatB, err := dec.Decode(second)
	if err != nil {
		return nil, nil, "", fmt.Errorf("decode second image: %w", err)
	}
	if formatA != formatB {
		return nil, nil, "", fmt.Errorf("%w: %s vs %s", ErrFormatMismatch, formatA, formatB)
	}
	return imgA, imgB, formatA, nil
}

// DimensionsOf returns the pixel dimensions of img.
func DimensionsOf(img image.Image) weave.Dimensions {
	b := img.Bounds()
	return weave.Dimensions{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
}

// Normalize resizes whichever of a and b does not already have the target
// dimensions. An image that matches is returned unchanged.
func Normalize(a, b image.Image, target weave.Dimensions, r Resizer) (image.Image, image.Image, error) {
	a, err := normalizeOne(a, target, r)
	if err != nil {
		return nil, nil, fmt.Errorf("resize first image: %w", err)
	}
	b, err = normalizeOne(b, target, r)
	if err != nil {
		return nil, nil, fmt.Errorf("resize second image: %w", err)
	}
	return a, b, nil
}

func normalizeOne(img image.Image, target weave.Dimensions, r Resizer) (image.Image, error) {
	if DimensionsOf(img) == target {
		return img, nil
	}
	out, err := r.Resize(img, int(target.Width), int(target.Height))
	if err != nil {
		return nil, err
	}
	if got := DimensionsOf(out); got != target {
		return nil, fmt.Errorf("resizer returned %v, want %v", got, target)
	}
	return out, nil
}

// Merge flattens two equally sized images to RGBA8 and interleaves them.
func Merge(a, b image.Image) (*ir.RGBAImage, error) {
	pa := ir.FromImage(a)
	pb := ir.FromImage(b)
	pixels, err := weave.Interleave(pa.Pixels, pb.Pixels)
	if err != nil {
		return nil, fmt.Errorf("interleave: %w", err)
	}
	return &ir.RGBAImage{Width: pa.Width, Height: pa.Height, Pixels: pixels}, nil
}
