package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/davesmith10/imgweave/internal/pipeline"
	"github.com/davesmith10/imgweave/internal/weave"
	"github.com/spf13/pflag"
)

func writeFixture(t *testing.T, dir, name string, w, h int, fill byte, f codec.Format) string {
	t.Helper()
	pixels := make([]byte, w*h*4)
	for i := range pixels {
		pixels[i] = fill
		if i%4 == 3 {
			pixels[i] = 255
		}
	}
	data, err := codec.Encode(pixels, w, h, f, codec.EncoderOptions{})
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	// Flag values persist on the package-level commands between runs.
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("resetting --%s: %v", f.Name, err)
			}
			f.Changed = false
		})
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCombineCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.png", 4, 4, 10, codec.PNG)
	b := writeFixture(t, dir, "b.png", 8, 8, 200, codec.PNG)
	out := filepath.Join(dir, "out.png")

	if err := execute(t, "combine", "-a", a, "-b", b, "-o", out, "--timings"); err != nil {
		t.Fatalf("combine: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	info, err := codec.GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Width != 4 || info.Height != 4 || info.Format != codec.PNG {
		t.Errorf("unexpected output: %+v", info)
	}
}

func TestCombineFormatMismatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.png", 4, 4, 10, codec.PNG)
	b := writeFixture(t, dir, "b.bmp", 4, 4, 20, codec.BMP)
	out := filepath.Join(dir, "out.png")

	err := execute(t, "combine", "-a", a, "-b", b, "-o", out)
	if !errors.Is(err, pipeline.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output file exists after failed run")
	}
}

func TestRawThenEncode(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.qoi", 3, 2, 1, codec.QOI)
	b := writeFixture(t, dir, "b.qoi", 3, 2, 2, codec.QOI)
	raw := filepath.Join(dir, "merged.raw.zst")

	if err := execute(t, "raw", "-a", a, "-b", b, "-o", raw, "--zstd"); err != nil {
		t.Fatalf("raw: %v", err)
	}

	metaJSON, err := os.ReadFile(filepath.Join(dir, "merged.json"))
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	var meta rawMeta
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		t.Fatalf("parsing sidecar: %v", err)
	}
	if meta.Width != 3 || meta.Height != 2 || meta.SourceFormat != "qoi" || meta.Compression != "zstd" {
		t.Errorf("unexpected sidecar: %+v", meta)
	}

	out := filepath.Join(dir, "merged.tiff")
	if err := execute(t, "encode", "-i", raw, "-o", out, "--width", "3", "--height", "2", "--zstd"); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := execute(t, "identify", out); err != nil {
		t.Fatalf("identify: %v", err)
	}
}

func TestRawSidecarFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.png", 2, 2, 1, codec.PNG)
	b := writeFixture(t, dir, "b.png", 2, 2, 2, codec.PNG)
	raw := filepath.Join(dir, "merged.raw")

	// A directory where the sidecar should go makes its write fail.
	if err := os.Mkdir(filepath.Join(dir, "merged.json"), 0755); err != nil {
		t.Fatalf("creating blocker: %v", err)
	}

	if err := execute(t, "raw", "-a", a, "-b", b, "-o", raw); err == nil {
		t.Fatal("expected sidecar write error")
	}
	if _, err := os.Stat(raw); !os.IsNotExist(err) {
		t.Errorf("raw output left behind after sidecar failure")
	}
}

func TestRawCapacityTooSmall(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.png", 2, 2, 1, codec.PNG)
	b := writeFixture(t, dir, "b.png", 2, 2, 2, codec.PNG)
	raw := filepath.Join(dir, "merged.raw")

	err := execute(t, "raw", "-a", a, "-b", b, "-o", raw, "--capacity", "15")
	if !errors.Is(err, weave.ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
	for _, p := range []string{raw, filepath.Join(dir, "merged.json")} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s written after failed commit", filepath.Base(p))
		}
	}

	if err := execute(t, "raw", "-a", a, "-b", b, "-o", raw, "--capacity", "16"); err != nil {
		t.Fatalf("raw with exact capacity: %v", err)
	}
}

func TestSidecarPath(t *testing.T) {
	tests := map[string]string{
		"out.raw":     "out.json",
		"out.raw.zst": "out.json",
		"out.bin":     "out.bin.json",
	}
	for in, want := range tests {
		if got := sidecarPath(in); got != want {
			t.Errorf("sidecarPath(%q) = %q, want %q", in, got, want)
		}
	}
}
