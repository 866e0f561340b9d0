package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/davesmith10/imgweave/internal/pipeline"
	"github.com/davesmith10/imgweave/internal/resample"
	"github.com/spf13/cobra"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Interleave two images to raw RGBA8 (raw output + JSON sidecar)",
	RunE:  runRaw,
}

func init() {
	rawCmd.Flags().StringP("first", "a", "", "First input image")
	rawCmd.Flags().StringP("second", "b", "", "Second input image")
	rawCmd.Flags().StringP("output", "o", "", "Output raw RGBA file")
	rawCmd.Flags().String("filter", "triangle", "Resampling filter")
	rawCmd.Flags().Int("capacity", 0, "Output buffer capacity in bytes (0 = size from target)")
	rawCmd.Flags().Bool("zstd", false, "Compress the raw output with zstd")
	rawCmd.MarkFlagRequired("first")
	rawCmd.MarkFlagRequired("second")
	rawCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(rawCmd)
}

type rawMeta struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	SourceFormat string `json:"source_format"`
	Compression  string `json:"compression"`
}

func runRaw(cmd *cobra.Command, args []string) error {
	firstPath, _ := cmd.Flags().GetString("first")
	secondPath, _ := cmd.Flags().GetString("second")
	outputPath, _ := cmd.Flags().GetString("output")
	filterStr, _ := cmd.Flags().GetString("filter")
	capacity, _ := cmd.Flags().GetInt("capacity")
	useZstd, _ := cmd.Flags().GetBool("zstd")

	filter, err := resample.ParseFilter(filterStr)
	if err != nil {
		return err
	}

	first, err := os.ReadFile(firstPath)
	if err != nil {
		return fmt.Errorf("reading first input: %w", err)
	}
	second, err := os.ReadFile(secondPath)
	if err != nil {
		return fmt.Errorf("reading second input: %w", err)
	}

	out, srcFormat, err := pipeline.Prepare(first, second, pipeline.Options{
		Resizer:    resample.New(filter),
		Capacity:   capacity,
		OutputName: outputPath,
	})
	if err != nil {
		return err
	}

	compression := codec.RawNone
	if useZstd {
		compression = codec.RawZstd
	}

	var raw bytes.Buffer
	if err := codec.WriteRaw(&raw, out.Data(), compression); err != nil {
		return fmt.Errorf("encoding raw RGBA: %w", err)
	}

	meta := rawMeta{
		Width:        int(out.Width),
		Height:       int(out.Height),
		Format:       "RGBA8",
		SourceFormat: string(srcFormat),
		Compression:  string(compression),
	}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sidecar: %w", err)
	}

	if err := os.WriteFile(outputPath, raw.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing raw output: %w", err)
	}
	metaPath := sidecarPath(outputPath)
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		// The raw dump is unusable without its dimensions.
		os.Remove(outputPath)
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Interleaved %v → raw RGBA (%d bytes, %s)\n", out.Dimensions(), out.Len(), compression)
	fmt.Printf("Sidecar: %s\n", metaPath)
	return nil
}

func sidecarPath(rawPath string) string {
	base := strings.TrimSuffix(rawPath, ".zst")
	return strings.TrimSuffix(base, ".raw") + ".json"
}
