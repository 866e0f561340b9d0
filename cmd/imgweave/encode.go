package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw RGBA8 data to an image file",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGBA file")
	encodeCmd.Flags().StringP("output", "o", "", "Output image file")
	encodeCmd.Flags().String("format", "", "Output format (default: from output extension)")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().Int("quality", codec.DefaultQuality, "JPEG quality (1-100)")
	encodeCmd.Flags().Bool("best", false, "Use the best (slowest) PNG compression")
	encodeCmd.Flags().Bool("zstd", false, "Input is zstd-compressed")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	quality, _ := cmd.Flags().GetInt("quality")
	best, _ := cmd.Flags().GetBool("best")
	useZstd, _ := cmd.Flags().GetBool("zstd")

	var format codec.Format
	var err error
	if formatStr != "" {
		format, err = codec.ParseFormat(formatStr)
	} else {
		format, err = codec.FormatFromPath(outputPath)
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	compression := codec.RawNone
	if useZstd {
		compression = codec.RawZstd
	}
	pixels, err := codec.ReadRaw(data, compression)
	if err != nil {
		return fmt.Errorf("reading raw RGBA: %w", err)
	}

	expected := width * height * 4
	if len(pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d RGBA, got %d", expected, width, height, len(pixels))
	}

	encoded, err := codec.Encode(pixels, width, height, format, codec.EncoderOptions{Quality: quality, BestCompression: best})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Encoded %dx%d RGBA → %s (%s, %d bytes)\n", width, height, outputPath, format, len(encoded))
	return nil
}
