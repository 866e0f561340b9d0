package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/davesmith10/imgweave/internal/metrics"
	"github.com/davesmith10/imgweave/internal/pipeline"
	"github.com/davesmith10/imgweave/internal/resample"
	"github.com/spf13/cobra"
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine two images of the same format into one",
	RunE:  runCombine,
}

func init() {
	combineCmd.Flags().StringP("first", "a", "", "First input image")
	combineCmd.Flags().StringP("second", "b", "", "Second input image")
	combineCmd.Flags().StringP("output", "o", "", "Output image file")
	combineCmd.Flags().String("filter", "triangle", "Resampling filter (triangle, nearest, catmullrom, bicubic, mitchell, lanczos3)")
	combineCmd.Flags().Int("capacity", 0, "Fixed output buffer capacity in bytes (0 = sized from target)")
	combineCmd.Flags().String("format", "", "Output format override (png, jpeg, gif, bmp, tiff, qoi)")
	combineCmd.Flags().Int("quality", codec.DefaultQuality, "JPEG quality (1-100)")
	combineCmd.Flags().Bool("best", false, "Use the best (slowest) PNG compression")
	combineCmd.Flags().Bool("timings", false, "Print per-stage timings")
	combineCmd.MarkFlagRequired("first")
	combineCmd.MarkFlagRequired("second")
	combineCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	firstPath, _ := cmd.Flags().GetString("first")
	secondPath, _ := cmd.Flags().GetString("second")
	outputPath, _ := cmd.Flags().GetString("output")
	filterStr, _ := cmd.Flags().GetString("filter")
	capacity, _ := cmd.Flags().GetInt("capacity")
	formatStr, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")
	best, _ := cmd.Flags().GetBool("best")
	showTimings, _ := cmd.Flags().GetBool("timings")

	filter, err := resample.ParseFilter(filterStr)
	if err != nil {
		return err
	}

	var outFormat codec.Format
	if formatStr != "" {
		outFormat, err = codec.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		if !outFormat.CanEncode() {
			return fmt.Errorf("cannot write %s output", outFormat)
		}
	}

	first, err := os.ReadFile(firstPath)
	if err != nil {
		return fmt.Errorf("reading first input: %w", err)
	}
	second, err := os.ReadFile(secondPath)
	if err != nil {
		return fmt.Errorf("reading second input: %w", err)
	}

	opts := pipeline.Options{
		Codec:        codec.Codec{Options: codec.EncoderOptions{Quality: quality, BestCompression: best}},
		Resizer:      resample.New(filter),
		Capacity:     capacity,
		OutputFormat: outFormat,
		OutputName:   outputPath,
	}

	result, err := pipeline.Run(first, second, opts)
	if err != nil {
		return fmt.Errorf("combine: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("First:  %s (%s, %v)\n", firstPath, result.InputFormat, result.First)
	fmt.Printf("Second: %s (%s, %v)\n", secondPath, result.InputFormat, result.Second)
	fmt.Printf("Target: %v (%s filter)\n", result.Target, filter)
	fmt.Printf("Output: %s (%s, %d bytes)\n", outputPath, result.Format, len(result.Data))

	if showTimings {
		fmt.Println()
		metrics.PrintTimings(os.Stdout, result.Timings)
	}
	return nil
}
