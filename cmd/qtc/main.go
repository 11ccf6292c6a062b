// Command qtc compresses and decompresses grayscale PGM images using
// the quadtree codec.
//
// Usage:
//
//	qtc -c -i <input.pgm> [-o <output.qtc>] [-a <alpha>] [-g <grid.pgm>] [-v]
//	qtc -u -i <input.qtc> [-o <output.pgm>]
//	qtc info <input.qtc>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deepteams/qtc"
	"github.com/deepteams/qtc/internal/pgm"
	"github.com/deepteams/qtc/internal/qlog"
)

const (
	defaultCompressOutput   = "default_compress_output.qtc"
	defaultDecompressOutput = "default_compress_input.pgm"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "info" {
		if err := runInfo(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "qtc: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "qtc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("qtc", flag.ContinueOnError)
	compress := fs.Bool("c", false, "compress a PGM input into a QTC stream")
	decompress := fs.Bool("u", false, "decompress a QTC stream into a PGM")
	input := fs.String("i", "", "input file (required)")
	output := fs.String("o", "", "output file")
	alpha := fs.Float64("a", 0, "lossy parameter alpha; lossy pass runs when alpha > 1")
	gridPath := fs.String("g", "", "also emit a segmentation-grid PGM to this path")
	verbose := fs.Bool("v", false, "verbose output")
	help := fs.Bool("h", false, "print usage and exit zero")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fs.Usage()
		return nil
	}

	if *compress == *decompress {
		return fmt.Errorf("%w: exactly one of -c or -u is required", qtc.ErrInvalidParameter)
	}
	if *input == "" {
		return fmt.Errorf("%w: -i is required", qtc.ErrInvalidParameter)
	}

	logger := qlog.Discard()
	if *verbose {
		logger = qlog.New(os.Stderr, true)
	}

	if *compress {
		return runCompress(*input, *output, *alpha, *gridPath, logger)
	}
	return runDecompress(*input, *output, logger)
}

func runCompress(inputPath, outputPath string, alpha float64, gridPath string, logger qlog.Logger) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := pgm.Read(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	raster := &qtc.Raster{Side: img.Side, Pix: img.Pix}

	if outputPath == "" {
		outputPath = defaultCompressOutput
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	stats := &qtc.Stats{}
	opts := &qtc.Options{Alpha: alpha, Logger: logger, Stats: stats}
	if err := qtc.Compress(out, raster, opts); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("compressing: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}
	logger.Printf("wrote %s: %d -> %d bytes (%.2f%% smaller)", outputPath, stats.OriginalBytes, stats.CompressedBytes, stats.CompressionRatio)

	if gridPath != "" {
		if err := writeGrid(raster, alpha, gridPath); err != nil {
			return fmt.Errorf("writing grid: %w", err)
		}
	}
	return nil
}

func writeGrid(raster *qtc.Raster, alpha float64, gridPath string) error {
	pix, err := qtc.RenderGrid(raster, &qtc.Options{Alpha: alpha})
	if err != nil {
		return err
	}

	f, err := os.Create(gridPath)
	if err != nil {
		return err
	}
	if err := pgm.Write(f, &pgm.Image{Side: raster.Side, Pix: pix}); err != nil {
		f.Close()
		os.Remove(gridPath)
		return err
	}
	return f.Close()
}

func runDecompress(inputPath, outputPath string, logger qlog.Logger) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	raster, err := qtc.Decompress(in)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", inputPath, err)
	}

	if outputPath == "" {
		outputPath = defaultDecompressOutput
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := pgm.Write(out, &pgm.Image{Side: raster.Side, Pix: raster.Pix}); err != nil {
		out.Close()
		os.Remove(outputPath)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}
	logger.Printf("wrote %s", outputPath)
	return nil
}

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: missing input file\nUsage: qtc info <input.qtc>")
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := qtc.GetInfo(f)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	fmt.Printf("File:              %s\n", path)
	fmt.Printf("Dimensions:        %d x %d\n", info.Side, info.Side)
	fmt.Printf("Depth:             %d\n", info.Depth)
	fmt.Printf("Compression rate:  %.2f%%\n", info.Stats.CompressionRatio)
	fmt.Printf("Node count:        %d\n", info.Stats.NodeCount)
	fmt.Printf("Median variance:   %.3f\n", info.Stats.MedianVariance)
	fmt.Printf("Max variance:      %.3f\n", info.Stats.MaxVariance)

	if fi, err := os.Stat(path); err == nil {
		fmt.Printf("File size:         %d bytes\n", fi.Size())
	}
	return nil
}
