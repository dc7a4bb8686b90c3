// Command iconsmith renders a parametric icon design to PNG files at
// multiple resolutions and packages them into a multi-resolution ICO
// container, optionally bundling everything into a single zip.
//
// A design can come from a YAML preset file, from flags, or both (flags win):
//
//	iconsmith -preset app-icon.yaml -out dist -name appicon
//	iconsmith -shape circle -color-a '#0ea5e9' -color-b '#1e3a8a' -glow
package main

import (
	"archive/zip"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/iconsmith/iconsmith"
	"github.com/iconsmith/iconsmith/internal/preset"
)

var defaultSizes = []int{16, 32, 48, 64, 128, 256}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "iconsmith: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		presetPath = flag.String("preset", "", "YAML preset file with design parameters")
		outDir     = flag.String("out", ".", "output directory")
		name       = flag.String("name", "icon", "base name for output files")
		sizesFlag  = flag.String("sizes", "", "comma-separated export sizes (default 16,32,48,64,128,256)")
		bundle     = flag.Bool("bundle", false, "also write <name>.zip containing all outputs")
		verbose    = flag.Bool("v", false, "log progress to stderr")

		gradient    = flag.String("gradient", "", "gradient kind: linear, radial or conic")
		colorA      = flag.String("color-a", "", "gradient start color (hex)")
		colorB      = flag.String("color-b", "", "gradient end color (hex)")
		angle       = flag.Int("angle", -1, "gradient angle in degrees")
		shape       = flag.String("shape", "", "shape: circle, rounded-square or squircle")
		padding     = flag.Int("padding", -1, "padding percent, 0..20")
		strokeWidth = flag.Int("stroke-width", -1, "stroke width on a 1024-unit canvas, 0..20")
		strokeColor = flag.String("stroke-color", "", "stroke color (hex)")
		glow        = flag.Bool("glow", false, "enable the ambient glow layer")
		background  = flag.String("background", "", "background: transparent, solid or paper")
		bgColor     = flag.String("bg-color", "", "background color for -background solid (hex)")
	)
	flag.Parse()

	if *verbose {
		iconsmith.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params := iconsmith.DefaultParams()
	sizes := defaultSizes
	if *presetPath != "" {
		var presetSizes []int
		var err error
		params, presetSizes, err = preset.Load(*presetPath)
		if err != nil {
			return err
		}
		if len(presetSizes) > 0 {
			sizes = presetSizes
		}
	}

	if *gradient != "" {
		params.Gradient = iconsmith.GradientKind(*gradient)
	}
	if *shape != "" {
		params.Shape = iconsmith.ShapeKind(*shape)
	}
	if *background != "" {
		params.Background = iconsmith.BackgroundKind(*background)
	}
	if *angle >= 0 {
		params.AngleDeg = *angle
	}
	if *padding >= 0 {
		params.Padding = *padding
	}
	if *strokeWidth >= 0 {
		params.StrokeWidth = *strokeWidth
	}
	if *glow {
		params.Glow = true
	}
	if err := overrideColor(&params.ColorA, *colorA, "color-a"); err != nil {
		return err
	}
	if err := overrideColor(&params.ColorB, *colorB, "color-b"); err != nil {
		return err
	}
	if err := overrideColor(&params.StrokeColor, *strokeColor, "stroke-color"); err != nil {
		return err
	}
	if err := overrideColor(&params.BGColor, *bgColor, "bg-color"); err != nil {
		return err
	}

	if *sizesFlag != "" {
		var err error
		sizes, err = parseSizes(*sizesFlag)
		if err != nil {
			return err
		}
	}

	res, err := iconsmith.Export(context.Background(), params, sizes)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	written := make(map[string][]byte)
	for size, data := range res.PNGs {
		written[iconsmith.PNGFilename(*name, size)] = data
	}
	if res.ICO != nil {
		written[iconsmith.ICOFilename(*name)] = res.ICO
	}

	for _, fname := range sortedNames(written) {
		p := filepath.Join(*outDir, fname)
		if err := os.WriteFile(p, written[fname], 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", p, len(written[fname]))
	}

	if *bundle {
		p := filepath.Join(*outDir, *name+".zip")
		if err := writeBundle(p, written); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", p)
	}
	return nil
}

// overrideColor applies a hex color flag value when present.
func overrideColor(dst *iconsmith.RGBA, hex, flagName string) error {
	if hex == "" {
		return nil
	}
	c, err := iconsmith.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("-%s: %w", flagName, err)
	}
	*dst = c
	return nil
}

// parseSizes parses a comma-separated size list.
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("-sizes: invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// writeBundle archives all outputs into one zip file.
func writeBundle(path string, files map[string][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, fname := range sortedNames(files) {
		w, err := zw.Create(fname)
		if err != nil {
			return err
		}
		if _, err := w.Write(files[fname]); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// sortedNames returns the map keys in a fixed order so outputs and bundles
// are written deterministically.
func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for fname := range files {
		names = append(names, fname)
	}
	sort.Strings(names)
	return names
}
