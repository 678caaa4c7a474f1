package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// Supported output formats
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatSVG  = "svg"
)

// NormalizeFormat lower-cases the format, maps "jpg" to "jpeg" and defaults
// an empty format to PNG.
func NormalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		return FormatPNG, nil
	case FormatPNG, FormatSVG, FormatJPEG:
		return f, nil
	case "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: png, jpeg, svg)", format)
	}
}

// ExportDiagram encodes the scene in the requested format and writes it
func ExportDiagram(ctx context.Context, s *scene.Scene, outputPath string, opts RenderOptions) error {
	data, err := Encode(ctx, s, opts)
	if err != nil {
		return err
	}

	return writeFile(outputPath, data)
}

// Encode renders the scene and returns the encoded file contents
func Encode(ctx context.Context, s *scene.Scene, opts RenderOptions) ([]byte, error) {
	// Check context before starting
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s == nil {
		return nil, fmt.Errorf("no scene to render")
	}

	format, err := NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	opts.Format = format
	opts = opts.withDefaults()

	if format == FormatSVG {
		data, err := NewSVGRenderer(opts).Render(s)
		if err != nil {
			return nil, fmt.Errorf("failed to generate SVG: %w", err)
		}
		return data, nil
	}

	img, err := NewRasterRenderer(opts).Render(s)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize diagram: %w", err)
	}

	return encodeImage(img, format)
}

// encodeImage encodes a raster image as PNG or JPEG
func encodeImage(img image.Image, format string) ([]byte, error) {
	buf := &bytes.Buffer{}
	switch format {
	case FormatPNG:
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	case FormatJPEG:
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 95}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported raster format: %s", format)
	}
	return buf.Bytes(), nil
}
