// Package renderer turns a scene graph into an image file. It supports
// raster output (PNG, JPEG) drawn with antialiased vector primitives and
// trimmed to content, and SVG output over the full figure.
package renderer

import (
	"context"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// RenderOptions contains configuration for rendering
type RenderOptions struct {
	Format    string  // "png", "jpeg" or "svg"
	DPI       float64 // pixels per inch for raster output
	PadInches float64 // padding kept around the trimmed content
	Trim      bool    // crop raster output to its content before padding
}

// DefaultDPI is the resolution of the published diagram
const DefaultDPI = 300

const defaultPadInches = 0.2

// DefaultRenderOptions returns the settings used for the published diagram:
// PNG at 300 DPI, trimmed to content with 0.2 inch padding.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Format:    FormatPNG,
		DPI:       DefaultDPI,
		PadInches: defaultPadInches,
		Trim:      true,
	}
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.PadInches < 0 {
		o.PadInches = 0
	}
	return o
}

// RenderDiagram renders the scene and writes it to outputPath, replacing any
// existing file. It respects the provided context for cancellation.
func RenderDiagram(ctx context.Context, s *scene.Scene, outputPath string, opts RenderOptions) error {
	return ExportDiagram(ctx, s, outputPath, opts)
}
