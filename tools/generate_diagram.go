//go:build ignore

// Renders a scene document in every supported format, for eyeballing
// renderer changes:
//
//	go run tools/generate_diagram.go internal/parser/testdata/regen28.hcl
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/regen28/terraform-provider-regen28/internal/parser"
	"github.com/regen28/terraform-provider-regen28/internal/renderer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run tools/generate_diagram.go <scene.hcl>")
		os.Exit(2)
	}

	ctx := context.Background()
	path := os.Args[1]

	s, err := parser.ParseSceneFile(ctx, path)
	if err != nil {
		color.Red("Error parsing scene: %v", err)
		os.Exit(1)
	}

	counts := s.Count()
	fmt.Printf("Scene %q: %d shapes, %d labels, %d arrows, %d grids\n",
		s.Name, counts.Shapes, counts.Labels, counts.Arrows, counts.Grids)
	for _, oob := range s.OutOfBounds() {
		color.Yellow("  warning: %s", oob)
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, format := range []string{renderer.FormatPNG, renderer.FormatJPEG, renderer.FormatSVG} {
		opts := renderer.DefaultRenderOptions()
		opts.Format = format

		out := base + "." + format
		if err := renderer.RenderDiagram(ctx, s, out, opts); err != nil {
			color.Red("Error rendering %s: %v", format, err)
			os.Exit(1)
		}
		color.Green("✅ %s", out)
	}
}
