package integration

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regen28/terraform-provider-regen28/internal/parser"
	"github.com/regen28/terraform-provider-regen28/internal/provider"
	"github.com/regen28/terraform-provider-regen28/internal/renderer"
	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

const testDPI = 72

// TestFullPipeline tests the complete workflow from scene document to image
func TestFullPipeline(t *testing.T) {
	tests := []struct {
		name       string
		document   string
		wantShapes int
		wantArrows int
		format     string
	}{
		{
			name: "single panel as svg",
			document: `
box "dashboard" {
  x      = 2
  y      = 0.8
  width  = 8
  height = 1.8
  style  = "round"
  pad    = 0.2
  fill   = "#E8EAF6"
  edge   = "#303F9F"
}

text {
  x       = 6
  y       = 2.2
  content = "CENTRAL DASHBOARD"
  size    = 20
  weight  = "bold"
  ha      = "center"
}
`,
			wantShapes: 1,
			format:     "svg",
		},
		{
			name: "feeds and correlations as png",
			document: `
palette {
  mood = "#FFF3E0"
}

box "mood" {
  x      = 3.5
  y      = 4.8
  width  = 5
  height = 1.2
  fill   = colors.mood
}

arrow {
  from = [6, 4.8]
  to   = [6, 2.6]
}

arrow {
  from      = [2.75, 6.5]
  to        = [3.5, 5.4]
  style     = "dashed"
  both_ends = true
}

grid {
  alpha = 0.1
}
`,
			wantShapes: 1,
			wantArrows: 2,
			format:     "png",
		},
		{
			name:       "empty document as jpeg",
			document:   "grid {}\n",
			wantShapes: 0,
			format:     "jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tmpDir := t.TempDir()

			// Step 1: Write scene document
			docPath := filepath.Join(tmpDir, "scene.hcl")
			if err := os.WriteFile(docPath, []byte(tt.document), 0644); err != nil {
				t.Fatalf("Failed to write scene document: %v", err)
			}

			// Step 2: Parse scene document
			s, err := parser.ParseSceneFile(ctx, docPath)
			if err != nil {
				t.Fatalf("Failed to parse scene: %v", err)
			}

			counts := s.Count()
			if counts.Shapes != tt.wantShapes {
				t.Errorf("Expected %d shapes, got %d", tt.wantShapes, counts.Shapes)
			}
			if counts.Arrows != tt.wantArrows {
				t.Errorf("Expected %d arrows, got %d", tt.wantArrows, counts.Arrows)
			}

			// Step 3: Render diagram
			outputPath := filepath.Join(tmpDir, "diagram."+tt.format)
			opts := renderer.DefaultRenderOptions()
			opts.Format = tt.format
			opts.DPI = testDPI

			if err := renderer.RenderDiagram(ctx, s, outputPath, opts); err != nil {
				t.Fatalf("Failed to render diagram: %v", err)
			}

			// Step 4: Verify output file
			content, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			if len(content) == 0 {
				t.Fatal("Output file is empty")
			}

			switch tt.format {
			case "svg":
				svg := string(content)
				if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
					t.Error("SVG output missing svg tags")
				}
				if !strings.Contains(svg, "CENTRAL DASHBOARD") {
					t.Error("SVG output missing label text")
				}
			case "png":
				if _, err := png.Decode(bytes.NewReader(content)); err != nil {
					t.Errorf("PNG output does not decode: %v", err)
				}
			case "jpeg":
				if _, err := jpeg.Decode(bytes.NewReader(content)); err != nil {
					t.Errorf("JPEG output does not decode: %v", err)
				}
			}
		})
	}
}

// TestDiagramGeneratorEndToEnd draws the built-in scene and its document
// twin through the provider's generator and compares the results.
func TestDiagramGeneratorEndToEnd(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	generator := provider.NewDiagramGenerator()

	// relative paths may not climb out of the working directory
	document, err := filepath.Abs(filepath.Join("..", "parser", "testdata", "regen28.hcl"))
	if err != nil {
		t.Fatalf("Failed to resolve scene document: %v", err)
	}

	builtIn, err := generator.Generate(ctx, provider.DiagramConfig{
		OutputPath: filepath.Join(tmpDir, "builtin.png"),
		Format:     "png",
		DPI:        testDPI,
		Trim:       true,
	})
	if err != nil {
		t.Fatalf("Generate() built-in error = %v", err)
	}

	fromDoc, err := generator.Generate(ctx, provider.DiagramConfig{
		ScenePath:  document,
		OutputPath: filepath.Join(tmpDir, "document.png"),
		Format:     "png",
		DPI:        testDPI,
		Trim:       true,
	})
	if err != nil {
		t.Fatalf("Generate() document error = %v", err)
	}

	if builtIn.ElementCount != fromDoc.ElementCount {
		t.Errorf("element counts differ: built-in %d, document %d", builtIn.ElementCount, fromDoc.ElementCount)
	}
	if builtIn.SceneName != fromDoc.SceneName {
		t.Errorf("scene names differ: %q vs %q", builtIn.SceneName, fromDoc.SceneName)
	}
	if len(builtIn.OutOfBounds) != 0 || len(fromDoc.OutOfBounds) != 0 {
		t.Errorf("unexpected out of bounds elements: %v %v", builtIn.OutOfBounds, fromDoc.OutOfBounds)
	}

	a := decodeBounds(t, builtIn.OutputPath)
	b := decodeBounds(t, fromDoc.OutputPath)
	if abs(a.Dx()-b.Dx()) > 1 || abs(a.Dy()-b.Dy()) > 1 {
		t.Errorf("trimmed sizes differ: built-in %v, document %v", a, b)
	}
}

// TestPublishedDiagram renders the built-in scene with the published
// settings and checks the padding is opaque white.
func TestPublishedDiagram(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "regen28_architecture.png")
	opts := renderer.DefaultRenderOptions()
	opts.DPI = testDPI

	if err := renderer.RenderDiagram(context.Background(), scene.Regen28(), outputPath, opts); err != nil {
		t.Fatalf("RenderDiagram() error = %v", err)
	}

	f, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}

	r, g, b, a := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("top-left pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
}

func decodeBounds(t *testing.T, path string) image.Rectangle {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return image.Rect(0, 0, cfg.Width, cfg.Height)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
