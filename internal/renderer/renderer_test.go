package renderer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// testDPI keeps test renders small while leaving grid lines visible
const testDPI = 72

func testOptions(format string) RenderOptions {
	opts := DefaultRenderOptions()
	opts.Format = format
	opts.DPI = testDPI
	return opts
}

func decodePNG(t *testing.T, data []byte) *image.RGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

func TestRenderDiagram(t *testing.T) {
	s := scene.Regen28()

	tests := []struct {
		name    string
		format  string
		file    string
		magic   []byte
		wantErr bool
	}{
		{
			name:   "PNG format",
			format: "png",
			file:   "diagram.png",
			magic:  []byte("\x89PNG"),
		},
		{
			name:   "JPEG format",
			format: "jpg",
			file:   "diagram.jpg",
			magic:  []byte{0xFF, 0xD8},
		},
		{
			name:   "SVG format",
			format: "SVG",
			file:   "diagram.svg",
			magic:  []byte("<?xml"),
		},
		{
			name:   "default format",
			format: "",
			file:   "diagram",
			magic:  []byte("\x89PNG"),
		},
		{
			name:    "unsupported format",
			format:  "pdf",
			file:    "diagram.pdf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), tt.file)

			err := RenderDiagram(context.Background(), s, outputPath, testOptions(tt.format))
			if (err != nil) != tt.wantErr {
				t.Fatalf("RenderDiagram() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
					t.Errorf("RenderDiagram() created %s despite failing", outputPath)
				}
				return
			}

			content, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatalf("Failed to read output file: %v", err)
			}
			if len(content) == 0 {
				t.Fatal("Output file is empty")
			}
			if !bytes.HasPrefix(content, tt.magic) {
				t.Errorf("Output does not start with %q", tt.magic)
			}
		})
	}
}

func TestRenderDiagramPNGProperties(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "regen28_architecture.png")

	if err := RenderDiagram(context.Background(), scene.Regen28(), outputPath, testOptions(FormatPNG)); err != nil {
		t.Fatalf("RenderDiagram() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	img := decodePNG(t, data)
	b := img.Bounds()

	// Corners sit in the padding, far from any shape
	white := color.RGBA{255, 255, 255, 255}
	for _, p := range []image.Point{{0, 0}, {b.Dx() - 1, 0}, {0, b.Dy() - 1}, {b.Dx() - 1, b.Dy() - 1}} {
		if got := img.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("corner %v = %v, want white", p, got)
		}
	}

	// Trimmed output can never exceed the figure plus padding
	figW := int(math.Round(scene.Regen28Canvas.WidthInches * testDPI))
	figH := int(math.Round(scene.Regen28Canvas.HeightInches * testDPI))
	pad := int(math.Round(defaultPadInches * testDPI))
	if b.Dx() > figW+2*pad || b.Dy() > figH+2*pad {
		t.Errorf("trimmed size %dx%d exceeds figure %dx%d plus padding", b.Dx(), b.Dy(), figW, figH)
	}

	ratio := float64(b.Dx()) / float64(b.Dy())
	if want := scene.Regen28Canvas.Aspect(); math.Abs(ratio-want) > 0.03 {
		t.Errorf("aspect ratio = %.4f, want about %.4f", ratio, want)
	}
}

func TestRenderDiagramIsDeterministic(t *testing.T) {
	ctx := context.Background()
	s := scene.Regen28()

	first, err := Encode(ctx, s, testOptions(FormatPNG))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := Encode(ctx, s, testOptions(FormatPNG))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	a, b := decodePNG(t, first), decodePNG(t, second)
	if a.Bounds() != b.Bounds() {
		t.Fatalf("bounds differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same scene produced different pixels")
	}
}

func TestRenderDiagramOverwritesExistingFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "regen28_architecture.png")
	if err := os.WriteFile(outputPath, []byte("stale content that is not an image"), 0644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := RenderDiagram(context.Background(), scene.Regen28(), outputPath, testOptions(FormatPNG)); err != nil {
			t.Fatalf("RenderDiagram() run %d error = %v", i, err)
		}
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	decodePNG(t, data)

	entries, err := os.ReadDir(filepath.Dir(outputPath))
	if err != nil {
		t.Fatalf("Failed to list output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file in output dir, got %d", len(entries))
	}
}

func TestRenderDiagramContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outputPath := filepath.Join(t.TempDir(), "diagram.png")
	err := RenderDiagram(ctx, scene.Regen28(), outputPath, testOptions(FormatPNG))
	if err != context.Canceled {
		t.Errorf("RenderDiagram() error = %v, want context.Canceled", err)
	}
}

func TestRenderDiagramErrors(t *testing.T) {
	ctx := context.Background()

	if err := RenderDiagram(ctx, nil, filepath.Join(t.TempDir(), "x.png"), testOptions(FormatPNG)); err == nil {
		t.Error("expected error for nil scene")
	}

	flat := scene.New("flat", scene.Canvas{XMax: 1, YMax: 1})
	if _, err := Encode(ctx, flat, testOptions(FormatPNG)); err == nil {
		t.Error("expected error for a canvas without area")
	}

	degenerate := []scene.Canvas{
		{XMin: 5, XMax: 5, YMax: 1, WidthInches: 2, HeightInches: 2},
		{XMax: 1, YMin: 3, YMax: 1, WidthInches: 2, HeightInches: 2},
		{XMax: 1, YMax: 1, WidthInches: -3, HeightInches: 2},
	}
	for _, c := range degenerate {
		s := scene.New("degenerate", c)
		s.AddShape(scene.Shape{Width: 1, Height: 1, Fill: scene.MustColor("#FF0000")})
		for _, format := range []string{FormatPNG, FormatSVG} {
			if _, err := Encode(ctx, s, testOptions(format)); err == nil || !strings.Contains(err.Error(), "invalid canvas") {
				t.Errorf("Encode(%s) on canvas %+v: expected invalid canvas error, got %v", format, c, err)
			}
		}
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "diagram.png")
	err := RenderDiagram(ctx, scene.Regen28(), missingDir, testOptions(FormatPNG))
	if err == nil || !strings.Contains(err.Error(), "failed to write") {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestRasterRendererFillsShapes(t *testing.T) {
	opts := testOptions(FormatPNG)
	opts.Trim = false

	img, err := NewRasterRenderer(opts).Render(scene.Regen28())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	tr := newTransform(scene.Regen28Canvas, testDPI)
	p := tr.Point(scene.Point{X: 3.8, Y: 4.9})
	got := color.RGBAModel.Convert(img.At(int(p.X), int(p.Y)))
	if want := scene.MustColor("#FFF3E0").Opaque(); got != want {
		t.Errorf("mood panel interior = %v, want %v", got, want)
	}

	if img.Bounds().Dx() != 20*testDPI || img.Bounds().Dy() != 14*testDPI {
		t.Errorf("untrimmed size = %v, want full figure", img.Bounds())
	}
}

func TestTrimToContent(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(20, 30, 50, 40), image.NewUniform(color.RGBA{255, 0, 0, 255}), image.Point{}, draw.Src)

	if got := contentBounds(img, white); got != image.Rect(20, 30, 50, 40) {
		t.Fatalf("contentBounds() = %v", got)
	}

	out := trimToContent(img, white, 5)
	if out.Bounds() != image.Rect(0, 0, 40, 20) {
		t.Fatalf("trimToContent() bounds = %v, want 40x20", out.Bounds())
	}
	if got := color.RGBAModel.Convert(out.At(0, 0)); got != white {
		t.Errorf("padding pixel = %v, want white", got)
	}
	if got := color.RGBAModel.Convert(out.At(5, 5)); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("content pixel = %v, want red", got)
	}
}

func TestTrimToContentBlank(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	if !contentBounds(img, white).Empty() {
		t.Error("blank image should have empty content bounds")
	}
	if out := trimToContent(img, white, 3); out != image.Image(img) {
		t.Error("blank image should be returned unchanged")
	}
}

func TestSVGRenderer(t *testing.T) {
	data, err := NewSVGRenderer(testOptions(FormatSVG)).Render(scene.Regen28())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	svg := string(data)

	checks := []struct {
		name string
		want string
	}{
		{"title", "ReGen28 Wellness Platform Architecture"},
		{"escaped ampersand", "Habits &amp; Wellness"},
		{"figure size", `width="1440" height="1008"`},
		{"white background", `fill="#FFFFFF"`},
		{"bold text", `font-weight="bold"`},
		{"italic text", `font-style="italic"`},
		{"closing tag", "</svg>"},
	}
	for _, c := range checks {
		if !strings.Contains(svg, c.want) {
			t.Errorf("SVG missing %s (%q)", c.name, c.want)
		}
	}

	// five single-headed feeds plus three double-headed correlations
	if got := strings.Count(svg, "<polyline"); got != 11 {
		t.Errorf("arrow heads = %d, want 11", got)
	}
	if got := strings.Count(svg, "stroke-dasharray"); got != 3 {
		t.Errorf("dashed arrows = %d, want 3", got)
	}
	if got := strings.Count(svg, "<rect"); got != 20 {
		t.Errorf("rects = %d, want 19 shapes plus background", got)
	}
	// "Tracker\nData" and friends become two tspans each
	if got := strings.Count(svg, "<tspan"); got != 44 {
		t.Errorf("tspans = %d, want 44", got)
	}
}
