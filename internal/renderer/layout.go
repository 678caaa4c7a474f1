package renderer

import (
	"math"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// axesMarginInches is the blank border between the figure edge and the
// canvas extent.
const axesMarginInches = 0.15

// transform maps canvas data units onto an output surface measured in
// device units (pixels for raster output, points for SVG). The y axis is
// flipped: data y grows upwards, device y grows downwards.
type transform struct {
	canvas scene.Canvas
	dpi    float64
	Width  float64
	Height float64
	margin float64
}

func newTransform(c scene.Canvas, dpi float64) transform {
	return transform{
		canvas: c,
		dpi:    dpi,
		Width:  c.WidthInches * dpi,
		Height: c.HeightInches * dpi,
		margin: axesMarginInches * dpi,
	}
}

func (t transform) axesWidth() float64  { return t.Width - 2*t.margin }
func (t transform) axesHeight() float64 { return t.Height - 2*t.margin }

// X maps a data x coordinate to device units
func (t transform) X(x float64) float64 {
	return t.margin + (x-t.canvas.XMin)/(t.canvas.XMax-t.canvas.XMin)*t.axesWidth()
}

// Y maps a data y coordinate to device units
func (t transform) Y(y float64) float64 {
	return t.margin + (t.canvas.YMax-y)/(t.canvas.YMax-t.canvas.YMin)*t.axesHeight()
}

// Point maps a data point to device units
func (t transform) Point(p scene.Point) vec {
	return vec{t.X(p.X), t.Y(p.Y)}
}

// DX scales a horizontal data distance
func (t transform) DX(d float64) float64 {
	return d / (t.canvas.XMax - t.canvas.XMin) * t.axesWidth()
}

// DY scales a vertical data distance
func (t transform) DY(d float64) float64 {
	return d / (t.canvas.YMax - t.canvas.YMin) * t.axesHeight()
}

// Points converts a length in typographic points to device units
func (t transform) Points(pt float64) float64 {
	return pt * t.dpi / 72
}

// box is a shape's outline in device units
type box struct {
	X, Y, W, H float64
	Radius     float64
}

func (t transform) Box(s scene.Shape) box {
	b := s.Bounds()
	out := box{
		X: t.X(b.Min.X),
		Y: t.Y(b.Max.Y),
		W: t.DX(b.Max.X - b.Min.X),
		H: t.DY(b.Max.Y - b.Min.Y),
	}
	if s.Style == scene.BoxRound && s.Pad > 0 {
		out.Radius = math.Min(t.DX(s.Pad), t.DY(s.Pad))
	}
	return out
}
