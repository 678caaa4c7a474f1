// Package scene holds the in-memory scene graph of a static diagram: the
// canvas, and the shapes, labels, arrows and grid placed on it. Elements are
// plain values, created once and never mutated after they are added.
package scene

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in canvas data units
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in data units
type Rect struct {
	Min, Max Point
}

// Within reports whether r lies entirely inside o
func (r Rect) Within(o Rect) bool {
	return o.Min.X <= r.Min.X && o.Min.Y <= r.Min.Y && r.Max.X <= o.Max.X && r.Max.Y <= o.Max.Y
}

// Canvas is the bounded coordinate space every element is placed within,
// together with the physical size of the figure it is rendered onto.
type Canvas struct {
	XMin, XMax   float64
	YMin, YMax   float64
	WidthInches  float64
	HeightInches float64
}

// Extent returns the canvas bounds as a rectangle
func (c Canvas) Extent() Rect {
	return Rect{Min: Point{c.XMin, c.YMin}, Max: Point{c.XMax, c.YMax}}
}

// Validate rejects canvases with an empty data range or a figure without
// area. NaN fails every comparison and is rejected too.
func (c Canvas) Validate() error {
	if !(c.XMax > c.XMin) {
		return fmt.Errorf("x_max (%v) must be greater than x_min (%v)", c.XMax, c.XMin)
	}
	if !(c.YMax > c.YMin) {
		return fmt.Errorf("y_max (%v) must be greater than y_min (%v)", c.YMax, c.YMin)
	}
	if !(c.WidthInches > 0) || !(c.HeightInches > 0) {
		return fmt.Errorf("figure size %vx%v in must be positive", c.WidthInches, c.HeightInches)
	}
	return nil
}

// Aspect returns the width/height ratio of the figure
func (c Canvas) Aspect() float64 {
	if c.HeightInches == 0 {
		return 0
	}
	return c.WidthInches / c.HeightInches
}

// Element is anything that can be placed on a canvas
type Element interface {
	// ZOrder decides paint order; lower values are painted first
	ZOrder() float64
	// Bounds returns the element's footprint in data units
	Bounds() Rect
}

// Z-orders follow the usual plotting conventions: patches below text and
// annotations, grid below patches.
const (
	ZGrid  = 0.5
	ZShape = 1.0
	ZLabel = 3.0
	ZArrow = 3.0
)

// BoxStyle selects between a plain and a rounded rectangle
type BoxStyle int

const (
	BoxSquare BoxStyle = iota
	BoxRound
)

// Shape is a plain or rounded rectangle. Origin is the lower-left corner.
// For rounded boxes the drawn outline grows by Pad on every side and the
// corner radius equals Pad.
type Shape struct {
	Origin    Point
	Width     float64
	Height    float64
	Style     BoxStyle
	Pad       float64
	Fill      Color
	Edge      Color
	EdgeWidth float64 // points
	Alpha     float64
}

func (s Shape) ZOrder() float64 { return ZShape }

// Bounds returns the outline including the rounding pad
func (s Shape) Bounds() Rect {
	pad := 0.0
	if s.Style == BoxRound {
		pad = s.Pad
	}
	return Rect{
		Min: Point{s.Origin.X - pad, s.Origin.Y - pad},
		Max: Point{s.Origin.X + s.Width + pad, s.Origin.Y + s.Height + pad},
	}
}

// FontWeight is normal or bold
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontStyle is upright or italic
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// HAlign positions text horizontally relative to its anchor
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign positions text vertically relative to its anchor
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignMiddle
	AlignTop
	AlignBottom
)

// LineSpacing is the distance between consecutive lines of a label, as a
// multiple of the font size.
const LineSpacing = 1.2

// Label is a piece of text anchored at a point. Text may span several
// lines separated by "\n".
type Label struct {
	Text   string
	At     Point
	Size   float64 // points
	Weight FontWeight
	Style  FontStyle
	Color  Color
	HAlign HAlign
	VAlign VAlign
}

func (l Label) ZOrder() float64 { return ZLabel }

// Bounds of a label are just its anchor; the rendered extent depends on
// the font and is resolved by the renderer.
func (l Label) Bounds() Rect {
	return Rect{Min: l.At, Max: l.At}
}

// LineStyle is solid or dashed
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
)

// Arrow connects two points. Heads are drawn at To, and also at From when
// Bidirectional is set.
type Arrow struct {
	From          Point
	To            Point
	Style         LineStyle
	Color         Color
	Width         float64 // points
	Alpha         float64
	Bidirectional bool
}

func (a Arrow) ZOrder() float64 { return ZArrow }

func (a Arrow) Bounds() Rect {
	return Rect{
		Min: Point{math.Min(a.From.X, a.To.X), math.Min(a.From.Y, a.To.Y)},
		Max: Point{math.Max(a.From.X, a.To.X), math.Max(a.From.Y, a.To.Y)},
	}
}

// Grid draws faint lines every Step data units across the whole canvas
type Grid struct {
	Step  float64
	Color Color
	Alpha float64
	// Extent is filled in from the canvas when the grid is added
	Extent Rect
}

func (g Grid) ZOrder() float64 { return ZGrid }

func (g Grid) Bounds() Rect { return g.Extent }

// Lines returns the grid line positions along each axis
func (g Grid) Lines() (xs, ys []float64) {
	if g.Step <= 0 {
		return nil, nil
	}
	for x := math.Ceil(g.Extent.Min.X/g.Step) * g.Step; x <= g.Extent.Max.X+1e-9; x += g.Step {
		xs = append(xs, x)
	}
	for y := math.Ceil(g.Extent.Min.Y/g.Step) * g.Step; y <= g.Extent.Max.Y+1e-9; y += g.Step {
		ys = append(ys, y)
	}
	return xs, ys
}
