package renderer

import (
	"math"
	"strings"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// Arrow geometry in points. Heads are open chevrons sized from a 10pt
// mutation scale; both ends are pulled in slightly so heads do not touch
// the boxes they point at.
const (
	arrowMutationScale = 10.0
	arrowHeadLength    = 0.4 * arrowMutationScale
	arrowHeadHalfWidth = 0.2 * arrowMutationScale
	arrowShrink        = 2.0
	dashOn             = 3.7 // multiples of the line width
	dashOff            = 1.6
	gridLineWidth      = 0.8
)

// vec is a point or direction in device units
type vec struct {
	X, Y float64
}

func (v vec) add(o vec) vec { return vec{v.X + o.X, v.Y + o.Y} }
func (v vec) sub(o vec) vec { return vec{v.X - o.X, v.Y - o.Y} }
func (v vec) scale(f float64) vec { return vec{v.X * f, v.Y * f} }
func (v vec) length() float64 { return math.Hypot(v.X, v.Y) }
func (v vec) normal() vec { return vec{-v.Y, v.X} }
func (v vec) near(o vec, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// arrowShape is an arrow resolved into a shaft and its heads. Each head is
// {barb, tip, barb}.
type arrowShape struct {
	Start, End vec
	Heads      [][3]vec
}

// layoutArrow computes the shaft and head polylines for an arrow from
// start to end, all in device units.
func layoutArrow(start, end vec, bidirectional bool, shrink, headLength, headHalfWidth float64) arrowShape {
	d := end.sub(start)
	length := d.length()
	if length == 0 {
		return arrowShape{Start: start, End: end}
	}
	u := d.scale(1 / length)

	if length > 2*shrink {
		start = start.add(u.scale(shrink))
		end = end.sub(u.scale(shrink))
	}

	shape := arrowShape{Start: start, End: end}
	shape.Heads = append(shape.Heads, head(end, u, headLength, headHalfWidth))
	if bidirectional {
		shape.Heads = append(shape.Heads, head(start, u.scale(-1), headLength, headHalfWidth))
	}
	return shape
}

// head builds a chevron whose tip sits at tip, pointing along u
func head(tip, u vec, length, halfWidth float64) [3]vec {
	back := tip.sub(u.scale(length))
	n := u.normal().scale(halfWidth)
	return [3]vec{back.add(n), tip, back.sub(n)}
}

// lineMetrics describes a font in device units
type lineMetrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// baselines returns the device y of each line's baseline for a label of n
// lines anchored at anchorY. Baseline alignment anchors the last line.
func baselines(n int, anchorY float64, va scene.VAlign, m lineMetrics) []float64 {
	if n == 0 {
		return nil
	}
	span := float64(n-1) * m.LineHeight

	var first float64
	switch va {
	case scene.AlignTop:
		first = anchorY + m.Ascent
	case scene.AlignBottom:
		first = anchorY - m.Descent - span
	case scene.AlignMiddle:
		height := span + m.Ascent + m.Descent
		first = anchorY - height/2 + m.Ascent
	default:
		first = anchorY - span
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = first + float64(i)*m.LineHeight
	}
	return out
}

// alignX returns the left edge of a line of the given width
func alignX(anchorX, width float64, ha scene.HAlign) float64 {
	switch ha {
	case scene.AlignCenter:
		return anchorX - width/2
	case scene.AlignRight:
		return anchorX - width
	default:
		return anchorX
	}
}

// splitLines splits label text on newlines
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
