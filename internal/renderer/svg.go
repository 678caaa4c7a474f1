package renderer

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// svgUnitsPerInch makes one SVG user unit one typographic point
const svgUnitsPerInch = 72

// Nominal font metrics as fractions of the font size, used to place
// baselines without loading the font.
const (
	svgAscent  = 0.93
	svgDescent = 0.22
)

// SVGRenderer handles SVG generation
type SVGRenderer struct {
	buf     *bytes.Buffer
	tr      transform
	options RenderOptions
}

// NewSVGRenderer creates a new SVG renderer
func NewSVGRenderer(opts RenderOptions) *SVGRenderer {
	return &SVGRenderer{
		buf:     &bytes.Buffer{},
		options: opts,
	}
}

// Render generates SVG for the whole figure
func (r *SVGRenderer) Render(s *scene.Scene) ([]byte, error) {
	if err := s.Canvas.Validate(); err != nil {
		return nil, fmt.Errorf("invalid canvas: %w", err)
	}
	r.buf.Reset()
	r.tr = newTransform(s.Canvas, svgUnitsPerInch)
	if math.Round(r.tr.Width) <= 0 || math.Round(r.tr.Height) <= 0 {
		return nil, fmt.Errorf("canvas %gx%g in has no area", s.Canvas.WidthInches, s.Canvas.HeightInches)
	}

	r.writeHeader(r.tr.Width, r.tr.Height, s.Background)

	for _, el := range s.Ordered() {
		switch e := el.(type) {
		case scene.Grid:
			r.renderGrid(e)
		case scene.Shape:
			r.renderShape(e)
		case scene.Arrow:
			r.renderArrow(e)
		case scene.Label:
			r.renderLabel(e)
		default:
			return nil, fmt.Errorf("unsupported element %T", el)
		}
	}

	r.buf.WriteString("</svg>\n")

	return r.buf.Bytes(), nil
}

// writeHeader writes the SVG header and the opaque background
func (r *SVGRenderer) writeHeader(width, height float64, bg scene.Color) {
	r.buf.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.Hex()))
}

func (r *SVGRenderer) renderGrid(g scene.Grid) {
	xs, ys := g.Lines()
	r.buf.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-opacity="%.2f" stroke-width="%.2f">
`, g.Color.Hex(), g.Alpha, gridLineWidth))
	for _, x := range xs {
		r.buf.WriteString(fmt.Sprintf(`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, r.tr.X(x), r.tr.Y(g.Extent.Max.Y), r.tr.X(x), r.tr.Y(g.Extent.Min.Y)))
	}
	for _, y := range ys {
		r.buf.WriteString(fmt.Sprintf(`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, r.tr.X(g.Extent.Min.X), r.tr.Y(y), r.tr.X(g.Extent.Max.X), r.tr.Y(y)))
	}
	r.buf.WriteString("</g>\n")
}

func (r *SVGRenderer) renderShape(s scene.Shape) {
	b := r.tr.Box(s)
	stroke := `stroke="none"`
	if s.EdgeWidth > 0 {
		stroke = fmt.Sprintf(`stroke="%s" stroke-width="%.2f"`, s.Edge.Hex(), s.EdgeWidth)
	}
	r.buf.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"
    fill="%s" %s opacity="%.2f"/>
`, b.X, b.Y, b.W, b.H, b.Radius, s.Fill.Hex(), stroke, s.Alpha))
}

func (r *SVGRenderer) renderArrow(a scene.Arrow) {
	shape := layoutArrow(
		r.tr.Point(a.From),
		r.tr.Point(a.To),
		a.Bidirectional,
		arrowShrink,
		arrowHeadLength,
		arrowHeadHalfWidth,
	)

	dash := ""
	if a.Style == scene.LineDashed {
		dash = fmt.Sprintf(` stroke-dasharray="%.2f %.2f"`, dashOn*a.Width, dashOff*a.Width)
	}

	r.buf.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f" fill="none">
  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>
`, a.Color.Hex(), a.Width, a.Alpha, shape.Start.X, shape.Start.Y, shape.End.X, shape.End.Y, dash))
	for _, h := range shape.Heads {
		r.buf.WriteString(fmt.Sprintf(`  <polyline points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" stroke-linejoin="round"/>
`, h[0].X, h[0].Y, h[1].X, h[1].Y, h[2].X, h[2].Y))
	}
	r.buf.WriteString("</g>\n")
}

func (r *SVGRenderer) renderLabel(l scene.Label) {
	lines := splitLines(l.Text)
	at := r.tr.Point(l.At)
	m := lineMetrics{
		Ascent:     svgAscent * l.Size,
		Descent:    svgDescent * l.Size,
		LineHeight: l.Size * scene.LineSpacing,
	}

	attrs := []string{
		`font-family="Go, DejaVu Sans, Arial, sans-serif"`,
		fmt.Sprintf(`font-size="%.1f"`, l.Size),
		fmt.Sprintf(`fill="%s"`, l.Color.Hex()),
		fmt.Sprintf(`text-anchor="%s"`, textAnchor(l.HAlign)),
	}
	if l.Weight == scene.WeightBold {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if l.Style == scene.StyleItalic {
		attrs = append(attrs, `font-style="italic"`)
	}

	r.buf.WriteString(fmt.Sprintf("<text %s>\n", strings.Join(attrs, " ")))
	for i, y := range baselines(len(lines), at.Y, l.VAlign, m) {
		r.buf.WriteString(fmt.Sprintf(`  <tspan x="%.2f" y="%.2f">%s</tspan>
`, at.X, y, html.EscapeString(lines[i])))
	}
	r.buf.WriteString("</text>\n")
}

func textAnchor(ha scene.HAlign) string {
	switch ha {
	case scene.AlignCenter:
		return "middle"
	case scene.AlignRight:
		return "end"
	default:
		return "start"
	}
}
