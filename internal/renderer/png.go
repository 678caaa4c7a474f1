package renderer

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// RasterRenderer draws a scene into an in-memory image
type RasterRenderer struct {
	dc      *gg.Context
	tr      transform
	fonts   *fontCache
	options RenderOptions
}

// NewRasterRenderer creates a new raster renderer
func NewRasterRenderer(opts RenderOptions) *RasterRenderer {
	return &RasterRenderer{
		options: opts.withDefaults(),
	}
}

// Render draws every element of the scene in paint order and, when
// trimming is enabled, crops the result to its content plus padding.
func (r *RasterRenderer) Render(s *scene.Scene) (image.Image, error) {
	if err := s.Canvas.Validate(); err != nil {
		return nil, fmt.Errorf("invalid canvas: %w", err)
	}
	r.tr = newTransform(s.Canvas, r.options.DPI)
	width := int(math.Round(r.tr.Width))
	height := int(math.Round(r.tr.Height))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %gx%g in at %g DPI has no area", s.Canvas.WidthInches, s.Canvas.HeightInches, r.options.DPI)
	}

	r.dc = gg.NewContext(width, height)
	r.fonts = newFontCache(r.options.DPI)
	defer r.fonts.close()

	// Fill background
	r.dc.SetColor(s.Background.Opaque())
	r.dc.Clear()

	for _, el := range s.Ordered() {
		switch e := el.(type) {
		case scene.Grid:
			r.renderGrid(e)
		case scene.Shape:
			r.renderShape(e)
		case scene.Arrow:
			r.renderArrow(e)
		case scene.Label:
			if err := r.renderLabel(e); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported element %T", el)
		}
	}

	img := r.dc.Image()
	if r.options.Trim {
		pad := int(math.Round(r.options.PadInches * r.options.DPI))
		img = trimToContent(img, s.Background.Opaque(), pad)
	}
	return img, nil
}

// renderGrid strokes the faint background grid
func (r *RasterRenderer) renderGrid(g scene.Grid) {
	xs, ys := g.Lines()

	r.dc.SetColor(g.Color.WithAlpha(g.Alpha))
	r.dc.SetLineWidth(r.tr.Points(gridLineWidth))
	r.dc.SetDash()

	for _, x := range xs {
		r.dc.DrawLine(r.tr.X(x), r.tr.Y(g.Extent.Max.Y), r.tr.X(x), r.tr.Y(g.Extent.Min.Y))
		r.dc.Stroke()
	}
	for _, y := range ys {
		r.dc.DrawLine(r.tr.X(g.Extent.Min.X), r.tr.Y(y), r.tr.X(g.Extent.Max.X), r.tr.Y(y))
		r.dc.Stroke()
	}
}

// renderShape fills and outlines a plain or rounded rectangle
func (r *RasterRenderer) renderShape(s scene.Shape) {
	b := r.tr.Box(s)
	if b.Radius > 0 {
		r.dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, b.Radius)
	} else {
		r.dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	}

	r.dc.SetColor(s.Fill.WithAlpha(s.Alpha))
	if s.EdgeWidth <= 0 {
		r.dc.Fill()
		return
	}
	r.dc.FillPreserve()

	r.dc.SetColor(s.Edge.WithAlpha(s.Alpha))
	r.dc.SetLineWidth(r.tr.Points(s.EdgeWidth))
	r.dc.SetDash()
	r.dc.Stroke()
}

// renderArrow strokes the shaft, then the open heads
func (r *RasterRenderer) renderArrow(a scene.Arrow) {
	shape := layoutArrow(
		r.tr.Point(a.From),
		r.tr.Point(a.To),
		a.Bidirectional,
		r.tr.Points(arrowShrink),
		r.tr.Points(arrowHeadLength),
		r.tr.Points(arrowHeadHalfWidth),
	)
	lw := r.tr.Points(a.Width)

	r.dc.SetColor(a.Color.WithAlpha(a.Alpha))
	r.dc.SetLineWidth(lw)
	r.dc.SetLineCapButt()
	r.dc.SetLineJoinRound()

	if a.Style == scene.LineDashed {
		r.dc.SetDash(dashOn*lw, dashOff*lw)
	}
	r.dc.DrawLine(shape.Start.X, shape.Start.Y, shape.End.X, shape.End.Y)
	r.dc.Stroke()
	r.dc.SetDash()

	for _, h := range shape.Heads {
		r.dc.MoveTo(h[0].X, h[0].Y)
		r.dc.LineTo(h[1].X, h[1].Y)
		r.dc.LineTo(h[2].X, h[2].Y)
		r.dc.Stroke()
	}
	r.dc.SetLineCapRound()
}

// renderLabel draws each line of a label with the requested alignment
func (r *RasterRenderer) renderLabel(l scene.Label) error {
	face, err := r.fonts.face(l.Weight, l.Style, l.Size)
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)
	r.dc.SetColor(l.Color.Opaque())

	lines := splitLines(l.Text)
	at := r.tr.Point(l.At)
	m := metricsOf(face, r.tr.Points(l.Size*scene.LineSpacing))

	for i, y := range baselines(len(lines), at.Y, l.VAlign, m) {
		w, _ := r.dc.MeasureString(lines[i])
		r.dc.DrawString(lines[i], alignX(at.X, w, l.HAlign), y)
	}
	return nil
}
