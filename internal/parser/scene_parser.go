package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// PaletteVariable is the name palette entries are exposed under in
// expressions, e.g. `fill = colors.mood`.
const PaletteVariable = "colors"

var sceneSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "background"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "canvas"},
		{Type: "palette"},
		{Type: "box", LabelNames: []string{"name"}},
		{Type: "text"},
		{Type: "arrow"},
		{Type: "grid"},
	},
}

// ParseSceneFile reads an HCL scene document from disk. The scene is named
// after the file unless the document sets `name`.
func ParseSceneFile(ctx context.Context, path string) (*scene.Scene, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parseScene(name, path, src)
}

// ParseScene decodes an HCL scene document held in memory
func ParseScene(ctx context.Context, name string, src []byte) (*scene.Scene, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return parseScene(name, name+".hcl", src)
}

func parseScene(name, filename string, src []byte) (*scene.Scene, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL parse errors: %s", diags.Error())
	}

	content, diags := file.Body.Content(sceneSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse body: %s", diags.Error())
	}

	// canvas and palette apply to every element, wherever they appear
	canvas := defaultCanvas()
	palette := map[string]cty.Value{}
	var seenCanvas, seenPalette bool

	for _, block := range content.Blocks {
		switch block.Type {
		case "canvas":
			if seenCanvas {
				return nil, fmt.Errorf("%s: only one canvas block is allowed", block.DefRange)
			}
			seenCanvas = true
			if diags := gohcl.DecodeBody(block.Body, nil, &canvas); diags.HasErrors() {
				return nil, fmt.Errorf("invalid canvas: %s", diags.Error())
			}
		case "palette":
			if seenPalette {
				return nil, fmt.Errorf("%s: only one palette block is allowed", block.DefRange)
			}
			seenPalette = true
			if err := decodePalette(block.Body, palette); err != nil {
				return nil, err
			}
		}
	}

	extent := scene.Canvas{
		XMin:         canvas.XMin,
		XMax:         canvas.XMax,
		YMin:         canvas.YMin,
		YMax:         canvas.YMax,
		WidthInches:  canvas.WidthIn,
		HeightInches: canvas.HeightIn,
	}
	if err := extent.Validate(); err != nil {
		return nil, fmt.Errorf("invalid canvas: %w", err)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			PaletteVariable: cty.ObjectVal(palette),
		},
	}

	if attr, ok := content.Attributes["name"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &name); diags.HasErrors() {
			return nil, fmt.Errorf("invalid name: %s", diags.Error())
		}
	}

	s := scene.New(name, extent)

	if attr, ok := content.Attributes["background"]; ok {
		var bg string
		if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &bg); diags.HasErrors() {
			return nil, fmt.Errorf("invalid background: %s", diags.Error())
		}
		c, err := scene.ParseColor(bg)
		if err != nil {
			return nil, fmt.Errorf("invalid background: %w", err)
		}
		s.Background = c
	}

	for _, block := range content.Blocks {
		var err error
		switch block.Type {
		case "box":
			err = decodeBox(s, block, evalCtx)
		case "text":
			err = decodeText(s, block, evalCtx)
		case "arrow":
			err = decodeArrow(s, block, evalCtx)
		case "grid":
			err = decodeGrid(s, block, evalCtx)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", block.DefRange, err)
		}
	}

	return s, nil
}

// decodePalette evaluates every palette attribute to a normalised hex colour
func decodePalette(body hcl.Body, into map[string]cty.Value) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid palette: %s", diags.Error())
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var raw string
		if diags := gohcl.DecodeExpression(attrs[name].Expr, nil, &raw); diags.HasErrors() {
			return fmt.Errorf("invalid palette entry %q: %s", name, diags.Error())
		}
		c, err := scene.ParseColor(raw)
		if err != nil {
			return fmt.Errorf("invalid palette entry %q: %w", name, err)
		}
		into[name] = cty.StringVal(c.Hex())
	}
	return nil
}

func decodeBox(s *scene.Scene, block *hcl.Block, evalCtx *hcl.EvalContext) error {
	b := defaultBox()
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &b); diags.HasErrors() {
		return fmt.Errorf("invalid box %q: %s", block.Labels[0], diags.Error())
	}

	style, err := ParseBoxStyle(b.Style)
	if err != nil {
		return fmt.Errorf("box %q: %w", block.Labels[0], err)
	}
	fill, err := scene.ParseColor(b.Fill)
	if err != nil {
		return fmt.Errorf("box %q fill: %w", block.Labels[0], err)
	}
	edge, err := scene.ParseColor(b.Edge)
	if err != nil {
		return fmt.Errorf("box %q edge: %w", block.Labels[0], err)
	}

	s.AddShape(scene.Shape{
		Origin:    scene.Point{X: b.X, Y: b.Y},
		Width:     b.Width,
		Height:    b.Height,
		Style:     style,
		Pad:       b.Pad,
		Fill:      fill,
		Edge:      edge,
		EdgeWidth: b.LineWidth,
		Alpha:     b.Alpha,
	})
	return nil
}

func decodeText(s *scene.Scene, block *hcl.Block, evalCtx *hcl.EvalContext) error {
	t := defaultText()
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &t); diags.HasErrors() {
		return fmt.Errorf("invalid text: %s", diags.Error())
	}
	if !(t.Size > 0) {
		return fmt.Errorf("text size must be positive, got %v", t.Size)
	}

	weight, err := ParseFontWeight(t.Weight)
	if err != nil {
		return err
	}
	style, err := ParseFontStyle(t.Style)
	if err != nil {
		return err
	}
	ha, err := ParseHAlign(t.HA)
	if err != nil {
		return err
	}
	va, err := ParseVAlign(t.VA)
	if err != nil {
		return err
	}
	col, err := scene.ParseColor(t.Color)
	if err != nil {
		return fmt.Errorf("text color: %w", err)
	}

	s.AddLabel(scene.Label{
		Text:   t.Content,
		At:     scene.Point{X: t.X, Y: t.Y},
		Size:   t.Size,
		Weight: weight,
		Style:  style,
		Color:  col,
		HAlign: ha,
		VAlign: va,
	})
	return nil
}

func decodeArrow(s *scene.Scene, block *hcl.Block, evalCtx *hcl.EvalContext) error {
	a := defaultArrow()
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &a); diags.HasErrors() {
		return fmt.Errorf("invalid arrow: %s", diags.Error())
	}

	from, err := toPoint("from", a.From)
	if err != nil {
		return err
	}
	to, err := toPoint("to", a.To)
	if err != nil {
		return err
	}
	style, err := ParseLineStyle(a.Style)
	if err != nil {
		return err
	}
	col, err := scene.ParseColor(a.Color)
	if err != nil {
		return fmt.Errorf("arrow color: %w", err)
	}

	s.AddArrow(scene.Arrow{
		From:          from,
		To:            to,
		Style:         style,
		Color:         col,
		Width:         a.Width,
		Alpha:         a.Alpha,
		Bidirectional: a.BothEnds,
	})
	return nil
}

func decodeGrid(s *scene.Scene, block *hcl.Block, evalCtx *hcl.EvalContext) error {
	g := defaultGrid()
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &g); diags.HasErrors() {
		return fmt.Errorf("invalid grid: %s", diags.Error())
	}
	if g.Step <= 0 {
		return fmt.Errorf("grid step must be positive, got %v", g.Step)
	}

	col, err := scene.ParseColor(g.Color)
	if err != nil {
		return fmt.Errorf("grid color: %w", err)
	}

	s.AddGrid(scene.Grid{Step: g.Step, Color: col, Alpha: g.Alpha})
	return nil
}

func toPoint(attr string, v []float64) (scene.Point, error) {
	if len(v) != 2 {
		return scene.Point{}, fmt.Errorf("%s must be [x, y], got %d values", attr, len(v))
	}
	return scene.Point{X: v[0], Y: v[1]}, nil
}
