package parser

import (
	"fmt"
	"strings"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

// canvasBlock is the optional `canvas` block; absent attributes keep the
// defaults set before decoding.
type canvasBlock struct {
	XMin     float64 `hcl:"x_min,optional"`
	XMax     float64 `hcl:"x_max,optional"`
	YMin     float64 `hcl:"y_min,optional"`
	YMax     float64 `hcl:"y_max,optional"`
	WidthIn  float64 `hcl:"width_in,optional"`
	HeightIn float64 `hcl:"height_in,optional"`
}

func defaultCanvas() canvasBlock {
	return canvasBlock{XMax: 12, YMax: 12, WidthIn: 20, HeightIn: 14}
}

// boxBlock is a `box "name" { ... }` block
type boxBlock struct {
	X         float64 `hcl:"x"`
	Y         float64 `hcl:"y"`
	Width     float64 `hcl:"width"`
	Height    float64 `hcl:"height"`
	Style     string  `hcl:"style,optional"`
	Pad       float64 `hcl:"pad,optional"`
	Fill      string  `hcl:"fill,optional"`
	Edge      string  `hcl:"edge,optional"`
	LineWidth float64 `hcl:"line_width,optional"`
	Alpha     float64 `hcl:"alpha,optional"`
}

func defaultBox() boxBlock {
	return boxBlock{Style: "square", Fill: "white", Edge: "black", LineWidth: 1, Alpha: 1}
}

// textBlock is a `text { ... }` block
type textBlock struct {
	X       float64 `hcl:"x"`
	Y       float64 `hcl:"y"`
	Content string  `hcl:"content"`
	Size    float64 `hcl:"size,optional"`
	Weight  string  `hcl:"weight,optional"`
	Style   string  `hcl:"style,optional"`
	Color   string  `hcl:"color,optional"`
	HA      string  `hcl:"ha,optional"`
	VA      string  `hcl:"va,optional"`
}

func defaultText() textBlock {
	return textBlock{Size: 10, Weight: "normal", Style: "normal", Color: "black", HA: "left", VA: "baseline"}
}

// arrowBlock is an `arrow { ... }` block
type arrowBlock struct {
	From     []float64 `hcl:"from"`
	To       []float64 `hcl:"to"`
	Color    string    `hcl:"color,optional"`
	Width    float64   `hcl:"width,optional"`
	Alpha    float64   `hcl:"alpha,optional"`
	Style    string    `hcl:"style,optional"`
	BothEnds bool      `hcl:"both_ends,optional"`
}

func defaultArrow() arrowBlock {
	return arrowBlock{Color: "black", Width: 1, Alpha: 1, Style: "solid"}
}

// gridBlock is the `grid { ... }` block
type gridBlock struct {
	Step  float64 `hcl:"step,optional"`
	Color string  `hcl:"color,optional"`
	Alpha float64 `hcl:"alpha,optional"`
}

func defaultGrid() gridBlock {
	return gridBlock{Step: 1, Color: "#B0B0B0", Alpha: 1}
}

// ParseBoxStyle maps "square" / "round" to a box style
func ParseBoxStyle(s string) (scene.BoxStyle, error) {
	switch strings.ToLower(s) {
	case "square", "":
		return scene.BoxSquare, nil
	case "round":
		return scene.BoxRound, nil
	}
	return 0, fmt.Errorf("unknown box style %q (want square or round)", s)
}

// ParseFontWeight maps "normal" / "bold" to a font weight
func ParseFontWeight(s string) (scene.FontWeight, error) {
	switch strings.ToLower(s) {
	case "normal", "":
		return scene.WeightNormal, nil
	case "bold":
		return scene.WeightBold, nil
	}
	return 0, fmt.Errorf("unknown font weight %q (want normal or bold)", s)
}

// ParseFontStyle maps "normal" / "italic" to a font style
func ParseFontStyle(s string) (scene.FontStyle, error) {
	switch strings.ToLower(s) {
	case "normal", "":
		return scene.StyleNormal, nil
	case "italic":
		return scene.StyleItalic, nil
	}
	return 0, fmt.Errorf("unknown font style %q (want normal or italic)", s)
}

// ParseHAlign maps "left" / "center" / "right"
func ParseHAlign(s string) (scene.HAlign, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return scene.AlignLeft, nil
	case "center", "centre":
		return scene.AlignCenter, nil
	case "right":
		return scene.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown horizontal alignment %q", s)
}

// ParseVAlign maps "baseline" / "center" / "top" / "bottom"
func ParseVAlign(s string) (scene.VAlign, error) {
	switch strings.ToLower(s) {
	case "baseline", "":
		return scene.AlignBaseline, nil
	case "center", "centre", "middle":
		return scene.AlignMiddle, nil
	case "top":
		return scene.AlignTop, nil
	case "bottom":
		return scene.AlignBottom, nil
	}
	return 0, fmt.Errorf("unknown vertical alignment %q", s)
}

// ParseLineStyle maps "solid" / "dashed"
func ParseLineStyle(s string) (scene.LineStyle, error) {
	switch strings.ToLower(s) {
	case "solid", "":
		return scene.LineSolid, nil
	case "dashed":
		return scene.LineDashed, nil
	}
	return 0, fmt.Errorf("unknown line style %q (want solid or dashed)", s)
}
