package renderer

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/regen28/terraform-provider-regen28/internal/scene"
)

type fontVariant struct {
	weight scene.FontWeight
	style  scene.FontStyle
}

type faceKey struct {
	fontVariant
	size float64
}

// fontCache parses the Go font family lazily and keeps one face per
// variant and size for the lifetime of a render.
type fontCache struct {
	dpi   float64
	fonts map[fontVariant]*opentype.Font
	faces map[faceKey]font.Face
}

func newFontCache(dpi float64) *fontCache {
	return &fontCache{
		dpi:   dpi,
		fonts: make(map[fontVariant]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

func ttfFor(v fontVariant) []byte {
	switch {
	case v.weight == scene.WeightBold && v.style == scene.StyleItalic:
		return gobolditalic.TTF
	case v.weight == scene.WeightBold:
		return gobold.TTF
	case v.style == scene.StyleItalic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// face returns a face for the variant at size points
func (c *fontCache) face(weight scene.FontWeight, style scene.FontStyle, size float64) (font.Face, error) {
	key := faceKey{fontVariant{weight, style}, size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	fnt, ok := c.fonts[key.fontVariant]
	if !ok {
		var err error
		fnt, err = opentype.Parse(ttfFor(key.fontVariant))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		c.fonts[key.fontVariant] = fnt
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     c.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.1fpt font face: %w", size, err)
	}
	c.faces[key] = face
	return face, nil
}

// metricsOf returns the face's vertical metrics in pixels
func metricsOf(face font.Face, lineHeight float64) lineMetrics {
	m := face.Metrics()
	return lineMetrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: lineHeight,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// close releases every cached face
func (c *fontCache) close() {
	for k, f := range c.faces {
		f.Close()
		delete(c.faces, k)
	}
}
