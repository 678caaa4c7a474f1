package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// contentBounds returns the smallest rectangle holding every pixel that
// differs from bg. The result is empty when the image is blank.
func contentBounds(img image.Image, bg color.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1

	differs := func(x, y int) bool {
		return color.RGBAModel.Convert(img.At(x, y)) != bg
	}
	if rgba, ok := img.(*image.RGBA); ok {
		differs = func(x, y int) bool {
			i := rgba.PixOffset(x, y)
			p := rgba.Pix[i : i+4 : i+4]
			return p[0] != bg.R || p[1] != bg.G || p[2] != bg.B || p[3] != bg.A
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !differs(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// trimToContent crops img to its content and surrounds it with pad pixels
// of background. A blank image is returned unchanged.
func trimToContent(img image.Image, bg color.RGBA, pad int) image.Image {
	content := contentBounds(img, bg)
	if content.Empty() {
		return img
	}

	out := image.NewRGBA(image.Rect(0, 0, content.Dx()+2*pad, content.Dy()+2*pad))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Copy(out, image.Pt(pad, pad), img, content, draw.Src, nil)
	return out
}
