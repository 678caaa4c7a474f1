package scene

import (
	"fmt"
	"sort"
)

// Scene is the complete set of elements composed before rendering
type Scene struct {
	Name       string
	Canvas     Canvas
	Background Color
	Elements   []Element
}

// New creates an empty scene on the given canvas with a white background
func New(name string, canvas Canvas) *Scene {
	return &Scene{
		Name:       name,
		Canvas:     canvas,
		Background: White,
		Elements:   make([]Element, 0),
	}
}

// AddShape places a rectangle on the scene
func (s *Scene) AddShape(shape Shape) {
	s.Elements = append(s.Elements, shape)
}

// AddLabel places a text label on the scene
func (s *Scene) AddLabel(label Label) {
	s.Elements = append(s.Elements, label)
}

// AddArrow places an arrow on the scene
func (s *Scene) AddArrow(arrow Arrow) {
	s.Elements = append(s.Elements, arrow)
}

// AddGrid places a background grid spanning the whole canvas
func (s *Scene) AddGrid(grid Grid) {
	grid.Extent = s.Canvas.Extent()
	s.Elements = append(s.Elements, grid)
}

// Ordered returns the elements in paint order: ascending z-order, ties kept
// in insertion order.
func (s *Scene) Ordered() []Element {
	ordered := make([]Element, len(s.Elements))
	copy(ordered, s.Elements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})
	return ordered
}

// Counts tallies the elements by kind
type Counts struct {
	Shapes int
	Labels int
	Arrows int
	Grids  int
}

// Total returns the number of counted elements
func (c Counts) Total() int {
	return c.Shapes + c.Labels + c.Arrows + c.Grids
}

// Count tallies the scene's elements by kind
func (s *Scene) Count() Counts {
	var c Counts
	for _, el := range s.Elements {
		switch el.(type) {
		case Shape:
			c.Shapes++
		case Label:
			c.Labels++
		case Arrow:
			c.Arrows++
		case Grid:
			c.Grids++
		}
	}
	return c
}

// OutOfBounds describes an element that falls (partly) outside the canvas
type OutOfBounds struct {
	Index   int
	Element Element
}

func (o OutOfBounds) String() string {
	b := o.Element.Bounds()
	return fmt.Sprintf("element %d (%T) spans (%.2f,%.2f)-(%.2f,%.2f)", o.Index, o.Element, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// OutOfBounds lists the elements whose footprint leaves the canvas extent.
// Such elements are still rendered; they may just be clipped or trimmed.
func (s *Scene) OutOfBounds() []OutOfBounds {
	extent := s.Canvas.Extent()
	var out []OutOfBounds
	for i, el := range s.Elements {
		if !el.Bounds().Within(extent) {
			out = append(out, OutOfBounds{Index: i, Element: el})
		}
	}
	return out
}
