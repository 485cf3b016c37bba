package svgbot

import "fmt"

// Rect is an axis aligned area given by its origin and extent. Width and
// Height must be non-zero because mapping divides by them.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect returns the rect with origin (x, y) and the given extent.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners builds a rect from its top left and bottom right corners.
// The corners have to be ordered.
func RectFromCorners(left, top, right, bottom float64) (Rect, error) {
	if !(left < right) {
		return Rect{}, fmt.Errorf("left edge %g must be smaller than right edge %g", left, right)
	}
	if !(top < bottom) {
		return Rect{}, fmt.Errorf("top edge %g must be smaller than bottom edge %g", top, bottom)
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, nil
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Valid reports whether both extents are non-zero.
func (r Rect) Valid() bool {
	return r.Width != 0 && r.Height != 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
