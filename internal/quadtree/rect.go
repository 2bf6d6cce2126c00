package quadtree

import "fmt"

// Point is a position in the tree's continuous coordinate space.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle with its origin at the bottom-left
// corner. Y grows upwards.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Child quadrant indices.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Mid returns the center of r.
func (r Rect) Mid() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Quadrant returns the sub-rectangle for child index i.
func (r Rect) Quadrant(i int) Rect {
	w := r.Width * 0.5
	h := r.Height * 0.5
	x1 := r.X + w
	y1 := r.Y + h

	switch i {
	case TopLeft:
		return Rect{r.X, y1, w, h}
	case TopRight:
		return Rect{x1, y1, w, h}
	case BottomLeft:
		return Rect{r.X, r.Y, w, h}
	case BottomRight:
		return Rect{x1, r.Y, w, h}
	}
	fmtPanic("invalid quadrant %d", i)
	return Rect{}
}

// child picks the quadrant of r holding p. Top means strictly above the
// midline and left strictly left of it, so a point on the horizontal midline
// goes to the bottom half and one on the vertical midline to the right.
func (r Rect) child(p Point) (int, Rect) {
	mid := r.Mid()

	var i int
	if p.Y > mid.Y {
		if p.X < mid.X {
			i = TopLeft
		} else {
			i = TopRight
		}
	} else {
		if p.X < mid.X {
			i = BottomLeft
		} else {
			i = BottomRight
		}
	}
	return i, r.Quadrant(i)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}
