// Package world provides the hex grid, its sparse storage, and the transforms
// between hex coordinates and continuous world space.
// Uses axial coordinates (x, y) for the hex grid.
package world

import (
	"fmt"
	"iter"
)

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -x - y.
type HexCoord struct {
	X int
	Y int
}

// Origin is the hex at (0, 0).
var Origin = HexCoord{}

// Hex is shorthand for HexCoord{X: x, Y: y}.
func Hex(x, y int) HexCoord {
	return HexCoord{X: x, Y: y}
}

// Unit offsets for the six neighbor directions.
var (
	OffsetLeft        = HexCoord{X: -1, Y: 0}
	OffsetRight       = HexCoord{X: 1, Y: 0}
	OffsetTopLeft     = HexCoord{X: -1, Y: 1}
	OffsetTopRight    = HexCoord{X: 0, Y: 1}
	OffsetBottomLeft  = HexCoord{X: 0, Y: -1}
	OffsetBottomRight = HexCoord{X: 1, Y: -1}
)

// HexNeighborDirections defines the six neighbor offsets in axial coordinates.
var HexNeighborDirections = [6]HexCoord{
	OffsetLeft,
	OffsetRight,
	OffsetTopLeft,
	OffsetTopRight,
	OffsetBottomLeft,
	OffsetBottomRight,
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.X - h.Y
}

// Translate returns h shifted by offset.
func (h HexCoord) Translate(offset HexCoord) HexCoord {
	return HexCoord{X: h.X + offset.X, Y: h.Y + offset.Y}
}

func (h HexCoord) Left() HexCoord        { return h.Translate(OffsetLeft) }
func (h HexCoord) Right() HexCoord       { return h.Translate(OffsetRight) }
func (h HexCoord) TopLeft() HexCoord     { return h.Translate(OffsetTopLeft) }
func (h HexCoord) TopRight() HexCoord    { return h.Translate(OffsetTopRight) }
func (h HexCoord) BottomLeft() HexCoord  { return h.Translate(OffsetBottomLeft) }
func (h HexCoord) BottomRight() HexCoord { return h.Translate(OffsetBottomRight) }

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = h.Translate(dir)
	}
	return result
}

// Around is the method form of Neighborhood.
func (h HexCoord) Around(radius int) iter.Seq[HexCoord] {
	return Neighborhood(h, radius)
}

func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.X, h.Y)
}

// Neighborhood yields every hex within distance radius of center, center
// included, row by row from dy = -radius up to dy = +radius. A radius of r
// yields 3r²+3r+1 coordinates; a negative radius yields none.
func Neighborhood(center HexCoord, radius int) iter.Seq[HexCoord] {
	return func(yield func(HexCoord) bool) {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius - min(dy, 0); dx <= radius-max(dy, 0); dx++ {
				if !yield(center.Translate(HexCoord{X: dx, Y: dy})) {
					return
				}
			}
		}
	}
}

// Ring yields the hexes at exactly distance radius from center, in the same
// order Neighborhood visits them. Radius 0 yields the center alone.
func Ring(center HexCoord, radius int) iter.Seq[HexCoord] {
	return func(yield func(HexCoord) bool) {
		for c := range Neighborhood(center, radius) {
			if Distance(center, c) != radius {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	return max(dx, dy, ds)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
