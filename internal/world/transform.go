package world

import "github.com/go-gl/mathgl/mgl32"

// World-space basis vectors. Hexes have unit spacing; the y axis is sheared
// 60 degrees from the x axis.
var (
	XAxis = mgl32.Vec2{1, 0}
	YAxis = mgl32.Vec2{0.5, 0.8660254}
)

// GridToWorld returns the world position of the center of hex (x, y).
func GridToWorld(x, y int) mgl32.Vec2 {
	return XAxis.Mul(float32(x)).Add(YAxis.Mul(float32(y)))
}

// HexToWorld returns the world position of the center of c.
func HexToWorld(c HexCoord) mgl32.Vec2 {
	return GridToWorld(c.X, c.Y)
}

// WorldToGrid returns the hex whose center is nearest to (wx, wy).
//
// Undoing the basis and truncating lands within one step of the answer, so
// only that candidate and its six neighbors are compared. Ties go to the
// truncated candidate, then to the neighbor visited first.
func WorldToGrid(wx, wy float32) (int, int) {
	gy := wy / YAxis.Y()
	gx := wx - gy*YAxis.X()

	target := mgl32.Vec2{wx, wy}
	distance := func(c HexCoord) float32 {
		return HexToWorld(c).Sub(target).LenSqr()
	}

	start := HexCoord{X: int(gx), Y: int(gy)}
	best, bestDist := start, distance(start)

	for c := range Neighborhood(start, 1) {
		if d := distance(c); d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best.X, best.Y
}

// WorldToHex is WorldToGrid returning a HexCoord.
func WorldToHex(wx, wy float32) HexCoord {
	x, y := WorldToGrid(wx, wy)
	return HexCoord{X: x, Y: y}
}
