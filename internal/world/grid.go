package world

// Grid stores one value per hex, unbounded in every direction. It is a
// sparse axis of columns (indexed by X), each a sparse axis of cells
// (indexed by Y). Cells that were never written read as the default.
type Grid[D any] struct {
	cols Axis[Axis[D]]
}

// NewGrid creates a grid whose unset cells hold def.
func NewGrid[D any](def D) *Grid[D] {
	return NewGridFunc(def, func(d D) D { return d })
}

// NewGridFunc creates a grid that fills new cells with clone(def).
func NewGridFunc[D any](def D, clone func(D) D) *Grid[D] {
	col := NewAxisFunc(def, clone)
	return &Grid[D]{
		cols: NewAxisFunc(col, func(a Axis[D]) Axis[D] { return a.Clone() }),
	}
}

// Default returns the value of unset cells.
func (g *Grid[D]) Default() D {
	col := g.cols.Default()
	return col.Default()
}

// Get returns the value at c.
func (g *Grid[D]) Get(c HexCoord) D {
	col := g.cols.Get(c.X)
	return col.Get(c.Y)
}

// Ptr returns a pointer to the cell at c, materializing it if needed.
func (g *Grid[D]) Ptr(c HexCoord) *D {
	return g.cols.Ptr(c.X).Ptr(c.Y)
}

// Set stores v at c.
func (g *Grid[D]) Set(c HexCoord, v D) {
	*g.Ptr(c) = v
}

// EnsureBounds pre-sizes storage for the box spanned by (xMin, yMin) and
// (xMax, yMax) by touching both corners. Nothing is written.
func (g *Grid[D]) EnsureBounds(xMin, xMax, yMin, yMax int) {
	g.Ptr(HexCoord{X: xMin, Y: yMin})
	g.Ptr(HexCoord{X: xMax, Y: yMax})
}

// WithBounds calls EnsureBounds and returns g for chaining.
func (g *Grid[D]) WithBounds(xMin, xMax, yMin, yMax int) *Grid[D] {
	g.EnsureBounds(xMin, xMax, yMin, yMax)
	return g
}
