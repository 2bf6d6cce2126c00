// Package quadtree provides a region quadtree that stores one value for
// every point of a rectangle. Writes split leaves lazily down to a maximum
// depth, and four sibling leaves that end up equal are merged back into one,
// so large uniform areas cost a single node.
//
// A QuadTree is not safe for concurrent use.
package quadtree

import (
	"iter"
	"math"
)

// node is either a *leaf or a *branch.
type node[D comparable] interface {
	isNode()
}

// leaf covers its whole region with one value. The value is shared by
// pointer between leaves and is never modified through it.
type leaf[D comparable] struct {
	value *D
}

// branch splits its region into four equal quadrants, indexed by TopLeft,
// TopRight, BottomLeft and BottomRight.
type branch[D comparable] struct {
	children [4]node[D]
}

func (*leaf[D]) isNode()   {}
func (*branch[D]) isNode() {}

// QuadTree maps every point of a rectangle to a value of type D.
type QuadTree[D comparable] struct {
	root     node[D]
	rect     Rect
	maxDepth int
}

// New creates a tree covering rect where every point holds initial. Leaves
// are never split below maxDepth levels.
//
// New panics if maxDepth is not positive or rect has no area.
func New[D comparable](rect Rect, maxDepth int, initial D) *QuadTree[D] {
	if maxDepth <= 0 {
		fmtPanic("max depth must be positive, got %d", maxDepth)
	}
	if !(rect.Width > 0 && rect.Height > 0) || isInf(rect.Width) || isInf(rect.Height) {
		fmtPanic("rect %v must have a finite positive size", rect)
	}
	return &QuadTree[D]{
		root:     &leaf[D]{value: &initial},
		rect:     rect,
		maxDepth: maxDepth,
	}
}

// Rect returns the region covered by the tree.
func (t *QuadTree[D]) Rect() Rect {
	return t.rect
}

// MaxDepth returns the deepest level a leaf may sit at.
func (t *QuadTree[D]) MaxDepth() int {
	return t.maxDepth
}

// Get returns the value at p. It panics if p is outside the tree's rect.
func (t *QuadTree[D]) Get(p Point) D {
	t.checkPoint(p)

	n, rect := t.root, t.rect
	for {
		switch cur := n.(type) {
		case *leaf[D]:
			return *cur.value
		case *branch[D]:
			var i int
			i, rect = rect.child(p)
			n = cur.children[i]
		}
	}
}

// Set stores value at p. It panics if p is outside the tree's rect.
func (t *QuadTree[D]) Set(p Point, value D) {
	t.SetShared(p, &value)
}

// SetShared stores the value ref points to at p. The tree keeps ref itself
// rather than a copy; callers must not modify *ref afterwards.
func (t *QuadTree[D]) SetShared(p Point, ref *D) {
	t.checkPoint(p)
	if ref == nil {
		textPanic("nil value")
	}
	set(&t.root, t.rect, p, ref, 0, t.maxDepth)
}

// set writes ref at p below n. It returns true when n has become a leaf
// holding *ref, which is the only case where n's parent may be able to
// merge.
func set[D comparable](n *node[D], rect Rect, p Point, ref *D, depth, maxDepth int) bool {
	switch cur := (*n).(type) {
	case *leaf[D]:
		if *cur.value == *ref {
			return false
		}

		if depth < maxDepth {
			b := &branch[D]{}
			for i := range b.children {
				b.children[i] = &leaf[D]{value: cur.value}
			}

			i, sub := rect.child(p)
			set(&b.children[i], sub, p, ref, depth+1, maxDepth)

			// The other three children still hold the old value.
			*n = b
			return false
		}

		cur.value = ref
		return true

	case *branch[D]:
		i, sub := rect.child(p)
		if !set(&cur.children[i], sub, p, ref, depth+1, maxDepth) {
			return false
		}

		for _, c := range cur.children {
			l, ok := c.(*leaf[D])
			if !ok || *l.value != *ref {
				return false
			}
		}

		*n = &leaf[D]{value: ref}
		return true
	}

	fmtPanic("unknown node type %T", *n)
	return false
}

// Leaves yields the region and value of every leaf, depth first, children
// in quadrant order.
func (t *QuadTree[D]) Leaves() iter.Seq2[Rect, D] {
	return func(yield func(Rect, D) bool) {
		walk(t.root, t.rect, 0, func(n node[D], rect Rect, _ int) bool {
			if l, ok := n.(*leaf[D]); ok {
				return yield(rect, *l.value)
			}
			return true
		})
	}
}

// Stats describes the shape of a tree.
type Stats struct {
	Leaves   int // Number of leaf nodes
	Branches int // Number of branch nodes
	Depth    int // Depth of the deepest leaf; 0 for a single leaf
}

// Stats counts the nodes of t.
func (t *QuadTree[D]) Stats() Stats {
	var s Stats
	walk(t.root, t.rect, 0, func(n node[D], _ Rect, depth int) bool {
		switch n.(type) {
		case *leaf[D]:
			s.Leaves++
			s.Depth = max(s.Depth, depth)
		case *branch[D]:
			s.Branches++
		}
		return true
	})
	return s
}

// walk visits n and its descendants in pre-order until visit returns false.
func walk[D comparable](n node[D], rect Rect, depth int, visit func(node[D], Rect, int) bool) bool {
	if !visit(n, rect, depth) {
		return false
	}
	if b, ok := n.(*branch[D]); ok {
		for i, c := range b.children {
			if !walk(c, rect.Quadrant(i), depth+1, visit) {
				return false
			}
		}
	}
	return true
}

func (t *QuadTree[D]) checkPoint(p Point) {
	if !t.rect.Contains(p) {
		fmtPanic("point (%g,%g) outside %v", p.X, p.Y, t.rect)
	}
}

func isInf(f float32) bool {
	return math.IsInf(float64(f), 0)
}
