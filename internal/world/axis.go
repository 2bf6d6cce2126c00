package world

// axisHeadroom is how many slots past the requested index a side grows by,
// so repeated writes near the frontier don't reallocate every time.
const axisHeadroom = 10

// Axis is a one-dimensional array indexed by any int, negative or not.
// Index i >= 0 lives in positive[i], index i < 0 in negative[-i-1].
// Unpopulated indices read as the default value.
type Axis[E any] struct {
	positive []E
	negative []E
	def      E
	clone    func(E) E
}

// NewAxis creates an empty axis whose unset slots hold def. New slots are
// filled with plain copies of def.
func NewAxis[E any](def E) Axis[E] {
	return NewAxisFunc(def, func(e E) E { return e })
}

// NewAxisFunc creates an empty axis that fills new slots with clone(def).
// Use it when E holds references that must not be shared between slots.
func NewAxisFunc[E any](def E, clone func(E) E) Axis[E] {
	return Axis[E]{def: def, clone: clone}
}

// Default returns the fill value.
func (a *Axis[E]) Default() E {
	return a.def
}

// Get returns the value at i, or the default if i was never materialized.
func (a *Axis[E]) Get(i int) E {
	side, idx := a.side(i)
	if idx >= len(*side) {
		return a.def
	}
	return (*side)[idx]
}

// Ptr returns a pointer to the slot at i, growing storage first if needed.
// The slot stays materialized even if nothing is written through it. The
// pointer is valid until the same side of the axis grows again.
func (a *Axis[E]) Ptr(i int) *E {
	side, idx := a.side(i)
	if idx >= len(*side) {
		*side = a.grow(*side, idx+axisHeadroom)
	}
	return &(*side)[idx]
}

// Set stores v at i.
func (a *Axis[E]) Set(i int, v E) {
	*a.Ptr(i) = v
}

// Len returns the populated lengths of the negative and positive sides.
func (a *Axis[E]) Len() (negative, positive int) {
	return len(a.negative), len(a.positive)
}

// Clone returns a deep copy; every element goes through the axis clone func.
func (a *Axis[E]) Clone() Axis[E] {
	out := Axis[E]{def: a.clone(a.def), clone: a.clone}
	out.positive = a.cloneSlice(a.positive)
	out.negative = a.cloneSlice(a.negative)
	return out
}

func (a *Axis[E]) side(i int) (*[]E, int) {
	if i >= 0 {
		return &a.positive, i
	}
	return &a.negative, -i - 1
}

func (a *Axis[E]) grow(s []E, n int) []E {
	out := make([]E, n)
	copy(out, s)
	for i := len(s); i < n; i++ {
		out[i] = a.clone(a.def)
	}
	return out
}

func (a *Axis[E]) cloneSlice(s []E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	for i, e := range s {
		out[i] = a.clone(e)
	}
	return out
}
