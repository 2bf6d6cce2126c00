package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxis_Default(t *testing.T) {
	a := NewAxis("empty")

	for _, i := range []int{0, 1, -1, 9, -10, 1 << 20, -(1 << 20)} {
		assert.Equal(t, "empty", a.Get(i), "index %d", i)
	}

	neg, pos := a.Len()
	assert.Zero(t, neg)
	assert.Zero(t, pos)
}

func TestAxis_SetGet(t *testing.T) {
	a := NewAxis(0)

	a.Set(3, 30)
	a.Set(-1, -10)
	a.Set(-4, -40)

	assert.Equal(t, 30, a.Get(3))
	assert.Equal(t, -10, a.Get(-1))
	assert.Equal(t, -40, a.Get(-4))

	for _, i := range []int{0, 1, 2, 4, 100, -2, -3, -5, -100} {
		assert.Zero(t, a.Get(i), "index %d", i)
	}
}

func TestAxis_Growth(t *testing.T) {
	a := NewAxis(7)

	a.Set(5, 1)
	neg, pos := a.Len()
	assert.Zero(t, neg)
	assert.Equal(t, 15, pos)

	a.Set(-3, 1)
	neg, pos = a.Len()
	assert.Equal(t, 12, neg)
	assert.Equal(t, 15, pos)

	t.Run("FillsWithDefault", func(t *testing.T) {
		for i := 0; i < 15; i++ {
			if i != 5 {
				assert.Equal(t, 7, a.Get(i))
			}
		}
	})

	t.Run("InRangeDoesNotResize", func(t *testing.T) {
		a.Set(0, 2)
		a.Set(-1, 2)
		neg, pos := a.Len()
		assert.Equal(t, 12, neg)
		assert.Equal(t, 15, pos)
		assert.Equal(t, 1, a.Get(5))
		assert.Equal(t, 1, a.Get(-3))
	})

	t.Run("FrontierGrowsWithHeadroom", func(t *testing.T) {
		a.Set(15, 3)
		_, pos := a.Len()
		assert.Equal(t, 25, pos)
		assert.Equal(t, 1, a.Get(5))
		assert.Equal(t, 3, a.Get(15))
	})
}

func TestAxis_PtrMaterializes(t *testing.T) {
	a := NewAxis(1.5)

	p := a.Ptr(-20)
	require.NotNil(t, p)
	assert.Equal(t, 1.5, *p)

	neg, pos := a.Len()
	assert.Equal(t, 29, neg)
	assert.Zero(t, pos)

	*p = 2.5
	assert.Equal(t, 2.5, a.Get(-20))
}

func TestAxis_CloneFunc(t *testing.T) {
	a := NewAxisFunc([]int{}, func(s []int) []int { return append([]int(nil), s...) })

	a.Set(0, append(a.Get(0), 1))
	a.Set(1, append(a.Get(1), 2))

	assert.Equal(t, []int{1}, a.Get(0))
	assert.Equal(t, []int{2}, a.Get(1))
	assert.Empty(t, a.Get(2))
	assert.Empty(t, a.Default())

	b := a.Clone()
	b.Set(0, append(b.Get(0), 9))
	b.Get(1)[0] = 99

	assert.Equal(t, []int{1}, a.Get(0))
	assert.Equal(t, []int{2}, a.Get(1))
	assert.Equal(t, []int{1, 9}, b.Get(0))
	assert.Equal(t, []int{99}, b.Get(1))
}
