package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := SmallTestConfig()

	a := Generate(cfg)
	b := Generate(cfg)

	require.Equal(t, cfg.Radius, a.Radius)
	for c := range a.Coords() {
		assert.Equal(t, a.Get(c), b.Get(c), "hex %v", c)
	}
}

func TestGenerate_Shape(t *testing.T) {
	cfg := SmallTestConfig()
	cfg.Radius = 12
	m := Generate(cfg)

	counts := TerrainCounts(m)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, m.HexCount(), total)

	t.Run("CornersAreOcean", func(t *testing.T) {
		for _, dir := range HexNeighborDirections {
			corner := HexCoord{X: dir.X * cfg.Radius, Y: dir.Y * cfg.Radius}
			require.True(t, m.InBounds(corner))
			assert.Equal(t, TerrainOcean, m.Get(corner), "corner %v", corner)
		}
	})

	t.Run("OutsideIsOcean", func(t *testing.T) {
		for c := range Ring(Origin, cfg.Radius+1) {
			assert.False(t, m.InBounds(c))
			assert.Equal(t, TerrainOcean, m.Get(c))
		}
	})

	t.Run("NoLowlandTouchesOcean", func(t *testing.T) {
		for c := range m.Coords() {
			t2 := m.Get(c)
			if t2 != TerrainPlains && t2 != TerrainForest {
				continue
			}
			for _, n := range c.Neighbors() {
				assert.NotEqual(t, TerrainOcean, m.Get(n), "%v at %v borders ocean at %v", t2, c, n)
			}
		}
	})
}

func TestMap(t *testing.T) {
	m := NewMap(3)

	assert.Equal(t, 37, m.HexCount())
	assert.Equal(t, "Map(radius=3, hexes=37)", m.String())
	assert.True(t, m.InBounds(Hex(3, -3)))
	assert.False(t, m.InBounds(Hex(3, 1)))

	m.Set(Hex(1, 1), TerrainDesert)
	assert.Equal(t, TerrainDesert, m.Get(Hex(1, 1)))
	assert.Equal(t, map[Terrain]int{TerrainOcean: 36, TerrainDesert: 1}, TerrainCounts(m))
}

func TestTerrainName(t *testing.T) {
	assert.Equal(t, "Ocean", TerrainName(TerrainOcean))
	assert.Equal(t, "Tundra", TerrainTundra.String())
	assert.Equal(t, "Unknown", Terrain(200).String())
}
