package world

import (
	"fmt"
	"iter"
)

// Terrain types for hex tiles. Ocean is the zero value so cells outside the
// generated area read as open water.
type Terrain uint8

const (
	TerrainOcean    Terrain = iota // Impassable except by ship
	TerrainPlains                  // Fertile plains
	TerrainForest                  // Timber, herbs, game
	TerrainMountain                // Minerals, defensive positions
	TerrainCoast                   // Land bordering the ocean
	TerrainDesert                  // Hot and arid
	TerrainSwamp                   // Wet lowland
	TerrainTundra                  // Extreme cold
)

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainOcean:
		return "Ocean"
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainMountain:
		return "Mountain"
	case TerrainCoast:
		return "Coast"
	case TerrainDesert:
		return "Desert"
	case TerrainSwamp:
		return "Swamp"
	case TerrainTundra:
		return "Tundra"
	default:
		return "Unknown"
	}
}

func (t Terrain) String() string {
	return TerrainName(t)
}

// Map holds the terrain of a hexagonal world of the given radius, centered
// on the origin.
type Map struct {
	Radius int

	tiles *Grid[Terrain]
}

// NewMap creates an all-ocean map with storage reserved for the radius.
// A hex grid of radius R contains hexes where max(|x|, |y|, |s|) <= R.
func NewMap(radius int) *Map {
	return &Map{
		Radius: radius,
		tiles:  NewGrid(TerrainOcean).WithBounds(-radius, radius, -radius, radius),
	}
}

// Get returns the terrain at the given coordinate. Coordinates outside the
// map read as ocean.
func (m *Map) Get(coord HexCoord) Terrain {
	return m.tiles.Get(coord)
}

// Set places terrain at the given coordinate.
func (m *Map) Set(coord HexCoord, t Terrain) {
	m.tiles.Set(coord, t)
}

// InBounds returns true if the coordinate is within the map radius.
func (m *Map) InBounds(coord HexCoord) bool {
	return Distance(Origin, coord) <= m.Radius
}

// Coords yields every coordinate inside the map.
func (m *Map) Coords() iter.Seq[HexCoord] {
	return Neighborhood(Origin, m.Radius)
}

// HexCount returns the total number of hexes in the map.
func (m *Map) HexCount() int {
	r := m.Radius
	return 3*r*r + 3*r + 1
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, hexes=%d)", m.Radius, m.HexCount())
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for c := range m.Coords() {
		counts[m.Get(c)]++
	}
	return counts
}
