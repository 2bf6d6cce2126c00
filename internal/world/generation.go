// World generation using layered simplex noise.
// Samples elevation, rainfall, and temperature at each hex's world position,
// then derives terrain.
package world

import (
	"log/slog"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Radius      int     // Hex grid radius
	Seed        int64   // Random seed (0 = random)
	SeaLevel    float64 // Elevation threshold for ocean (0.0–1.0)
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:      22,
		Seed:        0,
		SeaLevel:    0.25,
		MountainLvl: 0.72,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:      5,
		Seed:        42,
		SeaLevel:    0.30,
		MountainLvl: 0.75,
	}
}

// Generate creates a terrain map. The same non-zero seed always produces the
// same map.
func Generate(cfg GenConfig) *Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Three noise generators for independent layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	m := NewMap(cfg.Radius)
	radius := float64(max(cfg.Radius, 1))

	for coord := range m.Coords() {
		pos := HexToWorld(coord)
		x, y := float64(pos.X()), float64(pos.Y())

		// Multi-octave noise for natural-looking terrain.
		elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
		rain := octaveNoise(rainNoise, x, y, 3, 0.06, 0.5)
		temp := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5)

		// Continental shaping: reduce elevation near edges to create ocean border.
		distFromCenter := math.Sqrt(x*x+y*y) / radius
		edgeFalloff := max(1.0-math.Pow(distFromCenter, 3.5), 0)
		elev *= edgeFalloff

		// Temperature decreases with elevation and distance from equator.
		temp = temp*0.6 + (1.0-math.Abs(y)/radius)*0.3 + (1.0-elev)*0.1

		m.Set(coord, deriveTerrain(elev, rain, temp, cfg))
	}

	// Post-pass: mark coastal hexes (land hexes adjacent to ocean).
	coast := markCoastalHexes(m)

	slog.Debug("world generated", "radius", cfg.Radius, "seed", seed, "hexes", m.HexCount(), "coast", coast)
	return m
}

// deriveTerrain determines terrain type from environmental parameters.
func deriveTerrain(elev, rain, temp float64, cfg GenConfig) Terrain {
	if elev < cfg.SeaLevel {
		return TerrainOcean
	}
	if elev > cfg.MountainLvl {
		return TerrainMountain
	}
	if temp < 0.25 {
		return TerrainTundra
	}
	if rain < 0.25 && temp > 0.5 {
		return TerrainDesert
	}
	if rain > 0.7 && elev < 0.45 {
		return TerrainSwamp
	}
	if rain > 0.45 && elev > 0.45 {
		return TerrainForest
	}
	return TerrainPlains
}

// markCoastalHexes converts low plains and forest next to ocean into coast.
// Returns the number of hexes converted.
func markCoastalHexes(m *Map) int {
	var toMark []HexCoord

	for coord := range m.Coords() {
		t := m.Get(coord)
		if t != TerrainPlains && t != TerrainForest {
			continue
		}
		for _, neighbor := range coord.Neighbors() {
			if m.Get(neighbor) == TerrainOcean {
				toMark = append(toMark, coord)
				break
			}
		}
	}

	for _, coord := range toMark {
		m.Set(coord, TerrainCoast)
	}
	return len(toMark)
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
