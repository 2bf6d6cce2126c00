// Command hexmap generates a hex terrain map, mirrors its land mask into a
// quadtree over world space, and logs how both structures came out.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexmap/internal/quadtree"
	"github.com/talgya/hexmap/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(envOrDefault("HEXMAP_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("hexmap failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration from environment.
	cfg := world.DefaultGenConfig()
	cfg.Radius = envIntOrDefault("HEXMAP_RADIUS", cfg.Radius)
	cfg.Seed = int64(envIntOrDefault("HEXMAP_SEED", 42))
	cfg.SeaLevel = envFloatOrDefault("HEXMAP_SEA_LEVEL", cfg.SeaLevel)
	maxDepth := envIntOrDefault("HEXMAP_MAX_DEPTH", 8)

	if cfg.Radius < 1 {
		return fmt.Errorf("HEXMAP_RADIUS must be at least 1, got %d", cfg.Radius)
	}
	if maxDepth < 1 {
		return fmt.Errorf("HEXMAP_MAX_DEPTH must be at least 1, got %d", maxDepth)
	}

	// ── Terrain ───────────────────────────────────────────────────────
	slog.Info("generating world map...", "radius", cfg.Radius, "seed", cfg.Seed)
	m := world.Generate(cfg)

	counts := world.TerrainCounts(m)
	for t := world.TerrainOcean; t <= world.TerrainTundra; t++ {
		slog.Info("terrain", "type", world.TerrainName(t), "count", humanize.Comma(int64(counts[t])))
	}

	// ── Land mask ─────────────────────────────────────────────────────
	land := buildLandMask(m, maxDepth)
	stats := land.Stats()
	slog.Info("land mask built",
		"hexes", humanize.Comma(int64(m.HexCount())),
		"leaves", humanize.Comma(int64(stats.Leaves)),
		"branches", humanize.Comma(int64(stats.Branches)),
		"depth", stats.Depth,
	)

	// ── Cross-check ───────────────────────────────────────────────────
	const samples = 10000
	mismatches := sampleLandMask(m, land, cfg.Seed, samples)
	slog.Info("land mask sampled", "samples", humanize.Comma(samples), "mismatches", mismatches)
	return nil
}

// landRect returns the world-space rectangle holding every hex center of m,
// with half a hex of margin on each side.
func landRect(m *world.Map) quadtree.Rect {
	halfW := float32(m.Radius) + 0.5
	halfH := float32(m.Radius)*world.YAxis.Y() + 0.5
	return quadtree.Rect{X: -halfW, Y: -halfH, Width: 2 * halfW, Height: 2 * halfH}
}

// buildLandMask marks the world position of every land hex of m.
func buildLandMask(m *world.Map, maxDepth int) *quadtree.QuadTree[bool] {
	land := quadtree.New(landRect(m), maxDepth, false)
	for c := range m.Coords() {
		if m.Get(c) == world.TerrainOcean {
			continue
		}
		pos := world.HexToWorld(c)
		land.Set(quadtree.Point{X: pos.X(), Y: pos.Y()}, true)
	}
	return land
}

// sampleLandMask resolves random world points to hexes and counts how often
// the terrain map and the land mask disagree about the hex center.
func sampleLandMask(m *world.Map, land *quadtree.QuadTree[bool], seed int64, n int) int {
	rect := land.Rect()
	rng := rand.New(rand.NewSource(seed + 300))

	mismatches := 0
	for i := 0; i < n; i++ {
		wx := rect.X + rng.Float32()*rect.Width
		wy := rect.Y + rng.Float32()*rect.Height

		c := world.WorldToHex(wx, wy)
		if !m.InBounds(c) {
			continue
		}
		pos := world.HexToWorld(c)
		if land.Get(quadtree.Point{X: pos.X(), Y: pos.Y()}) != (m.Get(c) != world.TerrainOcean) {
			mismatches++
			slog.Debug("land mask mismatch", "hex", c, "terrain", m.Get(c))
		}
	}
	return mismatches
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloatOrDefault(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
