package kujira

import (
	"math/rand/v2"
	"slices"
)

// Tile is one walkable grid cell. The flat coordinate y*MapWidth+x is the
// sort and search key; within the map bounds it uniquely determines (x, y).
type Tile struct {
	X, Y int

	flat int
}

// TileIndex is an immutable ordered set of walkable tiles, sorted ascending
// by flat coordinate for O(log n) membership queries. It is built once at
// startup by a biased random walk and never modified afterward.
type TileIndex struct {
	tiles []Tile
}

// NewTileIndex generates n unique walkable tiles by random walk from the
// origin. One of the four cardinal moves is chosen each step; every 20 steps
// a bias direction is redrawn and preferred on ties, which elongates the walk
// into corridors instead of pure Brownian noise. A step that revisits a
// recorded coordinate records nothing. Coordinates are clamped to the map
// bounds.
func NewTileIndex(n int, rng *rand.Rand) *TileIndex {
	const (
		minX = -(MapWidth / 2)
		maxX = MapWidth / 2
		minY = -(MapHeight / 2)
		maxY = MapHeight / 2
	)
	tiles := make([]Tile, 0, n)
	x, y := 0, 0
	bias := 0
	for step := 0; len(tiles) < n; step++ {
		repeat := false
		for i := range tiles {
			if tiles[i].X == x && tiles[i].Y == y {
				repeat = true
				break
			}
		}
		if !repeat {
			tiles = append(tiles, Tile{X: x, Y: y, flat: y*MapWidth + x})
		}
		if step%20 == 0 {
			bias = rng.IntN(4)
		}
		dir := rng.IntN(5)
		switch {
		case dir == 0 || (dir == 4 && bias == 0):
			x++
		case dir == 1 || (dir == 4 && bias == 1):
			x--
		case dir == 2 || (dir == 4 && bias == 2):
			y++
		case dir == 3 || (dir == 4 && bias == 3):
			y--
		}
		if x > maxX {
			x = maxX
		}
		if x < minX {
			x = minX
		}
		if y > maxY {
			y = maxY
		}
		if y < minY {
			y = minY
		}
	}
	slices.SortFunc(tiles, func(a, b Tile) int { return a.flat - b.flat })
	return &TileIndex{tiles: tiles}
}

// Exists reports whether (x, y) is a walkable tile. O(log n) binary search.
func (t *TileIndex) Exists(x, y int) bool {
	flat := y*MapWidth + x
	_, ok := slices.BinarySearchFunc(t.tiles, flat, func(tile Tile, target int) int {
		return tile.flat - target
	})
	return ok
}

// Len returns the number of tiles in the index.
func (t *TileIndex) Len() int {
	return len(t.tiles)
}
