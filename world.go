package kujira

import "math/rand/v2"

// rippleTestTile is where the manual ripple trigger spawns its effect.
const rippleTestTileX, rippleTestTileY = 10, 10

// WorldConfig selects the startup parameters for a World.
type WorldConfig struct {
	// Seed drives map generation. The same seed always produces the same
	// tile index.
	Seed uint64

	// WalkLength is the number of walkable tiles to generate; 0 means
	// MapTiles.
	WalkLength int

	// Sprite is the player sprite. nil means the built-in placeholder.
	Sprite *Buffer
}

// World owns all simulation state: the tile index, camera, player, ripple
// ring, and the display frame. Everything is mutated only inside Step, on a
// single goroutine; no locking is needed.
type World struct {
	Tiles   *TileIndex
	Cam     *Camera
	Player  *Player
	Ripples *RippleRing

	// Frame is the composed display buffer, rewritten every Step. The
	// platform layer presents it after each tick.
	Frame *Buffer

	// Running is cleared by the quit flag; the platform layer stops its
	// loop when it goes false.
	Running bool

	prev Input
}

// NewWorld generates the tile index from the config seed, renders the
// initial map region, and returns a world ready to Step.
func NewWorld(cfg WorldConfig) *World {
	n := cfg.WalkLength
	if n <= 0 {
		n = MapTiles
	}
	sprite := cfg.Sprite
	if sprite == nil {
		sprite = PlaceholderSprite()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	w := &World{
		Tiles:   NewTileIndex(n, rng),
		Cam:     NewCamera(),
		Player:  NewPlayer(sprite),
		Ripples: &RippleRing{},
		Frame:   NewBuffer(DisplayW, DisplayH),
		Running: true,
	}
	w.Cam.RenderMap(w.Tiles)
	return w
}

// Step runs one simulation and render tick: input handling, player update,
// camera update, background composition, ripple update, and sprite
// composition, in that order. The finished frame is left in Frame.
func (w *World) Step(in Input, dt float64) {
	if in.Quit {
		w.Running = false
	}
	if in.Ripple && !w.prev.Ripple {
		w.Ripples.Spawn(rippleTestTileX, rippleTestTileY)
	}

	w.Player.Update(in, w.Tiles, w.Ripples, dt)
	w.Cam.Update(w.Player.X, w.Player.Y, w.Tiles, dt)
	w.Cam.Compose(w.Frame)
	w.Ripples.Update(w.Frame, w.Cam, dt)

	// Player.Update clamps the scale factor, so the draw cannot reject it.
	_ = w.Player.Draw(w.Frame, w.Cam)

	w.prev = in
}
