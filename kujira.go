package kujira

// World geometry. The viewport is a fixed 960x540 pixel surface divided into
// 48-pixel tiles; camera scrolls cover the viewport dimension minus 5 tiles so
// the player stays in view across a transition.
const (
	// TileSize is the edge length of one grid tile in pixels.
	TileSize = 48

	// DisplayW and DisplayH are the fixed dimensions of the display frame.
	DisplayW = 960
	DisplayH = 540

	// DisplayTW and DisplayTH are the viewport dimensions in whole tiles.
	DisplayTW = DisplayW / TileSize
	DisplayTH = DisplayH / TileSize

	// ScrollTW and ScrollTH are the distance, in tiles, the camera covers in
	// a single scroll transition on each axis.
	ScrollTW = DisplayTW - 5
	ScrollTH = DisplayTH - 5

	// ScrollPW and ScrollPH are the same distances in pixels.
	ScrollPW = ScrollTW * TileSize
	ScrollPH = ScrollTH * TileSize

	// MapWidth and MapHeight bound the tile grid. Walk coordinates are
	// clamped to [-MapWidth/2, MapWidth/2] x [-MapHeight/2, MapHeight/2].
	MapWidth  = 2000
	MapHeight = 2000

	// MapTiles is the default number of walkable tiles generated at startup.
	MapTiles = 2000
)

// Tick pacing. The simulation advances in fixed steps; the platform layer is
// responsible for best-effort pacing at TickRate.
const (
	TickRate     = 60
	TickDuration = 1.0 / TickRate
)

// Reserved background colors, packed 0xRRGGBBAA. Ripple composition treats
// ColorSand and ColorShadow as excluded backgrounds: rings are only drawn
// over open water.
const (
	ColorSand   = 0xeb9b34ff
	ColorWater  = 0x4f4f9fff
	ColorShadow = 0x000000ff
)

// Sprite compositing constants. Any source pixel that is neither pure opaque
// white nor pure transparent is forced to spriteInk, rendering the sprite as
// a solid silhouette regardless of its coloring.
const (
	spriteWhite = 0xffffffff
	spriteInk   = 0x000000ff
)
