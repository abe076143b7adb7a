package kujira

// cameraStopTime is the duration, in seconds, of one full scroll transition.
// Acceleration is derived so the triangular velocity profile (accelerate to
// the halfway point, decelerate symmetrically) covers the scroll distance in
// exactly this time.
const cameraStopTime = 0.75

// Camera scrolls the viewport across the tile grid in fixed tile-sized
// jumps. While idle it displays the most recently rendered region; when the
// player crosses the viewport edge margin it pre-renders the destination
// region into a fresh background buffer and slides between the two without
// re-rendering the grid each frame. At most one axis is in transit at a
// time; horizontal checks take priority.
type Camera struct {
	TileX, TileY         int
	DestTileX, DestTileY int

	// PixelX and PixelY are the sub-tile offsets, in pixels, accumulated
	// during a scroll transition.
	PixelX, PixelY float64

	accelX, accelY       float64
	velocityX, velocityY float64

	// bgNew holds the most recently rendered tile region; bgOld holds the
	// region being scrolled away from. Swapped only when a scroll begins.
	bgOld *Buffer
	bgNew *Buffer
}

// NewCamera creates an idle camera at the origin with viewport-sized
// background buffers.
func NewCamera() *Camera {
	return &Camera{
		bgOld: NewBuffer(DisplayW, DisplayH),
		bgNew: NewBuffer(DisplayW, DisplayH),
	}
}

// Scrolling reports whether a scroll transition is in progress.
func (c *Camera) Scrolling() bool {
	return c.DestTileX != c.TileX || c.DestTileY != c.TileY
}

// RenderMap pre-renders the tile region around the destination tile. The
// previous region is preserved in the old buffer, then the new buffer is
// filled with sand and every walkable tile is drawn as a shadowed water
// square.
func (c *Camera) RenderMap(tiles *TileIndex) {
	c.bgOld.CopyFrom(c.bgNew)
	c.bgNew.Fill(ColorSand)
	centerX := DisplayTW / 2
	centerY := DisplayTH / 2
	pixelY := 0
	for y := c.DestTileY - centerY; y < c.DestTileY+centerY+2; y++ {
		pixelX := 0
		for x := c.DestTileX - centerX; x < c.DestTileX+centerX+1; x++ {
			if tiles.Exists(x, y) {
				c.bgNew.FillRect(pixelX, pixelY, TileSize, TileSize, ColorShadow)
				c.bgNew.FillRect(pixelX-2, pixelY-2, TileSize-2, TileSize-2, ColorWater)
			}
			pixelX += TileSize
		}
		pixelY += TileSize
	}
}

// Update runs the scroll state machine for one tick. Idle cameras compare
// the player's grid position against the viewport edge margin and start a
// scroll (with a map pre-render) when it is crossed. Scrolling cameras
// integrate the triangular velocity profile, flipping the acceleration sign
// past the half-distance point, and snap back to idle once the full scroll
// distance is covered.
func (c *Camera) Update(playerX, playerY int, tiles *TileIndex, dt float64) {
	if !c.Scrolling() {
		horizEdge := DisplayTW/2 - 2
		vertEdge := DisplayTH/2 - 2
		switch {
		case playerX-c.TileX < -horizEdge:
			c.accelX = -(2 * ScrollPW) / (cameraStopTime * cameraStopTime)
			c.DestTileX = c.TileX - ScrollTW
			c.RenderMap(tiles)
		case playerX-c.TileX >= horizEdge:
			c.accelX = (2 * ScrollPW) / (cameraStopTime * cameraStopTime)
			c.DestTileX = c.TileX + ScrollTW
			c.RenderMap(tiles)
		case playerY-c.TileY < -vertEdge:
			c.accelY = -(2 * ScrollPH) / (cameraStopTime * cameraStopTime)
			c.DestTileY = c.TileY - ScrollTH
			c.RenderMap(tiles)
		case playerY-c.TileY >= vertEdge:
			c.accelY = (2 * ScrollPH) / (cameraStopTime * cameraStopTime)
			c.DestTileY = c.TileY + ScrollTH
			c.RenderMap(tiles)
		}
	}
	if c.DestTileX != c.TileX {
		if c.PixelX > ScrollPW/2 || c.PixelX < -ScrollPW/2 {
			c.velocityX -= c.accelX * dt
		} else {
			c.velocityX += c.accelX * dt
		}
		c.PixelX += c.velocityX * dt
		if c.PixelX >= ScrollPW {
			c.velocityX = 0
			c.PixelX = 0
			c.TileX += ScrollTW
		} else if c.PixelX < -ScrollPW {
			c.velocityX = 0
			c.PixelX = 0
			c.TileX -= ScrollTW
		}
	} else if c.DestTileY != c.TileY {
		if c.PixelY > ScrollPH/2 || c.PixelY < -ScrollPH/2 {
			c.velocityY -= c.accelY * dt
		} else {
			c.velocityY += c.accelY * dt
		}
		c.PixelY += c.velocityY * dt
		if c.PixelY >= ScrollPH {
			c.velocityY = 0
			c.PixelY = 0
			c.TileY += ScrollTH
		} else if c.PixelY < -ScrollPH {
			c.velocityY = 0
			c.PixelY = 0
			c.TileY -= ScrollTH
		}
	}
}

// Compose writes the visible background into dst. Idle cameras copy the
// current region straight through. Scrolling cameras source each pixel from
// either the old or the new buffer: camera-relative coordinates that fall
// off the viewport wrap by the scroll distance into the freshly rendered
// region, producing a seamless sliding transition.
func (c *Camera) Compose(dst *Buffer) {
	if !c.Scrolling() {
		dst.CopyFrom(c.bgNew)
		return
	}
	minX := int(c.PixelX)
	minY := int(c.PixelY)
	for y := minY; y < minY+DisplayH; y++ {
		for x := minX; x < minX+DisplayW; x++ {
			src := c.bgOld
			newX, newY := x, y
			switch {
			case x < 0:
				src = c.bgNew
				newX = x + ScrollPW
			case x >= DisplayW:
				src = c.bgNew
				newX = x - ScrollPW
			case y < 0:
				src = c.bgNew
				newY = y + ScrollPH
			case y >= DisplayH:
				src = c.bgNew
				newY = y - ScrollPH
			}
			dst.Pix[(y-minY)*DisplayW+(x-minX)] = src.Pix[newY*DisplayW+newX]
		}
	}
}
