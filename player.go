package kujira

import "math"

// Facing angles for the four movement directions, in radians.
const (
	angleRight = 0.0
	angleUp    = math.Pi / 2
	angleLeft  = math.Pi
	angleDown  = 3 * math.Pi / 2
)

const (
	// playerMoveTime is the duration, in seconds, of a one-tile move.
	playerMoveTime = 0.2

	// playerAngleStep is the facing interpolation step per tick, in radians.
	playerAngleStep = 0.4

	// playerHopFactor scales the velocity-proportional "hop" applied to the
	// sprite scale while moving.
	playerHopFactor = 0.005

	// playerMinScale is the smallest manual sprite scale; shrink requests
	// below it are clamped here rather than propagated to the transform
	// pipeline as an invalid factor.
	playerMinScale = 0.1
)

// Player is the single controllable actor: a sprite moving across the tile
// grid one axis at a time. Movement, facing, and scale all animate over
// multiple ticks; grid position only advances when a tile boundary is
// crossed.
type Player struct {
	X, Y         int
	DestX, DestY int

	// PixelX and PixelY are sub-tile offsets, in pixels, accumulated while
	// a move is in progress.
	PixelX, PixelY float64

	accelX, accelY       float64
	velocityX, velocityY float64

	// Angle rotates the sprite; it steps toward DestAngle each tick and
	// wraps into [0, 2*pi).
	Angle, DestAngle float64

	// Scale is the sprite scale factor, perturbed while moving and reset to
	// 1 on arrival.
	Scale float64

	// Sprite is a shared read-only reference; it is never reallocated per
	// frame.
	Sprite *Buffer
}

// NewPlayer creates an idle player at the origin with the given sprite.
func NewPlayer(sprite *Buffer) *Player {
	return &Player{Sprite: sprite, Scale: 1}
}

// Update advances the player by one tick: directional input starts a
// one-tile move while idle, the facing angle steps toward its target, the
// pending destination is collision-checked against the tile index every
// tick, and an in-progress move integrates acceleration into velocity and
// sub-tile position. Crossing a tile boundary advances the grid position,
// resets the hop scale, and spawns a ripple at the new tile.
func (p *Player) Update(in Input, tiles *TileIndex, ripples *RippleRing, dt float64) {
	const accel = (2 * TileSize) / (playerMoveTime * playerMoveTime)
	if p.DestX == p.X && p.DestY == p.Y {
		if in.Left {
			p.accelX = -accel
			p.DestX = p.X - 1
			p.DestAngle = angleLeft
		}
		if in.Right {
			p.accelX = accel
			p.DestX = p.X + 1
			p.DestAngle = angleRight
		}
		if in.Up {
			p.accelY = -accel
			p.DestY = p.Y - 1
			p.DestAngle = angleUp
		}
		if in.Down {
			p.accelY = accel
			p.DestY = p.Y + 1
			p.DestAngle = angleDown
		}
		if in.ScaleDown {
			p.Scale -= 0.1
			if p.Scale < playerMinScale {
				p.Scale = playerMinScale
			}
		}
		if in.ScaleUp {
			p.Scale += 0.1
		}
	}

	// Facing: step while the truncated radian parts differ, then snap.
	// Comparing whole radians keeps the fixed step from oscillating around
	// the target.
	if int(p.DestAngle) != int(p.Angle) {
		if p.DestAngle-p.Angle >= 0 {
			p.Angle += playerAngleStep
		} else {
			p.Angle -= playerAngleStep
		}
		if p.Angle > 2*math.Pi {
			p.Angle = 0
		} else if p.Angle < 0 {
			p.Angle = 2 * math.Pi
		}
	} else {
		p.Angle = p.DestAngle
	}

	// Collision is re-checked every tick while a move is pending, not only
	// at trigger time.
	if p.DestX != p.X && !tiles.Exists(p.DestX, p.Y) {
		p.DestX = p.X
	}
	if p.DestY != p.Y && !tiles.Exists(p.X, p.DestY) {
		p.DestY = p.Y
	}

	if p.DestX != p.X {
		p.velocityX += p.accelX * dt
		p.PixelX += p.velocityX * dt
		p.Scale += math.Abs(p.velocityX) * playerHopFactor * dt
		if p.PixelX >= TileSize {
			p.PixelX = 0
			p.X++
			p.velocityX = 0
			p.Scale = 1
			ripples.Spawn(p.X, p.Y)
		} else if p.PixelX < -TileSize {
			p.PixelX = 0
			p.X--
			p.velocityX = 0
			p.Scale = 1
			ripples.Spawn(p.X, p.Y)
		}
	} else if p.DestY != p.Y {
		p.velocityY += p.accelY * dt
		p.PixelY += p.velocityY * dt
		p.Scale += math.Abs(p.velocityY) * playerHopFactor * dt
		if p.PixelY >= TileSize {
			p.PixelY = 0
			p.Y++
			p.velocityY = 0
			p.Scale = 1
			ripples.Spawn(p.X, p.Y)
		} else if p.PixelY < -TileSize {
			p.PixelY = 0
			p.Y--
			p.velocityY = 0
			p.Scale = 1
			ripples.Spawn(p.X, p.Y)
		}
	}
}

// Draw composites the player sprite into dst at its camera-relative screen
// position.
func (p *Player) Draw(dst *Buffer, cam *Camera) error {
	x := (p.X-cam.TileX+DisplayTW/2)*TileSize + int(p.PixelX-cam.PixelX)
	y := (p.Y-cam.TileY+DisplayTH/2)*TileSize + int(p.PixelY-cam.PixelY)
	return DrawSprite(dst, p.Sprite, x, y, p.Angle, p.Scale)
}
