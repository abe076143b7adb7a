package kujira

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// rippleSlots is the hard capacity of the ring: the write index wraps
	// and overwrites the oldest slot, active or not.
	rippleSlots = 5

	// rippleSize is the edge length of each ripple's private buffer.
	rippleSize = 100

	rippleStartRadius = 20.0
	rippleRadiusStep  = 1.0
	rippleRings       = 4

	// rippleDeathRadius deactivates a ripple once its radius reaches it.
	rippleDeathRadius = (rippleSize - 5) / 2

	// rippleColor is the ring stroke RGB; the alpha byte is filled in per
	// ring pair from the fading tween.
	rippleColor = 0x6f6fbf00

	// rippleFadeDuration matches a fade rate of 0.03 alpha per tick.
	rippleFadeDuration = 1.0 / (0.03 * TickRate)
)

// Ripple is one expanding ring effect anchored to a tile. Its radius grows
// and its alpha fades each tick until the radius reaches the death
// threshold, at which point the buffer is released.
type Ripple struct {
	buf    *Buffer
	radius float64
	alpha  float32
	fade   *gween.Tween
	tileX  int
	tileY  int
	active bool
}

// Active reports whether the ripple is still animating.
func (s *Ripple) Active() bool {
	return s.active
}

// Radius returns the current ring radius in pixels.
func (s *Ripple) Radius() float64 {
	return s.radius
}

// Alpha returns the current base alpha in [0, 1].
func (s *Ripple) Alpha() float64 {
	return float64(s.alpha)
}

// RippleRing is the fixed-capacity pool of ripple effects. Spawning past
// capacity overwrites the oldest slot; this is a hard cap, not an LRU
// policy.
type RippleRing struct {
	slots [rippleSlots]Ripple
	next  int
}

// Spawn activates the next slot with a fresh buffer anchored at tile (x, y).
func (r *RippleRing) Spawn(x, y int) {
	s := &r.slots[r.next]
	r.next = (r.next + 1) % rippleSlots
	*s = Ripple{
		buf:    NewBuffer(rippleSize, rippleSize),
		radius: rippleStartRadius,
		alpha:  1,
		fade:   gween.New(1, 0, rippleFadeDuration, ease.Linear),
		tileX:  x,
		tileY:  y,
		active: true,
	}
}

// ActiveCount returns the number of live ripples.
func (r *RippleRing) ActiveCount() int {
	n := 0
	for i := range r.slots {
		if r.slots[i].active {
			n++
		}
	}
	return n
}

// Update advances every active ripple by one tick and composites it onto
// dst at its camera-relative position. Ripples whose radius has reached the
// death threshold are deactivated and their buffers released.
func (r *RippleRing) Update(dst *Buffer, cam *Camera, dt float64) {
	for i := range r.slots {
		s := &r.slots[i]
		if !s.active {
			continue
		}
		s.step(dt)
		s.compose(dst, cam)
		if s.radius >= rippleDeathRadius {
			s.active = false
			s.buf = nil
		}
	}
}

// step redraws the ripple into its private buffer: four concentric circle
// pairs (inner and outer ring per pair) sampled along a fixed angular step,
// each successive pair at decreasing sub-alpha so the ring fades outward.
func (s *Ripple) step(dt float64) {
	s.buf.Fill(0)
	s.radius += rippleRadiusStep
	s.alpha, _ = s.fade.Update(float32(dt))
	cx := float64(rippleSize) / 2
	cy := float64(rippleSize) / 2
	subAlpha := 1.0
	for ring := 0; ring < rippleRings; ring++ {
		color := uint32(rippleColor) | uint32(float64(s.alpha)*255*subAlpha)
		subAlpha -= 0.2
		for angle := 0.0; angle < 2*math.Pi; angle += 0.01 {
			sin, cos := math.Sincos(angle)
			outer := s.radius + float64(ring)
			s.buf.Set(int(cx+outer*cos), int(cy+outer*sin), color)
			inner := s.radius - float64(ring)
			s.buf.Set(int(cx+inner*cos), int(cy+inner*sin), color)
		}
	}
}

// compose blends the ripple buffer onto dst, skipping destination pixels
// that hold either reserved background color so rings are only visible over
// open water and never redrawn over tile shadows.
func (s *Ripple) compose(dst *Buffer, cam *Camera) {
	screenX := (s.tileX-cam.TileX+DisplayTW/2)*TileSize - rippleSize/2 + TileSize/2 - int(cam.PixelX)
	screenY := (s.tileY-cam.TileY+DisplayTH/2)*TileSize - rippleSize/2 + TileSize/2 - int(cam.PixelY)
	for y := 0; y < rippleSize; y++ {
		for x := 0; x < rippleSize; x++ {
			d := dst.At(screenX+x, screenY+y)
			if d == ColorSand || d == ColorShadow {
				continue
			}
			dst.BlendAt(screenX+x, screenY+y, s.buf.Pix[y*rippleSize+x])
		}
	}
}
