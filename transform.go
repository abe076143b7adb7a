package kujira

import (
	"errors"
	"math"
)

// ErrInvalidScale is returned by Scale and DrawSprite for a zero or negative
// scale factor.
var ErrInvalidScale = errors.New("kujira: scale factor must be positive")

// flipTolerance is the angular distance from pi within which a vertical flip
// substitutes for a full 180-degree rotation, avoiding interpolation
// artifacts when the sprite faces left.
const flipTolerance = 0.1

// Scale resamples src by the given factor using nearest-neighbor sampling
// and returns a new buffer of floor-scaled dimensions. The source is not
// modified.
func Scale(src *Buffer, factor float64) (*Buffer, error) {
	if factor <= 0 {
		return nil, ErrInvalidScale
	}
	w := int(float64(src.Width) * factor)
	h := int(float64(src.Height) * factor)
	dst := NewBuffer(w, h)
	inv := 1.0 / factor
	for y := 0; y < h; y++ {
		sy := int(float64(y) * inv)
		if sy >= src.Height {
			sy = src.Height - 1
		}
		srcRow := sy * src.Width
		dstRow := y * w
		for x := 0; x < w; x++ {
			sx := int(float64(x) * inv)
			if sx >= src.Width {
				sx = src.Width - 1
			}
			dst.Pix[dstRow+x] = src.Pix[srcRow+sx]
		}
	}
	return dst, nil
}

// Rotate returns a new buffer of the same dimensions holding src rotated by
// angle radians about the buffer center. Each destination pixel is inverse
// mapped into the source; samples that land outside [0, w-1) x [0, h-1) stay
// fully transparent, and in-range samples are bilinearly interpolated across
// all four channels and composited onto the transparent destination, giving
// anti-aliased edges.
func Rotate(src *Buffer, angle float64) *Buffer {
	w := src.Width
	h := src.Height
	dst := NewBuffer(w, h)
	sin, cos := math.Sincos(angle)
	cx := float64(w) / 2
	cy := float64(h) / 2
	for y := 0; y < h; y++ {
		fy := float64(y) - cy
		for x := 0; x < w; x++ {
			fx := float64(x) - cx
			rx := fx*cos - fy*sin + cx
			ry := fx*sin + fy*cos + cy
			if rx < 0 || ry < 0 || rx >= float64(w-1) || ry >= float64(h-1) {
				continue
			}
			x0 := int(math.Floor(rx))
			y0 := int(math.Floor(ry))
			x1 := int(math.Ceil(rx))
			y1 := int(math.Ceil(ry))
			tl := src.Pix[y0*w+x0]
			tr := src.Pix[y0*w+x1]
			bl := src.Pix[y1*w+x0]
			br := src.Pix[y1*w+x1]
			dx := rx - math.Floor(rx)
			dy := ry - math.Floor(ry)
			c := bilinear(tl, tr, bl, br, dx, dy)
			i := y*w + x
			dst.Pix[i] = BlendPixel(c, dst.Pix[i])
		}
	}
	return dst
}

// bilinear interpolates the four corner pixels at fractional offset (dx, dy),
// each channel independently, alpha included.
func bilinear(tl, tr, bl, br uint32, dx, dy float64) uint32 {
	r := bilinearChannel(tl, tr, bl, br, 24, dx, dy)
	g := bilinearChannel(tl, tr, bl, br, 16, dx, dy)
	b := bilinearChannel(tl, tr, bl, br, 8, dx, dy)
	a := bilinearChannel(tl, tr, bl, br, 0, dx, dy)
	return clamp255(r)<<24 | clamp255(g)<<16 | clamp255(b)<<8 | clamp255(a)
}

func bilinearChannel(tl, tr, bl, br uint32, shift uint, dx, dy float64) float64 {
	top := (1-dx)*float64(tl>>shift&0xff) + dx*float64(tr>>shift&0xff)
	bot := (1-dx)*float64(bl>>shift&0xff) + dx*float64(br>>shift&0xff)
	return (1-dy)*top + dy*bot
}

// VFlip returns a new row-reversed copy of src.
func VFlip(src *Buffer) *Buffer {
	dst := NewBuffer(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		srcRow := src.Pix[y*src.Width : (y+1)*src.Width]
		dstRow := dst.Pix[(src.Height-1-y)*src.Width:]
		copy(dstRow[:src.Width], srcRow)
	}
	return dst
}

// DrawSprite scales and rotates sprite, then blends it into dst anchored at
// (x, y), keeping the scaled image centered within the sprite's unscaled box
// and clipped against dst's bounds. A near-pi angle substitutes a
// vertical flip for the 180-degree rotation. Source pixels other than pure
// opaque white or pure transparent are forced to opaque ink, rendering the
// sprite as a solid silhouette.
func DrawSprite(dst, sprite *Buffer, x, y int, angle, scale float64) error {
	scaled, err := Scale(sprite, scale)
	if err != nil {
		return err
	}
	x1 := x + (sprite.Width-scaled.Width)/2
	y1 := y + (sprite.Height-scaled.Height)/2
	x2 := x1 + scaled.Width
	y2 := y1 + scaled.Height
	xoff, yoff := 0, 0
	if x1 < 0 {
		xoff = -x1
		x1 = 0
	}
	if y1 < 0 {
		yoff = -y1
		y1 = 0
	}
	if x2 > dst.Width {
		x2 = dst.Width
	}
	if y2 > dst.Height {
		y2 = dst.Height
	}
	rotated := Rotate(scaled, angle)
	if math.Abs(angle-math.Pi) < flipTolerance {
		rotated = VFlip(rotated)
	}
	for ry := y1; ry < y2; ry++ {
		srcY := yoff + (ry - y1)
		for rx := x1; rx < x2; rx++ {
			c := rotated.At(xoff+(rx-x1), srcY)
			if c != spriteWhite && c != 0 {
				c = spriteInk
			}
			dst.BlendAt(rx, ry, c)
		}
	}
	return nil
}
