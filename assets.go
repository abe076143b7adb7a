package kujira

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// LoadSprite decodes a sprite image (BMP, or any other registered format)
// into a packed top-left-origin pixel buffer. Row order and header handling
// are the decoder's concern; the returned buffer is always top-to-bottom.
func LoadSprite(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("kujira: decode sprite: %w", err)
	}
	bounds := img.Bounds()
	buf := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			cr, cg, cb, ca := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Pix[y*buf.Width+x] = uint32(cr>>8)<<24 | uint32(cg>>8)<<16 | uint32(cb>>8)<<8 | uint32(ca>>8)
		}
	}
	return buf, nil
}

// LoadSpriteFile reads and decodes a sprite from disk.
func LoadSpriteFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kujira: open sprite: %w", err)
	}
	defer f.Close()
	return LoadSprite(f)
}

// PlaceholderSprite builds a simple whale-ish sprite so the binary and
// examples run without assets on disk: a white body ellipse with an ink
// outline and a tail wedge, on a transparent background.
func PlaceholderSprite() *Buffer {
	const size = 64
	b := NewBuffer(size, size)
	cx, cy := 36.0, 32.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - cx) / 22
			dy := (float64(y) - cy) / 12
			d := dx*dx + dy*dy
			switch {
			case d < 0.75:
				b.Pix[y*size+x] = spriteWhite
			case d < 1.0:
				b.Pix[y*size+x] = spriteInk
			}
		}
	}
	// Tail wedge on the left.
	for y := 20; y < 44; y++ {
		for x := 6; x < 16; x++ {
			dy := y - 32
			if dy < 0 {
				dy = -dy
			}
			if dy <= 16-x {
				b.Pix[y*size+x] = spriteInk
			}
		}
	}
	return b
}
