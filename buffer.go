package kujira

import "math"

// Buffer is an owned 2D surface of packed RGBA pixels. Each pixel is a
// uint32 laid out as 0xRRGGBBAA with alpha in the low byte. Transform
// operations always allocate a new Buffer; only composition mutates one in
// place. The zero pixel value is fully transparent.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint32 // row-major, len = Width * Height
}

// NewBuffer allocates a transparent buffer of the given dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Pix: make([]uint32, w*h)}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	dst := &Buffer{Width: b.Width, Height: b.Height, Pix: make([]uint32, len(b.Pix))}
	copy(dst.Pix, b.Pix)
	return dst
}

// At returns the pixel at (x, y). Coordinates outside the buffer read as
// fully transparent.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Set writes the pixel at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// BlendAt composites src over the pixel at (x, y). Out-of-bounds blends are
// dropped.
func (b *Buffer) BlendAt(x, y int, src uint32) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := y*b.Width + x
	b.Pix[i] = BlendPixel(src, b.Pix[i])
}

// BlendPixel is the single compositing primitive: standard "over" alpha
// blending of src onto dst.
//
//	out = (1-a)*dst + a*src   per RGB channel, a = srcAlpha/255
//
// The destination alpha is replaced by the source alpha. Channel results are
// rounded and clamped to [0, 255].
func BlendPixel(src, dst uint32) uint32 {
	a := float64(src&0xff) / 255.0
	r := (1-a)*float64(dst>>24&0xff) + a*float64(src>>24&0xff)
	g := (1-a)*float64(dst>>16&0xff) + a*float64(src>>16&0xff)
	bl := (1-a)*float64(dst>>8&0xff) + a*float64(src>>8&0xff)
	return clamp255(r)<<24 | clamp255(g)<<16 | clamp255(bl)<<8 | src&0xff
}

// clamp255 rounds a channel value and clamps it to [0, 255].
func clamp255(v float64) uint32 {
	i := int(math.Round(v))
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint32(i)
}

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c uint32) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// FillRect blends c over the rectangle (x, y, w, h), clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int, c uint32) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > b.Width {
		w = b.Width - x
	}
	if y+h > b.Height {
		h = b.Height - y
	}
	for ry := 0; ry < h; ry++ {
		row := (y+ry)*b.Width + x
		for rx := 0; rx < w; rx++ {
			b.Pix[row+rx] = BlendPixel(c, b.Pix[row+rx])
		}
	}
}

// CopyFrom overwrites this buffer's pixels with src's. Both buffers must
// have the same dimensions; extra pixels on either side are ignored.
func (b *Buffer) CopyFrom(src *Buffer) {
	copy(b.Pix, src.Pix)
}

// ReadRGBA exports the buffer as interleaved RGBA bytes, row-major and
// top-to-bottom, reusing dst when it has sufficient capacity. Alpha is forced
// opaque: the display sink presents the frame without blending.
func (b *Buffer) ReadRGBA(dst []byte) []byte {
	n := len(b.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range b.Pix {
		dst[i*4+0] = byte(p >> 24)
		dst[i*4+1] = byte(p >> 16)
		dst[i*4+2] = byte(p >> 8)
		dst[i*4+3] = 0xff
	}
	return dst
}
