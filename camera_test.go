package kujira

import "testing"

func TestCameraIdleInsideMargin(t *testing.T) {
	cam := NewCamera()
	tiles := makeTileIndex([2]int{0, 0})
	for _, pos := range [][2]int{{0, 0}, {7, 0}, {-7, 0}, {0, 2}, {0, -3}} {
		cam.Update(pos[0], pos[1], tiles, TickDuration)
		if cam.Scrolling() {
			t.Fatalf("player at (%d,%d) started a scroll, want idle", pos[0], pos[1])
		}
	}
}

func TestCameraScrollRightCompletes(t *testing.T) {
	cam := NewCamera()
	tiles := makeTileIndex([2]int{0, 0})

	cam.Update(DisplayTW/2-2, 0, tiles, TickDuration)
	if !cam.Scrolling() {
		t.Fatal("player at the right margin did not start a scroll")
	}
	if cam.DestTileX != ScrollTW {
		t.Fatalf("DestTileX = %d, want %d", cam.DestTileX, ScrollTW)
	}

	for i := 0; i < 600 && cam.Scrolling(); i++ {
		cam.Update(DisplayTW/2-2, 0, tiles, TickDuration)
	}
	if cam.Scrolling() {
		t.Fatal("scroll did not finish within 600 ticks")
	}
	if cam.TileX != ScrollTW {
		t.Errorf("TileX = %d, want %d after scroll", cam.TileX, ScrollTW)
	}
	if cam.PixelX != 0 {
		t.Errorf("PixelX = %v, want 0 after scroll", cam.PixelX)
	}
}

func TestCameraScrollLeftCompletes(t *testing.T) {
	cam := NewCamera()
	tiles := makeTileIndex([2]int{0, 0})

	cam.Update(-(DisplayTW/2 - 1), 0, tiles, TickDuration)
	if cam.DestTileX != -ScrollTW {
		t.Fatalf("DestTileX = %d, want %d", cam.DestTileX, -ScrollTW)
	}
	for i := 0; i < 600 && cam.Scrolling(); i++ {
		cam.Update(-(DisplayTW/2 - 1), 0, tiles, TickDuration)
	}
	if cam.TileX != -ScrollTW || cam.PixelX != 0 {
		t.Errorf("TileX = %d, PixelX = %v, want %d, 0", cam.TileX, cam.PixelX, -ScrollTW)
	}
}

func TestCameraScrollDownCompletes(t *testing.T) {
	cam := NewCamera()
	tiles := makeTileIndex([2]int{0, 0})

	cam.Update(0, DisplayTH/2-2, tiles, TickDuration)
	if cam.DestTileY != ScrollTH {
		t.Fatalf("DestTileY = %d, want %d", cam.DestTileY, ScrollTH)
	}
	for i := 0; i < 600 && cam.Scrolling(); i++ {
		cam.Update(0, DisplayTH/2-2, tiles, TickDuration)
	}
	if cam.TileY != ScrollTH || cam.PixelY != 0 {
		t.Errorf("TileY = %d, PixelY = %v, want %d, 0", cam.TileY, cam.PixelY, ScrollTH)
	}
}

func TestCameraHorizontalPriority(t *testing.T) {
	cam := NewCamera()
	tiles := makeTileIndex([2]int{0, 0})

	// Player past both margins at once: only the horizontal scroll starts.
	cam.Update(DisplayTW/2-2, DisplayTH/2-2, tiles, TickDuration)
	if cam.DestTileX != ScrollTW {
		t.Errorf("DestTileX = %d, want %d", cam.DestTileX, ScrollTW)
	}
	if cam.DestTileY != 0 {
		t.Errorf("DestTileY = %d, want 0 while a horizontal scroll is active", cam.DestTileY)
	}
}

func TestCameraRenderMap(t *testing.T) {
	cam := NewCamera()
	tiles := makeTileIndex([2]int{0, 0})
	cam.RenderMap(tiles)

	// The destination tile (0,0) lands at viewport cell (DisplayTW/2, DisplayTH/2).
	px := (DisplayTW / 2) * TileSize
	py := (DisplayTH / 2) * TileSize
	if got := cam.bgNew.At(px+5, py+5); got != ColorWater {
		t.Errorf("walkable tile interior = %#08x, want water %#08x", got, uint32(ColorWater))
	}
	if got := cam.bgNew.At(px+TileSize-1, py+TileSize-1); got != ColorShadow {
		t.Errorf("walkable tile corner = %#08x, want shadow %#08x", got, uint32(ColorShadow))
	}
	if got := cam.bgNew.At(px-TileSize+5, py+5); got != ColorSand {
		t.Errorf("bare tile = %#08x, want sand %#08x", got, uint32(ColorSand))
	}
}

func TestCameraComposeIdle(t *testing.T) {
	cam := NewCamera()
	cam.bgNew.Fill(ColorWater)
	dst := NewBuffer(DisplayW, DisplayH)
	cam.Compose(dst)
	if got := dst.At(100, 100); got != ColorWater {
		t.Errorf("idle compose pixel = %#08x, want %#08x", got, uint32(ColorWater))
	}
}

func TestCameraComposeScrolling(t *testing.T) {
	cam := NewCamera()
	cam.bgOld.Fill(ColorSand)
	cam.bgNew.Fill(ColorWater)
	cam.DestTileX = ScrollTW
	cam.PixelX = 100

	dst := NewBuffer(DisplayW, DisplayH)
	cam.Compose(dst)

	// Left of the seam the departing region shows; past it the fresh one.
	if got := dst.At(0, 0); got != ColorSand {
		t.Errorf("pixel left of seam = %#08x, want old region %#08x", got, uint32(ColorSand))
	}
	if got := dst.At(DisplayW-1, 0); got != ColorWater {
		t.Errorf("pixel right of seam = %#08x, want new region %#08x", got, uint32(ColorWater))
	}
	if got := dst.At(DisplayW-101, 0); got != ColorSand {
		t.Errorf("pixel at seam-1 = %#08x, want old region %#08x", got, uint32(ColorSand))
	}
	if got := dst.At(DisplayW-100, 0); got != ColorWater {
		t.Errorf("pixel at seam = %#08x, want new region %#08x", got, uint32(ColorWater))
	}
}

func BenchmarkCameraCompose(b *testing.B) {
	cam := NewCamera()
	cam.DestTileX = ScrollTW
	cam.PixelX = 360
	dst := NewBuffer(DisplayW, DisplayH)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cam.Compose(dst)
	}
}
