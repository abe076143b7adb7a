package kujira

import "testing"

func TestRippleSpawnActivates(t *testing.T) {
	var ring RippleRing
	ring.Spawn(3, 4)
	if got := ring.ActiveCount(); got != 1 {
		t.Fatalf("ActiveCount = %d, want 1", got)
	}
	s := &ring.slots[0]
	if !s.Active() {
		t.Error("slot 0 inactive after Spawn")
	}
	if s.Radius() != rippleStartRadius {
		t.Errorf("Radius = %v, want %v", s.Radius(), float64(rippleStartRadius))
	}
	if s.Alpha() != 1 {
		t.Errorf("Alpha = %v, want 1", s.Alpha())
	}
	if s.tileX != 3 || s.tileY != 4 {
		t.Errorf("anchor = (%d,%d), want (3,4)", s.tileX, s.tileY)
	}
}

func TestRippleRingOverwritesOldest(t *testing.T) {
	var ring RippleRing
	for i := 0; i < rippleSlots; i++ {
		ring.Spawn(i, 0)
	}
	if got := ring.ActiveCount(); got != rippleSlots {
		t.Fatalf("ActiveCount = %d, want %d", got, rippleSlots)
	}

	// A sixth spawn wraps and claims slot 0; the count stays capped.
	ring.Spawn(99, 0)
	if got := ring.ActiveCount(); got != rippleSlots {
		t.Errorf("ActiveCount = %d, want %d after overflow", got, rippleSlots)
	}
	if ring.slots[0].tileX != 99 {
		t.Errorf("slot 0 anchor X = %d, want 99 (oldest overwritten)", ring.slots[0].tileX)
	}
	if ring.next != 1 {
		t.Errorf("next = %d, want 1", ring.next)
	}
}

func TestRippleGrowsAndFades(t *testing.T) {
	var ring RippleRing
	ring.Spawn(0, 0)
	cam := NewCamera()
	dst := NewBuffer(DisplayW, DisplayH)
	dst.Fill(ColorWater)

	s := &ring.slots[0]
	prevRadius, prevAlpha := s.Radius(), s.Alpha()
	for i := 0; i < 10; i++ {
		ring.Update(dst, cam, TickDuration)
		if s.Radius() <= prevRadius {
			t.Fatalf("radius %v did not grow past %v", s.Radius(), prevRadius)
		}
		if s.Alpha() >= prevAlpha {
			t.Fatalf("alpha %v did not fade below %v", s.Alpha(), prevAlpha)
		}
		prevRadius, prevAlpha = s.Radius(), s.Alpha()
	}
}

func TestRippleDiesAtDeathRadius(t *testing.T) {
	var ring RippleRing
	ring.Spawn(0, 0)
	cam := NewCamera()
	dst := NewBuffer(DisplayW, DisplayH)

	for i := 0; i < 60 && ring.ActiveCount() > 0; i++ {
		ring.Update(dst, cam, TickDuration)
	}
	if got := ring.ActiveCount(); got != 0 {
		t.Fatalf("ActiveCount = %d, want 0 after the radius ran out", got)
	}
	if ring.slots[0].buf != nil {
		t.Error("dead ripple kept its buffer")
	}
}

func TestRippleComposeOntoWater(t *testing.T) {
	var ring RippleRing
	ring.Spawn(0, 0)
	cam := NewCamera()
	dst := NewBuffer(DisplayW, DisplayH)
	dst.Fill(ColorWater)

	ring.Update(dst, cam, TickDuration)

	x0 := (DisplayTW/2)*TileSize - rippleSize/2 + TileSize/2
	y0 := (DisplayTH/2)*TileSize - rippleSize/2 + TileSize/2
	changed := false
	for y := y0; y < y0+rippleSize && !changed; y++ {
		for x := x0; x < x0+rippleSize; x++ {
			if dst.At(x, y) != ColorWater {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("ripple left open water untouched")
	}
}

func TestRippleComposeSkipsReservedColors(t *testing.T) {
	for _, bg := range []uint32{ColorSand, ColorShadow} {
		var ring RippleRing
		ring.Spawn(0, 0)
		cam := NewCamera()
		dst := NewBuffer(DisplayW, DisplayH)
		dst.Fill(bg)

		ring.Update(dst, cam, TickDuration)
		for i, px := range dst.Pix {
			if px != bg {
				t.Fatalf("pixel %d = %#08x over background %#08x, want untouched", i, px, bg)
			}
		}
	}
}

func BenchmarkRippleUpdate(b *testing.B) {
	var ring RippleRing
	for i := 0; i < rippleSlots; i++ {
		ring.Spawn(i, 0)
	}
	cam := NewCamera()
	dst := NewBuffer(DisplayW, DisplayH)
	dst.Fill(ColorWater)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ring.Update(dst, cam, TickDuration)
		if ring.ActiveCount() == 0 {
			b.StopTimer()
			for j := 0; j < rippleSlots; j++ {
				ring.Spawn(j, 0)
			}
			b.StartTimer()
		}
	}
}
