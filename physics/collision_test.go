package physics

import "testing"

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{2, 2, 3, 3}, true},
		{"partial", Rect{5, 5, 10, 10}, true},
		{"touching right edge", Rect{10, 0, 5, 5}, false},
		{"touching bottom edge", Rect{0, 10, 5, 5}, false},
		{"disjoint", Rect{20, 20, 5, 5}, false},
		{"containing", Rect{-5, -5, 30, 30}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClearedFrom(t *testing.T) {
	enemy := Rect{X: 0, Y: 528, W: 60, H: 40} // MidY 548
	if !(Rect{Y: 480, H: 60}).ClearedFrom(enemy) {
		t.Error("bottom 540 above mid 548 should clear")
	}
	if (Rect{Y: 508, H: 60}).ClearedFrom(enemy) {
		t.Error("bottom 568 below mid should not clear")
	}
	if (Rect{Y: 488, H: 60}).ClearedFrom(enemy) {
		t.Error("bottom exactly at mid should not clear")
	}
}

func TestInDirectionalRange(t *testing.T) {
	tests := []struct {
		name               string
		origin, x, dir, rg float64
		want               bool
	}{
		{"right inside", 100, 200, 1, 150, true},
		{"right at origin", 100, 100, 1, 150, false},
		{"right at reach", 100, 250, 1, 150, false},
		{"right behind", 100, 50, 1, 150, false},
		{"left inside", 100, 20, -1, 150, true},
		{"left at reach", 300, 150, -1, 150, false},
		{"left ahead", 100, 120, -1, 150, false},
		{"no direction", 100, 120, 0, 150, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InDirectionalRange(tt.origin, tt.x, tt.dir, tt.rg); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettleOnGround(t *testing.T) {
	b := Body{Y: 510, VY: 12}
	c := SettleOnGround(&b, 60, 568, false)
	if !c.Grounded || !c.Landed || c.ImpactVY != 12 {
		t.Fatalf("contact = %+v", c)
	}
	if b.Y != 508 || b.VY != 0 {
		t.Errorf("body = %+v, want Y=508 VY=0", b)
	}

	c = SettleOnGround(&b, 60, 568, true)
	if !c.Grounded || c.Landed {
		t.Errorf("resting contact = %+v", c)
	}

	air := Body{Y: 100, VY: -5}
	if c := SettleOnGround(&air, 60, 568, false); c.Grounded {
		t.Errorf("airborne body grounded: %+v", c)
	}
}

func TestClampX(t *testing.T) {
	b := Body{X: -4}
	ClampX(&b, 65, 1024)
	if b.X != 0 {
		t.Errorf("X = %v, want 0", b.X)
	}
	b.X = 2000
	ClampX(&b, 65, 1024)
	if b.X != 959 {
		t.Errorf("X = %v, want 959", b.X)
	}
}

func TestIntegrate(t *testing.T) {
	b := Body{X: 10, Y: 100, VX: 5, VY: -25}
	Integrate(&b, 0.5, true)
	if b.X != 15 || b.VY != -24.5 || b.Y != 75.5 {
		t.Errorf("body = %+v", b)
	}
	b = Body{Y: 100, VY: 0}
	Integrate(&b, 0.5, false)
	if b.VY != 0 || b.Y != 100 {
		t.Errorf("grounded body moved: %+v", b)
	}
}
