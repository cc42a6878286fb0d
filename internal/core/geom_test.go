package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Pt(0, -1)},
		{DirDown, Pt(0, 1)},
		{DirLeft, Pt(-1, 0)},
		{DirRight, Pt(1, 0)},
		{Direction(42), Pt(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		// Opposite deltas cancel out
		if sum := d.Delta().Add(d.Opposite().Delta()); sum != (Point{}) {
			t.Errorf("%v delta plus opposite delta = %v, expected origin", d, sum)
		}
	}
}

func TestPointAddLeavesBoard(t *testing.T) {
	// No clamping: points keep going past zero
	p := Pt(0, 0).Add(DirLeft.Delta()).Add(DirUp.Delta())
	if p != Pt(-1, -1) {
		t.Errorf("expected (-1,-1), got %v", p)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"bottom-right edge (exclusive)", Pt(30, 25), false},
		{"outside left", Pt(5, 15), false},
		{"outside right", Pt(35, 15), false},
		{"outside top", Pt(15, 5), false},
		{"outside bottom", Pt(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestActionMapping(t *testing.T) {
	moves := map[Action]Direction{
		ActionMoveUp:    DirUp,
		ActionMoveDown:  DirDown,
		ActionMoveLeft:  DirLeft,
		ActionMoveRight: DirRight,
	}
	for a, want := range moves {
		d, ok := a.Direction()
		if !ok || d != want {
			t.Errorf("%v.Direction() = %v, %v; expected %v, true", a, d, ok, want)
		}
		if _, ok := a.Skin(); ok {
			t.Errorf("%v should not map to a skin", a)
		}
	}

	skins := map[Action]Skin{
		ActionSkin1: SkinClassic,
		ActionSkin2: SkinIce,
		ActionSkin3: SkinGold,
	}
	for a, want := range skins {
		s, ok := a.Skin()
		if !ok || s != want {
			t.Errorf("%v.Skin() = %v, %v; expected %v, true", a, s, ok, want)
		}
	}

	for _, a := range []Action{ActionNone, ActionTogglePause, ActionRestart, Action(99)} {
		if _, ok := a.Direction(); ok {
			t.Errorf("%v should not map to a direction", a)
		}
	}
}

func TestSkinValidGeomCopy(t *testing.T) {
	for _, s := range []Skin{SkinClassic, SkinIce, SkinGold} {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	for _, s := range []Skin{0, 4, -1} {
		if s.Valid() {
			t.Errorf("Skin(%d) should be invalid", s)
		}
	}
}
