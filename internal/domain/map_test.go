package domain

import (
	"testing"

	"github.com/Samwisebuze/rustlike/internal/core/types"
)

func TestMap_IndexBijective(t *testing.T) {
	m := NewMap(7, 5)
	seen := make(map[int]bool)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if seen[idx] {
				t.Fatalf("index %d produced twice", idx)
			}
			seen[idx] = true
			if p := m.PositionOf(idx); p.X != x || p.Y != y {
				t.Fatalf("PositionOf(%d) = %v, want (%d,%d)", idx, p, x, y)
			}
		}
	}
	if len(seen) != 35 {
		t.Errorf("covered %d indices, want 35", len(seen))
	}
}

func TestMap_OutOfBounds(t *testing.T) {
	m := NewMap(3, 3)
	m.SetTile(1, 1, TileFloor)

	if !m.IsOpaque(-1, 0) || !m.IsBlocked(Position{X: 3, Y: 0}) {
		t.Error("out-of-bounds must be opaque and blocked")
	}
	if m.ContentAt(Position{X: 5, Y: 5}) != nil {
		t.Error("ContentAt out of bounds should be nil")
	}
	if m.TileAt(1, 1) != TileFloor {
		t.Error("SetTile lost")
	}
}

func TestMap_BlockedAndContent(t *testing.T) {
	m := NewMap(4, 1)
	for x := 1; x < 3; x++ {
		m.SetTile(x, 0, TileFloor)
	}
	m.PopulateBlocked()

	want := []bool{true, false, false, true}
	for i, b := range want {
		if m.Blocked[i] != b {
			t.Errorf("Blocked[%d] = %v, want %v", i, m.Blocked[i], b)
		}
	}

	id := types.PackEntityID(0, 1, 0)
	m.AddContent(Position{X: 1, Y: 0}, id)
	if got := m.ContentAt(Position{X: 1, Y: 0}); len(got) != 1 || got[0] != id {
		t.Errorf("ContentAt() = %v", got)
	}
	m.ClearContent()
	if got := m.ContentAt(Position{X: 1, Y: 0}); len(got) != 0 {
		t.Errorf("content not cleared: %v", got)
	}
	if m.FloorCount() != 2 {
		t.Errorf("FloorCount() = %d", m.FloorCount())
	}
}

func TestRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 5, H: 5}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 2, Y: 2, W: 5, H: 5}, true},
		{"shared wall", Rect{X: 5, Y: 0, W: 4, H: 4}, true},
		{"one tile gap", Rect{X: 6, Y: 0, W: 4, H: 4}, false},
		{"far away", Rect{X: 20, Y: 20, W: 3, H: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(a); got != tt.want {
				t.Errorf("Intersects() not symmetric")
			}
		})
	}

	if c := a.Center(); c != (Position{X: 2, Y: 2}) {
		t.Errorf("Center() = %v", c)
	}
	if a.Contains(Position{X: 0, Y: 2}) || !a.Contains(Position{X: 1, Y: 1}) {
		t.Error("Contains() must exclude walls and include interior")
	}
}
