package dungeon

import (
	"math/rand"
	"testing"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

// floodFloor возвращает все клетки пола, достижимые из start.
func floodFloor(m *domain.Map, start domain.Position) mapset.Set[domain.Position] {
	seen := mapset.New[domain.Position]()
	queue := []domain.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen.Has(p) || m.TileAt(p.X, p.Y) != domain.TileFloor {
			continue
		}
		seen.Put(p)
		queue = append(queue, p.Shift(1, 0), p.Shift(-1, 0), p.Shift(0, 1), p.Shift(0, -1))
	}
	return seen
}

func TestGenerate_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m := Generate(DefaultConfig(), rand.New(rand.NewSource(seed)))

		if m.Width != MapWidth || m.Height != MapHeight {
			t.Fatalf("seed %d: size %dx%d", seed, m.Width, m.Height)
		}
		if len(m.Rooms) == 0 || len(m.Rooms) > MaxRooms {
			t.Fatalf("seed %d: %d rooms", seed, len(m.Rooms))
		}

		for i, room := range m.Rooms {
			// Пол внутри каждой комнаты
			for y := room.Y + 1; y < room.Y2(); y++ {
				for x := room.X + 1; x < room.X2(); x++ {
					if m.TileAt(x, y) != domain.TileFloor {
						t.Fatalf("seed %d: room %d tile (%d,%d) is wall", seed, i, x, y)
					}
				}
			}
			// Комнаты не пересекаются
			for j := i + 1; j < len(m.Rooms); j++ {
				if room.Intersects(m.Rooms[j]) {
					t.Fatalf("seed %d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}

		// Все центры достижимы из комнаты 0
		reach := floodFloor(m, m.Rooms[0].Center())
		for i, room := range m.Rooms {
			if !reach.Has(room.Center()) {
				t.Fatalf("seed %d: room %d unreachable", seed, i)
			}
		}

		// Край карты остается стеной
		for x := 0; x < m.Width; x++ {
			if m.TileAt(x, 0) == domain.TileFloor || m.TileAt(x, m.Height-1) == domain.TileFloor {
				t.Fatalf("seed %d: border carved at x=%d", seed, x)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultConfig(), rand.New(rand.NewSource(99)))
	b := Generate(DefaultConfig(), rand.New(rand.NewSource(99)))

	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room count differs: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs for the same seed", i)
		}
	}
}

func TestGenerate_TinyGrid(t *testing.T) {
	cfg := Config{Width: 6, Height: 5, MaxRooms: 5, MinSize: 6, MaxSize: 10}
	m := Generate(cfg, rand.New(rand.NewSource(3)))

	if len(m.Rooms) != 0 {
		t.Fatalf("rooms = %d, no candidate fits a 6x5 grid", len(m.Rooms))
	}
	if m.FloorCount() != 0 {
		t.Errorf("FloorCount() = %d, grid must stay solid rock", m.FloorCount())
	}
}

func TestGenerate_BlockedMatchesWalls(t *testing.T) {
	m := Generate(DefaultConfig(), rand.New(rand.NewSource(5)))
	for i, tile := range m.Tiles {
		if m.Blocked[i] != (tile == domain.TileWall) {
			t.Fatalf("Blocked[%d] = %v for %v", i, m.Blocked[i], tile)
		}
	}
}

func TestGenerateArena(t *testing.T) {
	m := GenerateArena(10, 8)
	if got := m.FloorCount(); got != 8*6 {
		t.Errorf("FloorCount() = %d, want 48", got)
	}
	if m.TileAt(0, 0) != domain.TileWall || m.TileAt(9, 7) != domain.TileWall {
		t.Error("arena border must be wall")
	}
}
