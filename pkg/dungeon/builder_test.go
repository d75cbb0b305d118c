package dungeon

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

func TestLevelBuilder_Build(t *testing.T) {
	w := domain.NewWorld()
	rng := rand.New(rand.NewSource(11))

	lvl, err := NewLevel(w, rng).
		WithConfig(DefaultConfig()).
		WithRooms().
		SpawnPlayer(PlayerTemplate, "health_potion").
		PopulateRooms(DefaultSpawnConfig()).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	player, ok := w.Player()
	if !ok || player != lvl.Player {
		t.Fatalf("player not registered")
	}
	pos, _ := w.Positions.Get(player)
	if *pos != lvl.Map.Rooms[0].Center() {
		t.Errorf("player at %v, want room 0 center", *pos)
	}
	if inv := w.Inventory(player); len(inv) != 1 {
		t.Errorf("starting kit size = %d, want 1", len(inv))
	}

	// Монстры: полный набор компонентов и уникальные клетки
	cells := mapset.New[domain.Position]()
	cells.Put(*pos)
	for _, id := range w.Monsters.Entities() {
		p, ok := w.Positions.Get(id)
		if !ok || !w.Stats.Has(id) || !w.Blockers.Has(id) || !w.Viewsheds.Has(id) || !w.Names.Has(id) {
			t.Fatalf("monster %s missing components", id)
		}
		if cells.Has(*p) {
			t.Fatalf("two actors on %v", *p)
		}
		if lvl.Map.TileAt(p.X, p.Y) != domain.TileFloor {
			t.Fatalf("monster spawned in wall at %v", *p)
		}
		cells.Put(*p)
	}
	if w.Monsters.Len() != lvl.Monsters {
		t.Errorf("Monsters = %d, store has %d", lvl.Monsters, w.Monsters.Len())
	}

	for _, id := range w.Items.Entities() {
		if w.Positions.Has(id) == w.Carried.Has(id) {
			t.Fatalf("item %s must have exactly one of Position/CarriedBy", id)
		}
	}
}

func TestLevelBuilder_Errors(t *testing.T) {
	w := domain.NewWorld()
	rng := rand.New(rand.NewSource(1))

	_, err := NewLevel(w, rng).WithMap(domain.NewMap(5, 5)).SpawnPlayer(PlayerTemplate).Build()
	if !errors.Is(err, ErrNoRooms) {
		t.Errorf("expected ErrNoRooms, got %v", err)
	}

	tiny := Config{Width: 6, Height: 5, MaxRooms: 5, MinSize: 6, MaxSize: 10}
	_, err = NewLevel(w, rng).WithConfig(tiny).WithRooms().SpawnPlayer(PlayerTemplate).Build()
	if !errors.Is(err, ErrNoRooms) {
		t.Errorf("tiny grid: expected ErrNoRooms, got %v", err)
	}

	_, err = NewLevel(w, rng).WithMap(GenerateArena(10, 10)).SpawnPlayer(PlayerTemplate, "excalibur").Build()
	if err == nil {
		t.Error("expected error for unknown kit item")
	}
}

func TestPickLoot_CoversTable(t *testing.T) {
	b := NewLevel(domain.NewWorld(), rand.New(rand.NewSource(2)))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[b.pickLoot().Name] = true
	}
	for _, key := range LootTable {
		if !seen[ItemTemplates[key].Name] {
			t.Errorf("%s never dropped", key)
		}
	}
}
