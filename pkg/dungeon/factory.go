package dungeon

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
)

// SpawnPlayer создает игрока на заданной клетке.
func SpawnPlayer(w *domain.World, t ActorTemplate, pos domain.Position) types.EntityID {
	id := w.Create(enums.EntityTypePlayer)
	w.Players.Insert(id, domain.PlayerTag{})
	spawnActor(w, id, t, t.Name, pos, RenderOrderPlayer)
	return id
}

// SpawnMonster создает монстра. Монстр блокирует клетку.
func SpawnMonster(w *domain.World, t ActorTemplate, name string, pos domain.Position) types.EntityID {
	id := w.Create(enums.EntityTypeMonster)
	w.Monsters.Insert(id, domain.MonsterTag{})
	w.Blockers.Insert(id, domain.BlocksTile{})
	spawnActor(w, id, t, name, pos, RenderOrderMonster)
	return id
}

func spawnActor(w *domain.World, id types.EntityID, t ActorTemplate, name string, pos domain.Position, order int) {
	w.Positions.Insert(id, pos)
	w.Renderables.Insert(id, domain.Renderable{Glyph: t.Glyph, Order: order})
	w.Names.Insert(id, domain.Name{Name: name})
	w.Viewsheds.Insert(id, domain.NewViewshed(t.Vision))

	stats := t.Stats
	if stats.MaxHP == 0 {
		stats.MaxHP = stats.HP
	}
	w.Stats.Insert(id, stats)
}

// SpawnItem кладет предмет на пол.
func SpawnItem(w *domain.World, t ItemTemplate, pos domain.Position) types.EntityID {
	id := newItem(w, t)
	w.Positions.Insert(id, pos)
	return id
}

// GiveItem создает предмет сразу в инвентаре owner.
func GiveItem(w *domain.World, t ItemTemplate, owner types.EntityID) types.EntityID {
	id := newItem(w, t)
	w.Carried.Insert(id, domain.CarriedBy{Owner: owner})
	return id
}

func newItem(w *domain.World, t ItemTemplate) types.EntityID {
	id := w.Create(enums.EntityTypeItem)
	w.Items.Insert(id, domain.Item{Category: t.Category})
	w.Names.Insert(id, domain.Name{Name: t.Name})
	w.Renderables.Insert(id, domain.Renderable{Glyph: t.Glyph, Order: RenderOrderItem})
	w.AttachCapabilities(id, t.Caps)
	return id
}
