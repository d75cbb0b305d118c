package domain

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
)

// remover - общая часть всех хранилищ, нужна для Destroy.
type remover interface {
	Remove(id types.EntityID) bool
}

// World - реестр сущностей и хранилища компонентов.
// Сущность - только EntityID, все данные лежат в хранилищах.
type World struct {
	generations []uint32
	alive       []bool
	free        []uint32

	Positions   *Store[Position]
	Renderables *Store[Renderable]
	Names       *Store[Name]
	Players     *Store[PlayerTag]
	Monsters    *Store[MonsterTag]
	Blockers    *Store[BlocksTile]
	Viewsheds   *Store[Viewshed]
	Stats       *Store[CombatStats]
	Damage      *Store[PendingDamage]
	Attacks     *Store[AttackIntent]

	Items       *Store[Item]
	Consumables *Store[Consumable]
	Ranged      *Store[Ranged]
	Areas       *Store[AreaOfEffect]
	Healing     *Store[ProvidesHealing]
	Inflicts    *Store[InflictsDamage]
	Carried     *Store[CarriedBy]

	Pickups *Store[PickupIntent]
	Uses    *Store[UseIntent]
	Drops   *Store[DropIntent]

	all []remover
}

// NewWorld создает пустой мир.
func NewWorld() *World {
	w := &World{
		Positions:   NewStore[Position]("Position"),
		Renderables: NewStore[Renderable]("Renderable"),
		Names:       NewStore[Name]("Name"),
		Players:     NewStore[PlayerTag]("Player"),
		Monsters:    NewStore[MonsterTag]("Monster"),
		Blockers:    NewStore[BlocksTile]("BlocksTile"),
		Viewsheds:   NewStore[Viewshed]("Viewshed"),
		Stats:       NewStore[CombatStats]("CombatStats"),
		Damage:      NewStore[PendingDamage]("PendingDamage"),
		Attacks:     NewStore[AttackIntent]("AttackIntent"),
		Items:       NewStore[Item]("Item"),
		Consumables: NewStore[Consumable]("Consumable"),
		Ranged:      NewStore[Ranged]("Ranged"),
		Areas:       NewStore[AreaOfEffect]("AreaOfEffect"),
		Healing:     NewStore[ProvidesHealing]("ProvidesHealing"),
		Inflicts:    NewStore[InflictsDamage]("InflictsDamage"),
		Carried:     NewStore[CarriedBy]("CarriedBy"),
		Pickups:     NewStore[PickupIntent]("PickupIntent"),
		Uses:        NewStore[UseIntent]("UseIntent"),
		Drops:       NewStore[DropIntent]("DropIntent"),
	}
	w.all = []remover{
		w.Positions, w.Renderables, w.Names, w.Players, w.Monsters,
		w.Blockers, w.Viewsheds, w.Stats, w.Damage, w.Attacks,
		w.Items, w.Consumables, w.Ranged, w.Areas, w.Healing,
		w.Inflicts, w.Carried, w.Pickups, w.Uses, w.Drops,
	}
	return w
}

// Create выделяет новую сущность. Освобожденные слоты переиспользуются
// с увеличенным поколением.
func (w *World) Create(kind enums.EntityType) types.EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}

	gen := w.generations[idx] + 1
	if gen > types.MaxGeneration {
		gen = 1
	}
	w.generations[idx] = gen
	w.alive[idx] = true

	return types.PackEntityID(uint8(kind), gen, idx)
}

// IsAlive - существует ли сущность с таким ID.
func (w *World) IsAlive(id types.EntityID) bool {
	if id.IsNil() {
		return false
	}
	idx := id.Index()
	return idx < uint32(len(w.alive)) && w.alive[idx] && w.generations[idx] == id.Generation()
}

// Destroy удаляет сущность со всеми компонентами. Повторный вызов - no-op.
func (w *World) Destroy(id types.EntityID) {
	if !w.IsAlive(id) {
		return
	}
	for _, s := range w.all {
		s.Remove(id)
	}
	idx := id.Index()
	w.alive[idx] = false
	w.free = append(w.free, idx)
}

// Count - количество живых сущностей.
func (w *World) Count() int {
	return len(w.alive) - len(w.free)
}

// Player возвращает сущность игрока. Игрок может отсутствовать (погиб).
// Больше одного игрока - нарушение контракта.
func (w *World) Player() (types.EntityID, bool) {
	ids := w.Players.Entities()
	switch len(ids) {
	case 0:
		return types.NilEntityID, false
	case 1:
		return ids[0], true
	default:
		Violation(ids[1], "more than one player entity")
		return types.NilEntityID, false
	}
}

// DisplayName возвращает имя сущности или заглушку.
func (w *World) DisplayName(id types.EntityID) string {
	if n, ok := w.Names.Get(id); ok {
		return n.Name
	}
	return "something"
}

// Capabilities собирает эффекты предмета из отдельных хранилищ.
func (w *World) Capabilities(item types.EntityID) ItemCapabilities {
	caps := ItemCapabilities{Consumable: w.Consumables.Has(item)}
	if v, ok := w.Healing.Get(item); ok {
		caps.Healing = v
	}
	if v, ok := w.Inflicts.Get(item); ok {
		caps.Damage = v
	}
	if v, ok := w.Ranged.Get(item); ok {
		caps.Ranged = v
	}
	if v, ok := w.Areas.Get(item); ok {
		caps.Area = v
	}
	return caps
}

// AttachCapabilities навешивает эффекты на предмет (используется спавнером).
func (w *World) AttachCapabilities(item types.EntityID, caps ItemCapabilities) {
	if caps.Consumable {
		w.Consumables.Insert(item, Consumable{})
	}
	if caps.Healing != nil {
		w.Healing.Insert(item, *caps.Healing)
	}
	if caps.Damage != nil {
		w.Inflicts.Insert(item, *caps.Damage)
	}
	if caps.Ranged != nil {
		w.Ranged.Insert(item, *caps.Ranged)
	}
	if caps.Area != nil {
		w.Areas.Insert(item, *caps.Area)
	}
}

// Inventory возвращает предметы, которые несет owner, в порядке слотов.
func (w *World) Inventory(owner types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, id := range w.Carried.Entities() {
		if c, _ := w.Carried.Get(id); c.Owner == owner {
			out = append(out, id)
		}
	}
	return out
}

// ItemsAt возвращает предметы, лежащие на клетке.
func (w *World) ItemsAt(p Position) []types.EntityID {
	var out []types.EntityID
	for _, id := range w.Items.Entities() {
		if pos, ok := w.Positions.Get(id); ok && *pos == p {
			out = append(out, id)
		}
	}
	return out
}
