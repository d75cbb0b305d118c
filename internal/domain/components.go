package domain

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/zyedidia/generic/mapset"
)

// --- КОМПОНЕНТЫ ---

// Renderable - как сущность рисуется. Order - приоритет отрисовки:
// при нескольких сущностях в клетке рисуется та, у которой Order меньше.
type Renderable struct {
	Glyph types.Glyph `json:"glyph"`
	Order int         `json:"order"`
}

// Name - отображаемое имя ("Goblin #3", "Health Potion").
type Name struct {
	Name string `json:"name"`
}

// Теги без данных.
type (
	PlayerTag  struct{}
	MonsterTag struct{}
	BlocksTile struct{}
	Consumable struct{}
)

// Item - сущность является предметом.
type Item struct {
	Category enums.ItemCategory `json:"category"`
}

// Viewshed - поле зрения. Visible пересчитывается только при Dirty.
type Viewshed struct {
	Visible mapset.Set[Position] `json:"-"`
	Range   int                  `json:"range"`
	Dirty   bool                 `json:"-"`
}

// NewViewshed создает поле зрения, требующее пересчета.
func NewViewshed(rangeTiles int) Viewshed {
	return Viewshed{
		Visible: mapset.New[Position](),
		Range:   rangeTiles,
		Dirty:   true,
	}
}

// Sees - входит ли клетка в текущее поле зрения.
func (v *Viewshed) Sees(p Position) bool {
	return v.Visible.Has(p)
}

// PendingDamage - урон, накопленный за ход, до интеграции.
type PendingDamage struct {
	Amounts []int `json:"amounts"`
}

// Total - сумма накопленного урона.
func (d PendingDamage) Total() int {
	sum := 0
	for _, a := range d.Amounts {
		sum += a
	}
	return sum
}

// --- ЭФФЕКТЫ ПРЕДМЕТОВ ---

type Ranged struct {
	Range int `json:"range"`
}

type AreaOfEffect struct {
	Radius int `json:"radius"`
}

type ProvidesHealing struct {
	Amount int `json:"amount"`
}

type InflictsDamage struct {
	Amount int `json:"amount"`
}

// CarriedBy - предмет лежит в инвентаре Owner. Взаимоисключается с Position.
type CarriedBy struct {
	Owner types.EntityID `json:"owner"`
}

// --- НАМЕРЕНИЯ (живут один ход) ---

// AttackIntent - атакующий (владелец) бьет Target.
type AttackIntent struct {
	Target types.EntityID `json:"target"`
}

// PickupIntent - Collector поднимает Item.
type PickupIntent struct {
	Item      types.EntityID `json:"item"`
	Collector types.EntityID `json:"collector"`
}

// UseIntent - владелец применяет Item. Target обязателен для Ranged.
type UseIntent struct {
	Item   types.EntityID `json:"item"`
	Target *Position      `json:"target,omitempty"`
}

// DropIntent - владелец бросает Item на свою клетку.
type DropIntent struct {
	Item types.EntityID `json:"item"`
}

// ItemCapabilities - набор необязательных эффектов предмета.
// Любое подмножество может встречаться одновременно.
type ItemCapabilities struct {
	Healing    *ProvidesHealing
	Damage     *InflictsDamage
	Ranged     *Ranged
	Area       *AreaOfEffect
	Consumable bool
}

// HasEffect - есть ли у предмета хоть один активный эффект.
func (c ItemCapabilities) HasEffect() bool {
	return c.Healing != nil || c.Damage != nil
}
