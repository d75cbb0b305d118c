package dungeon

import (
	"sort"

	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
)

// VisionRadius - дальность зрения по умолчанию для всех существ.
const VisionRadius = 8

// Приоритеты отрисовки: меньше - рисуется поверх.
const (
	RenderOrderPlayer  = 0
	RenderOrderMonster = 1
	RenderOrderItem    = 2
)

// ActorTemplate - шаблон существа (игрока или монстра).
type ActorTemplate struct {
	Name   string
	Glyph  types.Glyph
	Stats  domain.CombatStats
	Vision int
}

// --- ИГРОК ---

var PlayerTemplate = ActorTemplate{
	Name:   "Player",
	Glyph:  types.GlyphPlayer,
	Stats:  domain.CombatStats{HP: 30, MaxHP: 30, Defense: 2, Power: 5},
	Vision: VisionRadius,
}

// --- ВРАГИ ---

var Goblin = ActorTemplate{
	Name:   "Goblin",
	Glyph:  types.GlyphGoblin,
	Stats:  domain.CombatStats{HP: 16, MaxHP: 16, Defense: 1, Power: 4},
	Vision: VisionRadius,
}

var Orc = ActorTemplate{
	Name:   "Orc",
	Glyph:  types.GlyphOrc,
	Stats:  domain.CombatStats{HP: 16, MaxHP: 16, Defense: 1, Power: 4},
	Vision: VisionRadius,
}

// MonsterTemplates - все доступные враги. Ключи используются в конфиге.
var MonsterTemplates = map[string]ActorTemplate{
	"goblin": Goblin,
	"orc":    Orc,
}

// --- ПРЕДМЕТЫ ---

// ItemTemplate - шаблон предмета. Caps копируются в компоненты при спавне.
type ItemTemplate struct {
	Name     string
	Glyph    types.Glyph
	Category enums.ItemCategory
	Caps     domain.ItemCapabilities

	// Weight - относительный шанс выпасть при заполнении комнат.
	Weight int
}

var HealthPotion = ItemTemplate{
	Name:     "Health Potion",
	Glyph:    types.GlyphPotion,
	Category: enums.ItemCategoryPotion,
	Caps: domain.ItemCapabilities{
		Healing:    &domain.ProvidesHealing{Amount: 8},
		Consumable: true,
	},
	Weight: 4,
}

var MagicMissileScroll = ItemTemplate{
	Name:     "Magic Missile Scroll",
	Glyph:    types.GlyphScroll,
	Category: enums.ItemCategoryScroll,
	Caps: domain.ItemCapabilities{
		Damage:     &domain.InflictsDamage{Amount: 8},
		Ranged:     &domain.Ranged{Range: 6},
		Consumable: true,
	},
	Weight: 2,
}

var FireballScroll = ItemTemplate{
	Name:     "Fireball Scroll",
	Glyph:    types.GlyphFireball,
	Category: enums.ItemCategoryScroll,
	Caps: domain.ItemCapabilities{
		Damage:     &domain.InflictsDamage{Amount: 20},
		Ranged:     &domain.Ranged{Range: 6},
		Area:       &domain.AreaOfEffect{Radius: 3},
		Consumable: true,
	},
	Weight: 1,
}

// ItemTemplates - карта всех доступных предметов
var ItemTemplates = map[string]ItemTemplate{
	"health_potion": HealthPotion,
	"magic_missile": MagicMissileScroll,
	"fireball":      FireballScroll,
}

// LootTable - ключи ItemTemplates в стабильном порядке (для
// воспроизводимости по сиду нельзя полагаться на порядок обхода map).
var LootTable []string

func init() {
	for key := range ItemTemplates {
		LootTable = append(LootTable, key)
	}
	sort.Strings(LootTable)
}

// MonsterTable - ключи MonsterTemplates в стабильном порядке.
var MonsterTable []string

func init() {
	for key := range MonsterTemplates {
		MonsterTable = append(MonsterTable, key)
	}
	sort.Strings(MonsterTable)
}
