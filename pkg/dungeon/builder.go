package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/Samwisebuze/rustlike/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// ErrNoRooms - на карте нет ни одной комнаты, игрока некуда поставить.
var ErrNoRooms = errors.New("level has no rooms")

// SpawnConfig - параметры заселения комнат.
type SpawnConfig struct {
	// MaxMonsters и MaxItems - верхняя граница на комнату.
	MaxMonsters int `json:"maxMonsters"`
	MaxItems    int `json:"maxItems"`

	// StartingKit - ключи ItemTemplates, которые игрок получает сразу.
	StartingKit []string `json:"startingKit"`
}

// DefaultSpawnConfig возвращает параметры заселения по умолчанию.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		MaxMonsters: 4,
		MaxItems:    2,
		StartingKit: []string{"health_potion"},
	}
}

// Level - результат сборки уровня.
type Level struct {
	Map      *domain.Map
	Player   types.EntityID
	Monsters int
	Items    int
}

// LevelBuilder предоставляет fluent API для создания уровней.
// Первая ошибка запоминается, остальные шаги после нее ничего не делают.
type LevelBuilder struct {
	world    *domain.World
	rng      *rand.Rand
	cfg      Config
	gameMap  *domain.Map
	player   types.EntityID
	occupied mapset.Set[domain.Position]
	monsters int
	items    int
	err      error
}

// NewLevel создает новый builder для уровня
func NewLevel(world *domain.World, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		world:    world,
		rng:      rng,
		cfg:      DefaultConfig(),
		occupied: mapset.New[domain.Position](),
	}
}

// WithConfig задает параметры генератора
func (b *LevelBuilder) WithConfig(cfg Config) *LevelBuilder {
	b.cfg = cfg
	return b
}

// WithMap использует готовую карту вместо генерации
func (b *LevelBuilder) WithMap(m *domain.Map) *LevelBuilder {
	b.gameMap = m
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	if b.err != nil {
		return b
	}
	b.gameMap = Generate(b.cfg, b.rng)
	return b
}

// SpawnPlayer ставит игрока в центр первой комнаты и выдает стартовые предметы.
func (b *LevelBuilder) SpawnPlayer(t ActorTemplate, kit ...string) *LevelBuilder {
	if b.err != nil {
		return b
	}
	if b.gameMap == nil || len(b.gameMap.Rooms) == 0 {
		b.err = ErrNoRooms
		return b
	}

	start := b.gameMap.Rooms[0].Center()
	b.player = SpawnPlayer(b.world, t, start)
	b.occupied.Put(start)

	for _, key := range kit {
		tpl, ok := ItemTemplates[key]
		if !ok {
			b.err = fmt.Errorf("starting kit: unknown item %q", key)
			return b
		}
		GiveItem(b.world, tpl, b.player)
	}
	return b
}

// PopulateRooms заселяет все комнаты кроме первой монстрами и предметами.
// Два существа никогда не ставятся на одну клетку.
func (b *LevelBuilder) PopulateRooms(spawn SpawnConfig) *LevelBuilder {
	if b.err != nil || b.gameMap == nil {
		return b
	}

	for i := 1; i < len(b.gameMap.Rooms); i++ {
		room := b.gameMap.Rooms[i]

		for n := rollSpawnCount(b.rng, spawn.MaxMonsters); n > 0; n-- {
			pos, ok := b.freeTile(room)
			if !ok {
				break
			}
			key := MonsterTable[b.rng.Intn(len(MonsterTable))]
			tpl := MonsterTemplates[key]
			b.monsters++
			SpawnMonster(b.world, tpl, fmt.Sprintf("%s #%d", tpl.Name, b.monsters), pos)
		}

		for n := rollSpawnCount(b.rng, spawn.MaxItems); n > 0; n-- {
			pos, ok := b.freeTile(room)
			if !ok {
				break
			}
			SpawnItem(b.world, b.pickLoot(), pos)
			b.items++
		}
	}
	return b
}

// Build собирает и возвращает готовый уровень
func (b *LevelBuilder) Build() (Level, error) {
	if b.err != nil {
		return Level{}, b.err
	}
	if b.gameMap == nil {
		return Level{}, ErrNoRooms
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "level_builder",
		"rooms":     len(b.gameMap.Rooms),
		"floor":     b.gameMap.FloorCount(),
		"monsters":  b.monsters,
		"items":     b.items,
	}).Info("Level built.")

	return Level{
		Map:      b.gameMap,
		Player:   b.player,
		Monsters: b.monsters,
		Items:    b.items,
	}, nil
}

// --- Helper functions ---

// rollSpawnCount - 1d(max+2)-3, не меньше нуля: пустые комнаты встречаются часто.
func rollSpawnCount(rng *rand.Rand, maxPerRoom int) int {
	if maxPerRoom <= 0 {
		return 0
	}
	return max(0, utils.RollDice(rng, 1, maxPerRoom+2)-3)
}

// freeTile ищет свободную клетку пола внутри комнаты (макс 20 попыток).
func (b *LevelBuilder) freeTile(room domain.Rect) (domain.Position, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		pos := domain.Position{
			X: utils.RandRange(b.rng, room.X+1, room.X2()-1),
			Y: utils.RandRange(b.rng, room.Y+1, room.Y2()-1),
		}
		if b.gameMap.TileAt(pos.X, pos.Y) != domain.TileFloor || b.occupied.Has(pos) {
			continue
		}
		b.occupied.Put(pos)
		return pos, true
	}
	return domain.Position{}, false
}

// pickLoot выбирает предмет с учетом весов.
func (b *LevelBuilder) pickLoot() ItemTemplate {
	total := 0
	for _, key := range LootTable {
		total += ItemTemplates[key].Weight
	}

	roll := b.rng.Intn(total)
	for _, key := range LootTable {
		tpl := ItemTemplates[key]
		if roll < tpl.Weight {
			return tpl
		}
		roll -= tpl.Weight
	}
	return ItemTemplates[LootTable[0]]
}
