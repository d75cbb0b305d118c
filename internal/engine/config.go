package engine

import (
	"time"

	"github.com/Samwisebuze/rustlike/pkg/dungeon"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят карта, заселение и все броски.
	Seed int64

	// Dungeon - параметры генератора комнат.
	Dungeon dungeon.Config

	// Spawn - сколько монстров и предметов кладем в комнату, стартовый набор.
	Spawn dungeon.SpawnConfig

	// Player - шаблон игрока (статы, зрение).
	Player dungeon.ActorTemplate
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:    time.Now().UnixNano(),
		Dungeon: dungeon.DefaultConfig(),
		Spawn:   dungeon.DefaultSpawnConfig(),
		Player:  dungeon.PlayerTemplate,
	}
}

// WithSeed возвращает копию конфига с заданным зерном.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	return c
}
