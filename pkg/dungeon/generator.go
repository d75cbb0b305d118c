package dungeon

import (
	"math/rand"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/Samwisebuze/rustlike/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Константы генерации по умолчанию
const (
	MapWidth  = 80
	MapHeight = 43
	MaxRooms  = 30
	MinSize   = 6
	MaxSize   = 10
)

// Config - параметры генератора комнат и коридоров.
type Config struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	MaxRooms int `json:"maxRooms"`
	MinSize  int `json:"minSize"`
	MaxSize  int `json:"maxSize"`

	// Attempts - сколько кандидатов пробуем разместить. Неудачные не повторяются.
	Attempts int `json:"attempts"`
}

// DefaultConfig возвращает параметры классического уровня 80x43.
func DefaultConfig() Config {
	return Config{
		Width:    MapWidth,
		Height:   MapHeight,
		MaxRooms: MaxRooms,
		MinSize:  MinSize,
		MaxSize:  MaxSize,
		Attempts: MaxRooms,
	}
}

// normalize чинит заведомо бессмысленные значения.
func (c Config) normalize() Config {
	if c.MinSize < 2 {
		c.MinSize = 2
	}
	if c.MaxSize < c.MinSize {
		c.MaxSize = c.MinSize
	}
	if c.Attempts <= 0 {
		c.Attempts = c.MaxRooms
	}
	return c
}

// Generate строит карту из комнат, соединенных L-образными коридорами.
// Каждая новая комната соединяется с предыдущей, поэтому все комнаты
// достижимы из комнаты 0.
func Generate(cfg Config, rng *rand.Rand) *domain.Map {
	cfg = cfg.normalize()
	m := domain.NewMap(cfg.Width, cfg.Height)

	genLogger := logger.Log.WithFields(logrus.Fields{
		"component": "map_generator",
		"width":     cfg.Width,
		"height":    cfg.Height,
	})

	for i := 0; i < cfg.Attempts && len(m.Rooms) < cfg.MaxRooms; i++ {
		w := utils.RandRange(rng, cfg.MinSize, cfg.MaxSize)
		h := utils.RandRange(rng, cfg.MinSize, cfg.MaxSize)

		// Отступ в одну клетку от края карты
		maxX := cfg.Width - w - 1
		maxY := cfg.Height - h - 1
		if maxX < 1 || maxY < 1 {
			continue
		}

		newRoom := domain.Rect{
			X: utils.RandRange(rng, 1, maxX),
			Y: utils.RandRange(rng, 1, maxY),
			W: w,
			H: h,
		}

		failed := false
		for _, other := range m.Rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(m, newRoom)

		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1].Center()
			curr := newRoom.Center()

			if utils.Chance(rng, 50) {
				createHCorridor(m, prev.X, curr.X, prev.Y)
				createVCorridor(m, prev.Y, curr.Y, curr.X)
			} else {
				createVCorridor(m, prev.Y, curr.Y, prev.X)
				createHCorridor(m, prev.X, curr.X, curr.Y)
			}
		}
		m.Rooms = append(m.Rooms, newRoom)
	}

	// Неудачные кандидаты просто отбрасываются: на слишком маленькой
	// сетке комнат может не быть вовсе, это решает вызывающий
	if len(m.Rooms) == 0 {
		genLogger.Warn("No room fitted the attempt budget.")
	}

	m.PopulateBlocked()

	genLogger.WithField("rooms", len(m.Rooms)).Debug("Map generated.")
	return m
}

// --- Вспомогательные функции ---

func createRoom(m *domain.Map, room domain.Rect) {
	for y := room.Y + 1; y < room.Y2(); y++ {
		for x := room.X + 1; x < room.X2(); x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
}

func createHCorridor(m *domain.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, domain.TileFloor)
	}
}

func createVCorridor(m *domain.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, domain.TileFloor)
	}
}
