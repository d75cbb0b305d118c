package dungeon

import "github.com/Samwisebuze/rustlike/internal/domain"

// GenerateArena создает одну открытую комнату со стенами по периметру.
// Нужна для тестов и отладки ИИ без лабиринта.
func GenerateArena(width, height int) *domain.Map {
	m := domain.NewMap(width, height)
	room := domain.Rect{X: 0, Y: 0, W: width - 1, H: height - 1}
	createRoom(m, room)
	m.Rooms = []domain.Rect{room}
	m.PopulateBlocked()
	return m
}
