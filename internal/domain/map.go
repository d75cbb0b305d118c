package domain

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
)

// TileType - вид клетки.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	if t == TileFloor {
		return "floor"
	}
	return "wall"
}

// Map - сетка уровня. Tiles и Rooms неизменны после генерации,
// Revealed/Visible/Blocked и индекс содержимого пересчитываются каждый ход.
type Map struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Tiles  []TileType `json:"tiles"`
	Rooms  []Rect     `json:"rooms"`

	Revealed []bool `json:"-"`
	Visible  []bool `json:"-"`
	Blocked  []bool `json:"-"`

	// Индекс клетка -> сущности на ней.
	content [][]types.EntityID
}

// NewMap создает карту, целиком залитую стеной.
func NewMap(width, height int) *Map {
	n := width * height
	return &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Blocked:  make([]bool, n),
		content:  make([][]types.EntityID, n),
	}
}

// Index переводит координаты в индекс массива. Биекция на клетках карты.
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// IndexOf - Index для Position.
func (m *Map) IndexOf(p Position) int {
	return m.Index(p.X, p.Y)
}

// PositionOf - обратное преобразование индекса в координаты.
func (m *Map) PositionOf(idx int) Position {
	return Position{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds - лежит ли клетка внутри карты.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// TileAt возвращает тип клетки. Все, что за картой, считается стеной.
func (m *Map) TileAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.Index(x, y)]
}

// SetTile меняет тип клетки (только для генератора и тестов).
func (m *Map) SetTile(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[m.Index(x, y)] = t
	}
}

// IsOpaque - блокирует ли клетка взгляд.
func (m *Map) IsOpaque(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// IsBlocked - нельзя ли встать на клетку.
func (m *Map) IsBlocked(p Position) bool {
	if !m.InBounds(p.X, p.Y) {
		return true
	}
	return m.Blocked[m.IndexOf(p)]
}

// SetBlocked помечает клетку занятой или свободной.
func (m *Map) SetBlocked(p Position, blocked bool) {
	if m.InBounds(p.X, p.Y) {
		m.Blocked[m.IndexOf(p)] = blocked
	}
}

// PopulateBlocked сбрасывает Blocked до состояния "только стены".
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContent очищает индекс содержимого клеток.
func (m *Map) ClearContent() {
	for i := range m.content {
		m.content[i] = m.content[i][:0]
	}
}

// AddContent регистрирует сущность на клетке.
func (m *Map) AddContent(p Position, id types.EntityID) {
	if m.InBounds(p.X, p.Y) {
		idx := m.IndexOf(p)
		m.content[idx] = append(m.content[idx], id)
	}
}

// ContentAt возвращает сущности на клетке на момент последней индексации.
func (m *Map) ContentAt(p Position) []types.EntityID {
	if !m.InBounds(p.X, p.Y) {
		return nil
	}
	return m.content[m.IndexOf(p)]
}

// ClearVisible сбрасывает видимые игроком клетки.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// FloorCount - количество клеток пола.
func (m *Map) FloorCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}
