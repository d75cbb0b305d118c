package api

import "github.com/Samwisebuze/rustlike/internal/core/types"

// --- ДВИЖОК -> РЕНДЕР ---

// Frame - полный "снимок" мира глазами игрока. Строится один раз за тик,
// после прохода симуляции, так что мертвые сущности в него не попадают.
type Frame struct {
	// Turn - номер хода (растет на каждом PlayerTurn).
	Turn int `json:"turn"`

	// State - фаза машины состояний (AWAITING_INPUT, SHOW_INVENTORY, ...).
	State string `json:"state"`

	// Targeting заполнен только в фазе SHOW_TARGETING.
	Targeting *TargetingView `json:"targeting,omitempty"`

	// GameOver - игрок удален из мира.
	GameOver bool `json:"gameOver"`

	Grid GridMeta `json:"grid"`

	// Map - только разведанные клетки.
	Map []TileView `json:"map"`

	// Entities - видимые игроку сущности с позицией, по возрастанию Order.
	Entities []EntityView `json:"entities"`

	// Player - сам игрок. nil после смерти.
	Player *EntityView `json:"player,omitempty"`

	// Inventory - предметы игрока в порядке пунктов меню.
	Inventory []ItemView `json:"inventory"`

	// Logs - журнал, новые записи первыми.
	Logs []LogEntry `json:"logs"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView - одна разведанная клетка.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWall bool `json:"isWall"`

	// IsVisible - клетка сейчас в поле зрения игрока. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored - клетку когда-либо видели. Без IsVisible рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView - видимая сущность.
type EntityView struct {
	ID   types.EntityID `json:"id"`
	Type string         `json:"type"` // PLAYER, MONSTER, ITEM
	Name string         `json:"name"`

	Pos PositionPayload `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
		Order  int    `json:"order"`
	} `json:"render"`

	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView - боевые характеристики.
type StatsView struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// ItemView - предмет в инвентаре.
type ItemView struct {
	ID       types.EntityID `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Heals    int            `json:"heals,omitempty"`
	Damage   int            `json:"damage,omitempty"`
	Range    int            `json:"range,omitempty"`
	Radius   int            `json:"radius,omitempty"`
}

// TargetingView - параметры выбора цели.
type TargetingView struct {
	Item  ItemView `json:"item"`
	Range int      `json:"range"`
}

// LogEntry - одна запись игрового журнала.
type LogEntry struct {
	Turn int    `json:"turn"`
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, ITEM, ERROR
}

// --- ВВОД -> ДВИЖОК ---

// InputKind - вид дискретного ввода.
type InputKind string

const (
	InputNone          InputKind = ""
	InputMove          InputKind = "MOVE"
	InputWait          InputKind = "WAIT"
	InputPickup        InputKind = "PICKUP"
	InputOpenInventory InputKind = "INVENTORY"
	InputOpenDrop      InputKind = "DROP"
	InputSelectItem    InputKind = "SELECT_ITEM"
	InputSelectTarget  InputKind = "SELECT_TARGET"
	InputCancel        InputKind = "CANCEL"
)

// Input - одно событие ввода. Заполнен только payload, нужный для Kind.
type Input struct {
	Kind InputKind `json:"kind"`

	Direction *DirectionPayload `json:"direction,omitempty"`
	Item      *ItemPayload      `json:"item,omitempty"`
	Target    *PositionPayload  `json:"target,omitempty"`
}

// --- Payloads ---

// DirectionPayload - шаг (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload - клетка на карте (цель для дальнобойных предметов).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload - пункт меню инвентаря (0 = 'a').
type ItemPayload struct {
	Index int `json:"index"`
}

// Конструкторы ввода.

func Move(dx, dy int) Input {
	return Input{Kind: InputMove, Direction: &DirectionPayload{Dx: dx, Dy: dy}}
}

func Wait() Input          { return Input{Kind: InputWait} }
func Pickup() Input        { return Input{Kind: InputPickup} }
func OpenInventory() Input { return Input{Kind: InputOpenInventory} }
func OpenDrop() Input      { return Input{Kind: InputOpenDrop} }
func Cancel() Input        { return Input{Kind: InputCancel} }

func SelectItem(index int) Input {
	return Input{Kind: InputSelectItem, Item: &ItemPayload{Index: index}}
}

func SelectTarget(x, y int) Input {
	return Input{Kind: InputSelectTarget, Target: &PositionPayload{X: x, Y: y}}
}
