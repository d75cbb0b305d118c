package engine

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/domain"
)

// Phase - фаза машины состояний хода.
type Phase uint8

const (
	PhasePreRun Phase = iota
	PhaseAwaitingInput
	PhasePlayerTurn
	PhaseMonsterTurn
	PhaseShowInventory
	PhaseShowDropItem
	PhaseShowTargeting
)

var phaseToString = map[Phase]string{
	PhasePreRun:        "PRE_RUN",
	PhaseAwaitingInput: "AWAITING_INPUT",
	PhasePlayerTurn:    "PLAYER_TURN",
	PhaseMonsterTurn:   "MONSTER_TURN",
	PhaseShowInventory: "SHOW_INVENTORY",
	PhaseShowDropItem:  "SHOW_DROP_ITEM",
	PhaseShowTargeting: "SHOW_TARGETING",
}

func (p Phase) String() string {
	if val, ok := phaseToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsModal - меню и выбор цели: симуляция не идет, ждем ввод.
func (p Phase) IsModal() bool {
	return p == PhaseShowInventory || p == PhaseShowDropItem || p == PhaseShowTargeting
}

// RunState - текущая фаза с данными. Item и Range заполнены только
// в PhaseShowTargeting.
type RunState struct {
	Phase Phase
	Item  types.EntityID
	Range int
}

// IntentKind - что контроллер просит сделать за игрока.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentWait
	IntentPickup
	IntentUse
	IntentDrop
)

// Intent - результат перехода, который движок исполняет над миром.
type Intent struct {
	Kind   IntentKind
	DX, DY int
	Item   types.EntityID
	Target *domain.Position
	Range  int
}

// MenuItem - пункт меню инвентаря, все, что нужно переходу.
type MenuItem struct {
	ID     types.EntityID
	Ranged bool
	Range  int
}
