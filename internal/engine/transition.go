package engine

import (
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/api"
)

// Next - чистая функция перехода: (состояние, ввод) -> (состояние, намерение).
// menu - инвентарь игрока в порядке пунктов меню. Мир не меняется.
// accepted == false: фаза такой ввод не принимает, состояние прежнее.
//
// Фазы симуляции (PreRun, PlayerTurn, MonsterTurn) ввод не принимают.
func Next(s RunState, in api.Input, menu []MenuItem) (next RunState, intent Intent, accepted bool) {
	switch s.Phase {
	case PhaseAwaitingInput:
		return nextAwaiting(s, in)
	case PhaseShowInventory:
		return nextInventory(s, in, menu)
	case PhaseShowDropItem:
		return nextDrop(s, in, menu)
	case PhaseShowTargeting:
		return nextTargeting(s, in)
	default:
		return s, Intent{}, false
	}
}

func nextAwaiting(s RunState, in api.Input) (RunState, Intent, bool) {
	playerTurn := RunState{Phase: PhasePlayerTurn}

	switch in.Kind {
	case api.InputMove:
		if in.Direction == nil {
			return s, Intent{}, false
		}
		return playerTurn, Intent{Kind: IntentMove, DX: in.Direction.Dx, DY: in.Direction.Dy}, true
	case api.InputWait:
		return playerTurn, Intent{Kind: IntentWait}, true
	case api.InputPickup:
		return playerTurn, Intent{Kind: IntentPickup}, true
	case api.InputOpenInventory:
		return RunState{Phase: PhaseShowInventory}, Intent{}, true
	case api.InputOpenDrop:
		return RunState{Phase: PhaseShowDropItem}, Intent{}, true
	default:
		return s, Intent{}, false
	}
}

func nextInventory(s RunState, in api.Input, menu []MenuItem) (RunState, Intent, bool) {
	switch in.Kind {
	case api.InputCancel:
		return RunState{Phase: PhaseAwaitingInput}, Intent{}, true
	case api.InputSelectItem:
		item, ok := pick(menu, in.Item)
		if !ok {
			return s, Intent{}, false
		}
		// Дальнобойному предмету нужна клетка-цель
		if item.Ranged {
			return RunState{Phase: PhaseShowTargeting, Item: item.ID, Range: item.Range}, Intent{}, true
		}
		return RunState{Phase: PhasePlayerTurn}, Intent{Kind: IntentUse, Item: item.ID}, true
	default:
		return s, Intent{}, false
	}
}

func nextDrop(s RunState, in api.Input, menu []MenuItem) (RunState, Intent, bool) {
	switch in.Kind {
	case api.InputCancel:
		return RunState{Phase: PhaseAwaitingInput}, Intent{}, true
	case api.InputSelectItem:
		item, ok := pick(menu, in.Item)
		if !ok {
			return s, Intent{}, false
		}
		return RunState{Phase: PhasePlayerTurn}, Intent{Kind: IntentDrop, Item: item.ID}, true
	default:
		return s, Intent{}, false
	}
}

func nextTargeting(s RunState, in api.Input) (RunState, Intent, bool) {
	switch in.Kind {
	case api.InputCancel:
		return RunState{Phase: PhaseAwaitingInput}, Intent{}, true
	case api.InputSelectTarget:
		if in.Target == nil {
			return s, Intent{}, false
		}
		target := domain.Position{X: in.Target.X, Y: in.Target.Y}
		return RunState{Phase: PhasePlayerTurn}, Intent{Kind: IntentUse, Item: s.Item, Target: &target, Range: s.Range}, true
	default:
		return s, Intent{}, false
	}
}

func pick(menu []MenuItem, p *api.ItemPayload) (MenuItem, bool) {
	if p == nil || p.Index < 0 || p.Index >= len(menu) {
		return MenuItem{}, false
	}
	return menu[p.Index], true
}
