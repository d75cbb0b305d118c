package tui

import (
	"github.com/Samwisebuze/rustlike/internal/engine"
	"github.com/Samwisebuze/rustlike/pkg/api"
)

// Action - что делать с нажатием.
type Action uint8

const (
	ActionNone   Action = iota
	ActionInput         // отдать Input движку
	ActionCursor        // сдвинуть прицел на (DX, DY)
	ActionAim           // выбрать клетку под прицелом
	ActionQuit
)

// Command - результат разбора нажатия.
type Command struct {
	Action Action
	Input  api.Input
	DX, DY int
}

// vi-клавиши, стрелки и цифровой блок
var directionKeys = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
	'4': {-1, 0}, '6': {1, 0}, '8': {0, -1}, '2': {0, 1},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
}

var arrowKeys = map[string][2]int{
	KeyUp:    {0, -1},
	KeyDown:  {0, 1},
	KeyLeft:  {-1, 0},
	KeyRight: {1, 0},
}

func direction(k Key) (dx, dy int, ok bool) {
	if d, found := arrowKeys[k.Name]; found {
		return d[0], d[1], true
	}
	if k.Name == "" {
		if d, found := directionKeys[k.Rune]; found {
			return d[0], d[1], true
		}
	}
	return 0, 0, false
}

// MapKey переводит нажатие в команду с учетом фазы движка.
func MapKey(k Key, phase engine.Phase) Command {
	switch phase {
	case engine.PhaseShowInventory, engine.PhaseShowDropItem:
		if k.Name == KeyEsc {
			return input(api.Cancel())
		}
		if k.Name == "" && k.Rune >= 'a' && k.Rune <= 'z' {
			return input(api.SelectItem(int(k.Rune - 'a')))
		}
		return Command{}

	case engine.PhaseShowTargeting:
		if k.Name == KeyEsc {
			return input(api.Cancel())
		}
		if k.Name == KeyEnter || k.Rune == 'f' {
			return Command{Action: ActionAim}
		}
		if dx, dy, ok := direction(k); ok {
			return Command{Action: ActionCursor, DX: dx, DY: dy}
		}
		return Command{}
	}

	if dx, dy, ok := direction(k); ok {
		return input(api.Move(dx, dy))
	}
	if k.Name != "" {
		return Command{}
	}

	switch k.Rune {
	case '.', '5', ' ':
		return input(api.Wait())
	case 'g', ',':
		return input(api.Pickup())
	case 'i':
		return input(api.OpenInventory())
	case 'd':
		return input(api.OpenDrop())
	case 'q':
		return Command{Action: ActionQuit}
	}
	return Command{}
}

func input(in api.Input) Command {
	return Command{Action: ActionInput, Input: in}
}
