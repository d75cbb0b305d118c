package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/agnivade/levenshtein"
)

var (
	// ErrEmpty - пустая строка или комментарий. Не ошибка сценария.
	ErrEmpty = errors.New("empty line")

	ErrUnknownVerb = errors.New("unknown command")
	ErrAmbiguous   = errors.New("ambiguous command")
	ErrNoItem      = errors.New("no such item")
	ErrBadArgs     = errors.New("bad arguments")
)

type verbDef struct {
	canonical string
	aliases   []string
}

var verbs = []verbDef{
	{"north", []string{"n", "up"}},
	{"south", []string{"s", "down"}},
	{"east", []string{"e", "right"}},
	{"west", []string{"w", "left"}},
	{"northeast", []string{"ne"}},
	{"northwest", []string{"nw"}},
	{"southeast", []string{"se"}},
	{"southwest", []string{"sw"}},
	{"wait", []string{"rest", "skip", "z"}},
	{"pickup", []string{"get", "take", "grab", "pick"}},
	{"use", []string{"apply", "drink", "read", "quaff", "cast"}},
	{"drop", []string{"discard"}},
	{"inventory", []string{"inv", "i"}},
	{"cancel", []string{"esc", "back"}},
	{"target", []string{"aim"}},
}

var moves = map[string][2]int{
	"north":     {0, -1},
	"south":     {0, 1},
	"east":      {1, 0},
	"west":      {-1, 0},
	"northeast": {1, -1},
	"northwest": {-1, -1},
	"southeast": {1, 1},
	"southwest": {-1, 1},
}

// Parse превращает строку сценария в последовательность ввода.
// inventory - текущий инвентарь игрока (из кадра), по нему ищутся
// предметы для use и drop.
//
//	north | n | ne ...         шаг
//	wait, pickup, inventory    одиночные команды
//	use potion                 inventory + select
//	use fireball at 12 7       inventory + select + target
//	drop b                     drop + select (буква пункта меню)
//	target 12 7                выбор клетки в режиме прицеливания
func Parse(line string, inventory []api.ItemView) ([]api.Input, error) {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return nil, ErrEmpty
	}
	tokens := strings.Fields(normalise(line))
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	verb, err := matchVerb(tokens[0])
	if err != nil {
		return nil, err
	}
	args := tokens[1:]

	if d, ok := moves[verb]; ok {
		return []api.Input{api.Move(d[0], d[1])}, nil
	}

	switch verb {
	case "wait":
		return []api.Input{api.Wait()}, nil
	case "pickup":
		return []api.Input{api.Pickup()}, nil
	case "inventory":
		return []api.Input{api.OpenInventory()}, nil
	case "cancel":
		return []api.Input{api.Cancel()}, nil

	case "target":
		x, y, err := coords(args)
		if err != nil {
			return nil, err
		}
		return []api.Input{api.SelectTarget(x, y)}, nil

	case "use":
		name, at := splitAt(args)
		slot, err := resolveItem(strings.Join(name, " "), inventory)
		if err != nil {
			return nil, err
		}
		out := []api.Input{api.OpenInventory(), api.SelectItem(slot)}
		if at != nil {
			x, y, err := coords(at)
			if err != nil {
				return nil, err
			}
			out = append(out, api.SelectTarget(x, y))
		}
		return out, nil

	case "drop":
		slot, err := resolveItem(strings.Join(args, " "), inventory)
		if err != nil {
			return nil, err
		}
		return []api.Input{api.OpenDrop(), api.SelectItem(slot)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVerb, tokens[0])
}

func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
		}
		lastSpace = true
	}
	return strings.TrimSpace(b.String())
}

// matchVerb ищет команду точно, затем по расстоянию Левенштейна.
func matchVerb(token string) (string, error) {
	for _, v := range verbs {
		if token == v.canonical {
			return v.canonical, nil
		}
		for _, a := range v.aliases {
			if token == a {
				return v.canonical, nil
			}
		}
	}

	// Короткие токены не правим: "x" не должен стать "e"
	if len(token) < 3 {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerb, token)
	}

	best, bestDist, tie := "", -1, false
	for _, v := range verbs {
		for _, candidate := range append([]string{v.canonical}, v.aliases...) {
			if len(candidate) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(token, candidate)
			if dist > distanceLimit(len(candidate)) {
				continue
			}
			switch {
			case bestDist < 0 || dist < bestDist:
				best, bestDist, tie = v.canonical, dist, false
			case dist == bestDist && best != v.canonical:
				tie = true
			}
		}
	}

	if bestDist < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerb, token)
	}
	if tie {
		return "", fmt.Errorf("%w: %q", ErrAmbiguous, token)
	}
	return best, nil
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// resolveItem находит пункт меню: по букве (a = 0), по слову из
// названия или по ближайшему названию.
func resolveItem(name string, inventory []api.ItemView) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: item name expected", ErrBadArgs)
	}
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		slot := int(name[0] - 'a')
		if slot < len(inventory) {
			return slot, nil
		}
		return 0, fmt.Errorf("%w: slot %q", ErrNoItem, name)
	}

	best, bestDist := -1, 0
	for i, item := range inventory {
		full := normalise(item.Name)
		if full == name {
			return i, nil
		}

		dist := levenshtein.ComputeDistance(name, full)
		for _, word := range strings.Fields(full) {
			if word == name {
				dist = 0
				break
			}
			if d := levenshtein.ComputeDistance(name, word); d < dist {
				dist = d
			}
		}
		if dist > distanceLimit(len(name)) {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoItem, name)
	}
	return best, nil
}

// splitAt делит аргументы на имя предмета и координаты после "at".
func splitAt(args []string) (name, at []string) {
	for i, a := range args {
		if a == "at" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func coords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: want x y, got %d values", ErrBadArgs, len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x: %v", ErrBadArgs, err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y: %v", ErrBadArgs, err)
	}
	return x, y, nil
}
