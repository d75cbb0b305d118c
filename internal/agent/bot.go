package agent

import (
	"context"
	"errors"
	"sort"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/internal/engine"
	"github.com/Samwisebuze/rustlike/internal/systems"
	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он видит мир так же, как рендер: только через api.Frame, и отвечает
// тем же api.Input, который дала бы клавиатура.
//
// Жизненный цикл:
//  1. NewBot -> пустая память.
//  2. Decide -> по кадру строит локальную карту и выбирает ввод.
//  3. Play -> крутит движок, пока не кончатся ходы или игрок.
type Bot struct {
	// plan - начатое многошаговое действие (меню -> предмет -> цель).
	plan *plan
}

// maxStall - сколько решений подряд может не тратить ход.
const maxStall = 16

type plan struct {
	item   int
	target *api.PositionPayload
}

// Result - итог автоигры.
type Result struct {
	Turns    int
	GameOver bool
}

func NewBot() *Bot {
	return &Bot{}
}

// Play отдает движку решения бота, пока движок ждет ввода. Останавливается
// после maxTurns ходов, по смерти игрока или по отмене ctx.
func (b *Bot) Play(ctx context.Context, e *engine.Engine, maxTurns int) (Result, error) {
	if err := e.Advance(api.Input{}); err != nil {
		return Result{}, err
	}

	stalled, lastTurn := 0, e.Turn()
	for e.Turn() < maxTurns && !e.GameOver() {
		if err := ctx.Err(); err != nil {
			return Result{Turns: e.Turn()}, err
		}

		in := b.Decide(e.Snapshot())
		if e.Turn() == lastTurn {
			stalled++
		} else {
			stalled, lastTurn = 0, e.Turn()
		}
		// Решения, не тратящие ход, зациклились (меню, стена)
		if stalled > maxStall && e.State().Phase == engine.PhaseAwaitingInput {
			b.plan = nil
			in = api.Wait()
		}

		err := e.Advance(in)
		switch {
		case err == nil:
		case errors.Is(err, engine.ErrGameOver):
			return b.finish(e), nil
		case errors.Is(err, engine.ErrInputRejected):
			// План устарел: следующее решение закроет меню
			logger.Log.WithFields(logrus.Fields{
				"component": "agent",
				"turn":      e.Turn(),
			}).WithError(err).Debug("Decision rejected, dropping plan.")
			b.plan = nil
		default:
			return Result{Turns: e.Turn()}, err
		}
	}

	return b.finish(e), nil
}

func (b *Bot) finish(e *engine.Engine) Result {
	res := Result{Turns: e.Turn(), GameOver: e.GameOver()}
	logger.Log.WithFields(logrus.Fields{
		"component": "agent",
		"turns":     res.Turns,
		"game_over": res.GameOver,
	}).Info("Autoplay finished.")
	return res
}

// Decide — это мозг бота. Он принимает решение на основе полученного кадра.
func (b *Bot) Decide(frame api.Frame) api.Input {
	if frame.GameOver || frame.Player == nil {
		return api.Input{}
	}

	switch frame.State {
	case engine.PhaseShowInventory.String():
		if b.plan == nil {
			return api.Cancel()
		}
		return api.SelectItem(b.plan.item)
	case engine.PhaseShowTargeting.String():
		// Повторный запрос цели значит, что прошлая не подошла
		if b.plan == nil || b.plan.target == nil {
			b.plan = nil
			return api.Cancel()
		}
		target := *b.plan.target
		b.plan.target = nil
		return api.SelectTarget(target.X, target.Y)
	case engine.PhaseShowDropItem.String():
		return api.Cancel()
	}
	b.plan = nil

	view := newLocalView(frame)
	me := view.me

	botLogger := logger.Log.WithFields(logrus.Fields{
		"component": "agent",
		"turn":      frame.Turn,
		"pos":       me,
	})

	// --- ШАГ 1: ЛЕЧЕНИЕ ---
	stats := frame.Player.Stats
	if stats != nil && stats.HP*2 < stats.MaxHP {
		if slot, ok := findItem(frame.Inventory, func(it api.ItemView) bool { return it.Heals > 0 }); ok {
			botLogger.WithField("hp", stats.HP).Debug("Low health. Action: DRINK")
			return b.use(slot, nil)
		}
	}

	// --- ШАГ 2: БОЙ ---
	if foe, ok := view.nearestMonster(); ok {
		if me.IsAdjacent(foe) {
			botLogger.WithField("target", foe).Debug("Adjacent enemy. Action: ATTACK")
			return api.Move(foe.X-me.X, foe.Y-me.Y)
		}

		if slot, ok := findItem(frame.Inventory, func(it api.ItemView) bool {
			return it.Damage > 0 && it.Range > 0 &&
				me.DistanceSquaredTo(foe) <= it.Range*it.Range &&
				me.DistanceSquaredTo(foe) > it.Radius*it.Radius
		}); ok {
			botLogger.WithField("target", foe).Debug("Enemy in range. Action: CAST")
			return b.use(slot, &api.PositionPayload{X: foe.X, Y: foe.Y})
		}

		if step, ok := view.stepTowards(foe); ok {
			botLogger.WithField("target", foe).Debug("Enemy visible. Action: CHASE")
			return step
		}
	}

	// --- ШАГ 3: ДОБЫЧА ---
	if view.items.Has(me) {
		return api.Pickup()
	}
	for _, item := range view.sortedByDistance(view.items) {
		if step, ok := view.stepTowards(item); ok {
			return step
		}
	}

	// --- ШАГ 4: РАЗВЕДКА ---
	for _, cell := range view.sortedByDistance(view.frontier()) {
		if step, ok := view.stepTowards(cell); ok {
			return step
		}
	}

	botLogger.Debug("Nothing to do. Action: WAIT")
	return api.Wait()
}

// use открывает инвентарь и запоминает, что выбрать дальше.
func (b *Bot) use(slot int, target *api.PositionPayload) api.Input {
	b.plan = &plan{item: slot, target: target}
	return api.OpenInventory()
}

func findItem(items []api.ItemView, match func(api.ItemView) bool) (int, bool) {
	for i, it := range items {
		if match(it) {
			return i, true
		}
	}
	return 0, false
}

// localView - локальная копия мира, собранная из кадра.
// Бот считает всё, что не видел, стеной, чтобы не строить пути в неизвестность.
type localView struct {
	m        *domain.Map
	me       domain.Position
	monsters mapset.Set[domain.Position]
	items    mapset.Set[domain.Position]
}

func newLocalView(frame api.Frame) *localView {
	v := &localView{
		m:        domain.NewMap(frame.Grid.Width, frame.Grid.Height),
		me:       domain.Position{X: frame.Player.Pos.X, Y: frame.Player.Pos.Y},
		monsters: mapset.New[domain.Position](),
		items:    mapset.New[domain.Position](),
	}

	for _, tv := range frame.Map {
		if !v.m.InBounds(tv.X, tv.Y) {
			continue
		}
		v.m.Revealed[v.m.Index(tv.X, tv.Y)] = true
		if !tv.IsWall {
			v.m.SetTile(tv.X, tv.Y, domain.TileFloor)
		}
	}
	v.m.PopulateBlocked()

	for _, ev := range frame.Entities {
		p := domain.Position{X: ev.Pos.X, Y: ev.Pos.Y}
		switch ev.Type {
		case "MONSTER":
			v.monsters.Put(p)
			if v.m.InBounds(p.X, p.Y) {
				v.m.SetBlocked(p, true)
			}
		case "ITEM":
			v.items.Put(p)
		}
	}
	return v
}

func (v *localView) nearestMonster() (domain.Position, bool) {
	sorted := v.sortedByDistance(v.monsters)
	if len(sorted) == 0 {
		return domain.Position{}, false
	}
	return sorted[0], true
}

// frontier - разведанные проходимые клетки на границе с неизвестностью.
func (v *localView) frontier() mapset.Set[domain.Position] {
	out := mapset.New[domain.Position]()
	for idx, tile := range v.m.Tiles {
		if tile != domain.TileFloor {
			continue
		}
		p := v.m.PositionOf(idx)
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := p.Shift(d[0], d[1])
			if v.m.InBounds(n.X, n.Y) && !v.m.Revealed[v.m.IndexOf(n)] {
				out.Put(p)
				break
			}
		}
	}
	return out
}

// sortedByDistance раскладывает множество по удаленности от бота.
func (v *localView) sortedByDistance(set mapset.Set[domain.Position]) []domain.Position {
	out := make([]domain.Position, 0, set.Size())
	set.Each(func(p domain.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		di, dj := v.me.DistanceSquaredTo(out[i]), v.me.DistanceSquaredTo(out[j])
		if di != dj {
			return di < dj
		}
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// stepTowards - первый шаг A* к клетке goal.
func (v *localView) stepTowards(goal domain.Position) (api.Input, bool) {
	if goal == v.me {
		return api.Input{}, false
	}
	path, ok := systems.FindPath(v.m, v.me, goal)
	if !ok || len(path) < 2 {
		return api.Input{}, false
	}
	next := path[1]
	return api.Move(next.X-v.me.X, next.Y-v.me.Y), true
}
