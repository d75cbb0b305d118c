package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/internal/systems"
	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/Samwisebuze/rustlike/pkg/dungeon"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrGameOver - игрок удален из мира, ходить больше некому.
var ErrGameOver = errors.New("game over: player entity is absent")

// ErrInputRejected - ввод не прошел валидацию или не принимается текущей
// фазой. Мир и фаза не изменились.
var ErrInputRejected = errors.New("input rejected")

// maxAutoTicks - предохранитель для Advance (фаз без ввода всего две подряд).
const maxAutoTicks = 8

// Engine - контроллер хода. Владеет миром, картой и фазой.
// Не потокобезопасен: все вызовы из одной горутины.
type Engine struct {
	cfg   Config
	ctx   *systems.Context
	state RunState
	turn  int
}

// New генерирует уровень по конфигу и возвращает движок в фазе PreRun.
func New(cfg Config) (*Engine, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	world := domain.NewWorld()

	level, err := dungeon.NewLevel(world, rng).
		WithConfig(cfg.Dungeon).
		WithRooms().
		SpawnPlayer(cfg.Player, cfg.Spawn.StartingKit...).
		PopulateRooms(cfg.Spawn).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build level (seed %d): %w", cfg.Seed, err)
	}

	e := NewFromWorld(world, level.Map)
	e.cfg = cfg
	return e, nil
}

// NewFromWorld оборачивает уже заселенный мир (тесты, сценарии).
func NewFromWorld(world *domain.World, m *domain.Map) *Engine {
	log := domain.NewGameLog(locale.T("Welcome to Rustlike!"))
	return &Engine{
		ctx:   systems.NewContext(world, m, log),
		state: RunState{Phase: PhasePreRun},
	}
}

// --- Accessors ---

func (e *Engine) State() RunState           { return e.state }
func (e *Engine) Turn() int                 { return e.turn }
func (e *Engine) Seed() int64               { return e.cfg.Seed }
func (e *Engine) World() *domain.World      { return e.ctx.World }
func (e *Engine) Map() *domain.Map          { return e.ctx.Map }
func (e *Engine) Log() *domain.GameLog      { return e.ctx.Log }
func (e *Engine) Context() *systems.Context { return e.ctx }

// GameOver - игрока больше нет в мире. Не паникует: лишний игрок
// всплывет как нарушение инварианта в ближайшем Tick.
func (e *Engine) GameOver() bool {
	return e.ctx.World.Players.Len() == 0
}

// NeedsInput - движок стоит и ждет ввода.
func (e *Engine) NeedsInput() bool {
	return !e.GameOver() && (e.state.Phase == PhaseAwaitingInput || e.state.Phase.IsModal())
}

// Tick делает один шаг машины состояний. В фазах симуляции ввод
// игнорируется и выполняется проход. Нарушение инварианта прерывает
// ход и возвращается как ошибка с *domain.InvariantError внутри.
func (e *Engine) Tick(in api.Input) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*domain.InvariantError)
			if !ok {
				panic(r)
			}
			logger.Log.WithFields(logrus.Fields{
				"component": "turn_controller",
				"turn":      e.turn,
				"phase":     e.state.Phase.String(),
				"entity_id": ie.Entity,
			}).Error(ie.Error())
			err = fmt.Errorf("turn %d aborted: %w", e.turn, ie)
		}
	}()

	if e.GameOver() {
		return ErrGameOver
	}

	switch e.state.Phase {
	case PhasePreRun:
		e.runPass(true)
		e.setState(RunState{Phase: PhaseAwaitingInput})
	case PhasePlayerTurn:
		e.runPass(false)
		e.setState(RunState{Phase: PhaseMonsterTurn})
	case PhaseMonsterTurn:
		e.runPass(true)
		e.setState(RunState{Phase: PhaseAwaitingInput})
	default:
		if in.Kind == api.InputNone {
			return nil
		}
		if err := in.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInputRejected, err)
		}
		next, intent, accepted := Next(e.state, in, e.menu())
		if !accepted {
			return fmt.Errorf("%w: %s not accepted in %s", ErrInputRejected, in.Kind, e.state.Phase)
		}
		e.setState(e.apply(next, intent))
	}
	return nil
}

// Advance подает ввод и крутит фазы симуляции, пока движку снова не
// понадобится ввод или игра не закончится.
func (e *Engine) Advance(in api.Input) error {
	if err := e.Tick(in); err != nil {
		return err
	}
	for i := 0; i < maxAutoTicks && !e.NeedsInput() && !e.GameOver(); i++ {
		if err := e.Tick(api.Input{}); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) setState(s RunState) {
	if s.Phase != e.state.Phase {
		logger.Log.WithFields(logrus.Fields{
			"component": "turn_controller",
			"turn":      e.turn,
			"from":      e.state.Phase.String(),
			"to":        s.Phase.String(),
		}).Debug("Phase changed.")
	}
	e.state = s
}

// menu - инвентарь игрока для перехода.
func (e *Engine) menu() []MenuItem {
	w := e.ctx.World
	player, ok := w.Player()
	if !ok {
		return nil
	}
	items := w.Inventory(player)
	menu := make([]MenuItem, 0, len(items))
	for _, id := range items {
		item := MenuItem{ID: id}
		if r, ok := w.Ranged.Get(id); ok {
			item.Ranged = true
			item.Range = r.Range
		}
		menu = append(menu, item)
	}
	return menu
}

// apply исполняет намерение игрока. Если действие не тратит ход
// (стена, пустой пол, неверная цель), возвращает состояние без хода.
func (e *Engine) apply(next RunState, intent Intent) RunState {
	w := e.ctx.World
	player, _ := w.Player()

	switch intent.Kind {
	case IntentNone:
		return next

	case IntentMove:
		res := systems.MovePlayer(e.ctx, intent.DX, intent.DY)
		if !res.SpentTurn() {
			return RunState{Phase: PhaseAwaitingInput}
		}

	case IntentWait:
		// Ход просто пропускается

	case IntentPickup:
		pos := w.Positions.MustGet(player)
		items := w.ItemsAt(*pos)
		if len(items) == 0 {
			e.ctx.Log.Add(enums.LogKindInfo, locale.T("There is nothing here to pick up."))
			return RunState{Phase: PhaseAwaitingInput}
		}
		w.Pickups.Insert(player, domain.PickupIntent{Item: items[0], Collector: player})

	case IntentUse:
		if intent.Target != nil {
			res := systems.ValidateTarget(e.ctx, player, *intent.Target, intent.Range)
			if !res.Valid {
				e.ctx.Log.Add(enums.LogKindError, res.Message)
				return e.state
			}
		}
		w.Uses.Insert(player, domain.UseIntent{Item: intent.Item, Target: intent.Target})

	case IntentDrop:
		w.Drops.Insert(player, domain.DropIntent{Item: intent.Item})
	}

	e.turn++
	e.ctx.Log.SetTurn(e.turn)
	return next
}

// runPass - один проход симуляции в фиксированном порядке. Зачистка
// мертвых всегда перед следующим снимком.
func (e *Engine) runPass(withAI bool) {
	ctx := e.ctx

	systems.RunVisibility(ctx)
	systems.RunIndexing(ctx)
	if withAI {
		systems.RunMonsterAI(ctx)
	}
	systems.RunCombat(ctx)
	systems.RunDamage(ctx)
	systems.RunItems(ctx)
	systems.RunDamage(ctx)
	dead := systems.RunDeathSweep(ctx)
	systems.RunIndexing(ctx)

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_controller",
		"turn":      e.turn,
		"phase":     e.state.Phase.String(),
		"with_ai":   withAI,
		"dead":      len(dead),
		"entities":  ctx.World.Count(),
	}).Debug("Simulation pass complete.")
}
