package systems

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MovementResult - результат попытки хода игрока
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy types.EntityID // Если врезались в кого-то (стала атакой)
	IsWall    bool           // Если врезались в стену или занятую клетку
}

// SpentTurn - потрачен ли ход. Упереться в стену ход не тратит.
func (r MovementResult) SpentTurn() bool {
	return r.HasMoved || !r.BlockedBy.IsNil()
}

// MovePlayer сдвигает игрока на (dx, dy). Если в клетке есть кто-то
// с CombatStats, вместо шага создается AttackIntent.
func MovePlayer(ctx *Context, dx, dy int) MovementResult {
	w, m := ctx.World, ctx.Map

	player, ok := w.Player()
	if !ok {
		return MovementResult{IsWall: true}
	}
	pos := w.Positions.MustGet(player)
	target := pos.Shift(dx, dy)
	res := MovementResult{NewPos: target}

	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"from":      *pos,
		"to":        target,
	})

	if !m.InBounds(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	// Сначала атака: живое существо в клетке важнее проходимости
	for _, other := range m.ContentAt(target) {
		if other == player || !w.Stats.Has(other) {
			continue
		}
		w.Attacks.Insert(player, domain.AttackIntent{Target: other})
		res.BlockedBy = other
		moveLogger.WithField("target_id", other).Debug("Bump into creature. Action: ATTACK")
		return res
	}

	if m.IsBlocked(target) {
		res.IsWall = true
		ctx.Log.Add(enums.LogKindInfo, locale.T("The way is blocked."))
		return res
	}

	*pos = target
	if vs, ok := w.Viewsheds.Get(player); ok {
		vs.Dirty = true
	}
	res.HasMoved = true
	moveLogger.Debug("Player moved.")
	return res
}
