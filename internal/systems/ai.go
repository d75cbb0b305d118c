package systems

import (
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MeleeRange - дистанция, с которой монстр бьет вместо того, чтобы идти
// (соседняя клетка, включая диагональ).
const MeleeRange = 1.5

// RunMonsterAI решает, что делает каждый монстр в этот ход:
// рядом с игроком - атака, видит игрока - шаг по A*, иначе стоит.
func RunMonsterAI(ctx *Context) {
	w, m := ctx.World, ctx.Map

	player, ok := w.Player()
	if !ok {
		return
	}
	playerPos, ok := w.Positions.Get(player)
	if !ok {
		return
	}

	for _, id := range w.Monsters.Entities() {
		pos, hasPos := w.Positions.Get(id)
		vs, hasVision := w.Viewsheds.Get(id)
		if !hasPos || !hasVision {
			continue
		}

		aiLogger := logger.Log.WithFields(logrus.Fields{
			"component":  "ai_system",
			"entity_id":  id,
			"name":       w.DisplayName(id),
			"pos":        *pos,
			"target_pos": *playerPos,
		})

		dist := pos.DistanceTo(*playerPos)
		if dist < MeleeRange {
			w.Attacks.Insert(id, domain.AttackIntent{Target: player})
			aiLogger.Debug("Target in melee range. Action: ATTACK")
			continue
		}

		if !vs.Sees(*playerPos) {
			continue
		}

		path, found := FindPath(m, *pos, *playerPos)
		if !found || len(path) < 2 {
			aiLogger.Debug("Target visible but unreachable. Action: WAIT")
			continue
		}

		step := path[1]
		if step == *playerPos || m.IsBlocked(step) {
			continue
		}

		// Держим Blocked в актуальном состоянии, чтобы следующие монстры
		// не встали на ту же клетку в этом же ходу.
		if w.Blockers.Has(id) {
			m.SetBlocked(*pos, false)
			m.SetBlocked(step, true)
		}
		*pos = step
		vs.Dirty = true

		aiLogger.WithFields(logrus.Fields{
			"step":      step,
			"path_len":  len(path),
			"target_at": dist,
		}).Debug("Path found. Action: MOVE")
	}
}
