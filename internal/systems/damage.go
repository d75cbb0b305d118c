package systems

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RunDamage применяет накопленный урон и очищает очередь.
func RunDamage(ctx *Context) {
	w := ctx.World

	for _, id := range w.Damage.Entities() {
		pending := w.Damage.MustGet(id)
		total := pending.Total()
		w.Damage.Remove(id)

		stats, ok := w.Stats.Get(id)
		if !ok {
			continue
		}
		hpBefore := stats.HP
		died := stats.ApplyDamage(total)

		logger.Log.WithFields(logrus.Fields{
			"component":   "damage_system",
			"entity_id":   id,
			"hits":        len(pending.Amounts),
			"total":       total,
			"hp_before":   hpBefore,
			"hp_after":    stats.HP,
			"target_died": died,
		}).Debug("Damage integrated.")
	}
}

// RunDeathSweep удаляет из мира всех с HP <= 0. Вещи погибшего остаются
// на его клетке. Возвращает удаленные сущности.
func RunDeathSweep(ctx *Context) []types.EntityID {
	w := ctx.World
	player, _ := w.Player()

	var dead []types.EntityID
	for _, id := range w.Stats.Entities() {
		if w.Stats.MustGet(id).IsDead() {
			dead = append(dead, id)
		}
	}

	for _, id := range dead {
		if id == player {
			ctx.Log.Add(enums.LogKindCombat, locale.T("You are dead."))
		} else {
			ctx.Log.Add(enums.LogKindCombat, locale.T("%s is dead.", w.DisplayName(id)))
		}

		dropped := dropInventory(w, id)
		logger.Log.WithFields(logrus.Fields{
			"component":     "damage_system",
			"entity_id":     id,
			"name":          w.DisplayName(id),
			"items_dropped": dropped,
		}).Info("Entity removed by death sweep.")

		w.Destroy(id)
	}
	return dead
}

// dropInventory выкладывает вещи владельца на его клетку.
// Без позиции вещи уничтожаются вместе с ним.
func dropInventory(w *domain.World, owner types.EntityID) int {
	items := w.Inventory(owner)
	pos, ok := w.Positions.Get(owner)
	for _, item := range items {
		w.Carried.Remove(item)
		if ok {
			w.Positions.Insert(item, *pos)
		} else {
			w.Destroy(item)
		}
	}
	return len(items)
}
