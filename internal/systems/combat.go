package systems

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RunCombat переводит намерения атаки в накопленный урон и снимает их.
// Урон = max(0, power - defense); нулевой урон ничего не добавляет.
func RunCombat(ctx *Context) {
	w := ctx.World

	for _, id := range w.Attacks.Entities() {
		intent := *w.Attacks.MustGet(id)
		w.Attacks.Remove(id)

		combatLogger := logger.Log.WithFields(logrus.Fields{
			"component":   "combat_system",
			"attacker_id": id,
			"target_id":   intent.Target,
		})

		attacker, ok := w.Stats.Get(id)
		if !ok {
			domain.Violation(id, "attacker has no CombatStats")
		}
		target, ok := w.Stats.Get(intent.Target)
		if !ok {
			combatLogger.Warn("Attack failed: target has no CombatStats.")
			continue
		}
		if attacker.IsDead() || target.IsDead() {
			combatLogger.Info("Attack ineffective: one of the parties is already dead.")
			continue
		}

		attackerName := w.DisplayName(id)
		targetName := w.DisplayName(intent.Target)
		damage := domain.MeleeDamage(*attacker, *target)

		combatLogger.WithFields(logrus.Fields{
			"power":   attacker.Power,
			"defense": target.Defense,
			"damage":  damage,
		}).Info("Attack resolved.")

		if damage == 0 {
			ctx.Log.Add(enums.LogKindCombat, locale.T("%s is unable to hurt %s.", attackerName, targetName))
			continue
		}

		AddDamage(w, intent.Target, damage)
		ctx.Log.Add(enums.LogKindCombat, locale.T("%s hits %s, for %d hp.", attackerName, targetName, damage))
	}
}

// AddDamage добавляет урон в очередь сущности. Урон за ход складывается.
func AddDamage(w *domain.World, id types.EntityID, amount int) {
	if amount <= 0 {
		return
	}
	if pending, ok := w.Damage.Get(id); ok {
		pending.Amounts = append(pending.Amounts, amount)
		return
	}
	w.Damage.Insert(id, domain.PendingDamage{Amounts: []int{amount}})
}
