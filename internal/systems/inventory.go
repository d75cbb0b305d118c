package systems

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// RunItems обрабатывает три очереди намерений по порядку: подбор,
// выброс, использование. Каждая очередь очищается полностью.
func RunItems(ctx *Context) {
	RunPickup(ctx)
	RunDrop(ctx)
	RunUse(ctx)
}

// --- PICKUP ---

// RunPickup переводит предметы с пола в инвентарь.
func RunPickup(ctx *Context) {
	w := ctx.World
	player, _ := w.Player()

	for _, id := range w.Pickups.Entities() {
		intent := *w.Pickups.MustGet(id)
		w.Pickups.Remove(id)

		invLogger := logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"action":    "pickup",
			"actor_id":  intent.Collector,
			"item_id":   intent.Item,
		})

		if !w.Items.Has(intent.Item) {
			invLogger.Warn("Pickup skipped: target is not an item.")
			continue
		}
		if w.Carried.Has(intent.Item) {
			invLogger.Warn("Pickup skipped: item is already carried.")
			continue
		}

		w.Positions.Remove(intent.Item)
		w.Carried.Insert(intent.Item, domain.CarriedBy{Owner: intent.Collector})
		invLogger.Info("Item picked up.")

		if intent.Collector == player {
			ctx.Log.Add(enums.LogKindItem, locale.T("You pick up the %s.", w.DisplayName(intent.Item)))
		}
	}
}

// --- DROP ---

// RunDrop кладет предметы на клетку владельца.
func RunDrop(ctx *Context) {
	w := ctx.World
	player, _ := w.Player()

	for _, id := range w.Drops.Entities() {
		intent := *w.Drops.MustGet(id)
		w.Drops.Remove(id)

		invLogger := logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"action":    "drop",
			"actor_id":  id,
			"item_id":   intent.Item,
		})

		carried, ok := w.Carried.Get(intent.Item)
		if !ok || carried.Owner != id {
			invLogger.Warn("Drop skipped: item is not in actor's inventory.")
			continue
		}
		pos, ok := w.Positions.Get(id)
		if !ok {
			invLogger.Warn("Drop skipped: actor has no position.")
			continue
		}

		w.Carried.Remove(intent.Item)
		w.Positions.Insert(intent.Item, *pos)
		invLogger.WithField("pos", *pos).Info("Item dropped.")

		if id == player {
			ctx.Log.Add(enums.LogKindItem, locale.T("You drop the %s.", w.DisplayName(intent.Item)))
		}
	}
}

// --- USE ---

// RunUse применяет все эффекты предмета независимо друг от друга.
// Расходуемый предмет уничтожается, даже если ни один эффект не сработал.
func RunUse(ctx *Context) {
	w := ctx.World

	for _, id := range w.Uses.Entities() {
		intent := *w.Uses.MustGet(id)
		w.Uses.Remove(id)

		useLogger := logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"action":    "use",
			"actor_id":  id,
			"item_id":   intent.Item,
		})

		carried, ok := w.Carried.Get(intent.Item)
		if !ok || carried.Owner != id {
			useLogger.Warn("Use skipped: item is not in actor's inventory.")
			continue
		}

		caps := w.Capabilities(intent.Item)
		fired := caps.HasEffect() && applyEffects(ctx, id, intent, caps, useLogger)

		if !fired {
			ctx.Log.Add(enums.LogKindInfo, locale.T("Nothing happens."))
		}

		if caps.Consumable {
			w.Destroy(intent.Item)
			useLogger.Debug("Consumable destroyed.")
		}
	}
}

// applyEffects применяет лечение и урон. false - ни один эффект не сработал
// (некого лечить, пустая клетка, нет цели).
func applyEffects(ctx *Context, id types.EntityID, intent domain.UseIntent, caps domain.ItemCapabilities, useLogger *logrus.Entry) bool {
	w := ctx.World
	itemName := w.DisplayName(intent.Item)
	fired := false

	if caps.Healing != nil {
		if stats, ok := w.Stats.Get(id); ok {
			healed := stats.Heal(caps.Healing.Amount)
			fired = true
			useLogger.WithFields(logrus.Fields{
				"heal":   caps.Healing.Amount,
				"healed": healed,
				"hp":     stats.HP,
			}).Info("Healing applied.")
			ctx.Log.Add(enums.LogKindItem, locale.T("You drink the %s, healing %d hp.", itemName, caps.Healing.Amount))
		}
	}

	if caps.Damage != nil {
		if intent.Target == nil {
			useLogger.Warn("Damage effect skipped: no target cell.")
		} else {
			for _, victim := range victimsAt(ctx, *intent.Target, caps.Area) {
				AddDamage(w, victim, caps.Damage.Amount)
				fired = true
				ctx.Log.Add(enums.LogKindCombat, locale.T("You use %s on %s, inflicting %d hp.",
					itemName, w.DisplayName(victim), caps.Damage.Amount))
			}
		}
	}
	return fired
}

// victimsAt собирает сущности с CombatStats в целевой клетке, а при
// area != nil - во всех клетках взрыва (поле зрения из центра в пределах радиуса).
func victimsAt(ctx *Context, target domain.Position, area *domain.AreaOfEffect) []types.EntityID {
	m, w := ctx.Map, ctx.World

	tiles := mapset.New[domain.Position]()
	if area != nil {
		tiles = ComputeFOV(m, target, area.Radius)
	} else if m.InBounds(target.X, target.Y) {
		tiles.Put(target)
	}

	var victims []types.EntityID
	tiles.Each(func(p domain.Position) {
		for _, id := range m.ContentAt(p) {
			if w.Stats.Has(id) {
				victims = append(victims, id)
			}
		}
	})
	return victims
}
