package systems

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/locale"
)

// ValidationResult — результат проверки цели
type ValidationResult struct {
	Valid   bool
	Message string // Сообщение для журнала, если Valid == false
}

// ValidateTarget проверяет, может ли actor применить предмет с дальностью
// rangeLimit к клетке target: клетка в пределах дальности и видна actor.
func ValidateTarget(ctx *Context, actor types.EntityID, target domain.Position, rangeLimit int) ValidationResult {
	w := ctx.World

	pos, ok := w.Positions.Get(actor)
	if !ok {
		return ValidationResult{Message: locale.T("Out of range.")}
	}
	if !ctx.Map.InBounds(target.X, target.Y) {
		return ValidationResult{Message: locale.T("Out of range.")}
	}

	// Евклидова дистанция, как у зрения
	if pos.DistanceSquaredTo(target) > rangeLimit*rangeLimit {
		return ValidationResult{Message: locale.T("Out of range.")}
	}

	if vs, ok := w.Viewsheds.Get(actor); ok && !vs.Sees(target) {
		return ValidationResult{Message: locale.T("You can't see that.")}
	}

	return ValidationResult{Valid: true}
}
