package systems

import (
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// RunVisibility пересчитывает грязные поля зрения.
// Результат игрока попадает в Map.Revealed и заменяет Map.Visible.
func RunVisibility(ctx *Context) {
	w, m := ctx.World, ctx.Map
	player, hasPlayer := w.Player()

	for _, id := range w.Viewsheds.Entities() {
		vs := w.Viewsheds.MustGet(id)
		if !vs.Dirty {
			continue
		}
		pos, ok := w.Positions.Get(id)
		if !ok {
			// Без позиции смотреть неоткуда (например, сущность в инвентаре)
			continue
		}

		vs.Visible = ComputeFOV(m, *pos, vs.Range)
		vs.Dirty = false

		if hasPlayer && id == player {
			m.ClearVisible()
			vs.Visible.Each(func(p domain.Position) {
				idx := m.IndexOf(p)
				m.Visible[idx] = true
				m.Revealed[idx] = true
			})
		}
	}
}

// ComputeFOV возвращает клетки, видимые из origin в пределах radius
// (рекурсивный shadowcasting). Стены видны, но закрывают то, что за ними.
func ComputeFOV(m *domain.Map, origin domain.Position, radius int) mapset.Set[domain.Position] {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := mapset.New[domain.Position]()
	if !m.InBounds(origin.X, origin.Y) {
		fovLogger.Warn("FOV calculation skipped: observer is out of bounds.")
		return visible
	}

	// Центр всегда виден, даже слепому
	visible.Put(origin)
	if radius <= 0 {
		return visible
	}

	for i := 0; i < 8; i++ {
		castLight(m, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", visible.Size()).Debug("FOV calculation complete.")
	return visible
}

func castLight(m *domain.Map, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[domain.Position]) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Наклоны левой и правой границы клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if m.InBounds(X, Y) && dx*dx+dy*dy <= radiusSq {
				visible.Put(domain.Position{X: X, Y: Y})
			}

			if blocked {
				if m.IsOpaque(X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.IsOpaque(X, Y) && j < radius {
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
