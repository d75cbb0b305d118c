package systems

import (
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RunIndexing перестраивает Map.Blocked (стены + позиции BlocksTile)
// и индекс содержимого клеток.
func RunIndexing(ctx *Context) {
	w, m := ctx.World, ctx.Map

	m.PopulateBlocked()
	m.ClearContent()

	indexed := 0
	for _, id := range w.Positions.Entities() {
		pos := w.Positions.MustGet(id)
		if !m.InBounds(pos.X, pos.Y) {
			logger.Log.WithFields(logrus.Fields{
				"component": "spatial_index",
				"entity_id": id,
				"pos":       *pos,
			}).Warn("Entity is out of map bounds, not indexed.")
			continue
		}
		if w.Blockers.Has(id) {
			m.SetBlocked(*pos, true)
		}
		m.AddContent(*pos, id)
		indexed++
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "spatial_index",
		"entities":  indexed,
	}).Debug("Spatial index rebuilt.")
}
