package systems

import (
	"github.com/Samwisebuze/rustlike/internal/domain"
)

// Context - ресурсы, которыми владеет контроллер хода на время прохода
// симуляции. Передается в каждую стадию явно.
type Context struct {
	World *domain.World
	Map   *domain.Map
	Log   *domain.GameLog
}

// NewContext собирает контекст. Журнал можно не передавать.
func NewContext(w *domain.World, m *domain.Map, log *domain.GameLog) *Context {
	if log == nil {
		log = domain.NewGameLog()
	}
	return &Context{World: w, Map: m, Log: log}
}
