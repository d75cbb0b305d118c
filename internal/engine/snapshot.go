package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/api"
)

// Snapshot создает "снимок" мира глазами игрока для рендера.
// Вызывается после прохода симуляции: мертвых в нем уже нет.
func (e *Engine) Snapshot() api.Frame {
	w, m := e.ctx.World, e.ctx.Map

	frame := api.Frame{
		Turn:      e.turn,
		State:     e.state.Phase.String(),
		GameOver:  e.GameOver(),
		Grid:      api.GridMeta{Width: m.Width, Height: m.Height},
		Map:       make([]api.TileView, 0, m.Width*m.Height/2),
		Entities:  make([]api.EntityView, 0),
		Inventory: make([]api.ItemView, 0),
	}

	// 1. Карта: только разведанные клетки
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		p := m.PositionOf(idx)
		glyph := types.GlyphFloor
		isWall := tile == domain.TileWall
		if isWall {
			glyph = types.GlyphWall
		}
		// Туман войны: запомненные клетки тусклее видимых
		if !m.Visible[idx] {
			glyph = glyph.Dim()
		}
		frame.Map = append(frame.Map, api.TileView{
			X: p.X, Y: p.Y,
			Symbol:     string(rune(glyph.Char())),
			Color:      glyph.HexColor(),
			IsWall:     isWall,
			IsVisible:  m.Visible[idx],
			IsExplored: true,
		})
	}

	// 2. Сущности: видимые игроку и имеющие Renderable
	for _, id := range w.Renderables.Entities() {
		pos, ok := w.Positions.Get(id)
		if !ok || !m.InBounds(pos.X, pos.Y) || !m.Visible[m.IndexOf(*pos)] {
			continue
		}
		frame.Entities = append(frame.Entities, e.entityView(id))
	}
	sort.SliceStable(frame.Entities, func(i, j int) bool {
		return frame.Entities[i].Render.Order < frame.Entities[j].Render.Order
	})

	// 3. Игрок и его инвентарь. Снимок читает мир без паники: при двух
	// игроках кадр выходит без игрока, а ошибку вернет следующий Tick.
	if players := w.Players.Entities(); len(players) == 1 {
		player := players[0]
		view := e.entityView(player)
		frame.Player = &view
		for _, item := range e.menu() {
			frame.Inventory = append(frame.Inventory, e.itemView(item.ID))
		}
	}

	// 4. Выбор цели
	if e.state.Phase == PhaseShowTargeting {
		frame.Targeting = &api.TargetingView{
			Item:  e.itemView(e.state.Item),
			Range: e.state.Range,
		}
	}

	// 5. Журнал, новые первыми
	entries := e.ctx.Log.Entries()
	frame.Logs = make([]api.LogEntry, 0, len(entries))
	for _, l := range entries {
		frame.Logs = append(frame.Logs, api.LogEntry{Turn: l.Turn, Text: l.Text, Type: l.Kind.String()})
	}

	return frame
}

// entityView конвертирует сущность в DTO для рендера.
func (e *Engine) entityView(id types.EntityID) api.EntityView {
	w := e.ctx.World

	view := api.EntityView{
		ID:   id,
		Type: enums.EntityType(id.Type()).String(),
		Name: w.DisplayName(id),
	}
	if pos, ok := w.Positions.Get(id); ok {
		view.Pos = api.PositionPayload{X: pos.X, Y: pos.Y}
	}

	if r, ok := w.Renderables.Get(id); ok {
		view.Render.Symbol = string(rune(r.Glyph.Char()))
		view.Render.Color = r.Glyph.HexColor()
		view.Render.Order = r.Order
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = types.GlyphUnknownThing.HexColor()
	}

	if s, ok := w.Stats.Get(id); ok {
		view.Stats = &api.StatsView{HP: s.HP, MaxHP: s.MaxHP, Defense: s.Defense, Power: s.Power}
	}
	return view
}

// itemView описывает предмет вместе с его эффектами.
func (e *Engine) itemView(id types.EntityID) api.ItemView {
	w := e.ctx.World

	view := api.ItemView{ID: id, Name: w.DisplayName(id)}
	if item, ok := w.Items.Get(id); ok {
		view.Category = item.Category.String()
	}

	caps := w.Capabilities(id)
	if caps.Healing != nil {
		view.Heals = caps.Healing.Amount
	}
	if caps.Damage != nil {
		view.Damage = caps.Damage.Amount
	}
	if caps.Ranged != nil {
		view.Range = caps.Ranged.Range
	}
	if caps.Area != nil {
		view.Radius = caps.Area.Radius
	}
	return view
}

// WriteSnapshot пишет текущий кадр в JSON (флаг -dump).
func (e *Engine) WriteSnapshot(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e.Snapshot()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}
