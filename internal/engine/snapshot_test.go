package engine

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/Samwisebuze/rustlike/internal/core/types"
	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/Samwisebuze/rustlike/pkg/dungeon"
)

func TestSnapshot(t *testing.T) {
	e, _ := newArenaEngine(t, func(w *domain.World, player types.EntityID) {
		dungeon.GiveItem(w, dungeon.HealthPotion, player)
		dungeon.GiveItem(w, dungeon.FireballScroll, player)
		dungeon.SpawnItem(w, dungeon.MagicMissileScroll, domain.Position{X: 7, Y: 6})
		// Дальше радиуса зрения
		dungeon.SpawnMonster(w, dungeon.Orc, "Orc", domain.Position{X: 17, Y: 10})
	})

	frame := e.Snapshot()

	if frame.State != "AWAITING_INPUT" || frame.GameOver {
		t.Errorf("state = %s gameOver = %v", frame.State, frame.GameOver)
	}
	if frame.Grid.Width != 20 || frame.Grid.Height != 12 {
		t.Errorf("grid = %+v", frame.Grid)
	}
	if frame.Targeting != nil {
		t.Error("targeting view outside SHOW_TARGETING")
	}

	if frame.Player == nil || frame.Player.Stats == nil {
		t.Fatal("player view without stats")
	}
	if frame.Player.Stats.HP != 30 || frame.Player.Pos != (api.PositionPayload{X: 5, Y: 5}) {
		t.Errorf("player view = %+v", frame.Player)
	}

	// Игрок и свиток на полу. Орк не виден, предметы в инвентаре без позиции.
	if len(frame.Entities) != 2 {
		t.Fatalf("entities = %d, want 2: %+v", len(frame.Entities), frame.Entities)
	}
	for i := 1; i < len(frame.Entities); i++ {
		if frame.Entities[i-1].Render.Order > frame.Entities[i].Render.Order {
			t.Error("entities must be sorted by render order")
		}
	}
	if frame.Entities[0].Type != "PLAYER" {
		t.Errorf("first entity = %s, want PLAYER", frame.Entities[0].Type)
	}

	if len(frame.Inventory) != 2 {
		t.Fatalf("inventory = %d, want 2", len(frame.Inventory))
	}
	if frame.Inventory[0].Heals != 8 {
		t.Errorf("potion view = %+v", frame.Inventory[0])
	}
	if fb := frame.Inventory[1]; fb.Damage != 20 || fb.Range != 6 || fb.Radius != 3 {
		t.Errorf("fireball view = %+v", fb)
	}

	var playerTile *api.TileView
	for i := range frame.Map {
		tile := &frame.Map[i]
		if !tile.IsExplored {
			t.Fatal("snapshot must contain revealed tiles only")
		}
		if tile.X == 5 && tile.Y == 5 {
			playerTile = tile
		}
	}
	if playerTile == nil || !playerTile.IsVisible || playerTile.IsWall {
		t.Errorf("player tile = %+v", playerTile)
	}

	if len(frame.Logs) == 0 || frame.Logs[0].Type != "INFO" {
		t.Errorf("logs = %+v", frame.Logs)
	}
}

func TestSnapshot_Targeting(t *testing.T) {
	e, _ := newArenaEngine(t, func(w *domain.World, player types.EntityID) {
		dungeon.GiveItem(w, dungeon.FireballScroll, player)
	})

	mustAdvance(t, e, api.OpenInventory())
	mustAdvance(t, e, api.SelectItem(0))

	frame := e.Snapshot()
	if frame.State != "SHOW_TARGETING" {
		t.Fatalf("state = %s", frame.State)
	}
	if frame.Targeting == nil || frame.Targeting.Range != 6 || frame.Targeting.Item.Radius != 3 {
		t.Errorf("targeting = %+v", frame.Targeting)
	}
}

func TestWriteSnapshot(t *testing.T) {
	e, player := newArenaEngine(t, func(w *domain.World, player types.EntityID) {
		dungeon.GiveItem(w, dungeon.HealthPotion, player)
	})

	var buf bytes.Buffer
	if err := e.WriteSnapshot(&buf); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	// Идентификаторы уходят строками
	if want := `"id": "` + strconv.FormatUint(uint64(player), 10) + `"`; !strings.Contains(buf.String(), want) {
		t.Errorf("dump misses %s", want)
	}

	var frame api.Frame
	if err := json.Unmarshal(buf.Bytes(), &frame); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	if frame.Player == nil || frame.Player.ID != player {
		t.Errorf("player id = %+v, want %v", frame.Player, player)
	}
	if len(frame.Inventory) != 1 || frame.Inventory[0].Heals != 8 {
		t.Errorf("inventory = %+v", frame.Inventory)
	}
}

func TestSnapshot_FogOfWar(t *testing.T) {
	e, _ := newArenaEngine(t, nil)
	far := domain.Position{X: 18, Y: 10}
	e.Map().Revealed[e.Map().IndexOf(far)] = true

	var remembered, seen *api.TileView
	frame := e.Snapshot()
	for i := range frame.Map {
		switch tile := &frame.Map[i]; {
		case tile.X == far.X && tile.Y == far.Y:
			remembered = tile
		case tile.X == 6 && tile.Y == 5:
			seen = tile
		}
	}
	if remembered == nil || seen == nil {
		t.Fatal("revealed tiles missing from the frame")
	}

	if remembered.IsVisible || remembered.Color != types.GlyphFloor.Dim().HexColor() {
		t.Errorf("remembered tile = %+v, want dimmed floor", remembered)
	}
	if !seen.IsVisible || seen.Color != types.GlyphFloor.HexColor() {
		t.Errorf("visible tile = %+v, want bright floor", seen)
	}
}
