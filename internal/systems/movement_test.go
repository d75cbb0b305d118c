package systems

import (
	"testing"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/dungeon"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     int
		wantMoved  bool
		wantWall   bool
		wantAttack bool
		wantPos    domain.Position
	}{
		{"Move into open floor", 1, 0, true, false, false, domain.Position{X: 3, Y: 2}},
		{"Move diagonally", 1, 1, true, false, false, domain.Position{X: 3, Y: 3}},
		{"Move into wall", 0, -1, false, true, false, domain.Position{X: 2, Y: 2}},
		{"Bump into monster", -1, 1, false, false, true, domain.Position{X: 2, Y: 2}},
		{"Walk over an item", 0, 1, true, false, false, domain.Position{X: 2, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := createTestWorld(10, 10)
			// Над игроком стена, слева снизу гоблин, снизу зелье
			player := spawnPlayerAt(ctx, 2, 2)
			ctx.Map.SetTile(2, 1, domain.TileWall)
			monster := spawnGoblinAt(ctx, 1, 3)
			dungeon.SpawnItem(ctx.World, dungeon.HealthPotion, domain.Position{X: 2, Y: 3})
			refresh(ctx)

			res := MovePlayer(ctx, tt.dx, tt.dy)

			if res.HasMoved != tt.wantMoved {
				t.Errorf("HasMoved = %v, want %v", res.HasMoved, tt.wantMoved)
			}
			if res.IsWall != tt.wantWall {
				t.Errorf("IsWall = %v, want %v", res.IsWall, tt.wantWall)
			}
			if got := !res.BlockedBy.IsNil(); got != tt.wantAttack {
				t.Errorf("attack = %v, want %v", got, tt.wantAttack)
			}
			if tt.wantAttack {
				intent, ok := ctx.World.Attacks.Get(player)
				if !ok || intent.Target != monster {
					t.Errorf("expected attack intent on monster, got %+v", intent)
				}
			}
			if got := positionOf(t, ctx, player); got != tt.wantPos {
				t.Errorf("player at %v, want %v", got, tt.wantPos)
			}
			if res.SpentTurn() == tt.wantWall {
				t.Errorf("SpentTurn = %v for wall=%v", res.SpentTurn(), tt.wantWall)
			}
			if tt.wantMoved && !ctx.World.Viewsheds.MustGet(player).Dirty {
				t.Error("viewshed should be dirty after a move")
			}
		})
	}
}
