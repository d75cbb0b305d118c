package systems

import (
	"testing"

	"github.com/Samwisebuze/rustlike/internal/domain"
)

func TestRunMonsterAI(t *testing.T) {
	tests := []struct {
		name       string
		playerPos  domain.Position
		monsterPos domain.Position
		walls      []domain.Position
		wantAttack bool
		wantMove   bool
	}{
		{
			name:       "Adjacent orthogonal: attack",
			playerPos:  domain.Position{X: 5, Y: 5},
			monsterPos: domain.Position{X: 6, Y: 5},
			wantAttack: true,
		},
		{
			name:       "Adjacent diagonal: attack",
			playerPos:  domain.Position{X: 5, Y: 5},
			monsterPos: domain.Position{X: 6, Y: 6},
			wantAttack: true,
		},
		{
			name:       "Visible at distance: step closer",
			playerPos:  domain.Position{X: 2, Y: 5},
			monsterPos: domain.Position{X: 7, Y: 5},
			wantMove:   true,
		},
		{
			name:       "Out of sight range: stay",
			playerPos:  domain.Position{X: 1, Y: 1},
			monsterPos: domain.Position{X: 18, Y: 8},
		},
		{
			name:       "Behind a wall: stay",
			playerPos:  domain.Position{X: 2, Y: 5},
			monsterPos: domain.Position{X: 8, Y: 5},
			walls: []domain.Position{
				{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4},
				{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := createTestWorld(20, 10)
			for _, w := range tt.walls {
				ctx.Map.SetTile(w.X, w.Y, domain.TileWall)
			}
			player := spawnPlayerAt(ctx, tt.playerPos.X, tt.playerPos.Y)
			monster := spawnGoblinAt(ctx, tt.monsterPos.X, tt.monsterPos.Y)
			refresh(ctx)

			before := positionOf(t, ctx, monster)
			distBefore := chebyshev(before, tt.playerPos)

			RunMonsterAI(ctx)

			intent, attacked := ctx.World.Attacks.Get(monster)
			if attacked != tt.wantAttack {
				t.Fatalf("attack intent = %v, want %v", attacked, tt.wantAttack)
			}
			if attacked && intent.Target != player {
				t.Errorf("attack target = %v, want player %v", intent.Target, player)
			}

			after := positionOf(t, ctx, monster)
			moved := after != before
			if moved != tt.wantMove {
				t.Fatalf("moved = %v (%v -> %v), want %v", moved, before, after, tt.wantMove)
			}
			if moved {
				if got := chebyshev(after, tt.playerPos); got != distBefore-1 {
					t.Errorf("distance after step = %d, want %d", got, distBefore-1)
				}
				if !ctx.World.Viewsheds.MustGet(monster).Dirty {
					t.Error("viewshed should be dirty after moving")
				}
				if !ctx.Map.IsBlocked(after) || ctx.Map.IsBlocked(before) {
					t.Error("blocked map should follow the monster within the turn")
				}
			}
		})
	}
}

func TestRunMonsterAI_EnclosedPlayer(t *testing.T) {
	ctx := createTestWorld(20, 10)
	spawnPlayerAt(ctx, 10, 5)
	monster := spawnGoblinAt(ctx, 4, 5)

	// Кольцо блокирующих монстров вокруг игрока
	for _, p := range []domain.Position{
		{X: 9, Y: 4}, {X: 10, Y: 4}, {X: 11, Y: 4},
		{X: 9, Y: 5}, {X: 11, Y: 5},
		{X: 9, Y: 6}, {X: 10, Y: 6}, {X: 11, Y: 6},
	} {
		spawnGoblinAt(ctx, p.X, p.Y)
	}
	refresh(ctx)

	// Кольцо само бьет игрока, а дальний монстр пути не имеет
	RunMonsterAI(ctx)

	if got := positionOf(t, ctx, monster); got != (domain.Position{X: 4, Y: 5}) {
		t.Errorf("monster without a path moved to %v", got)
	}
	if ctx.World.Attacks.Has(monster) {
		t.Error("distant monster must not attack")
	}
	if got := ctx.World.Attacks.Len(); got != 8 {
		t.Errorf("attack intents = %d, want 8 from the ring", got)
	}
}

func TestRunMonsterAI_NoPlayer(t *testing.T) {
	ctx := createTestWorld(20, 10)
	monster := spawnGoblinAt(ctx, 4, 5)
	refresh(ctx)

	RunMonsterAI(ctx)

	if ctx.World.Attacks.Has(monster) {
		t.Error("no player, no attack")
	}
}

func TestScenarioB_MonsterSpotsAndApproaches(t *testing.T) {
	ctx := createTestWorld(20, 10)
	spawnPlayerAt(ctx, 3, 4)
	monster := spawnGoblinAt(ctx, 8, 4)
	refresh(ctx)

	playerPos := domain.Position{X: 3, Y: 4}
	if !ctx.World.Viewsheds.MustGet(monster).Sees(playerPos) {
		t.Fatal("monster with range 8 should see the player 5 tiles away")
	}

	RunMonsterAI(ctx)

	after := positionOf(t, ctx, monster)
	if after.DistanceTo(playerPos) >= 5 {
		t.Errorf("monster at %v did not step toward the player", after)
	}
	if chebyshev(after, playerPos) != 4 {
		t.Errorf("monster should be exactly one step closer, got %v", after)
	}
}
