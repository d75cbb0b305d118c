package systems

import (
	"testing"

	"github.com/Samwisebuze/rustlike/internal/domain"
	"github.com/Samwisebuze/rustlike/pkg/dungeon"
)

func TestRunDamage_StacksAndClears(t *testing.T) {
	ctx := createTestWorld(10, 10)
	monster := spawnGoblinAt(ctx, 4, 4)

	AddDamage(ctx.World, monster, 3)
	AddDamage(ctx.World, monster, 4)
	AddDamage(ctx.World, monster, 0)

	if got := ctx.World.Damage.MustGet(monster).Amounts; len(got) != 2 {
		t.Fatalf("pending amounts = %v, want two entries", got)
	}

	RunDamage(ctx)

	if hp := ctx.World.Stats.MustGet(monster).HP; hp != 9 {
		t.Errorf("hp = %d, want 9", hp)
	}
	if ctx.World.Damage.Len() != 0 {
		t.Error("pending damage store should be empty after integration")
	}
}

func TestRunDeathSweep(t *testing.T) {
	tests := []struct {
		name     string
		hp       int
		wantDead bool
	}{
		{"alive", 1, false},
		{"exactly zero", 0, true},
		{"overkill", -7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := createTestWorld(10, 10)
			monster := spawnGoblinAt(ctx, 4, 4)
			ctx.World.Stats.MustGet(monster).HP = tt.hp

			dead := RunDeathSweep(ctx)

			if got := len(dead) == 1; got != tt.wantDead {
				t.Fatalf("dead = %v, want %v", dead, tt.wantDead)
			}
			if ctx.World.IsAlive(monster) == tt.wantDead {
				t.Errorf("IsAlive = %v after sweep", ctx.World.IsAlive(monster))
			}
			if tt.wantDead && ctx.World.Positions.Has(monster) {
				t.Error("dead entity still has components")
			}
		})
	}
}

func TestRunDeathSweep_PlayerRemoved(t *testing.T) {
	ctx := createTestWorld(10, 10)
	player := spawnPlayerAt(ctx, 4, 4)
	ctx.World.Stats.MustGet(player).HP = 0

	RunDeathSweep(ctx)

	if _, ok := ctx.World.Player(); ok {
		t.Error("player entity should be absent after dying")
	}
}

func TestRunDeathSweep_DropsInventory(t *testing.T) {
	ctx := createTestWorld(10, 10)
	monster := spawnGoblinAt(ctx, 6, 3)
	potion := dungeon.GiveItem(ctx.World, dungeon.HealthPotion, monster)
	ctx.World.Stats.MustGet(monster).HP = -1

	RunDeathSweep(ctx)

	if !ctx.World.IsAlive(potion) {
		t.Fatal("carried item should survive its owner")
	}
	if ctx.World.Carried.Has(potion) {
		t.Error("item should no longer be carried")
	}
	if got := positionOf(t, ctx, potion); got != (domain.Position{X: 6, Y: 3}) {
		t.Errorf("item dropped at %v, want owner's tile", got)
	}
}
