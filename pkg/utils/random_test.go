package utils

import (
	"math/rand"
	"testing"
)

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		name     string
		min, max int
	}{
		{"single value", 3, 3},
		{"small range", 1, 2},
		{"room sizes", 6, 10},
		{"inverted range", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := RandRange(rng, tt.min, tt.max)
				hi := tt.max
				if hi < tt.min {
					hi = tt.min
				}
				if v < tt.min || v > hi {
					t.Fatalf("RandRange(%d, %d) = %d, out of range", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestRollDice(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		v := RollDice(rng, 2, 6)
		if v < 2 || v > 12 {
			t.Fatalf("RollDice(2, 6) = %d, want 2..12", v)
		}
	}

	if got := RollDice(rng, 0, 6); got != 0 {
		t.Errorf("RollDice(0, 6) = %d, want 0", got)
	}
}

func TestChance_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if Chance(rng, 0) {
			t.Fatal("Chance(0) should never succeed")
		}
		if !Chance(rng, 100) {
			t.Fatal("Chance(100) should always succeed")
		}
	}
}
