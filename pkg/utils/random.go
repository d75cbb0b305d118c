package utils

import "math/rand"

// RandRange возвращает случайное число в закрытом интервале [min, max].
// Если max < min, возвращает min.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// RollDice бросает n кубиков с заданным числом граней (нотация NdS).
func RollDice(rng *rand.Rand, n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += rng.Intn(sides) + 1
	}
	return total
}

// Chance возвращает true с вероятностью percent/100.
func Chance(rng *rand.Rand, percent int) bool {
	return rng.Intn(100) < percent
}
