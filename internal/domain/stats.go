package domain

// CombatStats - боевые характеристики.
type CombatStats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// Heal лечит на amount и обрезает HP по MaxHP. Возвращает фактически
// восстановленное количество.
func (s *CombatStats) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.HP
	s.HP = min(s.HP+amount, s.MaxHP)
	return max(0, s.HP-before)
}

// ApplyDamage вычитает урон. HP может уйти в минус до зачистки мертвых,
// зачистка смотрит на HP <= 0. Возвращает true, если сущность погибла.
func (s *CombatStats) ApplyDamage(amount int) bool {
	if amount > 0 {
		s.HP -= amount
	}
	return s.IsDead()
}

// IsDead - сущность подлежит удалению при зачистке.
func (s *CombatStats) IsDead() bool {
	return s.HP <= 0
}

// MeleeDamage - урон атакующего по защищающемуся: max(0, power - defense).
func MeleeDamage(attacker, defender CombatStats) int {
	return max(0, attacker.Power-defender.Defense)
}
