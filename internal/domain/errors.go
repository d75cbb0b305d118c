package domain

import (
	"fmt"

	"github.com/Samwisebuze/rustlike/internal/core/types"
)

// InvariantError - нарушение контракта между частями движка: двойная
// вставка компонента, отсутствие обязательного компонента у сущности с
// тегом и т.п. Это ошибка программиста, а не игровая ситуация, поэтому
// она прерывает ход целиком.
type InvariantError struct {
	Entity types.EntityID
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Entity.IsNil() {
		return "invariant violated: " + e.Reason
	}
	return fmt.Sprintf("invariant violated for entity %s: %s", e.Entity, e.Reason)
}

// Violation паникует с *InvariantError. Паника перехватывается в
// Engine.Tick и превращается в обычную ошибку хода.
func Violation(id types.EntityID, format string, args ...any) {
	panic(&InvariantError{Entity: id, Reason: fmt.Sprintf(format, args...)})
}
