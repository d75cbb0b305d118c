package domain

import (
	"github.com/Samwisebuze/rustlike/internal/core/types"
)

// Store - разреженное хранилище компонента одного вида.
// Слот адресуется индексом EntityID, поколение в слоте защищает от
// обращения по устаревшему идентификатору: после Destroy и повторного
// использования слота старый ID просто не находится.
type Store[T any] struct {
	name   string
	slots  []*T
	owners []types.EntityID
	count  int
}

// NewStore создает пустое хранилище. name попадает в тексты нарушений.
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:   name,
		slots:  make([]*T, 0, 64),
		owners: make([]types.EntityID, 0, 64),
	}
}

func (s *Store[T]) grow(idx uint32) {
	for uint32(len(s.slots)) <= idx {
		s.slots = append(s.slots, nil)
		s.owners = append(s.owners, types.NilEntityID)
	}
}

// Insert добавляет компонент. Повторная вставка - нарушение контракта.
func (s *Store[T]) Insert(id types.EntityID, val T) {
	if s.Has(id) {
		Violation(id, "duplicate %s component", s.name)
	}
	s.Set(id, val)
}

// Set добавляет или заменяет компонент.
func (s *Store[T]) Set(id types.EntityID, val T) {
	if id.IsNil() {
		Violation(id, "nil entity in %s store", s.name)
	}

	idx := id.Index()
	s.grow(idx)

	if s.owners[idx] != id {
		if s.slots[idx] == nil {
			s.count++
		}
		s.owners[idx] = id
	}
	v := val
	s.slots[idx] = &v
}

// Get возвращает указатель на компонент. Изменения через указатель
// видны в хранилище.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	idx := id.Index()
	if id.IsNil() || idx >= uint32(len(s.slots)) || s.owners[idx] != id {
		return nil, false
	}
	return s.slots[idx], true
}

// MustGet возвращает компонент или паникует с InvariantError.
func (s *Store[T]) MustGet(id types.EntityID) *T {
	v, ok := s.Get(id)
	if !ok {
		Violation(id, "missing %s component", s.name)
	}
	return v
}

// Has - есть ли компонент у сущности.
func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

// Remove удаляет компонент. Возвращает false, если его не было.
func (s *Store[T]) Remove(id types.EntityID) bool {
	if !s.Has(id) {
		return false
	}
	idx := id.Index()
	s.slots[idx] = nil
	s.owners[idx] = types.NilEntityID
	s.count--
	return true
}

// Entities возвращает копию списка владельцев в порядке слотов.
// Копия позволяет удалять компоненты во время обхода.
func (s *Store[T]) Entities() []types.EntityID {
	out := make([]types.EntityID, 0, s.count)
	for i, owner := range s.owners {
		if s.slots[i] != nil {
			out = append(out, owner)
		}
	}
	return out
}

// Len - количество сущностей с этим компонентом.
func (s *Store[T]) Len() int {
	return s.count
}
