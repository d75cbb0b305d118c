package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный идентификатор сущности.
//
// EntityID является value-type: его дешево копировать, сравнивать и
// использовать как ключ. Сам по себе он ничего не хранит — все данные
// лежат в хранилищах компонентов, адресуемых по индексу.
//
// Формат битов (от старших к младшим):
//
//	[ Type (8) | Generation (24) | Index (32) ]
//
// Где:
//   - Type — тип сущности (Player, Monster, Item), только для логов и отладки
//   - Generation — версия слота (защита от устаревших ссылок)
//   - Index — индекс слота в хранилищах компонентов
type EntityID uint64

// NilEntityID — нулевой идентификатор сущности.
//
// Поколение живых сущностей начинается с 1, поэтому ноль никогда не
// совпадает с реальной сущностью.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	// bitsIndex — количество бит под индекс слота.
	bitsIndex = 32

	// bitsGen — количество бит под поколение слота.
	bitsGen = 24

	// bitsType — количество бит под тип сущности.
	bitsType = 8

	// Сдвиги битов
	shiftGen  = bitsIndex
	shiftType = bitsIndex + bitsGen

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskType  = (1 << bitsType) - 1
)

// MaxGeneration — максимальное поколение слота, после него счетчик
// возвращается к 1.
const MaxGeneration = maskGen

// PackEntityID собирает EntityID из составных частей.
//
// Функция не проверяет диапазоны: лишние старшие биты отбрасываются масками.
func PackEntityID(typeID uint8, gen uint32, index uint32) EntityID {
	return EntityID(
		(uint64(typeID&maskType) << shiftType) |
			(uint64(gen&maskGen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота сущности.
func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

// Type возвращает тип сущности.
func (id EntityID) Type() uint8 {
	return uint8((id >> shiftType) & maskType)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String возвращает строку для логов: [type=1 gen=3 idx=17].
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[type=%d gen=%d idx=%d]",
		id.Type(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON сериализует EntityID в JSON как строку.
//
// Кадр уходит в JSON по флагу -dump, а uint64 теряет точность
// в JavaScript-средах.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует EntityID из JSON.
//
// Поддерживаются как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
