package enums

// EntityType кодируется в старших битах EntityID. Нужен только для логов
// и отладки: логика игры опирается на компоненты, а не на тип.
type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeMonster
	EntityTypeItem
)

var entityTypeToString = map[EntityType]string{
	EntityTypePlayer:  "PLAYER",
	EntityTypeMonster: "MONSTER",
	EntityTypeItem:    "ITEM",
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityType) String() string {
	if val, ok := entityTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}
