package enums

// ItemCategory - грубая классификация предметов для меню и бота.
// Эффекты предмета определяются компонентами, категория их не заменяет.
type ItemCategory uint8

const (
	ItemCategoryUnknown ItemCategory = iota // 0
	ItemCategoryPotion                      // 1
	ItemCategoryScroll                      // 2
)

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryPotion: "POTION",
	ItemCategoryScroll: "SCROLL",
}

func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}
