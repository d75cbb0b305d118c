package enums

// LogKind - тип строки в игровом журнале. Рендер красит строки по типу.
type LogKind uint8

const (
	LogKindInfo LogKind = iota
	LogKindCombat
	LogKindItem
	LogKindError
)

var logKindToString = map[LogKind]string{
	LogKindInfo:   "INFO",
	LogKindCombat: "COMBAT",
	LogKindItem:   "ITEM",
	LogKindError:  "ERROR",
}

func (k LogKind) String() string {
	if val, ok := logKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
