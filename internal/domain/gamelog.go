package domain

import (
	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
	"github.com/Samwisebuze/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// LogEntry - строка игрового журнала.
type LogEntry struct {
	Turn int           `json:"turn"`
	Kind enums.LogKind `json:"kind"`
	Text string        `json:"text"`
}

// GameLog - текстовая лента событий. Хранится в порядке добавления,
// наружу отдается новыми первыми. Журнал только добавляет строки,
// обрезкой занимается рендер.
type GameLog struct {
	entries []LogEntry
	turn    int
}

// NewGameLog создает журнал с приветственными строками.
func NewGameLog(lines ...string) *GameLog {
	l := &GameLog{}
	for _, line := range lines {
		l.Add(enums.LogKindInfo, line)
	}
	return l
}

// SetTurn задает номер хода для следующих записей.
func (l *GameLog) SetTurn(turn int) {
	l.turn = turn
}

// Add добавляет строку в журнал и дублирует ее в logrus.
func (l *GameLog) Add(kind enums.LogKind, text string) {
	l.entries = append(l.entries, LogEntry{Turn: l.turn, Kind: kind, Text: text})

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  kind.String(),
		"turn":      l.turn,
	}).Info(text)
}

// Entries возвращает копию всех записей, новые первыми.
func (l *GameLog) Entries() []LogEntry {
	return l.Latest(len(l.entries))
}

// Latest возвращает до n последних записей, новые первыми.
func (l *GameLog) Latest(n int) []LogEntry {
	n = max(0, min(n, len(l.entries)))

	out := make([]LogEntry, n)
	for i := range out {
		out[i] = l.entries[len(l.entries)-1-i]
	}
	return out
}

// Len - количество записей.
func (l *GameLog) Len() int {
	return len(l.entries)
}
