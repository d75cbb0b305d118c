package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Samwisebuze/rustlike/internal/engine"
	"github.com/Samwisebuze/rustlike/pkg/api"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/gookit/color"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 20

	// HUD (1) + журнал (LogLines) + подсказка (1)
	ViewportTopMargin = 2 + LogLines

	LogLines = 5
)

// Renderer рисует api.Frame в терминал.
type Renderer struct {
	colorHUD     color.Style
	colorCursor  color.Style
	colorMenu    color.Style
	colorMenuKey color.Style
	colorHint    color.Style

	colorLog map[string]color.Style

	// Size возвращает размер терминала. Подменяется в тестах.
	Size func() (width, height int)
}

// NewRenderer создает рендер с палитрой по умолчанию.
func NewRenderer() *Renderer {
	return &Renderer{
		colorHUD:     color.Style{color.FgGreen, color.OpBold},
		colorCursor:  color.Style{color.FgBlack, color.BgYellow},
		colorMenu:    color.Style{color.FgMagenta},
		colorMenuKey: color.Style{color.FgMagenta, color.OpBold},
		colorHint:    color.Style{color.FgGray, color.OpBold},
		colorLog: map[string]color.Style{
			"COMBAT": {color.FgRed},
			"ITEM":   {color.FgMagenta},
			"ERROR":  {color.FgRed, color.OpBold},
		},
		Size: Size,
	}
}

// Cursor - клетка под прицелом в режиме выбора цели.
type Cursor struct {
	X, Y int
}

// Render выводит кадр целиком. cursor учитывается только при выборе цели.
func (r *Renderer) Render(w io.Writer, frame api.Frame, cursor *Cursor) error {
	var b strings.Builder

	// Очистка экрана и курсор в начало
	b.WriteString("\x1b[2J\x1b[H")

	r.writeHUD(&b, frame)
	r.writeMap(&b, frame, cursor)
	r.writeLog(&b, frame)

	switch frame.State {
	case engine.PhaseShowInventory.String():
		r.writeMenu(&b, locale.T("Inventory"), frame.Inventory)
	case engine.PhaseShowDropItem.String():
		r.writeMenu(&b, locale.T("Drop which item?"), frame.Inventory)
	case engine.PhaseShowTargeting.String():
		b.WriteString(r.colorHint.Sprint(locale.T("Select a target: move the cursor, Enter to confirm, Esc to cancel.")))
		b.WriteString("\r\n")
	}

	// Строки завершены \r\n: stdin в raw-режиме
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeHUD(b *strings.Builder, frame api.Frame) {
	if frame.GameOver || frame.Player == nil {
		b.WriteString(r.colorHUD.Sprint(locale.T("You are dead. Press q to quit.")))
		b.WriteString("\r\n")
		return
	}

	hp := ""
	if s := frame.Player.Stats; s != nil {
		hp = fmt.Sprintf("HP: %d/%d  ", s.HP, s.MaxHP)
	}
	b.WriteString(r.colorHUD.Sprint(fmt.Sprintf("%s%s %d", hp, locale.T("Turn"), frame.Turn)))
	b.WriteString("\r\n")
}

// viewport возвращает левый верхний угол и размер видимой части карты,
// центрированной на игроке.
func (r *Renderer) viewport(frame api.Frame) (x0, y0, cols, rows int) {
	width, height := r.Size()
	cols = max(width, ViewportMinCols)
	rows = max(height-ViewportTopMargin, ViewportMinRows)
	cols = min(cols, frame.Grid.Width)
	rows = min(rows, frame.Grid.Height)

	cx, cy := frame.Grid.Width/2, frame.Grid.Height/2
	if frame.Player != nil {
		cx, cy = frame.Player.Pos.X, frame.Player.Pos.Y
	}
	x0 = clamp(cx-cols/2, 0, frame.Grid.Width-cols)
	y0 = clamp(cy-rows/2, 0, frame.Grid.Height-rows)
	return x0, y0, cols, rows
}

func (r *Renderer) writeMap(b *strings.Builder, frame api.Frame, cursor *Cursor) {
	x0, y0, cols, rows := r.viewport(frame)
	if cols <= 0 || rows <= 0 {
		return
	}

	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	put := func(x, y int, s string) {
		x, y = x-x0, y-y0
		if x >= 0 && y >= 0 && x < cols && y < rows {
			cells[y][x] = s
		}
	}

	// Цвет запомненных клеток уже приглушен в снимке
	for _, t := range frame.Map {
		put(t.X, t.Y, color.HEX(t.Color).Sprint(t.Symbol))
	}

	// Entities отсортированы по Order: меньший рисуется поверх
	for i := len(frame.Entities) - 1; i >= 0; i-- {
		ev := frame.Entities[i]
		put(ev.Pos.X, ev.Pos.Y, color.HEX(ev.Render.Color).Sprint(ev.Render.Symbol))
	}

	if cursor != nil && frame.State == engine.PhaseShowTargeting.String() {
		under := " "
		if x, y := cursor.X-x0, cursor.Y-y0; x >= 0 && y >= 0 && x < cols && y < rows {
			under = color.ClearCode(cells[y][x])
		}
		put(cursor.X, cursor.Y, r.colorCursor.Sprint(under))
	}

	for _, row := range cells {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\r\n")
	}
}

func (r *Renderer) writeLog(b *strings.Builder, frame api.Frame) {
	n := min(LogLines, len(frame.Logs))
	for _, entry := range frame.Logs[:n] {
		if style, ok := r.colorLog[entry.Type]; ok {
			b.WriteString(style.Sprint(entry.Text))
		} else {
			b.WriteString(entry.Text)
		}
		b.WriteString("\r\n")
	}
}

func (r *Renderer) writeMenu(b *strings.Builder, title string, items []api.ItemView) {
	b.WriteString(r.colorMenuKey.Sprint(title))
	b.WriteString("\r\n")
	if len(items) == 0 {
		b.WriteString(r.colorHint.Sprint(locale.T("You are not carrying anything.")))
		b.WriteString("\r\n")
	}
	for i, it := range items {
		b.WriteString(r.colorMenuKey.Sprint(fmt.Sprintf("(%c) ", 'a'+i)))
		b.WriteString(r.colorMenu.Sprint(it.Name))
		b.WriteString("\r\n")
	}
	b.WriteString(r.colorHint.Sprint(locale.T("Esc to cancel.")))
	b.WriteString("\r\n")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
