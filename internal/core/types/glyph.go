package types

import (
	"fmt"
)

// Glyph представляет упакованное представление цветного символа.
// Использует 32 бита (uint32) для хранения в формате:
//
//	[0:8] - символ (8 бит = 1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (24 бита = 3 байта) - маска 0xFFFFFF
type Glyph uint32

// Константы для битовых операций с Glyph
const (
	bitsChar  = 8  // Символ - 8 бит (0-255)
	bitsColor = 24 // Цвет - 24 бита (RGB)

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// Палитра подземелья.
var (
	GlyphPlayer       = MakeGlyph(0xFFFF00, '@')
	GlyphGoblin       = MakeGlyph(0xFF0000, 'g')
	GlyphOrc          = MakeGlyph(0xFF0000, 'o')
	GlyphPotion       = MakeGlyph(0xFF00FF, '!')
	GlyphScroll       = MakeGlyph(0x00FFFF, ')')
	GlyphFireball     = MakeGlyph(0xFFA500, ')')
	GlyphWall         = MakeGlyph(0x00FF00, '#')
	GlyphFloor        = MakeGlyph(0x7F7F7F, '.')
	GlyphUnknownThing = MakeGlyph(0xFFFFFF, '?')
)

// MakeGlyph создает новый Glyph из RGB-цвета и символа.
//
// Параметры:
//   - colorRGB: RGB-цвет в формате 0xRRGGBB (учитываются только младшие 24 бита)
//   - char: ASCII символ для отображения
//
// Пример:
//
//	glyph := MakeGlyph(0xFFA500, 'A') // 0xFFA50041
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает 24-битный RGB-цвет из Glyph в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ из Glyph.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// RGB раскладывает цвет на компоненты (для терминального рендера).
func (g Glyph) RGB() (r, gr, b uint8) {
	c := g.Color()
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Dim возвращает тот же символ с цветом, приглушенным вдвое.
// Используется для клеток, которые игрок видел, но сейчас не видит.
func (g Glyph) Dim() Glyph {
	r, gr, b := g.RGB()
	return MakeGlyph(uint32(r/2)<<16|uint32(gr/2)<<8|uint32(b/2), g.Char())
}

// String возвращает человеко-читаемое представление Glyph.
// Формат: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает строковое HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}
