package types

import (
	"fmt"
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name  string
		color uint32
		char  byte
		want  Glyph
	}{
		{"orange A", 0xFFA500, 'A', Glyph(0xFFA50041)},
		{"black space", 0x000000, ' ', Glyph(0x00000020)},
		{"color truncation", 0x12345678, 'x', Glyph(0x34567878)},
		{"max char", 0x404040, 0xFF, Glyph(0x404040FF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeGlyph(tt.color, tt.char)
			if got != tt.want {
				t.Errorf("MakeGlyph() = 0x%08X, want 0x%08X", got, tt.want)
			}
			if got.Char() != tt.char {
				t.Errorf("Char() = %q, want %q", got.Char(), tt.char)
			}
		})
	}
}

func TestGlyph_RGB(t *testing.T) {
	r, g, b := MakeGlyph(0x102030, '@').RGB()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("RGB() = %02X %02X %02X, want 10 20 30", r, g, b)
	}
}

func TestGlyph_Dim(t *testing.T) {
	dim := MakeGlyph(0xFF8040, '#').Dim()
	if dim.Char() != '#' {
		t.Errorf("Dim() changed char to %q", dim.Char())
	}
	if dim.Color() != 0x7F4020 {
		t.Errorf("Dim() color = %s, want #7F4020", dim.HexColor())
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{"printable", MakeGlyph(0xFFA500, 'A'), "Glyph{char='A', color=#FFA500}"},
		{"newline escape", MakeGlyph(0xFFFFFF, '\n'), "Glyph{char='\\x0A', color=#FFFFFF}"},
		{"del char", MakeGlyph(0x654321, 0x7F), "Glyph{char='\\x7F', color=#654321}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPalette_DistinctActors(t *testing.T) {
	seen := map[byte]string{}
	for name, g := range map[string]Glyph{
		"player": GlyphPlayer,
		"goblin": GlyphGoblin,
		"orc":    GlyphOrc,
		"potion": GlyphPotion,
	} {
		if other, ok := seen[g.Char()]; ok {
			t.Errorf("%s and %s share char %q", name, other, g.Char())
		}
		seen[g.Char()] = name
	}
}

// Пример палитры подземелья.
func ExampleGlyph_palette() {
	for _, g := range []Glyph{GlyphWall, GlyphFloor, GlyphPlayer} {
		fmt.Println(g)
	}

	// Output:
	// Glyph{char='#', color=#00FF00}
	// Glyph{char='.', color=#7F7F7F}
	// Glyph{char='@', color=#FFFF00}
}
