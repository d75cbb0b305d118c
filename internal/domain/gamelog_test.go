package domain

import (
	"testing"

	"github.com/Samwisebuze/rustlike/internal/core/types/enums"
)

func TestGameLog_NewestFirst(t *testing.T) {
	l := NewGameLog("Welcome")
	l.SetTurn(3)
	l.Add(enums.LogKindCombat, "Orc hits Player, for 3 hp.")

	got := l.Entries()
	if len(got) != 2 {
		t.Fatalf("Len = %d", len(got))
	}
	if got[0].Text != "Orc hits Player, for 3 hp." || got[0].Turn != 3 || got[0].Kind != enums.LogKindCombat {
		t.Errorf("newest entry = %+v", got[0])
	}
	if got[1].Text != "Welcome" {
		t.Errorf("oldest entry = %+v", got[1])
	}
	if n := len(l.Latest(10)); n != 2 {
		t.Errorf("Latest(10) returned %d", n)
	}
	if n := len(l.Latest(1)); n != 1 {
		t.Errorf("Latest(1) returned %d", n)
	}
}

func TestGameLog_Latest(t *testing.T) {
	l := NewGameLog("one", "two", "three")

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"Negative", -1, []string{}},
		{"Zero", 0, []string{}},
		{"Two newest", 2, []string{"three", "two"}},
		{"More than stored", 10, []string{"three", "two", "one"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Latest(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Latest(%d) returned %d entries", tt.n, len(got))
			}
			for i, e := range got {
				if e.Text != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, e.Text, tt.want[i])
				}
			}
		})
	}
}

func TestGameLog_EntriesIsACopy(t *testing.T) {
	l := NewGameLog("first")
	got := l.Entries()
	got[0].Text = "changed"

	if l.Entries()[0].Text != "first" {
		t.Error("caller changed the journal through Entries()")
	}
}
