package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestColorIndexRoundTrip(t *testing.T) {
	for _, c := range Colors {
		got, ok := IndexToColor(ColorIndex(c))
		if !ok {
			t.Errorf("IndexToColor(ColorIndex(%s)) reported absent", c)
			continue
		}
		if got != c {
			t.Errorf("Round trip of %s gave %s", c, got)
		}
	}
}

// TestColorIndexMatchesDriver checks codes against the tcell palette, whose
// first eight entries follow the curses COLOR_* order
func TestColorIndexMatchesDriver(t *testing.T) {
	tests := []struct {
		color Color
		code  int
		tcell tcell.Color
	}{
		{ColorBlack, 0, tcell.ColorBlack},
		{ColorRed, 1, tcell.ColorMaroon},
		{ColorGreen, 2, tcell.ColorGreen},
		{ColorYellow, 3, tcell.ColorOlive},
		{ColorBlue, 4, tcell.ColorNavy},
		{ColorMagenta, 5, tcell.ColorPurple},
		{ColorCyan, 6, tcell.ColorTeal},
		{ColorWhite, 7, tcell.ColorSilver},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			if got := ColorIndex(tt.color); got != tt.code {
				t.Errorf("ColorIndex = %d, want %d", got, tt.code)
			}
			if got := tt.color.toTcell(); got != tt.tcell {
				t.Errorf("toTcell = %v, want %v", got, tt.tcell)
			}
		})
	}
}

func TestIndexToColorOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 8, 9, 64, -100} {
		if c, ok := IndexToColor(i); ok {
			t.Errorf("IndexToColor(%d) = %s, want absent", i, c)
		}
	}
}

func TestColorValidAndNames(t *testing.T) {
	if Color(8).Valid() {
		t.Error("Expected Color(8) to be invalid")
	}
	if Color(8).String() != "invalid" {
		t.Errorf("Expected invalid name, got %q", Color(8).String())
	}

	for _, c := range Colors {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %s, %v", c.String(), parsed, ok)
		}
	}
	if _, ok := ParseColor("orange"); ok {
		t.Error("Expected orange to be unknown")
	}
}
