package terminal

import "github.com/gdamore/tcell/v2"

// Color is one of the eight standard terminal colors. The numeric value is the
// curses color code, which is also the ANSI palette index.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// ColorCount is the number of standard colors
const ColorCount = 8

var colorNames = [ColorCount]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// Colors lists every color in code order
var Colors = [ColorCount]Color{
	ColorBlack, ColorRed, ColorGreen, ColorYellow,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
}

// Valid reports whether c is one of the eight declared colors
func (c Color) Valid() bool {
	return c < ColorCount
}

func (c Color) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return colorNames[c]
}

// ColorIndex returns the driver code of c, in [0,7] for valid colors
func ColorIndex(c Color) int {
	return int(c)
}

// IndexToColor is the inverse of ColorIndex. It reports false for any index
// outside [0,7].
func IndexToColor(i int) (Color, bool) {
	if i < 0 || i >= ColorCount {
		return 0, false
	}
	return Colors[i], true
}

// ParseColor resolves a lower-case color name
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Colors[i], true
		}
	}
	return 0, false
}

// toTcell maps c to the tcell palette entry with the same index
func (c Color) toTcell() tcell.Color {
	return tcell.PaletteColor(ColorIndex(c))
}
