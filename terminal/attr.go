package terminal

import "github.com/gdamore/tcell/v2"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// AttrAll masks every defined attribute
const AttrAll Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// apply sets the attribute bits of a on top of s
func (a Attr) apply(s tcell.Style) tcell.Style {
	return s.
		Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Underline(a&AttrUnderline != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0)
}
