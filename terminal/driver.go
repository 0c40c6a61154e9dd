package terminal

// Driver is the terminal-control library a Session delegates to. Methods
// report failure through their bool or error result and never panic.
//
// Coordinates are zero-based (row, col) from the top-left corner.
type Driver interface {
	// Lifecycle
	Init() error
	Fini()

	// Color
	HasColors() bool
	StartColor() error
	// PairSlots is the number of pair ids the driver accepts, default pair included
	PairSlots() int
	InitPair(id PairID, fg, bg Color) error
	SetPair(id PairID) bool
	SetAttr(a Attr, on bool) bool

	// Modes
	SetCursorVisibility(v CursorVisibility) (prev CursorVisibility, ok bool)
	SetCharacterBreak(on bool) bool
	SetEcho(on bool) bool
	SetKeypad(on bool) bool
	SetScroll(on bool) bool
	SetScrollRegion(top, bottom int) bool

	// Geometry
	Size() (rows, cols int)
	Move(row, col int) bool
	Cursor() (row, col int)

	// Output
	Print(s string) bool
	PrintChar(r rune) bool
	DeleteChar() bool
	DeleteLine() bool
	Clear() bool
	Refresh() bool
	Beep() bool
	Flash() bool

	// Input
	ReadInput() (Input, bool)
	Unread(in Input) bool
	FlushInput() bool
	SetInputMode(m InputMode)
}
