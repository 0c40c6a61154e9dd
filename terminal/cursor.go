package terminal

// CursorVisibility is a cursor display mode. Not all terminals support all
// three; the numeric values match curs_set.
type CursorVisibility uint8

const (
	CursorInvisible CursorVisibility = iota
	CursorVisible
	CursorHighlyVisible
)

func (v CursorVisibility) String() string {
	switch v {
	case CursorInvisible:
		return "invisible"
	case CursorVisible:
		return "visible"
	case CursorHighlyVisible:
		return "highly-visible"
	default:
		return "invalid"
	}
}

// Valid reports whether v is one of the three declared modes
func (v CursorVisibility) Valid() bool {
	return v <= CursorHighlyVisible
}
