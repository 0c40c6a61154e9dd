package terminal

// Session operations delegate to the driver. After Close every operation
// fails without touching the driver.

// SetCursorVisibility returns the previous mode on success. Unsupported modes
// fail and leave the cursor unchanged.
func (s *Session) SetCursorVisibility(v CursorVisibility) (CursorVisibility, bool) {
	if !s.Active() {
		return CursorInvisible, false
	}
	return s.driver.SetCursorVisibility(v)
}

// SetCharacterBreak toggles character-at-a-time input; off means line buffered
func (s *Session) SetCharacterBreak(on bool) bool {
	return s.Active() && s.driver.SetCharacterBreak(on)
}

// SetEcho toggles echoing typed characters at the cursor
func (s *Session) SetEcho(on bool) bool {
	return s.Active() && s.driver.SetEcho(on)
}

// SetKeypad toggles decoding of special keys into InputKey values
func (s *Session) SetKeypad(on bool) bool {
	return s.Active() && s.driver.SetKeypad(on)
}

// Size returns the terminal dimensions, zero after Close
func (s *Session) Size() (rows, cols int) {
	if !s.Active() {
		return 0, 0
	}
	return s.driver.Size()
}

// Move positions the cursor from the top-left corner
func (s *Session) Move(row, col int) bool {
	return s.Active() && s.driver.Move(row, col)
}

// MoveBottomLeft positions the cursor with row 0 at the bottom line
func (s *Session) MoveBottomLeft(row, col int) bool {
	if !s.Active() {
		return false
	}
	rows, _ := s.driver.Size()
	return s.driver.Move(rows-1-row, col)
}

// Cursor returns the cursor position from the top-left corner
func (s *Session) Cursor() (row, col int) {
	if !s.Active() {
		return 0, 0
	}
	return s.driver.Cursor()
}

// SetScroll toggles scrolling the region when output passes its last line
func (s *Session) SetScroll(on bool) bool {
	return s.Active() && s.driver.SetScroll(on)
}

// SetScrollRegion bounds scrolling to rows top..bottom inclusive
func (s *Session) SetScrollRegion(top, bottom int) bool {
	return s.Active() && s.driver.SetScrollRegion(top, bottom)
}

func (s *Session) Print(str string) bool {
	return s.Active() && s.driver.Print(str)
}

func (s *Session) PrintChar(r rune) bool {
	return s.Active() && s.driver.PrintChar(r)
}

// DeleteChar removes the character under the cursor, shifting the rest of
// the line left
func (s *Session) DeleteChar() bool {
	return s.Active() && s.driver.DeleteChar()
}

// DeleteLine removes the cursor line, shifting the lines below up
func (s *Session) DeleteLine() bool {
	return s.Active() && s.driver.DeleteLine()
}

func (s *Session) Clear() bool {
	return s.Active() && s.driver.Clear()
}

// Refresh pushes pending output to the terminal. ReadInput refreshes on its own.
func (s *Session) Refresh() bool {
	return s.Active() && s.driver.Refresh()
}

func (s *Session) Beep() bool {
	return s.Active() && s.driver.Beep()
}

func (s *Session) Flash() bool {
	return s.Active() && s.driver.Flash()
}

// SetColorPair selects the pair used by subsequent output
func (s *Session) SetColorPair(fg, bg Color) bool {
	if !s.Active() || !s.colors || !fg.Valid() || !bg.Valid() {
		return false
	}
	return s.driver.SetPair(EncodePair(fg, bg))
}

// SetDefaultColors selects the driver's default pair
func (s *Session) SetDefaultColors() bool {
	return s.Active() && s.driver.SetPair(DefaultPair)
}

// SetAttr toggles attributes for subsequent output
func (s *Session) SetAttr(a Attr, on bool) bool {
	return s.Active() && s.driver.SetAttr(a, on)
}

func (s *Session) SetBold(on bool) bool {
	return s.SetAttr(AttrBold, on)
}

func (s *Session) SetUnderline(on bool) bool {
	return s.SetAttr(AttrUnderline, on)
}

// Unread pushes in back so the next ReadInput returns it
func (s *Session) Unread(in Input) bool {
	return s.Active() && s.driver.Unread(in)
}

// FlushInput discards all unread input
func (s *Session) FlushInput() bool {
	return s.Active() && s.driver.FlushInput()
}

// SetInputMode sets how long ReadInput waits
func (s *Session) SetInputMode(m InputMode) {
	if s.Active() {
		s.driver.SetInputMode(m)
	}
}

// ReadInput returns the next input, or false when none arrived within the
// input mode's wait
func (s *Session) ReadInput() (Input, bool) {
	if !s.Active() {
		return Input{}, false
	}
	return s.driver.ReadInput()
}
