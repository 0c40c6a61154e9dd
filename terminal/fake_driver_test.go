package terminal

// fakeDriver records lifecycle calls and simulates a terminal with a
// configurable color and cursor capability set
type fakeDriver struct {
	inits   int
	finis   int
	initErr error

	// finiHook runs inside Fini, e.g. to observe ordering or panic
	finiHook func()

	colors      bool
	colorErr    error
	slots       int
	pairs       map[PairID]Pair
	pair        PairID
	attrs       Attr
	cursor      CursorVisibility
	unsupported map[CursorVisibility]bool

	charBreak, echo, keypad, scroll bool
	top, bottom                     int

	rows, cols int
	row, col   int
	output     []string

	inputs   []Input
	pushback []Input
	mode     InputMode
	flushes  int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		colors:      true,
		slots:       256,
		rows:        24,
		cols:        80,
		cursor:      CursorVisible,
		unsupported: map[CursorVisibility]bool{},
	}
}

func (f *fakeDriver) Init() error {
	f.inits++
	if f.initErr != nil {
		return f.initErr
	}
	f.pairs = make(map[PairID]Pair)
	f.pair = DefaultPair
	return nil
}

func (f *fakeDriver) Fini() {
	f.finis++
	if f.finiHook != nil {
		f.finiHook()
	}
}

func (f *fakeDriver) HasColors() bool   { return f.colors }
func (f *fakeDriver) StartColor() error { return f.colorErr }
func (f *fakeDriver) PairSlots() int    { return f.slots }

func (f *fakeDriver) InitPair(id PairID, fg, bg Color) error {
	if int(id) >= f.slots {
		return errPairRange
	}
	f.pairs[id] = Pair{Fg: fg, Bg: bg}
	return nil
}

func (f *fakeDriver) SetPair(id PairID) bool {
	if _, ok := f.pairs[id]; !ok && id != DefaultPair {
		return false
	}
	f.pair = id
	return true
}

func (f *fakeDriver) SetAttr(a Attr, on bool) bool {
	if on {
		f.attrs |= a
	} else {
		f.attrs &^= a
	}
	return true
}

func (f *fakeDriver) SetCursorVisibility(v CursorVisibility) (CursorVisibility, bool) {
	if !v.Valid() || f.unsupported[v] {
		return CursorInvisible, false
	}
	prev := f.cursor
	f.cursor = v
	return prev, true
}

func (f *fakeDriver) SetCharacterBreak(on bool) bool { f.charBreak = on; return true }
func (f *fakeDriver) SetEcho(on bool) bool           { f.echo = on; return true }
func (f *fakeDriver) SetKeypad(on bool) bool         { f.keypad = on; return true }
func (f *fakeDriver) SetScroll(on bool) bool         { f.scroll = on; return true }

func (f *fakeDriver) SetScrollRegion(top, bottom int) bool {
	if top < 0 || bottom >= f.rows || top >= bottom {
		return false
	}
	f.top, f.bottom = top, bottom
	return true
}

func (f *fakeDriver) Size() (int, int) { return f.rows, f.cols }

func (f *fakeDriver) Move(row, col int) bool {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return false
	}
	f.row, f.col = row, col
	return true
}

func (f *fakeDriver) Cursor() (int, int) { return f.row, f.col }

func (f *fakeDriver) Print(s string) bool {
	f.output = append(f.output, s)
	return true
}

func (f *fakeDriver) PrintChar(r rune) bool { return f.Print(string(r)) }
func (f *fakeDriver) DeleteChar() bool      { return true }
func (f *fakeDriver) DeleteLine() bool      { return true }
func (f *fakeDriver) Clear() bool           { return true }
func (f *fakeDriver) Refresh() bool         { return true }
func (f *fakeDriver) Beep() bool            { return true }
func (f *fakeDriver) Flash() bool           { return true }

func (f *fakeDriver) ReadInput() (Input, bool) {
	if n := len(f.pushback); n > 0 {
		in := f.pushback[n-1]
		f.pushback = f.pushback[:n-1]
		return in, true
	}
	if len(f.inputs) == 0 {
		return Input{}, false
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in, true
}

func (f *fakeDriver) Unread(in Input) bool {
	f.pushback = append(f.pushback, in)
	return true
}

func (f *fakeDriver) FlushInput() bool {
	f.flushes++
	f.inputs = nil
	f.pushback = nil
	return true
}

func (f *fakeDriver) SetInputMode(m InputMode) { f.mode = m }
