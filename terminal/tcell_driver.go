package terminal

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/easyterm/config"
)

var (
	errNoColors  = errors.New("terminal does not support colors")
	errColorOff  = errors.New("color mode not started")
	errPairRange = errors.New("color pair id out of range")
)

const tabWidth = 8

// pollInterval bounds timed reads on screens that don't expose their event queue
const pollInterval = 10 * time.Millisecond

// ringer plays an audible bell when the terminal cannot
type ringer interface {
	Enabled() bool
	Forced() bool
	Ring() error
}

// eventQueuer is implemented by tcell screens that expose their event channel
type eventQueuer interface {
	EventQ() chan tcell.Event
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:      KeyUp,
	tcell.KeyDown:    KeyDown,
	tcell.KeyLeft:    KeyLeft,
	tcell.KeyRight:   KeyRight,
	tcell.KeyHome:    KeyHome,
	tcell.KeyEnd:     KeyEnd,
	tcell.KeyPgUp:    KeyPageUp,
	tcell.KeyPgDn:    KeyPageDown,
	tcell.KeyInsert:  KeyInsert,
	tcell.KeyDelete:  KeyDelete,
	tcell.KeyBacktab: KeyBacktab,
	tcell.KeyF1:      KeyF1,
	tcell.KeyF2:      KeyF2,
	tcell.KeyF3:      KeyF3,
	tcell.KeyF4:      KeyF4,
	tcell.KeyF5:      KeyF5,
	tcell.KeyF6:      KeyF6,
	tcell.KeyF7:      KeyF7,
	tcell.KeyF8:      KeyF8,
	tcell.KeyF9:      KeyF9,
	tcell.KeyF10:     KeyF10,
	tcell.KeyF11:     KeyF11,
	tcell.KeyF12:     KeyF12,
}

// tcellDriver emulates a single curses window on top of a tcell.Screen
type tcellDriver struct {
	screen tcell.Screen
	bell   ringer

	flashDuration time.Duration
	slotOverride  int
	highVisCursor bool

	colors     bool
	pairs      []tcell.Style
	registered []bool
	pair       PairID
	attrs      Attr

	row, col   int
	rows, cols int // Last known size, used to filter redundant resize events
	cursor     CursorVisibility

	charBreak bool
	echo      bool
	keypad    bool
	scroll    bool
	top       int
	bottom    int

	mode     InputMode
	pushback []Input // LIFO, like ungetch
	partial  []Input // Cooked mode line being edited
	line     []Input // Cooked mode completed line, drained FIFO

	needSync bool
}

func newTcellDriver(screen tcell.Screen, cfg config.Terminal, bell ringer) *tcellDriver {
	return &tcellDriver{
		screen:        screen,
		bell:          bell,
		flashDuration: cfg.FlashDuration,
		slotOverride:  cfg.PairSlots,
		highVisCursor: cfg.HighlyVisibleCursor,
	}
}

// Init takes over the screen with curses defaults: cooked input, echo on,
// keypad off, scrolling off, cursor visible at the origin
func (d *tcellDriver) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}

	d.rows, d.cols = d.Size()
	d.row, d.col = 0, 0
	d.top, d.bottom = 0, d.rows-1
	d.cursor = CursorVisible

	d.charBreak = false
	d.echo = true
	d.keypad = false
	d.scroll = false

	d.colors = false
	d.pairs = nil
	d.registered = nil
	d.pair = DefaultPair
	d.attrs = AttrNone

	d.pushback = nil
	d.partial = nil
	d.line = nil

	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()
	d.syncCursor()
	return nil
}

func (d *tcellDriver) Fini() {
	d.screen.Fini()
}

func (d *tcellDriver) HasColors() bool {
	return d.screen.Colors() >= ColorCount
}

func (d *tcellDriver) StartColor() error {
	if !d.HasColors() {
		return errNoColors
	}
	slots := d.PairSlots()
	d.pairs = make([]tcell.Style, slots)
	d.registered = make([]bool, slots)
	if slots > 0 {
		d.pairs[DefaultPair] = tcell.StyleDefault
		d.registered[DefaultPair] = true
	}
	d.colors = true
	return nil
}

// PairSlots follows curses COLOR_PAIRS: 64 on 8 and 16 color terminals, which
// leaves id 64 unregistrable
func (d *tcellDriver) PairSlots() int {
	if d.slotOverride > 0 {
		return d.slotOverride
	}
	switch n := d.screen.Colors(); {
	case n >= 256:
		return 256
	case n >= ColorCount:
		return PairCount
	default:
		return 0
	}
}

func (d *tcellDriver) InitPair(id PairID, fg, bg Color) error {
	if !d.colors {
		return errColorOff
	}
	if id <= DefaultPair || int(id) >= len(d.pairs) {
		return fmt.Errorf("pair %d: %w", id, errPairRange)
	}
	if !fg.Valid() || !bg.Valid() {
		return fmt.Errorf("pair %d: invalid color %d/%d", id, fg, bg)
	}
	d.pairs[id] = tcell.StyleDefault.Foreground(fg.toTcell()).Background(bg.toTcell())
	d.registered[id] = true
	return nil
}

func (d *tcellDriver) SetPair(id PairID) bool {
	if id == DefaultPair {
		d.pair = DefaultPair
		return true
	}
	if !d.colors || id < 0 || int(id) >= len(d.pairs) || !d.registered[id] {
		return false
	}
	d.pair = id
	return true
}

func (d *tcellDriver) SetAttr(a Attr, on bool) bool {
	if a&^AttrAll != 0 {
		return false
	}
	if on {
		d.attrs |= a
	} else {
		d.attrs &^= a
	}
	return true
}

// pairStyle is the active pair without attributes, used for blank fill
func (d *tcellDriver) pairStyle() tcell.Style {
	if !d.colors || d.pair == DefaultPair {
		return tcell.StyleDefault
	}
	return d.pairs[d.pair]
}

func (d *tcellDriver) style() tcell.Style {
	return d.attrs.apply(d.pairStyle())
}

func (d *tcellDriver) SetCursorVisibility(v CursorVisibility) (CursorVisibility, bool) {
	if !v.Valid() || (v == CursorHighlyVisible && !d.highVisCursor) {
		return CursorInvisible, false
	}

	prev := d.cursor
	d.cursor = v
	switch v {
	case CursorVisible:
		d.screen.SetCursorStyle(tcell.CursorStyleDefault)
	case CursorHighlyVisible:
		d.screen.SetCursorStyle(tcell.CursorStyleBlinkingBlock)
	}
	d.syncCursor()
	return prev, true
}

func (d *tcellDriver) syncCursor() {
	if d.cursor == CursorInvisible {
		d.screen.HideCursor()
		return
	}
	d.screen.ShowCursor(d.col, d.row)
}

func (d *tcellDriver) SetCharacterBreak(on bool) bool {
	d.charBreak = on
	return true
}

func (d *tcellDriver) SetEcho(on bool) bool {
	d.echo = on
	return true
}

func (d *tcellDriver) SetKeypad(on bool) bool {
	d.keypad = on
	return true
}

func (d *tcellDriver) SetScroll(on bool) bool {
	d.scroll = on
	return true
}

func (d *tcellDriver) SetScrollRegion(top, bottom int) bool {
	rows, _ := d.Size()
	if top < 0 || bottom >= rows || top >= bottom {
		return false
	}
	d.top, d.bottom = top, bottom
	return true
}

func (d *tcellDriver) Size() (int, int) {
	w, h := d.screen.Size()
	return h, w
}

func (d *tcellDriver) Move(row, col int) bool {
	rows, cols := d.Size()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return false
	}
	d.row, d.col = row, col
	d.syncCursor()
	return true
}

func (d *tcellDriver) Cursor() (int, int) {
	return d.row, d.col
}

// Print writes s one grapheme cluster at a time, wrapping at the right edge.
// Writing past the last line fails unless scrolling is enabled.
func (d *tcellDriver) Print(s string) bool {
	ok := true
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !d.put(cluster, width) {
			ok = false
			break
		}
	}
	d.syncCursor()
	return ok
}

func (d *tcellDriver) PrintChar(r rune) bool {
	ok := d.put(string(r), runewidth.RuneWidth(r))
	d.syncCursor()
	return ok
}

func (d *tcellDriver) put(cluster string, width int) bool {
	switch cluster {
	case "\n", "\r\n":
		d.clearToEOL()
		return d.newline()
	case "\r":
		d.col = 0
		return true
	case "\b":
		if d.col > 0 {
			d.col--
		}
		return true
	case "\t":
		for n := tabWidth - d.col%tabWidth; n > 0; n-- {
			if !d.put(" ", 1) {
				return false
			}
		}
		return true
	}

	// Stray combining marks and control characters occupy no cell
	if width <= 0 {
		return true
	}

	_, cols := d.Size()
	if width > cols {
		return false
	}
	if d.col+width > cols {
		if !d.newline() {
			return false
		}
	}

	runes := []rune(cluster)
	d.screen.SetContent(d.col, d.row, runes[0], runes[1:], d.style())
	d.col += width

	if d.col >= cols {
		if !d.newline() {
			d.col = cols - 1
			return false
		}
	}
	return true
}

func (d *tcellDriver) newline() bool {
	rows, _ := d.Size()
	if d.row == d.bottom {
		if !d.scroll {
			return false
		}
		d.scrollUp()
		d.col = 0
		return true
	}
	if d.row+1 >= rows {
		return false
	}
	d.row++
	d.col = 0
	return true
}

func (d *tcellDriver) scrollUp() {
	for y := d.top; y < d.bottom; y++ {
		d.copyRow(y, y+1)
	}
	d.blankRow(d.bottom)
}

func (d *tcellDriver) copyCell(dx, dy, sx, sy int) {
	mainc, comb, st, _ := d.screen.GetContent(sx, sy)
	d.screen.SetContent(dx, dy, mainc, comb, st)
}

func (d *tcellDriver) copyRow(dst, src int) {
	_, cols := d.Size()
	for x := 0; x < cols; x++ {
		d.copyCell(x, dst, x, src)
	}
}

func (d *tcellDriver) blank(x, y int) {
	d.screen.SetContent(x, y, ' ', nil, d.pairStyle())
}

func (d *tcellDriver) blankRow(y int) {
	_, cols := d.Size()
	for x := 0; x < cols; x++ {
		d.blank(x, y)
	}
}

func (d *tcellDriver) clearToEOL() {
	_, cols := d.Size()
	for x := d.col; x < cols; x++ {
		d.blank(x, d.row)
	}
}

// DeleteChar removes the cell under the cursor, shifting the rest of the
// line left and blanking the last column
func (d *tcellDriver) DeleteChar() bool {
	_, cols := d.Size()
	for x := d.col; x < cols-1; x++ {
		d.copyCell(x, d.row, x+1, d.row)
	}
	d.blank(cols-1, d.row)
	return true
}

// DeleteLine removes the cursor line, shifting lines below up and blanking
// the last line
func (d *tcellDriver) DeleteLine() bool {
	rows, _ := d.Size()
	for y := d.row; y < rows-1; y++ {
		d.copyRow(y, y+1)
	}
	d.blankRow(rows - 1)
	return true
}

func (d *tcellDriver) Clear() bool {
	d.screen.Fill(' ', d.pairStyle())
	d.row, d.col = 0, 0
	d.needSync = true
	d.syncCursor()
	return true
}

func (d *tcellDriver) Refresh() bool {
	d.syncCursor()
	if d.needSync {
		d.screen.Sync()
		d.needSync = false
	} else {
		d.screen.Show()
	}
	return true
}

// Beep rings the terminal bell, falling back to the synthesized tone when the
// terminal refuses or the tone is forced
func (d *tcellDriver) Beep() bool {
	forced := d.bell != nil && d.bell.Forced()
	if !forced {
		if err := d.screen.Beep(); err == nil {
			return true
		}
	}
	if d.bell != nil && d.bell.Enabled() {
		return d.bell.Ring() == nil
	}
	return false
}

// Flash inverts the whole screen for the configured duration
func (d *tcellDriver) Flash() bool {
	rows, cols := d.Size()
	saved := make([]tcell.Style, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mainc, comb, st, _ := d.screen.GetContent(x, y)
			saved = append(saved, st)
			_, _, attrs := st.Decompose()
			d.screen.SetContent(x, y, mainc, comb, st.Reverse(attrs&tcell.AttrReverse == 0))
		}
	}
	d.screen.Show()
	time.Sleep(d.flashDuration)

	i := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mainc, comb, _, _ := d.screen.GetContent(x, y)
			d.screen.SetContent(x, y, mainc, comb, saved[i])
			i++
		}
	}
	d.screen.Show()
	return true
}

// ReadInput returns pushed-back input first, then a completed cooked line,
// then new events according to the input mode
func (d *tcellDriver) ReadInput() (Input, bool) {
	if n := len(d.pushback); n > 0 {
		in := d.pushback[n-1]
		d.pushback = d.pushback[:n-1]
		return in, true
	}
	if in, ok := d.nextLine(); ok {
		return in, true
	}

	d.Refresh()

	var deadline time.Time
	if d.mode.wait == waitTimed {
		deadline = time.Now().Add(d.mode.timeout)
	}

	for {
		ev, ok := d.nextEvent(deadline)
		if !ok {
			return Input{}, false
		}
		in, ok := d.translate(ev)
		if !ok {
			continue
		}
		if d.charBreak || in.Kind != InputCharacter {
			d.echoInput(in)
			return in, true
		}
		if d.cook(in) {
			in, _ := d.nextLine()
			return in, true
		}
	}
}

func (d *tcellDriver) nextEvent(deadline time.Time) (tcell.Event, bool) {
	switch d.mode.wait {
	case waitNone:
		return d.pollPending()
	case waitTimed:
		return d.pollUntil(deadline)
	default:
		ev := d.screen.PollEvent()
		return ev, ev != nil
	}
}

func (d *tcellDriver) pollPending() (tcell.Event, bool) {
	if !d.screen.HasPendingEvent() {
		return nil, false
	}
	ev := d.screen.PollEvent()
	return ev, ev != nil
}

func (d *tcellDriver) pollUntil(deadline time.Time) (tcell.Event, bool) {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return d.pollPending()
	}

	if q, ok := d.screen.(eventQueuer); ok {
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		select {
		case ev := <-q.EventQ():
			return ev, ev != nil
		case <-timer.C:
			return nil, false
		}
	}

	for {
		if ev, ok := d.pollPending(); ok {
			return ev, true
		}
		remaining = time.Until(deadline)
		if remaining <= 0 {
			return nil, false
		}
		time.Sleep(min(pollInterval, remaining))
	}
}

func (d *tcellDriver) translate(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.translateKey(ev), true
	case *tcell.EventResize:
		rows, cols := d.Size()
		if rows == d.rows && cols == d.cols {
			return Input{}, false
		}
		// A full-height region follows the screen; a partial one is kept
		// unless it no longer fits
		fullHeight := d.top == 0 && d.bottom == d.rows-1
		d.rows, d.cols = rows, cols
		d.row = min(d.row, rows-1)
		d.col = min(d.col, cols-1)
		if fullHeight || d.bottom >= rows {
			d.top, d.bottom = 0, rows-1
		}
		d.needSync = true
		return Input{Kind: InputResize}, true
	default:
		return Input{}, false
	}
}

// translateKey reports control keys as their ASCII code and decodes special
// keys only in keypad mode
func (d *tcellDriver) translateKey(ev *tcell.EventKey) Input {
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return Character(ev.Rune())
	case k == tcell.KeyEnter:
		return Character('\n')
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		if d.keypad {
			return SpecialKey(KeyBackspace)
		}
		return Character(rune(k))
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		return Character(rune(k - tcell.KeyCtrlSpace))
	case k < tcell.KeyRune:
		return Character(rune(k))
	}

	if key, ok := tcellKeys[k]; ok && d.keypad {
		return SpecialKey(key)
	}
	return Input{Kind: InputUnknown, Code: int(k)}
}

func (d *tcellDriver) echoInput(in Input) {
	if !d.echo || in.Kind != InputCharacter {
		return
	}
	switch r := in.Rune; {
	case r == '\n' || r == '\r':
		d.put("\n", 0)
	case unicode.IsPrint(r):
		d.put(string(r), runewidth.RuneWidth(r))
	default:
		return
	}
	d.syncCursor()
}

// cook applies line editing and reports whether a line was completed
func (d *tcellDriver) cook(in Input) bool {
	switch r := in.Rune; {
	case r == '\n' || r == '\r':
		d.echoInput(Character('\n'))
		d.line = append(d.line, d.partial...)
		d.line = append(d.line, Character('\n'))
		d.partial = nil
		return true
	case r == '\b' || r == 0x7f:
		if n := len(d.partial); n > 0 {
			d.partial = d.partial[:n-1]
			if d.echo {
				d.put("\b", 0)
				d.blank(d.col, d.row)
				d.syncCursor()
			}
		}
		return false
	default:
		d.partial = append(d.partial, in)
		d.echoInput(in)
		return false
	}
}

func (d *tcellDriver) nextLine() (Input, bool) {
	if len(d.line) == 0 {
		return Input{}, false
	}
	in := d.line[0]
	d.line = d.line[1:]
	return in, true
}

func (d *tcellDriver) Unread(in Input) bool {
	d.pushback = append(d.pushback, in)
	return true
}

func (d *tcellDriver) FlushInput() bool {
	d.pushback = nil
	d.partial = nil
	d.line = nil
	for d.screen.HasPendingEvent() {
		if d.screen.PollEvent() == nil {
			break
		}
	}
	return true
}

func (d *tcellDriver) SetInputMode(m InputMode) {
	d.mode = m
}
