package terminal

import (
	"fmt"
	"time"
)

// InputKind classifies an Input
type InputKind uint8

const (
	InputCharacter InputKind = iota // Rune holds the character, control codes included
	InputKey                        // Key holds a decoded special key
	InputResize                     // The terminal was resized
	InputUnknown                    // Code holds the undecoded driver key code
)

// Key represents a decoded special key, reported only while keypad mode is on
type Key uint16

const (
	KeyNone Key = iota

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyBacktab

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyBacktab:   "backtab",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// Input is a single value read from the input queue
type Input struct {
	Kind InputKind
	Rune rune
	Key  Key
	Code int
}

// Character returns a character input
func Character(r rune) Input {
	return Input{Kind: InputCharacter, Rune: r}
}

// SpecialKey returns a decoded key input
func SpecialKey(k Key) Input {
	return Input{Kind: InputKey, Key: k}
}

func (in Input) String() string {
	switch in.Kind {
	case InputCharacter:
		return fmt.Sprintf("Character(%q)", in.Rune)
	case InputKey:
		return fmt.Sprintf("Key(%s)", in.Key)
	case InputResize:
		return "Resize"
	default:
		return fmt.Sprintf("Unknown(%d)", in.Code)
	}
}

type inputWait uint8

const (
	waitBlocking inputWait = iota
	waitNone
	waitTimed
)

// InputMode controls how long ReadInput waits. The zero value blocks.
type InputMode struct {
	wait    inputWait
	timeout time.Duration
}

// Blocking waits until input arrives
func Blocking() InputMode {
	return InputMode{wait: waitBlocking}
}

// NonBlocking returns immediately when no input is queued
func NonBlocking() InputMode {
	return InputMode{wait: waitNone}
}

// Timeout waits at most d. d <= 0 is NonBlocking.
func Timeout(d time.Duration) InputMode {
	if d <= 0 {
		return NonBlocking()
	}
	return InputMode{wait: waitTimed, timeout: d}
}

// InputModeFromDuration uses the curses convention: negative blocks, zero
// never waits, positive waits at most d
func InputModeFromDuration(d time.Duration) InputMode {
	if d < 0 {
		return Blocking()
	}
	return Timeout(d)
}

func (m InputMode) String() string {
	switch m.wait {
	case waitNone:
		return "non-blocking"
	case waitTimed:
		return "timeout " + m.timeout.String()
	default:
		return "blocking"
	}
}
