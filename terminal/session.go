package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/easyterm/audio"
	"github.com/lixenwraith/easyterm/config"
	"github.com/lixenwraith/easyterm/logging"
)

var (
	// ErrSessionActive is returned by Initialize while another Session is live
	ErrSessionActive = errors.New("terminal session already active")
	// ErrNotTerminal is returned when stdin is not a terminal and a tty is required
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// active guards the process-wide driver
var active atomic.Bool

type sessionState uint8

const (
	stateUninitialized sessionState = iota
	stateActive
	stateTornDown
)

func (s sessionState) String() string {
	switch s {
	case stateActive:
		return "active"
	case stateTornDown:
		return "torn-down"
	default:
		return "uninitialized"
	}
}

// Session is the live terminal. Close restores the terminal exactly once;
// callers defer it immediately after Initialize, or use Run.
type Session struct {
	driver Driver
	log    *slog.Logger
	colors bool

	// Target for EmergencyReset when the driver's own teardown panics; nil for
	// injected drivers and screens that don't own the real terminal
	resetOut io.Writer

	mu    sync.Mutex
	state sessionState

	registered int
	skipped    int
}

// Option configures Initialize
type Option func(*options)

type options struct {
	cfg    config.Config
	driver Driver
	screen tcell.Screen
	logger *slog.Logger
}

// WithConfig replaces the default configuration
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithDriver uses d instead of a tcell driver
func WithDriver(d Driver) Option {
	return func(o *options) { o.driver = d }
}

// WithScreen drives the given tcell screen, e.g. a simulation screen
func WithScreen(s tcell.Screen) Option {
	return func(o *options) { o.screen = s }
}

// WithLogger overrides the logger built from configuration
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Initialize takes over the terminal. When colors are supported, color mode
// is started and all 64 pairs are registered before returning.
//
// Driver initialization failures are returned unmodified (wrapped). Pair
// registrations the driver rejects are logged and skipped.
func Initialize(opts ...Option) (*Session, error) {
	o := options{cfg: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	if !active.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	d, resetOut, err := o.newDriver()
	if err != nil {
		active.Store(false)
		return nil, err
	}
	if err := d.Init(); err != nil {
		active.Store(false)
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	s := &Session{
		driver:   d,
		log:      o.logger,
		resetOut: resetOut,
		state:    stateActive,
	}

	if d.HasColors() {
		if err := d.StartColor(); err != nil {
			s.log.Warn("color mode unavailable", "error", err)
		} else {
			s.colors = true
			s.registerPairs()
		}
	}
	d.SetInputMode(InputModeFromDuration(o.cfg.Input.Timeout))

	rows, cols := d.Size()
	s.log.Debug("session initialized",
		"rows", rows, "cols", cols,
		"colors", s.colors, "pairs", s.registered, "pairs_skipped", s.skipped)
	return s, nil
}

func (o *options) newDriver() (Driver, io.Writer, error) {
	if o.driver != nil {
		return o.driver, nil, nil
	}

	bell := audio.NewBell(o.cfg.Bell)
	if o.screen != nil {
		return newTcellDriver(o.screen, o.cfg.Terminal, bell), nil, nil
	}

	if o.cfg.Terminal.RequireTTY && !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("terminal screen: %w", err)
	}
	return newTcellDriver(screen, o.cfg.Terminal, bell), os.Stdout, nil
}

// registerPairs registers every encodable pair. Ids beyond the driver's slot
// count are skipped; a failure is never fatal.
func (s *Session) registerPairs() {
	slots := s.driver.PairSlots()
	for _, p := range AllPairs() {
		id := p.ID()
		if int(id) >= slots {
			s.skipped++
			continue
		}
		if err := s.driver.InitPair(id, p.Fg, p.Bg); err != nil {
			s.skipped++
			s.log.Warn("color pair registration failed", "pair", id, "fg", p.Fg, "bg", p.Bg, "error", err)
			continue
		}
		s.registered++
	}
	if s.skipped > 0 {
		s.log.Warn("color pairs unavailable", "skipped", s.skipped, "slots", slots)
	}
}

// Close restores the terminal. Only the first call has any effect.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateActive {
		return
	}
	s.state = stateTornDown
	defer active.Store(false)

	// A driver that panics during teardown still gets a best-effort reset
	defer func() {
		if r := recover(); r != nil {
			if s.resetOut != nil {
				EmergencyReset(s.resetOut)
			}
			s.log.Error("terminal teardown panicked", "panic", r)
			panic(r)
		}
	}()

	s.driver.Fini()
	s.log.Debug("session closed")
}

// Active reports whether the session has not been closed
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateActive
}

// HasColors reports whether color mode was started
func (s *Session) HasColors() bool {
	return s.colors
}

// RegisteredPairs returns how many of the 64 pairs the driver accepted
func (s *Session) RegisteredPairs() int {
	return s.registered
}
