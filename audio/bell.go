// Package audio synthesizes the audible bell used when a terminal cannot ring its own.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/easyterm/config"
)

// ErrBellDisabled is returned by Ring when the audible fallback is off
var ErrBellDisabled = errors.New("audible bell disabled")

const (
	speakerBuffer = 100 * time.Millisecond
	toneEdge      = 5 * time.Millisecond
)

// Bell plays a short sine tone through the speaker. The speaker is
// initialized on first use and reused afterwards.
type Bell struct {
	mu    sync.Mutex
	cfg   config.Bell
	ready bool

	// Swapped in tests to avoid opening an audio device
	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewBell creates a bell from configuration
func NewBell(cfg config.Bell) *Bell {
	return &Bell{
		cfg:         cfg,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Enabled reports whether Ring will attempt to play
func (b *Bell) Enabled() bool {
	return b != nil && b.cfg.Audible
}

// Forced reports whether the tone replaces the terminal bell unconditionally
func (b *Bell) Forced() bool {
	return b.Enabled() && b.cfg.Force
}

// Ring plays the bell tone without waiting for it to finish
func (b *Bell) Ring() error {
	if !b.Enabled() {
		return ErrBellDisabled
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rate := beep.SampleRate(b.cfg.SampleRate)
	if !b.ready {
		if err := b.initSpeaker(rate, rate.N(speakerBuffer)); err != nil {
			return fmt.Errorf("audio bell: %w", err)
		}
		b.ready = true
	}

	b.play(b.tone(rate))
	return nil
}

func (b *Bell) tone(rate beep.SampleRate) beep.Streamer {
	osc := newSine(b.cfg.Frequency, b.cfg.Duration, rate)
	return newVolume(newFade(osc, b.cfg.Duration, toneEdge, rate), b.cfg.Volume)
}
