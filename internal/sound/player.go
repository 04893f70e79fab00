// Package sound plays the dial's tick feedback through the system speaker.
package sound

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player plays clicks. The zero value is a muted player.
type Player struct {
	rate    beep.SampleRate
	enabled bool
	log     *slog.Logger
}

// NewPlayer initialises the speaker. If no audio device is available the
// returned player is muted and the error is logged, never returned.
func NewPlayer(log *slog.Logger) *Player {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Player{rate: SampleRate, log: log}
	if err := p.init(); err != nil {
		log.Warn("audio disabled", "err", err)
		return p
	}
	p.enabled = true
	return p
}

func (p *Player) init() (err error) {
	// Some oto backends panic instead of returning an error when no device exists.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("speaker init: %v", r)
		}
	}()
	return speaker.Init(p.rate, p.rate.N(time.Second/20))
}

// Enabled reports whether clicks are audible.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Click plays one tick without blocking.
func (p *Player) Click() {
	if !p.Enabled() {
		return
	}
	speaker.Play(Click(p.rate))
}

// Close stops playback.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.enabled = false
}
