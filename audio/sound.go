// Package audio plays short tones for game events.
package audio

import (
	"time"

	"grid-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a single tone
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatCue      = Cue{Freq: 880, Duration: 60 * time.Millisecond}
	GameOverCue = Cue{Freq: 220, Duration: 300 * time.Millisecond}
	PauseCue    = Cue{Freq: 440, Duration: 40 * time.Millisecond}
)

// CueFor maps a game event to the tone it should play, if any
func CueFor(ev game.Event) (Cue, bool) {
	switch ev.Type {
	case game.EventAte:
		return EatCue, true
	case game.EventStateChanged:
		switch ev.State {
		case game.GameOver:
			return GameOverCue, true
		case game.Paused:
			return PauseCue, true
		}
	}
	return Cue{}, false
}

// Tone returns a sine wave of the cue's frequency and length
func Tone(c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(c.Duration), sine), nil
}

// Player turns game events into sound. Without a working speaker it stays
// silent and the game runs as usual.
type Player struct {
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker
func (p *Player) Init() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// Listen is a game.Listener
func (p *Player) Listen(ev game.Event) {
	if !p.initialized {
		return
	}
	cue, ok := CueFor(ev)
	if !ok {
		return
	}
	tone, err := Tone(cue)
	if err != nil {
		return
	}
	speaker.Play(tone)
}
