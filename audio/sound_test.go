package audio

import (
	"testing"
	"time"

	"grid-snake/game"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   game.Event
		want Cue
		ok   bool
	}{
		{"ate", game.Event{Type: game.EventAte}, EatCue, true},
		{"game over", game.Event{Type: game.EventStateChanged, State: game.GameOver}, GameOverCue, true},
		{"paused", game.Event{Type: game.EventStateChanged, State: game.Paused}, PauseCue, true},
		{"resumed", game.Event{Type: game.EventStateChanged, State: game.Running}, Cue{}, false},
		{"tick", game.Event{Type: game.EventTick}, Cue{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CueFor = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestToneLength(t *testing.T) {
	cue := Cue{Freq: 440, Duration: 50 * time.Millisecond}
	s, err := Tone(cue)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(cue.Duration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestToneRejectsFrequencyAboveNyquist(t *testing.T) {
	if _, err := Tone(Cue{Freq: 30000, Duration: time.Millisecond}); err == nil {
		t.Error("expected an error")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Listen(game.Event{Type: game.EventAte})
	p.Close()
}
