package game

import "time"

// tickTimer is the game's only repeating timer. It is polled from the frame
// loop instead of firing callbacks, so ticks and rendering share a goroutine.
// Starting it again replaces the previous schedule.
type tickTimer struct {
	active bool
	period time.Duration
	next   time.Time
}

func (t *tickTimer) start(now time.Time, period time.Duration) {
	t.active = true
	t.period = period
	t.next = now.Add(period)
}

func (t *tickTimer) stop() {
	t.active = false
}

func (t *tickTimer) due(now time.Time) bool {
	return t.active && !now.Before(t.next)
}

// fire schedules the next tick one period after now. Frames that arrive late
// do not queue up catch-up ticks.
func (t *tickTimer) fire(now time.Time) {
	t.next = now.Add(t.period)
}
