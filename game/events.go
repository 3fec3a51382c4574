package game

// EventType identifies what happened inside the game
type EventType int

const (
	EventTick         EventType = iota // A tick moved the snake
	EventAte                           // The snake ate food on this tick
	EventStateChanged                  // Running, Paused or GameOver was entered
	EventRestart                       // A fresh game started
)

func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventAte:
		return "ate"
	case EventStateChanged:
		return "state"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to every listener
type Event struct {
	Type      EventType
	State     State
	Score     int
	HighScore int
}

// Listener receives game events on the goroutine that drives the game.
// A listener may read the game but must not change it.
type Listener func(Event)

// Subscribe registers l for all future events
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) emit(t EventType) {
	if len(g.listeners) == 0 {
		return
	}
	ev := Event{
		Type:      t,
		State:     g.state,
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
	}
	for _, l := range g.listeners {
		l(ev)
	}
}
