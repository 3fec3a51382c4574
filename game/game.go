package game

import (
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/store"
	"grid-snake/game/types"
)

// State is the phase of the tick driver
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots carry the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Origin is where the snake starts and restarts
var Origin = types.Point{X: 0, Y: 0}

// Game is the tick driver. It is not safe for concurrent use: the frontend's
// main loop owns it and calls Advance once per frame.
type Game struct {
	Grid types.Grid

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	direction types.Direction
	speed     time.Duration
	state     State
	timer     tickTimer
	ticks     uint64

	now       func() time.Time
	rng       entity.Source
	listeners []Listener
}

// Option customises a Game at construction
type Option func(*Game)

// WithClock replaces time.Now as the game's time source
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithRand replaces the seeded food source
func WithRand(rng entity.Source) Option {
	return func(g *Game) { g.rng = rng }
}

// New builds a game in the Running state with the timer not yet started.
// The high score is read from st.
func New(cfg Config, st store.Store, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Grid:         cfg.Grid(),
		collisionMgr: manager.NewCollisionManager(),
		stateMgr:     manager.NewStateManager(st),
		direction:    types.Right,
		speed:        cfg.Speed,
		state:        Running,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = manager.NewRand(cfg.Seed)
	}

	g.snake = entity.NewSnake(g.Grid, Origin)
	g.foodMgr = manager.NewFoodManager(g.Grid, g.rng)
	g.stateMgr.BeginGame(g.now())
	g.stateMgr.SetScore(0)

	return g, nil
}

// Start begins ticking at the current speed
func (g *Game) Start() {
	if g.state != Running {
		return
	}
	g.timer.start(g.now(), g.speed)
}

// Advance runs one tick if the timer is due. It returns whether a tick ran.
func (g *Game) Advance() bool {
	now := g.now()
	if !g.timer.due(now) {
		return false
	}
	g.timer.fire(now)
	g.Tick()
	return true
}

// Tick moves the snake one cell in the current direction, then resolves
// collisions. It does nothing unless the game is running.
func (g *Game) Tick() {
	if g.state != Running {
		return
	}

	g.ticks++
	g.snake.MoveDirection(g.direction)

	switch g.collisionMgr.Check(g.snake, g.foodMgr.GetFood()) {
	case manager.SelfCollision:
		g.gameOver()
		return
	case manager.FoodCollision:
		g.stateMgr.SetScore(g.stateMgr.GetScore() + 1)
		g.snake.Grow()
		g.foodMgr.Respawn()
		g.emit(EventAte)
	}

	g.emit(EventTick)
}

func (g *Game) gameOver() {
	g.timer.stop()
	g.state = GameOver
	g.stateMgr.EndGame(g.now())
	g.emit(EventStateChanged)
}

// ChangeDirection stores dir for the next tick. The exact reverse of the
// stored direction is rejected, as is any change once the game is over.
func (g *Game) ChangeDirection(dir types.Direction) bool {
	if g.state == GameOver || dir == types.None {
		return false
	}
	if dir == g.direction.Opposite() {
		return false
	}
	g.direction = dir
	return true
}

// Pause stops ticking. Only a running game can be paused.
func (g *Game) Pause() bool {
	if g.state != Running {
		return false
	}
	g.timer.stop()
	g.state = Paused
	g.emit(EventStateChanged)
	return true
}

// Resume restarts ticking at the current speed after a pause
func (g *Game) Resume() bool {
	if g.state != Paused {
		return false
	}
	g.state = Running
	g.timer.start(g.now(), g.speed)
	g.emit(EventStateChanged)
	return true
}

// TogglePause flips between Running and Paused. It is ignored after game over.
func (g *Game) TogglePause() {
	if g.state == Paused {
		g.Resume()
		return
	}
	g.Pause()
}

// Restart puts every piece of session state back to its initial value and
// starts a fresh timer. The high score is kept.
func (g *Game) Restart() {
	now := g.now()
	g.timer.stop()
	g.stateMgr.EndGame(now)

	g.snake.Reset(Origin)
	g.foodMgr.Respawn()
	g.direction = types.Right
	g.speed = types.DefaultSpeed
	g.stateMgr.SetScore(0)
	g.stateMgr.BeginGame(now)

	g.state = Running
	g.timer.start(now, g.speed)
	g.emit(EventRestart)
	g.emit(EventStateChanged)
}

// SetSpeed changes the tick period, clamped to [MinSpeed, MaxSpeed]. A
// running timer is replaced by one at the new period; a stopped one stays
// stopped.
func (g *Game) SetSpeed(d time.Duration) {
	if d < types.MinSpeed {
		d = types.MinSpeed
	}
	if d > types.MaxSpeed {
		d = types.MaxSpeed
	}
	g.speed = d
	if g.timer.active {
		g.timer.stop()
		g.timer.start(g.now(), g.speed)
	}
}

func (g *Game) ResetSpeed() {
	g.SetSpeed(types.DefaultSpeed)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.Position()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Direction() types.Direction { return g.direction }
func (g *Game) Speed() time.Duration       { return g.speed }
func (g *Game) State() State               { return g.state }
func (g *Game) Score() int                 { return g.stateMgr.GetScore() }
func (g *Game) HighScore() int             { return g.stateMgr.GetHighScore() }

// Ticks counts the ticks processed since the game was created
func (g *Game) Ticks() uint64 { return g.ticks }

// TimerActive reports whether the tick timer is scheduled
func (g *Game) TimerActive() bool { return g.timer.active }
