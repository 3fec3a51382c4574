package game

import (
	"time"

	"grid-snake/game/types"
)

// Snapshot is an immutable copy of everything a renderer or observer needs
type Snapshot struct {
	SessionID string          `json:"session"`
	GameID    string          `json:"game,omitempty"`
	Tick      uint64          `json:"tick"`
	State     State           `json:"state"`
	Direction types.Direction `json:"direction"`
	SpeedMS   int64           `json:"speedMs"`
	Score     int             `json:"score"`
	HighScore int             `json:"highScore"`
	Games     int             `json:"games"`
	Best      int             `json:"sessionBest"`
	Grid      types.Grid      `json:"grid"`
	Body      []types.Point   `json:"body"`
	Food      types.Point     `json:"food"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID: g.stateMgr.SessionID(),
		GameID:    g.stateMgr.GameID(),
		Tick:      g.ticks,
		State:     g.state,
		Direction: g.direction,
		SpeedMS:   g.speed.Milliseconds(),
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
		Games:     len(g.stateMgr.GetHistory()),
		Best:      g.stateMgr.SessionBest(),
		Grid:      g.Grid,
		Body:      g.snake.Body(),
		Food:      g.foodMgr.Position(),
	}
}

// Head returns the last body cell
func (s Snapshot) Head() types.Point {
	return s.Body[len(s.Body)-1]
}

// Speed returns the tick period
func (s Snapshot) Speed() time.Duration {
	return time.Duration(s.SpeedMS) * time.Millisecond
}
