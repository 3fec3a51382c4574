package ai

import (
	"grid-snake/game"
	"grid-snake/game/types"
)

// Rewards used to shape the autopilot's learning
const (
	RewardFood   = 1.0
	RewardDeath  = -1.0
	RewardCloser = 0.1
	RewardAway   = -0.15
)

// Driver is the slice of the game the autopilot needs
type Driver interface {
	Snapshot() game.Snapshot
	ChangeDirection(types.Direction) bool
	Restart()
}

// Autopilot steers a game through the same direction-change layer the
// keyboard uses, learning from each tick and restarting after game over.
type Autopilot struct {
	Agent *QLearning

	decided    bool
	lastTick   uint64
	lastGameID string
	lastState  State
	lastAction types.Direction
	lastScore  int
	lastDist   int
}

func NewAutopilot(agent *QLearning) *Autopilot {
	return &Autopilot{Agent: agent}
}

// Drive is called once per frame. It makes at most one decision per tick.
func (p *Autopilot) Drive(d Driver) {
	snap := d.Snapshot()

	switch snap.State {
	case game.Paused:
		return
	case game.GameOver:
		if p.decided {
			p.Agent.Update(p.lastState, p.lastAction, RewardDeath, nil)
			p.Agent.GamesPlayed++
			p.decided = false
		}
		d.Restart()
		return
	}

	if p.decided && snap.Tick == p.lastTick && snap.GameID == p.lastGameID {
		return
	}

	state := Observe(snap)
	dist := foodDistance(snap)

	if p.decided && snap.GameID == p.lastGameID {
		reward := RewardAway
		switch {
		case snap.Score > p.lastScore:
			reward = RewardFood
		case dist < p.lastDist:
			reward = RewardCloser
		}
		p.Agent.Update(p.lastState, p.lastAction, reward, &state)
	}

	action := p.Agent.GetAction(state, snap.Direction)
	if !d.ChangeDirection(action) {
		action = snap.Direction
	}

	p.decided = true
	p.lastTick = snap.Tick
	p.lastGameID = snap.GameID
	p.lastState = state
	p.lastAction = action
	p.lastScore = snap.Score
	p.lastDist = dist
}

// Observe reduces a snapshot to the agent's state
func Observe(snap game.Snapshot) State {
	head := snap.Head()
	dx, dy := wrappedOffset(head, snap.Food, snap.Grid)

	var s State
	s.FoodDir = [2]int{sign(dx), sign(dy)}

	// The tail leaves its cell on the next move, so only the rest of the body is in the way
	body := snap.Body
	if len(body) > 1 {
		body = body[1:]
	}
	for i, d := range types.Directions {
		ddx, ddy := d.Delta()
		next := snap.Grid.Wrap(head.Add(ddx*snap.Grid.CellSize, ddy*snap.Grid.CellSize))
		for _, part := range body {
			if part == next {
				s.Danger[i] = true
				break
			}
		}
	}
	return s
}

// wrappedOffset returns the shortest signed offset, in cells, from a to b on
// a grid whose edges wrap.
func wrappedOffset(a, b types.Point, g types.Grid) (int, int) {
	dx := (b.X - a.X) / g.CellSize
	dy := (b.Y - a.Y) / g.CellSize
	cols, rows := g.Columns(), g.Rows()

	if dx > cols/2 {
		dx -= cols
	} else if dx < -cols/2 {
		dx += cols
	}
	if dy > rows/2 {
		dy -= rows
	} else if dy < -rows/2 {
		dy += rows
	}
	return dx, dy
}

func foodDistance(snap game.Snapshot) int {
	dx, dy := wrappedOffset(snap.Head(), snap.Food, snap.Grid)
	return abs(dx) + abs(dy)
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
