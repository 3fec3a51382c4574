package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// State is what the agent sees of the board
type State struct {
	FoodDir [2]int  // Sign of the shortest wrapped offset to the food (x, y)
	Danger  [4]bool // Body ahead in each of types.Directions
}

func (s State) key() string {
	return fmt.Sprintf("%d,%d|%d%d%d%d", s.FoodDir[0], s.FoodDir[1],
		boolToInt(s.Danger[0]), boolToInt(s.Danger[1]),
		boolToInt(s.Danger[2]), boolToInt(s.Danger[3]))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// QTable maps a state key to the value of each direction
type QTable map[string]map[types.Direction]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	rng          *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.05,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// GetAction picks a direction epsilon-greedily. The reverse of current is
// never offered since the game would reject it anyway.
func (q *QLearning) GetAction(state State, current types.Direction) types.Direction {
	candidates := make([]types.Direction, 0, 4)
	for _, d := range types.Directions {
		if current != types.None && d == current.Opposite() {
			continue
		}
		candidates = append(candidates, d)
	}

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return candidates[q.rng.Intn(len(candidates))]
	}

	// Exploitation: best known action, ties broken in favour of current
	values := q.values(state)
	best := candidates[0]
	bestValue := math.Inf(-1)
	for _, d := range candidates {
		v := values[d]
		if v > bestValue || (v == bestValue && d == current) {
			best = d
			bestValue = v
		}
	}
	return best
}

func (q *QLearning) values(state State) map[types.Direction]float64 {
	k := state.key()
	if _, ok := q.QTable[k]; !ok {
		q.QTable[k] = make(map[types.Direction]float64, 4)
		for _, d := range types.Directions {
			q.QTable[k][d] = 0
		}
	}
	return q.QTable[k]
}

// Update applies one Q-learning step. A nil next marks a terminal transition.
func (q *QLearning) Update(state State, action types.Direction, reward float64, next *State) {
	target := reward
	if next != nil {
		maxNextQ := math.Inf(-1)
		for _, v := range q.values(*next) {
			if v > maxNextQ {
				maxNextQ = v
			}
		}
		target += q.Discount * maxNextQ
	}

	values := q.values(state)
	values[action] += q.LearningRate * (target - values[action])
	q.TotalReward += reward
}

// Value returns the learnt value of taking action in state
func (q *QLearning) Value(state State, action types.Direction) float64 {
	return q.values(state)[action]
}

// SaveQTable writes the table as JSON, creating parent directories
func (q *QLearning) SaveQTable(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(q.QTable, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadQTable replaces the table with the one stored in filename
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decode q-table %s: %w", filename, err)
	}
	q.QTable = table
	return nil
}
