package manager

import (
	"log"
	"time"

	"grid-snake/game/store"
	"grid-snake/game/types"

	"github.com/google/uuid"
)

// GameRecord describes one finished game of the current session
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
}

// StateManager owns the score, the persisted high score and the in-memory
// history of games played this session.
type StateManager struct {
	store     store.Store
	sessionID string
	score     int
	highScore int
	current   GameRecord
	history   []GameRecord
}

func NewStateManager(st store.Store) *StateManager {
	sm := &StateManager{
		store:     st,
		sessionID: uuid.NewString(),
		history:   make([]GameRecord, 0),
	}
	if v, ok := st.Get(types.HighScoreKey); ok && v > 0 {
		sm.highScore = v
	}
	return sm
}

// SetScore updates the score and, when it strictly beats the stored high
// score, persists the new high score.
func (sm *StateManager) SetScore(score int) {
	sm.score = score
	if score <= sm.highScore {
		return
	}
	sm.highScore = score
	if err := sm.store.Set(types.HighScoreKey, score); err != nil {
		log.Printf("Warning: could not save high score: %v", err)
	}
}

// BeginGame opens a new history record
func (sm *StateManager) BeginGame(now time.Time) {
	sm.current = GameRecord{
		ID:        uuid.NewString(),
		StartTime: now,
	}
}

// EndGame closes the open record with the current score. Calling it twice
// for the same game records it once.
func (sm *StateManager) EndGame(now time.Time) {
	if sm.current.ID == "" {
		return
	}
	sm.current.EndTime = now
	sm.current.Score = sm.score
	sm.history = append(sm.history, sm.current)
	sm.current = GameRecord{}
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// GameID is the ID of the game in progress, empty between games
func (sm *StateManager) GameID() string {
	return sm.current.ID
}

func (sm *StateManager) GetHistory() []GameRecord {
	history := make([]GameRecord, len(sm.history))
	copy(history, sm.history)
	return history
}

// SessionBest returns the best finished score of this session
func (sm *StateManager) SessionBest() int {
	best := 0
	for _, r := range sm.history {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}
