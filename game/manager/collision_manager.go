package manager

import (
	"grid-snake/game/entity"
)

// CollisionType represents what the head ran into after a move
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	FoodCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	default:
		return "none"
	}
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Check classifies the snake's position after its latest move. Running into
// itself wins over eating: the game is over either way.
func (cm *CollisionManager) Check(snake *entity.Snake, food *entity.Food) CollisionType {
	if snake.HasSelfCollision() {
		return SelfCollision
	}
	if food.IsEatenBy(snake) {
		return FoodCollision
	}
	return NoCollision
}
