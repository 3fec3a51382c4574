package manager

import (
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// NewRand returns a food source seeded with seed, or with the clock when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

type FoodManager struct {
	grid types.Grid
	food *entity.Food
	rng  entity.Source
}

func NewFoodManager(grid types.Grid, rng entity.Source) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		food: entity.NewFood(types.Point{}),
		rng:  rng,
	}
	fm.Respawn()
	return fm
}

// Respawn moves the food to a fresh random cell. The snake body is not
// avoided, so food can appear underneath it.
func (fm *FoodManager) Respawn() {
	fm.food.Randomize(fm.grid, fm.rng)
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}

func (fm *FoodManager) Position() types.Point {
	return fm.food.Position
}
