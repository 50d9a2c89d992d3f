package manager

import (
	"golang.org/x/exp/rand"

	"neon-snake/game/entity"
	"neon-snake/game/types"
)

// MaxSpawnAttempts bounds the validated spawn loop on a crowded board
const MaxSpawnAttempts = 1000

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	avoidSnake   bool
	food         types.Cell
}

// NewFoodManager places the first food. With avoidSnake unset food may land on
// the snake, which is how the game has always played.
func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager, avoidSnake bool, snake *entity.Snake) *FoodManager {
	fm := &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		avoidSnake:   avoidSnake,
	}
	fm.Relocate(snake)
	return fm
}

func (fm *FoodManager) Food() types.Cell {
	return fm.food
}

// Place puts the food on a specific cell
func (fm *FoodManager) Place(c types.Cell) {
	fm.food = c
}

func (fm *FoodManager) IsEaten(head types.Cell) bool {
	return fm.collisionMgr.IsFoodCollision(head, fm.food)
}

// Relocate moves the food to a new random aligned cell and returns it
func (fm *FoodManager) Relocate(snake *entity.Snake) types.Cell {
	fm.food = fm.GenerateFood(snake)
	return fm.food
}

func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Cell {
	if !fm.avoidSnake || snake == nil || snake.Len() >= fm.grid.CellCount() {
		return fm.grid.RandomCell(fm.rng)
	}

	for i := 0; i < MaxSpawnAttempts; i++ {
		food := fm.grid.RandomCell(fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}

	// Crowded board: scan for the first free cell
	for y := 0; y < fm.grid.Rows(); y++ {
		for x := 0; x < fm.grid.Cols(); x++ {
			c := types.Cell{X: x * fm.grid.CellSize, Y: y * fm.grid.CellSize}
			if fm.collisionMgr.ValidateSpawnPosition(c, snake) {
				return c
			}
		}
	}
	return fm.grid.RandomCell(fm.rng)
}
