package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"
)

// CollisionType represents the kind of collision that ended a session
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the head position of a snake that has already advanced
func (cm *CollisionManager) CheckCollision(head types.Cell, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if snake.CollidesWithSelf(head) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.InBounds(pos)
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos, food types.Cell) bool {
	return pos == food
}
