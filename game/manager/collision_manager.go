package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall-collision"
	case SelfCollision:
		return "self-collision"
	default:
		return "none"
	}
}

type CollisionManager struct {
	bounds types.Rect
}

// NewCollisionManager builds a manager for the given inclusive movement bounds
func NewCollisionManager(bounds types.Rect) *CollisionManager {
	return &CollisionManager{
		bounds: bounds,
	}
}

// CheckCollision tells whether the snake may move its head to pos.
// The whole body counts, including the tail segment that would be dropped
// by the same move.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.bounds.Contains(pos)
}

// IsDanger reports whether moving to pos would end the run
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) != NoCollision
}

func (cm *CollisionManager) Bounds() types.Rect {
	return cm.bounds
}
