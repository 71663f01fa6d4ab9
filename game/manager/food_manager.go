package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// MaxPlacementAttempts bounds the random resampling before falling back to a scan
const MaxPlacementAttempts = 10000

// ErrArenaFull is returned when no free position is left for an apple
var ErrArenaFull = errors.New("no free position left for the apple")

type FoodManager struct {
	area types.Rect // Inclusive spawn rectangle, inset from the arena edges
	rng  *rand.Rand
}

func NewFoodManager(area types.Rect, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		area: area,
		rng:  rng,
	}
}

// GenerateFood picks a uniformly random position inside the spawn area that
// is not on the snake.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	w := fm.area.Max.X - fm.area.Min.X + 1
	h := fm.area.Max.Y - fm.area.Min.Y + 1
	if w <= 0 || h <= 0 {
		return types.Point{}, ErrArenaFull
	}

	for attempts := 0; attempts < MaxPlacementAttempts; attempts++ {
		food := types.Point{
			X: fm.area.Min.X + fm.rng.Intn(w),
			Y: fm.area.Min.Y + fm.rng.Intn(h),
		}
		if !snake.Occupies(food) {
			return food, nil
		}
	}

	// Random sampling kept hitting the body; walk the area from a random
	// offset so a free cell is still found when one exists.
	total := w * h
	start := fm.rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		food := types.Point{X: fm.area.Min.X + idx%w, Y: fm.area.Min.Y + idx/w}
		if !snake.Occupies(food) {
			return food, nil
		}
	}
	return types.Point{}, ErrArenaFull
}

func (fm *FoodManager) Area() types.Rect {
	return fm.area
}
