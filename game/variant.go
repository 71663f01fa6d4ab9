package game

import (
	"fmt"

	"snake-arena/game/types"
)

// Shape is how segments and apples are drawn
type Shape int

const (
	Circle Shape = iota
	Square
)

func (s Shape) String() string {
	if s == Square {
		return "square"
	}
	return "circle"
}

// Variant holds everything that differs between the two game flavours.
// The rules themselves are shared.
type Variant struct {
	Name          string
	Shape         Shape
	Size          int        // Radius for circles, side for squares
	Bounds        types.Rect // Inclusive head bounds
	SpawnArea     types.Rect // Inclusive apple spawn rectangle
	EatThreshold  float64    // Head-apple distance below which the apple is eaten
	Growth        int        // Target length added per apple
	ScoreOverlay  bool
	SnakeColor    types.Color
	AppleColor    types.Color
	OverlayFG     types.Color
	OverlayBG     types.Color
	OverlayAnchor types.Point
	BlockReversal bool // Ignore keys pointing straight back; off in both variants
}

const (
	circleRadius = 20
	squareSide   = 20

	DefaultSquaresGrowth = 5
)

// Classic draws circles, grows by one and has no overlay.
func Classic() Variant {
	return Variant{
		Name:  "classic",
		Shape: Circle,
		Size:  circleRadius,
		Bounds: types.Rect{
			Min: types.Point{X: 0, Y: 0},
			Max: types.Point{X: types.ArenaWidth, Y: types.ArenaHeight},
		},
		SpawnArea: types.Rect{
			Min: types.Point{X: 10, Y: 10},
			Max: types.Point{X: types.ArenaWidth, Y: types.ArenaHeight},
		},
		EatThreshold: circleRadius + circleRadius/5,
		Growth:       1,
		SnakeColor:   types.White,
		AppleColor:   types.Red,
	}
}

// Squares draws squares, shows the score and grows by growth per apple.
func Squares(growth int) Variant {
	return Variant{
		Name:  "squares",
		Shape: Square,
		Size:  squareSide,
		Bounds: types.Rect{
			Min: types.Point{X: 2, Y: 2},
			Max: types.Point{X: types.ArenaWidth - 2, Y: types.ArenaHeight - 2},
		},
		SpawnArea: types.Rect{
			Min: types.Point{X: 100, Y: 100},
			Max: types.Point{X: types.ArenaWidth - 100, Y: types.ArenaHeight - 100},
		},
		EatThreshold:  squareSide,
		Growth:        growth,
		ScoreOverlay:  true,
		SnakeColor:    types.White,
		AppleColor:    types.Red,
		OverlayFG:     types.White,
		OverlayBG:     types.Black,
		OverlayAnchor: types.Point{X: 10, Y: 10},
	}
}

// VariantByName resolves a variant from its configuration name
func VariantByName(name string, growth int) (Variant, error) {
	switch name {
	case "classic":
		return Classic(), nil
	case "squares":
		if growth <= 0 {
			growth = DefaultSquaresGrowth
		}
		return Squares(growth), nil
	default:
		return Variant{}, fmt.Errorf("unknown variant %q", name)
	}
}
