package types

// Arena dimensions and movement quantum, in arena units (pixels on the window backend)
const (
	ArenaWidth  = 800
	ArenaHeight = 800
	Step        = 20 // Distance covered by the head on every tick
)

// Point is a position on the arena grid
type Point struct {
	X, Y int
}

// Add returns p displaced by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Center returns the middle of the grid
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Rect is an inclusive rectangle: Min and Max both belong to it
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Direction is one of the four axis-aligned moves, or NONE
type Direction int

const (
	NONE  Direction = iota // No movement yet
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction to a displacement of one Step
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -Step}
	case RIGHT:
		return Point{X: Step, Y: 0}
	case DOWN:
		return Point{X: 0, Y: Step}
	case LEFT:
		return Point{X: -Step, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

// TurnLeft returns the direction after a left turn from d
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the direction after a right turn from d
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// Cardinal lists the four movement directions in clockwise order
var Cardinal = [4]Direction{UP, RIGHT, DOWN, LEFT}

// Color is a backend-neutral RGB color
type Color struct {
	R, G, B uint8
}

var (
	Background = Color{R: 38, G: 82, B: 99}
	White      = Color{R: 255, G: 255, B: 255}
	Red        = Color{R: 230, G: 41, B: 55}
	Black      = Color{R: 0, G: 0, B: 0}
)

// Key is a backend-neutral key code
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// KeyDirections maps the arrow keys to movement directions
var KeyDirections = map[Key]Direction{
	KeyUp:    UP,
	KeyDown:  DOWN,
	KeyLeft:  LEFT,
	KeyRight: RIGHT,
}
