// Package autopilot steers the snake on its own: toward the apple, away from
// walls and from its own body.
package autopilot

import (
	"snake-arena/game"
	"snake-arena/game/types"
)

// View is the part of the game the pilot looks at
type View interface {
	Head() types.Point
	Apple() types.Point
	Pending() types.Direction
	IsDanger(p types.Point) bool
}

var directionKeys = map[types.Direction]types.Key{
	types.UP:    types.KeyUp,
	types.DOWN:  types.KeyDown,
	types.LEFT:  types.KeyLeft,
	types.RIGHT: types.KeyRight,
}

type Pilot struct{}

func New() *Pilot {
	return &Pilot{}
}

// Decide returns the key to press for the next tick. ok is false when every
// direction is deadly and there is nothing better to do than keep going.
func (p *Pilot) Decide(v View) (types.Key, bool) {
	head := v.Head()
	apple := v.Apple()
	current := v.Pending()

	best := types.NONE
	bestValue := 0.0
	for _, d := range candidates(current) {
		next := head.Add(d.ToPoint())
		if v.IsDanger(next) {
			continue
		}

		value := 0.0
		// Moving closer to the apple
		if manhattan(next, apple) < manhattan(head, apple) {
			value += 2
		}

		// Free cells around the candidate, so the pilot avoids dead ends
		exits := 0
		for _, e := range types.Cardinal {
			around := next.Add(e.ToPoint())
			if !v.IsDanger(around) {
				exits++
			}
		}
		if exits == 0 {
			value -= 10
		} else {
			value += 0.1 * float64(exits)
		}

		if d == current {
			value += 0.05
		}

		if best == types.NONE || value > bestValue {
			best = d
			bestValue = value
		}
	}

	if best == types.NONE {
		return types.KeyOther, false
	}
	return directionKeys[best], true
}

// candidates lists the moves worth scoring: straight on, left and right of
// the current direction. Before the first move every direction is open.
func candidates(current types.Direction) []types.Direction {
	if current == types.NONE {
		return types.Cardinal[:]
	}
	return []types.Direction{current, current.TurnLeft(), current.TurnRight()}
}

// Source wraps a backend and appends the pilot's key press to every poll.
type Source struct {
	game.Backend
	pilot *Pilot
	view  View
}

func NewSource(b game.Backend, view View) *Source {
	return &Source{
		Backend: b,
		pilot:   New(),
		view:    view,
	}
}

func (s *Source) PollEvents() []game.Event {
	events := s.Backend.PollEvents()
	for _, ev := range events {
		if ev.Type == game.EventQuit || ev.Key == types.KeyQuit {
			return events
		}
	}
	if key, ok := s.pilot.Decide(s.view); ok {
		events = append(events, game.KeyEvent(key))
	}
	return events
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
