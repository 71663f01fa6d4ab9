package entity

import (
	"snake-arena/game/types"
)

// Snake is the body chain. Body[0] is the tail, the last element is the head.
type Snake struct {
	Body         []types.Point
	TargetLength int // Length the body is growing toward
	occupied     map[types.Point]struct{}
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		TargetLength: 1,
		occupied:     map[types.Point]struct{}{startPos: {}},
	}
}

// NewSnakeWithBody builds a snake already at its target length, tail first
func NewSnakeWithBody(body ...types.Point) *Snake {
	s := &Snake{
		Body:         make([]types.Point, 0, len(body)),
		TargetLength: len(body),
		occupied:     make(map[types.Point]struct{}, len(body)),
	}
	for _, p := range body {
		s.Body = append(s.Body, p)
		s.occupied[p] = struct{}{}
	}
	return s
}

// Move appends newHead. When the body is already at its target length the
// tail is dropped first and returned with ok set.
func (s *Snake) Move(newHead types.Point) (tail types.Point, ok bool) {
	if len(s.Body) >= s.TargetLength {
		tail, ok = s.RemoveTail()
	}
	s.Body = append(s.Body, newHead)
	s.occupied[newHead] = struct{}{}
	return tail, ok
}

func (s *Snake) RemoveTail() (types.Point, bool) {
	if len(s.Body) == 0 {
		return types.Point{}, false
	}
	tail := s.Body[0]
	delete(s.occupied, tail)
	s.Body = s.Body[1:]
	return tail, true
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

// Grow raises the target length; the body catches up one segment per move
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.TargetLength += n
	}
}

// Occupies reports whether p is one of the body segments
func (s *Snake) Occupies(p types.Point) bool {
	_, ok := s.occupied[p]
	return ok
}

func (s *Snake) Len() int {
	return len(s.Body)
}
