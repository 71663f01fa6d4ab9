package entity

import (
	"testing"

	"snake-arena/game/types"
)

func TestNewSnake(t *testing.T) {
	start := types.Point{X: 400, Y: 400}
	s := NewSnake(start)

	if s.Len() != 1 || s.GetHead() != start {
		t.Fatalf("unexpected body %v", s.Body)
	}
	if s.TargetLength != 1 {
		t.Fatalf("expected target 1, got %d", s.TargetLength)
	}
	if !s.Occupies(start) {
		t.Fatalf("start position should be occupied")
	}
}

func TestMoveAtTargetDropsTail(t *testing.T) {
	s := NewSnakeWithBody(types.Point{X: 0, Y: 0}, types.Point{X: 20, Y: 0})

	tail, ok := s.Move(types.Point{X: 40, Y: 0})
	if !ok || tail != (types.Point{X: 0, Y: 0}) {
		t.Fatalf("expected tail (0,0) dropped, got %v %t", tail, ok)
	}
	if s.Len() != 2 || s.GetHead() != (types.Point{X: 40, Y: 0}) {
		t.Fatalf("unexpected body %v", s.Body)
	}
	if s.Occupies(types.Point{X: 0, Y: 0}) {
		t.Fatalf("dropped tail is still marked occupied")
	}
}

func TestGrowthKeepsTail(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0})
	s.Grow(2)

	for i := 1; i <= 2; i++ {
		if _, ok := s.Move(types.Point{X: 20 * i, Y: 0}); ok {
			t.Fatalf("move %d: tail dropped while growing", i)
		}
	}
	if s.Len() != 3 {
		t.Fatalf("expected length 3, got %d", s.Len())
	}
	if _, ok := s.Move(types.Point{X: 60, Y: 0}); !ok {
		t.Fatalf("tail should be dropped once the target is reached")
	}
	if s.Len() != 3 {
		t.Fatalf("length should stay at target, got %d", s.Len())
	}
}

func TestGrowIgnoresNonPositive(t *testing.T) {
	s := NewSnake(types.Point{})
	s.Grow(0)
	s.Grow(-3)
	if s.TargetLength != 1 {
		t.Fatalf("expected target 1, got %d", s.TargetLength)
	}
}

func TestRemoveTailOnEmptyBody(t *testing.T) {
	s := &Snake{occupied: map[types.Point]struct{}{}}
	if _, ok := s.RemoveTail(); ok {
		t.Fatalf("expected no tail on empty body")
	}
}
