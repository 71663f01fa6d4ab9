package autopilot

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-arena/game"
	"snake-arena/game/types"
)

type fakeView struct {
	head    types.Point
	apple   types.Point
	pending types.Direction
	danger  map[types.Point]bool
}

func (v *fakeView) Head() types.Point { return v.head }
func (v *fakeView) Apple() types.Point { return v.apple }
func (v *fakeView) Pending() types.Direction { return v.pending }
func (v *fakeView) IsDanger(p types.Point) bool { return v.danger[p] }

type nopCanvas struct{}

func (nopCanvas) FillBackground(types.Color) {}
func (nopCanvas) DrawShape(types.Point, int, types.Color) {}
func (nopCanvas) EraseShape(types.Point, int) {}
func (nopCanvas) DrawText(string, types.Point, types.Color, types.Color) {}

type scriptedBackend struct {
	nopCanvas
	events []game.Event
}

func (b *scriptedBackend) PollEvents() []game.Event {
	events := b.events
	b.events = nil
	return events
}

func (b *scriptedBackend) PresentFrame() {}

func (b *scriptedBackend) Close() error { return nil }

func TestDecideMovesTowardApple(t *testing.T) {
	tests := []struct {
		name  string
		apple types.Point
		want  types.Key
	}{
		{"apple above", types.Point{X: 400, Y: 200}, types.KeyUp},
		{"apple below", types.Point{X: 400, Y: 700}, types.KeyDown},
		{"apple left", types.Point{X: 100, Y: 400}, types.KeyLeft},
		{"apple right", types.Point{X: 700, Y: 400}, types.KeyRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &fakeView{head: types.Point{X: 400, Y: 400}, apple: tt.apple}
			key, ok := New().Decide(v)
			if !ok || key != tt.want {
				t.Fatalf("expected %v, got %v (ok=%t)", tt.want, key, ok)
			}
		})
	}
}

func TestDecideAvoidsDanger(t *testing.T) {
	head := types.Point{X: 400, Y: 400}
	v := &fakeView{
		head:  head,
		apple: types.Point{X: 400, Y: 200},
		danger: map[types.Point]bool{
			head.Add(types.UP.ToPoint()): true,
		},
	}
	key, ok := New().Decide(v)
	if !ok {
		t.Fatalf("expected a safe move")
	}
	if key == types.KeyUp {
		t.Fatalf("pilot walked into danger")
	}
}

func TestDecideAvoidsDeadEnd(t *testing.T) {
	head := types.Point{X: 400, Y: 400}
	up := head.Add(types.UP.ToPoint())
	// The cell above is free but every cell around it is blocked
	danger := map[types.Point]bool{
		up.Add(types.UP.ToPoint()):    true,
		up.Add(types.LEFT.ToPoint()):  true,
		up.Add(types.RIGHT.ToPoint()): true,
		head:                          true,
	}
	v := &fakeView{head: head, apple: types.Point{X: 400, Y: 100}, danger: danger}

	key, ok := New().Decide(v)
	if !ok || key == types.KeyUp {
		t.Fatalf("expected pilot to avoid the dead end, got %v (ok=%t)", key, ok)
	}
}

func TestDecideNoSafeMove(t *testing.T) {
	head := types.Point{X: 400, Y: 400}
	danger := map[types.Point]bool{}
	for _, d := range types.Cardinal {
		danger[head.Add(d.ToPoint())] = true
	}
	v := &fakeView{head: head, apple: types.Point{X: 100, Y: 100}, danger: danger}

	if _, ok := New().Decide(v); ok {
		t.Fatalf("expected no decision when boxed in")
	}
}

func TestSourcePassesQuitThrough(t *testing.T) {
	v := &fakeView{head: types.Point{X: 400, Y: 400}, apple: types.Point{X: 400, Y: 100}}

	inner := &scriptedBackend{events: []game.Event{game.QuitEvent()}}
	events := NewSource(inner, v).PollEvents()
	if len(events) != 1 || events[0].Type != game.EventQuit {
		t.Fatalf("expected only the quit event, got %+v", events)
	}

	inner = &scriptedBackend{events: []game.Event{game.KeyEvent(types.KeyQuit)}}
	events = NewSource(inner, v).PollEvents()
	if len(events) != 1 || events[0].Key != types.KeyQuit {
		t.Fatalf("expected only the quit key, got %+v", events)
	}
}

func TestSourceAppendsPilotKey(t *testing.T) {
	v := &fakeView{head: types.Point{X: 400, Y: 400}, apple: types.Point{X: 400, Y: 100}}
	inner := &scriptedBackend{events: []game.Event{game.KeyEvent(types.KeyLeft)}}

	events := NewSource(inner, v).PollEvents()
	if len(events) != 2 {
		t.Fatalf("expected user key plus pilot key, got %+v", events)
	}
	if last := events[1]; last.Type != game.EventKeyDown || last.Key != types.KeyUp {
		t.Fatalf("expected pilot to press up last, got %+v", last)
	}
}

func TestAutopilotPlaysWithoutBreakingRules(t *testing.T) {
	for _, v := range []game.Variant{game.Classic(), game.Squares(5)} {
		t.Run(v.Name, func(t *testing.T) {
			backend := &scriptedBackend{}
			g, err := game.NewGame(v, backend, rand.New(rand.NewSource(11)))
			if err != nil {
				t.Fatalf("new game: %v", err)
			}
			loop := game.NewLoop(g, NewSource(backend, g), 0, nil)

			for i := 0; i < 2000 && loop.Step(); i++ {
				body := g.Body()
				seen := make(map[types.Point]bool, len(body))
				for _, p := range body {
					if !v.Bounds.Contains(p) {
						t.Fatalf("tick %d: segment %v out of bounds", i, p)
					}
					if seen[p] {
						t.Fatalf("tick %d: duplicate segment %v", i, p)
					}
					seen[p] = true
				}
				if len(body) > g.TargetLength() {
					t.Fatalf("tick %d: body longer than target", i)
				}
			}

			if g.Score() == 0 {
				t.Fatalf("autopilot never reached an apple")
			}
			if !g.Running() && g.Cause() == game.CauseQuit {
				t.Fatalf("autopilot must not quit on its own")
			}
		})
	}
}

func TestDecideNeverReverses(t *testing.T) {
	head := types.Point{X: 400, Y: 400}
	for _, current := range types.Cardinal {
		// Apple straight behind the head, where the reverse key would lead
		behind := head.Add(current.Opposite().ToPoint())
		v := &fakeView{head: head, apple: behind.Add(current.Opposite().ToPoint()), pending: current}

		key, ok := New().Decide(v)
		if !ok {
			t.Fatalf("%s: expected a decision", current)
		}
		if key == directionKeys[current.Opposite()] {
			t.Fatalf("%s: pilot offered the reverse key", current)
		}
	}
}

func TestDecideBoxedInExceptBehind(t *testing.T) {
	head := types.Point{X: 400, Y: 400}
	current := types.RIGHT
	danger := map[types.Point]bool{
		head.Add(current.ToPoint()):             true,
		head.Add(current.TurnLeft().ToPoint()):  true,
		head.Add(current.TurnRight().ToPoint()): true,
	}
	v := &fakeView{head: head, apple: types.Point{X: 100, Y: 400}, pending: current, danger: danger}

	if key, ok := New().Decide(v); ok {
		t.Fatalf("only the reverse move is free, pilot still chose %v", key)
	}
}
