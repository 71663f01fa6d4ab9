package game

import (
	"context"
	"log"
	"time"

	"snake-arena/game/types"
)

// DefaultTickDelay is the pause between two ticks
const DefaultTickDelay = 100 * time.Millisecond

// Canvas is the drawing side of a backend. Positions are arena coordinates;
// the backend decides how a shape of the given size looks.
type Canvas interface {
	FillBackground(c types.Color)
	DrawShape(p types.Point, size int, c types.Color)
	EraseShape(p types.Point, size int)
	DrawText(text string, p types.Point, fg, bg types.Color)
}

type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
)

type Event struct {
	Type EventType
	Key  types.Key
}

func QuitEvent() Event {
	return Event{Type: EventQuit}
}

func KeyEvent(k types.Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// Backend is the window or terminal the game runs in. PollEvents must not block.
type Backend interface {
	Canvas
	PollEvents() []Event
	PresentFrame()
	Close() error
}

// Loop drives a Game against a Backend, one tick at a time.
type Loop struct {
	Game      *Game
	Backend   Backend
	TickDelay time.Duration
	Logger    *log.Logger

	// Sleep waits for d or until ctx is done; it reports false when ctx ended first
	Sleep func(ctx context.Context, d time.Duration) bool
}

func NewLoop(g *Game, b Backend, tickDelay time.Duration, logger *log.Logger) *Loop {
	if tickDelay <= 0 {
		tickDelay = DefaultTickDelay
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		Game:      g,
		Backend:   b,
		TickDelay: tickDelay,
		Logger:    logger,
		Sleep:     sleepContext,
	}
}

// Run ticks until the game terminates or ctx is cancelled, then returns the
// run summary.
func (l *Loop) Run(ctx context.Context) Summary {
	for l.Game.Running() {
		if ctx.Err() != nil {
			l.Game.Terminate(CauseQuit)
			break
		}
		if !l.Step() {
			break
		}
		if !l.Sleep(ctx, l.TickDelay) {
			l.Game.Terminate(CauseQuit)
			break
		}
	}

	summary := NewSummary(l.Game)
	l.Logger.Printf("game over: %s", summary)
	return summary
}

// Step performs one tick: input, simulation, frame. It reports whether the
// game is still running.
func (l *Loop) Step() bool {
	for _, ev := range l.Backend.PollEvents() {
		switch ev.Type {
		case EventQuit:
			l.Game.Terminate(CauseQuit)
		case EventKeyDown:
			l.Game.HandleKey(ev.Key)
		}
		if !l.Game.Running() {
			return false
		}
	}

	outcome := l.Game.Tick()
	l.Backend.PresentFrame()
	return outcome == Continue
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
