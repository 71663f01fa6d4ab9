package game

import (
	"context"
	"time"

	"golang.org/x/exp/rand"

	"snake-arena/game/types"
)

type opKind int

const (
	opFill opKind = iota
	opDraw
	opErase
	opText
)

type canvasOp struct {
	kind  opKind
	p     types.Point
	size  int
	color types.Color
	text  string
}

// recordingCanvas keeps every call so tests can check what was drawn
type recordingCanvas struct {
	ops []canvasOp
}

func (c *recordingCanvas) FillBackground(col types.Color) {
	c.ops = append(c.ops, canvasOp{kind: opFill, color: col})
}

func (c *recordingCanvas) DrawShape(p types.Point, size int, col types.Color) {
	c.ops = append(c.ops, canvasOp{kind: opDraw, p: p, size: size, color: col})
}

func (c *recordingCanvas) EraseShape(p types.Point, size int) {
	c.ops = append(c.ops, canvasOp{kind: opErase, p: p, size: size})
}

func (c *recordingCanvas) DrawText(text string, p types.Point, fg, bg types.Color) {
	c.ops = append(c.ops, canvasOp{kind: opText, p: p, color: fg, text: text})
}

func (c *recordingCanvas) count(kind opKind) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

// fakeBackend hands out one scripted batch of events per poll
type fakeBackend struct {
	recordingCanvas
	batches  [][]Event
	polls    int
	presents int
	closed   bool
}

func (b *fakeBackend) PollEvents() []Event {
	b.polls++
	if len(b.batches) == 0 {
		return nil
	}
	batch := b.batches[0]
	b.batches = b.batches[1:]
	return batch
}

func (b *fakeBackend) PresentFrame() {
	b.presents++
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func noSleep(context.Context, time.Duration) bool {
	return true
}

// farApple is a spawn-area position no test path comes near
var farApple = types.Point{X: 100, Y: 700}
