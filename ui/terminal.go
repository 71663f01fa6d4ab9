package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-arena/game"
	"snake-arena/game/types"
)

// TerminalBackend renders the arena in a terminal. Every arena step maps to
// one row and two columns so cells look roughly square.
type TerminalBackend struct {
	screen tcell.Screen
	shape  game.Shape
	scale  int
	bg     tcell.Style
	events chan tcell.Event
	done   chan struct{}
}

// ErrTerminalTooSmall is returned when the terminal cannot show the whole arena
var ErrTerminalTooSmall = errors.New("terminal too small for the arena")

func NewTerminalBackend(shape game.Shape, scale int) (*TerminalBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	t, err := newTerminalBackend(screen, shape, scale)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func newTerminalBackend(screen tcell.Screen, shape game.Shape, scale int) (*TerminalBackend, error) {
	if scale <= 0 {
		scale = types.Step
	}
	cols, rows := arenaCells(scale)
	if w, h := screen.Size(); w < cols || h < rows {
		return nil, fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTerminalTooSmall, w, h, cols, rows)
	}

	t := &TerminalBackend{
		screen: screen,
		shape:  shape,
		scale:  scale,
		bg:     tcell.StyleDefault,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	screen.HideCursor()

	// PollEvent blocks, so it gets its own goroutine; the game only drains the channel
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}()
	return t, nil
}

// arenaCells returns the columns and rows needed to show the arena, edges included
func arenaCells(scale int) (int, int) {
	return (types.ArenaWidth/scale + 1) * 2, types.ArenaHeight/scale + 1
}

// cell converts an arena position to the terminal column and row
func (t *TerminalBackend) cell(p types.Point) (int, int) {
	col := (p.X + t.scale/2) / t.scale
	row := (p.Y + t.scale/2) / t.scale
	return col * 2, row
}

func (t *TerminalBackend) FillBackground(c types.Color) {
	t.bg = tcell.StyleDefault.Background(toTcell(c))
	t.screen.Fill(' ', t.bg)
}

func (t *TerminalBackend) DrawShape(p types.Point, size int, c types.Color) {
	x, y := t.cell(p)
	style := t.bg.Foreground(toTcell(c))
	glyph := '●'
	if t.shape == game.Square {
		glyph = '█'
		t.screen.SetContent(x+1, y, glyph, nil, style)
	} else {
		t.screen.SetContent(x+1, y, ' ', nil, t.bg)
	}
	t.screen.SetContent(x, y, glyph, nil, style)
}

func (t *TerminalBackend) EraseShape(p types.Point, size int) {
	x, y := t.cell(p)
	t.screen.SetContent(x, y, ' ', nil, t.bg)
	t.screen.SetContent(x+1, y, ' ', nil, t.bg)
}

func (t *TerminalBackend) DrawText(text string, p types.Point, fg, bg types.Color) {
	x, y := t.cell(p)
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *TerminalBackend) PollEvents() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				events = append(events, game.KeyEvent(terminalKey(ev)))
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return events
		}
	}
}

func (t *TerminalBackend) PresentFrame() {
	t.screen.Show()
}

func (t *TerminalBackend) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
