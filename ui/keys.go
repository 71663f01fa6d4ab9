package ui

import (
	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game/types"
)

var (
	raylibKeys = map[int32]types.Key{
		rl.KeyUp:     types.KeyUp,
		rl.KeyDown:   types.KeyDown,
		rl.KeyLeft:   types.KeyLeft,
		rl.KeyRight:  types.KeyRight,
		rl.KeyQ:      types.KeyQuit,
		rl.KeyEscape: types.KeyQuit,
	}

	tcellKeys = map[tcell.Key]types.Key{
		tcell.KeyUp:     types.KeyUp,
		tcell.KeyDown:   types.KeyDown,
		tcell.KeyLeft:   types.KeyLeft,
		tcell.KeyRight:  types.KeyRight,
		tcell.KeyEscape: types.KeyQuit,
		tcell.KeyCtrlC:  types.KeyQuit,
	}
)

func windowKey(k int32) types.Key {
	if key, ok := raylibKeys[k]; ok {
		return key
	}
	return types.KeyOther
}

func terminalKey(ev *tcell.EventKey) types.Key {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return types.KeyQuit
		}
		return types.KeyOther
	}
	if key, ok := tcellKeys[ev.Key()]; ok {
		return key
	}
	return types.KeyOther
}
