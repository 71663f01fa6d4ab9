package ui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
	"snake-arena/game/types"
)

const (
	windowTitle = "Snake"
	fontSize    = 20
	textPadding = 4
)

// WindowBackend draws on a raylib window. Drawing goes to an off-screen
// render texture that keeps its content between frames; PresentFrame copies
// it to the window.
type WindowBackend struct {
	shape       game.Shape
	width       int32
	height      int32
	target      rl.RenderTexture2D
	textureMode bool
}

func NewWindowBackend(width, height int, shape game.Shape) (*WindowBackend, error) {
	rl.InitWindow(int32(width), int32(height), windowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window could not be created")
	}

	r := &WindowBackend{
		shape:  shape,
		width:  int32(width),
		height: int32(height),
	}
	r.target = rl.LoadRenderTexture(r.width, r.height)
	return r, nil
}

// beginDraw switches drawing to the render texture until the next frame
func (r *WindowBackend) beginDraw() {
	if !r.textureMode {
		rl.BeginTextureMode(r.target)
		r.textureMode = true
	}
}

func (r *WindowBackend) FillBackground(c types.Color) {
	r.beginDraw()
	rl.ClearBackground(toRaylib(c))
}

func (r *WindowBackend) DrawShape(p types.Point, size int, c types.Color) {
	r.beginDraw()
	col := toRaylib(c)
	if r.shape == game.Square {
		half := int32(size / 2)
		rl.DrawRectangle(int32(p.X)-half, int32(p.Y)-half, int32(size), int32(size), col)
		return
	}
	rl.DrawCircle(int32(p.X), int32(p.Y), float32(size), col)
}

func (r *WindowBackend) EraseShape(p types.Point, size int) {
	r.DrawShape(p, size, types.Background)
}

func (r *WindowBackend) DrawText(text string, p types.Point, fg, bg types.Color) {
	r.beginDraw()
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawRectangle(
		int32(p.X)-textPadding,
		int32(p.Y)-textPadding,
		textWidth+2*textPadding,
		fontSize+2*textPadding,
		toRaylib(bg))
	rl.DrawText(text, int32(p.X), int32(p.Y), fontSize, toRaylib(fg))
}

// PollEvents reports a window close request and every key pressed since the
// last frame, in order.
func (r *WindowBackend) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, game.KeyEvent(windowKey(key)))
	}
	return events
}

func (r *WindowBackend) PresentFrame() {
	if r.textureMode {
		rl.EndTextureMode()
		r.textureMode = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	// Render textures are stored upside down, hence the negative height
	source := rl.NewRectangle(0, 0, float32(r.target.Texture.Width), -float32(r.target.Texture.Height))
	rl.DrawTextureRec(r.target.Texture, source, rl.NewVector2(0, 0), rl.White)
	rl.EndDrawing()
}

func (r *WindowBackend) Close() error {
	if r.textureMode {
		rl.EndTextureMode()
		r.textureMode = false
	}
	rl.UnloadRenderTexture(r.target)
	rl.CloseWindow()
	return nil
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
