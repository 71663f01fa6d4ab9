package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Outcome is the result of a tick or of a single move
type Outcome int

const (
	Continue Outcome = iota
	Terminated
)

// Cause explains why a run ended
type Cause string

const (
	CauseNone      Cause = ""
	CauseWall      Cause = "wall-collision"
	CauseSelf      Cause = "self-collision"
	CauseQuit      Cause = "quit"
	CauseArenaFull Cause = "arena-full"
)

// Game is the whole mutable state of one run. It is owned by the tick loop
// and is not safe for concurrent use.
type Game struct {
	UUID      string
	Variant   Variant
	Grid      types.Grid
	StartTime time.Time
	Steps     int

	snake     *entity.Snake
	apple     types.Point
	score     int
	pending   types.Direction
	lastMoved types.Direction
	running   bool
	cause     Cause
	endTime   time.Time

	canvas       Canvas
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame sets up the arena on canvas: background, a one-segment snake at the
// centre and the first apple.
func NewGame(variant Variant, canvas Canvas, rng *rand.Rand) (*Game, error) {
	grid := types.Grid{Width: types.ArenaWidth, Height: types.ArenaHeight}
	return newGame(variant, canvas, rng, entity.NewSnake(grid.Center()))
}

// NewGameWithSnake is NewGame with a preset body, tail first.
func NewGameWithSnake(variant Variant, canvas Canvas, rng *rand.Rand, body ...types.Point) (*Game, error) {
	if len(body) == 0 {
		return nil, errors.New("snake body must not be empty")
	}
	return newGame(variant, canvas, rng, entity.NewSnakeWithBody(body...))
}

func newGame(variant Variant, canvas Canvas, rng *rand.Rand, snake *entity.Snake) (*Game, error) {
	g := &Game{
		UUID:         uuid.New().String(),
		Variant:      variant,
		Grid:         types.Grid{Width: types.ArenaWidth, Height: types.ArenaHeight},
		StartTime:    time.Now(),
		snake:        snake,
		running:      true,
		canvas:       canvas,
		collisionMgr: manager.NewCollisionManager(variant.Bounds),
		foodMgr:      manager.NewFoodManager(variant.SpawnArea, rng),
	}

	g.canvas.FillBackground(types.Background)
	g.drawSnake()

	if err := g.placeApple(); err != nil {
		return nil, fmt.Errorf("initial apple: %w", err)
	}
	return g, nil
}

// SetDirection records the direction used from the next move on. The last
// call before a tick wins.
func (g *Game) SetDirection(d types.Direction) {
	if !g.running || d == types.NONE {
		return
	}
	if g.Variant.BlockReversal && g.snake.Len() > 1 && d == g.lastMoved.Opposite() {
		return
	}
	g.pending = d
}

// HandleKey maps a key press onto the game. It reports false when the key
// asks to quit.
func (g *Game) HandleKey(k types.Key) bool {
	if k == types.KeyQuit {
		g.Terminate(CauseQuit)
		return false
	}
	if d, ok := types.KeyDirections[k]; ok {
		g.SetDirection(d)
	}
	return true
}

// Tick runs one simulation step: overlay, apple check, then the move.
func (g *Game) Tick() Outcome {
	if !g.running {
		return Terminated
	}
	g.Steps++

	if g.Variant.ScoreOverlay {
		g.drawScore()
	}

	if g.checkApple() == Terminated {
		return Terminated
	}

	if g.pending != types.NONE {
		return g.Advance(g.pending)
	}
	return Continue
}

// Advance moves the head one step in direction d. An illegal move ends the
// run and leaves the body untouched.
func (g *Game) Advance(d types.Direction) Outcome {
	if !g.running {
		return Terminated
	}
	if d == types.NONE {
		return Continue
	}

	newHead := g.snake.GetHead().Add(d.ToPoint())

	switch g.collisionMgr.CheckCollision(newHead, g.snake) {
	case manager.WallCollision:
		g.Terminate(CauseWall)
		return Terminated
	case manager.SelfCollision:
		g.Terminate(CauseSelf)
		return Terminated
	}

	if tail, ok := g.snake.Move(newHead); ok {
		g.canvas.EraseShape(tail, g.Variant.Size)
	}
	g.lastMoved = d
	g.drawSnake()
	return Continue
}

// checkApple eats the apple when the current head is close enough to it
func (g *Game) checkApple() Outcome {
	if distance(g.snake.GetHead(), g.apple) >= g.Variant.EatThreshold {
		return Continue
	}

	g.canvas.EraseShape(g.apple, g.Variant.Size)
	g.snake.Grow(g.Variant.Growth)
	g.score++

	if err := g.placeApple(); err != nil {
		g.Terminate(CauseArenaFull)
		return Terminated
	}
	return Continue
}

func (g *Game) placeApple() error {
	apple, err := g.foodMgr.GenerateFood(g.snake)
	if err != nil {
		return err
	}
	g.apple = apple
	g.canvas.DrawShape(apple, g.Variant.Size, g.Variant.AppleColor)
	return nil
}

// drawSnake redraws every segment. Segments already on the canvas are drawn
// again, which repairs overlaps cleared by tail and apple erasure.
func (g *Game) drawSnake() {
	for _, p := range g.snake.Body {
		g.canvas.DrawShape(p, g.Variant.Size, g.Variant.SnakeColor)
	}
}

func (g *Game) drawScore() {
	g.canvas.DrawText(fmt.Sprintf("Score: %d", g.score), g.Variant.OverlayAnchor, g.Variant.OverlayFG, g.Variant.OverlayBG)
}

// Terminate ends the run; the first cause is kept
func (g *Game) Terminate(cause Cause) {
	if !g.running {
		return
	}
	g.running = false
	g.cause = cause
	g.endTime = time.Now()
}

func (g *Game) Running() bool {
	return g.running
}

func (g *Game) Cause() Cause {
	return g.cause
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) TargetLength() int {
	return g.snake.TargetLength
}

func (g *Game) Apple() types.Point {
	return g.apple
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Pending() types.Direction {
	return g.pending
}

// Body returns a copy of the segments, tail first
func (g *Game) Body() []types.Point {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return body
}

// IsDanger reports whether the head may not move to p
func (g *Game) IsDanger(p types.Point) bool {
	return g.collisionMgr.IsDanger(p, g.snake)
}

// ElapsedTime returns how long the run has lasted so far
func (g *Game) ElapsedTime() time.Duration {
	if g.running {
		return time.Since(g.StartTime)
	}
	return g.endTime.Sub(g.StartTime)
}

func distance(a, b types.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
