// Package window provides the ebiten frontend for the runner.
// It draws the world in its own pixel units and maps keyboard, mouse and
// touch input to game actions.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Restart button size in world units.
const (
	buttonW = 120
	buttonH = 32
)

var (
	skyColor      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	groundColor   = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	obstacleColor = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	actorColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	crashColor    = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	buttonColor   = color.RGBA{R: 30, G: 30, B: 30, A: 220}
)

// Game adapts a runner.Game to ebiten.Game.
type Game struct {
	game   *runner.Game
	sink   core.EventSink
	keys   []ebiten.Key
	width  int
	height int
}

// New creates the ebiten adapter. The runner must already be Reset.
// sink may be nil.
func New(game *runner.Game, sink core.EventSink) *Game {
	world := game.Snapshot().World
	return &Game{game: game, sink: sink, width: int(world.W), height: int(world.H)}
}

// Update collects this frame's input and advances the run by one tick.
// ebiten calls it at the configured TPS.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	snap := g.game.Snapshot()
	frame := core.NewInputFrame()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if a := keyAction(k); a != core.ActionNone {
			frame.Set(a)
		}
	}

	if x, y, ok := justPointed(); ok {
		if a := pointerAction(snap, x, y); a != core.ActionNone {
			frame.Set(a)
		}
	}

	result := g.game.Step(frame)
	if g.sink != nil && len(result.Events) > 0 {
		g.sink.Handle(result.Events)
	}
	return nil
}

// justPointed reports a touch or left click that started this frame.
// Touch wins when both happen.
func justPointed() (int, int, bool) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

// keyAction maps a key press to an action.
func keyAction(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
		return core.ActionJump
	case ebiten.KeyR:
		return core.ActionRestart
	case ebiten.KeyP:
		return core.ActionPause
	}
	return core.ActionNone
}

// pointerAction maps a click or tap at (x, y) to an action.
// Anywhere jumps while running; after game over only the button counts.
func pointerAction(snap runner.Snapshot, x, y int) core.Action {
	if snap.Phase != runner.PhaseGameOver {
		return core.ActionJump
	}
	if restartButton(snap).Contains(x, y) {
		return core.ActionRestart
	}
	return core.ActionNone
}

// restartButton is the button shown under the game over text.
func restartButton(snap runner.Snapshot) core.Rect {
	w, h := int(snap.World.W), int(snap.World.H)
	return core.NewRect((w-buttonW)/2, h/2+10, buttonW, buttonH)
}

// decorationColor fades a cloud by its alpha.
func decorationColor(alpha float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(core.ClampF(alpha, 0, 1) * 255)}
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	screen.Fill(skyColor)

	for _, d := range snap.Decorations {
		fillBox(screen, d.Box, decorationColor(d.Alpha))
	}

	fillBox(screen, core.NewBox(0, snap.GroundY, snap.World.W, snap.World.H-snap.GroundY), groundColor)

	for _, o := range snap.Obstacles {
		fillBox(screen, o, obstacleColor)
	}

	actor := actorColor
	if snap.Phase == runner.PhaseGameOver {
		actor = crashColor
	}
	fillBox(screen, snap.Actor, actor)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %05d  Best: %05d  Speed: %.1f", snap.Score, snap.Best, snap.Speed), 10, 10)

	cx, cy := g.width/2, g.height/2
	switch {
	case snap.Phase == runner.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-30)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), cx-30, cy-14)

		btn := restartButton(snap)
		vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), buttonColor, false)
		ebitenutil.DebugPrintAt(screen, "Restart (R)", btn.X+27, btn.Y+9)
	case g.game.State().Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", cx-18, cy-8)
	}
}

// fillBox draws a world box, which already is in screen pixels.
func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// Layout keeps the logical screen at world size and lets ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and plays the game until it is closed.
func Run(game *runner.Game, cfg core.RuntimeConfig, sink core.EventSink) error {
	game.Reset(cfg)
	snap := game.Snapshot()

	ebiten.SetWindowSize(int(snap.World.W), int(snap.World.H))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	ebiten.SetTPS(cfg.TickRate)

	log.Info("run started", "mode", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate, "frontend", "window")

	if err := ebiten.RunGame(New(game, sink)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
