package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Visual characters for terminal rendering
const (
	ActorChar     = '█'
	ObstacleChar  = '▓'
	CloudFarChar  = '░'
	CloudNearChar = '▒'
	GroundChar    = '═'
)

// Game modes registered with the registry.
const (
	ModeClassic  = "runner"
	ModeFixedGap = "runner_fixed_gap"
)

// Game implements registry.Game on top of Sim.
// It adds what the platform needs around a run: config loading, pausing,
// a session best score and terminal rendering.
type Game struct {
	id      string
	title   string
	policy  string // Gap policy forced by the mode, empty = from config
	sim     *Sim
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	paused  bool
	best    int // Best score of this process, never persisted
}

var _ registry.Game = (*Game)(nil)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates the classic runner, which follows the configured gap policy.
func New() *Game {
	return &Game{id: ModeClassic, title: "Endless Runner"}
}

// NewFixedGap creates the runner variant that draws one gap per obstacle.
func NewFixedGap() *Game {
	return &Game{id: ModeFixedGap, title: "Endless Runner (fixed gaps)", policy: config.GapOnce}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// LoadConfig resolves the runner config for this mode: file search,
// difficulty preset, then the mode's gap policy.
func (g *Game) LoadConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		log.Warn("using default runner config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}

	config.ApplyRunnerPreset(&cfg, difficultyPreset)
	if g.policy != "" {
		cfg.Obstacles.GapPolicy = g.policy
	}
	return cfg
}

// Reset initializes a fresh session with a new RNG seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.LoadConfig()
	g.sim = NewSim(g.cfg, runtime.Seed)
	g.paused = false

	log.Debug("runner reset",
		"mode", g.id,
		"seed", runtime.Seed,
		"gap_policy", g.cfg.Obstacles.GapPolicy,
		"base_speed", g.cfg.Progression.BaseSpeed,
	)
}

// Step applies this frame's commands and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.sim.Restart() {
		g.paused = false
		log.Info("run restarted", "mode", g.id)
	}

	if in.Has(core.ActionPause) && g.sim.Phase() == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.sim.Jump()
	}

	result := g.sim.Tick()
	for _, ev := range result.Events {
		if ev == core.EventGameOver {
			g.best = core.Max(g.best, g.sim.Score())
			log.Info("game over",
				"mode", g.id,
				"score", g.sim.Score(),
				"best", g.best,
				"speed", g.sim.Speed(),
				"ticks", g.sim.Ticks(),
			)
		}
	}

	return core.StepResult{State: g.State(), Events: result.Events}
}

// Snapshot returns the current frame for graphical frontends.
func (g *Game) Snapshot() Snapshot {
	snap := g.sim.Snapshot()
	snap.Best = g.best
	return snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Best:     g.best,
		GameOver: g.sim.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
// Row 0 holds the HUD, the world is scaled into the rows below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	snap := g.Snapshot()
	sx := float64(dst.Width()) / snap.World.W
	sy := float64(dst.Height()-1) / snap.World.H
	toScreen := func(b core.Box) core.Rect {
		r := b.Scale(sx, sy)
		r.Y++ // below the HUD row
		return r
	}

	// Clouds first so everything else draws over them
	for _, d := range snap.Decorations {
		ch, color := CloudFarChar, core.ColorDarkGray
		if d.Alpha >= 0.6 {
			ch, color = CloudNearChar, core.ColorGray
		}
		dst.FillRect(toScreen(d.Box), ch, color)
	}

	// Ground
	groundRow := toScreen(core.NewBox(0, snap.GroundY, snap.World.W, 0)).Y
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorOrange)

	for _, o := range snap.Obstacles {
		dst.FillRect(toScreen(o), ObstacleChar, core.ColorGreen)
	}

	actorColor := core.ColorBrightWhite
	if snap.Phase == PhaseGameOver {
		actorColor = core.ColorBrightRed
	}
	dst.FillRect(toScreen(snap.Actor), ActorChar, actorColor)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %05d  Best: %05d ", snap.Score, snap.Best)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)
	speedText := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	dst.DrawTextColored(dst.Width()-len(speedText)-2, 0, speedText, core.ColorYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// Register the game modes with the registry
func init() {
	registry.Register(ModeClassic, func() registry.Game {
		return New()
	})
	registry.Register(ModeFixedGap, func() registry.Game {
		return NewFixedGap()
	})
}
