// Package snowball implements Snowball Descent, an endless downhill run.
// The player steers a snowball over rolling hills, collecting snow to grow
// and losing size on every obstacle it smashes. The run ends when the
// snowball is worn below its minimum size or falls off the view.
package snowball

import (
	"math"

	"github.com/vovakirdan/snowball-arcade/internal/config"
	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/registry"
	"github.com/vovakirdan/snowball-arcade/internal/sim"
)

// Game over reasons
const (
	ReasonCrushed = "crushed"
	ReasonFell    = "fell"
)

// Event names reported in StepResult.Events
const (
	EventCollect   = "collect"
	EventHit       = "hit"
	EventLanded    = "landed"
	EventMilestone = "milestone"
	EventGameOver  = "game_over"
)

// milestoneBoost is the forward speed added each time a score milestone is
// passed.
const milestoneBoost = 0.2

// Game implements the Snowball Descent game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.SnowballConfig
	difficulty *config.DifficultyManager
	world      *sim.World
	spawner    *Spawner

	size       float64 // Current radius, eases toward targetSize
	targetSize float64
	invincible int // Ticks of hit immunity left
	combo      int
	comboTicks int // Ticks left to extend the combo
	shake      int // Ticks of camera shake left
	boost      float64
	milestone  int // Index of the next milestone

	snowPoints   int
	score        int
	message      string
	messageTicks int

	stats    core.Stats
	gameOver bool
	reason   string
	paused   bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// New creates a new Snowball Descent game instance with the configuration
// found on the search path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.SnowballConfig) *Game {
	return &Game{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snowball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snowball Descent"
}

// Description returns the portal catalog blurb.
func (g *Game) Description() string {
	return "Roll a growing snowball down endless hills. Collect snow, smash through obstacles and keep it from wearing away."
}

// Tags returns the portal catalog tags.
func (g *Game) Tags() []string {
	return []string{"arcade", "physics", "endless", "winter"}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.difficulty == nil {
		// Load game config
		cfg, err := config.LoadSnowball(configPath)
		if err != nil {
			cfg = config.DefaultSnowballConfig()
		}

		// Apply difficulty preset if set
		if difficultyPreset != "" {
			config.ApplySnowballPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	}

	if g.world == nil {
		g.world = sim.New(worldConfig(g.cfg), runtime.Seed)
	} else {
		g.world.Reset(runtime.Seed)
	}
	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.spawner.UpdateConfig(&g.cfg, g.difficulty)
		g.spawner.Reset(runtime.Seed)
	}
	g.spawner.Populate(g.world)

	g.size = g.cfg.Player.InitialSize
	g.targetSize = g.size
	g.invincible = 0
	g.combo = 0
	g.comboTicks = 0
	g.shake = 0
	g.boost = 0
	g.milestone = 0
	g.snowPoints = 0
	g.score = 0
	g.message = ""
	g.messageTicks = 0
	g.stats = core.Stats{}
	g.gameOver = false
	g.reason = ""
	g.paused = false
	g.applyHandling()
}

// Step advances the game by the elapsed time in the input frame, or one
// nominal tick when the platform did not measure it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.TickDuration()
	}
	if limit := g.world.Config().MaxDelta; limit > 0 && dt > limit {
		dt = limit
	}

	// Controls
	steer := 0.0
	if in.Has(core.ActionLeft) {
		steer--
	}
	if in.Has(core.ActionRight) {
		steer++
	}
	g.world.Steer(steer)
	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.world.Jump()
	}

	g.applyHandling()
	before := g.world.Ticks()
	simEvents := g.world.Step(dt)
	ticks := g.world.Ticks() - before
	g.stats.Duration += dt

	var events []core.Event
	for _, ev := range simEvents {
		events = g.handle(ev, events)
		if g.gameOver {
			break
		}
	}

	g.countdown(ticks)
	g.updateScore()
	events = g.checkMilestones(events)

	p := g.world.Player()
	g.stats.Distance = int(g.world.Distance())
	g.stats.MaxSpeed = math.Max(g.stats.MaxSpeed, p.Speed())

	if g.gameOver {
		events = append(events, core.Event{Name: EventGameOver, Value: g.score})
		return core.StepResult{State: g.State(), Events: events}
	}

	g.spawner.Update(g.world, g.score)
	return core.StepResult{State: g.State(), Events: events}
}

// handle applies one simulation event to the game state.
func (g *Game) handle(ev sim.Event, events []core.Event) []core.Event {
	switch ev.Kind {
	case sim.EventCollected:
		g.targetSize = math.Min(g.cfg.Player.MaxSize, g.targetSize+g.cfg.Player.GrowthFactor*float64(ev.Entity.Value))

		g.combo++
		g.comboTicks = msToTicks(g.cfg.Scoring.ComboWindowMS, g.tickRate())
		if g.combo > g.stats.MaxCombo {
			g.stats.MaxCombo = g.combo
		}
		points := g.snowValue(ev.Entity.Value)
		g.snowPoints += points
		g.stats.Collected++
		events = append(events, core.Event{Name: EventCollect, Value: points})

	case sim.EventHit:
		// The snowball smashes through whatever it hits
		g.world.Remove(ev.Entity.ID)
		if g.invincible > 0 {
			return events
		}
		g.targetSize -= g.cfg.Player.ShrinkFactor * float64(ev.Entity.Value)
		g.invincible = msToTicks(g.cfg.Player.InvincibilityMS, g.tickRate())
		g.shake = g.cfg.Effects.CameraShakeTicks
		g.combo = 0
		g.comboTicks = 0
		g.stats.Hits++
		events = append(events, core.Event{Name: EventHit, Value: ev.Entity.Value})

		if g.targetSize < g.cfg.Player.MinSize {
			g.endRun(ReasonCrushed)
		}

	case sim.EventLanded:
		events = append(events, core.Event{Name: EventLanded, Value: int(ev.Speed)})

	case sim.EventOutOfBounds:
		g.endRun(ReasonFell)
	}
	return events
}

// snowValue returns the points for a snow patch: bigger snowballs score
// more, and the running combo multiplies the result.
func (g *Game) snowValue(value int) int {
	sc := g.cfg.Scoring
	base := float64(value) * (1 + sc.SizeMultiplier*g.size/10)
	mult := g.combo
	if sc.ComboMax > 0 && mult > sc.ComboMax {
		mult = sc.ComboMax
	}
	if mult < 1 {
		mult = 1
	}
	return int(math.Round(base)) * mult
}

// countdown runs the per-tick timers and eases the size toward its target.
func (g *Game) countdown(ticks int) {
	for i := 0; i < ticks; i++ {
		if g.invincible > 0 {
			g.invincible--
		}
		if g.shake > 0 {
			g.shake--
		}
		if g.messageTicks > 0 {
			g.messageTicks--
		}
		if g.comboTicks > 0 {
			g.comboTicks--
			if g.comboTicks == 0 {
				g.combo = 0
			}
		}

		if g.size != g.targetSize {
			g.size += (g.targetSize - g.size) * g.cfg.Player.SizeSmoothing
			if math.Abs(g.size-g.targetSize) < 0.1 {
				g.size = g.targetSize
			}
		}
	}
	g.world.Player().Radius = math.Max(1, g.size)
}

func (g *Game) updateScore() {
	step := g.cfg.Scoring.DistanceStep
	if step <= 0 {
		step = 100
	}
	g.score = g.snowPoints + int(g.world.Distance()/step)
}

// checkMilestones gives a speed boost and a banner for every score
// milestone passed.
func (g *Game) checkMilestones(events []core.Event) []core.Event {
	ms := g.cfg.Scoring.Milestones
	for g.milestone < len(ms) && g.score >= ms[g.milestone] {
		g.boost += milestoneBoost
		g.message = "LEVEL UP!"
		g.messageTicks = 2 * g.tickRate()
		events = append(events, core.Event{Name: EventMilestone, Value: ms[g.milestone]})
		g.milestone++
	}
	return events
}

// applyHandling sets steering and forward speed from the current size and
// difficulty. Bigger snowballs steer slower.
func (g *Game) applyHandling() {
	pc := g.cfg.Player
	control := math.Max(pc.ControlSpeed-g.size*pc.SizeSpeedFactor, pc.ControlSpeed*0.4)
	forward := g.difficulty.Speed(g.cfg.Physics.MinVelocity, g.score, g.world.Ticks()) + g.boost
	g.world.SetHandling(control, forward)
}

func (g *Game) endRun(reason string) {
	g.gameOver = true
	g.reason = reason
	g.world.Particles().Explode(g.world.Player().Pos, core.ColorBrightWhite, g.size*2)
}

func (g *Game) tickRate() int {
	if g.cfg.World.TickRate > 0 {
		return g.cfg.World.TickRate
	}
	return 60
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats returns the counters for the current run.
func (g *Game) Stats() core.Stats {
	return g.stats
}

// Size returns the current snowball radius.
func (g *Game) Size() float64 {
	return g.size
}

// Reason returns why the run ended, or "" while it is running.
func (g *Game) Reason() string {
	return g.reason
}

// World exposes the simulation for headless runs and tests.
func (g *Game) World() *sim.World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("snowball", func() registry.Game {
		return New()
	})
}
