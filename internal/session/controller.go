// Package session drives the screens around a run: menu, play, pause and
// game over. It counts lives, owns the current Simulation and turns
// simulation events into sound cues.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/audio"
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// State is the screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Menu entries on the pause and game over screens.
const (
	PauseResume = 0
	PauseQuit   = 1

	GameOverRetry = 0
	GameOverMenu  = 1
)

// Run summarizes a finished run.
type Run struct {
	Score      int
	Coins      int
	Distance   float64
	Ticks      int
	Difficulty config.DifficultyPreset
	Seed       int64
}

// Options configure a Controller. Zero values are usable.
type Options struct {
	Audio      audio.Player
	Logger     *log.Logger
	Difficulty config.DifficultyPreset
	// Seed of the first run; later runs use Seed+1, Seed+2 and so on.
	// Zero picks a seed from the clock.
	Seed int64
	// OnGameOver is called once per run when the last life is lost.
	OnGameOver func(Run)
}

// Controller is the session state machine. It is not safe for concurrent use.
type Controller struct {
	rules *runner.Rules
	cfg   config.SessionConfig
	opts  Options

	state State
	sim   *runner.Simulation

	lives         int
	pauseIndex    int
	gameOverIndex int
	lock          int // ticks during which menu input is ignored

	seed int64
	runs int
	last Run
}

// NewController returns a controller on the menu screen.
func NewController(r *runner.Rules, opts Options) *Controller {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := r.Config().Session
	return &Controller{
		rules: r,
		cfg:   cfg,
		opts:  opts,
		state: StateMenu,
		lives: cfg.Lives,
		seed:  seed,
	}
}

// Update advances the session by one tick and returns the simulation events
// of that tick, if a run is in progress.
func (c *Controller) Update(in core.InputSnapshot) []runner.Event {
	if c.lock > 0 {
		c.lock--
	}

	if c.state == StatePlaying {
		return c.play(in)
	}
	if c.lock > 0 {
		return nil
	}

	switch c.state {
	case StateMenu:
		if in.Confirm || in.Gas {
			c.Start()
		}
	case StatePaused:
		c.pauseMenu(in)
	case StateGameOver:
		c.gameOverMenu(in)
	}
	return nil
}

// Start begins a fresh run with full lives.
func (c *Controller) Start() {
	c.opts.Audio.Play(audio.SoundStart)

	seed := c.seed + int64(c.runs)
	c.runs++
	c.sim = runner.New(c.rules, seed)
	c.last = Run{Difficulty: c.opts.Difficulty, Seed: seed}
	c.lives = c.cfg.Lives

	c.setState(StatePlaying)
	c.lock = c.cfg.StartLockTicks
}

func (c *Controller) play(in core.InputSnapshot) []runner.Event {
	res := c.sim.Step(in)

	for _, ev := range res.Events {
		switch ev.Kind {
		case runner.EventLifeLost:
			c.loseLife()
		case runner.EventCoinCollected:
			c.opts.Audio.Play(audio.SoundCoin)
		case runner.EventObstacleDestroyed:
			c.opts.Audio.Play(audio.SoundSmash)
		case runner.EventPauseRequested:
			c.opts.Audio.Play(audio.SoundPause)
			c.setState(StatePaused)
		}
	}
	return res.Events
}

func (c *Controller) loseLife() {
	if c.state != StatePlaying {
		return
	}
	if c.lives > 1 {
		c.opts.Audio.Play(audio.SoundLifeLost)
	} else {
		c.opts.Audio.Play(audio.SoundCrash)
	}

	c.lives--
	if c.lives > 0 {
		return
	}

	p := c.sim.Player()
	c.last.Score = p.Score()
	c.last.Coins = p.Coins
	c.last.Distance = p.Distance
	c.last.Ticks = c.sim.Tick()

	c.setState(StateGameOver)
	if c.opts.Logger != nil {
		c.opts.Logger.Info("run over", "score", c.last.Score, "coins", c.last.Coins, "difficulty", c.last.Difficulty)
	}
	if c.opts.OnGameOver != nil {
		c.opts.OnGameOver(c.last)
	}
}

func (c *Controller) pauseMenu(in core.InputSnapshot) {
	idx := c.pauseIndex
	if in.Up {
		idx = PauseResume
	}
	if in.Down {
		idx = PauseQuit
	}
	c.hover(&c.pauseIndex, idx)

	switch {
	case in.Confirm:
		c.opts.Audio.Play(audio.SoundSelect)
		if c.pauseIndex == PauseResume {
			c.setState(StatePlaying)
		} else {
			c.setState(StateMenu)
		}
	case in.Pause:
		c.opts.Audio.Play(audio.SoundPause)
		c.setState(StatePlaying)
	}
}

func (c *Controller) gameOverMenu(in core.InputSnapshot) {
	idx := c.gameOverIndex
	if in.Brake || in.Up {
		idx = GameOverRetry
	}
	if in.Gas || in.Down {
		idx = GameOverMenu
	}
	c.hover(&c.gameOverIndex, idx)

	if !in.Confirm {
		return
	}
	c.opts.Audio.Play(audio.SoundSelect)
	if c.gameOverIndex == GameOverRetry {
		c.Start()
	} else {
		c.setState(StateMenu)
	}
}

// hover moves a menu cursor and plays the hover cue if it changed.
func (c *Controller) hover(cursor *int, idx int) {
	if *cursor == idx {
		return
	}
	*cursor = idx
	c.opts.Audio.Play(audio.SoundHover)
}

func (c *Controller) setState(s State) {
	if c.opts.Logger != nil {
		c.opts.Logger.Debug("state change", "from", c.state, "to", s)
	}
	switch s {
	case StatePaused:
		c.pauseIndex = PauseResume
	case StateGameOver:
		c.gameOverIndex = GameOverRetry
	}
	c.state = s
	c.lock = c.cfg.TransitionLockTicks
}

// State returns the current screen.
func (c *Controller) State() State { return c.state }

// Lives returns the lives left in the current run.
func (c *Controller) Lives() int { return c.lives }

// PauseIndex returns the highlighted pause menu entry.
func (c *Controller) PauseIndex() int { return c.pauseIndex }

// GameOverIndex returns the highlighted game over menu entry.
func (c *Controller) GameOverIndex() int { return c.gameOverIndex }

// Locked reports whether menu input is currently ignored.
func (c *Controller) Locked() bool { return c.lock > 0 }

// Simulation returns the current run, or nil before the first start.
func (c *Controller) Simulation() *runner.Simulation { return c.sim }

// LastRun returns the summary of the most recent run.
func (c *Controller) LastRun() Run { return c.last }

// Rules returns the rules every run is started with.
func (c *Controller) Rules() *runner.Rules { return c.rules }

// Difficulty returns the preset runs are played on.
func (c *Controller) Difficulty() config.DifficultyPreset { return c.opts.Difficulty }

// Snapshot returns the render state of the current run. ok is false before
// the first run.
func (c *Controller) Snapshot() (snap runner.Snapshot, ok bool) {
	if c.sim == nil {
		return runner.Snapshot{}, false
	}
	return c.sim.Snapshot(), true
}
