package system

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/obj"
	"github.com/milk9111/stickerclimb/prefabs"
	"github.com/milk9111/stickerclimb/storage"
)

type State int

const (
	Playing State = iota
	GameOver
	LevelComplete
	Victory
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case LevelComplete:
		return "level_complete"
	case Victory:
		return "victory"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	defaultVictoryDelay = 120
	maxSeed             = 100000
)

// Input is one frame of player intent plus the menu keys.
type Input struct {
	obj.Input
	Restart  bool
	Quit     bool
	Continue bool
}

// RunRecorder persists a finished run. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

type Config struct {
	// Seed is used when FixedSeed is set; otherwise every run draws a new one.
	Seed      int64
	FixedSeed bool
	// Level is the starting level, 1 when zero.
	Level int

	Spec     *prefabs.GameSpec
	Art      obj.Art
	Logger   *log.Logger
	Recorder RunRecorder

	// LoadScript resolves script:<name> patterns. Defaults to prefabs.LoadScript.
	LoadScript func(name string) ([]byte, error)
	// NewSeed draws a run seed. Defaults to math/rand.
	NewSeed func() int64
}

// Session drives the level sequence and the per-frame game loop.
type Session struct {
	cfg    Config
	spec   *prefabs.GameSpec
	logger *log.Logger

	state    State
	level    int
	seed     int64
	world    *World
	camera   *obj.Camera
	stickers map[int]struct{}
	scripts  map[string]*obj.ScriptPattern

	frames       int
	victoryTimer int
	recorded     bool
	quit         bool
}

func NewSession(cfg Config) (*Session, error) {
	if cfg.Spec == nil {
		spec, err := prefabs.DefaultGameSpec()
		if err != nil {
			return nil, err
		}
		cfg.Spec = spec
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.LoadScript == nil {
		cfg.LoadScript = prefabs.LoadScript
	}
	if cfg.NewSeed == nil {
		cfg.NewSeed = func() int64 { return rand.Int63n(maxSeed + 1) }
	}
	if cfg.Level == 0 {
		cfg.Level = 1
	}
	if cfg.Level < 1 || cfg.Level > common.TotalLevels {
		return nil, fmt.Errorf("system: start level %d out of range 1..%d", cfg.Level, common.TotalLevels)
	}

	s := &Session{
		cfg:     cfg,
		spec:    cfg.Spec,
		logger:  cfg.Logger,
		camera:  obj.NewLevelCamera(),
		scripts: make(map[string]*obj.ScriptPattern),
	}
	s.applyCamera()
	s.compileScripts()
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) State() State            { return s.state }
func (s *Session) Level() int              { return s.level }
func (s *Session) Seed() int64             { return s.seed }
func (s *Session) World() *World           { return s.world }
func (s *Session) Camera() *obj.Camera     { return s.camera }
func (s *Session) Spec() *prefabs.GameSpec { return s.spec }

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool { return s.quit }

// Frames is the number of playing frames in the current run.
func (s *Session) Frames() int { return s.frames }

// VictoryTimer counts down after the boss falls.
func (s *Session) VictoryTimer() int { return s.victoryTimer }

// Stickers returns the collected sticker ids in ascending order.
func (s *Session) Stickers() []int {
	out := make([]int, 0, len(s.stickers))
	for id := range s.stickers {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// start begins a new run from the configured level.
func (s *Session) start() error {
	if s.cfg.FixedSeed {
		s.seed = s.cfg.Seed
	} else {
		s.seed = s.cfg.NewSeed()
	}
	s.stickers = make(map[int]struct{})
	s.frames = 0
	s.recorded = false
	s.logger.Info("run started", "seed", s.seed, "level", s.cfg.Level)
	return s.loadLevel(s.cfg.Level)
}

func (s *Session) loadLevel(level int) error {
	w, err := BuildWorld(level, s.seed, worldOptions{
		spec:    s.spec,
		art:     s.cfg.Art,
		scripts: s.scripts,
		onPhase: s.onBossPhase,
	})
	if err != nil {
		return err
	}
	s.world = w
	s.level = level
	s.state = Playing
	s.victoryTimer = 0
	s.camera.SetWorldBounds(common.ScreenWidth, common.LevelHeight)
	s.camera.SnapTo(w.Player.Rect)
	s.logger.Info("level loaded",
		"level", level,
		"name", w.Name,
		"difficulty", w.Difficulty,
		"platforms", len(w.Platforms),
		"obstacles", len(w.Obstacles),
		"hostiles", len(w.Hostiles),
	)
	return nil
}

func (s *Session) onBossPhase(from, to int) {
	s.logger.Info("boss phase changed", "from", from, "to", to)
}

// Update advances one frame. Outside Playing only the menu keys are read.
func (s *Session) Update(in Input) error {
	switch s.state {
	case GameOver, Victory:
		if in.Quit {
			s.quit = true
			return nil
		}
		if in.Restart {
			return s.start()
		}
		return nil
	case LevelComplete:
		if in.Continue {
			return s.advance()
		}
		return nil
	}

	s.frames++
	s.step(in.Input)
	return nil
}

// advance moves to the next regular level, or to the boss after the last one.
func (s *Session) advance() error {
	next := s.level + 1
	if s.level >= common.NumRegularLevels {
		next = common.BossLevel
	}
	return s.loadLevel(next)
}

func (s *Session) step(in obj.Input) {
	w := s.world

	w.spawnAttack(w.Player.Update(in, w.Collision))
	if w.Door != nil {
		w.Door.Update()
	}

	ctx := w.Context()
	for _, h := range w.Hostiles {
		h.Update(ctx)
	}
	w.updateProjectiles()

	w.resolveAttacks()
	w.resolveContact(s.spec.Enemies.MaxAttacking)
	w.resolveProjectiles()
	w.resolveObstacles()

	if id := w.collect(); id >= 0 {
		s.stickers[id] = struct{}{}
		s.logger.Info("sticker collected", "id", id, "total", len(s.stickers))
	}

	if w.checkDefeated() {
		s.logger.Info("hostiles defeated", "level", s.level)
		if w.BossLevel {
			s.victoryTimer = s.victoryDelay()
		}
	}

	if w.Door != nil && w.Door.Exiting(w.Player.Rect) {
		if w.BossLevel {
			s.finish(Victory)
		} else {
			s.state = LevelComplete
			s.logger.Info("level complete", "level", s.level)
		}
	}

	if s.state == Playing && !w.Player.Health.IsAlive() {
		s.finish(GameOver)
	}

	if s.state == Playing && w.BossLevel && w.Defeated {
		s.victoryTimer--
		if s.victoryTimer <= 0 {
			s.finish(Victory)
		}
	}

	s.camera.Update(w.Player.Rect)
}

func (s *Session) victoryDelay() int {
	if s.spec.VictoryDelay > 0 {
		return s.spec.VictoryDelay
	}
	return defaultVictoryDelay
}

// finish ends the run and records it once.
func (s *Session) finish(state State) {
	s.state = state
	s.logger.Info("run finished",
		"state", state,
		"seed", s.seed,
		"level", s.level,
		"stickers", len(s.stickers),
		"frames", s.frames,
	)
	if s.recorded || s.cfg.Recorder == nil {
		return
	}
	s.recorded = true
	_, err := s.cfg.Recorder.SaveRun(storage.Run{
		Seed:     s.seed,
		Level:    s.level,
		Stickers: len(s.stickers),
		Won:      state == Victory,
		Frames:   s.frames,
	})
	if err != nil {
		s.logger.Warn("could not record run", "error", err)
	}
}

// ApplySpec swaps in new tunables. Camera values apply immediately; the rest
// take effect from the next level load.
func (s *Session) ApplySpec(spec *prefabs.GameSpec) {
	if spec == nil {
		return
	}
	s.spec = spec
	s.applyCamera()
	s.compileScripts()
	s.logger.Info("game spec applied", "name", spec.Name)
}

func (s *Session) applyCamera() {
	c := s.spec.Camera
	s.camera.SetSmoothEnabled(c.SmoothEnabled)
	if c.SmoothFactor > 0 {
		s.camera.SetSmoothFactor(c.SmoothFactor)
	}
	offset, deadzone := c.PlayerOffset, c.Deadzone
	if offset <= 0 {
		offset = common.CameraPlayerOffset
	}
	s.camera.SetPlayerTracking(offset, deadzone)
}

// compileScripts compiles every scripted pattern the game spec names. A script
// that fails to load is logged and its enemies fall back to patrol.
func (s *Session) compileScripts() {
	for _, p := range s.spec.Enemies.Patterns {
		name, ok := strings.CutPrefix(p, obj.PatternScriptPrefix)
		if !ok {
			continue
		}
		if err := s.ReloadScript(name); err != nil {
			s.logger.Warn("script pattern unavailable", "script", name, "error", err)
		}
	}
}

// ReloadScript recompiles one scripted pattern. Enemies spawned from the
// next level load on use the new version.
func (s *Session) ReloadScript(name string) error {
	src, err := s.cfg.LoadScript(name)
	if err != nil {
		delete(s.scripts, name)
		return fmt.Errorf("system: load script %s: %w", name, err)
	}
	sp, err := obj.NewScriptPattern(name, src)
	if err != nil {
		delete(s.scripts, name)
		return err
	}
	sp.OnError = func(script string, err error) {
		s.logger.Warn("script pattern failed, falling back to patrol", "script", script, "error", err)
	}
	s.scripts[name] = sp
	return nil
}
