// Package flappy implements a Flappy Bird-style game.
// The player controls a cat that must pass through gaps in a stream of pipes.
//
// A Session owns the round state and the phase machine. Frontends feed it raw
// input events and call Update once per displayed frame; rendering goes
// through core.Surface so the same code draws to a window or a terminal.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
)

// Cosmetic animation parameters.
const (
	menuBobAmplitude = 8    // logical units
	menuBobPeriod    = 0.45 // seconds per half swing
	overlayAlpha     = 0.6
	overlayFade      = 0.25 // seconds
	maxFrameDelta    = 0.1  // seconds, caps tween jumps after stalls
)

// Clock supplies wall-clock time to the spawner.
type Clock interface {
	Now() time.Time
}

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now.
var SystemClock Clock = clockFunc(time.Now)

// Options configures a Session.
type Options struct {
	Clock      Clock       // defaults to SystemClock
	Seed       int64       // gap placement seed
	BirdAspect float64     // sprite width/height, defaults to 1
	Logger     *log.Logger // defaults to a discarding logger
}

// Session drives the game: one phase machine and one round at a time.
type Session struct {
	cfg     config.Config
	opts    Options
	physics *Physics
	phase   Phase
	round   *Round

	lastFrame time.Time
	bob       *gween.Tween
	bobUp     bool
	bobOffset float64
	fade      *gween.Tween
	alpha     float64
}

// NewSession creates a session in the menu phase. A round is prepared
// immediately so the menu has a scene to draw.
func NewSession(cfg config.Config, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.BirdAspect <= 0 {
		opts.BirdAspect = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	now := opts.Clock.Now()
	s := &Session{
		cfg:       cfg,
		opts:      opts,
		physics:   NewPhysics(cfg, opts.Seed),
		phase:     PhaseMenu,
		round:     NewRound(cfg, opts.BirdAspect, now),
		lastFrame: now,
	}
	s.startBob()
	return s
}

// Config returns the session's constants.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Round returns the current round. It is replaced, not mutated, on restart.
func (s *Session) Round() *Round {
	return s.round
}

// State returns a snapshot for frontends.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.round.Score,
		Playing:   s.phase == PhasePlaying,
		RoundOver: s.phase == PhaseRoundOver,
	}
}

// Dispatch resolves a raw event against the current phase and applies it.
func (s *Session) Dispatch(ev core.InputEvent) core.Action {
	if ev.Kind == core.EventKey && ev.Key == core.KeyEscape {
		s.opts.Logger.Debug("escape pressed")
	}
	a := Resolve(ev, s.phase)
	s.Apply(a)
	return a
}

// Apply performs a logical action. Actions without meaning in the current
// phase are ignored.
func (s *Session) Apply(a core.Action) {
	if ev, ok := actionEvent(a); ok {
		s.fire(ev)
	}
}

// Frame processes the frame's queued input in order, then advances one frame.
func (s *Session) Frame(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events {
		s.Dispatch(ev)
	}
	return s.Update()
}

// Update advances the simulation by one frame. Physics only runs while
// playing; the other phases keep drawing a frozen scene.
func (s *Session) Update() core.StepResult {
	now := s.opts.Clock.Now()
	dt := now.Sub(s.lastFrame).Seconds()
	s.lastFrame = now
	s.animate(float32(core.ClampF(dt, 0, maxFrameDelta)))

	var result core.StepResult
	if s.phase == PhasePlaying {
		out := s.physics.Step(s.round, now)
		if out.Collided {
			s.fire(EventCollision)
			result.RoundEnded = true
		}
	}

	result.State = s.State()
	return result
}

// fire runs ev through the transition table.
func (s *Session) fire(ev Event) {
	next, effect, ok := s.phase.Next(ev)
	if !ok {
		return
	}

	switch effect {
	case EffectNewRound:
		now := s.opts.Clock.Now()
		s.round = NewRound(s.cfg, s.opts.BirdAspect, now)
		s.fade = nil
		s.alpha = 0
		s.opts.Logger.Info("round started", "round", s.round.ID)
	case EffectFlap:
		s.round.Bird.Flap(s.cfg.Physics)
	case EffectEndRound:
		s.fade = gween.New(0, overlayAlpha, overlayFade, ease.OutQuad)
		s.opts.Logger.Info("round over",
			"round", s.round.ID,
			"score", s.round.Score,
			"duration", s.opts.Clock.Now().Sub(s.round.StartedAt).Round(time.Millisecond),
		)
	}

	s.phase = next
}

// MenuBob returns the cosmetic vertical offset of the bird on the menu.
func (s *Session) MenuBob() float64 {
	if s.phase != PhaseMenu {
		return 0
	}
	return s.bobOffset
}

// OverlayAlpha returns the current opacity of the round-over overlay.
func (s *Session) OverlayAlpha() float64 {
	return s.alpha
}

func (s *Session) startBob() {
	from, to := float32(menuBobAmplitude), float32(-menuBobAmplitude)
	if s.bobUp {
		from, to = to, from
	}
	s.bobUp = !s.bobUp
	s.bob = gween.New(from, to, menuBobPeriod, ease.InOutSine)
}

func (s *Session) animate(dt float32) {
	if s.phase == PhaseMenu {
		v, done := s.bob.Update(dt)
		s.bobOffset = float64(v)
		if done {
			s.startBob()
		}
	}
	if s.fade != nil {
		v, done := s.fade.Update(dt)
		s.alpha = float64(v)
		if done {
			s.fade = nil
		}
	}
}
