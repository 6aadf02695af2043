package flappy

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
)

const eps = 1e-9

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestRound(cfg config.Config) *Round {
	return NewRound(cfg, 1.5, epoch)
}

func TestNewBirdGeometry(t *testing.T) {
	b := NewBird(config.Default(), 1.5)

	if b.X != 80 || b.Y != 300 {
		t.Errorf("bird starts at (%v, %v), expected (80, 300)", b.X, b.Y)
	}
	if b.Height != 48 || b.Width != 72 {
		t.Errorf("bird size = %vx%v, expected 72x48", b.Width, b.Height)
	}
	if b.Vel != 0 || b.Angle != 0 {
		t.Errorf("bird should start at rest, vel=%v angle=%v", b.Vel, b.Angle)
	}
}

func TestGravityStep(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg, 1)

	for i := 0; i < 5; i++ {
		vel, y := b.Vel, b.Y
		b.Update(cfg)
		if math.Abs(b.Vel-(vel+cfg.Physics.Gravity)) > eps {
			t.Fatalf("frame %d: vel = %v, expected %v", i, b.Vel, vel+cfg.Physics.Gravity)
		}
		if math.Abs(b.Y-(y+b.Vel)) > eps {
			t.Fatalf("frame %d: y = %v, expected %v", i, b.Y, y+b.Vel)
		}
	}
}

func TestFlapReplacesVelocity(t *testing.T) {
	cfg := config.Default()

	for _, vel := range []float64{0, 7.5, -20} {
		b := NewBird(cfg, 1)
		b.Vel = vel
		b.Flap(cfg.Physics)
		if b.Vel != -9 {
			t.Errorf("flap from vel %v gave %v, expected -9", vel, b.Vel)
		}
	}
}

func TestTiltClamped(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		vel   float64
		angle float64
	}{
		{vel: 30, angle: -30},
		{vel: -40, angle: 60},
		{vel: -5, angle: 15},
	}

	for _, tc := range tests {
		b := NewBird(cfg, 1)
		b.Vel = tc.vel - cfg.Physics.Gravity
		b.Update(cfg)
		if math.Abs(b.Angle-tc.angle) > eps {
			t.Errorf("vel %v: angle = %v, expected %v", tc.vel, b.Angle, tc.angle)
		}
	}
}

func TestGapCenterWithinBounds(t *testing.T) {
	cfg := config.Default()
	o := cfg.Obstacles

	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := NewPipe(450, cfg, rng)

		if p.Center != math.Trunc(p.Center) {
			t.Fatalf("seed %d: gap center %v is not an integer", seed, p.Center)
		}
		top := p.Center - o.GapHeight/2
		bottom := p.Center + o.GapHeight/2
		if top < o.GapMargin || bottom > cfg.GroundY()-o.GapMargin {
			t.Fatalf("seed %d: gap [%v, %v] leaves the playable area", seed, top, bottom)
		}
	}
}

func TestPipeRects(t *testing.T) {
	o := config.Default().Obstacles
	p := Pipe{X: 100, Center: 300}

	if got := p.TopRect(o); got.Bottom != 225 || got.Top != -275 || got.Left != 100 || got.Right != 160 {
		t.Errorf("TopRect() = %+v", got)
	}
	if got := p.BottomRect(o); got.Top != 375 || got.Bottom != 875 {
		t.Errorf("BottomRect() = %+v", got)
	}
}

func TestHitsPipe(t *testing.T) {
	o := config.Default().Obstacles
	pipes := []Pipe{{X: 100, Center: 300}}

	tests := []struct {
		name string
		bird core.Rect
		hit  bool
	}{
		{"inside the gap", core.NewRect(110, 250, 40, 40), false},
		{"touching the top pipe edge", core.NewRect(110, 225, 40, 40), false},
		{"overlapping the top pipe", core.NewRect(110, 224, 40, 40), true},
		{"overlapping the bottom pipe", core.NewRect(110, 340, 40, 40), true},
		{"left of the pipe", core.NewRect(20, 100, 80, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsPipe(tc.bird, pipes, o); got != tc.hit {
				t.Errorf("HitsPipe() = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name   string
		top    float64
		height float64
		out    bool
	}{
		{"bottom exactly on the ground line", 452, 48, true},
		{"bottom one above the ground line", 451, 48, false},
		{"bottom one below the ground line", 453, 48, true},
		{"top exactly at zero", 0, 48, true},
		{"top one below zero", 1, 48, false},
		{"above the screen", -10, 48, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := core.NewRect(56, tc.top, 72, tc.height)
			if got := OutOfBounds(r, cfg); got != tc.out {
				t.Errorf("OutOfBounds(%+v) = %v, expected %v", r, got, tc.out)
			}
		})
	}
}

func TestScoringPassedOnce(t *testing.T) {
	cfg := config.Default()
	phys := NewPhysics(cfg, 1)
	r := newTestRound(cfg)
	r.Pipes = []Pipe{
		{X: 10, Center: 300},
		{X: 100, Center: 300},
	}

	out := phys.Step(r, epoch)
	if out.Scored != 1 || r.Score != 1 {
		t.Fatalf("first step scored %d (total %d), expected 1", out.Scored, r.Score)
	}
	if !r.Pipes[0].Passed || r.Pipes[1].Passed {
		t.Fatalf("only the first pipe should be passed: %+v", r.Pipes)
	}

	out = phys.Step(r, epoch)
	if out.Scored != 0 || r.Score != 1 {
		t.Fatalf("a passed pipe scored again: step %d, total %d", out.Scored, r.Score)
	}

	for i := 0; i < 100 && !r.Pipes[1].Passed; i++ {
		phys.Step(r, epoch)
	}
	if r.Score != 2 {
		t.Errorf("score = %d after the second pipe passed, expected 2", r.Score)
	}
	for i := 1; i < len(r.Pipes); i++ {
		if r.Pipes[i-1].X >= r.Pipes[i].X {
			t.Errorf("pipes out of creation order: %+v", r.Pipes)
		}
	}
}

func TestCullPreservesOrder(t *testing.T) {
	cfg := config.Default()
	phys := NewPhysics(cfg, 1)
	r := newTestRound(cfg)
	// Right edges after one step: -112.5+60-4.5 = -57 is culled, -44.5+60-4.5 = 11 is kept.
	r.Pipes = []Pipe{
		{X: -112.5, Center: 200, Passed: true},
		{X: -44.5, Center: 250, Passed: true},
		{X: 200, Center: 300},
	}

	phys.Step(r, epoch)
	if len(r.Pipes) != 2 {
		t.Fatalf("expected 2 pipes after culling, got %d", len(r.Pipes))
	}
	if r.Pipes[0].Center != 250 || r.Pipes[1].Center != 300 {
		t.Errorf("culling reordered pipes: %+v", r.Pipes)
	}
}

func TestCullBoundary(t *testing.T) {
	cfg := config.Default()
	phys := NewPhysics(cfg, 1)

	// A right edge landing exactly on -50 is removed.
	r := newTestRound(cfg)
	r.Pipes = []Pipe{{X: -105.5, Center: 300, Passed: true}}
	phys.Step(r, epoch)
	if len(r.Pipes) != 0 {
		t.Errorf("pipe with right edge at -50 should be culled, got %+v", r.Pipes)
	}

	r = newTestRound(cfg)
	r.Pipes = []Pipe{{X: -104.5, Center: 300, Passed: true}}
	phys.Step(r, epoch)
	if len(r.Pipes) != 1 {
		t.Errorf("pipe with right edge at -49 should be kept")
	}
}

func TestSpawnInterval(t *testing.T) {
	cfg := config.Default()
	phys := NewPhysics(cfg, 1)
	r := newTestRound(cfg)

	if out := phys.Step(r, epoch.Add(1500*time.Millisecond)); out.Spawned {
		t.Fatal("spawned at exactly the interval, expected strictly greater")
	}
	out := phys.Step(r, epoch.Add(1501*time.Millisecond))
	if !out.Spawned || len(r.Pipes) != 1 {
		t.Fatalf("expected one spawn after the interval, got %+v with %d pipes", out, len(r.Pipes))
	}
	if r.Pipes[0].X != 450 {
		t.Errorf("spawned pipe x = %v, expected 450", r.Pipes[0].X)
	}
	if !r.LastSpawn.Equal(epoch.Add(1501 * time.Millisecond)) {
		t.Errorf("LastSpawn = %v, expected the spawn time", r.LastSpawn)
	}
}

func TestGroundWrap(t *testing.T) {
	cfg := config.Default()
	phys := NewPhysics(cfg, 1)

	r := newTestRound(cfg)
	r.GroundOffset = -395.5
	phys.Step(r, epoch)
	if r.GroundOffset != 0 {
		t.Errorf("offset reaching -400 should wrap to exactly 0, got %v", r.GroundOffset)
	}

	r = newTestRound(cfg)
	r.GroundOffset = -395
	phys.Step(r, epoch)
	if r.GroundOffset != -399.5 {
		t.Errorf("offset above -400 should not wrap, got %v", r.GroundOffset)
	}
}
