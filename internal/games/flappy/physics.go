package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappycat/internal/config"
)

// Outcome describes what happened during one physics step.
type Outcome struct {
	Collided bool // the round must end
	Scored   int  // pipes passed this frame
	Spawned  bool // a pipe was appended this frame
}

// Physics advances a Round one frame at a time. Gravity and scrolling are
// frame-coupled; only the spawner reads the wall clock.
type Physics struct {
	cfg config.Config
	rng *rand.Rand
}

// NewPhysics creates a physics stepper. The seed drives gap placement.
func NewPhysics(cfg config.Config, seed int64) *Physics {
	return &Physics{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Step advances r by one frame observed at wall-clock time now.
func (p *Physics) Step(r *Round, now time.Time) Outcome {
	var out Outcome
	o := p.cfg.Obstacles

	r.Bird.Update(p.cfg)

	for i := range r.Pipes {
		r.Pipes[i].X -= r.Speed
	}
	r.Pipes = p.cull(r.Pipes)

	if now.Sub(r.LastSpawn) > o.SpawnInterval() {
		r.Pipes = append(r.Pipes, NewPipe(p.cfg.Screen.Width+o.SpawnOffset, p.cfg, p.rng))
		r.LastSpawn = now
		out.Spawned = true
	}

	birdRect := r.Bird.Rect()
	if HitsPipe(birdRect, r.Pipes, o) || OutOfBounds(birdRect, p.cfg) {
		out.Collided = true
	}

	for i := range r.Pipes {
		if !r.Pipes[i].Passed && r.Pipes[i].Right(o) < r.Bird.X {
			r.Pipes[i].Passed = true
			r.Score++
			out.Scored++
		}
	}

	r.GroundOffset -= r.Speed
	if r.GroundOffset <= -p.cfg.Ground.SpriteWidth {
		r.GroundOffset = 0
	}

	return out
}

// cull drops pipes whose right edge has scrolled past the cull margin,
// preserving the order of the rest.
func (p *Physics) cull(pipes []Pipe) []Pipe {
	o := p.cfg.Obstacles
	kept := pipes[:0]
	for _, pipe := range pipes {
		if pipe.Right(o) > -o.CullMargin {
			kept = append(kept, pipe)
		}
	}
	return kept
}
