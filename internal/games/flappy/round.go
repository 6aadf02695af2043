package flappy

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/flappycat/internal/config"
)

// Round is the complete simulation state of one play session.
// Pipes are kept in creation order, which is also increasing x.
type Round struct {
	ID           uuid.UUID
	Bird         Bird
	Pipes        []Pipe
	Score        int
	GroundOffset float64
	Speed        float64 // constant for the round
	LastSpawn    time.Time
	StartedAt    time.Time
}

// NewRound creates a fresh round whose timers start at now.
func NewRound(cfg config.Config, birdAspect float64, now time.Time) *Round {
	return &Round{
		ID:        uuid.New(),
		Bird:      NewBird(cfg, birdAspect),
		Pipes:     make([]Pipe, 0, 8),
		Speed:     cfg.Obstacles.InitialSpeed,
		LastSpawn: now,
		StartedAt: now,
	}
}
