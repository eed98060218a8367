package game

import (
	"math/rand"
	"time"

	"github.com/playmatatu/pong/internal/config"
)

// Rand is the randomness the serve generator consumes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a generator seeded with seed, or from the clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ServeGenerator produces the ball velocity at the start of a rally.
type ServeGenerator struct {
	rng       Rand
	speedMin  int
	speedMax  int
	speedYMin int
	speedYMax int
}

func NewServeGenerator(rng Rand, cfg config.Game) *ServeGenerator {
	return &ServeGenerator{
		rng:       rng,
		speedMin:  cfg.BallSpeedMin,
		speedMax:  cfg.BallSpeedMax,
		speedYMin: cfg.ServeSpeedYMin,
		speedYMax: cfg.ServeSpeedYMax,
	}
}

// Serve returns a velocity whose horizontal sign follows direction.
// |vx| is uniform in [BallSpeedMin, BallSpeedMax) and |vy| in
// [ServeSpeedYMin, ServeSpeedYMax) with a random sign.
func (s *ServeGenerator) Serve(direction int) (vx, vy int) {
	dir := 1
	if direction < 0 {
		dir = -1
	}
	vx = dir * (s.speedMin + s.rng.Intn(s.speedMax-s.speedMin))
	vy = s.sign() * (s.speedYMin + s.rng.Intn(s.speedYMax-s.speedYMin))
	return vx, vy
}

// Direction picks -1 or +1 uniformly, used for the opening serve of a match.
func (s *ServeGenerator) Direction() int {
	return s.sign()
}

func (s *ServeGenerator) sign() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
