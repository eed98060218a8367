package game

import (
	"log"

	"github.com/google/uuid"
	"github.com/playmatatu/pong/internal/config"
)

// Match owns everything that changes during play: paddles, ball, score
// and the Playing/GameOver state.
type Match struct {
	ID     uuid.UUID
	Field  Field
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Score  Score
	State  State
	Winner Side
	Tick   uint64

	winScore int
	resolver *Resolver
	serves   *ServeGenerator
	cfg      config.Game
}

// NewMatch creates a match in the Playing state with a served ball.
func NewMatch(cfg config.Game, serves *ServeGenerator) *Match {
	field := Field{Width: cfg.FieldWidth, Height: cfg.FieldHeight}
	m := &Match{
		Field:    field,
		winScore: cfg.WinScore,
		resolver: NewResolver(field, serves),
		serves:   serves,
		cfg:      cfg,
	}
	m.Restart()
	return m
}

// Restart begins a new match: scores back to zero, everything recentred
// and the ball served in a random direction.
func (m *Match) Restart() {
	m.ID = uuid.New()
	m.Left, m.Right = newPaddles(m.cfg)
	m.Ball = Ball{Size: m.cfg.BallSize}
	m.resolver.Reset(&m.Ball, m.serves.Direction())
	m.Score = Score{}
	m.State = StatePlaying
	m.Winner = SideNone
	log.Printf("[MATCH] Match %s started (first to %d)", m.ID, m.winScore)
}

// Award gives one point to side and ends the match when it reaches the
// win score. Points are ignored outside of play.
func (m *Match) Award(side Side) {
	if m.State != StatePlaying || side == SideNone {
		return
	}
	switch side {
	case SideLeft:
		m.Score.Left++
	case SideRight:
		m.Score.Right++
	}
	log.Printf("[MATCH] %s scored: %d-%d", side, m.Score.Left, m.Score.Right)

	if m.Score.Of(side) >= m.winScore {
		m.State = StateGameOver
		m.Winner = side
		log.Printf("[MATCH] Match %s over, %s wins %d-%d", m.ID, side, m.Score.Left, m.Score.Right)
	}
}

// Replay applies the external play-again decision. It only has an effect
// in GameOver: yes restarts, no terminates.
func (m *Match) Replay(yes bool) {
	if m.State != StateGameOver {
		return
	}
	if yes {
		m.Restart()
		return
	}
	m.State = StateTerminated
	log.Printf("[MATCH] Replay declined, match %s terminated", m.ID)
}

// Terminate ends the match immediately, whatever its state.
func (m *Match) Terminate() {
	m.State = StateTerminated
}

// Frame snapshots the match for renderers.
func (m *Match) Frame() Frame {
	return Frame{
		MatchID: m.ID.String(),
		Tick:    m.Tick,
		Field:   m.Field,
		Left:    m.Left,
		Right:   m.Right,
		Ball:    m.Ball,
		Score:   m.Score,
		State:   m.State,
		Winner:  m.Winner,
	}
}
