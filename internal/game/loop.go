package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/playmatatu/pong/internal/config"
)

// Loop runs the match one fixed tick at a time. Only the goroutine calling
// Step or Run touches the match; Frame may be read from anywhere.
type Loop struct {
	match    *Match
	human    Controller
	ai       Controller
	input    InputSource
	renderer Renderer
	audio    AudioSink
	tickRate int

	mu   sync.RWMutex
	last Frame
}

// Option configures a Loop.
type Option func(*Loop)

// WithRenderer sets the render sink.
func WithRenderer(r Renderer) Option {
	return func(l *Loop) { l.renderer = r }
}

// WithAudio sets the audio sink.
func WithAudio(a AudioSink) Option {
	return func(l *Loop) { l.audio = a }
}

// NewLoop builds a fresh match from cfg. rng feeds every serve.
func NewLoop(cfg config.Game, rng Rand, in InputSource, opts ...Option) *Loop {
	l := &Loop{
		match:    NewMatch(cfg, NewServeGenerator(rng, cfg)),
		human:    Human{},
		ai:       Reactive{DeadZone: cfg.AIDeadZone},
		input:    in,
		renderer: MultiRenderer(nil),
		audio:    NopAudio{},
		tickRate: cfg.TickRate,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.renderer == nil {
		l.renderer = MultiRenderer(nil)
	}
	if l.audio == nil {
		l.audio = NopAudio{}
	}
	l.last = l.match.Frame()
	return l
}

// Match exposes the match owned by the loop. Callers must not use it
// concurrently with Step.
func (l *Loop) Match() *Match {
	return l.match
}

// Frame returns the most recently rendered frame.
func (l *Loop) Frame() Frame {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.last
}

// Step runs one tick. It returns false once the match is terminated, in
// which case nothing is rendered.
func (l *Loop) Step() bool {
	m := l.match
	if m.State == StateTerminated {
		return false
	}

	in := l.input.Poll()
	if in.Quit {
		log.Printf("[LOOP] Quit received at tick %d", m.Tick)
		m.Terminate()
		return false
	}

	switch m.State {
	case StatePlaying:
		l.play(in)
	case StateGameOver:
		if in.Replay != nil {
			m.Replay(*in.Replay)
			if m.State == StateTerminated {
				return false
			}
		}
	}

	m.Tick++
	f := m.Frame()
	l.mu.Lock()
	l.last = f
	l.mu.Unlock()
	l.renderer.Render(f)
	return true
}

func (l *Loop) play(in Input) {
	m := l.match
	l.human.Update(&m.Right, TickContext{Intent: in.Intent, Field: m.Field})
	l.ai.Update(&m.Left, TickContext{Ball: m.Ball, Field: m.Field})

	res := m.resolver.Step(&m.Ball, &m.Left, &m.Right)
	if res.PaddleHit != SideNone {
		l.audio.Play(CuePaddleHit)
	}
	if res.Scored != SideNone {
		l.audio.Play(CueScore)
		m.Award(res.Scored)
	}
}

// Run paces Step at the configured tick rate until the match terminates
// or ctx is cancelled. Quitting and declining a replay return nil.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[LOOP] Running at %d ticks/s", l.tickRate)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[LOOP] Stopping: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if !l.Step() {
				log.Printf("[LOOP] Match terminated after %d ticks", l.match.Tick)
				return nil
			}
		}
	}
}
