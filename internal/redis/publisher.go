package redis

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/playmatatu/pong/internal/game"
	"github.com/redis/go-redis/v9"
)

const (
	FramesChannel = "pong:frames"
	CuesChannel   = "pong:cues"
)

// publishFunc is satisfied by (*redis.Client).Publish.
type publishFunc func(ctx context.Context, channel string, message interface{}) *redis.IntCmd

type envelope struct {
	channel string
	payload []byte
}

type cueEvent struct {
	Type    string    `json:"type"`
	MatchID string    `json:"match_id"`
	Cue     string    `json:"cue"`
	Tone    game.Tone `json:"tone"`
}

// Publisher mirrors frames and cues onto Redis pub/sub so other processes
// can watch a match. It never blocks the loop: messages are queued and a
// full queue drops them.
type Publisher struct {
	publish publishFunc
	every   uint64
	queue   chan envelope

	mu      sync.Mutex
	matchID string
	dropped uint64
}

// NewPublisher returns a Publisher that sends every n-th frame (n < 1 means every frame).
func NewPublisher(rdb *redis.Client, every int) *Publisher {
	return newPublisher(rdb.Publish, every)
}

func newPublisher(publish publishFunc, every int) *Publisher {
	if every < 1 {
		every = 1
	}
	return &Publisher{
		publish: publish,
		every:   uint64(every),
		queue:   make(chan envelope, 128),
	}
}

// Run drains the queue until ctx is cancelled.
func (p *Publisher) Run(ctx context.Context) {
	log.Printf("[REDIS] Publisher started (%s every %d ticks, %s)", FramesChannel, p.every, CuesChannel)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[REDIS] Publisher stopped, %d messages dropped", p.Dropped())
			return
		case env := <-p.queue:
			if err := p.publish(ctx, env.channel, env.payload).Err(); err != nil {
				log.Printf("[REDIS] Publish to %s failed: %v", env.channel, err)
			}
		}
	}
}

// Render implements game.Renderer.
func (p *Publisher) Render(f game.Frame) {
	p.mu.Lock()
	p.matchID = f.MatchID
	p.mu.Unlock()

	if f.Tick%p.every != 0 && f.State == game.StatePlaying {
		return
	}
	data, err := json.Marshal(f)
	if err != nil {
		log.Printf("[REDIS] Error marshaling frame: %v", err)
		return
	}
	p.enqueue(FramesChannel, data)
}

// Play implements game.AudioSink.
func (p *Publisher) Play(c game.Cue) {
	p.mu.Lock()
	id := p.matchID
	p.mu.Unlock()

	data, err := json.Marshal(cueEvent{Type: "cue", MatchID: id, Cue: c.String(), Tone: c.Tone()})
	if err != nil {
		log.Printf("[REDIS] Error marshaling cue: %v", err)
		return
	}
	p.enqueue(CuesChannel, data)
}

// Dropped returns how many messages were discarded because the queue was full.
func (p *Publisher) Dropped() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

func (p *Publisher) enqueue(channel string, payload []byte) {
	select {
	case p.queue <- envelope{channel: channel, payload: payload}:
	default:
		p.mu.Lock()
		p.dropped++
		n := p.dropped
		p.mu.Unlock()
		if n == 1 || n%100 == 0 {
			log.Printf("[REDIS] Publish queue full, %d messages dropped so far", n)
		}
	}
}
