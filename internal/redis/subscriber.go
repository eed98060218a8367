package redis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/playmatatu/pong/internal/ws"
	"github.com/redis/go-redis/v9"
)

// InputChannel carries controller messages from other processes, in the
// same JSON shape a browser controller sends.
const InputChannel = "pong:input"

// InputApplier is satisfied by *ws.InputState.
type InputApplier interface {
	Apply(ws.ClientMessage) bool
}

// StartInputRelay subscribes to InputChannel and applies every message to
// input until ctx is cancelled.
func StartInputRelay(ctx context.Context, rdb *redis.Client, input InputApplier) {
	pubsub := rdb.Subscribe(ctx, InputChannel)
	go func() {
		defer pubsub.Close()
		log.Printf("[REDIS] %s subscriber started", InputChannel)
		relayInput(ctx, pubsub.Channel(), input)
		log.Printf("[REDIS] %s subscriber stopped", InputChannel)
	}()
}

func relayInput(ctx context.Context, ch <-chan *redis.Message, input InputApplier) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var cm ws.ClientMessage
			if err := json.Unmarshal([]byte(msg.Payload), &cm); err != nil {
				log.Printf("[REDIS] invalid input payload: %v", err)
				continue
			}
			if !input.Apply(cm) {
				log.Printf("[REDIS] unknown input type: %s", cm.Type)
			}
		}
	}
}
