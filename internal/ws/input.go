package ws

import (
	"sync"

	"github.com/playmatatu/pong/internal/game"
)

// InputState collects controller messages between ticks. The held intent
// persists until changed; replay and quit are delivered to one Poll only.
type InputState struct {
	mu     sync.Mutex
	intent game.Intent
	replay *bool
	quit   bool
}

func (s *InputState) SetIntent(i game.Intent) {
	s.mu.Lock()
	s.intent = i
	s.mu.Unlock()
}

func (s *InputState) SetReplay(yes bool) {
	s.mu.Lock()
	s.replay = &yes
	s.mu.Unlock()
}

func (s *InputState) Quit() {
	s.mu.Lock()
	s.quit = true
	s.mu.Unlock()
}

// Release drops the held intent, e.g. when the controller disconnects.
func (s *InputState) Release() {
	s.SetIntent(game.IntentNone)
}

// Poll implements game.InputSource.
func (s *InputState) Poll() game.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := game.Input{Quit: s.quit, Replay: s.replay, Intent: s.intent}
	s.replay = nil
	s.quit = false
	return in
}

// Apply feeds one decoded client message into the state. It reports false
// for message types it does not understand.
func (s *InputState) Apply(msg ClientMessage) bool {
	switch msg.Type {
	case "input":
		s.SetIntent(game.ParseIntent(msg.Intent))
	case "replay":
		if msg.Value == nil {
			return false
		}
		s.SetReplay(*msg.Value)
	case "quit":
		s.Quit()
	default:
		return false
	}
	return true
}
