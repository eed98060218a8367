package desktop

import "github.com/playmatatu/pong/internal/game"

// Key is a key the game listens to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyY
	KeyEnter
	KeyN
	KeyEscape
)

// KeyState is the keyboard as seen on the current tick.
type KeyState interface {
	Pressed(Key) bool
	JustPressed(Key) bool
	Closing() bool
}

// Keyboard turns key state into game input: arrows move the right paddle,
// Y/Enter and N/Escape answer the play-again prompt, closing the window quits.
type Keyboard struct {
	keys KeyState
}

func NewKeyboard(keys KeyState) *Keyboard {
	return &Keyboard{keys: keys}
}

func (k *Keyboard) Poll() game.Input {
	in := game.Input{Quit: k.keys.Closing()}

	up, down := k.keys.Pressed(KeyUp), k.keys.Pressed(KeyDown)
	switch {
	case up && !down:
		in.Intent = game.IntentUp
	case down && !up:
		in.Intent = game.IntentDown
	}

	switch {
	case k.keys.JustPressed(KeyY) || k.keys.JustPressed(KeyEnter):
		yes := true
		in.Replay = &yes
	case k.keys.JustPressed(KeyN) || k.keys.JustPressed(KeyEscape):
		no := false
		in.Replay = &no
	}
	return in
}
