package game

// Intent is the vertical direction a human asks for on a tick.
type Intent int8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	default:
		return "none"
	}
}

// ParseIntent maps wire names to intents. Unknown names are IntentNone.
func ParseIntent(s string) Intent {
	switch s {
	case "up":
		return IntentUp
	case "down":
		return IntentDown
	default:
		return IntentNone
	}
}

// TickContext is what a controller may look at when moving its paddle.
type TickContext struct {
	Intent Intent
	Ball   Ball
	Field  Field
}

// Controller moves one paddle per tick and returns its new, clamped Y.
type Controller interface {
	Update(p *Paddle, tc TickContext) int
}

// Human follows the input intent.
type Human struct{}

func (Human) Update(p *Paddle, tc TickContext) int {
	switch tc.Intent {
	case IntentUp:
		p.Y -= p.Speed
	case IntentDown:
		p.Y += p.Speed
	}
	p.clamp(tc.Field)
	return p.Y
}

// Reactive chases the ball's vertical centre. It holds still while the
// ball is within DeadZone pixels of the paddle centre so it does not jitter.
type Reactive struct {
	DeadZone int
}

func (r Reactive) Update(p *Paddle, tc TickContext) int {
	ballY := tc.Ball.CenterY()
	paddleY := p.CenterY()
	switch {
	case ballY < paddleY-r.DeadZone:
		p.Y -= p.Speed
	case ballY > paddleY+r.DeadZone:
		p.Y += p.Speed
	}
	p.clamp(tc.Field)
	return p.Y
}
