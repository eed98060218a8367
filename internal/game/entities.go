package game

import "github.com/playmatatu/pong/internal/config"

// Side identifies one half of the field.
type Side int8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Direction is the horizontal sign pointing at this side: -1 for left, +1 for right.
func (s Side) Direction() int {
	if s == SideLeft {
		return -1
	}
	return 1
}

// Field is the playable area. The origin is the top-left corner.
type Field struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is an axis-aligned rectangle in field pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Left() int    { return r.X }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Top() int     { return r.Y }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Overlaps reports whether the two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Paddle is a vertical bat. X never changes after creation.
type Paddle struct {
	Side   Side `json:"side"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Speed  int  `json:"-"`
}

func (p Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p Paddle) CenterY() int {
	return p.Y + p.Height/2
}

// clamp keeps the paddle inside [0, field.Height-Height].
func (p *Paddle) clamp(f Field) {
	if p.Y < 0 {
		p.Y = 0
	}
	if bottom := f.Height - p.Height; p.Y > bottom {
		p.Y = bottom
	}
}

// Ball is a square ball with a per-tick velocity.
type Ball struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
	VX   int `json:"vx"`
	VY   int `json:"vy"`
}

func (b Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

func (b Ball) CenterY() int {
	return b.Y + b.Size/2
}

// center places the ball in the middle of the field.
func (b *Ball) center(f Field) {
	b.X = f.Width/2 - b.Size/2
	b.Y = f.Height/2 - b.Size/2
}

// Score holds the points of both sides.
type Score struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Of returns the points of the given side.
func (s Score) Of(side Side) int {
	switch side {
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	default:
		return 0
	}
}

// State is the phase of a match.
type State int8

const (
	StatePlaying State = iota
	StateGameOver
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

func newPaddles(cfg config.Game) (left, right Paddle) {
	y := cfg.FieldHeight/2 - cfg.PaddleHeight/2
	left = Paddle{
		Side:   SideLeft,
		X:      cfg.PaddleOffset,
		Y:      y,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Speed:  cfg.AISpeed,
	}
	right = Paddle{
		Side:   SideRight,
		X:      cfg.FieldWidth - cfg.PaddleOffset - cfg.PaddleWidth,
		Y:      y,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Speed:  cfg.PaddleSpeed,
	}
	return left, right
}
