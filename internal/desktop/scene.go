package desktop

import (
	"strconv"

	"github.com/playmatatu/pong/internal/game"
)

const (
	midlineWidth = 4
	midlineDash  = 18
	midlineGap   = 32
	scoreTop     = 26

	glyphW = 6 // debug font advance
)

// Rect is a filled rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Text is a line of text anchored at its top-left corner.
type Text struct {
	S    string
	X, Y int
}

// Scene is everything drawn for one frame.
type Scene struct {
	Midline []Rect
	Paddles [2]Rect
	Ball    Rect
	Texts   []Text
}

// BuildScene lays out a frame: dashed midline, paddles, ball, scores at
// the quarter widths and the game-over banner.
func BuildScene(f game.Frame) Scene {
	w, h := f.Field.Width, f.Field.Height
	var s Scene

	for y := 0; y < h; y += midlineGap {
		s.Midline = append(s.Midline, Rect{
			X: float32(w/2 - midlineWidth/2),
			Y: float32(y),
			W: midlineWidth,
			H: midlineDash,
		})
	}

	s.Paddles[0] = paddleRect(f.Left)
	s.Paddles[1] = paddleRect(f.Right)
	s.Ball = Rect{X: float32(f.Ball.X), Y: float32(f.Ball.Y), W: float32(f.Ball.Size), H: float32(f.Ball.Size)}

	s.Texts = append(s.Texts,
		centered(strconv.Itoa(f.Score.Left), w/4, scoreTop),
		centered(strconv.Itoa(f.Score.Right), 3*w/4, scoreTop),
	)
	if title, prompt := f.Banner(); title != "" {
		s.Texts = append(s.Texts,
			centered(title, w/2, h/2-44),
			centered(prompt, w/2, h/2+16),
		)
	}
	return s
}

func paddleRect(p game.Paddle) Rect {
	return Rect{X: float32(p.X), Y: float32(p.Y), W: float32(p.Width), H: float32(p.Height)}
}

func centered(s string, cx, y int) Text {
	return Text{S: s, X: cx - len(s)*glyphW/2, Y: y}
}
