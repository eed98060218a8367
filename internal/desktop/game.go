//go:build ebiten

package desktop

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/playmatatu/pong/internal/config"
	"github.com/playmatatu/pong/internal/game"
)

var (
	white = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	black = color.RGBA{A: 255}
)

// Game adapts a game.Loop to ebiten: one Update is one tick.
type Game struct {
	loop   *game.Loop
	width  int
	height int
}

func (g *Game) Update() error {
	if !g.loop.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(black)
	s := BuildScene(g.loop.Frame())

	for _, r := range s.Midline {
		fillRect(screen, r)
	}
	for _, r := range s.Paddles {
		fillRect(screen, r)
	}
	radius := s.Ball.W / 2
	vector.DrawFilledCircle(screen, s.Ball.X+radius, s.Ball.Y+radius, radius, white, true)

	for _, t := range s.Texts {
		ebitenutil.DebugPrintAt(screen, t.S, t.X, t.Y)
	}
}

func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

func fillRect(dst *ebiten.Image, r Rect) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, white, false)
}

// Run opens the window and plays until the player quits or declines a replay.
func Run(cfg config.Game, rng game.Rand) error {
	ebiten.SetWindowSize(cfg.FieldWidth, cfg.FieldHeight)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	loop := game.NewLoop(cfg, rng, NewKeyboard(ebitenKeys{}), game.WithAudio(NewSpeaker()))

	log.Printf("[DESKTOP] Window %dx%d at %d TPS", cfg.FieldWidth, cfg.FieldHeight, cfg.TickRate)
	if err := ebiten.RunGame(&Game{loop: loop, width: cfg.FieldWidth, height: cfg.FieldHeight}); err != nil {
		return err
	}
	log.Printf("[DESKTOP] Window closed after %d ticks", loop.Frame().Tick)
	return nil
}
