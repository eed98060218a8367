//go:build ebiten

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeyMap = map[Key]ebiten.Key{
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyY:      ebiten.KeyY,
	KeyEnter:  ebiten.KeyEnter,
	KeyN:      ebiten.KeyN,
	KeyEscape: ebiten.KeyEscape,
}

// ebitenKeys reads the live keyboard. Only valid inside Update.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k Key) bool {
	return ebiten.IsKeyPressed(ebitenKeyMap[k])
}

func (ebitenKeys) JustPressed(k Key) bool {
	return inpututil.IsKeyJustPressed(ebitenKeyMap[k])
}

func (ebitenKeys) Closing() bool {
	return ebiten.IsWindowBeingClosed()
}
