//go:build !ebiten

package desktop

import (
	"errors"

	"github.com/playmatatu/pong/internal/config"
	"github.com/playmatatu/pong/internal/game"
)

// Run reports that this binary was built without the window backend.
func Run(config.Game, game.Rand) error {
	return errors.New("desktop host requires building with the 'ebiten' tag")
}
