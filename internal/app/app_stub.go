//go:build !ebiten

package app

import (
	"fmt"
	"log"

	"drainage/internal/drainage"
	"drainage/internal/tile"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*tile.Loader, int, int, int, *log.Logger) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Close is a no-op placeholder.
func (g *Game) Close() error { return nil }

// SetConfig is a no-op placeholder.
func (g *Game) SetConfig(drainage.Config) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
