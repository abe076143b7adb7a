package kujira

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Fullscreen bool

	// ShowFPS overlays the actual frame and tick rates in the top-left
	// corner.
	ShowFPS bool
}

// Run opens a window and drives the world at the fixed tick rate until the
// quit flag stops it or the window is closed. Frame pacing is best-effort:
// ticks that finish early sleep out the remainder, overruns start the next
// tick immediately with no catch-up.
func Run(w *World, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Kujira"
	}
	ebiten.SetWindowSize(DisplayW, DisplayH)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(TickRate)
	if err := ebiten.RunGame(&game{world: w, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("kujira: run: %w", err)
	}
	return nil
}

// game adapts a World to the ebiten.Game interface.
type game struct {
	world   *World
	showFPS bool
	pix     []byte
}

func (g *game) Update() error {
	g.world.Step(pollInput(), TickDuration)
	if !g.world.Running {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.pix = g.world.Frame.ReadRGBA(g.pix)
	screen.WritePixels(g.pix)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return DisplayW, DisplayH
}

// pollInput samples the eight key flags for one tick.
func pollInput() Input {
	return Input{
		Up:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ScaleDown: ebiten.IsKeyPressed(ebiten.KeyZ),
		ScaleUp:   ebiten.IsKeyPressed(ebiten.KeyX),
		Quit:      ebiten.IsKeyPressed(ebiten.KeyQ),
		Ripple:    ebiten.IsKeyPressed(ebiten.KeyR),
	}
}
