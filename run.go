package easel

import "github.com/hajimehoshi/ebiten/v2"

// Run opens a window and drives the stage with ebiten until the window is
// closed or Update returns an error. The root node's surface size is the
// logical screen size; the window is sized by cfg.
func Run(stage *Stage, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	stage.SetDebugMode(cfg.Debug)
	stage.ShowFPS = cfg.ShowFPS
	stage.ScreenshotDir = cfg.ScreenshotDir
	if c, ok := ColorByName(cfg.Background); ok {
		stage.ClearColor = c
	}
	return ebiten.RunGame(stage)
}
