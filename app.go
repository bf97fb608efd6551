package fotoprint

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	ShowFPS bool

	// Script, if set, is replayed one step per frame.
	Script *ScriptRunner
	// ExitWhenScriptDone closes the window once Script has finished.
	ExitWhenScriptDone bool
}

// Run opens a window showing the canvas with the palette to its right and
// blocks until it is closed.
//
// Keys: Delete or Backspace removes the top object, Ctrl+S exports to the
// configured path, 1-9 set the size slider, R resets, and F3 toggles debug
// stats.
func Run(ed *Editor, cfg RunConfig) error {
	ec := ed.Config()
	canvas, err := NewEbitenSurface(ec.CanvasWidth, ec.CanvasHeight)
	if err != nil {
		return err
	}
	palette, err := NewEbitenSurface(ec.PaletteWidth, ec.PaletteHeight)
	if err != nil {
		return err
	}
	in := NewInput(ed)
	if cfg.Script != nil {
		in.SetScriptRunner(cfg.Script)
	}
	g := &game{
		ed:      ed,
		in:      in,
		canvas:  canvas,
		palette: palette,
		cfg:     cfg,
		width:   ec.CanvasWidth + ec.PaletteWidth,
		height:  max(ec.CanvasHeight, ec.PaletteHeight),
		debug:   ec.Debug,
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	title := cfg.Title
	if title == "" {
		title = "FotoPrint"
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}

type game struct {
	ed      *Editor
	in      *Input
	canvas  *EbitenSurface
	palette *EbitenSurface
	cfg     RunConfig
	width   int
	height  int
	debug   bool
	fps     *fpsWidget
}

func (g *game) Update() error {
	g.handleKeys()
	g.in.Update()
	g.ed.Update()
	if g.fps != nil {
		g.fps.update(1/float64(ebiten.TPS()), g.ed.Pool())
	}
	if g.cfg.ExitWhenScriptDone && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) handleKeys() {
	ed := g.ed
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if err := ed.RemoveTop(); err != nil {
			Logger().Debug("remove", "error", err)
		}
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := ed.SaveSnapshot(context.Background()); err != nil {
			Logger().Warn("export", "path", ed.Config().ExportPath, "error", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := ed.Reset(); err != nil {
			Logger().Warn("reset", "error", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.debug = !g.debug
		ed.SetDebugMode(g.debug)
	}

	for k := ebiten.KeyDigit1; k <= ebiten.KeyDigit9; k++ {
		if inpututil.IsKeyJustPressed(k) {
			v := float64(k-ebiten.KeyDigit1) + 1
			if err := ed.SetScaleFromSlider(v); err != nil {
				Logger().Debug("scale", "error", err)
			}
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ed.Draw(g.canvas)
	g.ed.DrawPalette(g.palette)

	screen.DrawImage(g.canvas.Image(), nil)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(g.in.PaletteOrigin(), 0)
	screen.DrawImage(g.palette.Image(), &op)

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
