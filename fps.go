package fotoprint

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsWidget is a small overlay showing the frame and tick rates plus the
// pool fill level. It redraws its image about twice a second.
type fpsWidget struct {
	img   *ebiten.Image
	since float64
	ready bool
}

func newFPSWidget() *fpsWidget {
	// 120x48 fits three short lines of debug text.
	return &fpsWidget{img: ebiten.NewImage(120, 48)}
}

// update advances the widget by dt seconds and refreshes the text when due.
func (w *fpsWidget) update(dt float64, pool *Pool) {
	w.since += dt
	if w.ready && w.since < fpsRefresh {
		return
	}
	w.since = 0
	w.ready = true

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nObjects: %d/%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), pool.Len(), pool.Cap()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(w.img, &op)
}
