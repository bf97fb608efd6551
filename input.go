package fotoprint

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	// DoubleClickWindow is the longest gap between two clicks that still
	// counts as a double click.
	DoubleClickWindow = 300 * time.Millisecond
)

// PointerSource reports the pointer position and whether the primary button
// is held.
type PointerSource func() (x, y float64, pressed bool)

// ebitenPointer reads the mouse through Ebitengine.
func ebitenPointer() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	grabbed   bool // the press picked up an object
	dragging  bool // moved beyond the dead zone since the press
	inPalette bool // the press landed on the palette panel
}

// Input turns pointer activity into editor operations. The screen holds the
// canvas at the origin and the palette panel to its right.
//
// A press on an object picks it up and later moves follow the pointer. A
// release that has not left the dead zone is a click: it selects the object
// under the pointer, or clears the selection and palette highlight on a
// miss. A second click close by within DoubleClickWindow also inserts a
// clone. Clicks on the palette pick a prototype.
type Input struct {
	ed       *Editor
	source   PointerSource
	now      func() time.Time
	deadZone float64

	paletteX float64

	ptr pointerState

	lastClick    time.Time
	lastClickX   float64
	lastClickY   float64
	hasLastClick bool

	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner
}

// NewInput creates an input handler for ed reading the Ebitengine mouse.
func NewInput(ed *Editor) *Input {
	return &Input{
		ed:       ed,
		source:   ebitenPointer,
		now:      time.Now,
		deadZone: defaultDragDeadZone,
		paletteX: float64(ed.Config().CanvasWidth),
	}
}

// Editor returns the editor the input drives.
func (in *Input) Editor() *Editor { return in.ed }

// SetPointerSource replaces the device the pointer is read from.
func (in *Input) SetPointerSource(src PointerSource) { in.source = src }

// SetClock replaces the time source used for double-click detection.
func (in *Input) SetClock(now func() time.Time) { in.now = now }

// SetDragDeadZone sets the minimum movement in pixels before a press stops
// counting as a click.
func (in *Input) SetDragDeadZone(pixels float64) { in.deadZone = pixels }

// PaletteOrigin returns the screen x where the palette panel starts.
func (in *Input) PaletteOrigin() float64 { return in.paletteX }

// Update advances the script runner, then handles one injected event or,
// if none is queued, the live pointer. Call once per frame.
func (in *Input) Update() {
	if in.runner != nil {
		in.runner.step(in)
	}
	if in.processInjectedInput() {
		return
	}
	if in.source == nil {
		return
	}
	x, y, pressed := in.source()
	in.processPointer(x, y, pressed)
}

// processPointer runs the pointer state machine.
func (in *Input) processPointer(x, y float64, pressed bool) {
	ps := &in.ptr

	switch {
	case pressed && !ps.down:
		*ps = pointerState{
			down:      true,
			startX:    x,
			startY:    y,
			lastX:     x,
			lastY:     y,
			inPalette: x >= in.paletteX,
		}
		if !ps.inPalette {
			ps.grabbed = in.ed.BeginDrag(x, y)
		}

	case pressed && ps.down:
		in.movePointer(x, y)

	case !pressed && ps.down:
		in.movePointer(x, y)
		if ps.grabbed {
			in.ed.EndDrag()
		}
		if !ps.dragging {
			if ps.inPalette {
				in.paletteClick(x, y)
			} else {
				in.canvasClick(x, y)
			}
		}
		*ps = pointerState{lastX: x, lastY: y}

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// movePointer follows a held pointer to (x, y). A release can arrive at a
// new position, so it goes through here too.
func (in *Input) movePointer(x, y float64) {
	ps := &in.ptr
	if x == ps.lastX && y == ps.lastY {
		return
	}
	if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > in.deadZone {
		ps.dragging = true
	}
	if ps.grabbed {
		in.ed.ContinueDrag(x, y)
	}
	ps.lastX, ps.lastY = x, y
}

func (in *Input) paletteClick(x, y float64) {
	w, h := in.ed.Palette().Size()
	in.ed.Palette().SelectAt(x-in.paletteX, y, w, h)
	in.hasLastClick = false
}

func (in *Input) canvasClick(x, y float64) {
	if !in.ed.SelectTopmostAt(x, y) {
		in.ed.ClickMiss()
	}

	now := in.now()
	double := in.hasLastClick &&
		now.Sub(in.lastClick) <= DoubleClickWindow &&
		math.Hypot(x-in.lastClickX, y-in.lastClickY) <= in.deadZone
	if double {
		in.hasLastClick = false
		if _, err := in.ed.InsertClone(x, y); err != nil {
			Logger().Warn("insert clone", "x", x, "y", y, "error", err)
		}
		return
	}
	in.lastClick = now
	in.lastClickX, in.lastClickY = x, y
	in.hasLastClick = true
}
