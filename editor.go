package fotoprint

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Default placement for inserted text and pictures.
const (
	insertX          = 50
	insertY          = 50
	textHeight       = 20
	pictureFitFactor = 2.5
)

// Editor owns the scene pool, the palette, and the editing session: which
// object is being edited and which one, if any, follows the pointer. All
// methods must be called from one goroutine.
type Editor struct {
	cfg     Config
	pool    *Pool
	palette *Palette
	loader  *ImageLoader

	shapeColor Color
	background Color

	edited   Shape
	moving   Shape // follows the pointer while dragging
	dragging bool
	offX     float64
	offY     float64

	debug bool
}

// NewEditor creates an editor with an empty pool.
func NewEditor(cfg Config) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Editor{
		cfg:    cfg,
		loader: NewImageLoader(),
		debug:  cfg.Debug,
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset empties the pool, clears the session, and restores the configured
// colours and palette.
func (e *Editor) Reset() error {
	pal, err := NewPalette(e.cfg.Palette,
		float64(e.cfg.PaletteWidth), float64(e.cfg.PaletteHeight),
		e.cfg.ShapeColor, e.cfg.Highlight)
	if err != nil {
		return err
	}
	e.pool = NewPool(e.cfg.Capacity)
	e.palette = pal
	e.shapeColor = e.cfg.ShapeColor
	e.background = e.cfg.Background
	e.edited = nil
	e.moving = nil
	e.dragging = false
	e.offX, e.offY = 0, 0
	Logger().Debug("editor reset", "capacity", e.cfg.Capacity)
	return nil
}

// Config returns the settings the editor was created with.
func (e *Editor) Config() Config { return e.cfg }

// Pool returns the scene pool.
func (e *Editor) Pool() *Pool { return e.pool }

// Palette returns the prototype palette.
func (e *Editor) Palette() *Palette { return e.palette }

// Loader returns the image loader whose completions Update delivers.
func (e *Editor) Loader() *ImageLoader { return e.loader }

// Edited returns the object being edited, or nil.
func (e *Editor) Edited() Shape { return e.edited }

// ShapeColor returns the colour new prototypes and text are created in.
func (e *Editor) ShapeColor() Color { return e.shapeColor }

// Background returns the canvas background colour.
func (e *Editor) Background() Color { return e.background }

// SetBackground changes the canvas background colour.
func (e *Editor) SetBackground(c Color) { e.background = c }

// SetDebugMode toggles per-frame stats logging.
func (e *Editor) SetDebugMode(enabled bool) { e.debug = enabled }

// State reports the coarse session state.
func (e *Editor) State() SessionState {
	switch {
	case e.dragging:
		return StateDragging
	case e.edited != nil:
		return StateSelected
	default:
		return StateIdle
	}
}

// SelectTopmostAt makes the topmost object under (x, y) the edited object.
// On a miss the edited object is cleared.
func (e *Editor) SelectTopmostAt(x, y float64) bool {
	_, s := e.pool.TopmostAt(x, y)
	e.edited = s
	return s != nil
}

// ClickMiss clears the edited object and the palette highlight, as a click
// on empty canvas does.
func (e *Editor) ClickMiss() {
	e.edited = nil
	e.palette.ClearHighlight()
}

// BeginDrag picks up the topmost object under (x, y), moving it to the top
// of the pool and making it the edited object. It reports whether anything
// was picked up.
func (e *Editor) BeginDrag(x, y float64) bool {
	i, s := e.pool.TopmostAt(x, y)
	if s == nil {
		return false
	}
	pos := s.Position()
	e.offX = x - pos.X
	e.offY = y - pos.Y
	e.pool.PromoteToTop(i)
	e.edited = s
	e.moving = s
	e.dragging = true
	Logger().Debug("drag begin", "kind", s.Kind().String(), "id", s.ID())
	return true
}

// ContinueDrag moves the dragged object so the grab point follows (x, y).
// Objects inserted during the drag do not take its place.
func (e *Editor) ContinueDrag(x, y float64) {
	if !e.dragging || e.moving == nil {
		return
	}
	e.moving.SetPosition(x-e.offX, y-e.offY)
}

// EndDrag releases the dragged object and returns it to the top of the pool
// if anything was inserted above it meanwhile.
func (e *Editor) EndDrag() {
	if !e.dragging {
		return
	}
	if i := e.pool.IndexOf(e.moving); i >= 0 {
		e.pool.PromoteToTop(i)
	}
	Logger().Debug("drag end")
	e.moving = nil
	e.dragging = false
}

// InsertClone duplicates the topmost object under (x, y), shifted by the
// clone offset. Over empty canvas it instead clones the selected prototype
// at (x, y) and makes the copy the edited object. It reports whether
// anything was inserted; on error the pool and session are unchanged.
func (e *Editor) InsertClone(x, y float64) (bool, error) {
	if _, s := e.pool.TopmostAt(x, y); s != nil {
		pos := s.Position()
		c, err := CloneShape(s, pos.X+e.cfg.CloneOffset, pos.Y+e.cfg.CloneOffset)
		if err != nil {
			return false, err
		}
		if err := e.pool.Insert(c); err != nil {
			return false, err
		}
		Logger().Debug("cloned", "kind", c.Kind().String(), "from", s.ID())
		e.debugCheckPoolPressure()
		return true, nil
	}

	proto := e.palette.Selected()
	if proto == nil {
		return false, nil
	}
	c, err := CloneShape(proto, x, y)
	if err != nil {
		return false, err
	}
	if err := e.pool.Insert(c); err != nil {
		return false, err
	}
	e.edited = c
	Logger().Debug("placed prototype", "kind", c.Kind().String(), "x", x, "y", y)
	e.debugCheckPoolPressure()
	return true, nil
}

// ApplyColor recolours the edited object.
func (e *Editor) ApplyColor(c Color) error {
	if e.edited == nil {
		return ErrNoSelection
	}
	e.edited.ChangeColor(c)
	return nil
}

// ApplyScale rescales the edited object. The scale must be a
// non-negative number.
func (e *Editor) ApplyScale(scale float64) error {
	if e.edited == nil {
		return ErrNoSelection
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return &ScaleError{Scale: scale}
	}
	e.edited.ChangeScale(scale)
	return nil
}

// UpdateColor recolours the edited object if there is one. Otherwise, with
// a prototype selected, it changes the colour new shapes are made in and
// repaints the palette. With neither it returns ErrNoSelection.
func (e *Editor) UpdateColor(c Color) error {
	if e.edited != nil {
		return e.ApplyColor(c)
	}
	if e.palette.Selected() == nil {
		return ErrNoSelection
	}
	if err := e.palette.Rebuild(c); err != nil {
		return err
	}
	e.shapeColor = c
	return nil
}

// SetScaleFromSlider applies a size slider value; the scale is v/5.
func (e *Editor) SetScaleFromSlider(v float64) error {
	return e.ApplyScale(v / sliderDivisor)
}

// SliderValue returns the size slider position for the edited object.
func (e *Editor) SliderValue() (float64, bool) {
	if e.edited == nil {
		return 0, false
	}
	return e.edited.Scale() * sliderDivisor, true
}

// SelectPrototype selects palette slot i.
func (e *Editor) SelectPrototype(i int) error {
	return e.palette.Select(i)
}

// RemoveTop deletes the topmost object and clears the edited object.
func (e *Editor) RemoveTop() error {
	e.edited = nil
	e.moving = nil
	e.dragging = false
	_, err := e.pool.RemoveLast()
	return err
}

// InsertText places content at the default insert point in the current
// shape colour. Its width is measured when it is first drawn.
func (e *Editor) InsertText(content string) (*Text, error) {
	t := NewText(content, insertX, insertY, textHeight, 0, e.shapeColor, 1)
	if err := e.pool.Insert(t); err != nil {
		return nil, err
	}
	return t, nil
}

// InsertPicture places res at the default insert point, sized to fit a
// cw×ch canvas with room to spare. If res is still loading the insert
// happens when Update delivers it; load or insert failures are logged.
func (e *Editor) InsertPicture(res *ImageResource, cw, ch float64) error {
	if res.Loaded() {
		_, err := e.insertPicture(res, cw, ch)
		return err
	}
	res.OnLoad(func() {
		if _, err := e.insertPicture(res, cw, ch); err != nil {
			Logger().Warn("insert picture", "name", res.Name(), "error", err)
		}
	})
	return nil
}

func (e *Editor) insertPicture(res *ImageResource, cw, ch float64) (*Picture, error) {
	nw, nh := res.Size()
	if nw == 0 || nh == 0 {
		return nil, fmt.Errorf("insert picture %s: empty image", res.Name())
	}
	fit := math.Min(cw/(float64(nw)*pictureFitFactor), ch/(float64(nh)*pictureFitFactor))
	p := NewPicture(res, insertX, insertY, float64(nw)*fit, float64(nh)*fit, 1)
	if err := e.pool.Insert(p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPicture starts decoding the image at path and inserts it, fitted to
// the configured canvas, once Update delivers it.
func (e *Editor) LoadPicture(ctx context.Context, path string) *ImageResource {
	res := e.loader.Load(ctx, path)
	if err := e.InsertPicture(res, float64(e.cfg.CanvasWidth), float64(e.cfg.CanvasHeight)); err != nil {
		Logger().Warn("insert picture", "name", path, "error", err)
	}
	return res
}

// Update delivers finished image loads. Call it once per frame.
func (e *Editor) Update() {
	e.loader.Poll()
}

// Draw clears s to the background colour and draws the pool bottom to top.
func (e *Editor) Draw(s Surface) {
	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	s.Clear(e.background)
	if e.debug {
		stats.clearTime = time.Since(t0)
		t0 = time.Now()
	}
	for _, sh := range e.pool.BottomToTop() {
		sh.Draw(s)
	}
	if e.debug {
		stats.drawTime = time.Since(t0)
		stats.objectCount = e.pool.Len()
		stats.pendingLoads = e.loader.Pending()
		e.debugLog(stats)
	}
}

// DrawPalette draws the palette panel onto s.
func (e *Editor) DrawPalette(s Surface) {
	e.palette.Draw(s)
}
