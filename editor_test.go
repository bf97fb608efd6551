package fotoprint

import (
	"context"
	"errors"
	"image"
	"math"
	"path/filepath"
	"testing"
	"time"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	ed, err := NewEditor(DefaultConfig())
	if err != nil {
		t.Fatalf("NewEditor: %v", err)
	}
	return ed
}

func mustInsert(t *testing.T, ed *Editor, s Shape) {
	t.Helper()
	if err := ed.Pool().Insert(s); err != nil {
		t.Fatalf("Insert: %v", err)
	}
}

func TestEditorOverlapAndRemove(t *testing.T) {
	ed := newTestEditor(t)
	pool := ed.Pool()

	first := NewRect(10, 10, 50, 20, MustParseColor("#ff0000"), 1)
	mustInsert(t, ed, first)
	if !pool.At(0).HitTest(30, 20) {
		t.Error("HitTest(30, 20) = false, want true")
	}
	if pool.At(0).HitTest(5, 5) {
		t.Error("HitTest(5, 5) = true, want false")
	}

	second := NewRect(10, 10, 50, 20, MustParseColor("#00ff00"), 1)
	mustInsert(t, ed, second)
	if _, s := pool.TopmostAt(30, 20); s != second {
		t.Error("topmost hit is not the second rect")
	}
	if !ed.SelectTopmostAt(30, 20) || ed.Edited() != second {
		t.Error("SelectTopmostAt did not select the second rect")
	}

	if err := ed.RemoveTop(); err != nil {
		t.Fatalf("RemoveTop: %v", err)
	}
	if pool.Len() != 1 {
		t.Errorf("Len = %d, want 1", pool.Len())
	}
	if _, s := pool.TopmostAt(30, 20); s != first {
		t.Error("topmost hit did not revert to the first rect")
	}
	if ed.Edited() != nil {
		t.Error("RemoveTop left an edited object")
	}
}

func TestEditorSelectMissClears(t *testing.T) {
	ed := newTestEditor(t)
	mustInsert(t, ed, NewRect(0, 0, 10, 10, red, 1))

	ed.SelectTopmostAt(5, 5)
	if ed.State() != StateSelected {
		t.Fatalf("State = %v, want selected", ed.State())
	}
	if ed.SelectTopmostAt(50, 50) {
		t.Error("SelectTopmostAt on empty canvas = true")
	}
	if ed.State() != StateIdle {
		t.Errorf("State = %v, want idle", ed.State())
	}
}

func TestEditorDrag(t *testing.T) {
	ed := newTestEditor(t)
	bottom := NewRect(0, 0, 20, 20, red, 1)
	top := NewRect(30, 30, 20, 20, blue, 1)
	mustInsert(t, ed, bottom)
	mustInsert(t, ed, top)

	if !ed.BeginDrag(5, 8) {
		t.Fatal("BeginDrag on bottom rect = false")
	}
	if ed.State() != StateDragging {
		t.Errorf("State = %v, want dragging", ed.State())
	}
	if ed.Pool().At(1) != bottom {
		t.Fatal("dragged object was not promoted to the top")
	}

	ed.ContinueDrag(105, 108)
	if got := bottom.Position(); got != (Vec2{100, 100}) {
		t.Errorf("position = %v, want (100,100)", got)
	}

	ed.EndDrag()
	if ed.State() != StateSelected {
		t.Errorf("State after release = %v, want selected", ed.State())
	}
	if ed.Edited() != bottom {
		t.Error("dragged object is not the edited object")
	}
	if ed.Pool().At(1) != bottom {
		t.Error("dragged object left the top after release")
	}

	ed.ContinueDrag(0, 0)
	if got := bottom.Position(); got != (Vec2{100, 100}) {
		t.Errorf("ContinueDrag after release moved object to %v", got)
	}
}

func TestEditorBeginDragMiss(t *testing.T) {
	ed := newTestEditor(t)
	if ed.BeginDrag(10, 10) {
		t.Error("BeginDrag on empty pool = true")
	}
	if ed.State() != StateIdle {
		t.Errorf("State = %v, want idle", ed.State())
	}
}

func TestEditorDragSurvivesInsert(t *testing.T) {
	ed := newTestEditor(t)
	r := NewRect(10, 10, 50, 20, red, 1)
	mustInsert(t, ed, r)
	if !ed.BeginDrag(20, 20) {
		t.Fatal("BeginDrag = false")
	}

	// A picture load finishing mid-drag lands above the dragged rect.
	res := NewImageResource("late", image.NewRGBA(image.Rect(0, 0, 100, 100)))
	if err := ed.InsertPicture(res, 800, 600); err != nil {
		t.Fatal(err)
	}
	pic := ed.Pool().At(1)

	ed.ContinueDrag(300, 300)
	ed.EndDrag()

	if got := r.Position(); got != (Vec2{290, 290}) {
		t.Errorf("rect position = %v, want (290,290)", got)
	}
	if got := pic.Position(); got != (Vec2{insertX, insertY}) {
		t.Errorf("picture moved to %v", got)
	}
	if top := ed.Pool().At(ed.Pool().Len() - 1); top != r {
		t.Errorf("top after release is %v, want the dragged rect", top.Kind())
	}
	if ed.Edited() != r {
		t.Error("dragged rect is not the edited object")
	}
}

func TestEditorRemoveTopDuringDrag(t *testing.T) {
	ed := newTestEditor(t)
	r := NewRect(10, 10, 50, 20, red, 1)
	mustInsert(t, ed, r)
	ed.BeginDrag(20, 20)

	if err := ed.RemoveTop(); err != nil {
		t.Fatal(err)
	}
	ed.ContinueDrag(300, 300)
	ed.EndDrag()
	if got := r.Position(); got != (Vec2{10, 10}) {
		t.Errorf("removed rect moved to %v", got)
	}
	if ed.State() != StateIdle {
		t.Errorf("State = %v, want idle", ed.State())
	}
}

func TestEditorInsertCloneDuplicates(t *testing.T) {
	ed := newTestEditor(t)
	src := NewRect(10, 10, 50, 20, red, 1.5)
	mustInsert(t, ed, src)

	ok, err := ed.InsertClone(20, 20)
	if err != nil || !ok {
		t.Fatalf("InsertClone = %v, %v", ok, err)
	}
	c, isRect := ed.Pool().At(1).(*Rect)
	if !isRect {
		t.Fatalf("clone is %T, want *Rect", ed.Pool().At(1))
	}
	if c.Position() != (Vec2{30, 30}) {
		t.Errorf("clone position = %v, want (30,30)", c.Position())
	}
	if w, h := c.Size(); w != 50 || h != 20 || c.Scale() != 1.5 || c.Color() != red {
		t.Errorf("clone = %vx%v scale %v color %v", w, h, c.Scale(), c.Color())
	}
	if ed.Edited() != nil {
		t.Error("duplicating should not change the edited object")
	}

	c.ChangeColor(blue)
	if src.Color() != red {
		t.Error("recolouring the clone changed the source")
	}
}

func TestEditorInsertClonePrototype(t *testing.T) {
	ed := newTestEditor(t)

	ok, err := ed.InsertClone(200, 200)
	if ok || err != nil {
		t.Fatalf("InsertClone with nothing selected = %v, %v; want false, nil", ok, err)
	}

	if err := ed.SelectPrototype(1); err != nil {
		t.Fatal(err)
	}
	ok, err = ed.InsertClone(200, 200)
	if err != nil || !ok {
		t.Fatalf("InsertClone = %v, %v", ok, err)
	}
	s := ed.Pool().At(0)
	if s.Kind() != KindOval || s.Position() != (Vec2{200, 200}) {
		t.Errorf("inserted %v at %v, want oval at (200,200)", s.Kind(), s.Position())
	}
	if s.Color() != ed.ShapeColor() {
		t.Errorf("color = %v, want shape color", s.Color())
	}
	if ed.Edited() != s || ed.State() != StateSelected {
		t.Error("placed prototype is not the edited object")
	}
}

func TestEditorInsertCloneFullPool(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 1
	ed, err := NewEditor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	mustInsert(t, ed, NewRect(0, 0, 10, 10, red, 1))

	ok, err := ed.InsertClone(5, 5)
	if ok || !errors.Is(err, ErrPoolFull) {
		t.Errorf("InsertClone = %v, %v; want false, ErrPoolFull", ok, err)
	}
	if ed.Pool().Len() != 1 {
		t.Errorf("Len = %d, want 1", ed.Pool().Len())
	}
}

func TestEditorInsertCloneUnclonable(t *testing.T) {
	ed := newTestEditor(t)
	mustInsert(t, ed, &stubShape{object: newObject('Z', 0, 0, red, 1)})

	_, err := ed.InsertClone(1, 1)
	var ue *UnclonableError
	if !errors.As(err, &ue) {
		t.Errorf("err = %v, want *UnclonableError", err)
	}
	if ed.Pool().Len() != 1 {
		t.Errorf("Len = %d, want 1", ed.Pool().Len())
	}
}

func TestEditorApplyWithoutSelection(t *testing.T) {
	ed := newTestEditor(t)
	if err := ed.ApplyColor(red); !errors.Is(err, ErrNoSelection) {
		t.Errorf("ApplyColor = %v, want ErrNoSelection", err)
	}
	if err := ed.ApplyScale(2); !errors.Is(err, ErrNoSelection) {
		t.Errorf("ApplyScale = %v, want ErrNoSelection", err)
	}
	if err := ed.SetScaleFromSlider(10); !errors.Is(err, ErrNoSelection) {
		t.Errorf("SetScaleFromSlider = %v, want ErrNoSelection", err)
	}
	if _, ok := ed.SliderValue(); ok {
		t.Error("SliderValue ok with nothing selected")
	}
}

func TestEditorSlider(t *testing.T) {
	ed := newTestEditor(t)
	b := NewBear(100, 100, 30, red, 1)
	mustInsert(t, ed, b)
	ed.SelectTopmostAt(100, 100)

	if err := ed.SetScaleFromSlider(10); err != nil {
		t.Fatal(err)
	}
	if b.Scale() != 2 {
		t.Errorf("Scale = %v, want 2", b.Scale())
	}
	if v, ok := ed.SliderValue(); !ok || v != 10 {
		t.Errorf("SliderValue = %v, %v; want 10, true", v, ok)
	}
}

func TestEditorApplyScaleRejectsInvalid(t *testing.T) {
	ed := newTestEditor(t)
	r := NewRect(10, 10, 50, 20, red, 1)
	mustInsert(t, ed, r)
	ed.SelectTopmostAt(20, 20)

	for _, s := range []float64{-2, math.NaN(), math.Inf(1)} {
		err := ed.ApplyScale(s)
		if !errors.Is(err, ErrInvalidScale) {
			t.Errorf("ApplyScale(%v) = %v, want ErrInvalidScale", s, err)
		}
	}
	if r.Scale() != 1 {
		t.Errorf("Scale = %v after rejected values, want 1", r.Scale())
	}
	if !r.HitTest(35, 20) {
		t.Error("rect no longer hit at its centre")
	}
	if err := ed.ApplyScale(0); err != nil {
		t.Errorf("ApplyScale(0) = %v, want nil", err)
	}
}

func TestEditorUpdateColor(t *testing.T) {
	ed := newTestEditor(t)

	if err := ed.UpdateColor(blue); !errors.Is(err, ErrNoSelection) {
		t.Errorf("UpdateColor with nothing selected = %v, want ErrNoSelection", err)
	}

	ed.SelectPrototype(0)
	if err := ed.UpdateColor(blue); err != nil {
		t.Fatal(err)
	}
	if ed.ShapeColor() != blue {
		t.Errorf("ShapeColor = %v, want blue", ed.ShapeColor())
	}
	for i := range ed.Palette().Len() {
		if c := ed.Palette().Prototype(i).Color(); c != blue {
			t.Errorf("prototype %d color = %v, want blue", i, c)
		}
	}

	r := NewRect(0, 0, 10, 10, red, 1)
	mustInsert(t, ed, r)
	ed.SelectTopmostAt(5, 5)
	if err := ed.UpdateColor(ColorBlack); err != nil {
		t.Fatal(err)
	}
	if r.Color() != ColorBlack {
		t.Errorf("edited color = %v, want black", r.Color())
	}
	if ed.ShapeColor() != blue {
		t.Error("recolouring an object changed the shape color")
	}
}

func TestEditorRemoveTopEmpty(t *testing.T) {
	ed := newTestEditor(t)
	if err := ed.RemoveTop(); !errors.Is(err, ErrPoolEmpty) {
		t.Errorf("RemoveTop = %v, want ErrPoolEmpty", err)
	}
}

func TestEditorInsertText(t *testing.T) {
	ed := newTestEditor(t)
	tx, err := ed.InsertText("hello")
	if err != nil {
		t.Fatal(err)
	}
	if tx.Position() != (Vec2{insertX, insertY}) || tx.Height() != textHeight {
		t.Errorf("text at %v height %v", tx.Position(), tx.Height())
	}
	if tx.Color() != ed.ShapeColor() {
		t.Errorf("text color = %v, want shape color", tx.Color())
	}
	if ed.Pool().Len() != 1 {
		t.Errorf("Len = %d, want 1", ed.Pool().Len())
	}
}

func TestEditorInsertPictureFits(t *testing.T) {
	ed := newTestEditor(t)
	res := NewImageResource("wide", image.NewRGBA(image.Rect(0, 0, 400, 200)))

	if err := ed.InsertPicture(res, 800, 600); err != nil {
		t.Fatal(err)
	}
	p := ed.Pool().At(0).(*Picture)
	// min(800/(400*2.5), 600/(200*2.5)) = 0.8
	if w, h := p.Size(); w != 320 || h != 160 {
		t.Errorf("Size = %vx%v, want 320x160", w, h)
	}
	if p.Position() != (Vec2{insertX, insertY}) {
		t.Errorf("Position = %v", p.Position())
	}
}

func TestEditorInsertPictureDeferred(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ed := newTestEditor(t)
	res := ed.Loader().LoadReader(ctx, "mem.png", pngReader(t, 100, 100))
	if err := ed.InsertPicture(res, 800, 600); err != nil {
		t.Fatal(err)
	}
	if ed.Pool().Len() != 0 {
		t.Fatal("picture inserted before it loaded")
	}
	if err := ed.Loader().Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if ed.Pool().Len() != 1 {
		t.Fatalf("Len = %d after load, want 1", ed.Pool().Len())
	}
	if w, h := ed.Pool().At(0).(*Picture).Size(); w != 240 || h != 240 {
		t.Errorf("Size = %vx%v, want 240x240", w, h)
	}
}

func TestEditorLoadPictureMissingFile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ed := newTestEditor(t)
	res := ed.LoadPicture(ctx, filepath.Join(t.TempDir(), "nope.png"))
	if err := ed.Loader().Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if res.Err() == nil {
		t.Error("missing file loaded without error")
	}
	if ed.Pool().Len() != 0 {
		t.Errorf("Len = %d, want 0", ed.Pool().Len())
	}
}

func TestEditorDrawOrder(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetBackground(ColorBlack)
	mustInsert(t, ed, NewRect(0, 0, 10, 10, red, 1))
	mustInsert(t, ed, NewOval(5, 5, 5, 1, 1, blue, 1))

	var s recordingSurface
	ed.Draw(&s)
	if got := s.summary(); got != "clear,rect,ellipse" {
		t.Errorf("ops = %s, want clear,rect,ellipse", got)
	}
	if s.ops[0].Color != ColorBlack {
		t.Errorf("cleared with %v, want background", s.ops[0].Color)
	}
}

func TestEditorClickMissClearsHighlight(t *testing.T) {
	ed := newTestEditor(t)
	ed.SelectPrototype(2)
	ed.ClickMiss()
	if ed.Palette().Highlighted() != -1 {
		t.Errorf("Highlighted = %d, want -1", ed.Palette().Highlighted())
	}
	if ed.Palette().SelectedIndex() != 2 {
		t.Errorf("SelectedIndex = %d, want 2", ed.Palette().SelectedIndex())
	}
}

func TestEditorReset(t *testing.T) {
	ed := newTestEditor(t)
	mustInsert(t, ed, NewRect(0, 0, 10, 10, red, 1))
	ed.SelectTopmostAt(5, 5)
	ed.SelectPrototype(0)
	ed.UpdateColor(blue)
	ed.SetBackground(ColorBlack)

	if err := ed.Reset(); err != nil {
		t.Fatal(err)
	}
	if ed.Pool().Len() != 0 || ed.Edited() != nil {
		t.Error("Reset kept objects or selection")
	}
	if ed.Background() != ed.Config().Background {
		t.Errorf("Background = %v, want configured", ed.Background())
	}
	if ed.Palette().Selected() != nil {
		t.Error("Reset kept the prototype selection")
	}
}

func TestNewEditorInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 0
	if _, err := NewEditor(cfg); err == nil {
		t.Error("NewEditor with zero capacity succeeded")
	}
}
