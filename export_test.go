package fotoprint

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drag", "after-drag"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -8 && d <= 8
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.NRGBA) {
	t.Helper()
	got := nrgbaAt(img, x, y)
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func solidPNG(t *testing.T, w, h int, c color.Color) io.ReadCloser {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return io.NopCloser(&buf)
}

func TestExportPNG(t *testing.T) {
	ed := newTestEditor(t)
	mustInsert(t, ed, NewRect(10, 10, 50, 20, red, 1))
	mustInsert(t, ed, NewOval(400, 300, 20, 1, 1, blue, 1))

	var buf bytes.Buffer
	if err := ed.ExportPNG(context.Background(), &buf); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("size = %dx%d, want 800x600", b.Dx(), b.Dy())
	}

	assertPixel(t, img, 30, 20, color.NRGBA{255, 0, 0, 255})
	assertPixel(t, img, 400, 300, color.NRGBA{0, 0, 255, 255})
	assertPixel(t, img, 700, 500, color.NRGBA{255, 255, 255, 255})
}

func TestExportWaitsForPictures(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ed := newTestEditor(t)
	res := ed.Loader().LoadReader(ctx, "green.png", solidPNG(t, 10, 10, color.NRGBA{0, 255, 0, 255}))
	if err := ed.InsertPicture(res, 800, 600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ed.ExportPNG(ctx, &buf); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	if ed.Pool().Len() != 1 {
		t.Fatalf("Len = %d, want the loaded picture", ed.Pool().Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// 10x10 fitted to 800x600 is 240x240 at (50,50).
	assertPixel(t, img, 170, 170, color.NRGBA{0, 255, 0, 255})
	assertPixel(t, img, 400, 400, color.NRGBA{255, 255, 255, 255})
}

func TestWritePNG(t *testing.T) {
	ed := newTestEditor(t)
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := ed.WritePNG(context.Background(), path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("written file is not a PNG: %v", err)
	}

	if err := ed.WritePNG(context.Background(), filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("WritePNG into a missing directory succeeded")
	}
}

func TestWriteLabeledPNG(t *testing.T) {
	ed := newTestEditor(t)
	dir := filepath.Join(t.TempDir(), "shots")
	path, err := ed.WriteLabeledPNG(context.Background(), dir, "a/b")
	if err != nil {
		t.Fatalf("WriteLabeledPNG: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("written to %s, want inside %s", path, dir)
	}
	if base := filepath.Base(path); len(base) < len("_a_b.png") || base[len(base)-len("_a_b.png"):] != "_a_b.png" {
		t.Errorf("file name %q lacks the sanitized label", base)
	}
}

func TestExportCancelled(t *testing.T) {
	ed := newTestEditor(t)
	ctx, cancel := context.WithCancel(context.Background())
	// Keep a load pending by never feeding it.
	pr, pw := io.Pipe()
	defer pw.Close()
	ed.Loader().LoadReader(context.Background(), "stuck", pr)
	cancel()

	if err := ed.ExportPNG(ctx, io.Discard); err == nil {
		t.Error("ExportPNG with a cancelled context succeeded")
	}
}

func TestSaveSnapshotStuckLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExportPath = filepath.Join(t.TempDir(), "photo.png")
	cfg.ExportTimeout = 50 * time.Millisecond
	ed, err := NewEditor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	pr, pw := io.Pipe()
	defer pw.Close()
	ed.Loader().LoadReader(context.Background(), "stuck", pr)

	done := make(chan error, 1)
	go func() { done <- ed.SaveSnapshot(context.Background()) }()
	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("SaveSnapshot = %v, want DeadlineExceeded", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("SaveSnapshot blocked on a stuck load")
	}
	if _, err := os.Stat(cfg.ExportPath); !os.IsNotExist(err) {
		t.Errorf("partial export left behind: %v", err)
	}
}

func TestSaveSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExportPath = filepath.Join(t.TempDir(), "photo.png")
	ed, err := NewEditor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := ed.SaveSnapshot(context.Background()); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if _, err := os.Stat(cfg.ExportPath); err != nil {
		t.Error(err)
	}

	ed.cfg.ExportPath = filepath.Join(t.TempDir(), "missing", "x.png")
	if err := ed.SaveSnapshot(context.Background()); err == nil {
		t.Error("SaveSnapshot into a missing directory succeeded")
	}
}
