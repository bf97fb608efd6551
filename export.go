package fotoprint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportPNG renders the canvas offscreen and writes it as PNG. Pending image
// loads are waited for first so pictures appear in the output.
func (e *Editor) ExportPNG(ctx context.Context, w io.Writer) error {
	if err := e.loader.Wait(ctx); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	rs, err := NewRasterSurface(e.cfg.CanvasWidth, e.cfg.CanvasHeight)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer rs.Close()
	e.Draw(rs)
	if err := rs.EncodePNG(w); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// WritePNG exports the canvas to a PNG file at path.
func (e *Editor) WritePNG(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := e.ExportPNG(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	Logger().Debug("exported", "path", path)
	return nil
}

// SaveSnapshot writes the canvas to the configured ExportPath. Pending
// picture loads get at most ExportTimeout to finish.
func (e *Editor) SaveSnapshot(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.ExportTimeout)
	defer cancel()
	return e.WritePNG(ctx, e.cfg.ExportPath)
}

// WriteLabeledPNG exports the canvas into dir under a timestamped name built
// from label, and returns the path written. Pending picture loads get at
// most ExportTimeout to finish.
func (e *Editor) WriteLabeledPNG(ctx context.Context, dir, label string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.ExportTimeout)
	defer cancel()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	return path, e.WritePNG(ctx, path)
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
