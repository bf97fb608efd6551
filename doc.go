// Package fotoprint is the core of a small 2D scene editor for [Ebitengine].
//
// A scene is an ordered, bounded [Pool] of drawing objects. Every object
// implements [Shape]: it draws itself onto a [Surface], answers point-in-shape
// queries, and can be moved, recoloured, and rescaled. The built-in shapes are
// primitives ([Rect], [Oval], [Triangle], [Heart], [Text], [Picture]) and
// composites built from them ([Bear], [Ghost], [MerryHat]).
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with the
// canvas and the prototype palette:
//
//	ed, err := fotoprint.NewEditor(fotoprint.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fotoprint.Run(ed, fotoprint.RunConfig{Title: "FotoPrint"})
//
// Without a window, drive the [Editor] directly and render with a
// [RasterSurface]:
//
//	ed.SelectPrototype(0)
//	ed.InsertClone(100, 100)
//	ed.WritePNG(ctx, "photo.png")
//
// # Editing
//
// The editor keeps one edited object and at most one object in motion.
// [Editor.BeginDrag], [Editor.ContinueDrag], and [Editor.EndDrag] move the
// topmost object under the pointer, raising it to the top of the pool.
// [Editor.InsertClone] duplicates the object under the pointer, or places the
// selected palette prototype on empty canvas. [Input] maps mouse presses,
// moves, clicks, and double clicks onto these operations; synthetic events can
// be queued with [Input.InjectClick] and friends, and [ScriptRunner] replays a
// JSON script of them.
//
// # Pictures
//
// Images decode off the editor goroutine through an [ImageLoader].
// [Editor.Update] hands finished loads back on the caller's goroutine, so the
// pool and the session are never touched concurrently.
//
// # Configuration and logging
//
// [LoadConfig] reads YAML over [DefaultConfig] and applies FOTOPRINT_*
// environment overrides. The package logs through [log/slog] and is silent
// until [SetLogger] is called.
//
// [Ebitengine]: https://ebitengine.org
package fotoprint
