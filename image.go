package fotoprint

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageResource is an image that may still be decoding. Callers register
// work to run once it is ready with OnLoad; each callback fires exactly once
// on the goroutine that calls ImageLoader.Poll.
type ImageResource struct {
	name    string
	img     image.Image
	err     error
	loaded  bool
	waiters []func()
}

// NewImageResource wraps an already decoded image.
func NewImageResource(name string, img image.Image) *ImageResource {
	return &ImageResource{name: name, img: img, loaded: true}
}

// Name returns the path or label the resource was created with.
func (r *ImageResource) Name() string { return r.name }

// Loaded reports whether the image finished decoding successfully.
func (r *ImageResource) Loaded() bool { return r.loaded }

// Err returns the decode error, if loading failed.
func (r *ImageResource) Err() error { return r.err }

// Image returns the decoded image, or nil while loading.
func (r *ImageResource) Image() image.Image { return r.img }

// Size returns the natural pixel size, or zeros while loading.
func (r *ImageResource) Size() (w, h int) {
	if r.img == nil {
		return 0, 0
	}
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// OnLoad runs fn when the image is ready. If it already is, fn runs now.
// Callbacks registered on a resource that fails to load never run.
func (r *ImageResource) OnLoad(fn func()) {
	if r.loaded {
		fn()
		return
	}
	r.waiters = append(r.waiters, fn)
}

// complete records the decode result and fires pending callbacks.
func (r *ImageResource) complete(img image.Image, err error) {
	waiters := r.waiters
	r.waiters = nil
	if err != nil {
		r.err = err
		return
	}
	r.img = img
	r.loaded = true
	for _, fn := range waiters {
		fn()
	}
}

type loadResult struct {
	res *ImageResource
	img image.Image
	err error
}

const loaderQueueSize = 16

// ImageLoader decodes images off the editor goroutine and hands results back
// through Poll, so resources and the shapes waiting on them are only ever
// touched by one goroutine.
type ImageLoader struct {
	results chan loadResult
	pending int
}

// NewImageLoader creates an idle loader.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{results: make(chan loadResult, loaderQueueSize)}
}

// Load starts decoding the file at path. Cancelling ctx abandons the load;
// the resource then reports ctx.Err() and never becomes loaded.
func (l *ImageLoader) Load(ctx context.Context, path string) *ImageResource {
	return l.start(ctx, path, func() (io.ReadCloser, error) {
		return os.Open(path)
	}, nil)
}

// LoadReader is like Load but decodes from rc. rc is closed when decoding
// finishes or is abandoned.
func (l *ImageLoader) LoadReader(ctx context.Context, name string, rc io.ReadCloser) *ImageResource {
	return l.start(ctx, name, func() (io.ReadCloser, error) { return rc, nil }, rc)
}

// start decodes in a new goroutine. owned, if set, is closed when ctx is
// already done and open is never called.
func (l *ImageLoader) start(ctx context.Context, name string, open func() (io.ReadCloser, error), owned io.Closer) *ImageResource {
	res := &ImageResource{name: name}
	l.pending++
	Logger().Debug("image load started", "name", name)
	go func() {
		img, err := decodeImage(ctx, open, owned)
		if err != nil {
			err = fmt.Errorf("load image %s: %w", name, err)
		}
		l.results <- loadResult{res: res, img: img, err: err}
	}()
	return res
}

func decodeImage(ctx context.Context, open func() (io.ReadCloser, error), owned io.Closer) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		if owned != nil {
			owned.Close()
		}
		return nil, err
	}
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// Pending returns the number of loads not yet delivered by Poll.
func (l *ImageLoader) Pending() int { return l.pending }

// Poll delivers every finished load without blocking and returns how many
// were delivered. Callbacks run on the calling goroutine.
func (l *ImageLoader) Poll() int {
	n := 0
	for {
		select {
		case r := <-l.results:
			l.deliver(r)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every started load has been delivered or ctx is done.
func (l *ImageLoader) Wait(ctx context.Context) error {
	for l.pending > 0 {
		select {
		case r := <-l.results:
			l.deliver(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (l *ImageLoader) deliver(r loadResult) {
	l.pending--
	if r.err != nil {
		Logger().Warn("image load failed", "name", r.res.name, "error", r.err)
	} else {
		Logger().Debug("image loaded", "name", r.res.name)
	}
	r.res.complete(r.img, r.err)
}
