package fotoprint

// Picture shows an external image anchored at its top-left corner. While the
// image is still loading, the first Draw queues a single deferred draw on
// the surface that runs once the image is ready.
type Picture struct {
	object
	res     *ImageResource
	w, h    float64
	pending bool
}

// NewPicture creates a picture displayed at w×h unscaled pixels.
func NewPicture(res *ImageResource, x, y, w, h float64, scale float64) *Picture {
	return &Picture{
		object: newObject(KindPicture, x, y, Color{}, scale),
		res:    res,
		w:      w,
		h:      h,
	}
}

// Resource returns the backing image.
func (p *Picture) Resource() *ImageResource { return p.res }

// Size returns the unscaled display size.
func (p *Picture) Size() (w, h float64) { return p.w, p.h }

func (p *Picture) Draw(s Surface) {
	if p.res.Loaded() {
		s.DrawImage(p.res.Image(), p.pos.X, p.pos.Y, p.w*p.scale, p.h*p.scale)
		return
	}
	if p.pending {
		return
	}
	p.pending = true
	p.res.OnLoad(func() {
		p.pending = false
		s.DrawImage(p.res.Image(), p.pos.X, p.pos.Y, p.w, p.h)
	})
}

// HitTest uses the unscaled box.
func (p *Picture) HitTest(x, y float64) bool {
	return Bounds{p.pos.X, p.pos.Y, p.w, p.h}.Contains(x, y)
}

// CloneAt returns a copy sharing the same image resource.
func (p *Picture) CloneAt(x, y float64) Shape {
	c := NewPicture(p.res, x, y, p.w, p.h, p.scale)
	c.rotation = p.rotation
	return c
}
