package fotoprint

import (
	"math"

	"github.com/gogpu/gg"
)

// arcStep is the maximum angle covered by one flattened arc segment.
const arcStep = math.Pi / 32

// arcTo adds a circular arc centred on (cx, cy) to p, from angle start to
// angle end (radians, clockwise on screen because Y grows downward). When
// anticlockwise is true the arc sweeps the other way. As on a canvas, a line
// joins the current point to the arc's first point; gg's own Arc only sweeps
// forward and never joins.
func arcTo(p *gg.Path, cx, cy, r, start, end float64, anticlockwise bool) {
	sweep := arcSweep(start, end, anticlockwise)
	fx, fy := cx+r*math.Cos(start), cy+r*math.Sin(start)
	if p.HasCurrentPoint() {
		p.LineTo(fx, fy)
	} else {
		p.MoveTo(fx, fy)
	}
	n := int(math.Ceil(math.Abs(sweep) / arcStep))
	for i := 1; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		p.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// arcSweep normalizes the signed angle an arc covers.
func arcSweep(start, end float64, anticlockwise bool) float64 {
	const full = 2 * math.Pi
	d := end - start
	if !anticlockwise {
		if d >= full {
			return full
		}
		d = math.Mod(d, full)
		if d < 0 {
			d += full
		}
		return d
	}
	if -d >= full {
		return -full
	}
	d = math.Mod(d, full)
	if d > 0 {
		d -= full
	}
	return d
}

// pathEmpty reports whether p has nothing to draw.
func pathEmpty(p *gg.Path) bool {
	return p == nil || p.NumVerbs() == 0
}
