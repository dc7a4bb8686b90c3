package iconsmith

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/iconsmith/iconsmith/internal/stroke"
)

// rasterizePath renders the path's coverage into an alpha mask of the given
// edge length. The path is translated by (dx, dy) before rasterization, so
// shape paths built in local coordinates can be placed inside the padded
// region.
func rasterizePath(size int, p *Path, dx, dy float64) *image.Alpha {
	var r vector.Rasterizer
	r.Reset(size, size)

	var first Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			first = e.Point
			r.MoveTo(float32(e.Point.X+dx), float32(e.Point.Y+dy))
		case LineTo:
			r.LineTo(float32(e.Point.X+dx), float32(e.Point.Y+dy))
		case QuadTo:
			r.QuadTo(
				float32(e.Control.X+dx), float32(e.Control.Y+dy),
				float32(e.Point.X+dx), float32(e.Point.Y+dy))
		case CubicTo:
			r.CubeTo(
				float32(e.Control1.X+dx), float32(e.Control1.Y+dy),
				float32(e.Control2.X+dx), float32(e.Control2.Y+dy),
				float32(e.Point.X+dx), float32(e.Point.Y+dy))
		case Close:
			r.ClosePath()
			r.MoveTo(float32(first.X+dx), float32(first.Y+dy))
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// rasterizeStroke renders the coverage of stroking the path with the given
// line width into an alpha mask. The stroke outline is built by offsetting
// the flattened path to both sides; the outer ring and the reversed inner
// ring are filled together so the hole cancels under the winding rule.
func rasterizeStroke(size int, p *Path, dx, dy, width float64) *image.Alpha {
	flat := p.Flatten()
	pts := make([]stroke.Point, len(flat))
	for i, q := range flat {
		pts[i] = stroke.Point{X: q.X + dx, Y: q.Y + dy}
	}

	outer, inner := stroke.Outline(pts, width)

	var r vector.Rasterizer
	r.Reset(size, size)
	addRing(&r, outer)
	addRing(&r, inner)

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func addRing(r *vector.Rasterizer, ring []stroke.Point) {
	if len(ring) < 3 {
		return
	}
	r.MoveTo(float32(ring[0].X), float32(ring[0].Y))
	for _, q := range ring[1:] {
		r.LineTo(float32(q.X), float32(q.Y))
	}
	r.ClosePath()
}
