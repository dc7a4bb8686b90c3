// Package stroke expands closed polylines into filled stroke outlines.
//
// A stroke is converted to a fill region bounded by two rings: the outer
// offset ring traversed forward and the inner offset ring reversed. Filling
// both rings with a nonzero winding rule yields the stroked annulus.
package stroke

import "math"

// Point represents a 2D point (package-local copy, the public geometry types
// live in the root package).
type Point struct {
	X, Y float64
}

// miterLimit caps the vertex offset scale at sharp joins. Finely flattened
// smooth outlines stay well below it.
const miterLimit = 4.0

// Outline offsets a closed polyline by width/2 to both sides. pts must
// describe a closed loop; a duplicated final point is tolerated. The inner
// ring is returned already reversed, ready to be filled together with the
// outer ring under a nonzero winding rule.
func Outline(pts []Point, width float64) (outer, inner []Point) {
	pts = dedup(pts)
	if len(pts) < 3 || width <= 0 {
		return nil, nil
	}

	half := width / 2
	n := len(pts)
	outer = make([]Point, 0, n)
	inner = make([]Point, 0, n)

	for i := 0; i < n; i++ {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		off := vertexOffset(prev, cur, next)
		outer = append(outer, Point{X: cur.X + off.X*half, Y: cur.Y + off.Y*half})
		inner = append(inner, Point{X: cur.X - off.X*half, Y: cur.Y - off.Y*half})
	}

	reverse(inner)
	return outer, inner
}

// vertexOffset returns the miter direction at cur: the normalized sum of the
// adjacent segment normals, scaled so that offsetting along it keeps both
// segments at unit distance, clamped to miterLimit.
func vertexOffset(prev, cur, next Point) Point {
	n1 := segmentNormal(prev, cur)
	n2 := segmentNormal(cur, next)

	bx, by := n1.X+n2.X, n1.Y+n2.Y
	blen := math.Hypot(bx, by)
	if blen < 1e-12 {
		// 180 degree turn; fall back to the first normal.
		return n1
	}
	bx /= blen
	by /= blen

	// Miter scale: 1 / cos(half turn angle).
	scale := 1 / math.Max(bx*n1.X+by*n1.Y, 1/miterLimit)
	return Point{X: bx * scale, Y: by * scale}
}

// segmentNormal returns the unit normal of segment (a, b), pointing to the
// left of the direction of travel. For a clockwise loop in screen
// coordinates that is the outward side.
func segmentNormal(a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: dy / l, Y: -dx / l}
}

// dedup drops consecutive duplicate points, including a final point that
// repeats the first.
func dedup(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && near(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && near(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
