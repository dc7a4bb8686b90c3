package iconsmith

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves the current point without drawing.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of path elements describing a 2D outline.
// The same path is used both for fill clipping and for stroking.
type Path struct {
	elements []PathElement
	current  Point
	hasStart bool
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Point{X: x, Y: y}})
	p.current = Point{X: x, Y: y}
	p.hasStart = true
}

// LineTo adds a straight line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Point{X: x, Y: y}})
	p.current = Point{X: x, Y: y}
}

// QuadraticTo adds a quadratic Bezier curve with control point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{
		Control: Point{X: cx, Y: cy},
		Point:   Point{X: x, Y: y},
	})
	p.current = Point{X: x, Y: y}
}

// CubicTo adds a cubic Bezier curve with control points (c1x, c1y), (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Point{X: c1x, Y: c1y},
		Control2: Point{X: c2x, Y: c2y},
		Point:    Point{X: x, Y: y},
	})
	p.current = Point{X: x, Y: y}
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the elements of the path.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Rectangle adds an axis-aligned rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.ClosePath()
}

// Arc adds a circular arc from angle1 to angle2 (radians) around (cx, cy).
// A line connects the current point to the arc start if one exists.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into cubic segments of at most 90 degrees.
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if !p.hasStart {
		p.MoveTo(x1, y1)
	} else {
		p.LineTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle adds a rectangle with circular corner arcs of radius r,
// traversed clockwise.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.ClosePath()
}

// flattenTolerance is the maximum distance a flattened segment may deviate
// from the true curve, in path units.
const flattenTolerance = 0.1

// Flatten converts the path into a polyline, subdividing curves until they
// are within flattenTolerance of the true curve. A closing element repeats
// the subpath's first point so closed paths yield closed polylines.
func (p *Path) Flatten() []Point {
	var points []Point
	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			flattenQuadratic(current, e.Control, e.Point, &points)
			current = e.Point

		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, &points)
			current = e.Point

		case Close:
			if len(points) > 0 {
				points = append(points, points[0])
				current = points[0]
			}
		}
	}

	return points
}

func lerpPoint(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve.
func flattenQuadratic(p0, p1, p2 Point, points *[]Point) {
	if distanceToLine(p1, p0, p2) < flattenTolerance {
		*points = append(*points, p2)
		return
	}

	q0 := lerpPoint(p0, p1, 0.5)
	q1 := lerpPoint(p1, p2, 0.5)
	q2 := lerpPoint(q0, q1, 0.5)

	flattenQuadratic(p0, q0, q2, points)
	flattenQuadratic(q2, q1, p2, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using de Casteljau.
func flattenCubic(p0, p1, p2, p3 Point, points *[]Point) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if d < flattenTolerance {
		*points = append(*points, p3)
		return
	}

	q0 := lerpPoint(p0, p1, 0.5)
	q1 := lerpPoint(p1, p2, 0.5)
	q2 := lerpPoint(p2, p3, 0.5)
	r0 := lerpPoint(q0, q1, 0.5)
	r1 := lerpPoint(q1, q2, 0.5)
	s := lerpPoint(r0, r1, 0.5)

	flattenCubic(p0, q0, r0, s, points)
	flattenCubic(s, r1, q2, p3, points)
}

// distanceToLine returns the perpendicular distance from p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Sub(a).Length()
	}
	ap := p.Sub(a)
	// Cross product magnitude over base length.
	return math.Abs(ab.X*ap.Y-ab.Y*ap.X) / abLen
}
