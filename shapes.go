package iconsmith

import (
	"fmt"
	"math"
)

// ShapeKind selects the icon silhouette.
type ShapeKind string

// Supported shapes.
const (
	ShapeCircle        ShapeKind = "circle"
	ShapeRoundedSquare ShapeKind = "rounded-square"
	ShapeSquircle      ShapeKind = "squircle"
)

// Valid reports whether the shape kind is one of the supported values.
func (k ShapeKind) Valid() bool {
	switch k {
	case ShapeCircle, ShapeRoundedSquare, ShapeSquircle:
		return true
	}
	return false
}

// squircleSegments is the fixed number of line segments used to approximate
// the superellipse. Fewer segments visibly facet the curve at large render
// sizes.
const (
	squircleSegments = 256
	squircleExponent = 4.5
)

// ShapePath builds the closed outline for a shape in local coordinates
// [0, edge] x [0, edge]. The returned path serves both fill clipping and
// stroking.
func ShapePath(kind ShapeKind, edge float64) (*Path, error) {
	p := NewPath()
	switch kind {
	case ShapeCircle:
		p.Circle(edge/2, edge/2, edge/2)
	case ShapeRoundedSquare:
		p.RoundedRectangle(0, 0, edge, edge, 0.2*edge)
	case ShapeSquircle:
		squirclePath(p, edge, edge)
	default:
		return nil, fmt.Errorf("shape path: unknown shape %q", kind)
	}
	return p, nil
}

// squirclePath samples the parametric superellipse
//
//	x(t) = (w/2)*sign(cos t)*|cos t|^(2/n) + w/2
//	y(t) = (h/2)*sign(sin t)*|sin t|^(2/n) + h/2
//
// at squircleSegments+1 evenly spaced t values in [0, 2*pi], connecting the
// samples with straight segments. The first and last samples coincide.
func squirclePath(p *Path, w, h float64) {
	for i := 0; i <= squircleSegments; i++ {
		t := float64(i) / squircleSegments * 2 * math.Pi
		x := w/2*superPow(math.Cos(t)) + w/2
		y := h/2*superPow(math.Sin(t)) + h/2
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.ClosePath()
}

// superPow is sign(v)*|v|^(2/n) for the squircle exponent.
func superPow(v float64) float64 {
	s := math.Pow(math.Abs(v), 2/squircleExponent)
	if v < 0 {
		return -s
	}
	return s
}
