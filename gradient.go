package iconsmith

import (
	"math"
	"sort"
)

// Brush produces a color for every point in the plane. Fill operations
// evaluate the brush per pixel through a coverage mask.
type Brush interface {
	ColorAt(x, y float64) RGBA
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // position in the gradient, 0.0 to 1.0
	Color  RGBA
}

// Solid is a brush that paints a single color everywhere.
type Solid struct {
	C RGBA
}

// ColorAt implements the Brush interface.
func (s Solid) ColorAt(x, y float64) RGBA { return s.C }

// LinearGradient is a linear color transition between two points.
// Offsets outside [0, 1] clamp to the edge colors.
type LinearGradient struct {
	Start Point
	End   Point
	Stops []ColorStop
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Point{X: x0, Y: y0}, End: Point{X: x1, Y: y1}}
}

// AddColorStop adds a color stop at the given offset in [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt implements the Brush interface.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient axis.
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t)
}

// RadialGradient is a circular color transition from a center point out to
// Radius. Points beyond Radius clamp to the last stop.
type RadialGradient struct {
	Center Point
	Radius float64
	Stops  []ColorStop
}

// NewRadialGradient creates a radial gradient centered at (cx, cy).
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{Center: Point{X: cx, Y: cy}, Radius: radius}
}

// AddColorStop adds a color stop at the given offset in [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt implements the Brush interface.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.Radius <= 0 {
		return firstStopColor(g.Stops)
	}
	dx := x - g.Center.X
	dy := y - g.Center.Y
	t := math.Sqrt(dx*dx+dy*dy) / g.Radius
	return colorAtOffset(g.Stops, t)
}

// conicWedges is the angular resolution of the conic gradient: one wedge per
// degree of sweep.
const conicWedges = 360

// ConicGradient sweeps from ColorA to ColorB around Center, starting at
// StartDeg and proceeding clockwise in screen coordinates. The sweep is
// quantized into conicWedges one-degree wedges; wedge i carries the color
// Lerp(ColorA, ColorB, i/(conicWedges-1)), so the first wedge is exactly
// ColorA and the last exactly ColorB.
type ConicGradient struct {
	Center   Point
	StartDeg float64
	ColorA   RGBA
	ColorB   RGBA
}

// NewConicGradient creates a conic gradient centered at (cx, cy) starting at
// startDeg degrees.
func NewConicGradient(cx, cy, startDeg float64) *ConicGradient {
	return &ConicGradient{Center: Point{X: cx, Y: cy}, StartDeg: startDeg}
}

// ColorAt implements the Brush interface.
func (g *ConicGradient) ColorAt(x, y float64) RGBA {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return g.ColorA
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	delta := math.Mod(deg-g.StartDeg, 360)
	if delta < 0 {
		delta += 360
	}

	wedge := int(delta)
	if wedge >= conicWedges {
		wedge = conicWedges - 1
	}
	return Lerp(g.ColorA, g.ColorB, float64(wedge)/(conicWedges-1))
}

// firstStopColor returns the lowest-offset stop's color, or Transparent for
// an empty stop list.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	first := stops[0]
	for _, s := range stops[1:] {
		if s.Offset < first.Offset {
			first = s
		}
	}
	return first.Color
}

// colorAtOffset returns the interpolated color at offset t, clamping t to
// the stop range at either end.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	t = clamp01(t)
	if t <= sorted[0].Offset {
		return sorted[0].Color
	}
	last := sorted[len(sorted)-1]
	if t >= last.Offset {
		return last.Color
	}

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	lo, hi := sorted[idx-1], sorted[idx]
	span := hi.Offset - lo.Offset
	if span <= 0 {
		return hi.Color
	}
	return Lerp(lo.Color, hi.Color, (t-lo.Offset)/span)
}
