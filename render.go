package iconsmith

import (
	"fmt"
	"math"
)

// GradientKind selects how the shape fill transitions between the two
// design colors.
type GradientKind string

// Supported gradient kinds.
const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

// Valid reports whether the gradient kind is one of the supported values.
func (k GradientKind) Valid() bool {
	switch k {
	case GradientLinear, GradientRadial, GradientConic:
		return true
	}
	return false
}

// BackgroundKind selects what is painted behind the shape.
type BackgroundKind string

// Supported backgrounds.
const (
	BackgroundTransparent BackgroundKind = "transparent"
	BackgroundSolid       BackgroundKind = "solid"
	BackgroundPaper       BackgroundKind = "paper"
)

// Valid reports whether the background kind is one of the supported values.
func (k BackgroundKind) Valid() bool {
	switch k {
	case BackgroundTransparent, BackgroundSolid, BackgroundPaper:
		return true
	}
	return false
}

// Reference canvas for the stroke width parameter: a stroke width of w draws
// w units on a 1024-unit canvas and scales proportionally at other sizes.
const strokeReferenceSize = 1024

// Parameter ranges.
const (
	MaxPadding     = 20 // percent of half the canvas
	MaxStrokeWidth = 20 // units on the reference canvas
)

// Params is the full parametric description of an icon design. It is a
// plain immutable value: every render call receives its own snapshot, so a
// design being edited can never be observed half-updated mid-render.
type Params struct {
	Gradient GradientKind
	ColorA   RGBA
	ColorB   RGBA
	AngleDeg int // gradient angle, used by linear and conic

	Shape   ShapeKind
	Padding int // percent of half the canvas kept as margin, 0..20

	StrokeWidth int // on the 1024-unit reference canvas, 0..20
	StrokeColor RGBA

	Glow bool

	Background BackgroundKind
	BGColor    RGBA // used only with BackgroundSolid
}

// DefaultParams returns the parameter set a fresh design starts from.
func DefaultParams() Params {
	return Params{
		Gradient:    GradientLinear,
		ColorA:      MustHex("#6366f1"),
		ColorB:      MustHex("#8b5cf6"),
		AngleDeg:    45,
		Shape:       ShapeSquircle,
		Padding:     6,
		StrokeWidth: 0,
		StrokeColor: MustHex("#111827"),
		Glow:        false,
		Background:  BackgroundTransparent,
		BGColor:     White,
	}
}

// Validate checks the parameter set. Rendering refuses invalid parameters
// outright rather than drawing a best guess: a silently corrected render
// would be exported as an asset the user never asked for.
func (p Params) Validate() error {
	if !p.Gradient.Valid() {
		return fmt.Errorf("params: unknown gradient kind %q", p.Gradient)
	}
	if !p.Shape.Valid() {
		return fmt.Errorf("params: unknown shape %q", p.Shape)
	}
	if !p.Background.Valid() {
		return fmt.Errorf("params: unknown background %q", p.Background)
	}
	if p.Padding < 0 || p.Padding > MaxPadding {
		return fmt.Errorf("params: padding %d%% out of range [0, %d]", p.Padding, MaxPadding)
	}
	if p.StrokeWidth < 0 || p.StrokeWidth > MaxStrokeWidth {
		return fmt.Errorf("params: stroke width %d out of range [0, %d]", p.StrokeWidth, MaxStrokeWidth)
	}
	return nil
}

// paper background gradient endpoints, fixed regardless of design colors.
var (
	paperLight = MustHex("#ffffff")
	paperDark  = MustHex("#f5f5f5")
)

// Render draws the icon described by params into pm, overwriting any prior
// content. It is a pure function of (params, pm.Size()): repeated calls
// produce pixel-identical output. Layers, in order: background, glow,
// gradient-filled shape, stroke.
func Render(pm *Pixmap, params Params) error {
	size := pm.Size()
	if size <= 0 {
		return fmt.Errorf("render: pixmap size %d must be positive", size)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	pm.Clear(Transparent)

	fsize := float64(size)
	switch params.Background {
	case BackgroundSolid:
		pm.FillRect(0, 0, size, size, Solid{C: params.BGColor}, BlendSourceOver)
	case BackgroundPaper:
		paper := NewLinearGradient(0, 0, fsize, fsize).
			AddColorStop(0, paperLight).
			AddColorStop(1, paperDark)
		pm.FillRect(0, 0, size, size, paper, BlendSourceOver)
	}

	pad, inner := paddedRegion(size, params.Padding)
	finner := float64(inner)
	cx := float64(pad) + finner/2
	cy := float64(pad) + finner/2

	if params.Glow {
		glow := glowBrush(params, cx, cy, finner)
		pm.FillRect(pad, pad, pad+inner, pad+inner, glow, BlendPlus)
	}

	path, err := ShapePath(params.Shape, finner)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fill := fillBrush(params, cx, cy, finner)
	mask := rasterizePath(size, path, float64(pad), float64(pad))
	pm.FillMask(mask, fill, BlendSourceOver)

	if params.StrokeWidth > 0 {
		width := float64(params.StrokeWidth) / strokeReferenceSize * finner
		strokeMask := rasterizeStroke(size, path, float64(pad), float64(pad), width)
		pm.FillMask(strokeMask, Solid{C: params.StrokeColor}, BlendSourceOver)
	}

	return nil
}

// paddedRegion converts the padding percentage into a pixel margin and the
// resulting inner drawable extent. The margin is clamped so the inner square
// is always at least one pixel.
func paddedRegion(size, padding int) (pad, inner int) {
	if padding < 0 {
		padding = 0
	}
	if padding > MaxPadding {
		padding = MaxPadding
	}

	pad = int(math.Round(float64(padding) / 100 * float64(size) / 2))
	inner = size - 2*pad
	if inner < 1 {
		pad = (size - 1) / 2
		inner = size - 2*pad
	}
	return pad, inner
}

// glowBrush builds the ambient halo: a radial fade centered on the padded
// square, from ColorA at 35% opacity out to ColorB at zero. The inner
// plateau ends at 0.18 of the inner extent, the fade at 0.75.
func glowBrush(params Params, cx, cy, inner float64) Brush {
	const (
		glowInnerFrac = 0.18
		glowOuterFrac = 0.75
		glowOpacity   = 0.35
	)
	return NewRadialGradient(cx, cy, glowOuterFrac*inner).
		AddColorStop(glowInnerFrac/glowOuterFrac, params.ColorA.WithAlpha(glowOpacity)).
		AddColorStop(1, params.ColorB.WithAlpha(0))
}

// fillBrush builds the gradient brush for the shape fill. The gradient
// geometry spans the inner square symmetrically about its center.
func fillBrush(params Params, cx, cy, inner float64) Brush {
	switch params.Gradient {
	case GradientRadial:
		return NewRadialGradient(cx, cy, inner/2).
			AddColorStop(0, params.ColorA).
			AddColorStop(1, params.ColorB)

	case GradientConic:
		g := NewConicGradient(cx, cy, float64(normDeg(params.AngleDeg)))
		g.ColorA = params.ColorA
		g.ColorB = params.ColorB
		return g

	default: // GradientLinear
		rad := float64(normDeg(params.AngleDeg)) * math.Pi / 180
		axis := Point{X: inner / 2, Y: inner / 2}.Rotate(rad)
		return NewLinearGradient(cx-axis.X, cy-axis.Y, cx+axis.X, cy+axis.Y).
			AddColorStop(0, params.ColorA).
			AddColorStop(1, params.ColorB)
	}
}

// normDeg reduces an angle to [0, 360).
func normDeg(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
