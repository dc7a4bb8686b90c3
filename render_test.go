package iconsmith

import (
	"bytes"
	"testing"
)

func testParams() Params {
	p := DefaultParams()
	p.Gradient = GradientLinear
	p.ColorA = MustHex("#ff0000")
	p.ColorB = MustHex("#0000ff")
	p.AngleDeg = 0
	p.Shape = ShapeCircle
	p.Padding = 0
	p.StrokeWidth = 0
	p.Glow = false
	p.Background = BackgroundTransparent
	return p
}

func TestRender_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{name: "bad gradient", mutate: func(p *Params) { p.Gradient = "diagonal" }},
		{name: "bad shape", mutate: func(p *Params) { p.Shape = "triangle" }},
		{name: "bad background", mutate: func(p *Params) { p.Background = "plaid" }},
		{name: "padding too large", mutate: func(p *Params) { p.Padding = 21 }},
		{name: "negative padding", mutate: func(p *Params) { p.Padding = -1 }},
		{name: "stroke too wide", mutate: func(p *Params) { p.StrokeWidth = 21 }},
		{name: "negative stroke", mutate: func(p *Params) { p.StrokeWidth = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			tt.mutate(&params)
			if err := Render(NewPixmap(32), params); err == nil {
				t.Error("Render accepted invalid params")
			}
		})
	}
}

func TestRender_TransparentMargin(t *testing.T) {
	for _, size := range []int{16, 32, 100} {
		params := testParams()
		params.Padding = 20
		params.Glow = true // the glow must stay confined to the padded region

		pm := NewPixmap(size)
		if err := Render(pm, params); err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if got := len(pm.Data()); got != size*size*4 {
			t.Fatalf("size %d: buffer holds %d bytes, want %d", size, got, size*size*4)
		}

		pad, _ := paddedRegion(size, params.Padding)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				inMargin := x < pad || y < pad || x >= size-pad || y >= size-pad
				if inMargin && pm.GetPixel(x, y).A != 0 {
					t.Fatalf("size %d: margin pixel (%d,%d) = %+v, want transparent",
						size, x, y, pm.GetPixel(x, y))
				}
			}
		}
	}
}

func TestRender_GlowBleedsPastShape(t *testing.T) {
	params := testParams()
	params.Padding = 20
	params.Glow = true

	pm := NewPixmap(100)
	if err := Render(pm, params); err != nil {
		t.Fatal(err)
	}

	// (13,13) is inside the padded region and the glow radius but well
	// outside the circle silhouette: only the unclipped glow reaches it.
	if got := pm.GetPixel(13, 13); got.A == 0 {
		t.Errorf("glow pixel (13,13) fully transparent, want halo coverage")
	}
}

func TestRender_Idempotent(t *testing.T) {
	params := testParams()
	params.Gradient = GradientConic
	params.Shape = ShapeSquircle
	params.Glow = true
	params.StrokeWidth = 8
	params.Background = BackgroundPaper
	params.Padding = 10

	a := NewPixmap(64)
	b := NewPixmap(64)
	if err := Render(a, params); err != nil {
		t.Fatal(err)
	}
	if err := Render(b, params); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("two renders of the same snapshot differ")
	}
}

func TestRender_ReusedSurface(t *testing.T) {
	params := testParams()

	fresh := NewPixmap(48)
	if err := Render(fresh, params); err != nil {
		t.Fatal(err)
	}

	// Render something else first, then the same params again: the leading
	// clear must fully erase the previous content.
	reused := NewPixmap(48)
	other := testParams()
	other.Background = BackgroundSolid
	other.BGColor = Black
	if err := Render(reused, other); err != nil {
		t.Fatal(err)
	}
	if err := Render(reused, params); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(fresh.Data(), reused.Data()) {
		t.Error("reused surface render differs from fresh surface render")
	}
}

func TestRender_SolidBackground(t *testing.T) {
	params := testParams()
	params.Background = BackgroundSolid
	params.BGColor = MustHex("#123456")

	pm := NewPixmap(32)
	if err := Render(pm, params); err != nil {
		t.Fatal(err)
	}
	if got := pm.GetPixel(0, 0); !colorNear(got, params.BGColor, 1.0/255) {
		t.Errorf("corner = %+v, want background %+v", got, params.BGColor)
	}
}

func TestRender_PaperBackground(t *testing.T) {
	params := testParams()
	params.Background = BackgroundPaper

	pm := NewPixmap(64)
	if err := Render(pm, params); err != nil {
		t.Fatal(err)
	}

	topLeft := pm.GetPixel(0, 0)
	bottomRight := pm.GetPixel(63, 63)
	if !colorNear(topLeft, paperLight, 0.02) {
		t.Errorf("top-left = %+v, want near %+v", topLeft, paperLight)
	}
	if !colorNear(bottomRight, paperDark, 0.02) {
		t.Errorf("bottom-right = %+v, want near %+v", bottomRight, paperDark)
	}
	// Fixed tint regardless of the design colors.
	if topLeft.A != 1 || bottomRight.A != 1 {
		t.Error("paper background is not opaque")
	}
}

func TestRender_RadialCenterColor(t *testing.T) {
	params := testParams()
	params.Gradient = GradientRadial

	pm := NewPixmap(64)
	if err := Render(pm, params); err != nil {
		t.Fatal(err)
	}
	if got := pm.GetPixel(32, 32); !colorNear(got, params.ColorA, 0.05) {
		t.Errorf("center = %+v, want near colorA %+v", got, params.ColorA)
	}
}

func TestRender_ConicWedgeEndpoints(t *testing.T) {
	params := testParams()
	params.Gradient = GradientConic
	params.AngleDeg = 0

	pm := NewPixmap(512)
	if err := Render(pm, params); err != nil {
		t.Fatal(err)
	}

	// Pixel centers sit at +0.5 offsets, so just below the +x axis from the
	// center (256, 256) lies in the first wedge and just above in the last.
	first := pm.GetPixel(500, 256)
	if !colorNear(first, params.ColorA, 0.01) {
		t.Errorf("first wedge pixel = %+v, want colorA %+v", first, params.ColorA)
	}
	last := pm.GetPixel(500, 255)
	if !colorNear(last, params.ColorB, 0.01) {
		t.Errorf("last wedge pixel = %+v, want colorB %+v", last, params.ColorB)
	}
}

func TestRender_StrokeOnOutline(t *testing.T) {
	params := testParams()
	params.StrokeWidth = 20
	params.StrokeColor = MustHex("#00ff00")

	pm := NewPixmap(512)
	if err := Render(pm, params); err != nil {
		t.Fatal(err)
	}

	// Stroke width on a 512 canvas: 20/1024*512 = 10 pixels, centered on the
	// circle outline at radius 256. (511, 256) sits mid-band.
	got := pm.GetPixel(511, 256)
	if !colorNear(got, params.StrokeColor, 0.05) {
		t.Errorf("outline pixel = %+v, want stroke color %+v", got, params.StrokeColor)
	}
}

func TestPaddedRegion(t *testing.T) {
	// Inner extent stays positive across the whole parameter range.
	for size := 10; size <= 64; size++ {
		for padding := 0; padding <= MaxPadding; padding++ {
			pad, inner := paddedRegion(size, padding)
			if inner <= 0 {
				t.Fatalf("size %d padding %d: inner %d", size, padding, inner)
			}
			if pad*2+inner != size {
				t.Fatalf("size %d padding %d: pad %d and inner %d do not cover", size, padding, pad, inner)
			}
		}
	}

	// At sizes where a percent step is at least a pixel, more padding means
	// strictly less drawable area.
	prev := 1001
	for padding := 0; padding <= MaxPadding; padding++ {
		_, inner := paddedRegion(1000, padding)
		if inner >= prev {
			t.Fatalf("padding %d: inner %d did not decrease (previous %d)", padding, inner, prev)
		}
		prev = inner
	}
}
