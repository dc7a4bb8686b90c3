// Package iconsmith renders parametric icon designs and packages them into
// standard icon files.
//
// # Overview
//
// An icon design is a small immutable parameter set — gradient, shape,
// stroke, glow, background — and rendering is a pure function from
// (Params, size) to pixels. Each requested resolution is re-rendered from
// scratch rather than scaled, so edges stay crisp at every size.
//
// # Quick Start
//
//	params := iconsmith.DefaultParams()
//	params.Shape = iconsmith.ShapeSquircle
//
//	pm := iconsmith.NewPixmap(256)
//	if err := iconsmith.Render(pm, params); err != nil {
//	    log.Fatal(err)
//	}
//	png.Encode(out, pm.ToImage())
//
// The Export helper renders a batch of sizes, encodes each as PNG and
// assembles a multi-resolution ICO container:
//
//	res, err := iconsmith.Export(ctx, params, []int{16, 32, 48, 64, 128, 256})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Params, Render, Export, Pixmap, Path, Brush
//   - ico: the ICO container encoder
//   - Internal: stroke (outline expansion), blend (compositing)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Gradient angles in degrees, 0 is right, increases clockwise on screen
package iconsmith
