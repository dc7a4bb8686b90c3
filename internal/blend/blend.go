// Package blend provides Porter-Duff compositing primitives on
// non-premultiplied float64 channels in [0, 1].
package blend

// SourceOver composites a source pixel over a destination pixel, standard
// alpha blending.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da float64) (r, g, b, a float64) {
	inv := 1 - sa
	a = sa + da*inv
	if a == 0 {
		return 0, 0, 0, 0
	}
	r = (sr*sa + dr*da*inv) / a
	g = (sg*sa + dg*da*inv) / a
	b = (sb*sa + db*da*inv) / a
	return r, g, b, a
}

// Plus adds the premultiplied source and destination contributions, clamping
// each channel; the canvas "lighter" operator.
func Plus(sr, sg, sb, sa, dr, dg, db, da float64) (r, g, b, a float64) {
	a = clamp1(sa + da)
	if a == 0 {
		return 0, 0, 0, 0
	}
	r = clamp1(clamp1(sr*sa+dr*da) / a)
	g = clamp1(clamp1(sg*sa+dg*da) / a)
	b = clamp1(clamp1(sb*sa+db*da) / a)
	return r, g, b, a
}

func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	return x
}
