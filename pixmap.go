package iconsmith

import (
	"image"

	"github.com/iconsmith/iconsmith/internal/blend"
)

// BlendMode selects how fills composite onto existing pixels.
type BlendMode int

const (
	// BlendSourceOver is standard alpha compositing, the default.
	BlendSourceOver BlendMode = iota
	// BlendPlus adds source to destination, clamped; the canvas "lighter"
	// operator.
	BlendPlus
)

// Pixmap is a square RGBA pixel buffer, the target surface for Render.
// Channels are stored non-premultiplied, 4 bytes per pixel.
type Pixmap struct {
	size int
	data []uint8
}

// NewPixmap creates a new transparent pixmap with the given edge length.
func NewPixmap(size int) *Pixmap {
	return &Pixmap{
		size: size,
		data: make([]uint8, size*size*4),
	}
}

// Size returns the edge length of the pixmap.
func (p *Pixmap) Size() int {
	return p.size
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		return
	}
	i := (y*p.size + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		return Transparent
	}
	i := (y*p.size + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color, replacing existing content.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// FillRect composites the brush over the axis-aligned pixel rectangle
// [x0, x1) x [y0, y1), evaluated at pixel centers.
func (p *Pixmap) FillRect(x0, y0, x1, y1 int, b Brush, mode BlendMode) {
	x0, y0 = maxInt(x0, 0), maxInt(y0, 0)
	x1, y1 = minInt(x1, p.size), minInt(y1, p.size)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			src := b.ColorAt(float64(x)+0.5, float64(y)+0.5)
			p.compositePixel(x, y, src, mode)
		}
	}
}

// FillMask composites the brush through a coverage mask. The mask must have
// the same bounds as the pixmap; coverage scales the brush's alpha per pixel.
func (p *Pixmap) FillMask(mask *image.Alpha, b Brush, mode BlendMode) {
	for y := 0; y < p.size; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < p.size; x++ {
			cov := row[x]
			if cov == 0 {
				continue
			}
			src := b.ColorAt(float64(x)+0.5, float64(y)+0.5)
			if cov < 255 {
				src.A *= float64(cov) / 255
			}
			p.compositePixel(x, y, src, mode)
		}
	}
}

// compositePixel blends src onto the pixel at (x, y).
func (p *Pixmap) compositePixel(x, y int, src RGBA, mode BlendMode) {
	if src.A == 0 {
		return
	}
	dst := p.GetPixel(x, y)
	var r, g, b, a float64
	switch mode {
	case BlendPlus:
		r, g, b, a = blend.Plus(src.R, src.G, src.B, src.A, dst.R, dst.G, dst.B, dst.A)
	default:
		r, g, b, a = blend.SourceOver(src.R, src.G, src.B, src.A, dst.R, dst.G, dst.B, dst.A)
	}
	p.SetPixel(x, y, RGBA{R: r, G: g, B: b, A: a})
}

// ToImage converts the pixmap to a non-premultiplied image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.size, p.size))
	copy(img.Pix, p.data)
	return img
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
