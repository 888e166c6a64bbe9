// Package icon draws the window icon at runtime so the binary ships no
// image assets.
package icon

import (
	"image"
	"image/color"
)

// Palette mirrors the chrome theme: a dark film frame with marquee amber.
var (
	bgDark    = color.RGBA{R: 0x12, G: 0x10, B: 0x0E, A: 0xFF}
	frameDark = color.RGBA{R: 0x1E, G: 0x1B, B: 0x18, A: 0xFF}
	amber     = color.RGBA{R: 0xF2, G: 0xB8, B: 0x31, A: 0xFF}
	amberDeep = color.RGBA{R: 0xB8, G: 0x88, B: 0x1E, A: 0xFF}
	amberGlow = color.RGBA{R: 0x44, G: 0x34, B: 0x0E, A: 0x48} // premultiplied
)

// Generate returns the window icon at the sizes ebiten picks from.
func Generate() []image.Image {
	return []image.Image{render(64), render(32), render(16)}
}

func render(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	paint(img, bgDark, func(x, y float64) bool { return true })

	// Film frame with a thin amber rim.
	paint(img, amberDeep, roundRect(0.06*s, 0.14*s, 0.88*s, 0.72*s, 0.10*s))
	paint(img, frameDark, roundRect(0.10*s, 0.18*s, 0.80*s, 0.64*s, 0.07*s))

	// Sprocket holes along the top and bottom edges.
	holeW, holeH := 0.10*s, 0.07*s
	for i := 0; i < 4; i++ {
		hx := (0.16 + 0.20*float64(i)) * s
		paint(img, bgDark, roundRect(hx, 0.21*s, holeW, holeH, 0.02*s))
		paint(img, bgDark, roundRect(hx, 0.72*s, holeW, holeH, 0.02*s))
	}

	// Play triangle under a soft glow.
	paint(img, amberGlow, circle(0.52*s, 0.50*s, 0.24*s))
	paint(img, amber, triangle(0.42*s, 0.36*s, 0.42*s, 0.64*s, 0.66*s, 0.50*s))

	return img
}

// paint blends c over every pixel whose center satisfies hit.
func paint(img *image.RGBA, c color.Color, hit func(x, y float64) bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if hit(float64(x)+0.5, float64(y)+0.5) {
				blend(img, x, y, c)
			}
		}
	}
}

func roundRect(x0, y0, w, h, r float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		if x < x0 || x > x0+w || y < y0 || y > y0+h {
			return false
		}
		// Distance from the rect core, where the core is the rect inset
		// by the corner radius.
		dx := x - clamp(x, x0+r, x0+w-r)
		dy := y - clamp(y, y0+r, y0+h-r)
		return dx*dx+dy*dy <= r*r
	}
}

func circle(cx, cy, r float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	}
}

func triangle(x1, y1, x2, y2, x3, y3 float64) func(x, y float64) bool {
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	return func(x, y float64) bool {
		d1 := edge(x1, y1, x2, y2, x, y)
		d2 := edge(x2, y2, x3, y3, x, y)
		d3 := edge(x3, y3, x1, y1, x, y)
		neg := d1 < 0 || d2 < 0 || d3 < 0
		pos := d1 > 0 || d2 > 0 || d3 > 0
		return !(neg && pos)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// blend source-overs c, which is alpha-premultiplied, onto the pixel.
func blend(img *image.RGBA, x, y int, c color.Color) {
	tr, tg, tb, ta := c.RGBA()
	if ta == 0 {
		return
	}
	if ta == 0xFFFF {
		img.Set(x, y, c)
		return
	}
	under := img.RGBAAt(x, y)
	inv := 0xFFFF - ta
	r := tr + uint32(under.R)*257*inv/0xFFFF
	g := tg + uint32(under.G)*257*inv/0xFFFF
	b := tb + uint32(under.B)*257*inv/0xFFFF
	img.SetRGBA(x, y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
}
