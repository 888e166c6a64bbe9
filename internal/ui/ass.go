package ui

import (
	"fmt"
	"strings"
)

// ASS color format: &HAABBGGRR (alpha then blue, green, red: the reverse
// of RGB ordering)
const (
	assWhite    = "&H00FFFFFF"
	assWhiteDim = "&H60FFFFFF"
	assBlack    = "&H00000000"
	assAmber    = "&H0031B8F2" // marquee amber #F2B831 in BGR
	assAmberDim = "&H8031B8F2"
	assBarBG    = "&H80000000"
	assPanelBG  = "&H20000000"
	assShadow   = "&H80000000"

	assFonts = "Liberation Sans,DejaVu Sans,sans-serif"
)

// assEscape strips markup-significant characters from user-derived text so
// a file name cannot open an override block.
func assEscape(s string) string {
	r := strings.NewReplacer("{", "(", "}", ")", "\\", "/", "\n", " ", "\r", " ")
	return r.Replace(s)
}

// assRoundRect generates an ASS vector drawing for a rounded rectangle.
// Coordinates are relative to the \pos anchor.
func assRoundRect(x, y, w, h, r int) string {
	if r > h/2 {
		r = h / 2
	}
	if r > w/2 {
		r = w / 2
	}
	// m = moveto, l = lineto, b = cubic bezier, clockwise from top-left
	return fmt.Sprintf(
		"m %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d",
		x+r, y,
		x+w-r, y,
		x+w, y, x+w, y, x+w, y+r,
		x+w, y+h-r,
		x+w, y+h, x+w, y+h, x+w-r, y+h,
		x+r, y+h,
		x, y+h, x, y+h, x, y+h-r,
		x, y+r,
		x, y, x, y, x+r, y,
	)
}

// assCircle generates an ASS vector drawing for a circle using cubic
// bezier curves.
func assCircle(cx, cy, r int) string {
	k := r * 55 / 100
	return fmt.Sprintf(
		"m %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d",
		cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
	)
}

// assTriangle generates a filled triangle through three points.
func assTriangle(x1, y1, x2, y2, x3, y3 int) string {
	return fmt.Sprintf("m %d %d l %d %d l %d %d", x1, y1, x2, y2, x3, y3)
}

// CanvasPoint maps window coordinates onto the fixed chrome canvas.
func CanvasPoint(wx, wy, winW, winH int) (int, int) {
	if winW <= 0 || winH <= 0 {
		return 0, 0
	}
	return wx * CanvasW / winW, wy * CanvasH / winH
}
