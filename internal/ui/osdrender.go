package ui

import (
	"fmt"
	"strings"
)

// VolumeOSDASS renders the transient volume indicator, pinned to the
// top-right corner with a fixed inset.
func VolumeOSDASS(volume int) string {
	var b strings.Builder
	w, h := 280, 70
	x := CanvasW - OSDInsetVolume - w
	y := OSDInsetVolume

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H38&}%s{\\p0}\n",
		x, y, assBlack, assRoundRect(0, 0, w, h, 14),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an4\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs26\\1c%s\\fn%s\\b1}Volume %d%%{\\r}\n",
		x+20, y+24, assShadow, assWhite, assFonts, volume,
	))

	barW := w - 40
	fillW := barW * volume / 200
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H80&}%s{\\p0}\n",
		x+20, y+h-24, assWhite, assRoundRect(0, 0, barW, 8, 4),
	))
	if fillW > 0 {
		if fillW < 8 {
			fillW = 8
		}
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			x+20, y+h-24, assAmber, assRoundRect(0, 0, fillW, 8, 4),
		))
	}
	return b.String()
}

// SeekOSDASS renders the transient seek arrows, vertically centered and
// inset on the side matching the direction.
func SeekOSDASS(forward bool) string {
	var b strings.Builder
	w, h := 170, 90
	y := (CanvasH - h) / 2

	var x int
	if forward {
		x = CanvasW - OSDInsetSeek - w
	} else {
		x = OSDInsetSeek
	}

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H38&}%s{\\p0}\n",
		x, y, assBlack, assRoundRect(0, 0, w, h, 16),
	))

	// Twin triangles pointing along the seek direction
	triY := y + 20
	if forward {
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			x+26, triY, assWhite, assTriangle(0, 0, 0, 50, 38, 25),
		))
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			x+86, triY, assWhite, assTriangle(0, 0, 0, 50, 38, 25),
		))
	} else {
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			x+46, triY, assWhite, assTriangle(38, 0, 38, 50, 0, 25),
		))
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			x+106, triY, assWhite, assTriangle(38, 0, 38, 50, 0, 25),
		))
	}
	return b.String()
}

// ProgressOSDASS renders the transient scrub bar centered above the
// bottom edge, filled to the current fraction.
func ProgressOSDASS(fraction float64, clock, total string) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	var b strings.Builder
	x := (CanvasW - OSDProgressW) / 2
	cy := CanvasH - OSDProgressYUp

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H38&}%s{\\p0}\n",
		x-40, cy-64, assBlack, assRoundRect(0, 0, OSDProgressW+80, 100, 16),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs26\\1c%s\\fn%s\\b1}%s / %s{\\r}\n",
		CanvasW/2, cy-34, assShadow, assWhite, assFonts, clock, total,
	))

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H80&}%s{\\p0}\n",
		x, cy, assWhite, assRoundRect(0, 0, OSDProgressW, OSDProgressH, OSDProgressH/2),
	))
	fillW := int(float64(OSDProgressW) * fraction)
	if fillW > 0 {
		if fillW < OSDProgressH {
			fillW = OSDProgressH
		}
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			x, cy, assAmber, assRoundRect(0, 0, fillW, OSDProgressH, OSDProgressH/2),
		))
	}
	return b.String()
}
