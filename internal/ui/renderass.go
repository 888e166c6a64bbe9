package ui

import (
	"fmt"
	"strings"
)

// BarInfo is what the control strip renders from.
type BarInfo struct {
	Playing  bool
	Clock    string
	Total    string
	Fraction float64
	Volume   int
	Track    string
}

// MenuASS renders the menu strip and, when open is a valid index, its
// dropdown.
func MenuASS(open int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(0,0)\\p1\\bord0\\shad0\\1c%s\\1a&H20&}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
		assBlack, CanvasW, CanvasW, MenuBarH, MenuBarH,
	))

	for i, m := range Menus() {
		x := i * MenuItemW
		if i == open {
			b.WriteString(fmt.Sprintf(
				"{\\an7\\pos(%d,0)\\p1\\bord0\\shad0\\1c%s\\1a&H70&}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
				x, assAmber, MenuItemW, MenuItemW, MenuBarH, MenuBarH,
			))
		}
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s\\fn%s}%s{\\r}\n",
			x+MenuItemW/2, MenuBarH/2, assShadow, MenuFS, assWhite, assFonts, m.Label,
		))
	}

	if open >= 0 && open < len(Menus()) {
		dr := DropdownRect(open)
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H28&}%s{\\p0}\n",
			dr.X, dr.Y, assBlack, assRoundRect(0, 0, dr.W, dr.H, 8),
		))
		for _, row := range DropdownLayout(open) {
			if row.Item.Separator {
				b.WriteString(fmt.Sprintf(
					"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&HA0&}m 0 0 l %d 0 l %d 2 l 0 2{\\p0}\n",
					row.Rect.X+16, row.Rect.Y+row.Rect.H/2, assWhite, row.Rect.W-32, row.Rect.W-32,
				))
				continue
			}
			b.WriteString(fmt.Sprintf(
				"{\\an4\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s\\fn%s}%s{\\r}\n",
				row.Rect.X+24, row.Rect.Y+row.Rect.H/2, assShadow, MenuFS, assWhite, assFonts,
				assEscape(row.Item.Label),
			))
			if row.Item.Accel != "" {
				b.WriteString(fmt.Sprintf(
					"{\\an6\\pos(%d,%d)\\bord0\\shad0\\fs%d\\1c%s\\fn%s}%s{\\r}\n",
					row.Rect.X+row.Rect.W-24, row.Rect.Y+row.Rect.H/2, MenuFS-6, assWhiteDim, assFonts,
					row.Item.Accel,
				))
			}
		}
	}

	return b.String()
}

// BarASS renders the bottom control strip.
func BarASS(info BarInfo) string {
	var b strings.Builder

	bd := barBackdropRect()
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H40&}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
		bd.X, bd.Y, assBlack, bd.W, bd.W, bd.H, bd.H,
	))

	// Progress track, fill and scrubber
	pct := info.Fraction
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	barX, barW := 200, 1520
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H80&}%s{\\p0}\n",
		barX, TrackY-TrackH/2, assWhite, assRoundRect(0, 0, barW, TrackH, TrackR),
	))
	fillW := int(float64(barW) * pct)
	if fillW > 0 {
		if fillW < TrackR*2 {
			fillW = TrackR * 2
		}
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			barX, TrackY-TrackH/2, assAmber, assRoundRect(0, 0, fillW, TrackH, TrackR),
		))
	}
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad2\\3c%s\\1c%s}%s{\\p0}\n",
		barX+int(float64(barW)*pct), TrackY, assShadow, assWhite, assCircle(0, 0, ScrubberR),
	))

	// Clocks flanking the track
	b.WriteString(fmt.Sprintf(
		"{\\an4\\pos(40,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s\\fn%s\\b1}%s{\\r}\n",
		TrackY, assShadow, ClockFS, assWhite, assFonts, info.Clock,
	))
	b.WriteString(fmt.Sprintf(
		"{\\an6\\pos(1880,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s\\fn%s}%s{\\r}\n",
		TrackY, assShadow, ClockFS, assWhiteDim, assFonts, info.Total,
	))

	// Transport: skip back, play/pause, stop, skip forward
	tr := transportRects()
	b.WriteString(barButtonText(tr[0], "-10s"))
	if info.Playing {
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}m 16 12 l 27 12 l 27 52 l 16 52 m 37 12 l 48 12 l 48 52 l 37 52{\\p0}\n",
			tr[1].X, tr[1].Y, assWhite,
		))
	} else {
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			tr[1].X, tr[1].Y, assWhite, assTriangle(18, 10, 18, 54, 52, 32),
		))
	}
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}m 16 16 l 48 16 l 48 48 l 16 48{\\p0}\n",
		tr[2].X, tr[2].Y, assWhite,
	))
	b.WriteString(barButtonText(tr[3], "+10s"))

	// Subtitle and reload buttons
	b.WriteString(barButtonBox(subsButtonRect(), "CC"))
	b.WriteString(barButtonBox(reloadButtonRect(), "↻"))

	// Volume slider with the current subtitle label above it
	vs := volSliderRect()
	volPct := float64(info.Volume) / 200.0
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H80&}%s{\\p0}\n",
		vs.X, BtnRowY-VolSliderH/2, assWhite, assRoundRect(0, 0, vs.W, VolSliderH, VolSliderH/2),
	))
	volFillW := int(float64(vs.W) * volPct)
	if volFillW > 0 {
		if volFillW < VolSliderH {
			volFillW = VolSliderH
		}
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			vs.X, BtnRowY-VolSliderH/2, assAmber, assRoundRect(0, 0, volFillW, VolSliderH, VolSliderH/2),
		))
	}
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
		vs.X+volFillW, BtnRowY, assWhite, assCircle(0, 0, 8),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an6\\pos(%d,%d)\\bord0\\shad0\\fs22\\1c%s\\fn%s}%d%%{\\r}\n",
		vs.X+vs.W, BtnRowY-34, assWhiteDim, assFonts, info.Volume,
	))
	if info.Track != "" {
		b.WriteString(fmt.Sprintf(
			"{\\an6\\pos(%d,%d)\\bord0\\shad0\\fs22\\1c%s\\fn%s}%s{\\r}\n",
			vs.X-20, BtnRowY, assWhiteDim, assFonts, assEscape(info.Track),
		))
	}

	return b.String()
}

func barButtonText(r Rect, label string) string {
	return fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s\\fn%s}%s{\\r}\n",
		r.X+r.W/2, r.Y+r.H/2, assShadow, ButtonFS-6, assWhite, assFonts, label,
	)
}

func barButtonBox(r Rect, label string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H60&}%s{\\p0}\n",
		r.X, r.Y+10, assWhite, assRoundRect(0, 0, r.W, r.H-20, 8),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\bord0\\shad0\\fs%d\\1c%s\\fn%s\\b1}%s{\\r}\n",
		r.X+r.W/2, r.Y+r.H/2, ButtonFS-10, assBlack, assFonts, label,
	))
	return b.String()
}

// PanelASS renders the subtitle selection panel over the video.
func PanelASS(labels []string, current int) string {
	var b strings.Builder
	pr := panelRect(len(labels))

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H28&}%s{\\p0}\n",
		pr.X, pr.Y, assBlack, assRoundRect(0, 0, pr.W, pr.H, 12),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an4\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s\\fn%s\\b1}Subtitles{\\r}\n",
		pr.X+24, pr.Y+32, assShadow, PanelFS, assAmber, assFonts,
	))

	for _, hit := range PanelHits(len(labels)) {
		r := hit.Rect
		if hit.Index == current {
			b.WriteString(fmt.Sprintf(
				"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H70&}%s{\\p0}\n",
				r.X, r.Y, assAmber, assRoundRect(0, 0, r.W, r.H, 8),
			))
		}
		b.WriteString(fmt.Sprintf(
			"{\\an4\\pos(%d,%d)\\bord0\\shad0\\fs%d\\1c%s\\fn%s}%s{\\r}\n",
			r.X+20, r.Y+r.H/2, PanelFS-2, assWhite, assFonts, assEscape(labels[hit.Index]),
		))
	}

	return b.String()
}
