package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// IdleView is what the idle screen draws from. Hover coordinates are
// already mapped to the chrome canvas.
type IdleView struct {
	OpenMenu int
	HoverX   int
	HoverY   int
	Volume   int
}

// DrawIdle paints the no-media screen: menu strip, a dimmed control strip
// and a hint in the middle. The fixed canvas layout is scaled to the
// window so hit rects line up with what is drawn.
func DrawIdle(screen *ebiten.Image, v IdleView) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	sx := float64(w) / CanvasW
	sy := float64(h) / CanvasH

	screen.Fill(ColorBackground)

	DrawTextCentered(screen, "Matinee",
		float64(w)/2, float64(h)/2-60*sy, fsize(TitleFS, sy), ColorPrimary)
	DrawTextCentered(screen, "Open a video file to begin (Ctrl+O)",
		float64(w)/2, float64(h)/2+10*sy, fsize(HintFS, sy), ColorTextSecondary)

	drawIdleBar(screen, v, sx, sy)
	drawIdleMenu(screen, v, sx, sy)
}

func drawIdleMenu(screen *ebiten.Image, v IdleView, sx, sy float64) {
	fillRectScaled(screen, MenuBandRect(), sx, sy, ColorSurface)

	for _, hit := range MenuBarLayout() {
		hovered := hit.Rect.Contains(v.HoverX, v.HoverY)
		if hit.Index == v.OpenMenu || hovered {
			fillRectScaled(screen, hit.Rect, sx, sy, ColorSurfaceHover)
		}
		DrawTextCentered(screen, Menus()[hit.Index].Label,
			float64(hit.Rect.X+hit.Rect.W/2)*sx, float64(hit.Rect.Y+hit.Rect.H/2)*sy,
			fsize(MenuFS, sy), ColorText)
	}

	if v.OpenMenu < 0 {
		return
	}
	fillRectScaled(screen, DropdownRect(v.OpenMenu), sx, sy, ColorSurface)
	for _, row := range DropdownLayout(v.OpenMenu) {
		if row.Item.Separator {
			mid := float64(row.Rect.Y+row.Rect.H/2) * sy
			vector.DrawFilledRect(screen,
				float32(float64(row.Rect.X+16)*sx), float32(mid),
				float32(float64(row.Rect.W-32)*sx), 1, ColorTextMuted, false)
			continue
		}
		if row.Rect.Contains(v.HoverX, v.HoverY) {
			fillRectScaled(screen, row.Rect, sx, sy, ColorSurfaceHover)
		}
		DrawText(screen, row.Item.Label,
			float64(row.Rect.X+24)*sx, float64(row.Rect.Y+10)*sy,
			fsize(MenuFS, sy), ColorText)
		if row.Item.Accel != "" {
			aw, _ := MeasureText(row.Item.Accel, fsize(MenuFS-6, sy))
			DrawText(screen, row.Item.Accel,
				float64(row.Rect.X+row.Rect.W-24)*sx-aw, float64(row.Rect.Y+12)*sy,
				fsize(MenuFS-6, sy), ColorTextMuted)
		}
	}
}

func drawIdleBar(screen *ebiten.Image, v IdleView, sx, sy float64) {
	fillRectScaled(screen, BarRect(), sx, sy, ColorSurface)

	tr := trackRect()
	vector.DrawFilledRect(screen,
		float32(float64(tr.X)*sx), float32((float64(TrackY)-2)*sy),
		float32(float64(tr.W)*sx), float32(4*sy+1), ColorSurfaceHover, false)

	DrawText(screen, "00:00", 40*sx, (float64(TrackY)-14)*sy, fsize(ClockFS-6, sy), ColorTextMuted)
	totalW, _ := MeasureText("00:00", fsize(ClockFS-6, sy))
	DrawText(screen, "00:00", 1880*sx-totalW, (float64(TrackY)-14)*sy, fsize(ClockFS-6, sy), ColorTextMuted)

	labels := [4]string{"-10s", "▶", "■", "+10s"}
	for i, r := range transportRects() {
		clr := ColorTextSecondary
		if r.Contains(v.HoverX, v.HoverY) {
			clr = ColorText
		}
		DrawTextCentered(screen, labels[i],
			float64(r.X+r.W/2)*sx, float64(r.Y+r.H/2)*sy, fsize(ButtonFS-6, sy), clr)
	}

	DrawTextCentered(screen, "CC",
		centerXf(subsButtonRect())*sx, float64(BtnRowY)*sy, fsize(ButtonFS-10, sy), ColorTextMuted)
	DrawTextCentered(screen, "↻",
		centerXf(reloadButtonRect())*sx, float64(BtnRowY)*sy, fsize(ButtonFS-10, sy), ColorTextMuted)

	vs := volSliderRect()
	vector.DrawFilledRect(screen,
		float32(float64(vs.X)*sx), float32((float64(BtnRowY)-2)*sy),
		float32(float64(vs.W)*sx), float32(4*sy+1), ColorSurfaceHover, false)
	fillW := float64(vs.W) * float64(v.Volume) / 200.0
	vector.DrawFilledRect(screen,
		float32(float64(vs.X)*sx), float32((float64(BtnRowY)-2)*sy),
		float32(fillW*sx), float32(4*sy+1), ColorPrimaryDark, false)
	DrawText(screen, fmt.Sprintf("%d%%", v.Volume),
		float64(vs.X+vs.W-36)*sx, (float64(BtnRowY)-40)*sy, fsize(20, sy), ColorTextMuted)
}

func fillRectScaled(dst *ebiten.Image, r Rect, sx, sy float64, clr color.Color) {
	vector.DrawFilledRect(dst,
		float32(float64(r.X)*sx), float32(float64(r.Y)*sy),
		float32(float64(r.W)*sx), float32(float64(r.H)*sy), clr, false)
}

func centerXf(r Rect) float64 { return float64(r.X + r.W/2) }

// fsize scales a canvas font size to the window, quantized so the face
// cache stays bounded across resizes.
func fsize(base int, sy float64) float64 {
	s := math.Round(float64(base) * sy)
	if s < 8 {
		s = 8
	}
	return s
}
