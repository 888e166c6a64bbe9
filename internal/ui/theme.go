package ui

import "image/color"

// Colors: dark cinema theme with a warm marquee accent.
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x10, B: 0x0E, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1E, G: 0x1B, B: 0x18, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x2C, G: 0x28, B: 0x22, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF2, G: 0xB8, B: 0x31, A: 0xFF} // marquee amber
	ColorPrimaryDark   = color.RGBA{R: 0xB8, G: 0x88, B: 0x1E, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE6, G: 0xE2, B: 0xDC, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x9A, G: 0x94, B: 0x8A, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x66, G: 0x62, B: 0x5A, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
)

// Chrome layout. Everything is laid out on a fixed 1920x1080 canvas; the
// playback renderer feeds it to the engine's ASS overlay resolution and
// the idle renderer scales it to the window.
const (
	CanvasW = 1920
	CanvasH = 1080

	MenuBarH      = 44
	MenuItemW     = 130
	MenuPadX      = 24
	DropdownW     = 340
	DropdownItemH = 52

	BarH      = 150 // control strip at the bottom of the canvas
	BarPadX   = 40
	TrackY    = 955 // progress track center line
	TrackH    = 8
	TrackR    = 4
	ScrubberR = 11

	BtnRowY   = 1032 // transport button center line
	BtnSize   = 64
	BtnGap    = 24
	ClockFS   = 30
	ButtonFS  = 34
	MenuFS    = 26
	PanelFS   = 28
	HintFS    = 34
	TitleFS   = 54

	VolSliderW = 260
	VolSliderH = 8

	// Transient OSD geometry
	OSDInsetVolume = 50 // from top-right corner
	OSDInsetSeek   = 30 // horizontal inset, vertically centered
	OSDProgressYUp = 80 // above the bottom edge
	OSDProgressW   = 760
	OSDProgressH   = 14

	// Subtitle track panel
	PanelW     = 640
	PanelItemH = 56
	PanelMaxH  = 700
)
