// Package ui lays out and renders the player chrome. All geometry lives on
// a fixed 1920x1080 canvas shared by two renderers: the idle screen draws
// it scaled into the window, and during playback the same layout is
// emitted as ASS overlay text for the engine to composite.
package ui

// Action identifies a chrome command.
type Action int

const (
	ActNone Action = iota
	ActOpen
	ActExit
	ActClear
	ActInstallShortcuts
	ActUninstallShortcuts
	ActFullscreen
	ActSkipBack
	ActPlayPause
	ActStop
	ActSkipForward
	ActSeekTo
	ActVolumeTo
	ActSubtitles
	ActReloadSubs
	ActSelectTrack
	ActMenuBar
)

// Rect is an axis-aligned box on the chrome canvas.
type Rect struct{ X, Y, W, H int }

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Fraction returns the horizontal position of x inside r, clamped to
// [0,1]. Used for click-to-seek and the volume slider.
func (r Rect) Fraction(x int) float64 {
	if r.W <= 0 {
		return 0
	}
	f := float64(x-r.X) / float64(r.W)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f
}

// Hit is a clickable region. Index disambiguates rows of list-like hits
// (menu bar entries, subtitle panel rows).
type Hit struct {
	Action Action
	Index  int
	Rect   Rect
}

type MenuItem struct {
	Label     string
	Accel     string
	Action    Action
	Separator bool
}

type Menu struct {
	Label string
	Items []MenuItem
}

// Menus returns the menu bar definition.
func Menus() []Menu {
	return []Menu{
		{Label: "File", Items: []MenuItem{
			{Label: "Open File...", Accel: "Ctrl+O", Action: ActOpen},
			{Separator: true},
			{Label: "Exit", Accel: "Ctrl+Q", Action: ActExit},
		}},
		{Label: "Options", Items: []MenuItem{
			{Label: "Clear Video", Accel: "C", Action: ActClear},
			{Separator: true},
			{Label: "Create Shortcuts", Action: ActInstallShortcuts},
			{Label: "Uninstall Shortcuts", Action: ActUninstallShortcuts},
			{Separator: true},
			{Label: "Fullscreen", Accel: "F / F11", Action: ActFullscreen},
		}},
	}
}

// MenuBarLayout returns one hit per top-level menu label.
func MenuBarLayout() []Hit {
	menus := Menus()
	hits := make([]Hit, len(menus))
	x := 0
	for i := range menus {
		hits[i] = Hit{
			Action: ActMenuBar,
			Index:  i,
			Rect:   Rect{X: x, Y: 0, W: MenuItemW, H: MenuBarH},
		}
		x += MenuItemW
	}
	return hits
}

// DropdownRow pairs a menu item with its on-canvas rect. Separator rows
// have no action and a half-height rect.
type DropdownRow struct {
	Item MenuItem
	Rect Rect
}

// DropdownLayout returns the rows of one open menu.
func DropdownLayout(menu int) []DropdownRow {
	menus := Menus()
	if menu < 0 || menu >= len(menus) {
		return nil
	}
	x := menu * MenuItemW
	y := MenuBarH
	rows := make([]DropdownRow, 0, len(menus[menu].Items))
	for _, it := range menus[menu].Items {
		h := DropdownItemH
		if it.Separator {
			h = DropdownItemH / 3
		}
		rows = append(rows, DropdownRow{Item: it, Rect: Rect{X: x, Y: y, W: DropdownW, H: h}})
		y += h
	}
	return rows
}

// DropdownRect is the bounding box of an open menu, for outside-click
// dismissal.
func DropdownRect(menu int) Rect {
	rows := DropdownLayout(menu)
	if len(rows) == 0 {
		return Rect{}
	}
	last := rows[len(rows)-1].Rect
	return Rect{
		X: rows[0].Rect.X,
		Y: rows[0].Rect.Y,
		W: DropdownW,
		H: last.Y + last.H - rows[0].Rect.Y,
	}
}

// Control strip geometry, shared by hit-testing and both renderers.

func barBackdropRect() Rect {
	return Rect{X: 0, Y: CanvasH - BarH, W: CanvasW, H: BarH}
}

func trackRect() Rect {
	return Rect{X: 200, Y: TrackY - 16, W: 1520, H: 32}
}

func transportRects() [4]Rect {
	total := 4*BtnSize + 3*BtnGap
	x := (CanvasW - total) / 2
	var out [4]Rect
	for i := range out {
		out[i] = Rect{X: x, Y: BtnRowY - BtnSize/2, W: BtnSize, H: BtnSize}
		x += BtnSize + BtnGap
	}
	return out
}

func volSliderRect() Rect {
	return Rect{X: CanvasW - BarPadX - VolSliderW, Y: BtnRowY - 16, W: VolSliderW, H: 32}
}

func subsButtonRect() Rect {
	return Rect{X: CanvasW - BarPadX - VolSliderW - 90 - BtnSize, Y: BtnRowY - BtnSize/2, W: BtnSize, H: BtnSize}
}

func reloadButtonRect() Rect {
	r := subsButtonRect()
	r.X -= BtnSize + BtnGap
	return r
}

// BarHits returns the clickable regions of the control strip.
func BarHits() []Hit {
	tr := transportRects()
	return []Hit{
		{Action: ActSeekTo, Rect: trackRect()},
		{Action: ActSkipBack, Rect: tr[0]},
		{Action: ActPlayPause, Rect: tr[1]},
		{Action: ActStop, Rect: tr[2]},
		{Action: ActSkipForward, Rect: tr[3]},
		{Action: ActVolumeTo, Rect: volSliderRect()},
		{Action: ActSubtitles, Rect: subsButtonRect()},
		{Action: ActReloadSubs, Rect: reloadButtonRect()},
	}
}

// BarRect is the control strip bounding box.
func BarRect() Rect { return barBackdropRect() }

// MenuBandRect is the menu strip bounding box.
func MenuBandRect() Rect { return Rect{X: 0, Y: 0, W: CanvasW, H: MenuBarH} }

// Subtitle track panel: a centered modal list.

func panelRect(n int) Rect {
	h := n*PanelItemH + 80
	if h > PanelMaxH {
		h = PanelMaxH
	}
	return Rect{
		X: (CanvasW - PanelW) / 2,
		Y: (CanvasH - h) / 2,
		W: PanelW,
		H: h,
	}
}

// PanelHits returns one hit per visible subtitle row. Long lists clip;
// Index still refers to the resolver's list.
func PanelHits(n int) []Hit {
	pr := panelRect(n)
	hits := make([]Hit, 0, n)
	y := pr.Y + 60
	for i := 0; i < n; i++ {
		if y+PanelItemH > pr.Y+pr.H {
			break
		}
		hits = append(hits, Hit{
			Action: ActSelectTrack,
			Index:  i,
			Rect:   Rect{X: pr.X + 20, Y: y, W: PanelW - 40, H: PanelItemH},
		})
		y += PanelItemH
	}
	return hits
}

// PanelRect is the panel bounding box, for outside-click dismissal.
func PanelRect(n int) Rect { return panelRect(n) }
