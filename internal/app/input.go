package app

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"matinee/internal/player"
	"matinee/internal/ui"
)

// doubleClickWindow is the longest gap between two clicks still treated
// as a double click on the video area.
const doubleClickWindow = 400 * time.Millisecond

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"escape": ebiten.KeyEscape,
	"esc":    ebiten.KeyEscape,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"f1":     ebiten.KeyF1,
	"f2":     ebiten.KeyF2,
	"f3":     ebiten.KeyF3,
	"f4":     ebiten.KeyF4,
	"f5":     ebiten.KeyF5,
	"f6":     ebiten.KeyF6,
	"f7":     ebiten.KeyF7,
	"f8":     ebiten.KeyF8,
	"f9":     ebiten.KeyF9,
	"f10":    ebiten.KeyF10,
	"f11":    ebiten.KeyF11,
	"f12":    ebiten.KeyF12,
	"a":      ebiten.KeyA,
	"b":      ebiten.KeyB,
	"c":      ebiten.KeyC,
	"d":      ebiten.KeyD,
	"e":      ebiten.KeyE,
	"f":      ebiten.KeyF,
	"g":      ebiten.KeyG,
	"h":      ebiten.KeyH,
	"i":      ebiten.KeyI,
	"j":      ebiten.KeyJ,
	"k":      ebiten.KeyK,
	"l":      ebiten.KeyL,
	"m":      ebiten.KeyM,
	"n":      ebiten.KeyN,
	"o":      ebiten.KeyO,
	"p":      ebiten.KeyP,
	"q":      ebiten.KeyQ,
	"r":      ebiten.KeyR,
	"s":      ebiten.KeyS,
	"t":      ebiten.KeyT,
	"u":      ebiten.KeyU,
	"v":      ebiten.KeyV,
	"w":      ebiten.KeyW,
	"x":      ebiten.KeyX,
	"y":      ebiten.KeyY,
	"z":      ebiten.KeyZ,
	"0":      ebiten.KeyDigit0,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
	"3":      ebiten.KeyDigit3,
	"4":      ebiten.KeyDigit4,
	"5":      ebiten.KeyDigit5,
	"6":      ebiten.KeyDigit6,
	"7":      ebiten.KeyDigit7,
	"8":      ebiten.KeyDigit8,
	"9":      ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just
// pressed. ebiten only reports physical presses, never OS auto-repeat.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}

// keyJustReleased checks if the key named by the config string was just
// released.
func keyJustReleased(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustReleased(k)
	}
	return false
}

func (g *Game) handleKeys(now time.Time) {
	if g.panelOpen {
		g.handlePanelKeys()
		return
	}

	kb := &g.cfg.Keybinds
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openFileDialog()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.handleEscape()
	}

	// f always toggles alongside the configured fullscreen key.
	if keyJustPressed(kb.Fullscreen) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFullscreen(now)
	}
	if keyJustPressed(kb.PlayPause) {
		g.togglePlay()
	}
	if keyJustPressed(kb.Clear) {
		g.clearMedia()
	}
	if keyJustPressed(kb.SubCycle) {
		g.cycleSubtitles()
	}

	if keyJustPressed(kb.SeekForward) {
		g.pressSeek(1, now)
	}
	if keyJustPressed(kb.SeekBackward) {
		g.pressSeek(-1, now)
	}
	if keyJustReleased(kb.SeekForward) && g.seekRamp.Direction() == 1 {
		g.seekRamp.Release()
	}
	if keyJustReleased(kb.SeekBackward) && g.seekRamp.Direction() == -1 {
		g.seekRamp.Release()
	}

	if keyJustPressed(kb.VolumeUp) {
		g.pressVolume(1, now)
	}
	if keyJustPressed(kb.VolumeDown) {
		g.pressVolume(-1, now)
	}
	if keyJustReleased(kb.VolumeUp) && g.volRamp.Direction() == 1 {
		g.volRamp.Release()
	}
	if keyJustReleased(kb.VolumeDown) && g.volRamp.Direction() == -1 {
		g.volRamp.Release()
	}
}

// handlePanelKeys runs while the track panel is modal: arrows move the
// highlight, enter selects it, escape closes.
func (g *Game) handlePanelKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		if g.panelSel > 0 {
			g.panelSel--
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		if g.panelSel < g.subs.Count()-1 {
			g.panelSel++
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.selectTrack(g.panelSel)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.panelOpen = false
	}
}

func (g *Game) handleMouse(now time.Time) {
	mx, my := ebiten.CursorPosition()
	if mx != g.lastPtrX || my != g.lastPtrY {
		g.lastPtrX, g.lastPtrY = mx, my
		g.reveal.PointerMoved(my, g.height, now)
		if g.panelOpen {
			cx, cy := ui.CanvasPoint(mx, my, g.width, g.height)
			for _, h := range ui.PanelHits(g.subs.Count()) {
				if h.Rect.Contains(cx, cy) {
					g.panelSel = h.Index
				}
			}
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 && g.session.Loaded() {
		dir := 1
		if wy < 0 {
			dir = -1
		}
		g.stepVolume(dir, now)
	}

	if g.dragVolume {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			cx, _ := ui.CanvasPoint(mx, my, g.width, g.height)
			g.volumeToFraction(g.dragRect.Fraction(cx), now)
		} else {
			g.dragVolume = false
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(mx, my, now)
	}
}

// handleClick routes a click through the chrome layers front to back:
// subtitle panel, open dropdown, menu bar, control strip, video area.
func (g *Game) handleClick(mx, my int, now time.Time) {
	cx, cy := ui.CanvasPoint(mx, my, g.width, g.height)

	if g.panelOpen {
		for _, h := range ui.PanelHits(g.subs.Count()) {
			if h.Rect.Contains(cx, cy) {
				g.selectTrack(h.Index)
				return
			}
		}
		if !ui.PanelRect(g.subs.Count()).Contains(cx, cy) {
			g.panelOpen = false
		}
		return
	}

	if g.openMenu >= 0 {
		for _, row := range ui.DropdownLayout(g.openMenu) {
			if !row.Item.Separator && row.Rect.Contains(cx, cy) {
				g.openMenu = -1
				g.dispatch(row.Item.Action, ui.Hit{}, cx, now)
				return
			}
		}
		for _, h := range ui.MenuBarLayout() {
			if h.Rect.Contains(cx, cy) {
				if h.Index == g.openMenu {
					g.openMenu = -1
				} else {
					g.openMenu = h.Index
				}
				return
			}
		}
		g.openMenu = -1
		return
	}

	if g.reveal.MenuVisible() && ui.MenuBandRect().Contains(cx, cy) {
		for _, h := range ui.MenuBarLayout() {
			if h.Rect.Contains(cx, cy) {
				g.openMenu = h.Index
				return
			}
		}
		return
	}

	if g.reveal.ControlsVisible() && ui.BarRect().Contains(cx, cy) {
		for _, h := range ui.BarHits() {
			if h.Rect.Contains(cx, cy) {
				g.dispatch(h.Action, h, cx, now)
				return
			}
		}
		return
	}

	if g.session.Loaded() {
		g.togglePlay()
		if now.Sub(g.lastClick) < doubleClickWindow {
			g.lastClick = time.Time{}
			g.toggleFullscreen(now)
		} else {
			g.lastClick = now
		}
	}
}

func (g *Game) handleEscape() {
	switch {
	case g.openMenu >= 0:
		g.openMenu = -1
	case ebiten.IsFullscreen():
		g.seekRamp.Release()
		g.volRamp.Release()
		g.exitFullscreen()
	}
}

func (g *Game) pressSeek(dir int, now time.Time) {
	if !g.session.Loaded() {
		return
	}
	if g.seekRamp.Press(dir, now) {
		g.stepSeek(dir, now)
	}
}

func (g *Game) pressVolume(dir int, now time.Time) {
	if g.volRamp.Press(dir, now) {
		g.stepVolume(dir, now)
	}
}

func (g *Game) stepSeek(dir int, now time.Time) {
	g.skipBy(int64(dir)*player.SeekStepMS, now)
}

func (g *Game) stepVolume(dir int, now time.Time) {
	v := g.session.StepVolume(dir)
	g.osd.ShowVolume(v, now)
}
