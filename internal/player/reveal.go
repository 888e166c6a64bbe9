package player

import "time"

// Band and timing rules for fullscreen chrome reveal. Bands are measured
// in window pixels from the top and bottom edges.
const (
	topBandPx    = 50
	menuLeavePx  = 100
	bottomBandPx = 100

	revealHideDelay = 3000 * time.Millisecond
	cursorHideDelay = 3000 * time.Millisecond
)

// Reveal tracks which chrome is visible. Windowed mode pins menu,
// controls and cursor visible; fullscreen manages them from pointer
// position. Deadline fields are timer slots, zero time meaning unarmed,
// and arming overwrites, so each kind has at most one pending fire.
type Reveal struct {
	fullscreen bool
	menu       bool
	controls   bool
	cursor     bool

	cursorHide    time.Time
	menuCheck     time.Time
	controlsCheck time.Time
}

func NewReveal() *Reveal {
	return &Reveal{menu: true, controls: true, cursor: true}
}

func (r *Reveal) Fullscreen() bool { return r.fullscreen }

// EnterFullscreen hides the chrome immediately and starts the cursor
// timer.
func (r *Reveal) EnterFullscreen(now time.Time) {
	r.fullscreen = true
	r.menu = false
	r.controls = false
	r.cursor = true
	r.cursorHide = now.Add(cursorHideDelay)
	r.menuCheck = time.Time{}
	r.controlsCheck = time.Time{}
}

// ExitFullscreen restores all chrome and cancels every reveal timer,
// regardless of prior state.
func (r *Reveal) ExitFullscreen() {
	r.fullscreen = false
	r.menu = true
	r.controls = true
	r.cursor = true
	r.cursorHide = time.Time{}
	r.menuCheck = time.Time{}
	r.controlsCheck = time.Time{}
}

// PointerMoved applies the fullscreen band rules for a pointer at y in a
// window of the given height. Every move forces the cursor visible and
// re-arms its hide timer. Windowed mode ignores movement.
func (r *Reveal) PointerMoved(y, height int, now time.Time) {
	if !r.fullscreen {
		return
	}
	r.cursor = true

	switch {
	case y < topBandPx:
		if !r.menu {
			r.menu = true
			r.menuCheck = now.Add(revealHideDelay)
		}
	case y > height-bottomBandPx:
		if !r.controls {
			r.controls = true
			r.controlsCheck = now.Add(revealHideDelay)
		}
	case y > menuLeavePx && r.menu:
		// Leaving the top region hides the menu with no delay. Controls
		// have no such path; they only hide through their timed check.
		r.menu = false
		r.menuCheck = time.Time{}
	}

	r.cursorHide = now.Add(cursorHideDelay)
}

// Tick fires due timers against the current pointer position. The hide
// checks re-verify the pointer actually left the band before hiding and
// do not re-arm. Reports whether visibility changed.
func (r *Reveal) Tick(pointerY, height int, now time.Time) bool {
	if !r.fullscreen {
		return false
	}
	changed := false

	if !r.menuCheck.IsZero() && now.After(r.menuCheck) {
		r.menuCheck = time.Time{}
		if pointerY > menuLeavePx && r.menu {
			r.menu = false
			changed = true
		}
	}
	if !r.controlsCheck.IsZero() && now.After(r.controlsCheck) {
		r.controlsCheck = time.Time{}
		if pointerY < height-bottomBandPx && r.controls {
			r.controls = false
			changed = true
		}
	}
	if !r.cursorHide.IsZero() && now.After(r.cursorHide) {
		r.cursorHide = time.Time{}
		if r.cursor {
			r.cursor = false
			changed = true
		}
	}
	return changed
}

func (r *Reveal) MenuVisible() bool     { return !r.fullscreen || r.menu }
func (r *Reveal) ControlsVisible() bool { return !r.fullscreen || r.controls }
func (r *Reveal) CursorVisible() bool   { return !r.fullscreen || r.cursor }
