package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuBarLayout(t *testing.T) {
	hits := MenuBarLayout()
	require.Len(t, hits, len(Menus()))

	for i, h := range hits {
		assert.Equal(t, ActMenuBar, h.Action)
		assert.Equal(t, i, h.Index)
		assert.Equal(t, MenuBarH, h.Rect.H)
	}
	assert.False(t, hits[0].Rect.Contains(hits[1].Rect.X, 10), "labels do not overlap")
}

func TestDropdownLayoutStacksRows(t *testing.T) {
	rows := DropdownLayout(0)
	require.NotEmpty(t, rows)

	y := MenuBarH
	for _, row := range rows {
		assert.Equal(t, y, row.Rect.Y, "rows stack without gaps")
		y += row.Rect.H
		if row.Item.Separator {
			assert.Equal(t, ActNone, row.Item.Action)
		}
	}
	dr := DropdownRect(0)
	assert.Equal(t, y-MenuBarH, dr.H)

	assert.Empty(t, DropdownLayout(-1))
	assert.Empty(t, DropdownLayout(99))
}

func TestBarHitsCoverControls(t *testing.T) {
	actions := make(map[Action]bool)
	for _, h := range BarHits() {
		actions[h.Action] = true
		assert.True(t, h.Rect.Y >= CanvasH-BarH, "control hits live in the strip")
	}
	for _, want := range []Action{
		ActSeekTo, ActSkipBack, ActPlayPause, ActStop,
		ActSkipForward, ActVolumeTo, ActSubtitles, ActReloadSubs,
	} {
		assert.True(t, actions[want], "missing action %d", want)
	}
}

func TestRectFraction(t *testing.T) {
	r := Rect{X: 100, Y: 0, W: 200, H: 10}
	assert.Equal(t, 0.0, r.Fraction(50), "clamps left")
	assert.Equal(t, 0.5, r.Fraction(200))
	assert.Equal(t, 1.0, r.Fraction(500), "clamps right")
}

func TestPanelHits(t *testing.T) {
	hits := PanelHits(3)
	require.Len(t, hits, 3)
	for i, h := range hits {
		assert.Equal(t, ActSelectTrack, h.Action)
		assert.Equal(t, i, h.Index)
	}
	pr := PanelRect(3)
	last := hits[len(hits)-1].Rect
	assert.True(t, last.Y+last.H <= pr.Y+pr.H, "rows stay inside the panel")
}

func TestCanvasPoint(t *testing.T) {
	x, y := CanvasPoint(640, 360, 1280, 720)
	assert.Equal(t, 960, x)
	assert.Equal(t, 540, y)

	x, y = CanvasPoint(10, 10, 0, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestAssEscapeStripsMarkup(t *testing.T) {
	got := assEscape(`weird{\b1}name.mkv`)
	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "\\")
}

func TestMenuASSListsItems(t *testing.T) {
	closed := MenuASS(-1)
	assert.Contains(t, closed, "File")
	assert.Contains(t, closed, "Options")
	assert.NotContains(t, closed, "Open File...")

	open := MenuASS(0)
	assert.Contains(t, open, "Open File...")
	assert.Contains(t, open, "Ctrl+O")
}

func TestBarASSReflectsState(t *testing.T) {
	playing := BarASS(BarInfo{Playing: true, Clock: "01:05", Total: "10:00", Fraction: 0.5, Volume: 80})
	paused := BarASS(BarInfo{Playing: false, Clock: "01:05", Total: "10:00", Fraction: 0.5, Volume: 80})
	assert.NotEqual(t, playing, paused, "play and pause glyphs differ")
	assert.Contains(t, playing, "01:05")
	assert.Contains(t, playing, "80%")
}

func TestVolumeOSDASS(t *testing.T) {
	s := VolumeOSDASS(85)
	assert.Contains(t, s, "Volume 85%")
}

func TestSeekOSDASSSidesDiffer(t *testing.T) {
	fwd := SeekOSDASS(true)
	back := SeekOSDASS(false)
	assert.NotEqual(t, fwd, back)
	assert.True(t, strings.Contains(back, "pos(30,"), "backward arrow sits at the left inset")
}

func TestProgressOSDASSFillGrows(t *testing.T) {
	empty := ProgressOSDASS(0, "00:00", "10:00")
	half := ProgressOSDASS(0.5, "05:00", "10:00")
	assert.NotEqual(t, empty, half)
	assert.Contains(t, half, "05:00 / 10:00")
}

func TestPanelASSHighlightsCurrent(t *testing.T) {
	labels := []string{"None", "Track 1: English"}
	s0 := PanelASS(labels, 0)
	s1 := PanelASS(labels, 1)
	assert.Contains(t, s0, "Track 1: English")
	assert.NotEqual(t, s0, s1, "highlight follows the current index")
}
