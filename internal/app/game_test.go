package app

import (
	"sync"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matinee/internal/config"
	"matinee/internal/engine"
	"matinee/internal/engine/enginetest"
	"matinee/internal/player"
	"matinee/internal/remote"
	"matinee/internal/ui"
)

// overlayFake records overlay slot writes on top of the engine double.
type overlayFake struct {
	*enginetest.Fake
	mu    sync.Mutex
	slots map[int]string
}

func (o *overlayFake) SetOverlay(id int, ass string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.slots == nil {
		o.slots = map[int]string{}
	}
	if ass == "" {
		delete(o.slots, id)
	} else {
		o.slots[id] = ass
	}
	return nil
}

func (o *overlayFake) ClearOverlay(id int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.slots, id)
	return nil
}

func (o *overlayFake) slot(id int) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.slots[id]
}

// newTestGame builds a Game sized so window and canvas coordinates line
// up one to one.
func newTestGame(t *testing.T, eng engine.Engine) *Game {
	t.Helper()
	g := New(config.DefaultConfig(), eng, nil)
	g.widSet = true
	g.width, g.height = ui.CanvasW, ui.CanvasH
	t.Cleanup(g.poller.Stop)
	return g
}

func TestParseKey(t *testing.T) {
	k, ok := parseKey("F11")
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeyF11, k)

	k, ok = parseKey("space")
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeySpace, k)

	_, ok = parseKey("hyperdrive")
	assert.False(t, ok)
}

func TestRemoteVolume(t *testing.T) {
	fake := &enginetest.Fake{}
	g := newTestGame(t, fake)

	g.handleRemote(remote.Request{Cmd: remote.CmdVolume, Volume: 80}, time.Now())

	assert.Equal(t, []int{80}, fake.SetVolumes)
	assert.Equal(t, 80, g.session.Volume())
	assert.False(t, g.quit)
}

func TestRemoteQuit(t *testing.T) {
	g := newTestGame(t, &enginetest.Fake{})

	g.handleRemote(remote.Request{Cmd: remote.CmdQuit}, time.Now())

	assert.True(t, g.quit)
}

func TestRemoteSeekClampsAndShowsOSD(t *testing.T) {
	fake := &enginetest.Fake{PosMS: 5_000, DurMS: 60_000}
	g := newTestGame(t, fake)
	require.NoError(t, g.session.Load("/v/movie.mkv"))
	g.session.ApplyProgress(5_000, 60_000)
	g.osd.SetEnabled(true)

	g.handleRemote(remote.Request{Cmd: remote.CmdSeekBy, Millis: -10_000}, time.Now())

	assert.Equal(t, []int64{0}, fake.SetPositions)
	assert.True(t, g.osd.Visible(player.OSDSeek))
	assert.True(t, g.osd.Visible(player.OSDProgress))
}

func TestEndOfFileLeavesSessionPaused(t *testing.T) {
	fake := &enginetest.Fake{DurMS: 60_000}
	g := newTestGame(t, fake)
	require.NoError(t, g.session.Load("/v/movie.mkv"))
	g.session.ApplyProgress(59_500, 60_000)

	g.handleEnd(engine.EndEOF)

	snap := g.session.Snapshot()
	assert.Equal(t, player.StatePaused, snap.State)
	assert.Equal(t, int64(60_000), snap.PositionMS)
	assert.Equal(t, "/v/movie.mkv", snap.Path)
}

func TestSubtitleProbeFiresOnceAfterLoad(t *testing.T) {
	fake := &enginetest.Fake{Tracks: []engine.TrackInfo{{ID: 1, Title: "English"}}}
	g := newTestGame(t, fake)
	now := time.Now()

	g.loadMedia("/v/movie.mkv", now)

	g.fireDeadlines(now.Add(time.Second))
	assert.Equal(t, -2, fake.LastSelected())

	g.fireDeadlines(now.Add(subProbeDelay + time.Millisecond))
	assert.Equal(t, 1, fake.LastSelected())
	assert.Equal(t, 2, g.subs.Count())

	selected := len(fake.Selected)
	g.fireDeadlines(now.Add(subProbeDelay + time.Second))
	assert.Len(t, fake.Selected, selected)
}

func TestSyncOverlaysTracksSessionState(t *testing.T) {
	fake := &overlayFake{Fake: &enginetest.Fake{DurMS: 60_000}}
	g := newTestGame(t, fake)
	require.NoError(t, g.session.Load("/v/movie.mkv"))

	g.syncOverlays()
	assert.NotEmpty(t, fake.slot(slotMenu))
	assert.NotEmpty(t, fake.slot(slotBar))
	assert.Empty(t, fake.slot(slotPanel))

	g.panelOpen = true
	g.syncOverlays()
	assert.NotEmpty(t, fake.slot(slotPanel))

	g.stopMedia()
	g.syncOverlays()
	assert.Empty(t, fake.slot(slotMenu))
	assert.Empty(t, fake.slot(slotBar))
	assert.Empty(t, fake.slot(slotPanel))
}

func TestClickOpensMenuAndExits(t *testing.T) {
	g := newTestGame(t, &enginetest.Fake{})

	g.handleClick(10, 10, time.Now())
	assert.Equal(t, 0, g.openMenu)

	rows := ui.DropdownLayout(0)
	exit := rows[len(rows)-1].Rect
	g.handleClick(exit.X+5, exit.Y+5, time.Now())
	assert.True(t, g.quit)
	assert.Equal(t, -1, g.openMenu)
}

func TestVideoClickTogglesPlay(t *testing.T) {
	fake := &enginetest.Fake{}
	g := newTestGame(t, fake)
	require.NoError(t, g.session.Load("/v/movie.mkv"))

	g.handleClick(960, 500, time.Now())

	assert.Equal(t, 1, fake.PauseCalls)
}

func TestSubtitlePanelNeedsMedia(t *testing.T) {
	fake := &enginetest.Fake{Tracks: []engine.TrackInfo{{ID: 0, Title: "English"}}}
	g := newTestGame(t, fake)

	g.dispatch(ui.ActSubtitles, ui.Hit{}, 0, time.Now())
	assert.False(t, g.panelOpen, "no media, no panel")

	require.NoError(t, g.session.Load("/v/movie.mkv"))
	g.rebuildSubtitles()
	g.dispatch(ui.ActSubtitles, ui.Hit{}, 0, time.Now())
	assert.True(t, g.panelOpen)
	assert.Equal(t, g.subs.Current(), g.panelSel, "highlight starts on the active track")

	g.dispatch(ui.ActSubtitles, ui.Hit{}, 0, time.Now())
	assert.False(t, g.panelOpen)
}

func TestPanelClickSelectsRow(t *testing.T) {
	fake := &enginetest.Fake{Tracks: []engine.TrackInfo{{ID: 0, Title: "English"}}}
	g := newTestGame(t, fake)
	require.NoError(t, g.session.Load("/v/movie.mkv"))
	g.rebuildSubtitles()
	g.togglePanel()
	require.True(t, g.panelOpen)

	none := ui.PanelHits(g.subs.Count())[0].Rect
	g.handleClick(none.X+2, none.Y+2, time.Now())

	assert.False(t, g.panelOpen, "selection closes the panel")
	assert.Equal(t, -1, fake.LastSelected(), "row 0 disables subtitles")
	assert.Equal(t, 0, g.subs.Current())
}

func TestVolumeSliderClickSetsAndArmsDrag(t *testing.T) {
	fake := &enginetest.Fake{}
	g := newTestGame(t, fake)
	var volHit ui.Hit
	for _, h := range ui.BarHits() {
		if h.Action == ui.ActVolumeTo {
			volHit = h
		}
	}
	require.NotZero(t, volHit.Rect.W)

	g.dispatch(ui.ActVolumeTo, volHit, volHit.Rect.X+volHit.Rect.W, time.Now())

	assert.Equal(t, 200, g.session.Volume(), "click at the right edge pins the volume")
	assert.True(t, g.dragVolume)
	assert.Equal(t, volHit.Rect, g.dragRect)
}
