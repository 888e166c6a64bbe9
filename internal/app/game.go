// Package app runs the single-threaded update loop that owns every piece
// of UI state. Background producers (the poller, engine events, bus
// handlers, file dialogs) hand results over on channels; the loop drains
// them, fires due timers and pushes the resulting chrome to the engine
// overlay slots.
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"matinee/internal/config"
	"matinee/internal/engine"
	"matinee/internal/player"
	"matinee/internal/remote"
	"matinee/internal/subtitle"
	"matinee/internal/ui"
)

// Engine overlay slot ids. Each visual layer owns one slot for its
// lifetime, so replacing content never flickers a neighbor.
const (
	slotMenu = iota
	slotBar
	slotPanel
	slotOSDVolume
	slotOSDSeek
	slotOSDProgress
	slotCount
)

// subProbeDelay is how long after a load the subtitle tracks are
// enumerated. The container parse needs a moment to settle first.
const subProbeDelay = 2 * time.Second

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	cfg      *config.Config
	eng      engine.Engine
	overlays engine.OverlayRenderer
	session  *player.Session
	subs     *subtitle.Resolver
	poller   *player.Poller
	osd      *player.OSDManager
	reveal   *player.Reveal
	seekRamp *player.Ramp
	volRamp  *player.Ramp
	remote   *remote.Mpris

	endCh  chan engine.EndReason
	fileCh chan string

	width, height int
	openMenu      int // -1 when no dropdown is open
	panelOpen     bool
	panelSel      int // highlighted track panel row
	dialogOpen    bool
	widSet        bool
	quit          bool

	dragVolume bool // left button went down on the volume slider
	dragRect   ui.Rect

	lastPtrX, lastPtrY int
	lastClick          time.Time
	subRebuild         time.Time

	slotCache [slotCount]string
}

// New wires the runtime together and starts the poller. mp may be nil
// when the bus registration failed.
func New(cfg *config.Config, eng engine.Engine, mp *remote.Mpris) *Game {
	g := &Game{
		cfg:      cfg,
		eng:      eng,
		session:  player.NewSession(eng, cfg.Playback.Volume),
		subs:     subtitle.NewResolver(eng, afero.NewOsFs()),
		osd:      player.NewOSDManager(),
		reveal:   player.NewReveal(),
		seekRamp: player.NewSeekRamp(),
		volRamp:  player.NewVolumeRamp(),
		remote:   mp,
		endCh:    make(chan engine.EndReason, 4),
		fileCh:   make(chan string, 1),
		openMenu: -1,
		width:    cfg.UI.Width,
		height:   cfg.UI.Height,
	}
	if ov, ok := eng.(engine.OverlayRenderer); ok {
		g.overlays = ov
	} else {
		logrus.Debug("engine has no overlay surface, playback chrome disabled")
	}
	g.poller = player.NewPoller(eng, g.session.Active)
	go g.poller.Run()
	return g
}

// NotifyEnd forwards an engine end event onto the update loop. Safe to
// call from any goroutine.
func (g *Game) NotifyEnd(reason engine.EndReason) {
	select {
	case g.endCh <- reason:
	default:
	}
}

func (g *Game) Update() error {
	now := time.Now()

	g.drainChannels(now)
	g.fireDeadlines(now)
	g.handleKeys(now)
	g.handleMouse(now)

	if g.quit {
		return ebiten.Termination
	}

	g.syncOverlays()
	g.syncCursor()
	g.remote.Publish(g.session.Snapshot())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.State() != player.StateStopped {
		// mpv paints the window surface while media is up. The chrome
		// rides on its compositor, not ebiten's.
		return
	}
	cx, cy := ui.CanvasPoint(g.lastPtrX, g.lastPtrY, g.width, g.height)
	ui.DrawIdle(screen, ui.IdleView{
		OpenMenu: g.openMenu,
		HoverX:   cx,
		HoverY:   cy,
		Volume:   g.session.Volume(),
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// drainChannels empties every producer channel without blocking. A nil
// channel (no bus registration) simply never fires.
func (g *Game) drainChannels(now time.Time) {
	for {
		select {
		case reason := <-g.endCh:
			g.handleEnd(reason)
		case pr := <-g.poller.Updates():
			g.session.ApplyProgress(pr.PositionMS, pr.DurationMS)
		case req := <-g.remote.Requests():
			g.handleRemote(req, now)
		case path := <-g.fileCh:
			g.dialogOpen = false
			if path != "" {
				g.loadMedia(path, now)
			}
		default:
			return
		}
	}
}

func (g *Game) fireDeadlines(now time.Time) {
	if dir := g.seekRamp.Tick(now); dir != 0 {
		g.stepSeek(dir, now)
	}
	if dir := g.volRamp.Tick(now); dir != 0 {
		g.stepVolume(dir, now)
	}
	g.reveal.Tick(g.lastPtrY, g.height, now)
	g.osd.Expire(now)

	if !g.subRebuild.IsZero() && now.After(g.subRebuild) {
		g.subRebuild = time.Time{}
		if g.session.Loaded() {
			g.rebuildSubtitles()
		}
	}
}

// syncOverlays diffs the wanted chrome against what each slot last
// received and only writes slots that changed. Stopped sessions have no
// video surface, so everything clears.
func (g *Game) syncOverlays() {
	if g.overlays == nil {
		return
	}
	var want [slotCount]string
	if g.session.State() != player.StateStopped {
		snap := g.session.Snapshot()
		if g.reveal.MenuVisible() {
			want[slotMenu] = ui.MenuASS(g.openMenu)
		}
		if g.reveal.ControlsVisible() {
			want[slotBar] = ui.BarASS(g.barInfo(snap))
		}
		if g.panelOpen {
			want[slotPanel] = ui.PanelASS(g.subs.Labels(), g.panelSel)
		}
		for _, v := range g.osd.Views() {
			switch v.Kind {
			case player.OSDVolume:
				want[slotOSDVolume] = ui.VolumeOSDASS(v.Volume)
			case player.OSDSeek:
				want[slotOSDSeek] = ui.SeekOSDASS(v.Forward)
			case player.OSDProgress:
				var fr float64
				if v.DurMS > 0 {
					fr = float64(v.PosMS) / float64(v.DurMS)
				}
				want[slotOSDProgress] = ui.ProgressOSDASS(fr, player.FormatTime(v.PosMS), player.FormatTime(v.DurMS))
			}
		}
	}
	for slot := range want {
		if want[slot] == g.slotCache[slot] {
			continue
		}
		g.slotCache[slot] = want[slot]
		if err := g.overlays.SetOverlay(slot, want[slot]); err != nil {
			logrus.Debugf("overlay %d: %v", slot, err)
		}
	}
}

func (g *Game) barInfo(snap player.SessionInfo) ui.BarInfo {
	var fr float64
	if snap.DurationMS > 0 {
		fr = float64(snap.PositionMS) / float64(snap.DurationMS)
	}
	return ui.BarInfo{
		Playing:  snap.State == player.StatePlaying,
		Clock:    player.FormatTime(snap.PositionMS),
		Total:    player.FormatTime(snap.DurationMS),
		Fraction: fr,
		Volume:   snap.Volume,
		Track:    g.subs.Labels()[g.subs.Current()],
	}
}

func (g *Game) syncCursor() {
	want := ebiten.CursorModeVisible
	if !g.reveal.CursorVisible() {
		want = ebiten.CursorModeHidden
	}
	if ebiten.CursorMode() != want {
		ebiten.SetCursorMode(want)
	}
}

// Shutdown tears the runtime down in dependency order: the sampler first,
// then presentation state and overlays, the bus registration, and the
// engine last.
func (g *Game) Shutdown() {
	g.poller.Stop()
	g.seekRamp.Release()
	g.volRamp.Release()
	g.reveal.ExitFullscreen()
	g.osd.HideAll()
	if g.overlays != nil {
		for slot := range g.slotCache {
			if g.slotCache[slot] == "" {
				continue
			}
			if err := g.overlays.ClearOverlay(slot); err != nil {
				logrus.Debugf("clear overlay %d: %v", slot, err)
			}
		}
	}
	g.remote.Close()
	if err := g.session.Stop(); err != nil {
		logrus.Debugf("final stop: %v", err)
	}
	g.eng.Close()
}
