package app

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"matinee/internal/engine"
	"matinee/internal/player"
	"matinee/internal/remote"
	"matinee/internal/shortcut"
	"matinee/internal/ui"
)

// skipStepMS is the jump size of the -10s/+10s transport buttons.
const skipStepMS = 10_000

func (g *Game) dispatch(action ui.Action, hit ui.Hit, cx int, now time.Time) {
	switch action {
	case ui.ActOpen:
		g.openFileDialog()
	case ui.ActExit:
		g.quit = true
	case ui.ActClear:
		g.clearMedia()
	case ui.ActInstallShortcuts:
		g.installShortcuts()
	case ui.ActUninstallShortcuts:
		g.uninstallShortcuts()
	case ui.ActFullscreen:
		g.toggleFullscreen(now)
	case ui.ActSkipBack:
		g.skipBy(-skipStepMS, now)
	case ui.ActPlayPause:
		g.togglePlay()
	case ui.ActStop:
		g.stopMedia()
	case ui.ActSkipForward:
		g.skipBy(skipStepMS, now)
	case ui.ActSeekTo:
		g.seekToFraction(hit.Rect.Fraction(cx), now)
	case ui.ActVolumeTo:
		g.volumeToFraction(hit.Rect.Fraction(cx), now)
		g.dragVolume, g.dragRect = true, hit.Rect
	case ui.ActSubtitles:
		g.togglePanel()
	case ui.ActReloadSubs:
		g.reloadSubtitles()
	}
}

func (g *Game) handleRemote(req remote.Request, now time.Time) {
	logrus.Debugf("remote: %s", req.Cmd)
	switch req.Cmd {
	case remote.CmdPlayPause:
		g.togglePlay()
	case remote.CmdPlay:
		if err := g.session.Play(); err != nil {
			logrus.Warnf("remote play: %v", err)
		}
	case remote.CmdPause:
		if err := g.session.Pause(); err != nil {
			logrus.Warnf("remote pause: %v", err)
		}
	case remote.CmdStop:
		g.stopMedia()
	case remote.CmdQuit:
		g.quit = true
	case remote.CmdVolume:
		v := g.session.SetVolume(req.Volume)
		g.osd.ShowVolume(v, now)
	case remote.CmdSeekBy:
		g.skipBy(req.Millis, now)
	case remote.CmdSeekTo:
		snap := g.session.Snapshot()
		if snap.DurationMS > 0 {
			g.seekToFraction(float64(req.Millis)/float64(snap.DurationMS), now)
		}
	}
}

// handleEnd reacts to an engine end-of-file event. Stop echoes from our
// own commands and needs nothing.
func (g *Game) handleEnd(reason engine.EndReason) {
	logrus.Debugf("playback end: %s", reason)
	switch reason {
	case engine.EndEOF:
		g.session.HandleEnd(reason)
	case engine.EndError:
		path := g.session.Path()
		g.session.HandleEnd(reason)
		g.subs.Reset()
		g.panelOpen = false
		g.osd.HideAll()
		if ebiten.IsFullscreen() {
			g.exitFullscreen()
		}
		if path != "" {
			go ui.ErrorBox("Playback Error", fmt.Sprintf("Could not play %s.", filepath.Base(path)))
		}
	}
}

// openFileDialog runs the blocking chooser on its own goroutine and posts
// the result back through fileCh. At most one dialog is up at a time.
func (g *Game) openFileDialog() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := ui.OpenVideoFile()
		if err != nil && !ui.Canceled(err) {
			logrus.Warnf("open dialog: %v", err)
		}
		g.fileCh <- path
	}()
}

func (g *Game) loadMedia(path string, now time.Time) {
	g.ensureRenderTarget()
	if err := g.session.Load(path); err != nil {
		logrus.Errorf("load: %v", err)
		go ui.ErrorBox("Playback Error", fmt.Sprintf("Could not play %s.", filepath.Base(path)))
		return
	}
	g.subs.Reset()
	g.panelOpen = false
	g.subRebuild = now.Add(subProbeDelay)
	logrus.Infof("playing %s", path)
}

// ensureRenderTarget embeds the video into our window before the first
// load. Failure means the video opens detached, which is survivable.
func (g *Game) ensureRenderTarget() {
	if g.widSet {
		return
	}
	g.widSet = true
	wid, err := engine.GetWindowHandle()
	if err != nil {
		logrus.Warnf("window handle: %v, video opens detached", err)
		return
	}
	if err := g.eng.SetRenderTarget(wid); err != nil {
		logrus.Warnf("embed video: %v", err)
	}
}

func (g *Game) togglePlay() {
	if err := g.session.TogglePlay(); err != nil {
		logrus.Warnf("toggle play: %v", err)
	}
}

func (g *Game) stopMedia() {
	if err := g.session.Stop(); err != nil {
		logrus.Warnf("stop: %v", err)
	}
	g.subs.Reset()
	g.panelOpen = false
	g.osd.HideAll()
	if ebiten.IsFullscreen() {
		g.exitFullscreen()
	}
}

func (g *Game) clearMedia() {
	if err := g.session.Clear(); err != nil {
		logrus.Warnf("clear: %v", err)
	}
	g.subs.Reset()
	g.panelOpen = false
	g.osd.HideAll()
	if ebiten.IsFullscreen() {
		g.exitFullscreen()
	}
}

func (g *Game) toggleFullscreen(now time.Time) {
	if ebiten.IsFullscreen() {
		g.exitFullscreen()
		return
	}
	if !g.session.Loaded() {
		go ui.WarnBox("No Video", "Please open a video file first.")
		return
	}
	ebiten.SetFullscreen(true)
	g.openMenu = -1
	g.reveal.EnterFullscreen(now)
	g.osd.SetEnabled(true)
}

func (g *Game) exitFullscreen() {
	ebiten.SetFullscreen(false)
	g.reveal.ExitFullscreen()
	g.osd.SetEnabled(false)
}

func (g *Game) skipBy(deltaMS int64, now time.Time) {
	if !g.session.Loaded() {
		return
	}
	pos, err := g.session.SeekBy(deltaMS)
	if err != nil {
		logrus.Warnf("seek: %v", err)
		return
	}
	g.osd.ShowSeek(deltaMS > 0, now)
	g.showProgressOSD(pos, now)
}

func (g *Game) seekToFraction(f float64, now time.Time) {
	pos, err := g.session.SeekToFraction(f)
	if err != nil {
		logrus.Warnf("seek: %v", err)
		return
	}
	g.showProgressOSD(pos, now)
}

func (g *Game) showProgressOSD(pos int64, now time.Time) {
	snap := g.session.Snapshot()
	if snap.DurationMS > 0 {
		g.osd.ShowProgress(pos, snap.DurationMS, now)
	}
}

func (g *Game) volumeToFraction(f float64, now time.Time) {
	v := g.session.SetVolume(int(math.Round(f * 200)))
	g.osd.ShowVolume(v, now)
}

func (g *Game) cycleSubtitles() {
	if !g.session.Loaded() {
		return
	}
	if err := g.subs.Cycle(); err != nil {
		logrus.Warnf("subtitle cycle: %v", err)
	}
}

// togglePanel opens the track panel with the highlight on the active
// track. The panel only exists over loaded media. While it is up it owns
// the keyboard, so held ramps are released on entry: their key-up events
// would never be seen.
func (g *Game) togglePanel() {
	if g.panelOpen {
		g.panelOpen = false
		return
	}
	if !g.session.Loaded() {
		return
	}
	g.seekRamp.Release()
	g.volRamp.Release()
	g.panelOpen = true
	g.panelSel = g.subs.Current()
}

func (g *Game) selectTrack(idx int) {
	g.panelOpen = false
	if err := g.subs.Select(idx); err != nil {
		logrus.Warnf("subtitle select: %v", err)
	}
}

func (g *Game) reloadSubtitles() {
	if !g.session.Loaded() {
		return
	}
	g.rebuildSubtitles()
}

// rebuildSubtitles re-enumerates the tracks and starts the first real one
// when any exists.
func (g *Game) rebuildSubtitles() {
	g.subs.Rebuild(g.session.Path())
	if g.subs.Count() > 1 {
		if err := g.subs.Select(1); err != nil {
			logrus.Warnf("subtitle auto-select: %v", err)
		}
	}
}

func (g *Game) installShortcuts() {
	go func() {
		paths, err := shortcut.Install()
		if err != nil {
			logrus.Errorf("create shortcuts: %v", err)
			ui.ErrorBox("Shortcuts", "Could not create shortcuts: "+err.Error())
			return
		}
		logrus.Infof("shortcuts created: %s", strings.Join(paths, ", "))
		ui.InfoBox("Shortcuts", "Created:\n"+strings.Join(paths, "\n"))
	}()
}

func (g *Game) uninstallShortcuts() {
	go func() {
		paths, err := shortcut.Uninstall()
		if err != nil {
			logrus.Errorf("remove shortcuts: %v", err)
			ui.ErrorBox("Shortcuts", "Could not remove shortcuts: "+err.Error())
			return
		}
		if len(paths) == 0 {
			ui.InfoBox("Shortcuts", "No shortcuts found.")
			return
		}
		logrus.Infof("shortcuts removed: %s", strings.Join(paths, ", "))
		ui.InfoBox("Shortcuts", "Removed:\n"+strings.Join(paths, "\n"))
	}()
}
