package engine

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/gen2brain/go-mpv"
	"github.com/sirupsen/logrus"

	"matinee/internal/config"
)

// Mpv implements Engine and OverlayRenderer on libmpv. All calls take
// the instance lock; the event drain runs on its own locked OS thread.
type Mpv struct {
	m  *mpv.Mpv
	mu sync.Mutex

	// OnEnd is invoked from the event goroutine whenever the current
	// file unloads. Callers must marshal onto their own loop before
	// touching any UI state.
	OnEnd func(reason EndReason)
}

// NewMpv creates and initializes a libmpv instance. Option failures are
// logged and tolerated; only Initialize failure is fatal.
func NewMpv(cfg *config.Config) (*Mpv, error) {
	m := mpv.New()

	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("hwdec", cfg.Playback.HWDec))
	must(m.SetOptionString("keep-open", "yes"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("osc", "no"))
	must(m.SetOptionString("input-default-bindings", "no"))
	must(m.SetOptionString("volume-max", "200"))
	must(m.SetOptionString("volume", strconv.Itoa(cfg.Playback.Volume)))

	must(m.SetOptionString("sub-font", cfg.Subtitles.Font))
	must(m.SetOptionString("sub-font-size", strconv.Itoa(cfg.Subtitles.FontSize)))
	must(m.SetOptionString("sub-color", cfg.Subtitles.Color))
	must(m.SetOptionString("sub-border-color", cfg.Subtitles.BorderColor))
	must(m.SetOptionString("sub-border-size", fmt.Sprintf("%.1f", cfg.Subtitles.BorderSize)))
	must(m.SetOptionString("sub-pos", strconv.Itoa(cfg.Subtitles.Position)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	e := &Mpv{m: m}
	go e.eventLoop()
	return e, nil
}

func must(err error) {
	if err != nil {
		logrus.Warnf("mpv option: %v", err)
	}
}

func (e *Mpv) Load(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Command([]string{"loadfile", path})
}

func (e *Mpv) SetRenderTarget(wid int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.SetOptionString("wid", strconv.FormatInt(wid, 10))
}

func (e *Mpv) Play() error {
	return e.setPause(false)
}

func (e *Mpv) Pause() error {
	return e.setPause(true)
}

func (e *Mpv) setPause(flag bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.SetProperty("pause", mpv.FormatFlag, flag)
}

func (e *Mpv) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Command([]string{"stop"})
}

func (e *Mpv) Position() (int64, error) {
	return e.queryMillis("time-pos")
}

func (e *Mpv) Duration() (int64, error) {
	return e.queryMillis("duration")
}

func (e *Mpv) queryMillis(prop string) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, err := e.m.GetProperty(prop, mpv.FormatDouble)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", prop, err)
	}
	sec, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("get %s: unexpected type %T", prop, v)
	}
	return int64(sec * 1000), nil
}

func (e *Mpv) SetPosition(ms int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Command([]string{"seek", fmt.Sprintf("%.3f", float64(ms)/1000), "absolute"})
}

func (e *Mpv) SetVolume(percent int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.SetPropertyString("volume", strconv.Itoa(percent))
}

// SubtitleTracks walks mpv's track-list and keeps the sub entries.
// Title and lang are optional per track; absence is not an error.
func (e *Mpv) SubtitleTracks() ([]TrackInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.m.GetProperty("track-list/count", mpv.FormatInt64)
	if err != nil {
		return nil, fmt.Errorf("track-list/count: %w", err)
	}
	count, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("track-list/count: unexpected type %T", v)
	}

	var tracks []TrackInfo
	for i := int64(0); i < count; i++ {
		prefix := fmt.Sprintf("track-list/%d/", i)
		typ, err := e.m.GetProperty(prefix+"type", mpv.FormatString)
		if err != nil {
			continue
		}
		if s, _ := typ.(string); s != "sub" {
			continue
		}
		idv, err := e.m.GetProperty(prefix+"id", mpv.FormatInt64)
		if err != nil {
			continue
		}
		id, _ := idv.(int64)
		t := TrackInfo{ID: int(id)}
		if tv, err := e.m.GetProperty(prefix+"title", mpv.FormatString); err == nil {
			t.Title, _ = tv.(string)
		}
		if lv, err := e.m.GetProperty(prefix+"lang", mpv.FormatString); err == nil {
			t.Lang, _ = lv.(string)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

func (e *Mpv) SelectSubtitle(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id < 0 {
		return e.m.SetPropertyString("sid", "no")
	}
	return e.m.SetPropertyString("sid", strconv.Itoa(id))
}

func (e *Mpv) AddSubtitleFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Command([]string{"sub-add", path, "select"})
}

// SetOverlay renders ass into the given overlay slot, replacing any
// previous content. Part of the OverlayRenderer surface, not the core
// playback contract.
func (e *Mpv) SetOverlay(id int, ass string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ass == "" {
		return osdOverlayRemove(e.m, id)
	}
	return osdOverlaySet(e.m, id, ass, overlayResX, overlayResY)
}

func (e *Mpv) ClearOverlay(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return osdOverlayRemove(e.m, id)
}

// Overlay slot coordinate space. ASS positions in chrome/OSD builders
// are expressed against this resolution.
const (
	overlayResX = 1920
	overlayResY = 1080
)

func (e *Mpv) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m.TerminateDestroy()
}

func (e *Mpv) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := e.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventEnd:
			reason := EndStop
			if ev.Data != nil {
				ef := ev.EndFile()
				switch ef.Reason {
				case mpv.EndFileEOF:
					reason = EndEOF
				case mpv.EndFileError:
					reason = EndError
				}
			}
			logrus.Debugf("mpv end-file: reason=%s", reason)
			if e.OnEnd != nil {
				e.OnEnd(reason)
			}

		case mpv.EventShutdown:
			return
		}
	}
}
