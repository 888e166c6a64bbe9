// Package player holds the playback session and the presentation state
// machines around it: clock formatting, held-key ramps, OSD lifetimes and
// fullscreen chrome reveal.
package player

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"matinee/internal/engine"
)

// PlayState is the transport state of the session.
type PlayState int

const (
	StateStopped PlayState = iota
	StatePlaying
	StatePaused
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// SessionInfo is a point-in-time copy of the session for rendering.
type SessionInfo struct {
	Path       string
	State      PlayState
	PositionMS int64
	DurationMS int64
	Volume     int
}

// Session owns the loaded media and transport state. All mutation happens
// on the UI goroutine; the mutex covers remote-control property reads that
// arrive on the bus goroutine.
type Session struct {
	mu  sync.Mutex
	eng engine.Engine

	path       string
	state      PlayState
	positionMS int64
	durationMS int64
	volume     int
}

func NewSession(eng engine.Engine, volume int) *Session {
	if volume < 0 {
		volume = 0
	}
	if volume > 200 {
		volume = 200
	}
	return &Session{eng: eng, volume: volume}
}

// Load replaces the current media. A session already holding media is
// stopped first; playback starts on success. On failure the session is
// left empty.
func (s *Session) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path != "" {
		if err := s.eng.Stop(); err != nil {
			logrus.Warnf("stop before load: %v", err)
		}
	}
	s.path = ""
	s.state = StateStopped
	s.positionMS = 0
	s.durationMS = 0

	if err := s.eng.Load(path); err != nil {
		return fmt.Errorf("load %q: %w", path, err)
	}
	if err := s.eng.Play(); err != nil {
		logrus.Warnf("unpause after load: %v", err)
	}
	s.path = path
	s.state = StatePlaying
	return nil
}

// TogglePlay flips between playing and paused. Stopped media restarts
// from the top. Without media it is a no-op.
func (s *Session) TogglePlay() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying {
		return s.pauseLocked()
	}
	return s.playLocked()
}

// Play starts or resumes playback.
func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playLocked()
}

// Pause pauses a playing session.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pauseLocked()
}

func (s *Session) playLocked() error {
	switch {
	case s.path == "":
		return nil
	case s.state == StatePaused:
		if err := s.eng.Play(); err != nil {
			return err
		}
		s.state = StatePlaying
	case s.state == StateStopped:
		// mpv unloads on stop, so restarting means loading again.
		if err := s.eng.Load(s.path); err != nil {
			return fmt.Errorf("reload %q: %w", s.path, err)
		}
		if err := s.eng.Play(); err != nil {
			return err
		}
		s.state = StatePlaying
		s.positionMS = 0
	}
	return nil
}

func (s *Session) pauseLocked() error {
	if s.state != StatePlaying {
		return nil
	}
	if err := s.eng.Pause(); err != nil {
		return err
	}
	s.state = StatePaused
	return nil
}

// Stop halts playback and rewinds the clock. The media handle and known
// duration are kept so play can restart the same file.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

func (s *Session) stopLocked() error {
	if s.path == "" && s.state == StateStopped {
		return nil
	}
	err := s.eng.Stop()
	s.state = StateStopped
	s.positionMS = 0
	return err
}

// Clear stops playback and drops the media handle entirely.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.stopLocked()
	s.path = ""
	s.durationMS = 0
	return err
}

// SeekBy steps the position by deltaMS. The target clamps to zero below
// and to the duration above once the duration is known. Returns the
// position actually requested.
func (s *Session) SeekBy(deltaMS int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return 0, nil
	}
	pos, err := s.eng.Position()
	if err != nil {
		pos = s.positionMS
	}
	target := pos + deltaMS
	if target < 0 {
		target = 0
	}
	if s.durationMS > 0 && target > s.durationMS {
		target = s.durationMS
	}
	if err := s.eng.SetPosition(target); err != nil {
		return s.positionMS, err
	}
	s.positionMS = target
	return target, nil
}

// SeekToFraction jumps to f of the known duration, f clamped to [0,1].
// Without a known duration this is a no-op.
func (s *Session) SeekToFraction(f float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" || s.durationMS <= 0 {
		return s.positionMS, nil
	}
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	target := int64(f * float64(s.durationMS))
	if err := s.eng.SetPosition(target); err != nil {
		return s.positionMS, err
	}
	s.positionMS = target
	return target, nil
}

// SetVolume applies v clamped to [0,200] and returns the applied value.
// An engine refusal keeps the previous value.
func (s *Session) SetVolume(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 200 {
		v = 200
	}
	if err := s.eng.SetVolume(v); err != nil {
		logrus.Warnf("set volume: %v", err)
		return s.volume
	}
	s.volume = v
	return v
}

// StepVolume nudges the volume by dir steps of 10.
func (s *Session) StepVolume(dir int) int {
	return s.SetVolume(s.Volume() + dir*VolumeStep)
}

// ApplyProgress records a poller sample. Only the playing state accepts
// samples so a stale tick cannot move a stopped session's clock.
func (s *Session) ApplyProgress(posMS, durMS int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return
	}
	s.positionMS = posMS
	if durMS > 0 {
		s.durationMS = durMS
	}
}

// HandleEnd reacts to an engine end-of-file event. EOF leaves the last
// frame up, paused; a decode error tears the session down.
func (s *Session) HandleEnd(reason engine.EndReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch reason {
	case engine.EndEOF:
		if s.path == "" {
			return
		}
		s.state = StatePaused
		if s.durationMS > 0 {
			s.positionMS = s.durationMS
		}
	case engine.EndError:
		s.path = ""
		s.state = StateStopped
		s.positionMS = 0
		s.durationMS = 0
	}
}

// Active reports whether the poller should sample: media loaded and
// playing.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path != "" && s.state == StatePlaying
}

func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path != ""
}

func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

func (s *Session) State() PlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Snapshot copies the session for rendering.
func (s *Session) Snapshot() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionInfo{
		Path:       s.path,
		State:      s.state,
		PositionMS: s.positionMS,
		DurationMS: s.durationMS,
		Volume:     s.volume,
	}
}
