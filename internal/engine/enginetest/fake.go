// Package enginetest provides a scripted Engine double for tests.
package enginetest

import (
	"sync"

	"matinee/internal/engine"
)

// Fake implements engine.Engine with canned responses and call recording.
// Zero value is usable: every call succeeds and reports zeros.
type Fake struct {
	mu sync.Mutex

	Tracks    []engine.TrackInfo
	TracksErr error
	SelectErr error
	AddErr    error

	PosMS  int64
	DurMS  int64
	PosErr error
	DurErr error

	LoadErr error
	SeekErr error

	LoadedPaths  []string
	Selected     []int
	AddedFiles   []string
	SetPositions []int64
	SetVolumes   []int
	PlayCalls    int
	PauseCalls   int
	StopCalls    int
	CloseCalls   int
}

var _ engine.Engine = (*Fake)(nil)

func (f *Fake) Load(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoadedPaths = append(f.LoadedPaths, path)
	return f.LoadErr
}

func (f *Fake) SetRenderTarget(wid int64) error { return nil }

func (f *Fake) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PlayCalls++
	return nil
}

func (f *Fake) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PauseCalls++
	return nil
}

func (f *Fake) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StopCalls++
	return nil
}

func (f *Fake) Position() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PosMS, f.PosErr
}

func (f *Fake) SetPosition(ms int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SeekErr != nil {
		return f.SeekErr
	}
	f.SetPositions = append(f.SetPositions, ms)
	f.PosMS = ms
	return nil
}

func (f *Fake) Duration() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.DurMS, f.DurErr
}

func (f *Fake) SetVolume(percent int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetVolumes = append(f.SetVolumes, percent)
	return nil
}

func (f *Fake) SubtitleTracks() ([]engine.TrackInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Tracks, f.TracksErr
}

func (f *Fake) SelectSubtitle(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SelectErr != nil {
		return f.SelectErr
	}
	f.Selected = append(f.Selected, id)
	return nil
}

func (f *Fake) AddSubtitleFile(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AddErr != nil {
		return f.AddErr
	}
	f.AddedFiles = append(f.AddedFiles, path)
	return nil
}

func (f *Fake) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseCalls++
}

// LastSelected returns the most recent SelectSubtitle argument, or -2 when
// none was recorded.
func (f *Fake) LastSelected() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Selected) == 0 {
		return -2
	}
	return f.Selected[len(f.Selected)-1]
}
