package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matinee/internal/engine"
	"matinee/internal/engine/enginetest"
)

func TestSessionLoadStopsPreviousMedia(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)

	require.NoError(t, s.Load("/films/one.mkv"))
	assert.Equal(t, 0, eng.StopCalls, "nothing to stop on first load")

	require.NoError(t, s.Load("/films/two.mkv"))
	assert.Equal(t, 1, eng.StopCalls, "second load stops the first")
	assert.Equal(t, []string{"/films/one.mkv", "/films/two.mkv"}, eng.LoadedPaths)
	assert.Equal(t, StatePlaying, s.State())
}

func TestSessionLoadFailureLeavesSessionEmpty(t *testing.T) {
	eng := &enginetest.Fake{LoadErr: errors.New("demux failed")}
	s := NewSession(eng, 50)

	err := s.Load("/films/broken.avi")
	require.Error(t, err)
	assert.False(t, s.Loaded())
	assert.Equal(t, StateStopped, s.State())
}

func TestSessionToggleAndStop(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))

	require.NoError(t, s.TogglePlay())
	assert.Equal(t, StatePaused, s.State())
	require.NoError(t, s.TogglePlay())
	assert.Equal(t, StatePlaying, s.State())

	require.NoError(t, s.Stop())
	assert.Equal(t, StateStopped, s.State())
	assert.True(t, s.Loaded(), "stop keeps the media handle")
	assert.EqualValues(t, 0, s.Snapshot().PositionMS)
}

func TestSessionPlayAfterStopReloads(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))
	require.NoError(t, s.Stop())

	require.NoError(t, s.TogglePlay())
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 2, len(eng.LoadedPaths), "restart loads the file again")
}

func TestSessionToggleWithoutMediaIsNoop(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.TogglePlay())
	assert.Equal(t, 0, eng.PlayCalls+eng.PauseCalls+len(eng.LoadedPaths))
}

func TestSessionClearDropsHandle(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))
	s.ApplyProgress(4000, 90000)

	require.NoError(t, s.Clear())
	snap := s.Snapshot()
	assert.Empty(t, snap.Path)
	assert.EqualValues(t, 0, snap.DurationMS)
	assert.EqualValues(t, 0, snap.PositionMS)
}

func TestSessionSeekClamps(t *testing.T) {
	eng := &enginetest.Fake{PosMS: 1000}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))
	s.ApplyProgress(1000, 60000)

	got, err := s.SeekBy(-5000)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got, "clamps below zero")

	eng.PosMS = 59500
	got, err = s.SeekBy(+2000)
	require.NoError(t, err)
	assert.EqualValues(t, 60000, got, "clamps to duration")
}

func TestSessionSeekUnknownDurationOnlyClampsLow(t *testing.T) {
	eng := &enginetest.Fake{PosMS: 30000}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))

	got, err := s.SeekBy(+2000)
	require.NoError(t, err)
	assert.EqualValues(t, 32000, got)
}

func TestSessionSeekWithoutMediaIsNoop(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	got, err := s.SeekBy(+2000)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got)
	assert.Empty(t, eng.SetPositions)
}

func TestSessionSeekToFraction(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))
	s.ApplyProgress(0, 100000)

	got, err := s.SeekToFraction(0.25)
	require.NoError(t, err)
	assert.EqualValues(t, 25000, got)

	got, err = s.SeekToFraction(1.7)
	require.NoError(t, err)
	assert.EqualValues(t, 100000, got, "fraction clamps to 1")
}

func TestSessionVolumeClamps(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 195)

	assert.Equal(t, 200, s.StepVolume(+1))
	assert.Equal(t, 200, s.StepVolume(+1), "clamped at 200")

	s.SetVolume(5)
	assert.Equal(t, 0, s.StepVolume(-1))
	assert.Equal(t, 0, s.StepVolume(-1), "clamped at 0")
}

func TestSessionApplyProgressIgnoredWhenNotPlaying(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))
	require.NoError(t, s.Stop())

	s.ApplyProgress(5000, 60000)
	assert.EqualValues(t, 0, s.Snapshot().PositionMS, "stale tick dropped")
}

func TestSessionHandleEnd(t *testing.T) {
	eng := &enginetest.Fake{}
	s := NewSession(eng, 50)
	require.NoError(t, s.Load("/films/one.mkv"))
	s.ApplyProgress(59000, 60000)

	s.HandleEnd(engine.EndEOF)
	snap := s.Snapshot()
	assert.Equal(t, StatePaused, snap.State)
	assert.EqualValues(t, 60000, snap.PositionMS, "clock parked at the end")
	assert.True(t, s.Loaded())

	s.HandleEnd(engine.EndError)
	assert.False(t, s.Loaded())
	assert.Equal(t, StateStopped, s.State())
}
