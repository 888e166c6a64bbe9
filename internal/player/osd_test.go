package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSDShowReplacesSameKind(t *testing.T) {
	o := NewOSDManager()
	o.SetEnabled(true)
	now := time.Unix(0, 0)

	o.ShowVolume(40, now)
	o.ShowVolume(50, now.Add(100*time.Millisecond))

	views := o.Views()
	require.Len(t, views, 1, "at most one live entry per kind")
	assert.Equal(t, 50, views[0].Volume)

	// The replacement also moved the deadline: the first show's expiry
	// must not hide the second.
	assert.False(t, o.Expire(now.Add(2001*time.Millisecond)))
	assert.True(t, o.Visible(OSDVolume))
}

func TestOSDExpiry(t *testing.T) {
	o := NewOSDManager()
	o.SetEnabled(true)
	now := time.Unix(0, 0)

	o.ShowSeek(true, now)
	o.ShowVolume(80, now)

	assert.True(t, o.Expire(now.Add(1001*time.Millisecond)), "seek expires at 1s")
	assert.False(t, o.Visible(OSDSeek))
	assert.True(t, o.Visible(OSDVolume), "volume still live at 1s")

	assert.True(t, o.Expire(now.Add(2001*time.Millisecond)))
	assert.Empty(t, o.Views())
}

func TestOSDDisabledIgnoresShow(t *testing.T) {
	o := NewOSDManager()
	now := time.Unix(0, 0)

	o.ShowVolume(40, now)
	o.ShowSeek(false, now)
	o.ShowProgress(1000, 2000, now)
	assert.Empty(t, o.Views(), "windowed manager shows nothing")
}

func TestOSDDisableHidesAll(t *testing.T) {
	o := NewOSDManager()
	o.SetEnabled(true)
	now := time.Unix(0, 0)

	o.ShowProgress(500, 1000, now)
	o.ShowVolume(70, now)
	o.SetEnabled(false)
	assert.Empty(t, o.Views())
}

func TestOSDHideIdempotent(t *testing.T) {
	o := NewOSDManager()
	o.Hide(OSDVolume)
	o.HideAll()
	assert.Empty(t, o.Views())
	assert.False(t, o.Expire(time.Unix(10, 0)))
}

func TestOSDSeekDirectionPayload(t *testing.T) {
	o := NewOSDManager()
	o.SetEnabled(true)
	now := time.Unix(0, 0)

	o.ShowSeek(true, now)
	o.ShowSeek(false, now.Add(50*time.Millisecond))

	views := o.Views()
	require.Len(t, views, 1)
	assert.False(t, views[0].Forward, "latest direction wins")
}
