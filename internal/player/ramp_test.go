package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeekRampPressReleaseSingleStep(t *testing.T) {
	r := NewSeekRamp()
	now := time.Unix(0, 0)

	assert.True(t, r.Press(+1, now), "fresh press applies an immediate step")
	r.Release()

	assert.Equal(t, 0, r.Tick(now.Add(150*time.Millisecond)), "no steps after release")
	assert.False(t, r.Active())
}

func TestSeekRampHeldCadence(t *testing.T) {
	r := NewSeekRamp()
	now := time.Unix(0, 0)

	assert.True(t, r.Press(+1, now))
	assert.Equal(t, 0, r.Tick(now.Add(50*time.Millisecond)))
	assert.Equal(t, +1, r.Tick(now.Add(100*time.Millisecond)))
	assert.Equal(t, 0, r.Tick(now.Add(150*time.Millisecond)))
	assert.Equal(t, +1, r.Tick(now.Add(200*time.Millisecond)))
}

func TestSeekRampAutoRepeatDoesNotRearm(t *testing.T) {
	r := NewSeekRamp()
	now := time.Unix(0, 0)

	assert.True(t, r.Press(+1, now))
	assert.False(t, r.Press(+1, now.Add(60*time.Millisecond)), "auto-repeat is a no-op")
	assert.Equal(t, +1, r.Tick(now.Add(100*time.Millisecond)), "original deadline still fires")
}

func TestSeekRampDirectionChangeCancelsThenArms(t *testing.T) {
	r := NewSeekRamp()
	now := time.Unix(0, 0)

	assert.True(t, r.Press(+1, now))
	assert.True(t, r.Press(-1, now.Add(30*time.Millisecond)), "direction change steps immediately")
	assert.Equal(t, -1, r.Direction())

	assert.Equal(t, 0, r.Tick(now.Add(100*time.Millisecond)), "old deadline was cancelled")
	assert.Equal(t, -1, r.Tick(now.Add(130*time.Millisecond)))
}

func TestVolumeRampInitialDelay(t *testing.T) {
	r := NewVolumeRamp()
	now := time.Unix(0, 0)

	assert.True(t, r.Press(+1, now))
	assert.Equal(t, 0, r.Tick(now.Add(100*time.Millisecond)))
	assert.Equal(t, 0, r.Tick(now.Add(400*time.Millisecond)))
	assert.Equal(t, +1, r.Tick(now.Add(500*time.Millisecond)), "first repeat after 500ms")
	assert.Equal(t, +1, r.Tick(now.Add(600*time.Millisecond)), "then every 100ms")
}

func TestRampReleaseIdempotent(t *testing.T) {
	r := NewVolumeRamp()
	r.Release()
	r.Release()
	assert.Equal(t, 0, r.Tick(time.Unix(10, 0)))
}
