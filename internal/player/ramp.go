package player

import "time"

// Step sizes and cadences for held-key ramps.
const (
	SeekStepMS = 2000
	VolumeStep = 10

	seekRampInterval   = 100 * time.Millisecond
	volumeRampDelay    = 500 * time.Millisecond
	volumeRampInterval = 100 * time.Millisecond
)

// Ramp schedules repeated steps for a held directional key. The nextFire
// field is the timer slot: a zero time means nothing is armed, and arming
// always overwrites it, so at most one fire is ever pending per ramp.
type Ramp struct {
	dir      int
	nextFire time.Time

	delay    time.Duration
	interval time.Duration
}

// NewSeekRamp repeats every 100ms from the first press.
func NewSeekRamp() *Ramp {
	return &Ramp{delay: seekRampInterval, interval: seekRampInterval}
}

// NewVolumeRamp waits 500ms after the press, then repeats every 100ms.
func NewVolumeRamp() *Ramp {
	return &Ramp{delay: volumeRampDelay, interval: volumeRampInterval}
}

// Press starts or redirects the ramp. It reports true when the caller
// should apply the immediate first step, which happens on a fresh press or
// a direction change. Key auto-repeat of the held direction is a no-op and
// must not push the deadline forward.
func (r *Ramp) Press(dir int, now time.Time) bool {
	if dir == 0 {
		return false
	}
	if r.dir == dir && !r.nextFire.IsZero() {
		return false
	}
	r.dir = dir
	r.nextFire = now.Add(r.delay)
	return true
}

// Release cancels the pending fire. No further steps occur.
func (r *Ramp) Release() {
	r.dir = 0
	r.nextFire = time.Time{}
}

// Tick reports the direction to step once the deadline has passed, else 0.
// A fire re-arms the next one.
func (r *Ramp) Tick(now time.Time) int {
	if r.nextFire.IsZero() || now.Before(r.nextFire) {
		return 0
	}
	r.nextFire = now.Add(r.interval)
	return r.dir
}

// Active reports whether a fire is pending.
func (r *Ramp) Active() bool { return !r.nextFire.IsZero() }

// Direction returns the held direction, 0 when idle.
func (r *Ramp) Direction() int { return r.dir }
