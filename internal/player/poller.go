package player

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"matinee/internal/engine"
)

// PollInterval is the steady sampling period for playback progress.
const PollInterval = 500 * time.Millisecond

// Progress is one poller sample, pre-formatted for display.
type Progress struct {
	PositionMS int64
	DurationMS int64
	Fraction   float64
	Clock      string
	Total      string
}

// Poller samples position and duration off the UI goroutine and publishes
// them on Updates for the UI loop to drain. It never mutates UI state
// itself. A bad read skips the tick; the loop never dies from one.
type Poller struct {
	eng      engine.Engine
	active   func() bool
	interval time.Duration

	updates  chan Progress
	done     chan struct{}
	stopOnce sync.Once
}

// NewPoller samples eng every PollInterval while active reports true.
func NewPoller(eng engine.Engine, active func() bool) *Poller {
	return newPoller(eng, active, PollInterval)
}

func newPoller(eng engine.Engine, active func() bool, interval time.Duration) *Poller {
	return &Poller{
		eng:      eng,
		active:   active,
		interval: interval,
		updates:  make(chan Progress, 1),
		done:     make(chan struct{}),
	}
}

// Updates delivers samples. The channel holds a single sample and the
// freshest one wins when the UI lags.
func (p *Poller) Updates() <-chan Progress { return p.updates }

// Run blocks until Stop. Call it on its own goroutine.
func (p *Poller) Run() {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-t.C:
			p.sample()
		}
	}
}

func (p *Poller) sample() {
	if !p.active() {
		return
	}
	pos, err := p.eng.Position()
	if err != nil {
		logrus.Debugf("poll position: %v", err)
		return
	}
	dur, err := p.eng.Duration()
	if err != nil {
		logrus.Debugf("poll duration: %v", err)
		return
	}
	if dur <= 0 {
		return
	}
	pr := Progress{
		PositionMS: pos,
		DurationMS: dur,
		Fraction:   float64(pos) / float64(dur),
		Clock:      FormatTime(pos),
		Total:      FormatTime(dur),
	}
	select {
	case <-p.updates:
	default:
	}
	select {
	case p.updates <- pr:
	default:
	}
}

// Stop ends the loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}
