package player

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matinee/internal/engine/enginetest"
)

func waitProgress(t *testing.T, p *Poller) Progress {
	t.Helper()
	select {
	case pr := <-p.Updates():
		return pr
	case <-time.After(2 * time.Second):
		t.Fatal("no poller sample arrived")
		return Progress{}
	}
}

func TestPollerPublishesFormattedSamples(t *testing.T) {
	eng := &enginetest.Fake{PosMS: 65000, DurMS: 3661000}
	p := newPoller(eng, func() bool { return true }, 2*time.Millisecond)
	go p.Run()
	defer p.Stop()

	pr := waitProgress(t, p)
	assert.EqualValues(t, 65000, pr.PositionMS)
	assert.Equal(t, "01:05", pr.Clock)
	assert.Equal(t, "01:01:01", pr.Total)
	assert.InDelta(t, 65000.0/3661000.0, pr.Fraction, 1e-9)
}

func TestPollerRespectsActiveGate(t *testing.T) {
	eng := &enginetest.Fake{PosMS: 1000, DurMS: 2000}
	var active atomic.Bool
	p := newPoller(eng, active.Load, 2*time.Millisecond)
	go p.Run()
	defer p.Stop()

	select {
	case <-p.Updates():
		t.Fatal("sample published while inactive")
	case <-time.After(30 * time.Millisecond):
	}

	active.Store(true)
	pr := waitProgress(t, p)
	assert.EqualValues(t, 1000, pr.PositionMS)
}

func TestPollerSwallowsQueryFailures(t *testing.T) {
	eng := &enginetest.Fake{PosErr: errors.New("property unavailable")}
	p := newPoller(eng, func() bool { return true }, 2*time.Millisecond)
	go p.Run()

	select {
	case <-p.Updates():
		t.Fatal("sample published despite failing reads")
	case <-time.After(30 * time.Millisecond):
	}
	p.Stop()
}

func TestPollerSkipsUnknownDuration(t *testing.T) {
	eng := &enginetest.Fake{PosMS: 1000, DurMS: 0}
	p := newPoller(eng, func() bool { return true }, 2*time.Millisecond)
	go p.Run()
	defer p.Stop()

	select {
	case <-p.Updates():
		t.Fatal("sample published with zero duration")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestPollerStopIdempotent(t *testing.T) {
	eng := &enginetest.Fake{}
	p := NewPoller(eng, func() bool { return false })
	done := make(chan struct{})
	go func() {
		p.Run()
		close(done)
	}()

	p.Stop()
	p.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
	require.NotPanics(t, p.Stop)
}
