package remote

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
	"github.com/stretchr/testify/assert"

	"matinee/internal/player"
)

func TestStatusName(t *testing.T) {
	assert.Equal(t, "Playing", statusName(player.StatePlaying))
	assert.Equal(t, "Paused", statusName(player.StatePaused))
	assert.Equal(t, "Stopped", statusName(player.StateStopped))
}

func TestMetadataForLoadedMedia(t *testing.T) {
	md := metadataFor(player.SessionInfo{
		Path:       "/videos/show/episode.mkv",
		DurationMS: 90_000,
	})

	assert.Equal(t, "episode.mkv", md["xesam:title"])
	assert.Equal(t, "file:///videos/show/episode.mkv", md["xesam:url"])
	assert.Equal(t, int64(90_000_000), md["mpris:length"])
}

func TestMetadataForEmptySession(t *testing.T) {
	md := metadataFor(player.SessionInfo{})

	assert.Equal(t, dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack"), md["mpris:trackid"])
	assert.NotContains(t, md, "xesam:title")
}

func TestNilRegistrationIsInert(t *testing.T) {
	var m *Mpris

	assert.Nil(t, m.Requests())
	m.Publish(player.SessionInfo{State: player.StatePlaying})
	m.Close()
}

func TestPushDropsWhenQueueFull(t *testing.T) {
	m := &Mpris{reqs: make(chan Request, 1)}

	m.push(Request{Cmd: CmdPlayPause})
	m.push(Request{Cmd: CmdStop})

	assert.Equal(t, Request{Cmd: CmdPlayPause}, <-m.reqs)
	assert.Empty(t, m.reqs)
}

func TestVolumeChangeClampsAndQueues(t *testing.T) {
	m := &Mpris{reqs: make(chan Request, 8), lastVolume: 0.5}

	err := m.volumeChange(&prop.Change{Value: 3.0})

	assert.Nil(t, err)
	assert.Equal(t, Request{Cmd: CmdVolume, Volume: 200}, <-m.reqs)
}

func TestVolumeChangeSwallowsRepeatedValue(t *testing.T) {
	m := &Mpris{reqs: make(chan Request, 8), lastVolume: 0.8}

	err := m.volumeChange(&prop.Change{Value: 0.8})

	assert.Nil(t, err)
	assert.Empty(t, m.reqs)
}
