// Package remote exposes the player on the D-Bus session bus through the
// org.mpris.MediaPlayer2 interface, so desktop media keys and volume
// applets can drive playback.
package remote

import (
	"errors"
	"math"
	"path/filepath"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"github.com/sirupsen/logrus"

	"matinee/internal/player"
)

const (
	busName     = "org.mpris.MediaPlayer2.matinee"
	objectPath  = "/org/mpris/MediaPlayer2"
	rootIface   = "org.mpris.MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"
)

// Command identifies a remote-control request.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdStop
	CmdQuit
	CmdVolume
	CmdSeekBy
	CmdSeekTo
)

func (c Command) String() string {
	switch c {
	case CmdPlayPause:
		return "play-pause"
	case CmdPlay:
		return "play"
	case CmdPause:
		return "pause"
	case CmdStop:
		return "stop"
	case CmdQuit:
		return "quit"
	case CmdVolume:
		return "volume"
	case CmdSeekBy:
		return "seek-by"
	case CmdSeekTo:
		return "seek-to"
	}
	return "unknown"
}

// Request is one remote command. Bus handlers produce these; the update
// loop consumes them, so the engine is never touched from a bus goroutine.
type Request struct {
	Cmd    Command
	Volume int   // percent, CmdVolume only
	Millis int64 // delta or target, CmdSeekBy and CmdSeekTo only
}

// Mpris is a live bus registration. All methods are safe on a nil
// receiver, so a failed registration degrades to a local-only player.
type Mpris struct {
	conn  *dbus.Conn
	props *prop.Properties
	reqs  chan Request

	mu         sync.Mutex
	lastPath   string
	lastStatus string
	lastVolume float64
}

// playerHandler carries the org.mpris.MediaPlayer2.Player methods. Only
// its methods are exported on the bus.
type playerHandler struct{ m *Mpris }

func (h playerHandler) PlayPause() { h.m.push(Request{Cmd: CmdPlayPause}) }
func (h playerHandler) Play()      { h.m.push(Request{Cmd: CmdPlay}) }
func (h playerHandler) Pause()     { h.m.push(Request{Cmd: CmdPause}) }
func (h playerHandler) Stop()      { h.m.push(Request{Cmd: CmdStop}) }

// Next and Previous are mandatory in the interface but there is no queue
// to walk.
func (h playerHandler) Next()          {}
func (h playerHandler) Previous()      {}
func (h playerHandler) OpenUri(string) {}

func (h playerHandler) Seek(offsetUS int64) {
	h.m.push(Request{Cmd: CmdSeekBy, Millis: offsetUS / 1000})
}

func (h playerHandler) SetPosition(_ dbus.ObjectPath, posUS int64) {
	h.m.push(Request{Cmd: CmdSeekTo, Millis: posUS / 1000})
}

// rootHandler carries the org.mpris.MediaPlayer2 methods.
type rootHandler struct{ m *Mpris }

func (h rootHandler) Raise() {}
func (h rootHandler) Quit()  { h.m.push(Request{Cmd: CmdQuit}) }

// Register connects to the session bus, exports both interfaces and
// claims the player name. volume is the starting volume percentage.
func Register(volume int) (*Mpris, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}

	m := &Mpris{
		conn:       conn,
		reqs:       make(chan Request, 8),
		lastStatus: "Stopped",
		lastVolume: float64(volume) / 100,
	}
	ph := playerHandler{m}
	rh := rootHandler{m}

	if err := conn.ExportAll(ph, objectPath, playerIface); err != nil {
		conn.Close()
		return nil, err
	}
	if err := conn.ExportAll(rh, objectPath, rootIface); err != nil {
		conn.Close()
		return nil, err
	}

	playerProps := map[string]*prop.Prop{
		"CanControl":     {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPlay":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPause":       {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanSeek":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoNext":      {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoPrevious":  {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"PlaybackStatus": {Value: "Stopped", Writable: false, Emit: prop.EmitTrue, Callback: nil},
		"Position":       {Value: int64(0), Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Volume":         {Value: float64(volume) / 100, Writable: true, Emit: prop.EmitTrue, Callback: m.volumeChange},
		"Metadata":       {Value: metadataFor(player.SessionInfo{}), Writable: false, Emit: prop.EmitTrue, Callback: nil},
	}
	rootProps := map[string]*prop.Prop{
		"CanQuit":             {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanRaise":            {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"HasTrackList":        {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Identity":            {Value: "Matinee", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"DesktopEntry":        {Value: "matinee", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedUriSchemes": {Value: []string{"file"}, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedMimeTypes": {Value: []string{
			"video/mp4", "video/x-matroska", "video/x-msvideo",
			"video/quicktime", "video/x-ms-wmv", "video/x-flv",
		}, Writable: false, Emit: prop.EmitFalse, Callback: nil},
	}

	props, err := prop.Export(conn, objectPath, map[string]map[string]*prop.Prop{
		rootIface:   rootProps,
		playerIface: playerProps,
	})
	if err != nil {
		conn.Close()
		return nil, err
	}
	m.props = props

	node := &introspect.Node{
		Name: objectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       rootIface,
				Methods:    introspect.Methods(rh),
				Properties: props.Introspection(rootIface),
			},
			{
				Name:       playerIface,
				Methods:    introspect.Methods(ph),
				Properties: props.Introspection(playerIface),
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), objectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, err
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, errors.New("bus name already owned")
	}
	logrus.Debugf("mpris: registered %s", busName)
	return m, nil
}

// Requests is the command stream for the update loop. Nil when the
// registration never happened, which blocks forever in a select.
func (m *Mpris) Requests() <-chan Request {
	if m == nil {
		return nil
	}
	return m.reqs
}

// Publish pushes the current session state out as bus properties.
// Properties only emit when their value actually moved.
func (m *Mpris) Publish(info player.SessionInfo) {
	if m == nil {
		return
	}
	status := statusName(info.State)
	vol := float64(info.Volume) / 100

	m.mu.Lock()
	statusChanged := status != m.lastStatus
	volChanged := vol != m.lastVolume
	pathChanged := info.Path != m.lastPath
	m.lastStatus = status
	m.lastVolume = vol
	m.lastPath = info.Path
	m.mu.Unlock()

	if statusChanged {
		m.props.SetMust(playerIface, "PlaybackStatus", status)
	}
	if volChanged {
		m.props.SetMust(playerIface, "Volume", vol)
	}
	if pathChanged {
		m.props.SetMust(playerIface, "Metadata", metadataFor(info))
	}
	m.props.SetMust(playerIface, "Position", info.PositionMS*1000)
}

// Close drops the bus connection, releasing the name.
func (m *Mpris) Close() {
	if m == nil || m.conn == nil {
		return
	}
	if err := m.conn.Close(); err != nil {
		logrus.Warnf("mpris: close bus: %v", err)
	}
}

func (m *Mpris) push(r Request) {
	select {
	case m.reqs <- r:
	default:
		logrus.Warnf("mpris: command queue full, dropping %s", r.Cmd)
	}
}

// volumeChange handles a bus write to the Volume property. SetMust from
// Publish lands here too, so same-value writes are swallowed to keep the
// publish path from echoing commands back at the app.
func (m *Mpris) volumeChange(c *prop.Change) *dbus.Error {
	f := c.Value.(float64)
	pct := int(math.Round(f * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 200 {
		pct = 200
	}

	m.mu.Lock()
	same := f == m.lastVolume
	m.lastVolume = f
	m.mu.Unlock()

	if !same {
		logrus.Debugf("mpris: volume write %.2f -> %d%%", f, pct)
		m.push(Request{Cmd: CmdVolume, Volume: pct})
	}
	return nil
}

func statusName(s player.PlayState) string {
	switch s {
	case player.StatePlaying:
		return "Playing"
	case player.StatePaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

func metadataFor(info player.SessionInfo) map[string]interface{} {
	if info.Path == "" {
		return map[string]interface{}{
			"mpris:trackid": dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack"),
		}
	}
	return map[string]interface{}{
		"mpris:trackid": dbus.ObjectPath("/matinee/track/current"),
		"mpris:length":  info.DurationMS * 1000,
		"xesam:title":   filepath.Base(info.Path),
		"xesam:url":     "file://" + info.Path,
	}
}
