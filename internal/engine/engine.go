// Package engine defines the narrow command/query contract matinee
// drives a media engine through, and implements it on libmpv.
package engine

// TrackInfo is one subtitle track as reported by the engine. Title and
// Lang may both be empty for untagged tracks.
type TrackInfo struct {
	ID    int
	Title string
	Lang  string
}

// EndReason classifies why the current file stopped playing.
type EndReason int

const (
	EndStop EndReason = iota
	EndEOF
	EndError
)

func (r EndReason) String() string {
	switch r {
	case EndEOF:
		return "eof"
	case EndError:
		return "error"
	default:
		return "stop"
	}
}

// Engine is the surface the player core drives. Implementations must be
// safe for concurrent use: commands are issued from the UI loop while the
// poller queries position and duration from its own goroutine.
type Engine interface {
	// Load opens and parses the media at path. Duration may not be
	// known until the engine has probed the container; callers pick it
	// up through Duration polling.
	Load(path string) error
	// SetRenderTarget embeds video output into the native window wid.
	SetRenderTarget(wid int64) error
	Play() error
	Pause() error
	Stop() error
	// Position returns the current playback position in milliseconds.
	Position() (int64, error)
	// SetPosition seeks to an absolute position in milliseconds.
	SetPosition(ms int64) error
	// Duration returns the media duration in milliseconds.
	Duration() (int64, error)
	// SetVolume sets the output volume, 0..200 percent.
	SetVolume(percent int) error
	// SubtitleTracks enumerates the embedded subtitle tracks.
	SubtitleTracks() ([]TrackInfo, error)
	// SelectSubtitle activates the track with the given engine id, or
	// disables subtitles when id is negative.
	SelectSubtitle(id int) error
	// AddSubtitleFile attaches and selects an external subtitle file.
	AddSubtitleFile(path string) error
	Close()
}

// OverlayRenderer is the retained-visual surface the chrome and OSD
// layers draw through. Each overlay slot id holds at most one visual;
// setting a slot replaces its previous content.
type OverlayRenderer interface {
	SetOverlay(id int, ass string) error
	ClearOverlay(id int) error
}
