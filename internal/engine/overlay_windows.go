//go:build windows

package engine

import (
	"github.com/gen2brain/go-mpv"
)

// The cgo osd-overlay shim is only built on linux. On windows the overlay
// slots degrade to no-ops; mpv still renders the video and file subtitles.
func osdOverlaySet(m *mpv.Mpv, id int, data string, resX, resY int) error {
	return nil
}

func osdOverlayRemove(m *mpv.Mpv, id int) error {
	return nil
}
