package ui

import (
	"errors"

	"github.com/ncruces/zenity"
)

// OpenVideoFile shows the system open dialog filtered to common video
// container types. It blocks; run it off the UI loop and marshal the
// result back.
func OpenVideoFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Select Video File"),
		zenity.FileFilters{
			{Name: "Video files", Patterns: []string{"*.mp4", "*.mkv", "*.avi", "*.mov", "*.wmv", "*.flv"}},
			{Name: "MP4 files", Patterns: []string{"*.mp4"}},
			{Name: "MKV files", Patterns: []string{"*.mkv"}},
			{Name: "All files", Patterns: []string{"*"}},
		},
	)
}

// Canceled reports whether err is the user dismissing a dialog.
func Canceled(err error) bool {
	return errors.Is(err, zenity.ErrCanceled)
}

// ErrorBox shows a modal error dialog and blocks until dismissed.
func ErrorBox(title, msg string) {
	_ = zenity.Error(msg, zenity.Title(title))
}

// WarnBox shows a modal warning dialog and blocks until dismissed.
func WarnBox(title, msg string) {
	_ = zenity.Warning(msg, zenity.Title(title))
}

// InfoBox shows a modal information dialog and blocks until dismissed.
func InfoBox(title, msg string) {
	_ = zenity.Info(msg, zenity.Title(title))
}
