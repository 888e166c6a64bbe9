//go:build windows

package engine

import (
	"errors"
	"syscall"
)

var (
	user32              = syscall.NewLazyDLL("user32.dll")
	getForegroundWindow = user32.NewProc("GetForegroundWindow")
)

// GetWindowHandle returns the HWND of the foreground window, used as the
// wid embed target for the video surface.
func GetWindowHandle() (int64, error) {
	hwnd, _, _ := getForegroundWindow.Call()
	if hwnd == 0 {
		return 0, errors.New("no foreground window")
	}
	return int64(hwnd), nil
}
