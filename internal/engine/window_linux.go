//go:build linux

package engine

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>

// focused_window returns the X11 window that currently holds input focus.
// ebiten does not expose its native window id, but by the time playback
// starts the game window has focus, so this is the embed target.
static long focused_window() {
    Display *d = XOpenDisplay(NULL);
    if (d == NULL) {
        return 0;
    }
    Window w;
    int revert;
    XGetInputFocus(d, &w, &revert);
    XCloseDisplay(d);
    return (long)w;
}
*/
import "C"

import "errors"

// GetWindowHandle returns the native id of the focused window, used as
// the wid embed target for the video surface.
func GetWindowHandle() (int64, error) {
	w := int64(C.focused_window())
	if w == 0 {
		return 0, errors.New("no focused X11 window")
	}
	return w, nil
}
