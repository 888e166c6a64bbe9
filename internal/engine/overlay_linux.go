//go:build linux

package engine

/*
#include <mpv/client.h>
#include <stdlib.h>

// overlay_set issues an osd-overlay command through mpv_command_node.
// The string command interface mangles ASS payloads containing commas,
// so the node form is required here.
static int overlay_set(mpv_handle *h, int id, const char *data, int res_x, int res_y) {
    mpv_node vals[6];
    char *keys[6];

    keys[0] = "name";
    vals[0].format = MPV_FORMAT_STRING;
    vals[0].u.string = "osd-overlay";

    keys[1] = "id";
    vals[1].format = MPV_FORMAT_INT64;
    vals[1].u.int64 = id;

    keys[2] = "format";
    vals[2].format = MPV_FORMAT_STRING;
    vals[2].u.string = "ass-events";

    keys[3] = "data";
    vals[3].format = MPV_FORMAT_STRING;
    vals[3].u.string = (char*)data;

    keys[4] = "res_x";
    vals[4].format = MPV_FORMAT_INT64;
    vals[4].u.int64 = res_x;

    keys[5] = "res_y";
    vals[5].format = MPV_FORMAT_INT64;
    vals[5].u.int64 = res_y;

    mpv_node_list list = {
        .num    = 6,
        .values = vals,
        .keys   = keys,
    };

    mpv_node cmd;
    cmd.format = MPV_FORMAT_NODE_MAP;
    cmd.u.list = &list;

    mpv_node result;
    int err = mpv_command_node(h, &cmd, &result);
    if (err >= 0) {
        mpv_free_node_contents(&result);
    }
    return err;
}

// overlay_remove clears an overlay slot by setting its format to "none".
static int overlay_remove(mpv_handle *h, int id) {
    mpv_node vals[3];
    char *keys[3];

    keys[0] = "name";
    vals[0].format = MPV_FORMAT_STRING;
    vals[0].u.string = "osd-overlay";

    keys[1] = "id";
    vals[1].format = MPV_FORMAT_INT64;
    vals[1].u.int64 = id;

    keys[2] = "format";
    vals[2].format = MPV_FORMAT_STRING;
    vals[2].u.string = "none";

    mpv_node_list list = {
        .num    = 3,
        .values = vals,
        .keys   = keys,
    };

    mpv_node cmd;
    cmd.format = MPV_FORMAT_NODE_MAP;
    cmd.u.list = &list;

    mpv_node result;
    int err = mpv_command_node(h, &cmd, &result);
    if (err >= 0) {
        mpv_free_node_contents(&result);
    }
    return err;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/gen2brain/go-mpv"
)

// osdOverlaySet writes ASS event data into an overlay slot. The mpv.Mpv
// struct's only field is the *C.mpv_handle, so the raw handle is
// recovered by pointer reinterpretation.
func osdOverlaySet(m *mpv.Mpv, id int, data string, resX, resY int) error {
	handle := *(**C.mpv_handle)(unsafe.Pointer(m))
	cData := C.CString(data)
	defer C.free(unsafe.Pointer(cData))
	if rc := C.overlay_set(handle, C.int(id), cData, C.int(resX), C.int(resY)); rc < 0 {
		return fmt.Errorf("osd-overlay set %d: mpv error %d", id, rc)
	}
	return nil
}

// osdOverlayRemove clears an overlay slot.
func osdOverlayRemove(m *mpv.Mpv, id int) error {
	handle := *(**C.mpv_handle)(unsafe.Pointer(m))
	if rc := C.overlay_remove(handle, C.int(id)); rc < 0 {
		return fmt.Errorf("osd-overlay remove %d: mpv error %d", id, rc)
	}
	return nil
}
