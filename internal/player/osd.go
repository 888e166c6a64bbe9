package player

import "time"

// OSDKind tags the transient overlay variants.
type OSDKind int

const (
	OSDVolume OSDKind = iota
	OSDSeek
	OSDProgress
	osdKindCount
)

const (
	osdSeekTTL     = 1000 * time.Millisecond
	osdVolumeTTL   = 2000 * time.Millisecond
	osdProgressTTL = 2000 * time.Millisecond
)

// OSDView is one visible overlay with its payload.
type OSDView struct {
	Kind    OSDKind
	Volume  int  // OSDVolume
	Forward bool // OSDSeek
	PosMS   int64
	DurMS   int64 // OSDProgress
}

// OSDManager owns the transient fullscreen overlays. Each kind holds at
// most one live entry; showing a kind overwrites the previous entry and
// its deadline, so a stale timer can never hide a fresh overlay. The
// manager is disabled while windowed and show calls become no-ops.
type OSDManager struct {
	enabled  bool
	deadline [osdKindCount]time.Time
	view     [osdKindCount]OSDView
}

func NewOSDManager() *OSDManager { return &OSDManager{} }

// SetEnabled gates visibility to fullscreen. Disabling hides everything.
func (o *OSDManager) SetEnabled(on bool) {
	o.enabled = on
	if !on {
		o.HideAll()
	}
}

func (o *OSDManager) ShowVolume(percent int, now time.Time) {
	if !o.enabled {
		return
	}
	o.view[OSDVolume] = OSDView{Kind: OSDVolume, Volume: percent}
	o.deadline[OSDVolume] = now.Add(osdVolumeTTL)
}

func (o *OSDManager) ShowSeek(forward bool, now time.Time) {
	if !o.enabled {
		return
	}
	o.view[OSDSeek] = OSDView{Kind: OSDSeek, Forward: forward}
	o.deadline[OSDSeek] = now.Add(osdSeekTTL)
}

func (o *OSDManager) ShowProgress(posMS, durMS int64, now time.Time) {
	if !o.enabled {
		return
	}
	o.view[OSDProgress] = OSDView{Kind: OSDProgress, PosMS: posMS, DurMS: durMS}
	o.deadline[OSDProgress] = now.Add(osdProgressTTL)
}

// Hide clears one kind. Safe when nothing of that kind is showing.
func (o *OSDManager) Hide(kind OSDKind) {
	o.deadline[kind] = time.Time{}
}

// HideAll clears every kind. Safe on an empty manager.
func (o *OSDManager) HideAll() {
	for k := range o.deadline {
		o.deadline[k] = time.Time{}
	}
}

// Expire drops entries whose deadline has passed and reports whether
// anything changed.
func (o *OSDManager) Expire(now time.Time) bool {
	changed := false
	for k := range o.deadline {
		if !o.deadline[k].IsZero() && now.After(o.deadline[k]) {
			o.deadline[k] = time.Time{}
			changed = true
		}
	}
	return changed
}

// Views returns the visible overlays in kind order.
func (o *OSDManager) Views() []OSDView {
	var out []OSDView
	for k := range o.deadline {
		if !o.deadline[k].IsZero() {
			out = append(out, o.view[k])
		}
	}
	return out
}

// Visible reports whether an overlay of the given kind is showing.
func (o *OSDManager) Visible(kind OSDKind) bool {
	return !o.deadline[kind].IsZero()
}
