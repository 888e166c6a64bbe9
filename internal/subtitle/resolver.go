// Package subtitle builds the selectable track list for a loaded video,
// merging engine-reported streams with sidecar files next to the media.
package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"matinee/internal/engine"
)

// Origin tags where a selectable track comes from.
type Origin int

const (
	OriginNone Origin = iota
	OriginEmbedded
	OriginExternal
)

// Track is one selectable entry. Embedded tracks carry the engine id they
// were enumerated with; external tracks carry the sidecar path.
type Track struct {
	Label  string
	Origin Origin
	ID     int
	Path   string
}

var (
	subtitleExts   = []string{".srt", ".vtt", ".ass", ".ssa", ".sub"}
	localeSuffixes = []string{"", ".en", ".eng", ".english"}
)

// Resolver owns the track list for the current session. The list always
// starts with the "None" sentinel and is rebuilt whole on load, stop and
// reload, never patched.
type Resolver struct {
	fs      afero.Fs
	eng     engine.Engine
	tracks  []Track
	current int
}

func NewResolver(eng engine.Engine, fs afero.Fs) *Resolver {
	return &Resolver{
		fs:     fs,
		eng:    eng,
		tracks: []Track{noneTrack()},
	}
}

func noneTrack() Track {
	return Track{Label: "None", Origin: OriginNone}
}

// Rebuild re-enumerates engine streams and sidecar files for videoPath.
// An engine query failure degrades to the bare "None" list; it never
// propagates.
func (r *Resolver) Rebuild(videoPath string) {
	tracks := []Track{noneTrack()}
	r.current = 0

	infos, err := r.eng.SubtitleTracks()
	if err != nil {
		logrus.Warnf("subtitle enumeration failed, keeping None only: %v", err)
		r.tracks = tracks
		return
	}

	for _, ti := range infos {
		// Engines report their own "disable" pseudo-entry with a negative
		// id; the None sentinel already covers it.
		if ti.ID < 0 {
			continue
		}
		label := fmt.Sprintf("Track %d", len(tracks))
		if desc := cleanDescription(ti.Title, ti.Lang); desc != "" {
			label = fmt.Sprintf("Track %d: %s", len(tracks), desc)
		}
		tracks = append(tracks, Track{Label: label, Origin: OriginEmbedded, ID: ti.ID})
	}

	if videoPath != "" {
		tracks = append(tracks, r.discoverExternal(videoPath)...)
	}
	r.tracks = tracks
}

// Reset drops everything but the sentinel. Used on stop and clear.
func (r *Resolver) Reset() {
	r.tracks = []Track{noneTrack()}
	r.current = 0
}

func cleanDescription(title, lang string) string {
	desc := title
	if desc == "" {
		desc = lang
	}
	desc = strings.ReplaceAll(desc, "MoviesMod.chat - ", "")
	desc = strings.Trim(desc, "[]")
	return strings.TrimSpace(desc)
}

func (r *Resolver) discoverExternal(videoPath string) []Track {
	dir := filepath.Dir(videoPath)
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var out []Track
	seen := make(map[string]bool)
	for _, ext := range subtitleExts {
		for _, suffix := range localeSuffixes {
			p := filepath.Join(dir, stem+suffix+ext)
			if seen[p] {
				continue
			}
			if ok, err := afero.Exists(r.fs, p); err != nil || !ok {
				continue
			}
			seen[p] = true
			out = append(out, Track{
				Label:  "External: " + filepath.Base(p),
				Origin: OriginExternal,
				Path:   p,
			})
		}
	}
	return out
}

// Select applies the track at index. None disables subtitles, external
// entries attach their file, embedded entries re-check the engine's
// current list for the id captured at rebuild. When that id has vanished,
// or the list cannot be read, the list position is retried as a raw
// zero-based stream index; that alignment is not guaranteed, so the
// fallback is logged as degraded.
func (r *Resolver) Select(index int) error {
	if index < 0 || index >= len(r.tracks) {
		return fmt.Errorf("subtitle index %d out of range", index)
	}
	t := r.tracks[index]

	switch t.Origin {
	case OriginNone:
		if err := r.eng.SelectSubtitle(-1); err != nil {
			return err
		}
	case OriginExternal:
		if ok, err := r.fileStillThere(t.Path); err != nil || !ok {
			return fmt.Errorf("subtitle file missing: %s", filepath.Base(t.Path))
		}
		if err := r.eng.AddSubtitleFile(t.Path); err != nil {
			return fmt.Errorf("attach %s: %w", filepath.Base(t.Path), err)
		}
	case OriginEmbedded:
		id := t.ID
		if !r.embeddedStillPresent(id) {
			fallback := index - 1
			logrus.Warnf("subtitle track id %d no longer reported, degraded fallback to stream index %d", id, fallback)
			id = fallback
		}
		if err := r.eng.SelectSubtitle(id); err != nil {
			return err
		}
	}
	r.current = index
	return nil
}

// embeddedStillPresent re-enumerates the engine tracks and reports whether
// id is among them. Enumeration failure counts as absent.
func (r *Resolver) embeddedStillPresent(id int) bool {
	infos, err := r.eng.SubtitleTracks()
	if err != nil {
		return false
	}
	for _, ti := range infos {
		if ti.ID == id {
			return true
		}
	}
	return false
}

func (r *Resolver) fileStillThere(path string) (bool, error) {
	return afero.Exists(r.fs, path)
}

// Cycle advances to the next entry, wrapping past the end. A bare list is
// a no-op.
func (r *Resolver) Cycle() error {
	if len(r.tracks) <= 1 {
		return nil
	}
	return r.Select((r.current + 1) % len(r.tracks))
}

// Labels returns the display strings in selection order.
func (r *Resolver) Labels() []string {
	out := make([]string, len(r.tracks))
	for i, t := range r.tracks {
		out[i] = t.Label
	}
	return out
}

// Current returns the selected index, 0 being None.
func (r *Resolver) Current() int { return r.current }

// Count returns the number of selectable entries including None.
func (r *Resolver) Count() int { return len(r.tracks) }
