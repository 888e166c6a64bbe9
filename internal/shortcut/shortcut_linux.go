//go:build linux

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const desktopEntry = `[Desktop Entry]
Type=Application
Name=Matinee
Comment=Desktop video player
Exec=%s %%f
Terminal=false
Categories=AudioVideo;Video;Player;
`

func shortcutPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(home, "Desktop", "matinee.desktop"),
		filepath.Join(home, ".local", "share", "applications", "matinee.desktop"),
	}, nil
}

func install() ([]string, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	paths, err := shortcutPaths()
	if err != nil {
		return nil, err
	}
	entry := fmt.Sprintf(desktopEntry, exe)

	var written []string
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			logrus.Warnf("shortcut dir %s: %v", filepath.Dir(p), err)
			continue
		}
		if err := os.WriteFile(p, []byte(entry), 0o755); err != nil {
			logrus.Warnf("shortcut %s: %v", p, err)
			continue
		}
		written = append(written, p)
	}
	if len(written) == 0 {
		return nil, fmt.Errorf("no shortcut location was writable")
	}
	return written, nil
}

func uninstall() ([]string, error) {
	paths, err := shortcutPaths()
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			if !os.IsNotExist(err) {
				logrus.Warnf("remove shortcut %s: %v", p, err)
			}
			continue
		}
		removed = append(removed, p)
	}
	return removed, nil
}
