//go:build windows

package shortcut

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const linkName = "Matinee.lnk"

func shortcutPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	paths := []string{filepath.Join(home, "Desktop", linkName)}
	if appData := os.Getenv("APPDATA"); appData != "" {
		paths = append(paths, filepath.Join(
			appData, "Microsoft", "Windows", "Start Menu", "Programs", linkName))
	}
	return paths, nil
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

	var written []string
	for _, p := range paths {
		script := fmt.Sprintf(
			`$s=(New-Object -ComObject WScript.Shell).CreateShortcut(%s);`+
				`$s.TargetPath=%s;$s.WorkingDirectory=%s;`+
				`$s.Description='Matinee video player';$s.Save()`,
			psQuote(p), psQuote(exe), psQuote(filepath.Dir(exe)))
		if out, err := exec.Command("powershell", "-NoProfile", "-Command", script).CombinedOutput(); err != nil {
			logrus.Warnf("shortcut %s: %v: %s", p, err, out)
			continue
		}
		written = append(written, p)
	}
	if len(written) == 0 {
		return nil, fmt.Errorf("no shortcut location was writable")
	}
	return written, nil
}

// psQuote wraps s as a PowerShell single-quoted literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
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
