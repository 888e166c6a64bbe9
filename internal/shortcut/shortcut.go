// Package shortcut installs and removes launcher entries pointing at the
// running executable.
package shortcut

// Install writes launcher shortcuts and returns the locations written.
// Locations fail independently; an error means none could be written.
func Install() ([]string, error) { return install() }

// Uninstall removes previously installed shortcuts and returns the
// locations actually removed. Missing shortcuts are not an error.
func Uninstall() ([]string, error) { return uninstall() }
