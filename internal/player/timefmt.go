package player

import "fmt"

// FormatTime renders a millisecond position as a zero-padded clock,
// "MM:SS" under an hour and "HH:MM:SS" from an hour up. Anything at or
// below zero renders as "00:00".
func FormatTime(ms int64) string {
	if ms <= 0 {
		return "00:00"
	}
	secs := ms / 1000
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
