package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{999, "00:00"},
		{1000, "00:01"},
		{59999, "00:59"},
		{65000, "01:05"},
		{600000, "10:00"},
		{3599000, "59:59"},
		{3600000, "01:00:00"},
		{3661000, "01:01:01"},
		{36061000, "10:01:01"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTime(tc.ms), "ms=%d", tc.ms)
	}
}
