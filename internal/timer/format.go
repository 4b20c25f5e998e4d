package timer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// FormatTime renders seconds as zero-padded MM:SS. Negative input renders
// as 00:00.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ParseMinutes reads the leading integer of text and clamps it to the
// allowed duration range. Text without a leading integer, or a zero, yields
// the minimum.
func ParseMinutes(text string) int {
	s := strings.TrimSpace(text)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return config.MinMinutes
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow gets here.
		if negative {
			return config.MinMinutes
		}
		return config.MaxMinutes
	}
	if negative {
		n = -n
	}
	if n == 0 {
		return config.MinMinutes
	}
	return ClampMinutes(n)
}

// ClampMinutes constrains minutes to [MinMinutes, MaxMinutes].
func ClampMinutes(minutes int) int {
	return util.Clamp(minutes, config.MinMinutes, config.MaxMinutes)
}
