package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/dannav/hhmmss"
)

// NormalizeDuration rewrites a clock-style length such as "4:13" or
// "1:02:03" as M:SS or H:MM:SS. Anything else (live streams, empty text)
// becomes NotAvailable.
func NormalizeDuration(text string) string {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return NotAvailable
	}
	for len(parts) < 3 {
		parts = append([]string{"00"}, parts...)
	}
	for i, p := range parts {
		if p == "" {
			return NotAvailable
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return NotAvailable
			}
		}
		if len(p) < 2 {
			parts[i] = "0" + p
		}
	}

	d, err := hhmmss.Parse(strings.Join(parts, ":"))
	if err != nil || d <= 0 {
		return NotAvailable
	}
	return formatClock(d)
}

func formatClock(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
