package filters

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders the age of ts as "N seconds/minutes/hours/days ago"
// using the largest unit that fits. The unit is plural when N > 1. A zero
// timestamp renders as "" and timestamps in the future count as 0 seconds.
func FormatTimeAgo(ts int64, now time.Time) string {
	if ts == 0 {
		return ""
	}
	elapsed := now.Unix() - ts
	if elapsed < 0 {
		elapsed = 0
	}

	var n int64
	var unit string
	switch {
	case elapsed < 60:
		n, unit = elapsed, "second"
	case elapsed < 3600:
		n, unit = elapsed/60, "minute"
	case elapsed < 86400:
		n, unit = elapsed/3600, "hour"
	default:
		n, unit = elapsed/86400, "day"
	}
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
