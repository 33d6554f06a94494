// Package format contains display formatters for counts, percentages and
// timestamps shown by the CLI views.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Number abbreviates large counts: 1_200 -> "1.2K", 3_400_000 -> "3.4M".
// Smaller values are grouped with commas.
func Number(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "K"
	default:
		return NumberWithCommas(n)
	}
}

// NumberWithCommas renders n with thousands separators, e.g. 1234567 -> "1,234,567".
// Fractional parts are dropped.
func NumberWithCommas(n float64) string {
	neg := n < 0
	s := strconv.FormatInt(int64(n), 10)
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Percentage renders n as a percentage with the given number of decimals.
func Percentage(n float64, decimals int) string {
	return strconv.FormatFloat(n, 'f', decimals, 64) + "%"
}

// Date renders t as a short absolute date, e.g. "Jan 2, 2006".
// The zero time renders as "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// RelativeTime renders how long ago t was relative to now: "just now",
// "5 minutes ago", "3 hours ago", "12 days ago", falling back to Date for
// anything older than thirty days.
func RelativeTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return Date(t)
	}
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
