package songimport

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "02.01.2006"

// normalizeDate parses a strict DD.MM.YYYY date and returns the noon UTC
// instant of that day. Noon keeps the calendar day stable across timezone
// conversions on display.
//
// The components are checked by round-tripping through time.Date, which
// rejects overflowed dates like 30.02.2024 while accepting real leap days.
func normalizeDate(raw string) (time.Time, bool) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return time.Time{}, false
	}
	// Atoi alone would admit signed segments like "+1" or "-024".
	for _, part := range parts {
		if !isDigits(part) {
			return time.Time{}, false
		}
	}

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// formatDate renders a time as DD.MM.YYYY in UTC.
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
