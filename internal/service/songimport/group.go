package songimport

import "time"

// dateGroup collects the indices of rows sharing one raw date string.
type dateGroup struct {
	date    string
	indices []int
}

// groupRowsByDate buckets rows by their raw date string, preserving the
// order in which each date first appears. Rows with an empty date are
// assigned the current day (DD.MM.YYYY) and the slice is updated in place
// so results echo the date that was actually used.
func groupRowsByDate(rows []ImportRow, now time.Time) []dateGroup {
	today := formatDate(now)

	var groups []dateGroup
	byDate := make(map[string]int) // date -> index into groups

	for i := range rows {
		if rows[i].Date == "" {
			rows[i].Date = today
		}
		date := rows[i].Date

		gi, ok := byDate[date]
		if !ok {
			gi = len(groups)
			byDate[date] = gi
			groups = append(groups, dateGroup{date: date})
		}
		groups[gi].indices = append(groups[gi].indices, i)
	}

	return groups
}
