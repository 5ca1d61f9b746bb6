package ground

import "time"

// Holiday calendar used for the car-service surcharge. The set is computed
// per year from fixed-date, nth-weekday and last-weekday rules, so it stays
// correct for any year.

// nthWeekday returns the nth occurrence of a weekday in a month (n >= 1).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the last occurrence of a weekday in a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	last := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// holidaysForYear returns the recognized holiday dates for a calendar year.
func holidaysForYear(year int) []time.Time {
	return []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),                // New Year's Day
		nthWeekday(year, time.January, time.Monday, 3),                        // MLK Day
		lastWeekday(year, time.May, time.Monday),                              // Memorial Day
		time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC),                   // Independence Day
		nthWeekday(year, time.September, time.Monday, 1),                      // Labor Day
		nthWeekday(year, time.November, time.Thursday, 4),                     // Thanksgiving
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),              // Christmas
	}
}

// isHoliday reports whether a date falls on a recognized holiday.
func isHoliday(d time.Time) bool {
	for _, h := range holidaysForYear(d.Year()) {
		if h.Month() == d.Month() && h.Day() == d.Day() {
			return true
		}
	}
	return false
}
