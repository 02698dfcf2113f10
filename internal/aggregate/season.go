package aggregate

import "time"

// seasonStart returns the Oct 1 boundary of the season containing the most
// recent game date. NBA seasons tip off in October, so dates before October
// belong to the season that started the previous calendar year.
func seasonStart(latest time.Time) time.Time {
	year := latest.Year()
	if latest.Month() < time.October {
		year--
	}
	return time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
}
