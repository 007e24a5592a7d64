package services

import "time"

// CycleWindow is one billing cycle: the 21st of a month through the 20th
// of the next, inclusive, in UTC day boundaries.
type CycleWindow struct {
	Start time.Time
	End   time.Time
}

// CurrentCycle derives the active cycle purely from the given instant:
// on or after the 21st the cycle starts this month, otherwise it started
// on the 21st of the previous month.
func CurrentCycle(now time.Time) CycleWindow {
	today := now.UTC()
	year, month, day := today.Date()

	var start time.Time
	if day >= 21 {
		start = time.Date(year, month, 21, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(year, month-1, 21, 0, 0, 0, 0, time.UTC)
	}
	end := time.Date(start.Year(), start.Month()+1, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC)

	return CycleWindow{Start: start, End: end}
}

func (window CycleWindow) Contains(date time.Time) bool {
	return !date.Before(window.Start) && !date.After(window.End)
}

// DateOnlyUTC normalizes an instant to UTC midnight of its calendar day.
func DateOnlyUTC(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
