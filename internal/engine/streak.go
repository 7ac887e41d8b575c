package engine

import "time"

// CurrentStreak counts consecutive active days ending at today. The anchor is
// today when today is active, otherwise yesterday: a day still in progress
// does not break the streak, a fully missed day does. Dates are compared by
// calendar day in their own location; duplicates and times of day are
// ignored. An empty set yields 0.
func CurrentStreak(activeDates []time.Time, today time.Time) int {
	if len(activeDates) == 0 {
		return 0
	}
	active := make(map[time.Time]bool, len(activeDates))
	for _, d := range activeDates {
		active[beginningOfDay(d)] = true
	}

	anchor := beginningOfDay(today)
	if !active[anchor] {
		anchor = anchor.AddDate(0, 0, -1)
		if !active[anchor] {
			return 0
		}
	}

	streak := 0
	for day := anchor; active[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func beginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
