package engine

import (
	"time"

	"github.com/dukerupert/tally/internal/model"
)

// Streak returns the count of consecutive calendar days, ending today or
// yesterday, with at least one earned entry in history.
//
// The walk starts at today; if today has no entry yet it falls back to
// yesterday (grace window) so a member who has not acted today does not
// lose streak credit prematurely. The grace day itself counts only if it
// has an entry.
func Streak(history []model.HistoryEntry, today time.Time) int {
	var dates []string
	for _, e := range history {
		if e.Type == model.EntryEarned {
			dates = append(dates, e.Date)
		}
	}
	return StreakOfDates(dates, today)
}

// StreakOfDates is the shared consecutive-day walk over any entry source.
// Duplicate dates collapse; dates are local YYYY-MM-DD strings.
func StreakOfDates(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	active := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		active[d] = struct{}{}
	}

	cursor := startOfDay(today)
	if _, ok := active[DateOf(cursor)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := active[DateOf(cursor)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// BonusMultiplier returns the streak-based award multiplier.
func BonusMultiplier(streak int) float64 {
	switch {
	case streak >= 7:
		return 1.10
	case streak >= 3:
		return 1.05
	default:
		return 1.00
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
