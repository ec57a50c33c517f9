package engine

import (
	"testing"
	"time"

	"github.com/dukerupert/tally/internal/model"
)

var testToday = time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

// earnedOn builds one earned history entry per day offset from testToday
// (0 = today, 1 = yesterday, ...).
func earnedOn(offsets ...int) []model.HistoryEntry {
	var history []model.HistoryEntry
	for _, off := range offsets {
		day := testToday.AddDate(0, 0, -off)
		history = append(history, model.HistoryEntry{
			ID:          "h",
			Date:        DateOf(day),
			CompletedAt: day,
			Points:      5,
			BasePoints:  5,
			Type:        model.EntryEarned,
		})
	}
	return history
}

func TestStreakEmptyHistory(t *testing.T) {
	if got := Streak(nil, testToday); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	for n := 1; n <= 10; n++ {
		offsets := make([]int, n)
		for i := range offsets {
			offsets[i] = i
		}
		if got := Streak(earnedOn(offsets...), testToday); got != n {
			t.Errorf("streak for %d consecutive days = %d, want %d", n, got, n)
		}
	}
}

func TestStreakGraceWindow(t *testing.T) {
	// Entries through yesterday, nothing today: streak holds, not reset.
	history := earnedOn(1, 2, 3)
	if got := Streak(history, testToday); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestStreakGraceDayDoesNotCountAlone(t *testing.T) {
	// Nothing today or yesterday: streak is gone even if older days exist.
	history := earnedOn(2, 3, 4)
	if got := Streak(history, testToday); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestStreakGapResets(t *testing.T) {
	// Today and yesterday, then a gap, then more days: only the recent run counts.
	history := earnedOn(0, 1, 3, 4, 5)
	if got := Streak(history, testToday); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestStreakAfterGapIsOne(t *testing.T) {
	// Completing after a gap starts a fresh streak of 1.
	history := earnedOn(0, 2, 3)
	if got := Streak(history, testToday); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestStreakDuplicateDatesCollapse(t *testing.T) {
	history := append(earnedOn(0, 0, 0, 1, 1), earnedOn(2)...)
	if got := Streak(history, testToday); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestStreakIgnoresSpentAndDeducted(t *testing.T) {
	history := earnedOn(1)
	history = append(history,
		model.HistoryEntry{Date: DateOf(testToday), Points: 3, Type: model.EntrySpent},
		model.HistoryEntry{Date: DateOf(testToday), Points: 2, Type: model.EntryDeducted},
	)
	// Spent/deducted entries today must not extend the streak to 2.
	if got := Streak(history, testToday); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestStreakOfDatesSharedWalk(t *testing.T) {
	// Other entry sources (journal) feed the same walk.
	dates := []string{
		DateOf(testToday),
		DateOf(testToday.AddDate(0, 0, -1)),
		DateOf(testToday.AddDate(0, 0, -2)),
	}
	if got := StreakOfDates(dates, testToday); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
	if got := StreakOfDates(nil, testToday); got != 0 {
		t.Errorf("streak of no dates = %d, want 0", got)
	}
}

func TestBonusMultiplierTiers(t *testing.T) {
	cases := []struct {
		streak int
		want   float64
	}{
		{0, 1.00},
		{1, 1.00},
		{2, 1.00},
		{3, 1.05},
		{6, 1.05},
		{7, 1.10},
		{30, 1.10},
	}
	for _, tc := range cases {
		if got := BonusMultiplier(tc.streak); got != tc.want {
			t.Errorf("multiplier(%d) = %v, want %v", tc.streak, got, tc.want)
		}
	}
}
