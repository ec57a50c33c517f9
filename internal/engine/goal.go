package engine

import (
	"math"
	"time"

	"github.com/dukerupert/tally/internal/model"
)

// DailyProgress reports today's earned points against the configured goal.
// When the goal is disabled, GoalPercent stays 0 and Achieved stays false.
func DailyProgress(ledger model.Ledger, today time.Time) model.GoalProgress {
	progress := model.GoalProgress{TodayPoints: todayPoints(ledger, today)}
	if !ledger.DailyGoalEnabled || ledger.DailyGoal <= 0 {
		return progress
	}

	pct := int(math.Round(float64(progress.TodayPoints) / float64(ledger.DailyGoal) * 100))
	if pct > 100 {
		pct = 100
	}
	progress.GoalPercent = pct
	progress.Achieved = progress.TodayPoints >= ledger.DailyGoal
	return progress
}

// todayPoints sums today's completion records; for ledgers with no same-day
// records it falls back to earned history entries dated today, so progress
// survives an administrative reset of the ephemeral records.
func todayPoints(ledger model.Ledger, today time.Time) int {
	day := DateOf(today)

	if len(ledger.TodayCompleted) > 0 {
		sum := 0
		for _, rec := range ledger.TodayCompleted {
			if rec.Date == day {
				sum += rec.Points
			}
		}
		return sum
	}

	sum := 0
	for _, e := range ledger.History {
		if e.Type == model.EntryEarned && e.Date == day {
			sum += e.Points
		}
	}
	return sum
}
