package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/tally/internal/model"
)

// Complete records one completion of an activity as a single atomic
// transition over the ledger snapshot.
//
// It enforces the activity's per-day cap (a refused attempt returns the
// unchanged ledger with CapReached set, not an error), applies the streak
// bonus tier to the base points, appends the completion record and history
// entry, credits the balance and lifetime XP, and reports whether this
// completion crossed the daily goal.
func Complete(ledger model.Ledger, activityID string, now time.Time) (model.Ledger, model.CompletionResult, error) {
	var activity *model.Activity
	for i := range ledger.Activities {
		if ledger.Activities[i].ID == activityID {
			activity = &ledger.Activities[i]
			break
		}
	}
	if activity == nil {
		return ledger, model.CompletionResult{}, ErrActivityNotFound
	}

	day := DateOf(now)
	maxPerDay := activity.MaxPerDay
	if maxPerDay < 1 {
		maxPerDay = 1
	}

	doneToday := 0
	for _, rec := range ledger.TodayCompleted {
		if rec.ActivityID == activityID && rec.Date == day {
			doneToday++
		}
	}
	if doneToday >= maxPerDay {
		return ledger, model.CompletionResult{CapReached: true, Streak: Streak(ledger.History, now)}, nil
	}

	streak := Streak(ledger.History, now)
	awarded := int(math.Round(float64(activity.Points) * BonusMultiplier(streak)))
	bonus := awarded - activity.Points

	before := DailyProgress(ledger, now)
	previousLevel := LevelForXP(ledger.LifetimeXP)

	next := cloneLedger(ledger)
	next.TodayCompleted = append(next.TodayCompleted, model.CompletionRecord{
		ActivityID:  activityID,
		Date:        day,
		Points:      awarded,
		BasePoints:  activity.Points,
		Bonus:       bonus,
		CompletedAt: now,
	})
	prependHistory(&next, model.HistoryEntry{
		ID:           uuid.NewString(),
		ActivityID:   activityID,
		ActivityName: activity.Name,
		ActivityIcon: activity.Icon,
		Date:         day,
		CompletedAt:  now,
		Points:       awarded,
		BasePoints:   activity.Points,
		Bonus:        bonus,
		Type:         model.EntryEarned,
	})
	next.Balance += awarded
	next.LifetimeXP += awarded

	after := DailyProgress(next, now)
	level := LevelForXP(next.LifetimeXP)

	result := model.CompletionResult{
		Awarded:    awarded,
		BasePoints: activity.Points,
		Bonus:      bonus,
		Streak:     streak,
		GoalJustAchieved: ledger.DailyGoalEnabled && ledger.DailyGoal > 0 &&
			before.TodayPoints < ledger.DailyGoal && after.TodayPoints >= ledger.DailyGoal,
		Level:     level,
		LeveledUp: level > previousLevel,
	}
	return next, result, nil
}

// ResetToday clears today's completion records without touching balance or
// history. Administrative do-over: caps reset, earned points stay earned.
func ResetToday(ledger model.Ledger, today time.Time) model.Ledger {
	day := DateOf(today)
	next := cloneLedger(ledger)
	kept := next.TodayCompleted[:0]
	for _, rec := range next.TodayCompleted {
		if rec.Date != day {
			kept = append(kept, rec)
		}
	}
	next.TodayCompleted = kept
	return next
}
