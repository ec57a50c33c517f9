package model

import "time"

type EntryType string

const (
	EntryEarned   EntryType = "earned"
	EntrySpent    EntryType = "spent"
	EntryDeducted EntryType = "deducted"
)

const (
	// DefaultDailyGoal is the per-day point target for new ledgers.
	DefaultDailyGoal = 20

	// HistoryLimit is the number of history entries retained per ledger.
	// Older entries are dropped; the LifetimeXP counter exists so leveling
	// does not depend on this window.
	HistoryLimit = 100
)

// CompletionRecord is an ephemeral same-day marker used to enforce
// per-activity daily caps and to compute goal progress without rescanning
// history. Records for past dates are ignored and dropped on the next write.
type CompletionRecord struct {
	ActivityID  string    `json:"activity_id"`
	Date        string    `json:"date"` // local calendar date, YYYY-MM-DD
	Points      int       `json:"points"`
	BasePoints  int       `json:"base_points"`
	Bonus       int       `json:"bonus"`
	CompletedAt time.Time `json:"completed_at"`
}

// HistoryEntry is a permanent ledger line, newest first.
type HistoryEntry struct {
	ID           string    `json:"id"`
	ActivityID   string    `json:"activity_id,omitempty"`
	ActivityName string    `json:"activity_name"`
	ActivityIcon string    `json:"activity_icon,omitempty"`
	Date         string    `json:"date"` // local calendar date, YYYY-MM-DD
	CompletedAt  time.Time `json:"completed_at"`
	Points       int       `json:"points"`
	BasePoints   int       `json:"base_points"`
	Bonus        int       `json:"bonus"`
	Type         EntryType `json:"type"`
}

// Ledger is the per-member aggregate the engine operates on. Engine
// operations take a snapshot and return a new one; callers persist the
// result. Balance never goes negative.
type Ledger struct {
	Balance          int                `json:"balance"`
	LifetimeXP       int                `json:"lifetime_xp"`
	Activities       []Activity         `json:"activities"`
	TodayCompleted   []CompletionRecord `json:"today_completed"`
	History          []HistoryEntry     `json:"history"`
	DailyGoal        int                `json:"daily_goal"`
	DailyGoalEnabled bool               `json:"daily_goal_enabled"`
}

// Normalize repairs ledgers persisted by older versions: missing slices
// become empty, a zero daily goal falls back to the default, activity caps
// floor at 1, and LifetimeXP is backfilled from retained earned history for
// ledgers that predate the counter. Backfill from a truncated history
// undercounts; that approximation applies only to migrated ledgers.
func (l *Ledger) Normalize() {
	if l.Activities == nil {
		l.Activities = []Activity{}
	}
	if l.TodayCompleted == nil {
		l.TodayCompleted = []CompletionRecord{}
	}
	if l.History == nil {
		l.History = []HistoryEntry{}
	}
	if l.DailyGoal <= 0 {
		l.DailyGoal = DefaultDailyGoal
	}
	for i := range l.Activities {
		if l.Activities[i].MaxPerDay < 1 {
			l.Activities[i].MaxPerDay = 1
		}
	}
	if l.LifetimeXP == 0 {
		for _, e := range l.History {
			if e.Type == EntryEarned {
				l.LifetimeXP += e.Points
			}
		}
	}
}
