package engine

import (
	"testing"

	"github.com/dukerupert/tally/internal/model"
)

func TestDailyProgressFromRecords(t *testing.T) {
	ledger := testLedger()
	ledger.TodayCompleted = []model.CompletionRecord{
		{ActivityID: "a1", Date: DateOf(testToday), Points: 8},
		{ActivityID: "a2", Date: DateOf(testToday), Points: 4},
		{ActivityID: "a3", Date: DateOf(testToday.AddDate(0, 0, -1)), Points: 50}, // stale, ignored
	}

	got := DailyProgress(ledger, testToday)
	if got.TodayPoints != 12 {
		t.Errorf("today points = %d, want 12", got.TodayPoints)
	}
	if got.GoalPercent != 60 {
		t.Errorf("goal percent = %d, want 60", got.GoalPercent)
	}
	if got.Achieved {
		t.Error("achieved at 12/20")
	}
}

func TestDailyProgressHistoryFallback(t *testing.T) {
	// No same-day records (e.g. after a reset-today migration): earned
	// history entries dated today still count.
	ledger := testLedger()
	ledger.History = []model.HistoryEntry{
		{Date: DateOf(testToday), Points: 15, Type: model.EntryEarned},
		{Date: DateOf(testToday), Points: 10, Type: model.EntrySpent}, // not earned
		{Date: DateOf(testToday.AddDate(0, 0, -1)), Points: 9, Type: model.EntryEarned},
	}

	got := DailyProgress(ledger, testToday)
	if got.TodayPoints != 15 {
		t.Errorf("today points = %d, want 15", got.TodayPoints)
	}
}

func TestDailyProgressAchievedAndClamped(t *testing.T) {
	ledger := testLedger()
	ledger.TodayCompleted = []model.CompletionRecord{
		{Date: DateOf(testToday), Points: 50},
	}

	got := DailyProgress(ledger, testToday)
	if !got.Achieved {
		t.Error("not achieved at 50/20")
	}
	if got.GoalPercent != 100 {
		t.Errorf("goal percent = %d, want 100 (clamped)", got.GoalPercent)
	}
}

func TestDailyProgressDisabled(t *testing.T) {
	ledger := testLedger()
	ledger.DailyGoalEnabled = false
	ledger.TodayCompleted = []model.CompletionRecord{
		{Date: DateOf(testToday), Points: 50},
	}

	got := DailyProgress(ledger, testToday)
	if got.TodayPoints != 50 {
		t.Errorf("today points = %d, want 50", got.TodayPoints)
	}
	if got.GoalPercent != 0 || got.Achieved {
		t.Errorf("disabled goal reported percent %d, achieved %v", got.GoalPercent, got.Achieved)
	}
}

func TestDailyProgressRounding(t *testing.T) {
	ledger := testLedger() // goal 20
	ledger.TodayCompleted = []model.CompletionRecord{
		{Date: DateOf(testToday), Points: 3},
	}
	// 3/20 = 15%
	if got := DailyProgress(ledger, testToday).GoalPercent; got != 15 {
		t.Errorf("goal percent = %d, want 15", got)
	}
}

func TestNormalizeRepairsLegacyLedger(t *testing.T) {
	l := model.Ledger{
		History: []model.HistoryEntry{
			{Points: 30, Type: model.EntryEarned},
			{Points: 10, Type: model.EntrySpent},
			{Points: 12, Type: model.EntryEarned},
		},
	}
	l.Normalize()

	if l.Activities == nil || l.TodayCompleted == nil {
		t.Error("nil slices not repaired")
	}
	if l.DailyGoal != model.DefaultDailyGoal {
		t.Errorf("daily goal = %d, want %d", l.DailyGoal, model.DefaultDailyGoal)
	}
	if l.LifetimeXP != 42 {
		t.Errorf("lifetime xp backfill = %d, want 42", l.LifetimeXP)
	}
}

func TestNewLedgerSeedCatalog(t *testing.T) {
	l := NewLedger(testToday)
	if len(l.Activities) == 0 {
		t.Fatal("seed catalog is empty")
	}
	categories := map[string]bool{}
	ids := map[string]bool{}
	for _, a := range l.Activities {
		categories[a.Category] = true
		if ids[a.ID] {
			t.Errorf("duplicate activity id %q", a.ID)
		}
		ids[a.ID] = true
		if a.Points < 0 {
			t.Errorf("activity %q has negative points", a.Name)
		}
		if a.MaxPerDay < 1 {
			t.Errorf("activity %q has max per day %d", a.Name, a.MaxPerDay)
		}
	}
	for _, want := range []string{
		model.CategoryHygiene, model.CategoryChores, model.CategorySchool,
		model.CategoryHealth, model.CategoryKindness,
	} {
		if !categories[want] {
			t.Errorf("seed catalog missing category %q", want)
		}
	}
	if l.DailyGoal != model.DefaultDailyGoal || !l.DailyGoalEnabled {
		t.Errorf("goal defaults = %d/%v, want %d/true", l.DailyGoal, l.DailyGoalEnabled, model.DefaultDailyGoal)
	}
}
