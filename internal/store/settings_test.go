package store

import (
	"testing"

	"github.com/dukerupert/tally/internal/database"
	"github.com/dukerupert/tally/internal/model"
)

func setupSettingsTestDB(t *testing.T) *SettingsStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSettingsStore(db)
}

func TestPointsSettingsDefaults(t *testing.T) {
	ss := setupSettingsTestDB(t)

	ps, err := ss.GetPointsSettings()
	if err != nil {
		t.Fatalf("get points settings: %v", err)
	}
	if ps.DailyGoal != model.DefaultDailyGoal {
		t.Errorf("daily goal = %d, want %d", ps.DailyGoal, model.DefaultDailyGoal)
	}
	if !ps.DailyGoalEnabled {
		t.Error("daily goal should default to enabled")
	}
	if ps.KidTaskPoints != 3 {
		t.Errorf("kid task points = %d, want 3", ps.KidTaskPoints)
	}
	if ps.TeenTaskPoints != 5 {
		t.Errorf("teen task points = %d, want 5", ps.TeenTaskPoints)
	}
}

func TestPointsSettingsRoundTrip(t *testing.T) {
	ss := setupSettingsTestDB(t)

	want := model.PointsSettings{
		DailyGoal:        35,
		DailyGoalEnabled: false,
		KidTaskPoints:    2,
		TeenTaskPoints:   8,
	}
	if err := ss.SetPointsSettings(want); err != nil {
		t.Fatalf("set points settings: %v", err)
	}

	got, err := ss.GetPointsSettings()
	if err != nil {
		t.Fatalf("get points settings: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSettingsGetUnset(t *testing.T) {
	ss := setupSettingsTestDB(t)

	value, err := ss.Get("nonexistent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "" {
		t.Errorf("value = %q, want empty", value)
	}
}

func TestSettingsUpsert(t *testing.T) {
	ss := setupSettingsTestDB(t)

	if err := ss.Set("household_timezone", "America/New_York"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := ss.Set("household_timezone", "Europe/Berlin"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, err := ss.Get("household_timezone")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "Europe/Berlin" {
		t.Errorf("value = %q, want Europe/Berlin", value)
	}
}
