package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dukerupert/tally/internal/model"
)

// Defaults for the household points configuration.
const (
	defaultKidTaskPoints  = 3
	defaultTeenTaskPoints = 5
)

var pointsKeys = []string{
	"points_daily_goal",
	"points_daily_goal_enabled",
	"points_kid_task_points",
	"points_teen_task_points",
}

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *SettingsStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// GetPointsSettings reads the household points configuration, filling in
// defaults for any key that has never been written.
func (s *SettingsStore) GetPointsSettings() (model.PointsSettings, error) {
	ps := model.PointsSettings{
		DailyGoal:        model.DefaultDailyGoal,
		DailyGoalEnabled: true,
		KidTaskPoints:    defaultKidTaskPoints,
		TeenTaskPoints:   defaultTeenTaskPoints,
	}

	for _, key := range pointsKeys {
		value, err := s.Get(key)
		if err != nil {
			return ps, err
		}
		if value == "" {
			continue
		}
		switch key {
		case "points_daily_goal":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				ps.DailyGoal = n
			}
		case "points_daily_goal_enabled":
			ps.DailyGoalEnabled = value == "true"
		case "points_kid_task_points":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				ps.KidTaskPoints = n
			}
		case "points_teen_task_points":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				ps.TeenTaskPoints = n
			}
		}
	}
	return ps, nil
}

func (s *SettingsStore) SetPointsSettings(ps model.PointsSettings) error {
	values := map[string]string{
		"points_daily_goal":         strconv.Itoa(ps.DailyGoal),
		"points_daily_goal_enabled": strconv.FormatBool(ps.DailyGoalEnabled),
		"points_kid_task_points":    strconv.Itoa(ps.KidTaskPoints),
		"points_teen_task_points":   strconv.Itoa(ps.TeenTaskPoints),
	}
	for _, key := range pointsKeys {
		if err := s.Set(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Timezone returns the household timezone for day-boundary math. Falls
// back to the server's local zone when unset or unparseable.
func (s *SettingsStore) Timezone() *time.Location {
	name, err := s.Get("household_timezone")
	if err != nil || name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
