package model

import "time"

// Activity categories used by the seeded catalog. Custom activities may use
// any category string; these are the ones the UI groups by.
const (
	CategoryHygiene  = "hygiene"
	CategoryChores   = "chores"
	CategorySchool   = "school"
	CategoryHealth   = "health"
	CategoryKindness = "kindness"
	CategoryCustom   = "custom"
)

// Activity is a definable, repeatable task a member can complete for points.
// Completed history entries reference it by ID; deleting an activity never
// alters history.
type Activity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	Icon      string    `json:"icon"`
	Category  string    `json:"category"`
	MaxPerDay int       `json:"max_per_day"`
	TimeOfDay string    `json:"time_of_day,omitempty"`
	Required  bool      `json:"required"`
	CreatedAt time.Time `json:"created_at"`
}
