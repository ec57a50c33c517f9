package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/tally/internal/model"
)

type seedActivity struct {
	name      string
	points    int
	icon      string
	category  string
	maxPerDay int
}

var seedCatalog = []seedActivity{
	{"Brush teeth", 2, "🪥", model.CategoryHygiene, 2},
	{"Take a shower", 3, "🚿", model.CategoryHygiene, 1},
	{"Get dressed", 1, "👕", model.CategoryHygiene, 1},
	{"Make your bed", 2, "🛏️", model.CategoryChores, 1},
	{"Tidy your room", 5, "🧹", model.CategoryChores, 1},
	{"Take out the trash", 3, "🗑️", model.CategoryChores, 1},
	{"Help with dishes", 4, "🍽️", model.CategoryChores, 1},
	{"Finish homework", 5, "📚", model.CategorySchool, 1},
	{"Read for 20 minutes", 4, "📖", model.CategorySchool, 2},
	{"Practice an instrument", 4, "🎵", model.CategorySchool, 1},
	{"Play outside", 3, "⚽", model.CategoryHealth, 1},
	{"Eat your vegetables", 2, "🥦", model.CategoryHealth, 2},
	{"Drink water", 1, "💧", model.CategoryHealth, 3},
	{"Help a sibling", 4, "💛", model.CategoryKindness, 1},
	{"Say something kind", 2, "😊", model.CategoryKindness, 2},
}

// NewLedger returns an empty ledger seeded with the default activity
// catalog. Called once per member, on first read with no stored ledger.
func NewLedger(now time.Time) model.Ledger {
	activities := make([]model.Activity, 0, len(seedCatalog))
	for _, s := range seedCatalog {
		activities = append(activities, model.Activity{
			ID:        uuid.NewString(),
			Name:      s.name,
			Points:    s.points,
			Icon:      s.icon,
			Category:  s.category,
			MaxPerDay: s.maxPerDay,
			CreatedAt: now,
		})
	}
	return model.Ledger{
		Activities:       activities,
		TodayCompleted:   []model.CompletionRecord{},
		History:          []model.HistoryEntry{},
		DailyGoal:        model.DefaultDailyGoal,
		DailyGoalEnabled: true,
	}
}
