package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/tally/internal/model"
)

// ActivityDef carries the caller-editable fields of a catalog activity.
type ActivityDef struct {
	Name      string
	Points    int
	Icon      string
	Category  string
	MaxPerDay int
	TimeOfDay string
	Required  bool
}

func (d ActivityDef) normalized() ActivityDef {
	if d.MaxPerDay < 1 {
		d.MaxPerDay = 1
	}
	if d.Points < 0 {
		d.Points = 0
	}
	if d.Category == "" {
		d.Category = model.CategoryCustom
	}
	return d
}

// AddActivity appends a new activity to the ledger's catalog and returns
// the new snapshot plus the created definition.
func AddActivity(ledger model.Ledger, def ActivityDef, now time.Time) (model.Ledger, model.Activity) {
	def = def.normalized()
	activity := model.Activity{
		ID:        uuid.NewString(),
		Name:      def.Name,
		Points:    def.Points,
		Icon:      def.Icon,
		Category:  def.Category,
		MaxPerDay: def.MaxPerDay,
		TimeOfDay: def.TimeOfDay,
		Required:  def.Required,
		CreatedAt: now,
	}
	next := cloneLedger(ledger)
	next.Activities = append(next.Activities, activity)
	return next, activity
}

// UpdateActivity replaces the editable fields of an existing activity.
// History entries keep the name and icon they were written with.
func UpdateActivity(ledger model.Ledger, activityID string, def ActivityDef) (model.Ledger, model.Activity, error) {
	def = def.normalized()
	next := cloneLedger(ledger)
	for i := range next.Activities {
		if next.Activities[i].ID != activityID {
			continue
		}
		a := &next.Activities[i]
		a.Name = def.Name
		a.Points = def.Points
		a.Icon = def.Icon
		a.Category = def.Category
		a.MaxPerDay = def.MaxPerDay
		a.TimeOfDay = def.TimeOfDay
		a.Required = def.Required
		return next, *a, nil
	}
	return ledger, model.Activity{}, ErrActivityNotFound
}

// RemoveActivity deletes an activity from the catalog. History referencing
// it is untouched; past completions stay credited.
func RemoveActivity(ledger model.Ledger, activityID string) (model.Ledger, error) {
	next := cloneLedger(ledger)
	for i := range next.Activities {
		if next.Activities[i].ID == activityID {
			next.Activities = append(next.Activities[:i], next.Activities[i+1:]...)
			return next, nil
		}
	}
	return ledger, ErrActivityNotFound
}
