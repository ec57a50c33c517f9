package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/tally/internal/model"
)

// Adjust applies an administrative balance edit. Positive amounts append an
// earned entry (and count toward lifetime XP and streak like any other
// earned points); negative amounts append a deducted entry and the balance
// floors at zero. The per-activity cap and bonus logic do not apply here.
func Adjust(ledger model.Ledger, amount int, reason string, now time.Time) (model.Ledger, error) {
	if amount == 0 {
		return ledger, ErrInvalidAmount
	}

	next := cloneLedger(ledger)
	next.Balance += amount
	if next.Balance < 0 {
		next.Balance = 0
	}

	points := amount
	entryType := model.EntryEarned
	if amount < 0 {
		points = -amount
		entryType = model.EntryDeducted
	} else {
		next.LifetimeXP += amount
	}

	prependHistory(&next, model.HistoryEntry{
		ID:           uuid.NewString(),
		ActivityName: reason,
		Date:         DateOf(now),
		CompletedAt:  now,
		Points:       points,
		BasePoints:   points,
		Type:         entryType,
	})
	return next, nil
}

// Spend debits the balance for a reward redemption. Spent entries never
// count toward streaks, XP, or the daily goal.
func Spend(ledger model.Ledger, cost int, label string, now time.Time) (model.Ledger, error) {
	if cost <= 0 {
		return ledger, ErrInvalidAmount
	}
	if cost > ledger.Balance {
		return ledger, ErrInsufficientBalance
	}

	next := cloneLedger(ledger)
	next.Balance -= cost
	prependHistory(&next, model.HistoryEntry{
		ID:           uuid.NewString(),
		ActivityName: label,
		Date:         DateOf(now),
		CompletedAt:  now,
		Points:       cost,
		BasePoints:   cost,
		Type:         model.EntrySpent,
	})
	return next, nil
}
