// Package engine implements the gamification ledger rules: point awards
// with streak bonuses, per-day repetition caps, daily-goal transitions,
// streak computation, and level/rank derivation from lifetime XP.
//
// Every operation takes a ledger snapshot plus an explicit clock value and
// returns a new snapshot; the input is never mutated. The engine performs
// no locking and assumes a single writer per member. If two callers race
// on the same member, whichever snapshot is persisted last wins and the
// other completion is lost; that is an accepted property of the hosting
// model, not something the engine guards against.
package engine

import (
	"errors"
	"time"

	"github.com/dukerupert/tally/internal/model"
)

var (
	// ErrActivityNotFound is returned when an activity id has no matching
	// catalog definition. The ledger is left untouched.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrInvalidAmount is returned for balance edits with zero magnitude.
	ErrInvalidAmount = errors.New("amount must be non-zero")

	// ErrInsufficientBalance is returned when a spend exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// DateLayout is the local calendar date format used for day identity.
// Streak and cap logic compare these strings, never UTC instants, so
// behavior near midnight follows the member's wall clock.
const DateLayout = "2006-01-02"

// DateOf returns the local calendar date string for t.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// cloneLedger returns a deep-enough copy: all slices are duplicated so
// appends and trims on the result cannot alias the input snapshot.
func cloneLedger(l model.Ledger) model.Ledger {
	next := l
	next.Activities = append([]model.Activity(nil), l.Activities...)
	next.TodayCompleted = append([]model.CompletionRecord(nil), l.TodayCompleted...)
	next.History = append([]model.HistoryEntry(nil), l.History...)
	return next
}

// prependHistory puts e at the front of the ledger's history and trims to
// the retention limit.
func prependHistory(l *model.Ledger, e model.HistoryEntry) {
	l.History = append([]model.HistoryEntry{e}, l.History...)
	if len(l.History) > model.HistoryLimit {
		l.History = l.History[:model.HistoryLimit]
	}
}
