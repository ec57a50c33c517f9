package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dukerupert/tally/internal/model"
)

// LedgerKey is the per-member key the points ledger is stored under.
const LedgerKey = "points"

// LedgerStore persists whole-ledger JSON snapshots per member. The engine
// reads and replaces them wholesale; there is no row-level state.
type LedgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// ledgerBlob shadows the daily-goal flag so ledgers persisted before the
// flag existed default to enabled instead of JSON's false.
type ledgerBlob struct {
	model.Ledger
	DailyGoalEnabled *bool `json:"daily_goal_enabled"`
}

// Read returns the member's ledger, or nil if none is stored. Malformed
// blobs with missing fields are repaired on the way out, not rejected; the
// persisted shape has changed over time and old blobs must keep loading.
func (s *LedgerStore) Read(memberID int64) (*model.Ledger, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT value FROM member_ledgers WHERE member_id = ? AND key = ?`,
		memberID, LedgerKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger for member %d: %w", memberID, err)
	}

	var blob ledgerBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, fmt.Errorf("decode ledger for member %d: %w", memberID, err)
	}

	ledger := blob.Ledger
	ledger.DailyGoalEnabled = blob.DailyGoalEnabled == nil || *blob.DailyGoalEnabled
	ledger.Normalize()
	return &ledger, nil
}

// Write replaces the member's stored ledger snapshot. Concurrent writers
// for the same member are last-writer-wins; callers own serialization.
func (s *LedgerStore) Write(memberID int64, ledger model.Ledger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode ledger for member %d: %w", memberID, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO member_ledgers (member_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(member_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		memberID, LedgerKey, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write ledger for member %d: %w", memberID, err)
	}
	return nil
}

// Delete removes the member's stored ledger (administrative full reset).
func (s *LedgerStore) Delete(memberID int64) error {
	_, err := s.db.Exec(
		`DELETE FROM member_ledgers WHERE member_id = ? AND key = ?`,
		memberID, LedgerKey,
	)
	if err != nil {
		return fmt.Errorf("delete ledger for member %d: %w", memberID, err)
	}
	return nil
}
