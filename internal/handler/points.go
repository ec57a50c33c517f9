package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/tally/internal/engine"
	"github.com/dukerupert/tally/internal/metrics"
	"github.com/dukerupert/tally/internal/model"
	"github.com/dukerupert/tally/internal/store"
	"github.com/dukerupert/tally/internal/websocket"
)

type PointsHandler struct {
	members  *store.FamilyMemberStore
	ledgers  *store.LedgerStore
	settings *store.SettingsStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewPointsHandler(members *store.FamilyMemberStore, ledgers *store.LedgerStore, settings *store.SettingsStore, hub *websocket.Hub, logger *slog.Logger) *PointsHandler {
	return &PointsHandler{members: members, ledgers: ledgers, settings: settings, hub: hub, logger: logger}
}

func (h *PointsHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// now returns the current instant in the household timezone. All day
// boundaries (streaks, caps, goals) follow this clock.
func (h *PointsHandler) now() time.Time {
	return time.Now().In(h.settings.Timezone())
}

// memberAndLedger resolves the member and loads their ledger, seeding the
// default catalog on first access. Returns nil member if not found (the
// handler has already written the response in that case).
func (h *PointsHandler) memberAndLedger(w http.ResponseWriter, r *http.Request) (*model.FamilyMember, model.Ledger, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return nil, model.Ledger{}, false
	}

	member, err := h.members.GetByID(id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get family member"})
		return nil, model.Ledger{}, false
	}
	if member == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "family member not found"})
		return nil, model.Ledger{}, false
	}

	ledger, err := h.ledgers.Read(member.ID)
	if err != nil {
		h.logger.Error("read ledger", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load ledger"})
		return nil, model.Ledger{}, false
	}
	if ledger == nil {
		seeded := engine.NewLedger(h.now())
		if ps, err := h.settings.GetPointsSettings(); err == nil {
			seeded.DailyGoal = ps.DailyGoal
			seeded.DailyGoalEnabled = ps.DailyGoalEnabled
		}
		if err := h.ledgers.Write(member.ID, seeded); err != nil {
			h.logger.Error("seed ledger", "member_id", member.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to initialize ledger"})
			return nil, model.Ledger{}, false
		}
		return member, seeded, true
	}
	return member, *ledger, true
}

// summary is the full derived state a UI surface needs for one member.
type summary struct {
	Balance        int                      `json:"balance"`
	LifetimeXP     int                      `json:"lifetime_xp"`
	Streak         int                      `json:"streak"`
	Progression    model.Progression        `json:"progression"`
	Goal           model.GoalProgress       `json:"goal"`
	TodayCompleted []model.CompletionRecord `json:"today_completed"`
	History        []model.HistoryEntry     `json:"history"`
}

func (h *PointsHandler) summarize(member *model.FamilyMember, ledger model.Ledger, now time.Time) summary {
	return summary{
		Balance:        ledger.Balance,
		LifetimeXP:     ledger.LifetimeXP,
		Streak:         engine.Streak(ledger.History, now),
		Progression:    engine.Level(ledger.LifetimeXP, member.RankTrack),
		Goal:           engine.DailyProgress(ledger, now),
		TodayCompleted: ledger.TodayCompleted,
		History:        ledger.History,
	}
}

// Summary returns balance, streak, progression, and goal state for display.
func (h *PointsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.memberAndLedger(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.summarize(member, ledger, h.now()))
}

type completeRequest struct {
	ActivityID string `json:"activity_id"`
}

type completeResponse struct {
	Result  model.CompletionResult `json:"result"`
	Summary summary                `json:"summary"`
}

func (h *PointsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.memberAndLedger(w, r)
	if !ok {
		return
	}

	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.ActivityID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "activity_id is required"})
		return
	}

	now := h.now()
	next, result, err := engine.Complete(ledger, req.ActivityID, now)
	if errors.Is(err, engine.ErrActivityNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "activity not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to complete activity"})
		return
	}

	if result.CapReached {
		// Refused no-op: nothing to persist, the UI disables the control.
		metrics.CompletionsRefused.Inc()
		writeJSON(w, http.StatusOK, completeResponse{
			Result:  result,
			Summary: h.summarize(member, ledger, now),
		})
		return
	}

	if err := h.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist completion", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save ledger"})
		return
	}

	category := model.CategoryCustom
	for _, a := range next.Activities {
		if a.ID == req.ActivityID {
			category = a.Category
			break
		}
	}
	metrics.CompletionsTotal.WithLabelValues(category).Inc()
	metrics.PointsEarned.Add(float64(result.Awarded))
	if result.LeveledUp {
		metrics.LevelUps.Inc()
	}
	if result.GoalJustAchieved {
		metrics.DailyGoalsHit.Inc()
	}

	h.broadcast(websocket.NewMessage("points", "completed", member.ID, map[string]any{
		"awarded":            result.Awarded,
		"goal_just_achieved": result.GoalJustAchieved,
		"leveled_up":         result.LeveledUp,
	}))

	writeJSON(w, http.StatusOK, completeResponse{
		Result:  result,
		Summary: h.summarize(member, next, now),
	})
}

type adjustRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

func (h *PointsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.memberAndLedger(w, r)
	if !ok {
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		req.Reason = "Manual adjustment"
	}

	now := h.now()
	next, err := engine.Adjust(ledger, req.Amount, req.Reason, now)
	if errors.Is(err, engine.ErrInvalidAmount) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount must be non-zero"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to adjust balance"})
		return
	}

	if err := h.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist adjustment", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save ledger"})
		return
	}

	if req.Amount > 0 {
		metrics.PointsEarned.Add(float64(req.Amount))
	}

	h.broadcast(websocket.NewMessage("points", "adjusted", member.ID, map[string]any{
		"amount": req.Amount,
	}))

	writeJSON(w, http.StatusOK, h.summarize(member, next, now))
}

type spendRequest struct {
	Cost  int    `json:"cost"`
	Label string `json:"label"`
}

func (h *PointsHandler) Spend(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.memberAndLedger(w, r)
	if !ok {
		return
	}

	var req spendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		req.Label = "Reward"
	}

	now := h.now()
	next, err := engine.Spend(ledger, req.Cost, req.Label, now)
	if errors.Is(err, engine.ErrInvalidAmount) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cost must be positive"})
		return
	}
	if errors.Is(err, engine.ErrInsufficientBalance) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "insufficient balance"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to spend points"})
		return
	}

	if err := h.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist spend", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save ledger"})
		return
	}

	metrics.PointsSpent.Add(float64(req.Cost))

	h.broadcast(websocket.NewMessage("points", "spent", member.ID, map[string]any{
		"cost": req.Cost,
	}))

	writeJSON(w, http.StatusOK, h.summarize(member, next, now))
}

// ResetToday clears today's completion records so caps reopen. Balance and
// history are untouched.
func (h *PointsHandler) ResetToday(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.memberAndLedger(w, r)
	if !ok {
		return
	}

	now := h.now()
	next := engine.ResetToday(ledger, now)
	if err := h.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist reset", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save ledger"})
		return
	}

	h.broadcast(websocket.NewMessage("points", "reset", member.ID, nil))

	writeJSON(w, http.StatusOK, h.summarize(member, next, now))
}
