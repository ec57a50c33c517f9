package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/tally/internal/model"
	"github.com/dukerupert/tally/internal/store"
	"github.com/dukerupert/tally/internal/websocket"
)

// Recommended bounds for the daily goal.
const (
	minDailyGoal = 5
	maxDailyGoal = 100
)

type SettingsHandler struct {
	settings *store.SettingsStore
	members  *store.FamilyMemberStore
	ledgers  *store.LedgerStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewSettingsHandler(settings *store.SettingsStore, members *store.FamilyMemberStore, ledgers *store.LedgerStore, hub *websocket.Hub, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, members: members, ledgers: ledgers, hub: hub, logger: logger}
}

func (h *SettingsHandler) GetPoints(w http.ResponseWriter, r *http.Request) {
	ps, err := h.settings.GetPointsSettings()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *SettingsHandler) UpdatePoints(w http.ResponseWriter, r *http.Request) {
	var req model.PointsSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.DailyGoal < minDailyGoal || req.DailyGoal > maxDailyGoal {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "daily_goal must be between 5 and 100"})
		return
	}
	if req.KidTaskPoints < 0 || req.TeenTaskPoints < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "task points must be >= 0"})
		return
	}

	if err := h.settings.SetPointsSettings(req); err != nil {
		h.logger.Error("save points settings", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save settings"})
		return
	}

	// Propagate the goal to every stored ledger so in-flight days evaluate
	// against the new target.
	if err := h.propagateGoal(req); err != nil {
		h.logger.Error("propagate daily goal", "error", err)
	}

	if h.hub != nil {
		h.hub.Broadcast(websocket.NewMessage("settings", "updated", 0, nil))
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *SettingsHandler) propagateGoal(ps model.PointsSettings) error {
	members, err := h.members.List()
	if err != nil {
		return err
	}
	for _, m := range members {
		ledger, err := h.ledgers.Read(m.ID)
		if err != nil {
			return err
		}
		if ledger == nil {
			continue
		}
		ledger.DailyGoal = ps.DailyGoal
		ledger.DailyGoalEnabled = ps.DailyGoalEnabled
		if err := h.ledgers.Write(m.ID, *ledger); err != nil {
			return err
		}
	}
	return nil
}
