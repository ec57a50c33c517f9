package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/tally/internal/engine"
	"github.com/dukerupert/tally/internal/model"
	"github.com/dukerupert/tally/internal/websocket"
)

// ActivityHandler manages a member's activity catalog. The catalog lives
// inside the ledger snapshot, so every mutation is a read-modify-write of
// the whole ledger.
type ActivityHandler struct {
	points *PointsHandler
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewActivityHandler(points *PointsHandler, hub *websocket.Hub, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{points: points, hub: hub, logger: logger}
}

func (h *ActivityHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type activityRequest struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Icon      string `json:"icon"`
	Category  string `json:"category"`
	MaxPerDay int    `json:"max_per_day"`
	TimeOfDay string `json:"time_of_day"`
	Required  bool   `json:"required"`
}

func (r *activityRequest) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "name is required"
	}
	if r.Points < 0 {
		return "points must be >= 0"
	}
	if r.MaxPerDay < 0 {
		return "max_per_day must be >= 1"
	}
	return ""
}

func (r activityRequest) def() engine.ActivityDef {
	return engine.ActivityDef{
		Name:      r.Name,
		Points:    r.Points,
		Icon:      r.Icon,
		Category:  r.Category,
		MaxPerDay: r.MaxPerDay,
		TimeOfDay: r.TimeOfDay,
		Required:  r.Required,
	}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	_, ledger, ok := h.points.memberAndLedger(w, r)
	if !ok {
		return
	}
	activities := ledger.Activities
	if activities == nil {
		activities = []model.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.points.memberAndLedger(w, r)
	if !ok {
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	next, activity := engine.AddActivity(ledger, req.def(), h.points.now())
	if err := h.points.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist activity create", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save catalog"})
		return
	}

	h.broadcast(websocket.NewMessage("activity", "created", member.ID, map[string]any{"activity_id": activity.ID}))

	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.points.memberAndLedger(w, r)
	if !ok {
		return
	}

	activityID := r.PathValue("activity_id")

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	next, activity, err := engine.UpdateActivity(ledger, activityID, req.def())
	if errors.Is(err, engine.ErrActivityNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "activity not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update activity"})
		return
	}

	if err := h.points.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist activity update", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save catalog"})
		return
	}

	h.broadcast(websocket.NewMessage("activity", "updated", member.ID, map[string]any{"activity_id": activity.ID}))

	writeJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member, ledger, ok := h.points.memberAndLedger(w, r)
	if !ok {
		return
	}

	activityID := r.PathValue("activity_id")

	next, err := engine.RemoveActivity(ledger, activityID)
	if errors.Is(err, engine.ErrActivityNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "activity not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete activity"})
		return
	}

	if err := h.points.ledgers.Write(member.ID, next); err != nil {
		h.logger.Error("persist activity delete", "member_id", member.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save catalog"})
		return
	}

	h.broadcast(websocket.NewMessage("activity", "deleted", member.ID, map[string]any{"activity_id": activityID}))

	w.WriteHeader(http.StatusNoContent)
}
