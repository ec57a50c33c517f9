package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dukerupert/tally/internal/handler"
	"github.com/dukerupert/tally/internal/middleware"
	"github.com/dukerupert/tally/internal/store"
	ws "github.com/dukerupert/tally/internal/websocket"
)

type Server struct {
	db        *sql.DB
	hub       *ws.Hub
	memberH   *handler.FamilyMemberHandler
	pointsH   *handler.PointsHandler
	activityH *handler.ActivityHandler
	settingsH *handler.SettingsHandler
	logger    *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	memberStore := store.NewFamilyMemberStore(db)
	ledgerStore := store.NewLedgerStore(db)
	settingsStore := store.NewSettingsStore(db)

	pointsH := handler.NewPointsHandler(memberStore, ledgerStore, settingsStore, hub, logger.With("component", "points"))

	return &Server{
		db:        db,
		hub:       hub,
		memberH:   handler.NewFamilyMemberHandler(memberStore, hub, logger.With("component", "family_member")),
		pointsH:   pointsH,
		activityH: handler.NewActivityHandler(pointsH, hub, logger.With("component", "activity")),
		settingsH: handler.NewSettingsHandler(settingsStore, memberStore, ledgerStore, hub, logger.With("component", "settings")),
		logger:    logger,
	}
}

// Hub returns the broadcast hub, mainly for tests.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Family member API routes
	mux.HandleFunc("GET /api/members", s.memberH.List)
	mux.HandleFunc("POST /api/members", s.memberH.Create)
	mux.HandleFunc("PUT /api/members/{id}", s.memberH.Update)
	mux.HandleFunc("DELETE /api/members/{id}", s.memberH.Delete)
	mux.HandleFunc("PUT /api/members/sort", s.memberH.UpdateSortOrder)

	// Activity catalog API routes
	mux.HandleFunc("GET /api/members/{id}/activities", s.activityH.List)
	mux.HandleFunc("POST /api/members/{id}/activities", s.activityH.Create)
	mux.HandleFunc("PUT /api/members/{id}/activities/{activity_id}", s.activityH.Update)
	mux.HandleFunc("DELETE /api/members/{id}/activities/{activity_id}", s.activityH.Delete)

	// Points API routes
	mux.HandleFunc("GET /api/members/{id}/points", s.pointsH.Summary)
	mux.HandleFunc("POST /api/members/{id}/complete", s.pointsH.Complete)
	mux.HandleFunc("POST /api/members/{id}/adjust", s.pointsH.Adjust)
	mux.HandleFunc("POST /api/members/{id}/spend", s.pointsH.Spend)
	mux.HandleFunc("POST /api/members/{id}/reset-today", s.pointsH.ResetToday)

	// Settings API routes
	mux.HandleFunc("GET /api/settings/points", s.settingsH.GetPoints)
	mux.HandleFunc("PUT /api/settings/points", s.settingsH.UpdatePoints)

	// Real-time sync + operational endpoints
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
