package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	scoringengine "chorepool/contexts/community-experience/scoring-engine"
	poolservice "chorepool/contexts/household-coordination/pool-service"
	requestservice "chorepool/contexts/household-coordination/request-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "chorepool/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	scoring  scoringengine.Module
	requests requestservice.Module
	pools    poolservice.Module
}

func New(
	scoring scoringengine.Module,
	requests requestservice.Module,
	pools poolservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		scoring:  scoring,
		requests: requests,
		pools:    pools,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/scoring/v1/pools/{pool_id}/users/{user_id}/stats", s.handleScoringGetStats)
	s.mux.HandleFunc("POST /api/scoring/v1/pools/{pool_id}/users/{user_id}/points", s.handleScoringAddPoints)
	s.mux.HandleFunc("POST /api/scoring/v1/pools/{pool_id}/users/{user_id}/achievements/{achievement_id}/unlock", s.handleScoringUnlockAchievement)
	s.mux.HandleFunc("GET /api/scoring/v1/pools/{pool_id}/leaderboard", s.handleScoringLeaderboard)
	s.mux.HandleFunc("GET /api/scoring/v1/achievements", s.handleScoringListAchievements)
	s.mux.HandleFunc("GET /api/scoring/v1/levels", s.handleScoringListLevels)
	s.mux.HandleFunc("GET /api/scoring/v1/levels/from-points", s.handleScoringLevelFromPoints)

	s.mux.HandleFunc("POST /api/requests/v1/requests", s.handleRequestPost)
	s.mux.HandleFunc("GET /api/requests/v1/requests/{request_id}", s.handleRequestGet)
	s.mux.HandleFunc("POST /api/requests/v1/requests/{request_id}/claim", s.handleRequestClaim)
	s.mux.HandleFunc("POST /api/requests/v1/requests/{request_id}/complete", s.handleRequestComplete)
	s.mux.HandleFunc("GET /api/requests/v1/pools/{pool_id}/requests", s.handleRequestListByPool)
	s.mux.HandleFunc("GET /api/requests/v1/pools/{pool_id}/notifications", s.handleRequestListNotifications)
	s.mux.HandleFunc("POST /api/requests/v1/notifications/{notification_id}/read", s.handleRequestMarkNotificationRead)

	s.mux.HandleFunc("POST /api/pools/v1/pools", s.handlePoolCreate)
	s.mux.HandleFunc("POST /api/pools/v1/pools/join", s.handlePoolJoin)
	s.mux.HandleFunc("GET /api/pools/v1/pools/{pool_id}", s.handlePoolGet)
	s.mux.HandleFunc("POST /api/pools/v1/pools/{pool_id}/leave", s.handlePoolLeave)
	s.mux.HandleFunc("POST /api/pools/v1/pools/{pool_id}/invite-code/regenerate", s.handlePoolRegenerateInviteCode)
	s.mux.HandleFunc("GET /api/pools/v1/pools/{pool_id}/members", s.handlePoolListMembers)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
