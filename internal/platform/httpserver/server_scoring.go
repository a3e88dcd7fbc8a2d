package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	scoringerrors "chorepool/contexts/community-experience/scoring-engine/domain/errors"
	scoringhttp "chorepool/contexts/community-experience/scoring-engine/transport/http"
)

func writeScoringError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, scoringhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeScoringDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoringerrors.ErrInvalidInput):
		writeScoringError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeScoringError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleScoringGetStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scoring.Handler.GetStatsHandler(r.Context(), r.PathValue("user_id"), r.PathValue("pool_id"))
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScoringAddPoints(w http.ResponseWriter, r *http.Request) {
	var req scoringhttp.AddPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeScoringError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.scoring.Handler.AddPointsHandler(r.Context(), r.PathValue("user_id"), r.PathValue("pool_id"), req)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScoringUnlockAchievement(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scoring.Handler.UnlockAchievementHandler(
		r.Context(),
		r.PathValue("user_id"),
		r.PathValue("pool_id"),
		r.PathValue("achievement_id"),
	)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleScoringLeaderboard joins member display names onto the ranked entries
// so clients can render names without a second round trip.
func (s *Server) handleScoringLeaderboard(w http.ResponseWriter, r *http.Request) {
	poolID := r.PathValue("pool_id")
	resp, err := s.scoring.Handler.LeaderboardHandler(r.Context(), poolID)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}

	names, err := s.pools.Service.MemberDisplayNames(r.Context(), poolID)
	if err == nil {
		for i := range resp.Data {
			resp.Data[i].UserName = names[resp.Data[i].UserID]
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScoringListAchievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.scoring.Handler.ListAchievementsHandler(r.Context()))
}

func (s *Server) handleScoringListLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.scoring.Handler.ListLevelsHandler(r.Context()))
}

func (s *Server) handleScoringLevelFromPoints(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("points"))
	points, err := strconv.Atoi(raw)
	if err != nil {
		writeScoringError(w, http.StatusBadRequest, "invalid_points", "points must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, s.scoring.Handler.LevelFromPointsHandler(r.Context(), points))
}
