package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	poolerrors "chorepool/contexts/household-coordination/pool-service/domain/errors"
	poolhttp "chorepool/contexts/household-coordination/pool-service/transport/http"
)

func writePoolError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, poolhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writePoolDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poolerrors.ErrInvalidInput):
		writePoolError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, poolerrors.ErrPoolNotFound):
		writePoolError(w, http.StatusNotFound, "pool_not_found", err.Error())
	case errors.Is(err, poolerrors.ErrInviteCodeNotFound):
		writePoolError(w, http.StatusNotFound, "invite_code_not_found", err.Error())
	case errors.Is(err, poolerrors.ErrNotMember):
		writePoolError(w, http.StatusConflict, "not_member", err.Error())
	case errors.Is(err, poolerrors.ErrNotAdmin):
		writePoolError(w, http.StatusForbidden, "not_admin", err.Error())
	default:
		writePoolError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handlePoolCreate(w http.ResponseWriter, r *http.Request) {
	var req poolhttp.CreatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePoolError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.pools.Handler.CreatePoolHandler(r.Context(), req)
	if err != nil {
		writePoolDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handlePoolJoin(w http.ResponseWriter, r *http.Request) {
	var req poolhttp.JoinPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePoolError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.pools.Handler.JoinPoolHandler(r.Context(), req)
	if err != nil {
		writePoolDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePoolGet(w http.ResponseWriter, r *http.Request) {
	resp, err := s.pools.Handler.GetPoolHandler(r.Context(), r.PathValue("pool_id"))
	if err != nil {
		writePoolDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePoolLeave(w http.ResponseWriter, r *http.Request) {
	var req poolhttp.LeavePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePoolError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.pools.Handler.LeavePoolHandler(r.Context(), r.PathValue("pool_id"), req)
	if err != nil {
		writePoolDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePoolRegenerateInviteCode(w http.ResponseWriter, r *http.Request) {
	var req poolhttp.RegenerateInviteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePoolError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.pools.Handler.RegenerateInviteCodeHandler(r.Context(), r.PathValue("pool_id"), req)
	if err != nil {
		writePoolDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePoolListMembers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.pools.Handler.ListMembersHandler(r.Context(), r.PathValue("pool_id"))
	if err != nil {
		writePoolDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
