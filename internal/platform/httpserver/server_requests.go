package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	requesterrors "chorepool/contexts/household-coordination/request-service/domain/errors"
	requesthttp "chorepool/contexts/household-coordination/request-service/transport/http"
)

func writeRequestError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, requesthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeRequestDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, requesterrors.ErrInvalidInput):
		writeRequestError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, requesterrors.ErrRequestNotFound):
		writeRequestError(w, http.StatusNotFound, "request_not_found", err.Error())
	case errors.Is(err, requesterrors.ErrNotificationNotFound):
		writeRequestError(w, http.StatusNotFound, "notification_not_found", err.Error())
	case errors.Is(err, requesterrors.ErrInvalidTransition):
		writeRequestError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, requesterrors.ErrNotClaimer):
		writeRequestError(w, http.StatusForbidden, "not_claimer", err.Error())
	default:
		writeRequestError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRequestPost(w http.ResponseWriter, r *http.Request) {
	var req requesthttp.PostRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.requests.Handler.PostRequestHandler(r.Context(), req)
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRequestGet(w http.ResponseWriter, r *http.Request) {
	resp, err := s.requests.Handler.GetRequestHandler(r.Context(), r.PathValue("request_id"))
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRequestClaim(w http.ResponseWriter, r *http.Request) {
	var req requesthttp.ClaimRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.requests.Handler.ClaimRequestHandler(r.Context(), r.PathValue("request_id"), req)
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRequestComplete(w http.ResponseWriter, r *http.Request) {
	var req requesthttp.CompleteRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.requests.Handler.CompleteRequestHandler(r.Context(), r.PathValue("request_id"), req)
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRequestListByPool(w http.ResponseWriter, r *http.Request) {
	resp, err := s.requests.Handler.ListPoolRequestsHandler(
		r.Context(),
		r.PathValue("pool_id"),
		r.URL.Query().Get("status"),
	)
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRequestListNotifications(w http.ResponseWriter, r *http.Request) {
	resp, err := s.requests.Handler.ListNotificationsHandler(r.Context(), r.PathValue("pool_id"))
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRequestMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	resp, err := s.requests.Handler.MarkNotificationReadHandler(r.Context(), r.PathValue("notification_id"))
	if err != nil {
		writeRequestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
