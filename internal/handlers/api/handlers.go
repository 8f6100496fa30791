package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/KirkDiggler/announcer/internal/services/tracker"
)

// maxBodyBytes caps the update body
const maxBodyBytes = 1 << 16

// updateRequest is the body of POST /. Pointers tell a missing field from a zero value.
type updateRequest struct {
	Name  *string `json:"name"`
	Kills *int64  `json:"kills"`
}

// playerResponse is the body of GET /player
type playerResponse struct {
	Name  string `json:"name"`
	Kills uint16 `json:"kills"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "kills" && strings.HasPrefix(typeErr.Value, "number") {
			writeError(w, http.StatusUnprocessableEntity, tracker.ErrKillsOutOfRange.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	switch {
	case req.Name == nil:
		writeError(w, http.StatusUnprocessableEntity, "missing field: name")
		return
	case req.Kills == nil:
		writeError(w, http.StatusUnprocessableEntity, "missing field: kills")
		return
	}

	_, err := s.tracker.Update(r.Context(), &tracker.UpdateInput{
		RequestID: requestID(r.Context()),
		Name:      *req.Name,
		Kills:     *req.Kills,
	})
	if err != nil {
		s.writeTrackerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	output, err := s.tracker.GetPlayer(r.Context(), &tracker.GetPlayerInput{})
	if err != nil {
		s.writeTrackerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &playerResponse{
		Name:  output.Player.Name,
		Kills: output.Player.Kills,
	})
}

func (s *Server) writeTrackerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case tracker.IsValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		s.logger.Error("update failed",
			"request_id", requestID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
