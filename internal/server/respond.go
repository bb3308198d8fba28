package server

import (
	"encoding/json"
	"net/http"

	"github.com/ElangBogopa/time-logger-sub000/internal/errors"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON writes v as application/json with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorBody{
		Error:     message,
		Code:      code,
		RequestID: logging.RequestID(r.Context()),
	})
}

// respondError maps an application error onto status, code and user message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.ShouldLogError(err) {
		s.log.Error().
			Err(err).
			Str("request_id", logging.RequestID(r.Context())).
			Msg("request failed")
	}
	writeError(w, r, errors.HTTPStatus(err), errors.GetErrorCode(err), errors.GetUserMessage(err))
}
