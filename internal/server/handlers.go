package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ElangBogopa/time-logger-sub000/internal/errors"
	"github.com/ElangBogopa/time-logger-sub000/internal/services"
)

// timeNow is a variable so tests can pin the clock
var timeNow = time.Now

var validate = validator.New()

type parseRequest struct {
	Text        string `json:"text" validate:"required"`
	CurrentTime string `json:"currentTime" validate:"omitempty,datetime=15:04"`
}

type textRequest struct {
	Text string `json:"text" validate:"required"`
}

type logRequest struct {
	Text string `json:"text" validate:"required"`
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, returning an invalid-input error for the caller on failure.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewInvalidInputError("body", nil, "malformed JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return errors.NewInvalidInputError("body", nil, err.Error())
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse interprets activity text without storing anything. An
// optional currentTime ("HH:MM") anchors duration-only text.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	anchor := timeNow()
	if req.CurrentTime != "" {
		var hour, minute int
		fmt.Sscanf(req.CurrentTime, "%d:%d", &hour, &minute)
		anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, minute, 0, 0, anchor.Location())
	}

	parsed, err := s.api.ParseText(r.Context(), req.Text, anchor)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parsed)
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	detections, err := s.api.DetectPatterns(r.Context(), req.Text)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"detections": detections})
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	segments, err := s.api.HighlightSegments(r.Context(), req.Text)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"segments": segments})
}

// handleLogActivity parses the text and stores the entry it describes.
func (s *Server) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	logged, err := s.api.LogActivity(r.Context(), req.Text, timeNow())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, logged)
}

// handleSearchEntries filters entries by the from/to/q/running query params.
func (s *Server) handleSearchEntries(w http.ResponseWriter, r *http.Request) {
	criteria := services.SearchCriteria{
		TextFilter:  r.URL.Query().Get("q"),
		RunningOnly: r.URL.Query().Get("running") == "true",
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from != "" || to != "" {
		window, err := parseWindowParams(from, to)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		criteria.TimeRange = window
	}

	details, err := s.api.SearchEntries(r.Context(), criteria)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": details})
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	entry, err := s.api.GetEntry(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := s.api.DeleteEntry(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSummary reports the daily rollup for ?day=today|yesterday|YYYY-MM-DD.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	day, err := services.ParseDay(r.URL.Query().Get("day"), timeNow())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	summary, err := s.api.DailySummary(r.Context(), day)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// entryID extracts and validates the {id} route parameter.
func entryID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", raw, "must be an integer")
	}
	return id, nil
}

// parseWindowParams builds a time window from RFC3339 from/to values. An
// open side defaults to the epoch or to now.
func parseWindowParams(from, to string) (*services.TimeRange, error) {
	window := &services.TimeRange{
		Start: time.Unix(0, 0),
		End:   timeNow(),
	}

	if from != "" {
		start, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, errors.NewInvalidInputError("from", from, "must be RFC3339")
		}
		window.Start = start
	}
	if to != "" {
		end, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, errors.NewInvalidInputError("to", to, "must be RFC3339")
		}
		window.End = end
	}

	return window, nil
}
