package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/couchcryptid/impact-effects-service/internal/domain"
	"github.com/couchcryptid/impact-effects-service/internal/service"
)

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	defer s.observe("simulate", time.Now())

	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.clientError(w, "simulate", "invalid JSON body: "+err.Error())
		return
	}

	resp := s.svc.Simulate(r.Context(), req)
	s.metrics.RequestsTotal.WithLabelValues("simulate", "ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	defer s.observe("story", time.Now())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.clientError(w, "story", "read body: "+err.Error())
		return
	}

	story, err := s.svc.Story(body)
	if err != nil {
		s.clientError(w, "story", err.Error())
		return
	}

	s.metrics.RequestsTotal.WithLabelValues("story", "ok").Inc()
	writeJSON(w, http.StatusOK, map[string]string{"story": story})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	defer s.observe("save", time.Now())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.clientError(w, "save", "read body: "+err.Error())
		return
	}

	key, err := s.svc.Save(r.Context(), body)
	switch {
	case errors.Is(err, service.ErrBadPayload):
		s.clientError(w, "save", err.Error())
		return
	case errors.Is(err, service.ErrSavingDisabled):
		s.metrics.RequestsTotal.WithLabelValues("save", "unavailable").Inc()
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	case err != nil:
		s.logger.Error("record save failed", "error", err)
		s.metrics.RequestsTotal.WithLabelValues("save", "server_error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.metrics.RequestsTotal.WithLabelValues("save", "ok").Inc()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "key": key})
}

func (s *Server) clientError(w http.ResponseWriter, route, msg string) {
	s.metrics.RequestsTotal.WithLabelValues(route, "client_error").Inc()
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func (s *Server) observe(route string, start time.Time) {
	s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}
