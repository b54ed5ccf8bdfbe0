// internal/api/handlers.go
package api

import (
	"errors"
	"net/http"

	"github.com/aaronwald/indexstats/internal/summary"
	"github.com/aaronwald/indexstats/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndices(w http.ResponseWriter, r *http.Request) {
	result, err := s.summarizer.GetIndexSummary(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if result.Indices == nil {
		result.Indices = []types.FamilySummary{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTier(w http.ResponseWriter, r *http.Request) {
	tier := r.URL.Query().Get("tier")

	result, err := s.summarizer.GetTierSummary(r.Context(), tier)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeError maps summary errors to HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, summary.ErrUnknownTier):
		status = http.StatusBadRequest
	case errors.Is(err, summary.ErrProviderUnavailable):
		status = http.StatusBadGateway
		msg = "cluster stats unavailable"
	}

	s.logger.Warn("request failed",
		"path", r.URL.Path,
		"status", status,
		"request_id", requestID(r.Context()),
		"error", err,
	)
	writeJSON(w, status, errorResponse{Error: msg})
}
