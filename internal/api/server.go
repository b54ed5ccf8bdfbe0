// internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aaronwald/indexstats/internal/summary"
	"github.com/aaronwald/indexstats/internal/types"
)

// Summarizer answers the summary queries exposed over HTTP
type Summarizer interface {
	GetIndexSummary(ctx context.Context) (summary.IndexSummary, error)
	GetTierSummary(ctx context.Context, tier string) (types.ClusterTierSummary, error)
}

type Server struct {
	summarizer Summarizer
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	mux        *http.ServeMux
}

// NewServer wires routes. gatherer backs /metrics; nil uses the default registry.
func NewServer(summarizer Summarizer, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		summarizer: summarizer,
		gatherer:   gatherer,
		logger:     logger,
		mux:        http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /indices", s.handleIndices)
	s.mux.HandleFunc("GET /tier", s.handleTier)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withRequestLogging(s.mux).ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
