// internal/summary/service.go
package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aaronwald/indexstats/internal/cluster"
	"github.com/aaronwald/indexstats/internal/family"
	"github.com/aaronwald/indexstats/internal/observability"
	"github.com/aaronwald/indexstats/internal/types"
)

// Operation labels used for metrics and logs
const (
	OpIndexSummary = "index_summary"
	OpTierSummary  = "tier_summary"
)

var (
	// ErrProviderUnavailable wraps any failure to fetch cluster data
	ErrProviderUnavailable = errors.New("cluster stats provider unavailable")

	// ErrUnknownTier is returned for a tier filter outside hot/warm
	ErrUnknownTier = errors.New("unknown tier")
)

// IndexSummary is the result of GetIndexSummary
type IndexSummary struct {
	Indices []types.FamilySummary    `json:"indices"`
	Tiers   types.ClusterTierSummary `json:"tiers"`
}

// Service answers summary queries from a fresh provider snapshot per call.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	provider cluster.Provider
	opts     family.Options
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewService creates a service. metrics may be nil.
func NewService(provider cluster.Provider, opts family.Options, metrics *observability.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		opts:     opts,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetIndexSummary returns every family summary plus the cluster tier roll-up
func (s *Service) GetIndexSummary(ctx context.Context) (result IndexSummary, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest(OpIndexSummary, start, err) }()

	families, err := s.aggregate(ctx)
	if err != nil {
		return IndexSummary{}, err
	}

	tiers := family.RollupTiers(families)
	s.metrics.ObserveInventory(families, tiers)

	s.logger.Debug("index summary computed",
		"families", len(families),
		"duration", time.Since(start),
	)
	return IndexSummary{Indices: families, Tiers: tiers}, nil
}

// GetTierSummary returns the cluster tier roll-up. A non-empty tier limits
// the result to that tier.
func (s *Service) GetTierSummary(ctx context.Context, tier string) (result types.ClusterTierSummary, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest(OpTierSummary, start, err) }()

	if tier != "" && !types.IsValidTier(tier) {
		return types.ClusterTierSummary{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	families, err := s.aggregate(ctx)
	if err != nil {
		return types.ClusterTierSummary{}, err
	}

	tiers := family.RollupTiers(families)
	s.metrics.ObserveInventory(families, tiers)
	return tiers.Filter(tier), nil
}

// aggregate fetches indices and settings concurrently, then groups them
func (s *Service) aggregate(ctx context.Context) ([]types.FamilySummary, error) {
	var (
		indices []types.IndexDescriptor
		tiers   types.TierAssignment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		indices, err = s.provider.ListIndices(gctx)
		if err != nil {
			return fmt.Errorf("listing indices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tiers, err = s.provider.GetTierSettings(gctx)
		if err != nil {
			return fmt.Errorf("reading tier settings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("fetching cluster stats failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	s.logger.Debug("cluster stats fetched", "indices", len(indices), "tier_assignments", len(tiers))

	families, err := family.Aggregate(indices, tiers, s.opts)
	if err != nil {
		s.logger.Error("aggregating index families failed", "error", err)
		return nil, fmt.Errorf("aggregating index families: %w", err)
	}

	for _, f := range families {
		if len(f.Anomalies) > 0 {
			s.logger.Warn("index family anomaly", "family", f.Name, "anomalies", f.Anomalies)
		}
	}
	return families, nil
}
