// Package cluster fetches index statistics and tier settings from an
// Elasticsearch cluster, or from a directory of previously saved payloads.
package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaronwald/indexstats/internal/types"
)

var (
	// ErrUnavailable is returned when the cluster cannot be reached or
	// answers with an error status.
	ErrUnavailable = errors.New("cluster unavailable")

	// ErrMalformed is returned when a payload cannot be decoded.
	ErrMalformed = errors.New("malformed cluster response")
)

// Provider defines the interface for reading cluster index inventory
type Provider interface {
	// ListIndices returns one descriptor per physical index, sizes in bytes
	ListIndices(ctx context.Context) ([]types.IndexDescriptor, error)
	// GetTierSettings maps index name to the tier named by its allocation
	// requirement. Indices without the requirement are absent.
	GetTierSettings(ctx context.Context) (types.TierAssignment, error)
}

// NewProvider selects a snapshot provider when cfg.Snapshot is set and an
// Elasticsearch provider otherwise.
func NewProvider(cfg *types.Config) (Provider, error) {
	if cfg.Snapshot != "" {
		return NewSnapshotProvider(cfg.Snapshot, cfg.TierAttribute), nil
	}
	if len(cfg.Addresses()) == 0 {
		return nil, fmt.Errorf("no elasticsearch address configured")
	}
	return NewElasticsearchProvider(cfg)
}
