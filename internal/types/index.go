// internal/types/index.go
package types

// Tier labels an index can be pinned to via allocation settings
const (
	TierHot  = "hot"
	TierWarm = "warm"
)

// Tiers lists the known tiers in display order
var Tiers = []string{TierHot, TierWarm}

// IsValidTier reports whether tier is a known tier label
func IsValidTier(tier string) bool {
	for _, t := range Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Lifecycle type labels for an index family
const (
	TypeTimeAndRollover = "Time based and Rollover"
	TypeRollover        = "Rollover"
	TypeTime            = "Time"
	TypeIndividual      = "Individual"
)

// Time periods inferred for time-based families
const (
	PeriodDaily   = "Daily"
	PeriodWeekly  = "Weekly"
	PeriodMonthly = "Monthly"
)

// AnomalyZeroShards marks a family whose total shard count is zero
const AnomalyZeroShards = "zero_shards"

// IndexDescriptor is one physical index as reported by the cluster
type IndexDescriptor struct {
	Name      string `json:"index" yaml:"index"`
	Docs      int64  `json:"docs" yaml:"docs"`
	PriSize   int64  `json:"pri_size" yaml:"pri_size"`
	TotalSize int64  `json:"total_size" yaml:"total_size"`
	Shards    int64  `json:"shards" yaml:"shards"`
}

// TierAssignment maps index name to tier label
type TierAssignment map[string]string

// TierCounters accumulates index statistics for one tier of a family
type TierCounters struct {
	Docs          int64    `json:"docs"`
	PriSize       int64    `json:"pri_size"`
	TotalSize     int64    `json:"total_size"`
	Shards        int64    `json:"shards"`
	Count         int64    `json:"count"`
	RolloverCount int64    `json:"rollover_count"`
	AverageShard  *float64 `json:"average_shard,omitempty"`
}

// Add accumulates a single index into the counters
func (c *TierCounters) Add(idx IndexDescriptor, rollover bool) {
	c.Docs += idx.Docs
	c.PriSize += idx.PriSize
	c.TotalSize += idx.TotalSize
	c.Shards += idx.Shards
	c.Count++
	if rollover {
		c.RolloverCount++
	}
}

// Plus returns the element-wise sum of two counter sets, without AverageShard
func (c TierCounters) Plus(o TierCounters) TierCounters {
	return TierCounters{
		Docs:          c.Docs + o.Docs,
		PriSize:       c.PriSize + o.PriSize,
		TotalSize:     c.TotalSize + o.TotalSize,
		Shards:        c.Shards + o.Shards,
		Count:         c.Count + o.Count,
		RolloverCount: c.RolloverCount + o.RolloverCount,
	}
}

// FamilySummary describes a group of indices sharing a name prefix
type FamilySummary struct {
	Name       string       `json:"name"`
	TimeBased  bool         `json:"time_based"`
	Rollover   bool         `json:"rollover"`
	Hot        TierCounters `json:"hot"`
	Warm       TierCounters `json:"warm"`
	Total      TierCounters `json:"total"`
	Type       string       `json:"type"`
	TimePeriod string       `json:"time_period,omitempty"`
	Anomalies  []string     `json:"anomalies,omitempty"`

	// Indices holds member index names in list order
	Indices []string `json:"-"`
}

// Tier returns the counters for the given tier, or nil if unknown
func (f *FamilySummary) Tier(tier string) *TierCounters {
	switch tier {
	case TierHot:
		return &f.Hot
	case TierWarm:
		return &f.Warm
	}
	return nil
}

// TierTotals is one tier bucket of the cluster-wide roll-up
type TierTotals struct {
	Name      string `json:"name"`
	Docs      int64  `json:"docs"`
	PriSize   int64  `json:"pri_size"`
	TotalSize int64  `json:"total_size"`
	Shards    int64  `json:"shards"`
	Count     int64  `json:"count"`
}

// ClusterTierSummary holds hot and warm totals summed across families
type ClusterTierSummary struct {
	Hot  *TierTotals `json:"hot,omitempty"`
	Warm *TierTotals `json:"warm,omitempty"`
}

// Tier returns the totals for the given tier, or nil
func (s ClusterTierSummary) Tier(tier string) *TierTotals {
	switch tier {
	case TierHot:
		return s.Hot
	case TierWarm:
		return s.Warm
	}
	return nil
}

// Filter returns a summary holding only the requested tier.
// An empty tier returns the summary unchanged.
func (s ClusterTierSummary) Filter(tier string) ClusterTierSummary {
	switch tier {
	case "":
		return s
	case TierHot:
		return ClusterTierSummary{Hot: s.Hot}
	case TierWarm:
		return ClusterTierSummary{Warm: s.Warm}
	}
	return ClusterTierSummary{}
}
