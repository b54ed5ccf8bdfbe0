// internal/family/rollup.go
package family

import "github.com/aaronwald/indexstats/internal/types"

// RollupTiers sums the hot and warm counters of every family into
// cluster-wide tier totals. Average shard size is not carried at this level.
func RollupTiers(families []types.FamilySummary) types.ClusterTierSummary {
	summary := types.ClusterTierSummary{
		Hot:  &types.TierTotals{Name: types.TierHot},
		Warm: &types.TierTotals{Name: types.TierWarm},
	}

	for i := range families {
		for _, tier := range types.Tiers {
			addCounters(summary.Tier(tier), families[i].Tier(tier))
		}
	}
	return summary
}

func addCounters(dst *types.TierTotals, src *types.TierCounters) {
	dst.Docs += src.Docs
	dst.PriSize += src.PriSize
	dst.TotalSize += src.TotalSize
	dst.Shards += src.Shards
	dst.Count += src.Count
}
