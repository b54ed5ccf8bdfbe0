package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronwald/indexstats/internal/types"
)

func TestRollupTiers(t *testing.T) {
	indices := []types.IndexDescriptor{
		idx("logs-2024.03.01", 10, 100, 200, 1),
		idx("logs-2024.03.02", 20, 150, 300, 1),
		idx("metrics-000001", 5, 50, 100, 2),
		idx("metrics-000002", 7, 70, 140, 3),
	}
	tiers := types.TierAssignment{
		"logs-2024.03.01": types.TierHot,
		"logs-2024.03.02": types.TierWarm,
		"metrics-000001":  types.TierWarm,
		"metrics-000002":  types.TierHot,
	}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)

	summary := RollupTiers(families)
	require.NotNil(t, summary.Hot)
	require.NotNil(t, summary.Warm)

	assert.Equal(t, types.TierTotals{
		Name: types.TierHot, Docs: 17, PriSize: 170, TotalSize: 340, Shards: 4, Count: 2,
	}, *summary.Hot)
	assert.Equal(t, types.TierTotals{
		Name: types.TierWarm, Docs: 25, PriSize: 200, TotalSize: 400, Shards: 3, Count: 2,
	}, *summary.Warm)
}

func TestRollupTiersEqualsFamilySums(t *testing.T) {
	families := []types.FamilySummary{
		{Name: "a", Hot: types.TierCounters{Docs: 1, PriSize: 2, TotalSize: 3, Shards: 4, Count: 5}},
		{Name: "b", Warm: types.TierCounters{Docs: 6, PriSize: 7, TotalSize: 8, Shards: 9, Count: 10}},
		{Name: "c",
			Hot:  types.TierCounters{Docs: 1, PriSize: 1, TotalSize: 1, Shards: 1, Count: 1},
			Warm: types.TierCounters{Docs: 1, PriSize: 1, TotalSize: 1, Shards: 1, Count: 1}},
	}

	summary := RollupTiers(families)

	var hot, warm types.TierCounters
	for _, f := range families {
		hot = hot.Plus(f.Hot)
		warm = warm.Plus(f.Warm)
	}
	assert.Equal(t, hot.Docs, summary.Hot.Docs)
	assert.Equal(t, hot.Shards, summary.Hot.Shards)
	assert.Equal(t, hot.Count, summary.Hot.Count)
	assert.Equal(t, warm.TotalSize, summary.Warm.TotalSize)
	assert.Equal(t, warm.PriSize, summary.Warm.PriSize)
	assert.Equal(t, warm.Count, summary.Warm.Count)
}

func TestRollupTiersEmpty(t *testing.T) {
	summary := RollupTiers(nil)
	assert.Equal(t, types.TierHot, summary.Hot.Name)
	assert.Zero(t, summary.Hot.Count)
	assert.Zero(t, summary.Warm.TotalSize)
}

func TestClusterTierSummaryFilter(t *testing.T) {
	summary := RollupTiers([]types.FamilySummary{
		{Hot: types.TierCounters{Count: 1}, Warm: types.TierCounters{Count: 2}},
	})

	hot := summary.Filter(types.TierHot)
	assert.NotNil(t, hot.Hot)
	assert.Nil(t, hot.Warm)

	warm := summary.Filter(types.TierWarm)
	assert.Nil(t, warm.Hot)
	assert.Equal(t, int64(2), warm.Warm.Count)

	all := summary.Filter("")
	assert.NotNil(t, all.Hot)
	assert.NotNil(t, all.Warm)
}
