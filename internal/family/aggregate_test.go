package family

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronwald/indexstats/internal/types"
)

func idx(name string, docs, pri, total, shards int64) types.IndexDescriptor {
	return types.IndexDescriptor{Name: name, Docs: docs, PriSize: pri, TotalSize: total, Shards: shards}
}

func TestAggregateDailyFamily(t *testing.T) {
	indices := []types.IndexDescriptor{
		idx("logs-2024.03.01", 10, 100, 200, 1),
		idx("logs-2024.03.02", 20, 150, 300, 1),
	}
	tiers := types.TierAssignment{
		"logs-2024.03.01": types.TierHot,
		"logs-2024.03.02": types.TierHot,
	}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)
	require.Len(t, families, 1)

	f := families[0]
	assert.Equal(t, "logs", f.Name)
	assert.True(t, f.TimeBased)
	assert.False(t, f.Rollover)
	assert.Equal(t, types.TypeTime, f.Type)
	assert.Equal(t, types.PeriodDaily, f.TimePeriod)
	assert.Equal(t, int64(30), f.Hot.Docs)
	assert.Equal(t, int64(2), f.Hot.Shards)
	assert.Equal(t, int64(2), f.Hot.Count)
	require.NotNil(t, f.Hot.AverageShard)
	assert.Equal(t, 250.0, *f.Hot.AverageShard)
	assert.Nil(t, f.Warm.AverageShard)
	require.NotNil(t, f.Total.AverageShard)
	assert.Equal(t, 250.0, *f.Total.AverageShard)
	assert.Empty(t, f.Anomalies)
}

func TestAggregateRolloverFamily(t *testing.T) {
	indices := []types.IndexDescriptor{
		idx("metrics-000122", 5, 50, 100, 2),
		idx("metrics-000123", 7, 70, 140, 2),
	}
	tiers := types.TierAssignment{
		"metrics-000122": types.TierWarm,
		"metrics-000123": types.TierHot,
	}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)
	require.Len(t, families, 1)

	f := families[0]
	assert.Equal(t, "metrics", f.Name)
	assert.True(t, f.Rollover)
	assert.False(t, f.TimeBased)
	assert.Equal(t, types.TypeRollover, f.Type)
	assert.Empty(t, f.TimePeriod)
	assert.Equal(t, int64(1), f.Hot.RolloverCount)
	assert.Equal(t, int64(1), f.Warm.RolloverCount)
	assert.Equal(t, int64(2), f.Total.RolloverCount)
	assert.Equal(t, 50.0, *f.Warm.AverageShard)
	assert.Equal(t, 70.0, *f.Hot.AverageShard)
	assert.Equal(t, 60.0, *f.Total.AverageShard)
}

func TestAggregateTimeAndRollover(t *testing.T) {
	indices := []types.IndexDescriptor{
		idx("app-2024.01.01", 1, 10, 20, 1),
		idx("app-000001", 1, 10, 20, 1),
	}
	tiers := types.TierAssignment{
		"app-2024.01.01": types.TierHot,
		"app-000001":     types.TierHot,
	}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, types.TypeTimeAndRollover, families[0].Type)
	assert.Equal(t, types.PeriodDaily, families[0].TimePeriod)
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	indices := []types.IndexDescriptor{
		idx("zeta-1", 1, 1, 1, 1),
		idx("alpha-1", 1, 1, 1, 1),
		idx("zeta-2", 1, 1, 1, 1),
		idx("orders-reindexed-2024", 1, 1, 1, 1),
		idx("orders-2023", 1, 1, 1, 1),
	}
	tiers := types.TierAssignment{}
	for _, i := range indices {
		tiers[i.Name] = types.TierHot
	}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "orders"}, names)
	assert.Equal(t, int64(2), families[2].Total.Count)
	assert.Equal(t, types.TypeIndividual, families[2].Type)
}

func TestAggregateTotalIsSumOfTiers(t *testing.T) {
	indices := []types.IndexDescriptor{
		idx("logs-2024.03.01", 10, 100, 200, 1),
		idx("logs-2024.03.02", 20, 150, 300, 2),
		idx("logs-2024.03.03", 30, 300, 600, 3),
		idx("metrics-000001", 4, 40, 80, 1),
		idx("metrics-000002", 5, 50, 90, 1),
	}
	tiers := types.TierAssignment{
		"logs-2024.03.01": types.TierWarm,
		"logs-2024.03.02": types.TierWarm,
		"logs-2024.03.03": types.TierHot,
		"metrics-000001":  types.TierWarm,
		"metrics-000002":  types.TierHot,
	}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)

	for _, f := range families {
		sum := f.Hot.Plus(f.Warm)
		assert.Equal(t, sum.Docs, f.Total.Docs, f.Name)
		assert.Equal(t, sum.PriSize, f.Total.PriSize, f.Name)
		assert.Equal(t, sum.TotalSize, f.Total.TotalSize, f.Name)
		assert.Equal(t, sum.Shards, f.Total.Shards, f.Name)
		assert.Equal(t, sum.Count, f.Total.Count, f.Name)
		assert.Equal(t, sum.RolloverCount, f.Total.RolloverCount, f.Name)
		assert.GreaterOrEqual(t, f.Total.Count, f.Total.RolloverCount, f.Name)
	}
}

func TestAggregateMissingTier(t *testing.T) {
	indices := []types.IndexDescriptor{idx("logs-2024.03.01", 1, 1, 1, 1)}

	_, err := Aggregate(indices, types.TierAssignment{}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTier))

	var missing *MissingTierError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "logs-2024.03.01", missing.Index)
}

func TestAggregateUnrecognizedTier(t *testing.T) {
	indices := []types.IndexDescriptor{idx("logs-2024.03.01", 1, 1, 1, 1)}
	tiers := types.TierAssignment{"logs-2024.03.01": "cold"}

	_, err := Aggregate(indices, tiers, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedTier))
	assert.Contains(t, err.Error(), "cold")
}

func TestAggregateZeroShards(t *testing.T) {
	indices := []types.IndexDescriptor{idx("closed-2024.01.01", 0, 0, 0, 0)}
	tiers := types.TierAssignment{"closed-2024.01.01": types.TierWarm}

	families, err := Aggregate(indices, tiers, Options{})
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Nil(t, families[0].Total.AverageShard)
	assert.Nil(t, families[0].Warm.AverageShard)
	assert.Equal(t, []string{types.AnomalyZeroShards}, families[0].Anomalies)

	_, err = Aggregate(indices, tiers, Options{StrictShards: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroShardDivision))

	var zero *ZeroShardError
	require.True(t, errors.As(err, &zero))
	assert.Equal(t, "closed", zero.Family)
}

func TestAggregateEmpty(t *testing.T) {
	families, err := Aggregate(nil, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestTimePeriod(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"daily", []string{"logs-2024.03.01"}, types.PeriodDaily},
		{"weekly", []string{"logs-2024.34"}, types.PeriodWeekly},
		{"monthly", []string{"logs-2024.03"}, types.PeriodMonthly},
		{"monthly overridden by daily", []string{"logs-2024.03", "logs-2024.03.05"}, types.PeriodDaily},
		{"monthly overridden by weekly", []string{"logs-2024.03", "logs-2024.40"}, types.PeriodWeekly},
		{"weekly stops scan", []string{"logs-2024.40", "logs-2024.03.05"}, types.PeriodWeekly},
		{"rollover names skipped", []string{"logs-2024.03.01-000001", "logs-2024.05"}, types.PeriodMonthly},
		{"no period", []string{"logs-2024.x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimePeriod(tt.names))
		})
	}
}
