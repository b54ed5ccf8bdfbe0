// internal/family/aggregate.go
package family

import (
	"regexp"
	"strconv"

	"github.com/aaronwald/indexstats/internal/types"
)

var (
	dailyDate   = regexp.MustCompile(`\d{4}\.\d{2}\.\d{2}`)
	periodIndex = regexp.MustCompile(`^.*\d{4}\.(\d{1,2})`)
)

// Options controls aggregation behavior
type Options struct {
	// StrictShards fails the aggregation when a family has zero total shards
	// instead of marking it with an anomaly.
	StrictShards bool
}

// Aggregate groups indices into families by prefix and computes per-tier and
// total counters. Families are returned in first-seen order.
func Aggregate(indices []types.IndexDescriptor, tiers types.TierAssignment, opts Options) ([]types.FamilySummary, error) {
	families := make(map[string]*types.FamilySummary)
	var order []string

	for _, idx := range indices {
		c := Classify(idx.Name)

		tier, ok := tiers[idx.Name]
		if !ok {
			return nil, &MissingTierError{Index: idx.Name}
		}
		if !types.IsValidTier(tier) {
			return nil, &UnrecognizedTierError{Index: idx.Name, Tier: tier}
		}

		f, ok := families[c.Prefix]
		if !ok {
			f = &types.FamilySummary{Name: c.Prefix}
			families[c.Prefix] = f
			order = append(order, c.Prefix)
		}

		if c.TimeBased {
			f.TimeBased = true
		}
		f.Tier(tier).Add(idx, c.Rollover)
		f.Indices = append(f.Indices, idx.Name)
	}

	result := make([]types.FamilySummary, 0, len(order))
	for _, prefix := range order {
		f := families[prefix]
		if err := finalize(f, opts); err != nil {
			return nil, err
		}
		result = append(result, *f)
	}
	return result, nil
}

// finalize derives totals, averages, lifecycle type and time period
func finalize(f *types.FamilySummary, opts Options) error {
	f.Total = f.Hot.Plus(f.Warm)

	if f.Total.Shards > 0 {
		f.Total.AverageShard = averageShard(f.Total)
	} else {
		if opts.StrictShards {
			return &ZeroShardError{Family: f.Name}
		}
		f.Anomalies = append(f.Anomalies, types.AnomalyZeroShards)
	}
	if f.Hot.Shards > 0 {
		f.Hot.AverageShard = averageShard(f.Hot)
	}
	if f.Warm.Shards > 0 {
		f.Warm.AverageShard = averageShard(f.Warm)
	}

	f.Rollover = f.Total.RolloverCount > 0
	f.Type = lifecycleType(f.Rollover, f.TimeBased)

	if f.TimeBased {
		f.TimePeriod = TimePeriod(f.Indices)
	}
	return nil
}

func averageShard(c types.TierCounters) *float64 {
	avg := float64(c.TotalSize) / float64(c.Shards)
	return &avg
}

func lifecycleType(rollover, timeBased bool) string {
	switch {
	case rollover && timeBased:
		return types.TypeTimeAndRollover
	case rollover:
		return types.TypeRollover
	case timeBased:
		return types.TypeTime
	default:
		return types.TypeIndividual
	}
}

// TimePeriod infers Daily, Weekly or Monthly from the non-rollover names of
// a family. Daily and Weekly end the scan; Monthly may still be overridden
// by a later name. Returns "" when no name carries a period.
func TimePeriod(names []string) string {
	period := ""
	for _, name := range names {
		if IsRollover(name) {
			continue
		}
		if dailyDate.MatchString(name) {
			return types.PeriodDaily
		}
		m := periodIndex.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > 12 {
			return types.PeriodWeekly
		}
		period = types.PeriodMonthly
	}
	return period
}
