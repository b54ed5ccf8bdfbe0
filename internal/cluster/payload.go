package cluster

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aaronwald/indexstats/internal/types"
)

// Columns requested from _cat/indices
var catColumns = []string{"index", "pri", "docs.count", "pri.store.size", "store.size"}

// catIndexRow is one row of _cat/indices?format=json&bytes=b.
// Values arrive as strings and are null for closed indices.
type catIndexRow struct {
	Index        string  `json:"index"`
	Pri          *string `json:"pri"`
	DocsCount    *string `json:"docs.count"`
	PriStoreSize *string `json:"pri.store.size"`
	StoreSize    *string `json:"store.size"`
}

// indexSettings is one entry of _settings?flat_settings=true
type indexSettings struct {
	Settings map[string]any `json:"settings"`
}

// parseCatIndices decodes a _cat/indices JSON payload
func parseCatIndices(r io.Reader) ([]types.IndexDescriptor, error) {
	var rows []catIndexRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decoding indices: %v", ErrMalformed, err)
	}

	indices := make([]types.IndexDescriptor, 0, len(rows))
	for _, row := range rows {
		if row.Index == "" {
			return nil, fmt.Errorf("%w: index row without name", ErrMalformed)
		}

		var d types.IndexDescriptor
		d.Name = row.Index

		fields := []struct {
			name string
			raw  *string
			dst  *int64
		}{
			{"docs.count", row.DocsCount, &d.Docs},
			{"pri.store.size", row.PriStoreSize, &d.PriSize},
			{"store.size", row.StoreSize, &d.TotalSize},
			{"pri", row.Pri, &d.Shards},
		}
		for _, f := range fields {
			n, err := parseCount(f.raw)
			if err != nil {
				return nil, fmt.Errorf("%w: index %s field %s: %v", ErrMalformed, row.Index, f.name, err)
			}
			*f.dst = n
		}

		indices = append(indices, d)
	}
	return indices, nil
}

func parseCount(raw *string) (int64, error) {
	if raw == nil {
		return 0, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// tierSettingKey returns the flat setting naming the required tier
func tierSettingKey(attribute string) string {
	return "index.routing.allocation.require." + attribute
}

// parseTierSettings decodes a flat _settings payload into tier assignments
func parseTierSettings(r io.Reader, attribute string) (types.TierAssignment, error) {
	var payload map[string]indexSettings
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding settings: %v", ErrMalformed, err)
	}

	key := tierSettingKey(attribute)
	tiers := make(types.TierAssignment, len(payload))
	for name, s := range payload {
		v, ok := s.Settings[key]
		if !ok {
			continue
		}
		tier, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: index %s setting %s is not a string", ErrMalformed, name, key)
		}
		tiers[name] = tier
	}
	return tiers, nil
}
