// internal/cluster/elasticsearch.go
package cluster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/aaronwald/indexstats/internal/types"
)

// routingSettingsFilter limits the settings payload to allocation routing
const routingSettingsFilter = "index.routing*"

// ElasticsearchProvider implements Provider against a live cluster
type ElasticsearchProvider struct {
	client    *elasticsearch.Client
	attribute string
}

// NewElasticsearchProvider creates a provider from the connection settings in cfg
func NewElasticsearchProvider(cfg *types.Config) (*ElasticsearchProvider, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses(),
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		APIKey:    cfg.Elasticsearch.APIKey,
	}

	if cfg.Elasticsearch.CACert != "" {
		cert, err := os.ReadFile(cfg.Elasticsearch.CACert)
		if err != nil {
			return nil, fmt.Errorf("reading CA certificate: %w", err)
		}
		esCfg.CACert = cert
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	return &ElasticsearchProvider{client: client, attribute: cfg.TierAttribute}, nil
}

// ListIndices calls _cat/indices with byte units
func (p *ElasticsearchProvider) ListIndices(ctx context.Context) ([]types.IndexDescriptor, error) {
	body, err := p.catIndices(ctx)
	if err != nil {
		return nil, err
	}
	return parseCatIndices(bytes.NewReader(body))
}

// GetTierSettings reads flat routing settings for every index
func (p *ElasticsearchProvider) GetTierSettings(ctx context.Context) (types.TierAssignment, error) {
	body, err := p.routingSettings(ctx)
	if err != nil {
		return nil, err
	}
	return parseTierSettings(bytes.NewReader(body), p.attribute)
}

// WriteSnapshot saves the raw indices and settings payloads into dir so
// they can be served later by a SnapshotProvider.
func (p *ElasticsearchProvider) WriteSnapshot(ctx context.Context, dir string) error {
	indices, err := p.catIndices(ctx)
	if err != nil {
		return err
	}
	settings, err := p.routingSettings(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndicesFile), indices, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", IndicesFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), settings, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", SettingsFile, err)
	}
	return nil
}

func (p *ElasticsearchProvider) catIndices(ctx context.Context) ([]byte, error) {
	cat := p.client.Cat.Indices
	res, err := cat(
		cat.WithContext(ctx),
		cat.WithFormat("json"),
		cat.WithBytes("b"),
		cat.WithH(catColumns...),
	)
	return readResponse("cat indices", res, err)
}

func (p *ElasticsearchProvider) routingSettings(ctx context.Context) ([]byte, error) {
	get := p.client.Indices.GetSettings
	res, err := get(
		get.WithContext(ctx),
		get.WithName(routingSettingsFilter),
		get.WithFlatSettings(true),
	)
	return readResponse("get settings", res, err)
}

// readResponse drains an API response, mapping transport and status
// failures to ErrUnavailable
func readResponse(op string, res *esapi.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", ErrUnavailable, op, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrUnavailable, op, res.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
