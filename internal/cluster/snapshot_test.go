package cluster

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aaronwald/indexstats/internal/types"
)

func writeSnapshot(t *testing.T, dir string, gz bool) {
	t.Helper()

	files := map[string]string{
		IndicesFile:  catIndicesJSON,
		SettingsFile: settingsJSON,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if !gz {
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			continue
		}

		f, err := os.Create(path + ".gz")
		if err != nil {
			t.Fatal(err)
		}
		gw := gzip.NewWriter(f)
		gw.Write([]byte(content))
		gw.Close()
		f.Close()
	}
}

func TestSnapshotProvider(t *testing.T) {
	tmp := t.TempDir()
	writeSnapshot(t, tmp, false)

	p := NewSnapshotProvider(tmp, "data")

	indices, err := p.ListIndices(context.Background())
	if err != nil {
		t.Fatalf("ListIndices failed: %v", err)
	}
	if len(indices) != 3 {
		t.Errorf("expected 3 indices, got %d", len(indices))
	}

	tiers, err := p.GetTierSettings(context.Background())
	if err != nil {
		t.Fatalf("GetTierSettings failed: %v", err)
	}
	if tiers["logs-2024.03.01"] != types.TierHot {
		t.Errorf("expected hot tier, got %q", tiers["logs-2024.03.01"])
	}
}

func TestSnapshotProviderGzip(t *testing.T) {
	tmp := t.TempDir()
	writeSnapshot(t, tmp, true)

	p := NewSnapshotProvider(tmp, "")

	indices, err := p.ListIndices(context.Background())
	if err != nil {
		t.Fatalf("ListIndices failed: %v", err)
	}
	if len(indices) != 3 {
		t.Errorf("expected 3 indices, got %d", len(indices))
	}

	tiers, err := p.GetTierSettings(context.Background())
	if err != nil {
		t.Fatalf("GetTierSettings failed: %v", err)
	}
	if len(tiers) != 2 {
		t.Errorf("expected 2 tier assignments with default attribute, got %d", len(tiers))
	}
}

func TestSnapshotProviderMissingFiles(t *testing.T) {
	p := NewSnapshotProvider(t.TempDir(), "data")

	_, err := p.ListIndices(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}

	_, err = p.GetTierSettings(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestSnapshotProviderPathTraversal(t *testing.T) {
	tmp := t.TempDir()
	p := NewSnapshotProvider(filepath.Join(tmp, "snap"), "data")

	testCases := []string{
		"../indices.json",
		"../../etc/passwd",
		"nested/../../../etc/passwd",
	}

	for _, name := range testCases {
		t.Run(name, func(t *testing.T) {
			if _, err := p.ReadFile(name); err == nil {
				t.Error("expected error for path traversal, got nil")
			}
		})
	}
}

func TestNewProviderSelectsSnapshot(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Snapshot = t.TempDir()

	p, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if _, ok := p.(*SnapshotProvider); !ok {
		t.Errorf("expected SnapshotProvider, got %T", p)
	}
}

func TestNewProviderSelectsElasticsearch(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.ElasticsearchHost = "http://localhost:9200"

	p, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if _, ok := p.(*ElasticsearchProvider); !ok {
		t.Errorf("expected ElasticsearchProvider, got %T", p)
	}
}

func TestNewProviderRequiresSource(t *testing.T) {
	if _, err := NewProvider(types.DefaultConfig()); err == nil {
		t.Error("expected error without address or snapshot")
	}
}
