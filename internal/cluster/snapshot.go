// internal/cluster/snapshot.go
package cluster

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aaronwald/indexstats/internal/types"
)

// Snapshot file names, as written by WriteSnapshot
const (
	IndicesFile  = "indices.json"
	SettingsFile = "settings.json"
)

// SnapshotProvider implements Provider over saved API payloads on disk.
// Each file may also be stored gzipped with a .gz suffix.
type SnapshotProvider struct {
	basePath  string
	attribute string
}

// NewSnapshotProvider creates a provider reading from basePath
func NewSnapshotProvider(basePath, attribute string) *SnapshotProvider {
	if attribute == "" {
		attribute = types.DefaultTierAttribute
	}
	return &SnapshotProvider{basePath: basePath, attribute: attribute}
}

// validatePath ensures the constructed path stays within basePath
func (s *SnapshotProvider) validatePath(parts ...string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.Join(parts...))
	cleanPath := filepath.Clean(fullPath)
	cleanBase := filepath.Clean(s.basePath)

	relPath, err := filepath.Rel(cleanBase, cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("invalid path: outside snapshot directory")
	}
	return cleanPath, nil
}

// ListIndices reads indices.json
func (s *SnapshotProvider) ListIndices(ctx context.Context) ([]types.IndexDescriptor, error) {
	data, err := s.ReadFile(IndicesFile)
	if err != nil {
		return nil, err
	}
	return parseCatIndices(bytes.NewReader(data))
}

// GetTierSettings reads settings.json
func (s *SnapshotProvider) GetTierSettings(ctx context.Context) (types.TierAssignment, error) {
	data, err := s.ReadFile(SettingsFile)
	if err != nil {
		return nil, err
	}
	return parseTierSettings(bytes.NewReader(data), s.attribute)
}

// ReadFile returns the contents of name, falling back to name.gz
func (s *SnapshotProvider) ReadFile(name string) ([]byte, error) {
	path, err := s.validatePath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, name, err)
	}

	data, err = readGzip(path + ".gz")
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, name, err)
	}
	return data, nil
}

func readGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	return io.ReadAll(gr)
}
