package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testEntity struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.yaml")

	content := []byte("name: test\nvalue: 42\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := LoadYAML[testEntity](path)
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}

	if result.Name != "test" {
		t.Errorf("Name = %q, want %q", result.Name, "test")
	}
	if result.Value != 42 {
		t.Errorf("Value = %d, want %d", result.Value, 42)
	}
}

func TestLoadYAML_NotFound(t *testing.T) {
	_, err := LoadYAML[testEntity]("/nonexistent/path.yaml")
	if err == nil {
		t.Error("LoadYAML() expected error for nonexistent file")
	}
}

func TestLoadYAML_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte("name: test\nvalu: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadYAML[testEntity](path)
	if err == nil || !strings.Contains(err.Error(), "valu") {
		t.Errorf("LoadYAML() error = %v, want unknown field error", err)
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := LoadYAML[testEntity](path)
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if result.Name != "" {
		t.Errorf("Name = %q, want empty", result.Name)
	}
}

func TestSaveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.yaml")

	if err := SaveYAML(testEntity{Name: "saved", Value: 7}, path); err != nil {
		t.Fatalf("SaveYAML() error = %v", err)
	}

	result, err := LoadYAML[testEntity](path)
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if result.Name != "saved" || result.Value != 7 {
		t.Errorf("round trip = %+v", result)
	}
}
