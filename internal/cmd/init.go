package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/types"
	"github.com/aaronwald/indexstats/internal/utils"
)

// defaultClusterURL seeds the generated config
const defaultClusterURL = "http://localhost:9200"

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default indexstats.yaml",
	Long: `Write a default configuration file to the given directory, or the current
directory when none is given. An existing file is left untouched.

The generated file points at ` + defaultClusterURL + ` and can be edited before use.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		} else {
			cwd, err := getBaseDir()
			if err != nil {
				return err
			}
			dir = cwd
		}
		created, err := runInit(dir)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, DefaultConfigFile)
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), path, "already exists, leaving it unchanged")
		}
		return nil
	},
}

// runInit writes the default config into baseDir. It reports whether a new
// file was created.
func runInit(baseDir string) (bool, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", baseDir, err)
	}

	if err := updateGitignore(baseDir); err != nil {
		return false, fmt.Errorf("failed to update .gitignore: %w", err)
	}

	configPath := filepath.Join(baseDir, DefaultConfigFile)

	// Don't overwrite existing config
	if utils.CheckFileExists(configPath) {
		return false, nil
	}

	cfg := types.DefaultConfig()
	cfg.Elasticsearch.Addresses = []string{defaultClusterURL}
	if err := utils.SaveYAML(cfg, configPath); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", DefaultConfigFile, err)
	}
	return true, nil
}

// updateGitignore keeps snapshot directories out of version control
func updateGitignore(baseDir string) error {
	gitignorePath := filepath.Join(baseDir, ".gitignore")
	entry := "snapshots/"

	var existingContent string
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existingContent = string(data)
	}

	if strings.Contains(existingContent, entry) {
		return nil
	}

	var newContent string
	if existingContent != "" {
		newContent = existingContent
		if !strings.HasSuffix(existingContent, "\n") {
			newContent += "\n"
		}
		newContent += "\n# indexstats snapshots\n" + entry + "\n"
	} else {
		newContent = "# indexstats snapshots\n" + entry + "\n"
	}

	return os.WriteFile(gitignorePath, []byte(newContent), 0644)
}

// InitCommand returns the init command for registration
func InitCommand() *cobra.Command {
	return initCmd
}
