package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronwald/indexstats/internal/types"
	"github.com/aaronwald/indexstats/internal/utils"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]",
	Short: "Validate a configuration file",
	Long: `Check a configuration file for unknown keys, bad values and a missing
data source. Without an argument, validates ./` + DefaultConfigFile + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// ValidationResult represents the result of validating a single file
type ValidationResult struct {
	Path    string
	Valid   bool
	Message string
	Errors  []string
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := DefaultConfigFile
	if len(args) > 0 {
		path = args[0]
	}

	if !utils.CheckFileExists(path) {
		return fmt.Errorf("path not found: %s", path)
	}

	result := validateFile(path)
	out := cmd.OutOrStdout()
	if result.Valid {
		fmt.Fprintf(out, "%-40s ✓ %s\n", result.Path, result.Message)
		return nil
	}

	fmt.Fprintf(out, "%-40s ✗ %s\n", result.Path, result.Message)
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	return fmt.Errorf("validation failed: %s", path)
}

func validateFile(path string) ValidationResult {
	result := ValidationResult{
		Path:  path,
		Valid: true,
	}

	cfg, err := types.LoadConfig(path)
	if err != nil {
		result.Valid = false
		result.Message = "parse error"
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if err := cfg.Validate(); err != nil {
		result.Valid = false
		result.Message = "validation error"
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if cfg.Snapshot != "" {
		if err := utils.CheckDirExists(cfg.Snapshot); err != nil {
			result.Valid = false
			result.Message = "snapshot error"
			result.Errors = append(result.Errors, err.Error())
			return result
		}
		result.Message = "valid (snapshot source)"
		return result
	}

	result.Message = fmt.Sprintf("valid (%d cluster address(es))", len(cfg.Addresses()))
	return result
}

// ValidateCommand returns the validate command for registration
func ValidateCommand() *cobra.Command {
	return validateCmd
}
