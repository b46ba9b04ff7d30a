package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termframe/termframe/internal/config"
	"github.com/termframe/termframe/internal/template"
)

// ValidationResult represents the validation outcome for a single config file.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

var validateFormatFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate animation config files for schema and semantic correctness",
	Long: `Validate one or more animation config YAML files without compiling them.

Checks schema compliance (required fields, types, non-negative timings),
strict field names (unknown YAML keys are rejected), and that every
template reference in lines, commands, and prompts resolves against
meta.vars.

Does not create any files or modify any environment state.

Exit code 0 if all files are valid, 1 if any file has errors.

Formats:
  text   Human-readable output to stderr (default)
  json   Structured JSON to stdout

Examples:
  termframe validate demo.yaml
  termframe validate a.yaml b.yaml c.yaml
  termframe validate --format json demo.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	validateCmd.Flags().StringVar(&validateFormatFlag, "format", "text",
		"Output format: text, json")
	rootCmd.AddCommand(validateCmd)
}

// runValidate implements the validate command: iterates over file args,
// validates each independently, and outputs results in the chosen format.
func runValidate(_ *cobra.Command, args []string) error {
	format := strings.ToLower(validateFormatFlag)
	switch format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid format %q: valid values are text, json", validateFormatFlag)
	}

	var results []ValidationResult
	hasErrors := false

	for _, path := range args {
		result := validateFile(path)
		results = append(results, result)
		if !result.Valid {
			hasErrors = true
		}
	}

	switch format {
	case "text":
		formatValidateText(results)
	case "json":
		if err := formatValidateJSON(results); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	}

	if hasErrors {
		os.Exit(1)
	}

	return nil
}

// validateFile validates a single config file and returns a
// ValidationResult. config.LoadFile performs strict YAML parsing and all
// schema validation; template expansion is then attempted so unresolvable
// {{.var}} references are reported here rather than at render time.
func validateFile(path string) ValidationResult {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ValidationResult{
			File:   path,
			Valid:  false,
			Errors: []string{fmt.Sprintf("failed to resolve path: %v", err)},
		}
	}

	cfg, err := config.LoadFile(absPath)
	if err != nil {
		return ValidationResult{
			File:   path,
			Valid:  false,
			Errors: []string{err.Error()},
		}
	}

	if _, err := template.ExpandConfig(cfg); err != nil {
		return ValidationResult{
			File:   path,
			Valid:  false,
			Errors: []string{err.Error()},
		}
	}

	return ValidationResult{
		File:   path,
		Valid:  true,
		Errors: []string{},
	}
}

// formatValidateText writes human-readable validation results to stderr.
func formatValidateText(results []ValidationResult) {
	color := resolveColor()
	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
			fmt.Fprintf(os.Stderr, "%s %s: valid\n", green("✓", color), r.File)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s:\n", red("✗", color), r.File)
			for _, e := range r.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", e)
			}
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(os.Stderr, "\nResult: %d/%d files valid\n", validCount, len(results))
	}
}

// formatValidateJSON writes JSON-encoded validation results to stdout.
func formatValidateJSON(results []ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
