package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeValidateRoot creates a fresh root + validate command tree for testing.
func makeValidateRoot() *cobra.Command {
	// Reset global flag state
	validateFormatFlag = "text"

	root := &cobra.Command{
		Use:           "termframe",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	v := &cobra.Command{
		Use:  "validate <file>...",
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	v.Flags().StringVar(&validateFormatFlag, "format", "text", "Output format: text, json")
	root.AddCommand(v)
	return root
}

func TestValidate_ValidFile_ExitZero(t *testing.T) {
	root := makeValidateRoot()
	root.SetArgs([]string{"validate", "../testdata/configs/demo.yaml"})

	// runValidate calls os.Exit(1) on failure; for valid files it returns nil
	err := root.Execute()
	assert.NoError(t, err, "validate should succeed for valid config file")
}

func TestValidate_InvalidFile_Errors(t *testing.T) {
	// We can't easily test os.Exit(1) without a subprocess, but we can
	// verify validateFile returns errors for the invalid fixture.
	result := validateFile("../testdata/configs/invalid.yaml")

	assert.False(t, result.Valid, "invalid config should not be valid")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "name must be non-empty")
}

func TestValidate_BadYAML_ParseError(t *testing.T) {
	result := validateFile("../testdata/configs/bad-yaml.yaml")

	assert.False(t, result.Valid, "bad YAML should not be valid")
	assert.NotEmpty(t, result.Errors, "should have parse error")
}

func TestValidate_MissingFile(t *testing.T) {
	result := validateFile("../testdata/configs/does-not-exist.yaml")

	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_InvalidFormatFlag(t *testing.T) {
	root := makeValidateRoot()
	root.SetArgs([]string{"validate", "--format", "xml", "../testdata/configs/demo.yaml"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
