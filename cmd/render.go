package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termframe/termframe/internal/config"
	"github.com/termframe/termframe/internal/svg"
	"github.com/termframe/termframe/internal/template"
	"github.com/termframe/termframe/internal/timeline"
)

var renderOutputFlag string
var renderForceLoopFlag bool

var renderCmd = &cobra.Command{
	Use:   "render <config.yaml>",
	Short: "Compile a config into an animated SVG",
	Long: `Compile an animation config into an animated SVG document.

Loads and validates the config, expands meta.vars templates, resolves
step timing overlaps, and writes the compiled SVG. When the config sets
embed: false, the stylesheet is written as a sibling .css file referenced
from the SVG instead of being inlined.

Examples:
  termframe render demo.yaml
  termframe render demo.yaml --output animations/demo.svg
  termframe render demo.yaml --force-loop`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	renderCmd.Flags().StringVarP(&renderOutputFlag, "output", "o", "", "Output SVG path (default: config name with .svg extension)")
	renderCmd.Flags().BoolVar(&renderForceLoopFlag, "force-loop", false, "Compile as if the config set loop: true")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	configPath := args[0]

	doc, err := compileConfig(configPath, timeline.Options{ForceLoop: renderForceLoopFlag})
	if err != nil {
		return err
	}

	outPath := renderOutputFlag
	if outPath == "" {
		outPath = defaultOutputPath(configPath)
	}

	cssPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".css"
	out := svg.Build(doc, filepath.Base(cssPath))

	if err := os.WriteFile(outPath, []byte(out.SVG), 0644); err != nil { //nolint:gosec // rendered output, not a secret
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	if out.CSS != "" {
		if err := os.WriteFile(cssPath, []byte(out.CSS), 0644); err != nil { //nolint:gosec // rendered output, not a secret
			return fmt.Errorf("failed to write stylesheet: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "termframe: compiled %q (%d steps, %.4fs cycle) -> %s\n",
		doc.Name, len(doc.Steps), doc.Duration, outPath)
	if out.CSS != "" {
		fmt.Fprintf(os.Stderr, "  stylesheet: %s\n", cssPath)
	}

	return nil
}

// loadExpandedConfig loads, validates, and template-expands a config file.
// Shared by render, inspect, and export.
func loadExpandedConfig(path string) (*config.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	cfg, err := config.LoadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	expanded, err := template.ExpandConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to expand templates: %w", err)
	}

	return expanded, nil
}

// compileConfig loads and compiles a config file in one call.
func compileConfig(path string, opts timeline.Options) (*timeline.Document, error) {
	cfg, err := loadExpandedConfig(path)
	if err != nil {
		return nil, err
	}

	doc, err := timeline.Compile(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %q: %w", cfg.Meta.Name, err)
	}

	return doc, nil
}

// defaultOutputPath replaces the config extension with .svg.
func defaultOutputPath(configPath string) string {
	return strings.TrimSuffix(configPath, filepath.Ext(configPath)) + ".svg"
}
