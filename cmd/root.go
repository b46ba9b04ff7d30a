// Package cmd implements the termframe Cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "termframe",
	Short: "Compile terminal animation configs into animated SVG",
	Long: `termframe - Compile terminal animation configs into animated SVG

Describe an animation as YAML steps (terminal lines, a shell prompt, a
typed command, per-step timing) and compile it into one self-contained
SVG driven by CSS keyframe percentages of a single cycle.

Examples:
  # Compile a config to SVG
  termframe render demo.yaml --output demo.svg

  # Check configs without writing anything
  termframe validate demo.yaml other.yaml

  # Show the resolved step timing table
  termframe inspect demo.yaml

  # Write the SVG plus a forced-loop variant and capture manifest
  termframe export demo.yaml --output-dir out/`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits
	rootCmd.SetVersionTemplate(fmt.Sprintf("termframe version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
}
