package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/termframe/termframe/internal/svg"
	"github.com/termframe/termframe/internal/timeline"
)

// captureFrameInterval is the suggested sampling interval for the GIF
// capture collaborator, in seconds.
const captureFrameInterval = 0.1

// ExportManifest tells the downstream GIF capture pipeline how to time
// its capture window against the forced-loop variant.
type ExportManifest struct {
	Name          string  `json:"name"`
	SVG           string  `json:"svg"`
	LoopSVG       string  `json:"loop_svg"`
	Duration      float64 `json:"duration"`
	LoopDuration  float64 `json:"loop_duration"`
	FrameInterval float64 `json:"frame_interval"`
	FrameCount    int     `json:"frame_count"`
}

var exportOutputDirFlag string

var exportCmd = &cobra.Command{
	Use:   "export <config.yaml>",
	Short: "Write the SVG, a forced-loop variant, and a capture manifest",
	Long: `Compile a config twice - once as configured and once with looping
forced on - and write both SVGs plus a manifest.json describing the
capture window for the external GIF export pipeline.

The forced-loop variant exists because a GIF must cycle even when the SVG
does not; the compile is pure, so forcing the loop never touches the
config on disk or in memory.

Examples:
  termframe export demo.yaml
  termframe export demo.yaml --output-dir out/`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	exportCmd.Flags().StringVar(&exportOutputDirFlag, "output-dir", ".", "Directory for exported files")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	cfg, err := loadExpandedConfig(args[0])
	if err != nil {
		return err
	}

	// Independent compile calls share no state; run them concurrently.
	var doc, loopDoc *timeline.Document
	var g errgroup.Group
	g.Go(func() error {
		var err error
		doc, err = timeline.Compile(cfg, timeline.Options{})
		return err
	})
	g.Go(func() error {
		var err error
		loopDoc, err = timeline.Compile(cfg, timeline.Options{ForceLoop: true})
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to compile %q: %w", cfg.Meta.Name, err)
	}

	if err := os.MkdirAll(exportOutputDirFlag, 0755); err != nil { //nolint:gosec // output directory, not a secret
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	svgPath := filepath.Join(exportOutputDirFlag, base+".svg")
	loopPath := filepath.Join(exportOutputDirFlag, base+".loop.svg")
	manifestPath := filepath.Join(exportOutputDirFlag, base+".manifest.json")

	if err := writeDocument(doc, svgPath); err != nil {
		return err
	}
	if err := writeDocument(loopDoc, loopPath); err != nil {
		return err
	}

	manifest := ExportManifest{
		Name:          doc.Name,
		SVG:           filepath.Base(svgPath),
		LoopSVG:       filepath.Base(loopPath),
		Duration:      doc.Duration,
		LoopDuration:  loopDoc.Duration,
		FrameInterval: captureFrameInterval,
		FrameCount:    int(math.Ceil(loopDoc.Duration / captureFrameInterval)),
	}
	if err := writeManifest(manifest, manifestPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "termframe: exported %q (%.4fs cycle, %.4fs looped)\n",
		doc.Name, doc.Duration, loopDoc.Duration)
	fmt.Fprintf(os.Stderr, "  svg:      %s\n", svgPath)
	fmt.Fprintf(os.Stderr, "  loop svg: %s\n", loopPath)
	fmt.Fprintf(os.Stderr, "  manifest: %s\n", manifestPath)

	return nil
}

// writeDocument assembles and writes one compiled document, including its
// external stylesheet when the config disables embedding.
func writeDocument(doc *timeline.Document, path string) error {
	cssPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".css"
	out := svg.Build(doc, filepath.Base(cssPath))

	if err := os.WriteFile(path, []byte(out.SVG), 0644); err != nil { //nolint:gosec // rendered output, not a secret
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	if out.CSS != "" {
		if err := os.WriteFile(cssPath, []byte(out.CSS), 0644); err != nil { //nolint:gosec // rendered output, not a secret
			return fmt.Errorf("failed to write stylesheet: %w", err)
		}
	}
	return nil
}

// writeManifest writes the capture manifest as indented JSON.
func writeManifest(manifest ExportManifest, path string) error {
	f, err := os.Create(path) //nolint:gosec // manifest path derives from user args
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return nil
}
