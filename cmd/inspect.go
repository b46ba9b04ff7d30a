package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termframe/termframe/internal/timeline"
)

// InspectResult is the structured timing report for one compiled config.
type InspectResult struct {
	Name     string            `json:"name"`
	Loop     bool              `json:"loop"`
	Duration float64           `json:"duration"`
	Steps    []InspectStepInfo `json:"steps"`
}

// InspectStepInfo reports the resolved timing of a single step.
type InspectStepInfo struct {
	Index          int     `json:"index"`
	Command        string  `json:"command"`
	RequestedStart float64 `json:"requested_start"`
	ResolvedStart  float64 `json:"resolved_start"`
	End            float64 `json:"end"`
	Pushed         bool    `json:"pushed"`
}

var inspectFormatFlag string
var inspectForceLoopFlag bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <config.yaml>",
	Short: "Show the resolved step timing table for a config",
	Long: `Compile a config and print the resolved timing table without writing
any output files.

Shows, per step, the requested and resolved start times (a step is pushed
forward when it would overlap the previous step plus the transition gap),
the step end, and the total cycle duration.

Formats:
  text   Human-readable table to stdout (default)
  json   Structured JSON to stdout

Examples:
  termframe inspect demo.yaml
  termframe inspect --format json demo.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	inspectCmd.Flags().StringVar(&inspectFormatFlag, "format", "text",
		"Output format: text, json")
	inspectCmd.Flags().BoolVar(&inspectForceLoopFlag, "force-loop", false,
		"Inspect as if the config set loop: true")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	format := strings.ToLower(inspectFormatFlag)
	switch format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid format %q: valid values are text, json", inspectFormatFlag)
	}

	cfg, err := loadExpandedConfig(args[0])
	if err != nil {
		return err
	}

	doc, err := timeline.Compile(cfg, timeline.Options{ForceLoop: inspectForceLoopFlag})
	if err != nil {
		return fmt.Errorf("failed to compile %q: %w", cfg.Meta.Name, err)
	}

	requested := make([]float64, len(cfg.Steps))
	for i, s := range cfg.Steps {
		requested[i] = s.Timing.Start
	}

	result := buildInspectResult(doc, requested)

	switch format {
	case "text":
		formatInspectText(result)
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	}

	return nil
}

// buildInspectResult assembles the report from the compiled document and
// the originally requested starts.
func buildInspectResult(doc *timeline.Document, requested []float64) InspectResult {
	result := InspectResult{
		Name:     doc.Name,
		Loop:     doc.Loop,
		Duration: doc.Duration,
		Steps:    make([]InspectStepInfo, len(doc.Steps)),
	}
	for i, step := range doc.Steps {
		req := 0.0
		if i < len(requested) {
			req = requested[i]
		}
		result.Steps[i] = InspectStepInfo{
			Index:          step.Index,
			Command:        step.Command,
			RequestedStart: req,
			ResolvedStart:  step.Start,
			End:            step.End,
			Pushed:         step.Start > req,
		}
	}
	return result
}

// formatInspectText writes the human-readable timing table to stdout.
func formatInspectText(result InspectResult) {
	color := resolveColor()

	mode := "once"
	if result.Loop {
		mode = "loop"
	}
	fmt.Printf("%s (%s, cycle %.4fs)\n\n", bold(result.Name, color), mode, result.Duration)
	fmt.Printf("  %-5s %-24s %10s %10s %10s\n", "step", "command", "requested", "start", "end")

	for _, s := range result.Steps {
		command := s.Command
		if len(command) > 24 {
			command = command[:21] + "..."
		}
		start := fmt.Sprintf("%10.2f", s.ResolvedStart)
		if s.Pushed {
			start = red(start, color) + " (pushed)"
		}
		fmt.Printf("  %-5d %-24s %10.2f %s %10.2f\n", s.Index, command, s.RequestedStart, start, s.End)
	}
}
