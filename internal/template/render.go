// Package template provides Go text/template rendering for termframe
// config fields. Terminal lines, commands, and prompt parts may reference
// meta.vars entries as {{.name}}; environment variables with the same
// name override the config values.
package template

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/termframe/termframe/internal/config"
)

// Render renders a Go text/template with the given variables.
// Uses missingkey=error to fail on undefined variables.
func Render(tmpl string, vars map[string]string) (string, error) {
	if tmpl == "" {
		return "", nil
	}

	t, err := template.New("field").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// MergeVars merges config vars with environment variables.
// Environment variables override config vars.
func MergeVars(vars map[string]string) map[string]string {
	result := make(map[string]string)

	for k, v := range vars {
		result[k] = v
	}

	for k := range result {
		if envVal := os.Getenv(k); envVal != "" {
			result[k] = envVal
		}
	}

	return result
}

// ExpandConfig returns a copy of the config with meta.vars (merged with
// environment overrides) rendered into every templated field: terminal
// lines, commands, and prompt parts. The input config is not modified.
func ExpandConfig(cfg *config.Config) (*config.Config, error) {
	out := cfg.Clone()
	vars := MergeVars(out.Meta.Vars)

	for i := range out.Steps {
		step := &out.Steps[i]
		for j, line := range step.Lines {
			rendered, err := Render(line, vars)
			if err != nil {
				return nil, fmt.Errorf("step %d: line %d: %w", i, j, err)
			}
			step.Lines[j] = rendered
		}

		rendered, err := Render(step.Command, vars)
		if err != nil {
			return nil, fmt.Errorf("step %d: command: %w", i, err)
		}
		step.Command = rendered

		for name, field := range map[string]*string{
			"user":   &step.Prompt.User,
			"host":   &step.Prompt.Host,
			"path":   &step.Prompt.Path,
			"symbol": &step.Prompt.Symbol,
		} {
			rendered, err := Render(*field, vars)
			if err != nil {
				return nil, fmt.Errorf("step %d: prompt %s: %w", i, name, err)
			}
			*field = rendered
		}
	}

	return out, nil
}
