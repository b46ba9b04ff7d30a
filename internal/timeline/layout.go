package timeline

import "github.com/termframe/termframe/internal/config"

// ResolveLayout computes the horizontal pixel offsets for a step's prompt
// and command text. The prompt width is its rune count times the fixed
// character width; the command origin follows the prompt plus a fixed gap.
// Explicit per-step position overrides take precedence. Pure and
// timing-independent.
func ResolveLayout(step config.Step, charWidth float64) Layout {
	promptX := PromptMargin
	if step.Position != nil && step.Position.PromptX != nil {
		promptX = *step.Position.PromptX
	}

	promptWidth := float64(len([]rune(step.Prompt.Text()))) * charWidth

	commandX := promptX + promptWidth + PromptGap
	if step.Position != nil && step.Position.CommandX != nil {
		commandX = *step.Position.CommandX
	}

	return Layout{
		PromptX:     promptX,
		PromptWidth: promptWidth,
		CommandX:    commandX,
	}
}
