// Package config provides types and functions for loading and validating
// termframe animation config files.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config represents a complete animation definition loaded from a YAML file.
type Config struct {
	Meta     Meta     `yaml:"meta"`
	Settings Settings `yaml:"settings,omitempty"`
	Steps    []Step   `yaml:"steps"`
}

// Validate checks that the config is valid.
func (c *Config) Validate() error {
	if err := c.Meta.Validate(); err != nil {
		return fmt.Errorf("meta: %w", err)
	}
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if len(c.Steps) == 0 {
		return errors.New("steps must contain at least one step")
	}
	for i, step := range c.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Meta contains animation metadata including identification and template variables.
type Meta struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Vars        map[string]string `yaml:"vars,omitempty"`
}

// Validate checks that the meta section is valid.
func (m *Meta) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name must be non-empty")
	}
	return nil
}

// Settings holds engine-level rendering parameters shared by every step.
type Settings struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FontFamily string  `yaml:"font_family,omitempty"`
	FontSize   int     `yaml:"font_size,omitempty"`
	CharWidth  float64 `yaml:"char_width,omitempty"`
	Loop       bool    `yaml:"loop"`
	Embed      *bool   `yaml:"embed,omitempty"`
}

// Default engine settings, applied by ApplyDefaults for any zero-valued field.
const (
	DefaultWidth      = 800
	DefaultHeight     = 400
	DefaultFontFamily = "Menlo, Monaco, monospace"
	DefaultFontSize   = 14
	DefaultCharWidth  = 8.4
)

// ApplyDefaults fills in default values for unset settings fields.
// Loop defaults to false; Embed defaults to true (see EmbedStyles).
func (s *Settings) ApplyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.FontFamily == "" {
		s.FontFamily = DefaultFontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	if s.CharWidth == 0 {
		s.CharWidth = DefaultCharWidth
	}
}

// EmbedStyles reports whether the stylesheet should be inlined in the SVG.
// Unset means embed.
func (s *Settings) EmbedStyles() bool {
	return s.Embed == nil || *s.Embed
}

// Validate checks that the settings section is valid. Zero values are
// permitted (ApplyDefaults fills them); negatives are not.
func (s *Settings) Validate() error {
	if s.Width < 0 {
		return errors.New("width must be non-negative")
	}
	if s.Height < 0 {
		return errors.New("height must be non-negative")
	}
	if s.FontSize < 0 {
		return errors.New("font_size must be non-negative")
	}
	if s.CharWidth < 0 {
		return errors.New("char_width must be non-negative")
	}
	return nil
}

// Step represents a single scene within the animation: static terminal
// lines, a shell prompt, and a command typed character by character.
type Step struct {
	Lines    []string  `yaml:"lines,omitempty"`
	Prompt   Prompt    `yaml:"prompt"`
	Command  string    `yaml:"command,omitempty"`
	Timing   Timing    `yaml:"timing"`
	Position *Position `yaml:"position,omitempty"`
}

// Validate checks that the step is valid.
func (s *Step) Validate() error {
	if err := s.Prompt.Validate(); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	if err := s.Timing.Validate(); err != nil {
		return fmt.Errorf("timing: %w", err)
	}
	return nil
}

// Prompt describes the shell prompt rendered before the typed command.
type Prompt struct {
	User   string `yaml:"user"`
	Host   string `yaml:"host"`
	Path   string `yaml:"path,omitempty"`
	Symbol string `yaml:"symbol,omitempty"`
}

// Validate checks that the prompt is valid.
func (p *Prompt) Validate() error {
	if strings.TrimSpace(p.User) == "" {
		return errors.New("user must be non-empty")
	}
	if strings.TrimSpace(p.Host) == "" {
		return errors.New("host must be non-empty")
	}
	return nil
}

// Text returns the rendered prompt content: user@host[:path]symbol.
func (p *Prompt) Text() string {
	symbol := p.Symbol
	if symbol == "" {
		symbol = "$"
	}
	var sb strings.Builder
	sb.WriteString(p.User)
	sb.WriteString("@")
	sb.WriteString(p.Host)
	if p.Path != "" {
		sb.WriteString(":")
		sb.WriteString(p.Path)
	}
	sb.WriteString(symbol)
	return sb.String()
}

// Timing holds the per-step timing parameters, all in seconds.
type Timing struct {
	Start   float64 `yaml:"start"`
	PerChar float64 `yaml:"per_char"`
	Hold    float64 `yaml:"hold"`
}

// Validate checks that all timing values are non-negative.
func (t *Timing) Validate() error {
	if t.Start < 0 {
		return errors.New("start must be non-negative")
	}
	if t.PerChar < 0 {
		return errors.New("per_char must be non-negative")
	}
	if t.Hold < 0 {
		return errors.New("hold must be non-negative")
	}
	return nil
}

// Position holds optional explicit pixel overrides for a step's prompt
// and command X origins. Nil fields fall back to computed layout.
type Position struct {
	PromptX  *float64 `yaml:"prompt_x,omitempty"`
	CommandX *float64 `yaml:"command_x,omitempty"`
}

// Clone returns a deep copy of the config. Compilation works on copies so
// the caller's config is never mutated (the export path compiles a
// forced-loop variant from the same config).
func (c *Config) Clone() *Config {
	out := &Config{
		Meta:     c.Meta,
		Settings: c.Settings,
	}
	if c.Meta.Vars != nil {
		out.Meta.Vars = make(map[string]string, len(c.Meta.Vars))
		for k, v := range c.Meta.Vars {
			out.Meta.Vars[k] = v
		}
	}
	if c.Settings.Embed != nil {
		embed := *c.Settings.Embed
		out.Settings.Embed = &embed
	}
	if c.Steps != nil {
		out.Steps = make([]Step, len(c.Steps))
		for i, step := range c.Steps {
			out.Steps[i] = step.clone()
		}
	}
	return out
}

func (s Step) clone() Step {
	out := s
	if s.Lines != nil {
		out.Lines = make([]string, len(s.Lines))
		copy(out.Lines, s.Lines)
	}
	if s.Position != nil {
		pos := Position{}
		if s.Position.PromptX != nil {
			v := *s.Position.PromptX
			pos.PromptX = &v
		}
		if s.Position.CommandX != nil {
			v := *s.Position.CommandX
			pos.CommandX = &v
		}
		out.Position = &pos
	}
	return out
}
