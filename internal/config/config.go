// Package config provides configuration types and defaults for gitscope.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitscope/gitscope/internal/log"
)

// Config holds all configuration options for gitscope.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Blame  BlameConfig  `mapstructure:"blame"`
	Syntax SyntaxConfig `mapstructure:"syntax"`
	Debug  bool         `mapstructure:"debug"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// View selects the diff layout. Valid values: "unified", "side-by-side".
	View string `mapstructure:"view"`

	// Intra selects intra-line change emphasis.
	// Valid values: "off", "chars", "words".
	Intra string `mapstructure:"intra"`

	// BufferLines is the number of lines rendered above and below the
	// visible window while scrolling.
	BufferLines int `mapstructure:"buffer_lines"`

	ShowStatusBar bool `mapstructure:"show_status_bar"`
}

// CacheConfig holds render and highlight cache limits.
type CacheConfig struct {
	// RenderEntries caps the number of cached rendered lines.
	RenderEntries int `mapstructure:"render_entries"`

	// RenderBytes caps the total byte size of cached rendered lines.
	RenderBytes int `mapstructure:"render_bytes"`

	// HighlightEntries caps the number of cached tokenized lines.
	HighlightEntries int `mapstructure:"highlight_entries"`
}

// BlameConfig holds annotate view configuration.
type BlameConfig struct {
	// Mode selects the heatmap dimension.
	// Valid values: "age", "author", "activity".
	Mode string `mapstructure:"mode"`
}

// SyntaxConfig holds syntax highlighting configuration.
type SyntaxConfig struct {
	// RuleFiles lists YAML files with additional language rule tables,
	// merged over the built-in languages at startup.
	RuleFiles []string `mapstructure:"rule_files"`
}

// Validate checks the configuration for errors. Empty values use defaults.
func (c Config) Validate() error {
	switch c.UI.View {
	case "", "unified", "side-by-side":
	default:
		return fmt.Errorf("ui.view must be \"unified\" or \"side-by-side\", got %q", c.UI.View)
	}

	switch c.UI.Intra {
	case "", "off", "chars", "words":
	default:
		return fmt.Errorf("ui.intra must be \"off\", \"chars\", or \"words\", got %q", c.UI.Intra)
	}

	if c.UI.BufferLines < 0 {
		return fmt.Errorf("ui.buffer_lines must be non-negative, got %d", c.UI.BufferLines)
	}

	if c.Cache.RenderEntries < 0 || c.Cache.RenderBytes < 0 || c.Cache.HighlightEntries < 0 {
		return fmt.Errorf("cache limits must be non-negative")
	}

	switch c.Blame.Mode {
	case "", "age", "author", "activity":
	default:
		return fmt.Errorf("blame.mode must be \"age\", \"author\", or \"activity\", got %q", c.Blame.Mode)
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			View:          "unified",
			Intra:         "chars",
			BufferLines:   50,
			ShowStatusBar: true,
		},
		Cache: CacheConfig{
			RenderEntries:    1000,
			RenderBytes:      10 * 1024 * 1024,
			HighlightEntries: 1000,
		},
		Blame: BlameConfig{
			Mode: "age",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Gitscope Configuration

# UI settings
ui:
  view: unified          # Diff layout: "unified" (default) or "side-by-side"
  intra: chars           # Intra-line emphasis: "off", "chars" (default), or "words"
  buffer_lines: 50       # Lines rendered above/below the visible window
  show_status_bar: true  # Show status bar at bottom

# Cache limits
cache:
  render_entries: 1000        # Max cached rendered lines
  render_bytes: 10485760      # Max bytes of cached rendered lines (10 MB)
  highlight_entries: 1000     # Max cached tokenized lines

# Annotate view settings
blame:
  mode: age  # Heatmap dimension: "age" (default), "author", or "activity"

# Syntax highlighting
# Additional language rule tables merged over the built-ins.
# syntax:
#   rule_files:
#     - ~/.config/gitscope/languages.yaml

# Write a debug log to ~/.config/gitscope/debug.log
# debug: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// DefaultConfigDir returns ~/.config/gitscope, or empty string if the home
// directory is unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitscope")
}
