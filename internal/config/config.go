// Package config holds the in-memory session model and its tmuxp
// serialization. A Config is built incrementally by the wizard (or in one
// shot from CLI flags), validated, and then treated as immutable.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tmuxify/tmuxify/internal/errors"
)

// Config is the root session configuration. Field names and nesting match
// the tmuxp YAML schema, so a rendered document loads directly with
// `tmuxp load`.
type Config struct {
	SessionName    string   `yaml:"session_name"`
	StartDirectory string   `yaml:"start_directory"`
	Windows        []Window `yaml:"windows"`
}

// New creates a session configuration.
func New(sessionName, startDirectory string, windows []Window) *Config {
	return &Config{
		SessionName:    sessionName,
		StartDirectory: startDirectory,
		Windows:        windows,
	}
}

// reservedSessionChars are rejected by tmux in session names.
const reservedSessionChars = ".:/"

// ValidateSessionName checks a session name in isolation so the wizard can
// re-prompt on bad input before a Config exists.
func ValidateSessionName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("session name must not be empty")
	}
	if i := strings.IndexAny(name, reservedSessionChars); i >= 0 {
		return fmt.Errorf("session name must not contain %q", name[i])
	}
	return nil
}

// Validate checks the whole model. The wizard validates per stage, but
// Commit re-validates defensively before any file is touched.
func (c *Config) Validate() error {
	if err := ValidateSessionName(c.SessionName); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	if !filepath.IsAbs(c.StartDirectory) {
		return errors.ConfigInvalid(fmt.Sprintf("start directory %q is not absolute", c.StartDirectory))
	}
	if len(c.Windows) == 0 {
		return errors.ConfigInvalid("configuration has no windows")
	}
	for i, w := range c.Windows {
		if strings.TrimSpace(w.Name) == "" {
			return errors.ConfigInvalid(fmt.Sprintf("window %d has no name", i+1))
		}
		if w.Layout != "" {
			if _, err := ParseLayout(string(w.Layout)); err != nil {
				return errors.ConfigInvalid(err.Error())
			}
		}
		if len(w.Panes) == 0 {
			return errors.ConfigInvalid(fmt.Sprintf("window %q has no panes", w.Name))
		}
	}
	return nil
}

// Render serializes the configuration to tmuxp YAML. It refuses to render
// a model that fails validation, so a structurally invalid document can
// never reach disk.
func (c *Config) Render() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render tmuxp config: %w", err)
	}
	return string(data), nil
}

// Parse reconstructs a Config from a rendered tmuxp document. Render and
// Parse round-trip losslessly: session name, start directory, window and
// pane order, and command lists all survive.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tmuxp config: %w", err)
	}
	return &cfg, nil
}

// DefaultSessionName derives a session name from the project directory,
// with tmux-reserved characters replaced so the default always validates.
func DefaultSessionName(projectDir string) string {
	name := filepath.Base(filepath.Clean(projectDir))
	if name == "/" || name == "." || name == "" {
		return "my-session"
	}
	for _, ch := range reservedSessionChars {
		name = strings.ReplaceAll(name, string(ch), "-")
	}
	return name
}
