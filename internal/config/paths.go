package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Location determines where the tmuxp document is stored. It is not part
// of the serialized document itself.
type Location int

const (
	// LocationHome stores the document in ~/.tmuxp/<session>.yaml.
	LocationHome Location = iota
	// LocationProject stores the document in <project>/.tmuxp.yaml.
	LocationProject
)

func (l Location) String() string {
	switch l {
	case LocationHome:
		return "home"
	case LocationProject:
		return "project"
	default:
		return "unknown"
	}
}

// ParseLocation parses a --tmuxp-location flag value.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return LocationHome, nil
	case "project":
		return LocationProject, nil
	default:
		return LocationHome, fmt.Errorf("invalid location %q (use 'home' or 'project')", s)
	}
}

// WriteTarget is the resolved pair of output paths for a session.
type WriteTarget struct {
	ConfigPath string // tmuxp layout document
	EnvrcPath  string // direnv activation script
}

// ResolveTarget computes the output paths for the given storage location
// and project root. The .envrc always lives at the project root; direnv
// only sources it from there.
func (c *Config) ResolveTarget(location Location, projectDir string) (WriteTarget, error) {
	target := WriteTarget{EnvrcPath: filepath.Join(projectDir, ".envrc")}

	switch location {
	case LocationHome:
		home, err := os.UserHomeDir()
		if err != nil {
			return target, fmt.Errorf("could not determine home directory: %w", err)
		}
		target.ConfigPath = filepath.Join(home, ".tmuxp", c.SessionName+".yaml")
	case LocationProject:
		target.ConfigPath = filepath.Join(projectDir, ".tmuxp.yaml")
	default:
		return target, fmt.Errorf("invalid location %d", location)
	}

	return target, nil
}

// loadPath is the path the activation script passes to tmuxp. Home-scoped
// documents use a ~ path so the script survives home-directory renames;
// project-scoped documents use a relative path since direnv sources the
// script from the project root.
func (c *Config) loadPath(location Location) string {
	if location == LocationHome {
		return "~/.tmuxp/" + c.SessionName + ".yaml"
	}
	return "./.tmuxp.yaml"
}

// Envrc renders the direnv activation script. Sourcing it outside tmux
// starts or attaches the named session; inside tmux it does nothing, so
// re-sourcing never stacks sessions.
func (c *Config) Envrc(location Location) string {
	return fmt.Sprintf(`# tmuxify: session %q
if [ -z "$TMUX" ]; then
  tmuxp load -y %s
fi
`, c.SessionName, c.loadPath(location))
}
