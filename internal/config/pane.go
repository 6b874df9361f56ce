package config

// Pane is a single terminal pane. Commands run in order; a pane with no
// commands opens the default shell.
type Pane struct {
	ShellCommand []string `yaml:"shell_command,omitempty"`
}

// NewPane creates a pane with the given ordered commands.
func NewPane(commands []string) Pane {
	return Pane{ShellCommand: commands}
}

// BlankPane creates a pane with no commands.
func BlankPane() Pane {
	return Pane{}
}
