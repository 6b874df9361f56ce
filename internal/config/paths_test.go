package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input   string
		want    Location
		wantErr bool
	}{
		{"home", LocationHome, false},
		{"HOME", LocationHome, false},
		{"project", LocationProject, false},
		{" project ", LocationProject, false},
		{"elsewhere", LocationHome, true},
		{"", LocationHome, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLocation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLocation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveTarget_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := sampleConfig()
	target, err := cfg.ResolveTarget(LocationHome, "/home/u/app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantConfig := filepath.Join(home, ".tmuxp", "app.yaml")
	if target.ConfigPath != wantConfig {
		t.Errorf("ConfigPath = %q, want %q", target.ConfigPath, wantConfig)
	}
	if target.EnvrcPath != "/home/u/app/.envrc" {
		t.Errorf("EnvrcPath = %q, want /home/u/app/.envrc", target.EnvrcPath)
	}
}

func TestResolveTarget_Project(t *testing.T) {
	cfg := sampleConfig()
	target, err := cfg.ResolveTarget(LocationProject, "/home/u/app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if target.ConfigPath != "/home/u/app/.tmuxp.yaml" {
		t.Errorf("ConfigPath = %q, want /home/u/app/.tmuxp.yaml", target.ConfigPath)
	}
	if target.EnvrcPath != "/home/u/app/.envrc" {
		t.Errorf("EnvrcPath = %q, want /home/u/app/.envrc", target.EnvrcPath)
	}
}

func TestEnvrc_Home(t *testing.T) {
	script := sampleConfig().Envrc(LocationHome)

	for _, want := range []string{
		`session "app"`,
		`[ -z "$TMUX" ]`,
		"tmuxp load -y ~/.tmuxp/app.yaml",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("envrc missing %q:\n%s", want, script)
		}
	}
}

func TestEnvrc_Project(t *testing.T) {
	script := sampleConfig().Envrc(LocationProject)

	if !strings.Contains(script, "tmuxp load -y ./.tmuxp.yaml") {
		t.Errorf("envrc should load the project-relative document:\n%s", script)
	}
}
