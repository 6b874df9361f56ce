package config

import (
	"strings"
	"testing"

	"github.com/tmuxify/tmuxify/internal/errors"
)

func sampleConfig() *Config {
	return New("app", "/home/u/app", []Window{
		NewWindow("editor", LayoutMainHorizontal, []Pane{
			NewPane([]string{"nvim"}),
			NewPane([]string{"git status"}),
		}),
	})
}

func TestValidate_Valid(t *testing.T) {
	if err := sampleConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty session name", func(c *Config) { c.SessionName = "" }},
		{"whitespace session name", func(c *Config) { c.SessionName = "   " }},
		{"session name with colon", func(c *Config) { c.SessionName = "a:b" }},
		{"session name with dot", func(c *Config) { c.SessionName = "a.b" }},
		{"relative start directory", func(c *Config) { c.StartDirectory = "home/u/app" }},
		{"no windows", func(c *Config) { c.Windows = nil }},
		{"window without name", func(c *Config) { c.Windows[0].Name = " " }},
		{"window without panes", func(c *Config) { c.Windows[0].Panes = nil }},
		{"bogus layout", func(c *Config) { c.Windows[0].Layout = "sideways" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, errors.KindValidation) {
				t.Errorf("expected KindValidation, got %v", errors.GetKind(err))
			}
		})
	}
}

func TestRender_MatchesTmuxpSchema(t *testing.T) {
	doc, err := sampleConfig().Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"session_name: app",
		"start_directory: /home/u/app",
		"window_name: editor",
		"layout: main-horizontal",
		"shell_command:",
		"- nvim",
		"- git status",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered document missing %q:\n%s", want, doc)
		}
	}
}

func TestRender_RefusesInvalidConfig(t *testing.T) {
	cfg := sampleConfig()
	cfg.Windows = nil
	if _, err := cfg.Render(); err == nil {
		t.Fatal("Render should refuse a config with zero windows")
	}
}

func TestRoundTrip(t *testing.T) {
	original := New("app", "/home/u/app", []Window{
		NewWindow("editor", LayoutMainHorizontal, []Pane{
			NewPane([]string{"nvim"}),
			NewPane([]string{"git status"}),
		}),
		NewWindow("server", "", []Pane{
			BlankPane(),
			NewPane([]string{"make run", "tail -f log"}),
		}),
	})

	doc, err := original.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	parsed, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if parsed.SessionName != original.SessionName {
		t.Errorf("session name = %q, want %q", parsed.SessionName, original.SessionName)
	}
	if parsed.StartDirectory != original.StartDirectory {
		t.Errorf("start directory = %q, want %q", parsed.StartDirectory, original.StartDirectory)
	}
	if len(parsed.Windows) != len(original.Windows) {
		t.Fatalf("window count = %d, want %d", len(parsed.Windows), len(original.Windows))
	}
	for i, win := range original.Windows {
		got := parsed.Windows[i]
		if got.Name != win.Name {
			t.Errorf("window %d name = %q, want %q", i, got.Name, win.Name)
		}
		if got.Layout != win.Layout {
			t.Errorf("window %d layout = %q, want %q", i, got.Layout, win.Layout)
		}
		if len(got.Panes) != len(win.Panes) {
			t.Fatalf("window %d pane count = %d, want %d", i, len(got.Panes), len(win.Panes))
		}
		for j, pane := range win.Panes {
			gotCmds := got.Panes[j].ShellCommand
			if len(gotCmds) != len(pane.ShellCommand) {
				t.Fatalf("window %d pane %d command count = %d, want %d",
					i, j, len(gotCmds), len(pane.ShellCommand))
			}
			for k, cmd := range pane.ShellCommand {
				if gotCmds[k] != cmd {
					t.Errorf("window %d pane %d command %d = %q, want %q", i, j, k, gotCmds[k], cmd)
				}
			}
		}
	}
}

func TestParse_RejectsUnknownLayout(t *testing.T) {
	doc := `session_name: app
start_directory: /home/u/app
windows:
  - window_name: editor
    layout: diagonal
    panes:
      - shell_command:
          - nvim
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("Parse should reject an unknown layout name")
	}
}

func TestParseLayout(t *testing.T) {
	if _, err := ParseLayout("main-vertical"); err != nil {
		t.Errorf("unexpected error for valid layout: %v", err)
	}
	if _, err := ParseLayout("stacked"); err == nil {
		t.Error("expected error for unknown layout")
	}
	if len(Layouts()) != 5 {
		t.Errorf("expected 5 layouts, got %d", len(Layouts()))
	}
}

func TestDefaultSessionName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"/home/u/app", "app"},
		{"/home/u/my.app", "my-app"},
		{"/", "my-session"},
		{".", "my-session"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			if got := DefaultSessionName(tt.dir); got != tt.want {
				t.Errorf("DefaultSessionName(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}
