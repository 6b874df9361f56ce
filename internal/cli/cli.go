// Package cli provides dependency validation for the external tools
// tmuxify relies on: tmux, tmuxp, and direnv.
package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tmuxify/tmuxify/internal/errors"
)

// Status describes the outcome of a single dependency check.
type Status int

const (
	// StatusOk means the dependency is present and usable.
	StatusOk Status = iota
	// StatusMissing means the dependency could not be located.
	StatusMissing
	// StatusMisconfigured means the dependency exists but is not wired up
	// (e.g. direnv installed but its shell hook is absent).
	StatusMisconfigured
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusMisconfigured:
		return "misconfigured"
	default:
		return "unknown"
	}
}

// Prerequisite represents a required CLI tool
type Prerequisite struct {
	Name        string // Command name (e.g., "tmux")
	Required    bool   // Whether the tool is required to run the app
	Description string // Human-readable description
	InstallHint string // How to install the missing tool
}

// DefaultPrerequisites returns the list of CLI tools needed by tmuxify
func DefaultPrerequisites() []Prerequisite {
	return []Prerequisite{
		{
			Name:        "tmux",
			Required:    true,
			Description: "Terminal multiplexer",
			InstallHint: "brew install tmux",
		},
		{
			Name:        "tmuxp",
			Required:    true,
			Description: "tmux session manager",
			InstallHint: "brew install tmuxp",
		},
		{
			Name:        "direnv",
			Required:    true,
			Description: "Directory-scoped environment loader",
			InstallHint: "brew install direnv",
		},
	}
}

// CheckResult contains the result of checking a prerequisite
type CheckResult struct {
	Name        string
	Required    bool
	Status      Status
	Path        string // Path to the executable if found
	Version     string // Version string if available
	Remediation string // Hint shown when the check is not ok
}

// Check verifies that a CLI tool is available in PATH
func Check(prereq Prerequisite) CheckResult {
	result := CheckResult{Name: prereq.Name, Required: prereq.Required}

	path, err := exec.LookPath(prereq.Name)
	if err != nil {
		result.Status = StatusMissing
		result.Remediation = fmt.Sprintf("install with: %s", prereq.InstallHint)
		return result
	}

	result.Status = StatusOk
	result.Path = path

	if version := getVersion(prereq.Name); version != "" {
		result.Version = version
	}

	return result
}

// CheckAll verifies all prerequisites and returns results
func CheckAll(prereqs []Prerequisite) []CheckResult {
	results := make([]CheckResult, len(prereqs))
	for i, prereq := range prereqs {
		results[i] = Check(prereq)
	}
	return results
}

// Report is the full dependency report: binary checks plus the direnv
// shell-hook check. All failures are data, never panics, so callers decide
// how to react.
type Report struct {
	Checks []CheckResult
	Shell  string // detected shell, empty when undetectable
}

// AllOk reports whether every check passed.
func (r *Report) AllOk() bool {
	for _, c := range r.Checks {
		if c.Status != StatusOk {
			return false
		}
	}
	return true
}

// MissingRequired returns the required checks whose tool could not be located.
func (r *Report) MissingRequired() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if c.Required && c.Status == StatusMissing {
			out = append(out, c)
		}
	}
	return out
}

// Validate returns a structured error describing missing required tools,
// or nil when all required checks passed. The hook check never blocks here;
// it only surfaces through doctor output.
func (r *Report) Validate() error {
	missing := r.MissingRequired()
	if len(missing) == 0 {
		return nil
	}

	var lines []string
	for _, c := range missing {
		lines = append(lines, fmt.Sprintf("  - %s (%s)", c.Name, c.Remediation))
	}
	return errors.E(errors.Op("cli.Validate"), errors.KindDependency,
		fmt.Sprintf("missing required tools:\n%s", strings.Join(lines, "\n")))
}

// FullReport runs every dependency check, including the direnv hook probe.
func FullReport() *Report {
	report := &Report{
		Checks: CheckAll(DefaultPrerequisites()),
		Shell:  DetectShell(),
	}
	report.Checks = append(report.Checks, CheckDirenvHook())
	return report
}

// getVersion attempts to get the version of a CLI tool
func getVersion(name string) string {
	// Different tools use different version flags (tmux wants -V)
	versionFlags := []string{"--version", "-V", "-v", "version"}

	for _, flag := range versionFlags {
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				version := strings.TrimSpace(lines[0])
				// Limit length to avoid overly long version strings
				if len(version) > 100 {
					version = version[:100]
				}
				return version
			}
		}
	}

	return ""
}
