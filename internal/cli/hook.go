package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectShell returns the basename of $SHELL, or empty when unset.
func DetectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return ""
	}
	return filepath.Base(shell)
}

// ShellRCPath returns the startup file checked for the direnv hook.
// Only zsh and bash are probed; other shells return empty.
func ShellRCPath(shell string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch shell {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	default:
		return ""
	}
}

// DirenvHookLine returns the line a user must add to their shell rc file.
func DirenvHookLine(shell string) string {
	return fmt.Sprintf(`eval "$(direnv hook %s)"`, shell)
}

// CheckDirenvHook probes whether the direnv hook appears in the user's
// shell startup file. An unreadable or unknown shell yields
// StatusMisconfigured with a remediation hint rather than an error.
func CheckDirenvHook() CheckResult {
	result := CheckResult{Name: "direnv hook", Required: true}

	shell := DetectShell()
	if shell == "" {
		shell = "zsh"
	}

	rcPath := ShellRCPath(shell)
	if rcPath == "" {
		result.Status = StatusMisconfigured
		result.Remediation = fmt.Sprintf("unsupported shell %q; add %s to your shell startup file", shell, DirenvHookLine(shell))
		return result
	}

	data, err := os.ReadFile(rcPath)
	if err != nil {
		result.Status = StatusMisconfigured
		result.Remediation = fmt.Sprintf("add %s to %s", DirenvHookLine(shell), rcPath)
		return result
	}

	if strings.Contains(string(data), fmt.Sprintf("direnv hook %s", shell)) {
		result.Status = StatusOk
		result.Path = rcPath
		return result
	}

	result.Status = StatusMisconfigured
	result.Remediation = fmt.Sprintf("add %s to %s", DirenvHookLine(shell), rcPath)
	return result
}

// InsideTmux reports whether the process is running inside a tmux session.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}
