package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/tmuxify/tmuxify/internal/cli"
	"github.com/tmuxify/tmuxify/internal/errors"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04b575")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f87")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c6c"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check dependencies and shell hooks",
	Long: `Runs diagnostics: verifies that tmux, tmuxp, and direnv are installed
and that the direnv hook is configured in your shell startup file.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := cli.FullReport()
	fmt.Fprint(cmd.OutOrStdout(), renderReport(report))

	if !report.AllOk() {
		return errors.E(errors.Op("cmd.doctor"), errors.KindDependency, "dependency checks failed")
	}
	return nil
}

func renderReport(report *cli.Report) string {
	var sb strings.Builder

	sb.WriteString(headStyle.Render("Checking dependencies:"))
	sb.WriteString("\n")
	for _, check := range report.Checks {
		switch check.Status {
		case cli.StatusOk:
			line := fmt.Sprintf("  %s %s", okStyle.Render("✓"), check.Name)
			if check.Version != "" {
				line += " " + dimStyle.Render("("+check.Version+")")
			}
			sb.WriteString(line + "\n")
		default:
			sb.WriteString(fmt.Sprintf("  %s %s — %s\n",
				failStyle.Render("✗"), check.Name, dimStyle.Render(check.Remediation)))
		}
	}

	sb.WriteString("\n")
	if report.Shell != "" {
		sb.WriteString(fmt.Sprintf("Detected shell: %s\n", report.Shell))
	} else {
		sb.WriteString("Could not detect shell from $SHELL\n")
	}

	sb.WriteString("\n")
	if report.AllOk() {
		sb.WriteString(okStyle.Render("✓ All checks passed! You're ready to use tmuxify."))
	} else {
		sb.WriteString(failStyle.Render("✗ Some issues found. Please address them before using tmuxify."))
	}
	sb.WriteString("\n")

	return sb.String()
}
