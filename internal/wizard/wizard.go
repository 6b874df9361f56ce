// Package wizard implements the interactive configuration builder: a
// sequence of prompt stages that incrementally assembles a session
// configuration. All prompting happens before any file is written; the
// wizard returns the finished model and never touches the filesystem.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tmuxify/tmuxify/internal/cli"
	"github.com/tmuxify/tmuxify/internal/config"
	"github.com/tmuxify/tmuxify/internal/logger"
)

// state identifies a wizard stage. Stages advance mostly linearly; the
// window loop repeats internally and a rejected review can re-enter it.
type state int

const (
	statePreflight state = iota
	stateIdentity
	stateWindows
	stateReview
	stateCommit
	stateAborted
)

// maxWindows caps the window loop as a guard against runaway input.
const maxWindows = 16

// Wizard drives the interactive build. Collected answers accumulate on the
// struct until Commit assembles and validates the final Config.
type Wizard struct {
	prompter Prompter
	report   func() *cli.Report
	req      config.Request
	out      io.Writer

	sessionName string
	location    config.Location
	startDir    string
	windows     []config.Window
}

// New creates a wizard for the given request. The report function is the
// preflight gate; pass cli.FullReport in production.
func New(prompter Prompter, report func() *cli.Report, req config.Request) *Wizard {
	return &Wizard{
		prompter: prompter,
		report:   report,
		req:      req,
		out:      os.Stdout,
	}
}

// SetOutput redirects informational output (previews, warnings). Used by tests.
func (w *Wizard) SetOutput(out io.Writer) {
	w.out = out
}

// Run executes the wizard to completion. It returns the validated
// configuration and storage location on commit, ErrAborted on user
// cancellation, and a dependency error when preflight fails. No state
// survives an abort.
func (w *Wizard) Run() (*config.Config, config.Location, error) {
	log := logger.ComponentLogger("wizard")

	st := statePreflight
	for {
		var err error
		switch st {
		case statePreflight:
			st, err = w.preflight()
		case stateIdentity:
			st, err = w.identity()
		case stateWindows:
			st, err = w.collectWindows()
		case stateReview:
			st, err = w.review()
		case stateCommit:
			cfg := config.New(w.sessionName, w.startDir, w.windows)
			if err := cfg.Validate(); err != nil {
				return nil, 0, err
			}
			log.Info("wizard committed", "session", cfg.SessionName, "windows", len(cfg.Windows))
			return cfg, w.location, nil
		case stateAborted:
			log.Info("wizard aborted")
			return nil, 0, ErrAborted
		}
		if err != nil {
			if err == ErrAborted {
				st = stateAborted
				continue
			}
			return nil, 0, err
		}
	}
}

// preflight gates the wizard on the dependency report. Any missing required
// tool halts before the first prompt.
func (w *Wizard) preflight() (state, error) {
	report := w.report()
	if err := report.Validate(); err != nil {
		for _, check := range report.MissingRequired() {
			fmt.Fprintf(w.out, "missing: %s (%s)\n", check.Name, check.Remediation)
		}
		fmt.Fprintln(w.out, "\nRun 'tmuxify doctor' to check your system configuration.")
		return stateAborted, err
	}

	if cli.InsideTmux() {
		fmt.Fprintln(w.out, "Warning: you are running inside a tmux session.")
		fmt.Fprintln(w.out, "tmuxify creates new sessions; nesting them may behave unexpectedly.")
		cont, err := w.prompter.Confirm("Continue anyway?", false)
		if err != nil {
			return stateAborted, err
		}
		if !cont {
			return stateAborted, nil
		}
	}

	return stateIdentity, nil
}

// identity collects the session name and storage location. Flags skip the
// corresponding prompts.
func (w *Wizard) identity() (state, error) {
	if w.req.SessionName != "" {
		if err := config.ValidateSessionName(w.req.SessionName); err != nil {
			return stateAborted, fmt.Errorf("invalid --session value: %w", err)
		}
		w.sessionName = w.req.SessionName
	} else {
		name, err := w.prompter.Input("Session name",
			config.DefaultSessionName(w.req.ProjectDir), validateSessionInput)
		if err != nil {
			return stateAborted, err
		}
		w.sessionName = name
	}

	if w.req.Location != "" {
		location, err := config.ParseLocation(w.req.Location)
		if err != nil {
			return stateAborted, err
		}
		w.location = location
	} else {
		idx, err := w.prompter.Select("Where should the tmuxp config be stored?",
			[]string{"home (~/.tmuxp/)", "project (./.tmuxp.yaml)"}, 0)
		if err != nil {
			return stateAborted, err
		}
		if idx == 0 {
			w.location = config.LocationHome
		} else {
			w.location = config.LocationProject
		}
	}

	w.startDir = w.req.StartDir
	if w.startDir == "" {
		w.startDir = w.req.ProjectDir
	}

	return stateWindows, nil
}

// collectWindows runs the window loop. Re-entering after a rejected review
// discards previously collected windows.
func (w *Wizard) collectWindows() (state, error) {
	w.windows = nil
	for {
		win, err := w.collectWindow(len(w.windows) + 1)
		if err != nil {
			return stateAborted, err
		}
		w.windows = append(w.windows, win)

		if len(w.windows) >= maxWindows {
			fmt.Fprintf(w.out, "Reached the maximum of %d windows.\n", maxWindows)
			break
		}
		more, err := w.prompter.Confirm("Add another window?", false)
		if err != nil {
			return stateAborted, err
		}
		if !more {
			break
		}
	}
	return stateReview, nil
}

func (w *Wizard) collectWindow(num int) (config.Window, error) {
	name, err := w.prompter.Input(fmt.Sprintf("Window #%d name", num), "", validateWindowName)
	if err != nil {
		return config.Window{}, err
	}

	layoutOptions := []string{"none (tmux default)"}
	for _, l := range config.Layouts() {
		layoutOptions = append(layoutOptions, string(l))
	}
	idx, err := w.prompter.Select(fmt.Sprintf("Window #%d layout", num), layoutOptions, 0)
	if err != nil {
		return config.Window{}, err
	}
	var layout config.Layout
	if idx > 0 {
		layout = config.Layouts()[idx-1]
	}

	panes, err := w.collectPanes()
	if err != nil {
		return config.Window{}, err
	}

	return config.NewWindow(name, layout, panes), nil
}

// collectPanes runs the pane loop. Every window leaves with at least one
// pane; a window that would end up empty gets a single blank pane instead
// of an error.
func (w *Wizard) collectPanes() ([]config.Pane, error) {
	var panes []config.Pane
	for {
		text, err := w.prompter.Text(
			fmt.Sprintf("Pane #%d commands (one per line, blank for none)", len(panes)+1),
			"nvim")
		if err != nil {
			return nil, err
		}
		panes = append(panes, config.NewPane(SplitCommands(text)))

		more, err := w.prompter.Confirm("Add another pane?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	if len(panes) == 0 {
		panes = []config.Pane{config.BlankPane()}
	}
	return panes, nil
}

// review shows the exact document that would be written and asks for final
// confirmation. Rejection offers a restart of the window loop or an abort;
// it never silently discards the choice.
func (w *Wizard) review() (state, error) {
	cfg := config.New(w.sessionName, w.startDir, w.windows)
	preview, err := cfg.Render()
	if err != nil {
		return stateAborted, err
	}

	fmt.Fprintln(w.out, "Configuration preview:")
	fmt.Fprintln(w.out, "---")
	fmt.Fprint(w.out, preview)
	fmt.Fprintln(w.out, "---")

	ok, err := w.prompter.Confirm("Proceed with this configuration?", true)
	if err != nil {
		return stateAborted, err
	}
	if ok {
		return stateCommit, nil
	}

	idx, err := w.prompter.Select("What next?",
		[]string{"reconfigure windows", "abort"}, 0)
	if err != nil {
		return stateAborted, err
	}
	if idx == 0 {
		return stateWindows, nil
	}
	return stateAborted, nil
}

func validateSessionInput(s string) error {
	return config.ValidateSessionName(s)
}

func validateWindowName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("window name must not be empty")
	}
	return nil
}

// SplitCommands turns free-form command text into an ordered command list.
// Lines and comma-separated segments each become one command; blank
// segments and #-comment lines are dropped.
func SplitCommands(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
