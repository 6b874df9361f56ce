package wizard

import (
	"errors"
	"strings"

	huh "charm.land/huh/v2"
)

// ErrAborted is returned when the user cancels the wizard. Callers treat it
// as a clean exit: nothing has been written when it surfaces.
var ErrAborted = errors.New("aborted by user")

// Prompter collects a single answer from the user. The wizard state machine
// only talks to this interface; production uses the huh-backed prompter and
// tests use a scripted one.
type Prompter interface {
	// Input collects a line of text. The default is pre-filled; validate
	// re-prompts until it returns nil.
	Input(title, defaultValue string, validate func(string) error) (string, error)

	// Select picks one of options, returning its index.
	Select(title string, options []string, defaultIndex int) (int, error)

	// Confirm asks a yes/no question.
	Confirm(title string, defaultYes bool) (bool, error)

	// Text collects free-form multi-line text. Empty is allowed.
	Text(title, placeholder string) (string, error)
}

// huhPrompter renders each prompt as a one-field huh form.
type huhPrompter struct{}

// NewPrompter returns the production Prompter.
func NewPrompter() Prompter {
	return &huhPrompter{}
}

func runField(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func (p *huhPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue
	field := huh.NewInput().Title(title).Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := runField(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *huhPrompter) Select(title string, options []string, defaultIndex int) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	selected := defaultIndex
	field := huh.NewSelect[int]().Title(title).Options(opts...).Value(&selected)
	if err := runField(field); err != nil {
		return 0, err
	}
	return selected, nil
}

func (p *huhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&value)
	if err := runField(field); err != nil {
		return false, err
	}
	return value, nil
}

func (p *huhPrompter) Text(title, placeholder string) (string, error) {
	var value string
	field := huh.NewText().Title(title).Placeholder(placeholder).Value(&value)
	if err := runField(field); err != nil {
		return "", err
	}
	return value, nil
}
