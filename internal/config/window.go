package config

import (
	"fmt"
	"strings"
)

// Layout identifies a tmux window layout. The empty string means
// "no layout", letting tmux apply its default.
type Layout string

const (
	LayoutTiled          Layout = "tiled"
	LayoutEvenHorizontal Layout = "even-horizontal"
	LayoutEvenVertical   Layout = "even-vertical"
	LayoutMainHorizontal Layout = "main-horizontal"
	LayoutMainVertical   Layout = "main-vertical"
)

// Layouts returns all selectable layouts in display order.
func Layouts() []Layout {
	return []Layout{
		LayoutTiled,
		LayoutEvenHorizontal,
		LayoutEvenVertical,
		LayoutMainHorizontal,
		LayoutMainVertical,
	}
}

// ParseLayout validates a layout identifier.
func ParseLayout(s string) (Layout, error) {
	s = strings.TrimSpace(s)
	for _, l := range Layouts() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// UnmarshalYAML validates layout names while parsing, so a hand-edited
// document with a bogus layout fails at parse time rather than inside tmuxp.
func (l *Layout) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		*l = ""
		return nil
	}
	parsed, err := ParseLayout(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Window is a named group of panes sharing a layout.
type Window struct {
	Name   string `yaml:"window_name"`
	Layout Layout `yaml:"layout,omitempty"`
	Panes  []Pane `yaml:"panes"`
}

// NewWindow creates a window. A window with zero panes never leaves the
// builders; callers normalize to at least one blank pane.
func NewWindow(name string, layout Layout, panes []Pane) Window {
	return Window{Name: name, Layout: layout, Panes: panes}
}
