package config

// Request carries the flag-derived inputs shared by both builders.
// Empty fields fall back to defaults derived from the project directory.
type Request struct {
	ProjectDir  string // absolute project root
	SessionName string // --session
	StartDir    string // --start-dir
	Location    string // --tmuxp-location, "" means home
}

// FromRequest builds a complete configuration without prompting, for
// scripted use. Anything not supplied gets the same defaults the wizard
// offers: session name from the project basename, start directory at the
// project root, and a single "main" window with one blank pane.
func FromRequest(req Request) (*Config, Location, error) {
	location := LocationHome
	if req.Location != "" {
		var err error
		location, err = ParseLocation(req.Location)
		if err != nil {
			return nil, location, err
		}
	}

	sessionName := req.SessionName
	if sessionName == "" {
		sessionName = DefaultSessionName(req.ProjectDir)
	}

	startDir := req.StartDir
	if startDir == "" {
		startDir = req.ProjectDir
	}

	cfg := New(sessionName, startDir, []Window{
		NewWindow("main", "", []Pane{BlankPane()}),
	})
	if err := cfg.Validate(); err != nil {
		return nil, location, err
	}
	return cfg, location, nil
}
