package prompt

import (
	"errors"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// ErrNotATerminal is returned when a prompt would be needed but stdin
// isn't interactive (piped input, CI). Callers should tell the user which
// argument to pass instead.
var ErrNotATerminal = errors.New("interactive prompt requires a terminal")

// run executes a prompt model to stderr, with color support detected the
// same way for every prompt.
func run(model tea.Model) (tea.Model, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, ErrNotATerminal
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	return p.Run()
}
