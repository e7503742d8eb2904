package flow

import (
	"errors"
	"fmt"
)

// Expected failure conditions, reported as plain messages by the CLI.
var (
	// ErrNotFound means no flow with the given name is registered.
	ErrNotFound = errors.New("flow not found")

	// ErrDuplicateName means a flow with that name already exists.
	ErrDuplicateName = errors.New("flow name already exists")

	// ErrInvalidName means the name doesn't match [A-Za-z0-9_-]+.
	ErrInvalidName = errors.New("invalid flow name")
)

// ExecError reports a script that ran but exited non-zero. The captured
// output travels with the error so the CLI can show it.
type ExecError struct {
	Name     string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("flow %q exited with status %d", e.Name, e.ExitCode)
}
