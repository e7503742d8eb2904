package flow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/flow/internal/cmd"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/registry"
	"github.com/raphi011/flow/internal/script"
	"github.com/raphi011/flow/internal/settings"
	"github.com/raphi011/flow/internal/workdir"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Service orchestrates flow operations against the storage root named in
// the settings. The commands gate on settings.Initialized before
// constructing one; the service itself assumes a bootstrapped root.
type Service struct {
	cfg settings.Settings
}

// NewService creates a service operating on the given settings snapshot.
func NewService(cfg settings.Settings) *Service {
	return &Service{cfg: cfg}
}

// RegistryPath returns the registry file location under the storage root.
func (s *Service) RegistryPath() string {
	return registry.PathIn(s.cfg.StorageRoot)
}

// ScriptPath resolves a flow's stored (root-relative) script path to an
// absolute one.
func (s *Service) ScriptPath(f registry.Flow) string {
	return filepath.Join(s.cfg.StorageRoot, f.ScriptPath)
}

// flowDir is the per-flow directory owning the script file.
func (s *Service) flowDir(f registry.Flow) string {
	return filepath.Dir(s.ScriptPath(f))
}

// RunResult holds the captured output of a successful script run.
type RunResult struct {
	Stdout string
	Stderr string
}

// Create validates, generates the script and registers the flow.
//
// The registry write is the last step: if the script directory or file
// cannot be written the registry stays untouched. The reverse failure
// (script written, registry write fails) can leave an orphaned script
// behind; that is an accepted risk of the file-then-record ordering.
func (s *Service) Create(name, workingDir, commandList string) (registry.Flow, error) {
	if !namePattern.MatchString(name) {
		return registry.Flow{}, fmt.Errorf("%w: %q (allowed: letters, digits, _ and -)", ErrInvalidName, name)
	}

	reg, err := registry.Load(s.RegistryPath())
	if err != nil {
		return registry.Flow{}, err
	}

	// Uniqueness check and append use the same loaded snapshot.
	if reg.FindByName(name) != nil {
		return registry.Flow{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	info, err := os.Stat(workingDir)
	if err != nil {
		return registry.Flow{}, fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return registry.Flow{}, fmt.Errorf("working directory is not a directory: %s", workingDir)
	}

	dialect, err := script.Parse(s.cfg.ScriptDialect)
	if err != nil {
		return registry.Flow{}, err
	}

	text, ext, err := script.Generate(dialect, commandList)
	if err != nil {
		return registry.Flow{}, err
	}

	f := registry.Flow{
		Name:       name,
		WorkingDir: workingDir,
		ScriptPath: filepath.Join("commands", name, "script"+ext),
	}

	scriptPath := s.ScriptPath(f)
	if err := os.MkdirAll(filepath.Dir(scriptPath), 0o755); err != nil {
		return registry.Flow{}, fmt.Errorf("create flow directory: %w", err)
	}
	if err := os.WriteFile(scriptPath, []byte(text), 0o755); err != nil {
		return registry.Flow{}, fmt.Errorf("write script: %w", err)
	}

	if err := reg.Add(f); err != nil {
		return registry.Flow{}, err
	}
	if err := reg.Save(s.RegistryPath()); err != nil {
		return registry.Flow{}, err
	}

	return f, nil
}

// List returns flow names in registry (creation) order.
func (s *Service) List() ([]string, error) {
	reg, err := registry.Load(s.RegistryPath())
	if err != nil {
		return nil, err
	}
	return reg.Names(), nil
}

// Flows returns all registered flows in registry order.
func (s *Service) Flows() ([]registry.Flow, error) {
	reg, err := registry.Load(s.RegistryPath())
	if err != nil {
		return nil, err
	}
	return reg.Flows, nil
}

// Find returns the named flow or ErrNotFound.
func (s *Service) Find(name string) (registry.Flow, error) {
	reg, err := registry.Load(s.RegistryPath())
	if err != nil {
		return registry.Flow{}, err
	}
	f := reg.FindByName(name)
	if f == nil {
		return registry.Flow{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return *f, nil
}

// Run executes the flow's script inside its working directory and returns
// the captured output. The caller's working directory is restored on every
// exit path, including subprocess failures. A non-zero exit surfaces as
// *ExecError carrying the captured output; the subprocess blocks until the
// child exits, there is no timeout.
func (s *Service) Run(ctx context.Context, name string) (*RunResult, error) {
	f, err := s.Find(name)
	if err != nil {
		return nil, err
	}

	dialect, err := script.Parse(s.cfg.ScriptDialect)
	if err != nil {
		return nil, err
	}

	argv, err := script.Interpreter(dialect, s.ScriptPath(f))
	if err != nil {
		return nil, err
	}

	l := log.FromContext(ctx)

	var res RunResult
	err = workdir.In(f.WorkingDir, func() error {
		l.Command(argv[0], argv[1:]...)

		stdout, stderr, err := cmd.Capture(exec.Command(argv[0], argv[1:]...))
		res = RunResult{Stdout: stdout, Stderr: stderr}
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return &ExecError{
					Name:     name,
					ExitCode: exitErr.ExitCode(),
					Stdout:   stdout,
					Stderr:   stderr,
				}
			}
			return fmt.Errorf("run script: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// Edit opens the flow's script in the user's editor, with the flow's
// working directory as the editor's working directory. Only spawn errors
// are reported; the editor's exit status is its own business.
func (s *Service) Edit(ctx context.Context, name string) error {
	f, err := s.Find(name)
	if err != nil {
		return err
	}

	editor := s.editor()
	scriptPath := s.ScriptPath(f)
	l := log.FromContext(ctx)

	return workdir.In(f.WorkingDir, func() error {
		l.Command(editor, scriptPath)

		c := exec.Command(editor, scriptPath)
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			c.Stdin = os.Stdin
			c.Stdout = os.Stderr
			c.Stderr = os.Stderr
		}
		if err := c.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return nil
			}
			return fmt.Errorf("launch editor %s: %w", editor, err)
		}
		return nil
	})
}

func (s *Service) editor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	switch script.Dialect(s.cfg.ScriptDialect) {
	case script.PowerShell, script.Cmd:
		return "notepad"
	}
	return "vi"
}

// Delete removes the flow's script directory, then the registry record.
// File removal comes first: if it fails the registry is left untouched and
// the flow still exists, so the delete can simply be retried.
func (s *Service) Delete(name string) error {
	reg, err := registry.Load(s.RegistryPath())
	if err != nil {
		return err
	}

	f := reg.FindByName(name)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := os.RemoveAll(s.flowDir(*f)); err != nil {
		return fmt.Errorf("remove script directory: %w", err)
	}

	if err := reg.Remove(name); err != nil {
		return err
	}
	return reg.Save(s.RegistryPath())
}

// HasFlows reports whether any flow is registered, for the reinit state
// machine.
func (s *Service) HasFlows() (bool, error) {
	reg, err := registry.Load(s.RegistryPath())
	if err != nil {
		return false, err
	}
	return len(reg.Flows) > 0, nil
}

// MoveRoot relocates the whole storage root (per-flow directories and the
// registry file) to newRoot in one recursive move. Registry records stay
// valid because script paths are stored relative to the root. The caller
// updates and saves the settings afterwards; a failure here leaves the old
// root in place.
func (s *Service) MoveRoot(newRoot string) error {
	if err := os.MkdirAll(filepath.Dir(newRoot), 0o755); err != nil {
		return fmt.Errorf("create parent of new storage root: %w", err)
	}
	if err := os.Rename(s.cfg.StorageRoot, newRoot); err != nil {
		return fmt.Errorf("move storage root: %w", err)
	}
	return nil
}

// DeleteRoot discards the entire storage root: every flow, every script
// and the registry file.
func (s *Service) DeleteRoot() error {
	if err := os.RemoveAll(s.cfg.StorageRoot); err != nil {
		return fmt.Errorf("delete storage root: %w", err)
	}
	return nil
}
