package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/flow/internal/storage"
)

// Sentinel errors for settings I/O. Callers match with errors.Is.
var (
	// ErrUnreadable means the settings file is missing or malformed.
	// The missing-file case additionally matches os.ErrNotExist so that
	// 'flow init' can tell a first run from a corrupt file.
	ErrUnreadable = errors.New("settings unreadable")

	// ErrWriteFailed means the settings file could not be persisted.
	ErrWriteFailed = errors.New("settings write failed")
)

// Settings is the persisted configuration record. It is loaded once per
// invocation and passed down explicitly; there is no package-level state.
type Settings struct {
	StorageRoot     string `toml:"storage_root"`      // where scripts and the registry live
	ScriptDialect   string `toml:"script_dialect"`    // bash, zsh, powershell or cmd
	DefaultFlowPath string `toml:"default_flow_path"` // default working directory offered on create
	CommandDir      string `toml:"command_dir"`       // derived: storage_root/commands
	Initialized     bool   `toml:"initialized"`
}

// Path returns the settings file location, ~/.config/flow/settings.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flow", "settings.toml"), nil
}

// Load reads the settings file at path. Unlike the registry, a missing
// settings file is an error: every command except init needs a bootstrapped
// configuration to work with.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: parse %s: %w", ErrUnreadable, path, err)
	}

	return s, nil
}

const header = `# flow settings
# Managed by 'flow init' and 'flow reinit'; edit at your own risk.

`

// Save persists s to path atomically. The derived command_dir field is
// recomputed from storage_root on every save so the two never drift.
func Save(path string, s Settings) error {
	if s.StorageRoot != "" {
		s.CommandDir = filepath.Join(s.StorageRoot, "commands")
	}

	buf, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err := storage.WriteFileAtomic(path, append([]byte(header), buf...), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

// Reset deletes the settings file. Flows and the registry are untouched.
// Deleting a file that doesn't exist is not an error.
func Reset(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// ValidatePath checks that path is absolute or starts with ~.
// Relative paths like "." would silently depend on the invocation directory.
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
// Shells don't expand ~ inside config files or prompt input.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
