// Package registry manages the flow registry persisted under the storage
// root as flows.json.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/raphi011/flow/internal/storage"
)

// Sentinel errors for registry I/O. Callers match with errors.Is.
var (
	// ErrCorrupt means the registry file exists but cannot be parsed.
	ErrCorrupt = errors.New("registry corrupt")

	// ErrWriteFailed means the registry file could not be persisted.
	ErrWriteFailed = errors.New("registry write failed")
)

// FileName is the registry file name under the storage root.
const FileName = "flows.json"

// Flow is one registered flow. Records are immutable after creation:
// 'flow edit' opens the script in an editor, it never rewrites the record.
type Flow struct {
	Name string `json:"name"` // unique, matches [A-Za-z0-9_-]+

	// WorkingDir is the absolute directory the script runs in. Validated
	// to exist at create time, not re-checked afterwards.
	WorkingDir string `json:"working_dir"`

	// ScriptPath is relative to the storage root (commands/<name>/script.sh)
	// so a moved storage root keeps every record valid.
	ScriptPath string `json:"script_path"`
}

// Registry holds all registered flows in creation order.
type Registry struct {
	Flows []Flow `json:"flows"`
}

// PathIn returns the registry file path under the given storage root.
func PathIn(storageRoot string) string {
	return filepath.Join(storageRoot, FileName)
}

// Load reads the registry from path.
// Returns an empty registry if the file doesn't exist: first use happens
// before any flow has been created.
func Load(path string) (*Registry, error) {
	var reg Registry
	if err := storage.LoadJSON(path, &reg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Registry{Flows: []Flow{}}, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}

	if reg.Flows == nil {
		reg.Flows = []Flow{}
	}

	return &reg, nil
}

// Save writes the registry to path atomically.
func (r *Registry) Save(path string) error {
	if err := storage.SaveJSON(path, r); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Add appends a flow. Returns an error if the name or script path is
// already taken; both are unique across the registry.
func (r *Registry) Add(flow Flow) error {
	for _, existing := range r.Flows {
		if existing.Name == flow.Name {
			return fmt.Errorf("flow name already exists: %s", flow.Name)
		}
		if existing.ScriptPath == flow.ScriptPath {
			return fmt.Errorf("script path already in use: %s", flow.ScriptPath)
		}
	}

	r.Flows = append(r.Flows, flow)
	return nil
}

// Remove deletes the flow with the given name.
func (r *Registry) Remove(name string) error {
	i := r.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("flow not found: %s", name)
	}
	r.Flows = slices.Delete(r.Flows, i, i+1)
	return nil
}

// FindByName looks up a flow by exact, case-sensitive name.
// Returns nil if no flow matches.
func (r *Registry) FindByName(name string) *Flow {
	for i := range r.Flows {
		if r.Flows[i].Name == name {
			return &r.Flows[i]
		}
	}
	return nil
}

// IndexOf returns the position of the named flow, or -1.
func (r *Registry) IndexOf(name string) int {
	for i := range r.Flows {
		if r.Flows[i].Name == name {
			return i
		}
	}
	return -1
}

// Names returns all flow names in registry (creation) order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Flows))
	for i, flow := range r.Flows {
		names[i] = flow.Name
	}
	return names
}
