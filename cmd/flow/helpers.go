package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/settings"
)

// requireSettings loads the settings and enforces the initialization gate.
// When flow isn't initialized yet (no settings file, or initialized=false)
// it prints a hint and reports ok=false; the command should return nil so
// the process exits cleanly without touching the registry.
func requireSettings(ctx context.Context) (settings.Settings, bool, error) {
	path, err := settings.Path()
	if err != nil {
		return settings.Settings{}, false, err
	}

	cfg, err := settings.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.FromContext(ctx).Println("flow is not initialized yet. Run 'flow init' first.")
			return settings.Settings{}, false, nil
		}
		return settings.Settings{}, false, err
	}

	if !cfg.Initialized {
		log.FromContext(ctx).Println("flow is not initialized yet. Run 'flow init' first.")
		return settings.Settings{}, false, nil
	}

	return cfg, true, nil
}

// suggestIfNotFound prints "did you mean" candidates for an unknown flow
// name. A no-op for any other error.
func suggestIfNotFound(ctx context.Context, svc *flow.Service, name string, err error) {
	if !errors.Is(err, flow.ErrNotFound) {
		return
	}

	names, listErr := svc.List()
	if listErr != nil || len(names) == 0 {
		return
	}

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return
	}

	var candidates []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		candidates = append(candidates, m.Str)
	}
	log.FromContext(ctx).Printf("Did you mean: %s?\n", strings.Join(candidates, ", "))
}
