package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/script"
	"github.com/raphi011/flow/internal/settings"
	"github.com/raphi011/flow/internal/ui/prompt"
)

const defaultStorageRoot = "~/.flows"

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize flow",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Initialize flow interactively.

Collects the storage root (where generated scripts and the registry
live), the script dialect and the default working directory offered when
creating flows, then writes ~/.config/flow/settings.toml.

Use 'flow reinit' to change these later; it knows how to move or discard
existing flows.`,
		Example: `  flow init          # First-time setup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			path, err := settings.Path()
			if err != nil {
				return err
			}

			if cfg, err := settings.Load(path); err == nil && cfg.Initialized {
				l.Println("flow is already initialized. Use 'flow reinit' to change the setup.")
				return nil
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			cfg, cancelled, err := collectSettings(ctx, settings.Settings{
				StorageRoot:     defaultStorageRoot,
				ScriptDialect:   string(script.Bash),
				DefaultFlowPath: "~",
			})
			if err != nil {
				return err
			}
			if cancelled {
				l.Println("Cancelled.")
				return nil
			}

			if err := settings.Save(path, cfg); err != nil {
				return err
			}

			l.Printf("Initialized. Scripts and registry live in %s\n", cfg.StorageRoot)
			return nil
		},
	}

	return cmd
}

// collectSettings prompts for a storage root, dialect and default flow
// path, creates the storage root and returns a settings value with
// Initialized set. Defaults come from prior (an earlier settings snapshot
// or the built-in first-run values).
func collectSettings(ctx context.Context, prior settings.Settings) (settings.Settings, bool, error) {
	root, cancelled, err := askPath(ctx, "Where should flow store scripts and its registry?", prior.StorageRoot)
	if err != nil || cancelled {
		return settings.Settings{}, cancelled, err
	}

	dialects := make([]string, len(script.Dialects))
	for i, d := range script.Dialects {
		dialects[i] = string(d)
	}
	choice, err := prompt.Select("Which shell dialect should generated scripts use?", dialects)
	if err != nil {
		return settings.Settings{}, false, err
	}
	if choice.Cancelled {
		return settings.Settings{}, true, nil
	}

	defaultPath, cancelled, err := askPath(ctx, "Default working directory for new flows?", prior.DefaultFlowPath)
	if err != nil || cancelled {
		return settings.Settings{}, cancelled, err
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return settings.Settings{}, false, fmt.Errorf("create storage root: %w", err)
	}

	return settings.Settings{
		StorageRoot:     root,
		ScriptDialect:   choice.Value,
		DefaultFlowPath: defaultPath,
		Initialized:     true,
	}, false, nil
}

// askPath prompts for a path, expanding ~ and rejecting relative input.
func askPath(ctx context.Context, question, defaultValue string) (string, bool, error) {
	l := log.FromContext(ctx)

	for {
		res, err := prompt.TextInputWithDefault(question, defaultValue)
		if err != nil {
			return "", false, err
		}
		if res.Cancelled {
			return "", true, nil
		}

		if err := settings.ValidatePath(res.Value, "path"); err != nil {
			l.Println(err)
			continue
		}

		expanded, err := settings.ExpandPath(res.Value)
		if err != nil {
			return "", false, err
		}
		if expanded == "" {
			l.Println("A path is required.")
			continue
		}
		return expanded, false, nil
	}
}
