package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/settings"
	"github.com/raphi011/flow/internal/ui/prompt"
)

const (
	reinitMove   = "Move existing flows to the new storage root"
	reinitDelete = "Delete all existing flows and start over"
	reinitCancel = "Cancel"
)

func newReinitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reinit",
		Short:   "Change the flow setup",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Re-run the initialization flow.

With no flows registered this behaves like 'flow init'. With existing
flows you choose what happens to them:

  Move    Relocate the whole storage root (scripts and registry) to a
          new directory in one move. Flow records stay valid.
  Delete  Discard the storage root with everything in it, then set up
          a fresh one.
  Cancel  Change nothing.

If a move or delete fails midway the settings are not rolled back;
re-run reinit to get back to a consistent state.`,
		Example: `  flow reinit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			path, err := settings.Path()
			if err != nil {
				return err
			}

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			svc := flow.NewService(cfg)
			options, err := reinitOptions(svc)
			if err != nil {
				return err
			}

			// Nothing to migrate: plain re-initialization
			if options == nil {
				return rerunInit(ctx, path, cfg)
			}

			choice, err := prompt.Select("You have existing flows. What should happen to them?", options)
			if err != nil {
				return err
			}

			switch {
			case choice.Cancelled || choice.Value == reinitCancel:
				l.Println("Cancelled.")
				return nil

			case choice.Value == reinitMove:
				newRoot, cancelled, err := askPath(ctx, "New storage root?", cfg.StorageRoot)
				if err != nil {
					return err
				}
				if cancelled {
					l.Println("Cancelled.")
					return nil
				}
				if newRoot == cfg.StorageRoot {
					l.Println("Storage root unchanged.")
					return nil
				}

				if err := svc.MoveRoot(newRoot); err != nil {
					return err
				}

				cfg.StorageRoot = newRoot
				if err := settings.Save(path, cfg); err != nil {
					return err
				}
				l.Printf("Moved flows to %s\n", newRoot)
				return nil

			default: // reinitDelete
				res, err := prompt.Confirm("Really delete every flow and the storage root?")
				if err != nil {
					return err
				}
				if !res.Confirmed || res.Cancelled {
					l.Println("Cancelled.")
					return nil
				}

				if err := svc.DeleteRoot(); err != nil {
					return err
				}
				return rerunInit(ctx, path, cfg)
			}
		},
	}

	return cmd
}

// reinitOptions returns the choices to offer for existing flows, in
// prompt order. Nil means no flow is registered: there is nothing to
// move or delete, and reinit degenerates to plain initialization
// without asking.
func reinitOptions(svc *flow.Service) ([]string, error) {
	has, err := svc.HasFlows()
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	return []string{reinitMove, reinitDelete, reinitCancel}, nil
}

// rerunInit collects fresh settings, reusing the previous values as
// prompt defaults.
func rerunInit(ctx context.Context, path string, prior settings.Settings) error {
	l := log.FromContext(ctx)

	cfg, cancelled, err := collectSettings(ctx, prior)
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

	l.Printf("Reinitialized. Scripts and registry live in %s\n", cfg.StorageRoot)
	return nil
}
