package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/settings"
	"github.com/raphi011/flow/internal/ui/prompt"
)

func newResetSettingsCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "reset-settings",
		Short:   "Delete the settings file",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Delete ~/.config/flow/settings.toml.

Flows, scripts and the registry are left on disk; only the settings are
reset. Run 'flow init' afterwards to point flow at a storage root again.`,
		Example: `  flow reset-settings
  flow reset-settings --force   # Skip the confirmation prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			path, err := settings.Path()
			if err != nil {
				return err
			}

			if !force {
				res, err := prompt.Confirm("Delete the flow settings file?")
				if err != nil {
					return err
				}
				if !res.Confirmed || res.Cancelled {
					l.Println("Cancelled.")
					return nil
				}
			}

			if err := settings.Reset(path); err != nil {
				return err
			}

			l.Println("Settings deleted. Run 'flow init' to set up again.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reset without confirmation")

	return cmd
}
