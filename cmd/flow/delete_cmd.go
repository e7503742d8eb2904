package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/ui/prompt"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Short:   "Delete a flow",
		Aliases: []string{"rm"},
		GroupID: GroupFlow,
		Args:    cobra.ExactArgs(1),
		Long: `Delete a flow: its script directory first, then the registry record.

If removing the script fails the registry is left untouched, so the
delete can simply be retried.`,
		Example: `  flow delete deploy
  flow delete deploy --force   # Skip the confirmation prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			name := args[0]

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			svc := flow.NewService(cfg)

			if !force {
				// Look the flow up before prompting so an unknown name
				// fails fast with a suggestion.
				if _, err := svc.Find(name); err != nil {
					suggestIfNotFound(ctx, svc, name, err)
					return err
				}

				res, err := prompt.Confirm("Delete flow \"" + name + "\" and its script?")
				if err != nil {
					return err
				}
				if !res.Confirmed || res.Cancelled {
					l.Println("Cancelled.")
					return nil
				}
			}

			if err := svc.Delete(name); err != nil {
				suggestIfNotFound(ctx, svc, name, err)
				return err
			}

			l.Printf("Deleted flow %q\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}
