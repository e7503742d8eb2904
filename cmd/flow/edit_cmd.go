package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <name>",
		Short:   "Edit a flow's script",
		GroupID: GroupFlow,
		Args:    cobra.ExactArgs(1),
		Long: `Open a flow's script in your editor ($EDITOR, falling back to vi, or
notepad for the windows dialects).

The editor starts in the flow's working directory. Edits change the
script file only; the flow's name and working directory are fixed at
creation time.`,
		Example: `  flow edit deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			svc := flow.NewService(cfg)
			if err := svc.Edit(ctx, name); err != nil {
				suggestIfNotFound(ctx, svc, name, err)
				return err
			}
			return nil
		},
	}

	return cmd
}
