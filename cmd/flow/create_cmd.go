package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/settings"
	"github.com/raphi011/flow/internal/ui/prompt"
)

func newCreateCmd() *cobra.Command {
	var (
		dir      string
		commands string
	)

	cmd := &cobra.Command{
		Use:     "create [name]",
		Short:   "Create a new flow",
		GroupID: GroupFlow,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a named flow from a comma-separated command list.

Values not passed as arguments or flags are collected interactively.
The command list is split on ',' with no escaping: a command containing
a literal comma cannot be represented.

Names may contain letters, digits, '_' and '-'. The working directory
must exist; the script runs inside it.`,
		Example: `  flow create                                     # Fully interactive
  flow create deploy                              # Prompt for dir and commands
  flow create deploy -d ~/src/app -c "make,make push"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}

			name, dir, commands, cancelled, err := collectFlowValues(ctx, cfg, name, dir, commands)
			if err != nil {
				return err
			}
			if cancelled {
				l.Println("Cancelled.")
				return nil
			}

			svc := flow.NewService(cfg)
			f, err := svc.Create(name, dir, commands)
			if err != nil {
				return fmt.Errorf("create flow: %w", err)
			}

			l.Printf("Created flow %q (script: %s)\n", f.Name, svc.ScriptPath(f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Working directory the flow runs in")
	cmd.Flags().StringVarP(&commands, "commands", "c", "", "Comma-separated command list")

	return cmd
}

// collectFlowValues prompts for any create value not already provided.
func collectFlowValues(ctx context.Context, cfg settings.Settings, name, dir, commands string) (string, string, string, bool, error) {
	if name == "" {
		res, err := prompt.TextInput("Flow name (letters, digits, _ and -):", "deploy")
		if err != nil {
			return "", "", "", false, err
		}
		if res.Cancelled {
			return "", "", "", true, nil
		}
		name = res.Value
	}

	if dir == "" {
		var cancelled bool
		var err error
		dir, cancelled, err = askPath(ctx, "Working directory for this flow?", cfg.DefaultFlowPath)
		if err != nil || cancelled {
			return "", "", "", cancelled, err
		}
	} else {
		expanded, err := settings.ExpandPath(dir)
		if err != nil {
			return "", "", "", false, err
		}
		dir = expanded
	}

	if commands == "" {
		res, err := prompt.TextInput("Commands (comma-separated):", "make build,make test")
		if err != nil {
			return "", "", "", false, err
		}
		if res.Cancelled {
			return "", "", "", true, nil
		}
		commands = res.Value
	}

	return name, dir, commands, false, nil
}
