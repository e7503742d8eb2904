package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/output"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <name>",
		Short:   "Run a flow",
		GroupID: GroupFlow,
		Args:    cobra.ExactArgs(1),
		Long: `Run a flow's script inside its working directory.

The script executes under the configured shell dialect with your current
directory restored afterwards, whether the script succeeds or not.
Captured stdout is printed; stderr is shown as a warning since many
well-behaved commands write diagnostics there. A non-zero exit fails the
command with the captured output attached.`,
		Example: `  flow run deploy
  flow run deploy -v    # Echo the interpreter invocation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			name := args[0]

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			svc := flow.NewService(cfg)
			res, err := svc.Run(ctx, name)
			if err != nil {
				var execErr *flow.ExecError
				if errors.As(err, &execErr) {
					// Show what the script produced before it failed
					printOutput(out, l, execErr.Stdout, execErr.Stderr)
				}
				suggestIfNotFound(ctx, svc, name, err)
				return err
			}

			printOutput(out, l, res.Stdout, res.Stderr)
			return nil
		},
	}

	return cmd
}

func printOutput(out *output.Printer, l *log.Logger, stdout, stderr string) {
	if stdout != "" {
		out.Printf("%s", stdout)
		if !strings.HasSuffix(stdout, "\n") {
			out.Println()
		}
	}
	if strings.TrimSpace(stderr) != "" {
		l.Warnf("the flow wrote to stderr:\n%s", strings.TrimRight(stderr, "\n"))
	}
}
