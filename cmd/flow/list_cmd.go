package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/output"
)

// flowDisplay holds flow info for JSON output, with the script path
// resolved to an absolute location.
type flowDisplay struct {
	Name       string `json:"name"`
	WorkingDir string `json:"working_dir"`
	ScriptPath string `json:"script_path"`
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List flows",
		Aliases: []string{"ls"},
		GroupID: GroupFlow,
		Args:    cobra.NoArgs,
		Long:    `List flow names in creation order.`,
		Example: `  flow list           # One name per line
  flow list --json    # Full records for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			svc := flow.NewService(cfg)

			if jsonOutput {
				flows, err := svc.Flows()
				if err != nil {
					return err
				}
				display := make([]flowDisplay, len(flows))
				for i, f := range flows {
					display[i] = flowDisplay{
						Name:       f.Name,
						WorkingDir: f.WorkingDir,
						ScriptPath: svc.ScriptPath(f),
					}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			names, err := svc.List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				log.FromContext(ctx).Println("No flows yet. Create one with 'flow create'.")
				return nil
			}

			for _, name := range names {
				out.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
