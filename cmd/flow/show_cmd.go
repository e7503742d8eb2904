package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/output"
)

func newShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		copyPath   bool
	)

	cmd := &cobra.Command{
		Use:     "show <name>",
		Short:   "Show a flow's details",
		GroupID: GroupFlow,
		Args:    cobra.ExactArgs(1),
		Long:    `Show a flow's working directory and script location.`,
		Example: `  flow show deploy
  flow show deploy --json    # For scripting
  flow show deploy --copy    # Copy the script path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			name := args[0]

			cfg, ok, err := requireSettings(ctx)
			if err != nil || !ok {
				return err
			}

			svc := flow.NewService(cfg)
			f, err := svc.Find(name)
			if err != nil {
				suggestIfNotFound(ctx, svc, name, err)
				return err
			}

			scriptPath := svc.ScriptPath(f)

			if copyPath {
				if err := clipboard.WriteAll(scriptPath); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				log.FromContext(ctx).Printf("Copied script path to clipboard\n")
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(flowDisplay{
					Name:       f.Name,
					WorkingDir: f.WorkingDir,
					ScriptPath: scriptPath,
				})
			}

			out.Printf("Name:              %s\n", f.Name)
			out.Printf("Working directory: %s\n", f.WorkingDir)
			out.Printf("Script:            %s\n", scriptPath)
			out.Printf("Dialect:           %s\n", cfg.ScriptDialect)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the script path to the clipboard")

	return cmd
}
