package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the menu database and move table are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			results := preflight.RunAll(cfg)

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderCheckResults(results))
			}

			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the check results as JSON")
	return cmd
}

func renderCheckResults(results []preflight.Result) string {
	columns := []column{
		{header: "Check"},
		{header: "Status"},
		{header: "Detail"},
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "OK"
		if !r.Passed {
			status = "ERROR"
		}
		rows = append(rows, []string{r.Name, status, r.Detail})
	}
	return renderTable(columns, rows)
}
