package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/moves"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/textutil"
)

const itemsColumnWidth = 60

func newMovesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var perItem bool

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Show the active move table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, name, err := moves.Resolve(cfg.Paths.MovesFile)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, table)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Move table: %s (%d groups, %d items)\n", name, len(table.Groups), table.Count())
			if table.Count() == 0 {
				fmt.Fprintln(out, "No moves defined.")
				return nil
			}
			if perItem {
				fmt.Fprintln(out, renderDirectives(table))
			} else {
				fmt.Fprintln(out, renderGroups(table))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the move table as JSON")
	cmd.Flags().BoolVar(&perItem, "items", false, "List one row per item instead of one per group")
	return cmd
}

func renderGroups(table moves.Table) string {
	columns := []column{
		{header: "From"},
		{header: "To"},
		{header: "Count", align: alignRight},
		{header: "Items", maxWidth: itemsColumnWidth},
	}
	var rows [][]string
	for _, source := range table.Sources() {
		for _, g := range table.GroupsFrom(source) {
			rows = append(rows, []string{
				textutil.CategoryLabel(g.From),
				textutil.CategoryLabel(g.To),
				strconv.Itoa(len(g.Items)),
				strings.Join(g.Items, ", "),
			})
		}
	}
	return renderTable(columns, rows)
}

func renderDirectives(table moves.Table) string {
	columns := []column{
		{header: "#", align: alignRight},
		{header: "Item"},
		{header: "From"},
		{header: "To"},
	}
	directives := table.Directives()
	rows := make([][]string, 0, len(directives))
	for i, d := range directives {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.Item,
			textutil.CategoryLabel(d.From),
			textutil.CategoryLabel(d.To),
		})
	}
	return renderTable(columns, rows)
}
