package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dataFlag string
	var movesFlag string
	var dryRun bool
	var strict bool
	var jsonOutput bool

	ctx := newCommandContext(&configFlag, &dataFlag, &movesFlag)

	rootCmd := &cobra.Command{
		Use:   "menureorg",
		Short: "Move menu items between categories of the menu database",
		Long: "menureorg applies the move table to the menu database: every listed item found in its\n" +
			"source category is moved to its destination, destination lists are kept sorted, and the\n" +
			"file is rewritten only when something changed.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReorganize(cmd, ctx, dryRun, jsonOutput)
			if err == nil {
				return nil
			}
			reportFailure(cmd, ctx, err)
			if strict {
				return &reportedError{err: err}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "Menu database path (overrides paths.data_file; the default data/menu_db.json is relative to the working directory)")
	rootCmd.PersistentFlags().StringVar(&movesFlag, "moves", "", "Move table TOML file (overrides paths.moves_file)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply the move table in memory without writing the database")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when the run fails")

	rootCmd.AddCommand(newMovesCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
