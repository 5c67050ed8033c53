package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/failures"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/logging"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/menudb"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/moves"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/reorganize"
)

// reportedError marks a failure that has already been written to the log,
// so main only needs to set the exit status.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func runReorganize(cmd *cobra.Command, ctx *commandContext, dryRun, jsonOutput bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return failures.Wrap(failures.ErrValidation, "config", "load", "", err)
	}
	logger := ctx.logger(cmd.ErrOrStderr())

	table, tableName, err := moves.Resolve(cfg.Paths.MovesFile)
	if err != nil {
		return err
	}

	file := menudb.NewFile(cfg.Paths.DataFile, logger)
	runner := reorganize.New(table, file, logger, reorganize.Options{
		TableName: tableName,
		DryRun:    dryRun,
	})

	result, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummaryLine(result, shouldColorize(out)))
	return nil
}

func reportFailure(cmd *cobra.Command, ctx *commandContext, err error) {
	logger := logging.NewComponentLogger(ctx.logger(cmd.ErrOrStderr()), "menureorg")
	logging.ErrorWithContext(logger, "reorganization failed", "run_failed",
		logging.Error(err),
		logging.String(logging.FieldErrorKind, failures.Kind(err)),
		logging.String(logging.FieldErrorHint, failureHint(err)))
}

func failureHint(err error) string {
	switch failures.Kind(err) {
	case "io":
		return "check that the menu database exists and is readable and writable"
	case "parse":
		return "fix the syntax of the menu database or move table"
	case "validation":
		return "fix the configuration or move table"
	default:
		return "rerun with logging.level = \"debug\" for details"
	}
}
