package reorganize

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/logging"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/menudb"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/moves"
)

const component = "reorganizer"

// Accessor loads and saves the whole menu database.
type Accessor interface {
	Path() string
	Load() (*menudb.Store, error)
	Save(*menudb.Store) error
}

// Options tunes a run.
type Options struct {
	// TableName labels the move table in logs and the result.
	TableName string
	// DryRun applies the table in memory but never writes.
	DryRun bool
}

// Reorganizer applies a move table to the menu database.
type Reorganizer struct {
	table  moves.Table
	store  Accessor
	opts   Options
	logger *slog.Logger
}

// New returns a Reorganizer for the given table and database accessor.
func New(table moves.Table, store Accessor, logger *slog.Logger, opts Options) *Reorganizer {
	return &Reorganizer{
		table:  table,
		store:  store,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, component),
	}
}

// Run reads the database once, applies every directive in memory, and writes
// the database once if anything changed. Nothing is written when the table
// is invalid or the load fails.
func (r *Reorganizer) Run(ctx context.Context) (Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldCorrelationID, runID))

	if err := r.table.Validate(); err != nil {
		return Result{RunID: runID}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{RunID: runID}, err
	}

	logger.Debug("reorganizing menu database",
		logging.String("path", r.store.Path()),
		logging.String("table", r.opts.TableName),
		logging.Int("directive_count", r.table.Count()),
		logging.Bool("dry_run", r.opts.DryRun))

	store, err := r.store.Load()
	if err != nil {
		return Result{RunID: runID}, err
	}

	result := Apply(store, r.table, logger)
	result.RunID = runID
	result.DataFile = r.store.Path()
	result.Table = r.opts.TableName
	result.DryRun = r.opts.DryRun

	if result.Changes == 0 || r.opts.DryRun {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := r.store.Save(store); err != nil {
		return result, err
	}
	result.Saved = true
	return result, nil
}

// Apply mutates store according to table and reports what happened. The
// table is expected to be valid. For each source category that exists,
// missing destinations are created empty; each listed item found in the
// source (exact match) is removed from it and, unless the destination
// already has it, appended to the destination which is then re-sorted.
// Items absent from the source are skipped without a log line.
func Apply(store *menudb.Store, table moves.Table, logger *slog.Logger) Result {
	if logger == nil {
		logger = logging.NewNop()
	}
	result := Result{Moves: []Move{}}

	for _, source := range table.Sources() {
		if !store.Has(source) {
			logging.WarnWithContext(logger, "source category not found", "source_category_missing",
				logging.String("category", source),
				logging.String(logging.FieldErrorHint, "check the category name in the move table"),
				logging.String(logging.FieldImpact, "moves from this category were skipped"))
			result.MissingSources = append(result.MissingSources, source)
			continue
		}

		for _, group := range table.GroupsFrom(source) {
			if store.Ensure(group.To) {
				logging.WarnWithContext(logger, "destination category not found, creating it", "destination_category_created",
					logging.String("category", group.To),
					logging.String(logging.FieldErrorHint, "check the category name in the move table"),
					logging.String(logging.FieldImpact, "an empty category was added"))
				result.CreatedDestinations = append(result.CreatedDestinations, group.To)
			}

			for _, item := range group.Items {
				if !store.Remove(source, item) {
					continue
				}
				move := Move{Item: item, From: source, To: group.To}
				if store.Contains(group.To, item) {
					move.AlreadyPresent = true
					logger.Info("item already in destination, removed from source",
						logging.String("item", item),
						logging.String("from", source),
						logging.String("to", group.To))
				} else {
					store.AppendSorted(group.To, item)
					logger.Info("moved item",
						logging.String("item", item),
						logging.String("from", source),
						logging.String("to", group.To))
				}
				result.Moves = append(result.Moves, move)
				result.Changes++
			}
		}
	}

	return result
}
