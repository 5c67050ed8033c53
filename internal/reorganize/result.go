package reorganize

import "fmt"

// Move records one applied directive.
type Move struct {
	Item string `json:"item"`
	From string `json:"from"`
	To   string `json:"to"`
	// AlreadyPresent is set when the destination already listed the item and
	// only the removal from the source took effect.
	AlreadyPresent bool `json:"already_present,omitempty"`
}

// Result summarizes one run. It is never persisted.
type Result struct {
	RunID               string   `json:"run_id"`
	DataFile            string   `json:"data_file,omitempty"`
	Table               string   `json:"table,omitempty"`
	Changes             int      `json:"changes"`
	Moves               []Move   `json:"moves"`
	MissingSources      []string `json:"missing_sources,omitempty"`
	CreatedDestinations []string `json:"created_destinations,omitempty"`
	Saved               bool     `json:"saved"`
	DryRun              bool     `json:"dry_run,omitempty"`
}

// Summary returns the one-line report printed at the end of a run.
func (r Result) Summary() string {
	switch {
	case r.Changes == 0:
		return "No changes made. Items might have been already moved or not found."
	case r.DryRun:
		return fmt.Sprintf("Dry run: %d items would be moved. Nothing was written.", r.Changes)
	default:
		return fmt.Sprintf("Successfully moved %d items.", r.Changes)
	}
}
