package preflight

import (
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckDataDirectory(cfg.Paths.DataFile),
		CheckDataFile(cfg.Paths.DataFile),
		CheckMoveTable(cfg.Paths.MovesFile),
	}
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
