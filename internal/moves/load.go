package moves

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/failures"
)

// BuiltinName labels the embedded table in logs and CLI output.
const BuiltinName = "built-in"

//go:embed default_moves.toml
var defaultMoves []byte

var builtin = sync.OnceValues(func() (Table, error) {
	return Parse(defaultMoves)
})

// Default returns a copy of the built-in move table.
func Default() Table {
	table, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("built-in move table is invalid: %v", err))
	}
	return table.Clone()
}

// Parse decodes and validates a TOML move table.
func Parse(data []byte) (Table, error) {
	var table Table
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&table); err != nil {
		return Table{}, failures.Wrap(failures.ErrParse, component, "parse", "decode move table", err)
	}
	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Load reads a move table from a TOML file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, failures.Wrap(failures.ErrIO, component, "load", "read "+path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Resolve loads the table at path, or the built-in table when path is
// blank. The returned name is the path or BuiltinName.
func Resolve(path string) (Table, string, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), BuiltinName, nil
	}
	table, err := Load(path)
	if err != nil {
		return Table{}, "", err
	}
	return table, path, nil
}
