package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/failures"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/menudb"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/moves"
)

// CheckDataDirectory verifies that the directory holding the database accepts
// new files. Saving writes a temp file next to the database and renames it.
func CheckDataDirectory(dataFile string) Result {
	const name = "Data directory"

	dir := filepath.Dir(dataFile)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", dir)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", dir)}
}

// CheckDataFile verifies that the database is a readable, writable file that
// parses as a menu database.
func CheckDataFile(dataFile string) Result {
	const name = "Menu database"

	info, err := os.Stat(dataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", dataFile)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dataFile, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a regular file)", dataFile)}
	}
	if err := unix.Access(dataFile, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dataFile, err)}
	}

	store, err := menudb.NewFile(dataFile, nil).Load()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", dataFile, failures.Kind(err))}
	}
	items := 0
	for _, category := range store.Categories() {
		items += len(store.Items(category))
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d categories, %d items)", dataFile, store.Len(), items)}
}

// CheckMoveTable verifies that the configured move table loads. A blank path
// selects the built-in table.
func CheckMoveTable(movesFile string) Result {
	const name = "Move table"

	if strings.TrimSpace(movesFile) == "" {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d items)", moves.BuiltinName, moves.Default().Count())}
	}
	if err := unix.Access(movesFile, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", movesFile, err)}
	}
	table, err := moves.Load(movesFile)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", movesFile, failures.Kind(err))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d items)", movesFile, table.Count())}
}
