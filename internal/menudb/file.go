package menudb

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/failures"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/fileutil"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/logging"
)

const component = "menudb"

// File reads and writes the whole menu database at a fixed path. There is
// no partial update: Load returns the full document and Save replaces it.
type File struct {
	path   string
	logger *slog.Logger
}

// NewFile returns an accessor for the database at path.
func NewFile(path string, logger *slog.Logger) *File {
	return &File{
		path:   path,
		logger: logging.NewComponentLogger(logger, component),
	}
}

// Path returns the database location.
func (f *File) Path() string {
	return f.path
}

// Load reads and parses the database. A missing or unreadable file yields
// failures.ErrIO. Any document that is not valid UTF-8 JSON mapping names to
// lists of strings yields failures.ErrParse.
func (f *File) Load() (*Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, failures.Wrap(failures.ErrIO, component, "load", "read "+f.path, err)
	}

	// json.Unmarshal decodes invalid UTF-8 to U+FFFD instead of failing.
	if !utf8.Valid(data) {
		return nil, failures.Wrap(failures.ErrParse, component, "load", "decode "+f.path, errors.New("invalid UTF-8"))
	}

	store := NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, failures.Wrap(failures.ErrParse, component, "load", "decode "+f.path, err)
	}

	f.logger.Debug("loaded menu database",
		logging.String("path", f.path),
		logging.Int("category_count", store.Len()))
	return store, nil
}

// Save serializes the full store and replaces the file at the accessor's
// path. No backup of the previous contents is kept.
func (f *File) Save(store *Store) error {
	data, err := store.Encode()
	if err != nil {
		return failures.Wrap(failures.ErrIO, component, "save", "encode", err)
	}
	if err := fileutil.ReplaceFile(f.path, data); err != nil {
		return failures.Wrap(failures.ErrIO, component, "save", "write "+f.path, err)
	}

	f.logger.Debug("saved menu database",
		logging.String("path", f.path),
		logging.Int("category_count", store.Len()),
		logging.Int("bytes", len(data)))
	return nil
}
