// Package reorganize applies a move table to the menu database.
//
// A run is a single read-modify-write: the whole database is loaded, every
// directive is applied in memory, and the database is written back once, and
// only when at least one item changed category. Missing source categories
// are reported and skipped, missing destinations are created empty, and items
// that are not in their source category are ignored, so running the same
// table twice leaves the file untouched the second time.
package reorganize
