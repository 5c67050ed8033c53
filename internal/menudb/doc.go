// Package menudb loads and saves the menu database: a JSON object mapping
// category names to lists of item names.
//
// # Storage
//
// The database is a single human-readable JSON file, for example:
//
//	{
//	  "rice": [
//	    "김밥"
//	  ],
//	  "main": []
//	}
//
// Reads and writes are whole-document. Category order from the file is kept
// when the store is written back, and non-ASCII item names are written
// literally so diffs stay readable.
package menudb
