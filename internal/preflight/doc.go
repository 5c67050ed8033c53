// Package preflight checks that the menu database and move table can be used
// before a run touches them.
//
// The "menureorg check" command runs every check and prints the results;
// a run itself does not call into this package.
package preflight
