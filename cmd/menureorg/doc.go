// Package main hosts the menureorg CLI entrypoint and command graph.
//
// Running menureorg with no arguments applies the move table to the menu
// database and prints a one-line summary. Subcommands inspect the active move
// table or the readiness of the database, and scaffold or check the
// configuration file. Configuration
// resolution and logger construction live here so the internal packages stay
// free of terminal concerns.
package main
