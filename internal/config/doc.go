// Package config loads, normalizes, and validates menureorg configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// MENUREORG_DATA_FILE. The Config type centralizes the knobs the CLI needs:
// where the menu database lives, which move table to apply, and how to log.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
