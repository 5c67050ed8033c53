// Package textutil formats menu category names for terminal output.
package textutil
