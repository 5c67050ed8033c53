package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/reorganize"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func renderSummaryLine(result reorganize.Result, colorize bool) string {
	line := result.Summary()
	if !colorize {
		return line
	}
	return summaryColor(result) + line + ansiReset
}

func summaryColor(result reorganize.Result) string {
	switch {
	case result.Changes == 0:
		return ansiYellow
	case result.DryRun:
		return ansiBlue
	default:
		return ansiGreen
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
