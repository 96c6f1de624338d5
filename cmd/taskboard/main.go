package main

import (
	"os"

	"github.com/pablasso/taskboard/internal/cli"
)

func main() {
	// With no arguments the root command opens the TUI; cobra prints any error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
