// Package main is the entry point for the todopoints CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/cli"
	"github.com/runoshun/todopoints/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Empty config dir selects $XDG_CONFIG_HOME/todopoints
	container, err := app.New("")
	if err != nil {
		// A broken storage section should not hide help and version output
		if errors.Is(err, domain.ErrUnknownBackend) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where the container could not be built.
// Only help and version output work without storage.
func runWithoutContainer(initErr error) error {
	if !canRunWithoutContainer(os.Args[1:]) {
		return initErr
	}
	return cli.NewRootCommand(nil, version).Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
