package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `todopoints` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the two-screen terminal interface: tasks and store. Press tab to switch.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
