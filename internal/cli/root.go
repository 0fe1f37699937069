// Package cli provides the command-line interface for todopoints.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/tui"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupStore = "store"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todopoints.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todopoints",
		Short: "Task list that pays out points for a theme store",
		Long: `todopoints keeps an ordered to-do list. Every completed task earns
10 points, which can be spent in the store on color themes.

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if c == nil || c.AppConfig == nil {
				return
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupStore, Title: "Store Commands:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	migrateCmd := newMigrateCommand(c)
	migrateCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupSetup

	// Task commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	completeCmd := newCompleteCommand(c)
	completeCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	pointsCmd := newPointsCommand(c)
	pointsCmd.GroupID = groupTask

	// Store commands
	storeCmd := newStoreCommand(c)
	storeCmd.GroupID = groupStore

	buyCmd := newBuyCommand(c)
	buyCmd.GroupID = groupStore

	selectCmd := newSelectCommand(c)
	selectCmd.GroupID = groupStore

	themeCmd := newThemeCommand(c)
	themeCmd.GroupID = groupStore

	root.AddCommand(
		initCmd,
		configCmd,
		migrateCmd,
		tuiCmd,
		addCmd,
		listCmd,
		completeCmd,
		rmCmd,
		pointsCmd,
		storeCmd,
		buyCmd,
		selectCmd,
		themeCmd,
	)

	return root
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
