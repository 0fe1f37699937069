package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Convert legacy task data to the ordered format",
		Long: `Rewrite a task list stored in the legacy set format as an ordered list.

The legacy format loses order and merges identical tasks. Converted tasks
are kept in alphabetical order. Malformed records are dropped and counted.
Running migrate on converted data does nothing.

Examples:
  todopoints migrate --dry-run
  todopoints migrate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.MigrateTasksUseCase().Execute(cmd.Context(), usecase.MigrateTasksInput{DryRun: dryRun})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case out.From != domain.TaskFormatLegacySet:
				_, _ = fmt.Fprintf(w, "Nothing to migrate (format: %s)\n", out.From)
			case dryRun:
				_, _ = fmt.Fprintf(w, "Would convert %d tasks, dropping %d malformed records\n", out.Converted, out.Dropped)
			default:
				_, _ = fmt.Fprintf(w, "Converted %d tasks, dropped %d malformed records\n", out.Converted, out.Dropped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	return cmd
}
