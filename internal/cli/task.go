package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Append a task to the end of the list.

All arguments are joined with spaces. Surrounding whitespace is trimmed
and empty text is rejected.

Examples:
  todopoints add Water the plants
  todopoints add "Buy eggs, milk"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", out.Index+1, out.Task.Text)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the task list and the point balance.

Output columns: #, STATUS, TASK. Use the # value with complete and rm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.LoadTasksUseCase().Execute(cmd.Context(), usecase.LoadTasksInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks.")
			} else {
				printTaskList(w, out.Tasks)
			}
			_, _ = fmt.Fprintf(w, "\nPoints: %d\n", out.Balance)
			if out.Format == domain.TaskFormatLegacySet {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Note: tasks are stored in the legacy format; run `todopoints migrate` to keep their order.")
			}
			return nil
		},
	}
}

// printTaskList prints tasks in a table.
func printTaskList(w io.Writer, tasks []domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "#\tSTATUS\tTASK")
	for i, t := range tasks {
		status := "todo"
		if t.Completed {
			status = "done"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, status, t.Text)
	}
}

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "complete <#>",
		Short: "Mark a task as completed",
		Long: fmt.Sprintf(`Mark a task as completed and earn %d points.

Asks for confirmation unless --yes is given. Completing a task twice
does not earn points twice.

Examples:
  todopoints complete 2
  todopoints complete 2 --yes`, domain.PointsPerTask),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			req, err := c.RequestCompleteUseCase().Execute(cmd.Context(), usecase.RequestCompleteInput{Index: index})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if req.Action == domain.ActionConfirmDelete {
				_, _ = fmt.Fprintf(w, "Task %d is already completed.\n", index+1)
				return nil
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Have you completed: %s?", req.Task.Text)) {
				_, _ = fmt.Fprintln(w, "Cancelled.")
				return nil
			}

			out, err := c.ConfirmCompleteUseCase().Execute(cmd.Context(), usecase.ConfirmCompleteInput{Index: index})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Completed: %s (+%d points, total %d)\n", out.Task.Text, out.Awarded, out.Balance)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	var yes, force bool

	cmd := &cobra.Command{
		Use:   "rm <#>",
		Short: "Delete a completed task",
		Long: `Delete a task from the list. Points already earned are kept.

Only completed tasks can be deleted unless --force is given.

Examples:
  todopoints rm 1
  todopoints rm 1 --force --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			req, err := c.RequestCompleteUseCase().Execute(cmd.Context(), usecase.RequestCompleteInput{Index: index})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if req.Action != domain.ActionConfirmDelete && !force {
				return fmt.Errorf("task %d is not completed (use --force to delete anyway): %w", index+1, domain.ErrInvalidState)
			}
			if !yes && !confirm(cmd, fmt.Sprintf("Delete: %s?", req.Task.Text)) {
				_, _ = fmt.Fprintln(w, "Cancelled.")
				return nil
			}

			out, err := c.ConfirmDeleteUseCase().Execute(cmd.Context(), usecase.ConfirmDeleteInput{
				Index: index,
				Force: force,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Deleted: %s\n", out.Task.Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the task is not completed")
	return cmd
}

// newPointsCommand creates the points command.
func newPointsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "Show the point balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowPointsUseCase().Execute(cmd.Context(), usecase.ShowPointsInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Balance)
			return nil
		},
	}
}

// parseIndex converts a 1-based position argument into a 0-based index.
// Accepts "3" or "#3".
func parseIndex(s string) (int, error) {
	s = strings.TrimPrefix(s, "#")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task number %q: %w", s, domain.ErrTaskNotFound)
	}
	return n - 1, nil
}

// confirm prints the question and reads a y/N answer from the command's input.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
