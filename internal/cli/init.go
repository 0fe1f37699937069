package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the data store",
		Long: `Create the data store for the configured backend.

With the file backend this creates the data directory. With the git
backend it creates a bare repository and writes an initialized marker.
Running it again is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitStoreUseCase().Execute(cmd.Context(), usecase.InitStoreInput{
				Location: c.Config.StoreLocation,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s store in %s\n", c.Config.Backend, out.Location)
			return nil
		},
	}
}
