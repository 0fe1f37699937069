package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase"
)

// newStoreCommand creates the store command.
func newStoreCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Show the theme store",
		Long: `Display the catalog with prices and what you own.

STATE is one of: purchase (not owned), select (owned), selected (active).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.LoadCatalogUseCase().Execute(cmd.Context(), usecase.LoadCatalogInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printCatalog(w, out.Items)
			_, _ = fmt.Fprintf(w, "\nPoints: %d\n", out.Balance)
			return nil
		},
	}
}

// printCatalog prints store items in a table.
func printCatalog(w io.Writer, items []domain.StoreItem) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ITEM\tCOLOR\tPRICE\tSTATE")
	for _, it := range items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", it.ColorName, it.ColorCode, it.Price, it.State())
	}
}

// newBuyCommand creates the buy command.
func newBuyCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item>",
		Short: "Purchase a theme",
		Long: `Spend points on a catalog item.

Examples:
  todopoints buy Blue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.PurchaseItemUseCase().Execute(cmd.Context(), usecase.PurchaseItemInput{Name: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Purchased %s (%d points left)\n", out.Item.ColorName, out.Balance)
			return nil
		},
	}
}

// newSelectCommand creates the select command.
func newSelectCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "select <item>",
		Short: "Activate a purchased theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.SelectItemUseCase().Execute(cmd.Context(), usecase.SelectItemInput{Name: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (%s)\n", args[0], out.Theme)
			return nil
		},
	}
}

// newThemeCommand creates the theme command.
func newThemeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the active theme color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ActiveThemeUseCase().Execute(cmd.Context(), usecase.ActiveThemeInput{})
			if err != nil {
				return err
			}
			name := "default"
			if out.Item != nil {
				name = out.Item.ColorName
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out.Color, name)
			return nil
		},
	}
}
