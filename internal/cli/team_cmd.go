package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pitchcycle/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}
	cmd.AddCommand(newTeamListCmd(app))
	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Teams.List(context.Background())
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				fmt.Println("No teams yet. Teams are created when you add fixtures or generate plans.")
				return nil
			}

			headers := []string{"ID", "NAME", "CREATED"}
			rows := make([][]string, 0, len(teams))
			for _, t := range teams {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Name,
					t.CreatedAt.Format("2006-01-02"),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
	return cmd
}
