package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/cli/formatter"
	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/spf13/cobra"
)

func newFixtureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Manage a team's fixtures",
	}

	cmd.AddCommand(
		newFixtureAddCmd(app),
		newFixtureListCmd(app),
		newFixtureImportCmd(app),
	)

	return cmd
}

func newFixtureAddCmd(app *App) *cobra.Command {
	var team, date, opponent, competition, notes string
	var away bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}

			saved, err := app.Fixtures.Add(context.Background(), team, domain.Fixture{
				Date:        d,
				Opponent:    opponent,
				IsHome:      !away,
				Competition: competition,
				Notes:       notes,
			})
			if err != nil {
				return err
			}

			venue := "home"
			if !saved.IsHome {
				venue = "away"
			}
			fmt.Printf("Added fixture vs %s (%s) on %s, importance %.2f\n",
				saved.Opponent, venue, saved.Date.Format("2006-01-02"), saved.ImportanceWeight)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().StringVar(&date, "date", "", "Match date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opponent, "opponent", "", "Opponent name")
	cmd.Flags().StringVar(&competition, "competition", "", "Competition name, used for importance weighting")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes (e.g. \"derby\")")
	cmd.Flags().BoolVar(&away, "away", false, "Mark as an away fixture")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("opponent")

	return cmd
}

func newFixtureListCmd(app *App) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a team's fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := app.Fixtures.List(context.Background(), team)
			if err != nil {
				return err
			}
			if len(fixtures) == 0 {
				fmt.Println("No fixtures found.")
				return nil
			}
			fmt.Print(formatter.FormatFixtures(fixtures))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newFixtureImportCmd(app *App) *cobra.Command {
	var team, file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import fixtures from a JSON export",
		Long: "Import a JSON array of fixtures. Field naming is normalized across common " +
			"export shapes (opponent/away_team/home+away pairs); entries with unparsable " +
			"dates are skipped and reported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading fixture file: %w", err)
			}

			report, err := app.Fixtures.ImportFile(context.Background(), team, data)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d fixtures\n", report.Imported)
			for _, w := range report.Warnings {
				fmt.Printf("%s %s\n", formatter.StyleYellow.Render("!"), w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().StringVar(&file, "file", "", "Path to the fixture JSON file")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
