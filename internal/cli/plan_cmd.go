package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/cli/formatter"
	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and manage training plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanDeleteCmd(app),
		newPlanRetitleCmd(app),
		newPlanMetricsCmd(app),
		newPlanDayCmd(app),
		newPlanSessionCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var (
		team, start, objective, variability, mode string
		principles                                []string
		weeks                                     int
		seed                                      int64
		full                                      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a periodized plan around the team's fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts := service.PlanOptions{
				TeamName:           team,
				Weeks:              weeks,
				Objective:          objective,
				SelectedPrinciples: principles,
				Variability:        domain.Variability(strings.ToLower(variability)),
				GenerationMode:     domain.GenerationMode(strings.ToLower(mode)),
				Seed:               seed,
			}
			if start != "" {
				t, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", start)
				}
				opts.StartDate = t
			}

			var plan *domain.Plan
			var err error
			if full {
				plan, err = app.Plans.GeneratePlan(ctx, opts)
			} else {
				plan, err = app.Plans.GenerateHighLevelPlan(ctx, opts)
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatPlanOverview(plan))
			fmt.Println(formatter.FormatTimeline(plan))
			if !full {
				fmt.Println(formatter.Dim("Session drills are generated on demand: pitchcycle plan session drills --plan " + plan.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Plan length in weeks (default 5; longer spans are truncated to 6)")
	cmd.Flags().StringVar(&objective, "objective", "", "Training objective woven into sessions")
	cmd.Flags().StringSliceVar(&principles, "principle", nil, "Focus principle (repeatable)")
	cmd.Flags().StringVar(&variability, "variability", "medium", "Drill variability: low, medium, high")
	cmd.Flags().StringVar(&mode, "mode", "curated", "Drill source: curated, generative, hybrid")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible plans (0 = random)")
	cmd.Flags().BoolVar(&full, "full", false, "Populate every session's drills immediately")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plans for a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := app.Plans.ListPlans(context.Background(), team)
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				fmt.Println("No plans found.")
				return nil
			}
			fmt.Print(formatter.FormatPlanList(listings))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var planID string
	var session int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a plan, or one of its sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GetPlan(context.Background(), planID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("session") {
				if session < 1 || session > len(plan.Sessions) {
					return fmt.Errorf("session %d: %w", session, domain.ErrSessionIndexOutOfRange)
				}
				fmt.Println(formatter.FormatSession(plan, session-1))
				return nil
			}
			fmt.Println(formatter.FormatPlanOverview(plan))
			fmt.Println(formatter.FormatTimeline(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().IntVar(&session, "session", 0, "Session number (1-based) to show in full")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.DeletePlan(context.Background(), planID); err != nil {
				return err
			}
			fmt.Printf("Deleted plan %s\n", planID)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newPlanRetitleCmd(app *App) *cobra.Command {
	var planID, title string

	cmd := &cobra.Command{
		Use:   "retitle",
		Short: "Rename a stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.UpdateTitle(context.Background(), planID, title); err != nil {
				return err
			}
			fmt.Printf("Plan %s retitled to %q\n", planID, title)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPlanMetricsCmd(app *App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show weekly monotony and strain analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GetPlan(context.Background(), planID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatMetrics(plan))
			for _, w := range plan.Warnings {
				fmt.Printf("%s %s\n", formatter.StyleYellow.Render("!"), w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newPlanDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Adjust individual plan days",
	}
	cmd.AddCommand(newPlanDaySetLoadCmd(app))
	return cmd
}

func newPlanDaySetLoadCmd(app *App) *cobra.Command {
	var planID, load string
	var day int

	cmd := &cobra.Command{
		Use:   "set-load",
		Short: "Override a training day's load class",
		Long: "Override a non-fixture day's load class. The day's session skeleton is " +
			"rebuilt, its drills are discarded, and weekly metrics are recomputed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.UpdateDayLoad(context.Background(), planID, day-1, domain.LoadClass(load))
			if err != nil {
				return err
			}
			fmt.Printf("Day %d set to %s\n\n", day, formatter.LoadBadge(domain.LoadClass(load)))
			fmt.Print(formatter.FormatMetrics(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().IntVar(&day, "day", 0, "Day number (1-based)")
	cmd.Flags().StringVar(&load, "load", "", "Load class: High, Medium, Low, Recovery, Off")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("load")

	return cmd
}

func newPlanSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Generate and manage session drills",
	}
	cmd.AddCommand(
		newSessionDrillsCmd(app),
		newSessionRegenerateCmd(app),
		newSessionRenameCmd(app),
	)
	return cmd
}

func newSessionDrillsCmd(app *App) *cobra.Command {
	var planID string
	var session int

	cmd := &cobra.Command{
		Use:   "drills",
		Short: "Populate a session's drills",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GenerateSessionDrills(context.Background(), planID, session-1)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSession(plan, session-1))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().IntVar(&session, "session", 0, "Session number (1-based)")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newSessionRegenerateCmd(app *App) *cobra.Command {
	var planID string
	var session int

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Discard and re-draw a session's drills",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.RegenerateSession(context.Background(), planID, session-1)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSession(plan, session-1))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().IntVar(&session, "session", 0, "Session number (1-based)")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newSessionRenameCmd(app *App) *cobra.Command {
	var planID, name string
	var session int

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Plans.RenameSession(context.Background(), planID, session-1, name); err != nil {
				return err
			}
			fmt.Printf("Session %d renamed to %q\n", session, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().IntVar(&session, "session", 0, "Session number (1-based)")
	cmd.Flags().StringVar(&name, "name", "", "New session name")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
